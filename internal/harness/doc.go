// Package harness provides a conformance testing framework for the
// calendar engine.
//
// Scenarios are YAML documents naming a year, an optional date window,
// and per-day expectations. Running a scenario computes the full year
// and checks every expectation against the resulting records.
//
// Two comparison modes are supported:
//
//   - Expectations: explicit per-day celebration/commemoration lists,
//     checked field by field with readable error messages.
//   - Golden files: a canonical-JSON snapshot of the scenario's date
//     window compared byte for byte against testdata/golden. Canonical
//     serialization makes the comparison independent of map iteration
//     order, so a golden mismatch always means a behavior change.
//
// Because the engine is pure, scenarios need no setup or teardown and
// may run in parallel.
package harness
