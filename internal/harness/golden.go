package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/ordo/internal/liturgy"
)

// RunWithGolden executes a scenario and compares its window snapshot
// against testdata/golden/{scenario.Name}.golden. Expectations listed
// in the scenario are evaluated first; a failing expectation fails the
// test before the golden comparison runs.
//
// To regenerate golden files after an intended behavior change:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		t.Fatalf("scenario %s: %v", scenario.Name, err)
	}
	for _, e := range result.Errors {
		t.Error(e)
	}
	if !result.Pass {
		return
	}

	snapshot, err := windowSnapshot(scenario, result.Store)
	if err != nil {
		t.Fatalf("scenario %s: snapshot: %v", scenario.Name, err)
	}
	data, err := liturgy.MarshalCanonical(snapshot)
	if err != nil {
		t.Fatalf("scenario %s: marshal: %v", scenario.Name, err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)
}
