// Package calendar implements the store underlying a computed year.
//
// A Store holds exactly one DayRecord per date of its civil year,
// contiguous, with no gaps or duplicates. Records are created empty at
// initialization and mutated in place by the assembly passes (block
// placement, fixed-date overlay, precedence resolution); a record is
// never destroyed mid-run.
//
// The Store is a plain owned structure threaded through the assembly
// pipeline. It is not safe for concurrent mutation; one year's assembly
// is strictly single-threaded. Computations for distinct years are
// independent and may run in parallel, each on its own Store.
package calendar
