// Package engine assembles the liturgical calendar for one civil year.
//
// ARCHITECTURE:
//
// Compute runs a fixed pipeline of stage transformations over a single
// owned calendar.Store:
//
//  1. Build an empty store (one record per date).
//  2. Compute the movable anchors and place the named blocks.
//  3. Overlay the sancti fixed-feast table and the semi-fixed days.
//  4. Run the precedence pass over the whole year.
//
// The precedence pass evaluates an ordered rule catalog per date. Rule
// order NEVER changes after construction: evaluation order is the
// domain's precedence policy, not an implementation accident. The first
// rule returning a non-nil outcome wins and no further rules are tried
// for that date.
//
// CRITICAL: the precedence pass is strictly sequential in ascending
// date order. A rule may displace celebrations onto later dates through
// a per-date outbox that the later date consumes; parallelizing or
// reordering the pass would break that dependency. Computations for
// distinct years are independent and may run in parallel.
//
// The engine is a pure function of (year, static catalogs): no I/O, no
// wall-clock reads, no randomness. The same year computes to
// byte-identical output every time.
package engine
