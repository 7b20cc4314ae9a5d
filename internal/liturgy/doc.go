// Package liturgy defines the core value types of the ordo engine.
//
// A liturgical day is identified by a string of the form
//
//	<flavor>:<name>:<rank>
//
// where flavor is "tempora" (the movable cycle anchored to Easter and
// Advent) or "sancti" (celebrations bound to a civil month-day), name is
// a lowercase latinate identifier, and rank is the 1962 class of the
// day (1 = first class, the highest, through 4). Sancti names carry
// their nominal month-day as an "MM-DD_" prefix.
//
// Day values are immutable. Equality is by identifier; a Day is bound
// to exactly one date at a time, and displacement rebinds a copy rather
// than duplicating the value.
//
// Identifier parsing is strict: a malformed identifier is a ParseError
// at catalog-load time, never a silently skipped entry. A skipped entry
// would silently corrupt every calendar computed from the catalog.
package liturgy
