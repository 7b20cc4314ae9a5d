// Package catalog holds the static inputs of the engine: the named
// blocks of the movable cycle, the sancti fixed-feast table, and the
// conditionally computed (semi-fixed) feasts.
//
// Catalogs are read-only. The block tables are declared in Go and built
// once at package initialization; the sancti table is embedded YAML,
// parsed with yaml.v3 and validated against a CUE schema before first
// use. Loading is fail-fast: a single malformed entry aborts the load,
// because a silently skipped entry would corrupt every calendar
// computed from the catalog.
//
// Declaration order inside each catalog is meaningful: it is the
// tie-break for equal-rank concurrency, so reordering entries is a
// behavior change.
package catalog
