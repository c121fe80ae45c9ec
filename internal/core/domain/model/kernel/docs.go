// Package kernel provides shared value objects for the marketplace domain:
// UUID identifiers and fixed-point Money amounts.
//
// Value objects in this package are immutable, compared by value, and validate
// themselves at construction so that aggregates built on top of them can rely
// on their invariants (no nil identifiers, no negative amounts).
package kernel
