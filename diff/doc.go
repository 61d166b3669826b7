// Package diff computes minimal edit scripts between two ordered sequences
// and renders them for humans.
//
// Sequence and SequenceFunc implement the Myers shortest edit script
// algorithm (E. Myers, "An O(ND) Difference Algorithm and Its Variations",
// 1986) over slices of any element type. The result is a list of Edit
// values, each one an Insert, a Delete or an Equal, ordered as a walk from
// the start of both slices to their end. The A side indices of the Delete
// and Equal edits enumerate 0..len(a) and the B side indices of the Insert
// and Equal edits enumerate 0..len(b).
//
// When several minimal scripts exist, the one returned is fixed: at each
// step the search prefers the move that reaches furthest along the first
// slice, taking the insertion when both moves reach equally far. Failure
// messages built on top of this package are therefore reproducible from run
// to run.
//
// The package also produces unified diffs (Unified, UnifiedTo) of text
// nodes, using the same engine over lines. The output format is unified diff
// with a configurable number of context lines, close to what GNU diff -U
// prints.
//
// All functions are pure: every call owns its working state, so they may be
// used from any number of goroutines without locking.
package diff
