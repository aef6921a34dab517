// Package diff computes minimal edit scripts between two sequences and assembles line-mode scripts into patches.
//
// Algorithm: The search is the linear-space, divide-and-conquer variant of Myers' O(ND) algorithm. Each step finds the middle snake of an optimal path by running
// a forward and a backward search until they overlap, then recurses on the two halves on either side of the snake. Common prefixes and suffixes are stripped before
// each search. The result is the shortest edit script (fewest inserted plus deleted elements).
//
// Representation: A raw script is an ordered []DiffRange. Each DiffRange has an Op:
//   - OpEqual: a run present in both sequences (Old and New views of identical content)
//   - OpDelete: a run present only in the old sequence (Old view only)
//   - OpInsert: a run present only in the new sequence (New view only)
//
// Invariants:
//   - concat(Old views of OpEqual and OpDelete units) == old
//   - concat(New views of OpEqual and OpInsert units) == new
//   - No unit has zero length. DiffRanges(x, x) is a single OpEqual unit (or nothing, if x is empty).
//
// Range views borrow the caller's slices. They are invalid once the backing slice is mutated.
//
// Getting a diff:
//
//	edits := diff.DiffString("ABCABBA", "CBABAC")
//	d := diff.DiffLines(oldText, newText)
//	fmt.Print(d.ToPatch(3))
//
// Granularity: DiffBytes compares bytes, DiffString compares Unicode code points, DiffGraphemes compares grapheme clusters, DiffSlices compares any comparable
// elements, and DiffLines compares whole lines (by content, via dense integer ids).
//
// Patches: LineDiff.ToPatch compresses the script into change regions (see BuildEditScript), widens each region with contextLen lines of unchanged context, and
// merges regions whose context windows touch or overlap (a gap of at most 2*contextLen unchanged lines). Hunk headers follow unified-diff conventions: 1-based
// starts, except that a zero-length side reports its 0-based boundary.
//
// Concurrency: All scratch state is owned by a single call. Independent calls may run in parallel.
package diff
