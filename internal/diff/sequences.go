package diff

import (
	"github.com/clipperhouse/uax29/v2/graphemes"
)

// DiffSlices diffs old to new element by element. Each Edit's Text is a subslice of old (OpEqual, OpDelete) or new (OpInsert).
func DiffSlices[T comparable](old, new []T) []Edit[[]T] {
	solution := DiffRanges(old, new)
	edits := make([]Edit[[]T], 0, len(solution))
	for _, dr := range solution {
		switch dr.Op {
		case OpEqual, OpDelete:
			edits = append(edits, Edit[[]T]{Op: dr.Op, Text: dr.Old.Elems()})
		case OpInsert:
			edits = append(edits, Edit[[]T]{Op: dr.Op, Text: dr.New.Elems()})
		}
	}
	return edits
}

// DiffBytes diffs old to new byte by byte.
func DiffBytes(old, new []byte) []Edit[[]byte] {
	return DiffSlices(old, new)
}

// DiffString diffs old to new by Unicode code point. Each Edit's Text is a substring of old or new, so multi-byte characters are never split.
//
// Invalid UTF-8 bytes compare as utf8.RuneError (so any two invalid bytes are equal), but Text always holds the original bytes.
func DiffString(old, new string) []Edit[string] {
	oldRunes, oldOffsets := runeSegments(old)
	newRunes, newOffsets := runeSegments(new)
	return materialize(old, new, DiffRanges(oldRunes, newRunes), oldOffsets, newOffsets)
}

// DiffGraphemes diffs old to new by extended grapheme cluster (UAX #29), so a base character and its combining marks, or an emoji sequence, is inserted or deleted
// as a unit.
func DiffGraphemes(old, new string) []Edit[string] {
	oldClusters, oldOffsets := graphemeSegments(old)
	newClusters, newOffsets := graphemeSegments(new)
	return materialize(old, new, DiffRanges(oldClusters, newClusters), oldOffsets, newOffsets)
}

// materialize maps a script over segments back onto the original strings. offsets[i] is the byte offset of segment i; offsets[len(segments)] == len(text).
func materialize[T comparable](old, new string, solution []DiffRange[T], oldOffsets, newOffsets []int) []Edit[string] {
	sub := func(text string, offsets []int, r Range[T]) string {
		return text[offsets[r.Offset()]:offsets[r.End()]]
	}
	edits := make([]Edit[string], 0, len(solution))
	for _, dr := range solution {
		switch dr.Op {
		case OpEqual, OpDelete:
			edits = append(edits, Edit[string]{Op: dr.Op, Text: sub(old, oldOffsets, dr.Old)})
		case OpInsert:
			edits = append(edits, Edit[string]{Op: dr.Op, Text: sub(new, newOffsets, dr.New)})
		}
	}
	return edits
}

func runeSegments(s string) ([]rune, []int) {
	runes := make([]rune, 0, len(s))
	offsets := make([]int, 0, len(s)+1)
	for i, r := range s {
		runes = append(runes, r)
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(s))
	return runes, offsets
}

func graphemeSegments(s string) ([]string, []int) {
	var clusters []string
	var offsets []int
	iter := graphemes.FromString(s)
	for iter.Next() {
		clusters = append(clusters, iter.Value())
		offsets = append(offsets, iter.Start())
	}
	offsets = append(offsets, len(s))
	return clusters, offsets
}
