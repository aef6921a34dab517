package diff

import "fmt"

// Bounds is a half-open index range [Start, End).
type Bounds struct {
	Start int
	End   int
}

// Len returns End - Start.
func (b Bounds) Len() int { return b.End - b.Start }

// IsEmpty reports whether b covers no indexes.
func (b Bounds) IsEmpty() bool { return b.End == b.Start }

func (b Bounds) String() string { return fmt.Sprintf("%d..%d", b.Start, b.End) }

// EditRange is one change region: Old in the old sequence is replaced by New in the new sequence. Either side may be empty, but not both.
type EditRange struct {
	Old Bounds
	New Bounds
}

// BuildEditScript compresses a raw script into change regions. Adjacent OpDelete and OpInsert units not separated by an OpEqual unit are coalesced into one
// EditRange. Regions are returned in increasing, non-overlapping order on both sides.
func BuildEditScript[T comparable](solution []DiffRange[T]) []EditRange {
	var oldIdx, newIdx int
	var script []EditRange
	var open *EditRange

	flush := func() {
		if open != nil {
			script = append(script, *open)
			open = nil
		}
	}

	for _, dr := range solution {
		switch dr.Op {
		case OpEqual:
			oldIdx += dr.Old.Len()
			newIdx += dr.New.Len()
			flush()
		case OpDelete:
			n := dr.Old.Len()
			if open == nil {
				open = &EditRange{Old: Bounds{oldIdx, oldIdx + n}, New: Bounds{newIdx, newIdx}}
			} else {
				open.Old.End += n
			}
			oldIdx += n
		case OpInsert:
			n := dr.New.Len()
			if open == nil {
				open = &EditRange{Old: Bounds{oldIdx, oldIdx}, New: Bounds{newIdx, newIdx + n}}
			} else {
				open.New.End += n
			}
			newIdx += n
		}
	}
	flush()

	return script
}
