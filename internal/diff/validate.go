package diff

import (
	"fmt"

	"github.com/codalotl/diffcore/internal/patch"
)

// validateScript checks the raw script invariants of solution against old and new and returns an error on the first violation.
func validateScript[T comparable](old, new []T, solution []DiffRange[T]) error {
	var oldIdx, newIdx int
	for i, dr := range solution {
		if dr.Len() == 0 {
			return fmt.Errorf("range[%d]: %v has zero length", i, dr.Op)
		}
		switch dr.Op {
		case OpEqual:
			if dr.Old.Len() != dr.New.Len() {
				return fmt.Errorf("range[%d]: OpEqual requires equal lengths, got %d and %d", i, dr.Old.Len(), dr.New.Len())
			}
			if dr.Old.CommonPrefixLen(dr.New) != dr.Old.Len() {
				return fmt.Errorf("range[%d]: OpEqual requires equal content", i)
			}
			if err := checkContiguous("old", i, dr.Old, old, oldIdx); err != nil {
				return err
			}
			if err := checkContiguous("new", i, dr.New, new, newIdx); err != nil {
				return err
			}
			oldIdx += dr.Old.Len()
			newIdx += dr.New.Len()
		case OpDelete:
			if !dr.New.IsEmpty() {
				return fmt.Errorf("range[%d]: OpDelete requires an empty New view", i)
			}
			if err := checkContiguous("old", i, dr.Old, old, oldIdx); err != nil {
				return err
			}
			oldIdx += dr.Old.Len()
		case OpInsert:
			if !dr.Old.IsEmpty() {
				return fmt.Errorf("range[%d]: OpInsert requires an empty Old view", i)
			}
			if err := checkContiguous("new", i, dr.New, new, newIdx); err != nil {
				return err
			}
			newIdx += dr.New.Len()
		default:
			return fmt.Errorf("range[%d]: unknown op %v", i, dr.Op)
		}
	}

	if oldIdx != len(old) {
		return fmt.Errorf("script: ranges do not reconstruct old (covered %d of %d)", oldIdx, len(old))
	}
	if newIdx != len(new) {
		return fmt.Errorf("script: ranges do not reconstruct new (covered %d of %d)", newIdx, len(new))
	}
	return nil
}

// checkContiguous checks that r views exactly backing[at:at+r.Len()].
func checkContiguous[T comparable](side string, i int, r Range[T], backing []T, at int) error {
	if r.Offset() != at {
		return fmt.Errorf("range[%d]: %s view starts at %d, want %d", i, side, r.Offset(), at)
	}
	if r.End() > len(backing) {
		return fmt.Errorf("range[%d]: %s view ends at %d, past length %d", i, side, r.End(), len(backing))
	}
	if r.CommonPrefixLen(NewRange(backing).Slice(r.Offset(), r.End())) != r.Len() {
		return fmt.Errorf("range[%d]: %s view does not match backing content", i, side)
	}
	return nil
}

// validatePatch checks that p's hunks are ordered, non-overlapping, and that each hunk's old/new projections appear in d's lines at the offsets its header claims.
func (d *LineDiff) validatePatch(p patch.Patch) error {
	prevOldEnd, prevNewEnd := 0, 0
	for hi, h := range p.Hunks {
		oldLines := h.OldLines()
		newLines := h.NewLines()
		if len(oldLines) != h.Old.Len {
			return fmt.Errorf("hunk[%d]: old header length %d, but %d old lines", hi, h.Old.Len, len(oldLines))
		}
		if len(newLines) != h.New.Len {
			return fmt.Errorf("hunk[%d]: new header length %d, but %d new lines", hi, h.New.Len, len(newLines))
		}

		oldStart := headerStart(h.Old)
		newStart := headerStart(h.New)
		if oldStart < prevOldEnd || newStart < prevNewEnd {
			return fmt.Errorf("hunk[%d]: overlaps or precedes the previous hunk", hi)
		}
		if err := checkLines("old", hi, oldLines, d.oldLines, oldStart); err != nil {
			return err
		}
		if err := checkLines("new", hi, newLines, d.newLines, newStart); err != nil {
			return err
		}
		prevOldEnd, prevNewEnd = oldStart+h.Old.Len, newStart+h.New.Len
	}
	return nil
}

// headerStart converts a header range back to a 0-based start index.
func headerStart(r patch.HunkRange) int {
	if r.Len > 0 {
		return r.Start - 1
	}
	return r.Start
}

func checkLines(side string, hi int, got []string, all []string, start int) error {
	if start < 0 || start+len(got) > len(all) {
		return fmt.Errorf("hunk[%d]: %s range [%d, %d) out of bounds (%d lines)", hi, side, start, start+len(got), len(all))
	}
	for i, ln := range got {
		if all[start+i] != ln {
			return fmt.Errorf("hunk[%d]: %s line %d is %q, want %q", hi, side, start+i, ln, all[start+i])
		}
	}
	return nil
}
