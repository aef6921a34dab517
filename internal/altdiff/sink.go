package altdiff

import "github.com/codalotl/diffcore/internal/diff"

// rangeBuilder turns a sequence of change regions into a raw script. Unchanged runs between regions become OpEqual units, so the output has the same shape as
// diff.DiffRanges.
type rangeBuilder struct {
	before diff.Range[Token]
	after  diff.Range[Token]

	prevBeforeEnd int
	prevAfterEnd  int

	dst []diff.DiffRange[Token]
}

func newRangeBuilder(before, after []Token) *rangeBuilder {
	return &rangeBuilder{
		before: diff.NewRange(before),
		after:  diff.NewRange(after),
	}
}

// processChange records that before was replaced by after. Regions must arrive in order; either side may be empty.
func (b *rangeBuilder) processChange(before, after diff.Bounds) {
	b.pushEqual(before.Start, after.Start)
	if !before.IsEmpty() {
		b.dst = append(b.dst, diff.Delete(b.before.Slice(before.Start, before.End)))
	}
	if !after.IsEmpty() {
		b.dst = append(b.dst, diff.Insert(b.after.Slice(after.Start, after.End)))
	}
	b.prevBeforeEnd, b.prevAfterEnd = before.End, after.End
}

// finish emits the trailing unchanged run and returns the script.
func (b *rangeBuilder) finish() []diff.DiffRange[Token] {
	b.pushEqual(b.before.Len(), b.after.Len())
	return b.dst
}

func (b *rangeBuilder) pushEqual(beforeEnd, afterEnd int) {
	if beforeEnd == b.prevBeforeEnd && afterEnd == b.prevAfterEnd {
		return
	}
	b.dst = append(b.dst, diff.Equal(b.before.Slice(b.prevBeforeEnd, beforeEnd), b.after.Slice(b.prevAfterEnd, afterEnd)))
}
