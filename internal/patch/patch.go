// Package patch holds the hunk-grouped result of a line diff and formats it as a unified diff.
//
// A Patch is an ordered list of non-overlapping Hunks. Each Hunk has a header range for each side and a list of tagged lines. Filtering a Hunk's lines to
// LineContext+LineDelete yields a contiguous slice of the old text; filtering to LineContext+LineInsert yields a contiguous slice of the new text.
//
// Lines never include their terminator. Formatting terminates every line with "\n".
package patch

import "fmt"

// LineOp tags a line in a hunk.
type LineOp int

// Line tags.
const (
	LineContext LineOp = iota // unchanged, present on both sides
	LineDelete                // present only in the old text
	LineInsert                // present only in the new text
)

// prefix is the unified-diff marker for op.
func (op LineOp) prefix() byte {
	switch op {
	case LineDelete:
		return '-'
	case LineInsert:
		return '+'
	default:
		return ' '
	}
}

func (op LineOp) String() string {
	switch op {
	case LineContext:
		return "Context"
	case LineDelete:
		return "Delete"
	case LineInsert:
		return "Insert"
	default:
		return fmt.Sprintf("LineOp(%d)", int(op))
	}
}

// Line is a single tagged line of a hunk.
type Line struct {
	Op   LineOp
	Text string // without terminator
}

// HunkRange is a hunk header range. Start is 1-based when Len > 0; when Len == 0 it is the 0-based boundary the empty side sits at (unified-diff convention).
type HunkRange struct {
	Start int
	Len   int
}

// NewHunkRange returns the header range for the 0-based, half-open span [start, start+length).
func NewHunkRange(start, length int) HunkRange {
	if length > 0 {
		return HunkRange{Start: start + 1, Len: length}
	}
	return HunkRange{Start: start, Len: length}
}

// String formats r as in a hunk header: "start" when Len == 1, else "start,len".
func (r HunkRange) String() string {
	if r.Len == 1 {
		return fmt.Sprintf("%d", r.Start)
	}
	return fmt.Sprintf("%d,%d", r.Start, r.Len)
}

// Hunk is a change region with surrounding context.
type Hunk struct {
	Old   HunkRange
	New   HunkRange
	Lines []Line
}

// Header returns the hunk header, e.g. "@@ -1,7 +1,6 @@".
func (h Hunk) Header() string {
	return fmt.Sprintf("@@ -%s +%s @@", h.Old, h.New)
}

// OldLines returns the text of h's context and deleted lines, in order.
func (h Hunk) OldLines() []string {
	return h.project(LineDelete)
}

// NewLines returns the text of h's context and inserted lines, in order.
func (h Hunk) NewLines() []string {
	return h.project(LineInsert)
}

func (h Hunk) project(keep LineOp) []string {
	var out []string
	for _, ln := range h.Lines {
		if ln.Op == LineContext || ln.Op == keep {
			out = append(out, ln.Text)
		}
	}
	return out
}

// Patch is an ordered list of hunks. Original and Modified name the two sides in the "---"/"+++" header lines; empty names format as "a" and "b".
type Patch struct {
	Original string
	Modified string
	Hunks    []Hunk
}

// IsEmpty reports whether p has no hunks (the two sides are equal).
func (p Patch) IsEmpty() bool {
	return len(p.Hunks) == 0
}

// WithNames returns a copy of p with the given side names.
func (p Patch) WithNames(original, modified string) Patch {
	p.Original = original
	p.Modified = modified
	return p
}

func (p Patch) names() (string, string) {
	original, modified := p.Original, p.Modified
	if original == "" {
		original = "a"
	}
	if modified == "" {
		modified = "b"
	}
	return original, modified
}
