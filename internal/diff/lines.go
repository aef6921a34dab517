package diff

import "strings"

// defaultEOL is the EOL ('\n').
//
// This constant exists because the design may change to allow configurable EOLs, and this provides a nice hook to find callsites.
const defaultEOL = "\n"

// LineDiff is a line-granularity diff: the lines of both sides and the change regions between them. Use ToPatch to assemble hunks.
type LineDiff struct {
	oldLines   []string
	newLines   []string
	editScript []EditRange
}

// DiffLines diffs oldText to newText line by line. Lines are compared by content; terminators are not part of a line (see splitLines).
func DiffLines(oldText, newText string) *LineDiff {
	oldLines := splitLines(oldText)
	newLines := splitLines(newText)

	c := newClassifier()
	oldIDs := c.classifyAll(oldLines)
	newIDs := c.classifyAll(newLines)

	return NewLineDiff(oldLines, newLines, DiffRanges(oldIDs, newIDs))
}

// NewLineDiff builds a LineDiff from a raw script computed by any backend over per-line tokens. Index i of either token sequence must correspond to line i of the
// same side.
func NewLineDiff[T comparable](oldLines, newLines []string, solution []DiffRange[T]) *LineDiff {
	return &LineDiff{
		oldLines:   oldLines,
		newLines:   newLines,
		editScript: BuildEditScript(solution),
	}
}

// OldLines returns the old side's lines. Callers must not modify the result.
func (d *LineDiff) OldLines() []string { return d.oldLines }

// NewLines returns the new side's lines. Callers must not modify the result.
func (d *LineDiff) NewLines() []string { return d.newLines }

// EditScript returns the change regions, in order. Callers must not modify the result.
func (d *LineDiff) EditScript() []EditRange { return d.editScript }

// splitLines splits text on defaultEOL. Terminators are dropped, as is a '\r' immediately before one. A final terminator does not start an empty line, and
// empty text has no lines.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, defaultEOL)
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, ln := range lines {
		if core, ok := trimEOL(ln, defaultEOL); ok {
			core, _ = trimEOL(core, "\r")
			lines[i] = core
		}
	}
	return lines
}

// trimEOL removes a trailing eol from a line if present.
func trimEOL(line, eol string) (string, bool) {
	if eol != "" && strings.HasSuffix(line, eol) {
		return line[:len(line)-len(eol)], true
	}
	return line, false
}
