package patch

import "strings"

// String returns p as unified-diff text without color. Every line, including the last, ends in "\n".
func (p Patch) String() string {
	return p.Render(false)
}

// Render returns p as unified-diff text:
//
//	--- a
//	+++ b
//	@@ -1,7 +1,6 @@
//	-deleted
//	 context
//	+inserted
//
// If color, header lines are cyan, hunk headers magenta, deletions red, and insertions green (ANSI). A patch with no hunks renders only the two file header lines.
func (p Patch) Render(color bool) string {
	// Colors (ANSI). Applied only if color==true.
	const (
		reset    = "\x1b[0m"
		red      = "\x1b[31m"
		green    = "\x1b[32m"
		magenta  = "\x1b[35m"
		cyanBold = "\x1b[1;36m"
	)

	colorize := func(s, code string) string {
		if !color {
			return s
		}
		return code + s + reset
	}

	var b strings.Builder
	writeLine := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}

	original, modified := p.names()
	writeLine(colorize("--- "+original, cyanBold))
	writeLine(colorize("+++ "+modified, cyanBold))

	for _, h := range p.Hunks {
		writeLine(colorize(h.Header(), magenta))
		for _, ln := range h.Lines {
			line := string(ln.Op.prefix()) + ln.Text
			switch ln.Op {
			case LineInsert:
				writeLine(colorize(line, green))
			case LineDelete:
				writeLine(colorize(line, red))
			default:
				writeLine(line)
			}
		}
	}

	return b.String()
}
