package diff

import "github.com/codalotl/diffcore/internal/patch"

// ToPatch assembles d's change regions into hunks with up to contextLen lines of unchanged context on each side. A negative contextLen is treated as 0.
//
// Regions separated by at most 2*contextLen unchanged lines share a hunk, with the lines between them emitted as context. Within a region, deleted lines precede
// inserted lines. Context lines are taken from the new side (they are equal on both sides).
func (d *LineDiff) ToPatch(contextLen int) patch.Patch {
	contextLen = max(contextLen, 0)
	oldLen, newLen := len(d.oldLines), len(d.newLines)

	// calcEnd returns the hunk ends after post-context. Both sides get the same number of context lines.
	calcEnd := func(oldEnd, newEnd int) (int, int) {
		postContextLen := min(contextLen, max(oldLen-oldEnd, 0), max(newLen-newEnd, 0))
		return oldEnd + postContextLen, newEnd + postContextLen
	}

	var hunks []patch.Hunk
	for idx := 0; idx < len(d.editScript); idx++ {
		script := d.editScript[idx]

		start1 := max(script.Old.Start-contextLen, 0)
		start2 := max(script.New.Start-contextLen, 0)
		end1, end2 := calcEnd(script.Old.End, script.New.End)

		var lines []patch.Line

		// Pre-context.
		for _, ln := range d.newLines[start2:script.New.Start] {
			lines = append(lines, patch.Line{Op: patch.LineContext, Text: ln})
		}

		for {
			for _, ln := range d.oldLines[script.Old.Start:script.Old.End] {
				lines = append(lines, patch.Line{Op: patch.LineDelete, Text: ln})
			}
			for _, ln := range d.newLines[script.New.Start:script.New.End] {
				lines = append(lines, patch.Line{Op: patch.LineInsert, Text: ln})
			}

			if idx+1 >= len(d.editScript) {
				break
			}
			next := d.editScript[idx+1]
			if max(next.Old.Start-contextLen, 0) > end1 {
				break
			}

			// Merge: the lines between the two regions become context.
			for _, ln := range d.newLines[script.New.End:next.New.Start] {
				lines = append(lines, patch.Line{Op: patch.LineContext, Text: ln})
			}
			end1, end2 = calcEnd(next.Old.End, next.New.End)
			script = next
			idx++
		}

		// Post-context.
		for _, ln := range d.newLines[script.New.End:end2] {
			lines = append(lines, patch.Line{Op: patch.LineContext, Text: ln})
		}

		hunks = append(hunks, patch.Hunk{
			Old:   patch.NewHunkRange(start1, end1-start1),
			New:   patch.NewHunkRange(start2, end2-start2),
			Lines: lines,
		})
	}

	return patch.Patch{Hunks: hunks}
}
