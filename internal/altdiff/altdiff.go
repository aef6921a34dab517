// Package altdiff is an alternate diff backend: tokens are interned here and the search is delegated to github.com/sergi/go-diff. Results are returned in the
// same shape as the diff package's (raw []diff.DiffRange, or a *diff.LineDiff), so compression and hunk assembly do not depend on the backend.
//
// The engine is go-diff's Myers bisection with its own prefix/suffix and cleanup passes, not a histogram or patience diff. Scripts are valid but need not match
// the diff package's: the two may place edits differently when several minimal scripts exist, and a Timeout can make the result non-minimal.
//
// Lines keep their terminators when interned, so a last line without '\n' differs from the same line with one. Lines are shown without terminators.
//
// MergeInput interns a base and two revisions for callers that implement a three-way merge. This package does no merging and nothing here consumes MergeInput.
package altdiff

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/codalotl/diffcore/internal/diff"
	"github.com/codalotl/diffcore/internal/simplelogger"
	"github.com/sergi/go-diff/diffmatchpatch"
)

var logger = simplelogger.New("altdiff")

// ErrTooManyTokens is returned when an input has more distinct tokens than the engine can represent.
var ErrTooManyTokens = errors.New("altdiff: too many distinct tokens")

// errInconsistentScript means the engine's script does not cover both inputs.
var errInconsistentScript = errors.New("altdiff: engine returned an inconsistent script")

// Tokens are handed to the engine as runes. Surrogates are not valid runes, so tokens at or above surrogateMin are shifted past the surrogate block.
const (
	surrogateMin = 0xD800
	surrogateLen = 0x800
	maxTokens    = utf8.MaxRune + 1 - surrogateLen
)

// Options configure the engine.
type Options struct {
	// Timeout bounds the engine's search. When it expires the engine returns a valid but possibly non-minimal script. Zero or negative means no limit.
	Timeout time.Duration

	// Cleanup runs the engine's merge cleanup, which coalesces adjacent edits and slides edits to canonical positions.
	Cleanup bool
}

// DiffTokens diffs before to after. The returned ranges view before and after.
func DiffTokens(before, after []Token, opts Options) ([]diff.DiffRange[Token], error) {
	beforeRunes, err := tokensToRunes(before)
	if err != nil {
		return nil, err
	}
	afterRunes, err := tokensToRunes(after)
	if err != nil {
		return nil, err
	}

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = opts.Timeout
	diffs := dmp.DiffMainRunes(beforeRunes, afterRunes, false)
	if opts.Cleanup {
		diffs = dmp.DiffCleanupMerge(diffs)
	}

	b := newRangeBuilder(before, after)
	var beforeIdx, afterIdx int
	var open *diff.EditRange
	flush := func() {
		if open != nil {
			b.processChange(open.Old, open.New)
			open = nil
		}
	}
	for _, d := range diffs {
		n := utf8.RuneCountInString(d.Text)
		if n == 0 {
			continue
		}
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			beforeIdx += n
			afterIdx += n
		case diffmatchpatch.DiffDelete:
			if open == nil {
				open = &diff.EditRange{Old: diff.Bounds{Start: beforeIdx, End: beforeIdx}, New: diff.Bounds{Start: afterIdx, End: afterIdx}}
			}
			open.Old.End += n
			beforeIdx += n
		case diffmatchpatch.DiffInsert:
			if open == nil {
				open = &diff.EditRange{Old: diff.Bounds{Start: beforeIdx, End: beforeIdx}, New: diff.Bounds{Start: afterIdx, End: afterIdx}}
			}
			open.New.End += n
			afterIdx += n
		}
	}

	if beforeIdx != len(before) || afterIdx != len(after) {
		logger.Log("script covers %d/%d before and %d/%d after tokens", beforeIdx, len(before), afterIdx, len(after))
		return nil, fmt.Errorf("%w: covers %d of %d before and %d of %d after tokens", errInconsistentScript, beforeIdx, len(before), afterIdx, len(after))
	}
	flush()

	return b.finish(), nil
}

// DiffLines diffs oldText to newText line by line. Use the result's ToPatch to assemble hunks.
func DiffLines(oldText, newText string, opts Options) (*diff.LineDiff, error) {
	input := NewInternedInput(Lines(oldText), Lines(newText))

	solution, err := DiffTokens(input.Before, input.After, opts)
	if err != nil {
		return nil, err
	}

	return diff.NewLineDiff(displayLines(input.Before, input.Interner), displayLines(input.After, input.Interner), solution), nil
}

func displayLines(tokens []Token, in *Interner[string]) []string {
	lines := make([]string, len(tokens))
	for i, t := range tokens {
		lines[i] = trimEOL(in.Value(t))
	}
	return lines
}

func tokensToRunes(tokens []Token) ([]rune, error) {
	runes := make([]rune, len(tokens))
	for i, t := range tokens {
		if t >= maxTokens {
			logger.Log("token %d exceeds the engine limit of %d", t, maxTokens)
			return nil, fmt.Errorf("%w: token %d, limit %d", ErrTooManyTokens, t, maxTokens)
		}
		r := rune(t)
		if r >= surrogateMin {
			r += surrogateLen
		}
		runes[i] = r
	}
	return runes, nil
}
