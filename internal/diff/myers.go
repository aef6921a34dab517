package diff

import (
	"fmt"

	"github.com/codalotl/diffcore/internal/simplelogger"
)

var logger = simplelogger.New("diff")

// A D-path starts at (0,0) and has exactly D non-diagonal edges. Every D-path is a (D-1)-path, followed by one non-diagonal edge, followed by a possibly empty
// run of diagonal edges (a snake).

// frontier holds the endpoints of the furthest reaching D-paths: get(k) is the x coordinate of the endpoint on diagonal k (y is x-k). Diagonals run from -maxD
// to maxD, so storage is biased by maxD.
//
// For a given D only diagonals with D's parity are meaningful. The others still hold values from D-1 and must not be read before they are written in the current
// pass.
type frontier struct {
	offset int
	v      []int
}

func newFrontier(maxD int) *frontier {
	return &frontier{offset: maxD, v: make([]int, 2*maxD)}
}

func (f *frontier) get(k int) int    { return f.v[k+f.offset] }
func (f *frontier) set(k int, x int) { f.v[k+f.offset] = x }
func (f *frontier) len() int         { return len(f.v) }

// maxD bounds the number of D steps needed to find a middle snake for sequences of length n and m.
func maxD(n, m int) int {
	return (n+m+1)/2 + 1
}

// snake is a run of diagonal edges from (xStart, yStart) to (xEnd, yEnd). It may be empty.
type snake struct {
	xStart, yStart int
	xEnd, yEnd     int
}

func (s snake) String() string {
	return fmt.Sprintf("(%d, %d) -> (%d, %d)", s.xStart, s.yStart, s.xEnd, s.yEnd)
}

// findMiddleSnake returns the length of the shortest edit script from old to new and the middle snake of one such script. The forward and backward searches run
// in lockstep until their furthest reaching paths overlap.
//
// old and new must both be non-empty, and vf and vb must have room for maxD(old.Len(), new.Len()) diagonals in each direction.
func findMiddleSnake[T comparable](old, new Range[T], vf, vb *frontier) (int, snake) {
	n := old.Len()
	m := new.Len()

	// The length of the shortest edit script is odd iff delta is odd (Lemma 1).
	delta := n - m
	odd := delta&1 == 1

	// Initial points: (0, -1) forward, (n, m+1) backward.
	vf.set(1, 0)
	vb.set(1, 0)

	dMax := maxD(n, m)
	if vf.len() < dMax || vb.len() < dMax {
		panic(fmt.Errorf("diff: frontier too small: have %d/%d, need %d", vf.len(), vb.len(), dMax))
	}

	for d := 0; d < dMax; d++ {
		// Forward.
		for k := d; k >= -d; k -= 2 {
			var x int
			if k == -d || (k != d && vf.get(k-1) < vf.get(k+1)) {
				x = vf.get(k + 1)
			} else {
				x = vf.get(k-1) + 1
			}
			y := x - k

			x0, y0 := x, y
			if x <= n && y >= 0 && y <= m {
				advance := old.Slice(x, n).CommonPrefixLen(new.Slice(y, m))
				x += advance
				y += advance
			}
			vf.set(k, x)

			// Only check for overlap when delta is odd and the reciprocal backward diagonal was reached at d-1.
			if odd && abs(k-delta) <= d-1 {
				if vf.get(k)+vb.get(-(k-delta)) >= n {
					return 2*d - 1, snake{xStart: x0, yStart: y0, xEnd: x, yEnd: y}
				}
			}
		}

		// Backward. Coordinates are measured from (n, m).
		for k := d; k >= -d; k -= 2 {
			var x int
			if k == -d || (k != d && vb.get(k-1) < vb.get(k+1)) {
				x = vb.get(k + 1)
			} else {
				x = vb.get(k-1) + 1
			}
			y := x - k

			x0, y0 := x, y
			if x < n && y >= 0 && y < m {
				advance := old.Slice(0, n-x).CommonSuffixLen(new.Slice(0, m-y))
				x += advance
				y += advance
			}
			vb.set(k, x)

			if !odd && abs(k-delta) <= d {
				if vb.get(k)+vf.get(-(k-delta)) >= n {
					return 2 * d, snake{xStart: n - x, yStart: m - y, xEnd: n - x0, yEnd: m - y0}
				}
			}
		}
	}

	logger.Log("no middle snake found: n=%d m=%d dMax=%d", n, m, dMax)
	panic(fmt.Errorf("diff: unable to find a middle snake (n=%d, m=%d, dMax=%d)", n, m, dMax))
}

// conquer appends the edit script from old to new to solution.
//
// vf and vb are scratch shared by the whole recursion. This is safe because recursion is depth-first: each call finishes with the arrays before the next call
// starts, and no call reads values written by a sibling.
func conquer[T comparable](old, new Range[T], vf, vb *frontier, solution []DiffRange[T]) []DiffRange[T] {
	prefixLen := old.CommonPrefixLen(new)
	if prefixLen > 0 {
		solution = append(solution, Equal(old.Slice(0, prefixLen), new.Slice(0, prefixLen)))
	}
	old = old.Slice(prefixLen, old.Len())
	new = new.Slice(prefixLen, new.Len())

	suffixLen := old.CommonSuffixLen(new)
	suffix := Equal(old.Slice(old.Len()-suffixLen, old.Len()), new.Slice(new.Len()-suffixLen, new.Len()))
	old = old.Slice(0, old.Len()-suffixLen)
	new = new.Slice(0, new.Len()-suffixLen)

	switch {
	case old.IsEmpty() && new.IsEmpty():
		// Nothing left between prefix and suffix.
	case old.IsEmpty():
		solution = append(solution, Insert(new))
	case new.IsEmpty():
		solution = append(solution, Delete(old))
	default:
		_, s := findMiddleSnake(old, new, vf, vb)

		oldLeft, oldRight := old.SplitAt(s.xStart)
		newLeft, newRight := new.SplitAt(s.yStart)

		solution = conquer(oldLeft, newLeft, vf, vb, solution)
		solution = conquer(oldRight, newRight, vf, vb, solution)
	}

	if suffixLen > 0 {
		solution = append(solution, suffix)
	}
	return solution
}

// DiffRanges returns the shortest edit script from old to new as an ordered sequence of DiffRange units viewing old and new.
func DiffRanges[T comparable](old, new []T) []DiffRange[T] {
	d := maxD(len(old), len(new))

	// vf: furthest x values searching from the top left; vb: from the bottom right.
	vf := newFrontier(d)
	vb := newFrontier(d)

	return conquer(NewRange(old), NewRange(new), vf, vb, nil)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
