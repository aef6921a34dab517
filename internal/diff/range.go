package diff

import "fmt"

// Range is a zero-copy window [offset, offset+length) over a backing slice owned by the caller.
//
// A Range is only valid while the backing slice is unmodified. Two Ranges returned by SplitAt partition their parent without gap or overlap.
type Range[T comparable] struct {
	data   []T
	offset int
	length int
}

// NewRange returns a Range covering all of data.
func NewRange[T comparable](data []T) Range[T] {
	return Range[T]{data: data, offset: 0, length: len(data)}
}

// Len returns the number of elements in r.
func (r Range[T]) Len() int { return r.length }

// IsEmpty reports whether r has no elements.
func (r Range[T]) IsEmpty() bool { return r.length == 0 }

// Offset returns r's start index in the backing slice.
func (r Range[T]) Offset() int { return r.offset }

// End returns r's end index (exclusive) in the backing slice.
func (r Range[T]) End() int { return r.offset + r.length }

// At returns the i-th element of r. It panics if i is out of range.
func (r Range[T]) At(i int) T {
	if i < 0 || i >= r.length {
		panic(fmt.Sprintf("diff: Range index %d out of range [0, %d)", i, r.length))
	}
	return r.data[r.offset+i]
}

// Elems returns the elements of r as a subslice of the backing slice (no copy). Callers must not modify it.
func (r Range[T]) Elems() []T {
	return r.data[r.offset : r.offset+r.length : r.offset+r.length]
}

// Slice returns the sub-view [begin, end) relative to r. It panics if the bounds are invalid.
func (r Range[T]) Slice(begin, end int) Range[T] {
	if begin < 0 || begin > end || end > r.length {
		panic(fmt.Sprintf("diff: Range slice bounds [%d:%d] out of range with length %d", begin, end, r.length))
	}
	return Range[T]{data: r.data, offset: r.offset + begin, length: end - begin}
}

// SplitAt returns the views [0, mid) and [mid, Len()) of r.
func (r Range[T]) SplitAt(mid int) (Range[T], Range[T]) {
	return r.Slice(0, mid), r.Slice(mid, r.length)
}

// CommonPrefixLen returns the length of the longest run shared at the start of r and other.
func (r Range[T]) CommonPrefixLen(other Range[T]) int {
	a, b := r.Elems(), other.Elems()
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// CommonSuffixLen returns the length of the longest run shared at the end of r and other.
func (r Range[T]) CommonSuffixLen(other Range[T]) int {
	a, b := r.Elems(), other.Elems()
	n := min(len(a), len(b))
	for i := 1; i <= n; i++ {
		if a[len(a)-i] != b[len(b)-i] {
			return i - 1
		}
	}
	return n
}

func (r Range[T]) String() string {
	return fmt.Sprintf("[%d:%d]", r.offset, r.offset+r.length)
}
