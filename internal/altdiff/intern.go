package altdiff

// Token is the dense id of an interned value.
type Token uint32

// Interner maps values to Tokens in first-seen order. Tokens are never reused until Clear.
type Interner[T comparable] struct {
	values []T
	ids    map[T]Token
}

// NewInterner returns an empty Interner sized for about capacity distinct values.
func NewInterner[T comparable](capacity int) *Interner[T] {
	return &Interner[T]{
		values: make([]T, 0, capacity),
		ids:    make(map[T]Token, capacity),
	}
}

// Intern returns v's Token, assigning the next one if v is new.
func (in *Interner[T]) Intern(v T) Token {
	if t, ok := in.ids[v]; ok {
		return t
	}
	t := Token(len(in.values))
	in.values = append(in.values, v)
	in.ids[v] = t
	return t
}

// InternAll interns each value in vs, appending the Tokens to dst.
func (in *Interner[T]) InternAll(dst []Token, vs []T) []Token {
	for _, v := range vs {
		dst = append(dst, in.Intern(v))
	}
	return dst
}

// NumTokens returns the number of distinct values interned.
func (in *Interner[T]) NumTokens() int {
	return len(in.values)
}

// Value returns the value interned as t. It panics if t was not issued by in.
func (in *Interner[T]) Value(t Token) T {
	return in.values[t]
}

// Clear forgets all values. Tokens issued before Clear must not be used afterwards.
func (in *Interner[T]) Clear() {
	in.values = in.values[:0]
	clear(in.ids)
}

// InternedInput is a pair of token sequences sharing one Interner.
type InternedInput[T comparable] struct {
	Before   []Token
	After    []Token
	Interner *Interner[T]
}

// NewInternedInput interns before and after.
func NewInternedInput[T comparable](before, after []T) *InternedInput[T] {
	in := NewInterner[T](len(before) + len(after))
	return &InternedInput[T]{
		Before:   in.InternAll(make([]Token, 0, len(before)), before),
		After:    in.InternAll(make([]Token, 0, len(after)), after),
		Interner: in,
	}
}

// MergeInput is three token sequences sharing one Interner: the common ancestor (Base) and two revisions (Left, "ours", and Right, "theirs"). It is an input
// representation only; merging is up to the caller.
type MergeInput[T comparable] struct {
	Base     []Token
	Left     []Token
	Right    []Token
	Interner *Interner[T]
}

// NewMergeInput interns base, left, and right.
func NewMergeInput[T comparable](base, left, right []T) *MergeInput[T] {
	mi := &MergeInput[T]{
		Base:     make([]Token, 0, len(base)),
		Left:     make([]Token, 0, len(left)),
		Right:    make([]Token, 0, len(right)),
		Interner: NewInterner[T](len(base) + len(left) + len(right)),
	}
	mi.UpdateBase(base)
	mi.UpdateLeft(left)
	mi.UpdateRight(right)
	return mi
}

// UpdateBase replaces Base with the tokens of values.
//
// Values interned earlier stay in the Interner, so memory grows with every update. Long-running callers should Clear periodically.
func (mi *MergeInput[T]) UpdateBase(values []T) {
	mi.Base = mi.Interner.InternAll(mi.Base[:0], values)
}

// UpdateLeft replaces Left with the tokens of values. See UpdateBase about memory.
func (mi *MergeInput[T]) UpdateLeft(values []T) {
	mi.Left = mi.Interner.InternAll(mi.Left[:0], values)
}

// UpdateRight replaces Right with the tokens of values. See UpdateBase about memory.
func (mi *MergeInput[T]) UpdateRight(values []T) {
	mi.Right = mi.Interner.InternAll(mi.Right[:0], values)
}

// Clear empties all three sequences and the Interner.
func (mi *MergeInput[T]) Clear() {
	mi.Base = mi.Base[:0]
	mi.Left = mi.Left[:0]
	mi.Right = mi.Right[:0]
	mi.Interner.Clear()
}
