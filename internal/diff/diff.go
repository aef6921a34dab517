package diff

import "fmt"

// Op is an operation from old sequence to new sequence.
type Op int

// Operations from old sequence to new sequence.
const (
	OpEqual Op = iota
	OpInsert
	OpDelete
)

func (op Op) String() string {
	switch op {
	case OpEqual:
		return "Equal"
	case OpInsert:
		return "Insert"
	case OpDelete:
		return "Delete"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// DiffRange is one unit of a raw edit script.
//
// Shapes:
//   - OpEqual: Old and New are views of identical content and length.
//   - OpDelete: Old is the deleted run; New is the zero Range.
//   - OpInsert: New is the inserted run; Old is the zero Range.
//
// Use Equal, Delete, and Insert to construct values.
type DiffRange[T comparable] struct {
	Op  Op       // Operation for this unit.
	Old Range[T] // View into the old sequence; zero for OpInsert.
	New Range[T] // View into the new sequence; zero for OpDelete.
}

// Equal returns an OpEqual unit. old and new must have the same length.
func Equal[T comparable](old, new Range[T]) DiffRange[T] {
	return DiffRange[T]{Op: OpEqual, Old: old, New: new}
}

// Delete returns an OpDelete unit.
func Delete[T comparable](old Range[T]) DiffRange[T] {
	return DiffRange[T]{Op: OpDelete, Old: old}
}

// Insert returns an OpInsert unit.
func Insert[T comparable](new Range[T]) DiffRange[T] {
	return DiffRange[T]{Op: OpInsert, New: new}
}

// Len returns the number of elements covered by dr (on either side, for OpEqual).
func (dr DiffRange[T]) Len() int {
	switch dr.Op {
	case OpEqual, OpDelete:
		return dr.Old.Len()
	default:
		return dr.New.Len()
	}
}

func (dr DiffRange[T]) String() string {
	switch dr.Op {
	case OpEqual:
		return fmt.Sprintf("Equal(%s, %s)", dr.Old, dr.New)
	case OpDelete:
		return fmt.Sprintf("Delete(%s)", dr.Old)
	default:
		return fmt.Sprintf("Insert(%s)", dr.New)
	}
}

// Edit is a DiffRange materialized over the caller's data: Text is the run of old (OpEqual, OpDelete) or new (OpInsert) content.
type Edit[S any] struct {
	Op   Op
	Text S
}

func (e Edit[S]) String() string {
	return fmt.Sprintf("%v(%v)", e.Op, e.Text)
}
