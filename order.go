// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ispace

import "iter"

// Order is a traversal order over one Space: it hands out cursors
// already bound to its advance rule. Begin/End/Next/Equal give the
// explicit loop; All gives the same enumeration as a range-over-func
// sequence.
//
// Every order enumerates each multi-index of [Start, Limit) exactly
// once, no duplicates, no omissions, ending at the canonical end
// sentinel (index == Limit).
type Order[I Index] interface {
	// Begin returns a cursor at the first index of the traversal.
	// For an empty space Begin returns the end sentinel directly, so
	// Begin.Equal(End) holds and the traversal yields nothing.
	Begin() Cursor[I]

	// End returns the end sentinel cursor: its index is exactly the
	// space's Limit, whatever axis overflowed last.
	End() Cursor[I]

	// All ranges over every index of the space in this order. The
	// yielded values are plain array copies, safe to retain.
	All() iter.Seq[I]

	// Space returns the space being traversed.
	Space() Space[I]
}

// RowMajorOrder traverses a space with the last axis varying fastest,
// the layout order of nested Go slices and of C arrays.
type RowMajorOrder[I Index] struct {
	space Space[I]
}

// RowMajor returns the row-major traversal of space.
func RowMajor[I Index](space Space[I]) RowMajorOrder[I] {
	return RowMajorOrder[I]{space: space}
}

func (o RowMajorOrder[I]) Space() Space[I] { return o.space }

func (o RowMajorOrder[I]) Begin() Cursor[I] { return begin(o.space, rowMajorAdvance[I]) }

func (o RowMajorOrder[I]) End() Cursor[I] { return end(o.space, rowMajorAdvance[I]) }

func (o RowMajorOrder[I]) All() iter.Seq[I] { return all[I](o) }

// ColumnMajorOrder traverses a space with the first axis varying
// fastest, the layout order of Fortran arrays.
type ColumnMajorOrder[I Index] struct {
	space Space[I]
}

// ColumnMajor returns the column-major traversal of space.
func ColumnMajor[I Index](space Space[I]) ColumnMajorOrder[I] {
	return ColumnMajorOrder[I]{space: space}
}

func (o ColumnMajorOrder[I]) Space() Space[I] { return o.space }

func (o ColumnMajorOrder[I]) Begin() Cursor[I] { return begin(o.space, columnMajorAdvance[I]) }

func (o ColumnMajorOrder[I]) End() Cursor[I] { return end(o.space, columnMajorAdvance[I]) }

func (o ColumnMajorOrder[I]) All() iter.Seq[I] { return all[I](o) }

// begin and end build the cursors shared by the concrete orders.
func begin[I Index](space Space[I], advance advanceFunc[I]) Cursor[I] {
	c := Cursor[I]{index: space.Start, space: space, advance: advance}
	if space.IsEmpty() {
		// Empty spaces start exhausted: Begin must equal End.
		c.index = space.Limit
	}
	return c
}

func end[I Index](space Space[I], advance advanceFunc[I]) Cursor[I] {
	return Cursor[I]{index: space.Limit, space: space, advance: advance}
}

func all[I Index](o Order[I]) iter.Seq[I] {
	return func(yield func(I) bool) {
		for c := o.Begin(); !c.Done(); c.Next() {
			if !yield(c.Index()) {
				return
			}
		}
	}
}

// rowMajorAdvance increments the last axis; on overflow it resets the
// axis to its start and carries into the previous one. When the carry
// runs past axis 0 the whole index snaps to Limit, the canonical end
// sentinel -- intermediate one-past-end states are never observable.
func rowMajorAdvance[I Index](index I, space Space[I]) I {
	for axis := len(index) - 1; axis >= 0; axis-- {
		index[axis]++
		if index[axis] < space.Limit[axis] {
			return index
		}
		index[axis] = space.Start[axis]
	}
	return space.Limit
}

// columnMajorAdvance is rowMajorAdvance mirrored: the first axis varies
// fastest and the carry moves toward the last axis.
func columnMajorAdvance[I Index](index I, space Space[I]) I {
	for axis := 0; axis < len(index); axis++ {
		index[axis]++
		if index[axis] < space.Limit[axis] {
			return index
		}
		index[axis] = space.Start[axis]
	}
	return space.Limit
}
