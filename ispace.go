// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package ispace implements dense rectangular index spaces of fixed
// compile-time rank, with cursors, traversal orders and static
// partitioning for data-parallel sweeps (stencils, grid algorithms).
//
// A Space is the half-open box [Start, Limit) of integer multi-indices.
// Its rank is carried by the array type parameter, so a rank-2 space is
// a Space[[2]int] and mixing ranks is a compile error:
//
//	space := ispace.New([2]int{1, 1}, [2]int{99, 99})
//	for idx := range ispace.RowMajor(space).All() {
//		// idx is a [2]int, visited row by row.
//	}
//
// For parallel sweeps, Space.Partition slices one axis into contiguous
// per-worker sub-spaces that are pairwise disjoint and together cover
// the original space exactly once. See the parallel package for the
// fork-join glue that drives a team of workers over the slices.
//
// ## Glossary
//
//   - Rank: number of axes of a space, fixed by the index array type.
//   - Axis: the position of one dimension in the multi-index, 0-based.
//   - Extent: Limit-Start along one axis; an extent <= 0 makes the
//     whole space empty.
//   - End sentinel: the canonical terminal cursor position, always
//     exactly Limit, for every traversal order.
package ispace

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Index constrains multi-indices to fixed-size integer arrays, making
// the rank a compile-time property: a wrong number of coordinates does
// not compile. Ranks 1 to 10 are supported; rank 0 is unrepresentable.
type Index interface {
	[1]int | [2]int | [3]int | [4]int | [5]int |
		[6]int | [7]int | [8]int | [9]int | [10]int
}

// Space is a dense rectangular range of multi-indices: the half-open
// box [Start, Limit). It is a plain value, copied freely, compared
// with ==, and never mutated by the iteration machinery -- partitioning
// returns new, independent spaces.
//
// No ordering between Start and Limit is enforced: a Space with
// Start[axis] >= Limit[axis] for some axis is legal and simply empty.
type Space[I Index] struct {
	Start I // Inclusive lower bound per axis.
	Limit I // Exclusive upper bound per axis.
}

// New returns the space [start, limit). The rank is fixed by the array
// type: ispace.New([2]int{0, 0}, [2]int{4, 4}) is a rank-2 space.
func New[I Index](start, limit I) Space[I] {
	return Space[I]{Start: start, Limit: limit}
}

// FromBounds builds a Space from 2N interleaved bounds, in axis order:
// start0, limit0, start1, limit1, ...
//
// It is the runtime-checked alternative to New for bounds that only
// exist as a flat list (flags, decoded configs): it returns an error if
// the number of bounds is not exactly twice the rank of I.
func FromBounds[I Index](bounds ...int) (Space[I], error) {
	var s Space[I]
	rank := len(s.Start)
	if len(bounds) != 2*rank {
		return s, errors.Errorf("ispace.FromBounds: rank %d space takes %d bounds, got %d", rank, 2*rank, len(bounds))
	}
	for axis := 0; axis < rank; axis++ {
		s.Start[axis] = bounds[2*axis]
		s.Limit[axis] = bounds[2*axis+1]
	}
	return s, nil
}

// Rank returns the number of axes of the space.
func (s Space[I]) Rank() int { return len(s.Start) }

// Extent returns Limit-Start along the given axis. It may be negative
// for degenerate (empty) spaces.
func (s Space[I]) Extent(axis int) int { return s.Limit[axis] - s.Start[axis] }

// Size returns the number of multi-indices in the space, the product
// of the extents. Degenerate spaces have size 0.
func (s Space[I]) Size() int {
	size := 1
	for axis := 0; axis < s.Rank(); axis++ {
		extent := s.Extent(axis)
		if extent <= 0 {
			return 0
		}
		size *= extent
	}
	return size
}

// IsEmpty reports whether the space contains no multi-indices, that is,
// whether any axis has extent <= 0.
func (s Space[I]) IsEmpty() bool {
	for axis := 0; axis < s.Rank(); axis++ {
		if s.Extent(axis) <= 0 {
			return true
		}
	}
	return false
}

// Contains reports whether idx lies inside the box [Start, Limit).
func (s Space[I]) Contains(idx I) bool {
	for axis := 0; axis < s.Rank(); axis++ {
		if idx[axis] < s.Start[axis] || idx[axis] >= s.Limit[axis] {
			return false
		}
	}
	return true
}

// String formats the space as "[start:limit ...]", one start:limit pair
// per axis.
func (s Space[I]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for axis := 0; axis < s.Rank(); axis++ {
		if axis > 0 {
			b.WriteByte(' ')
		}
		_, _ = fmt.Fprintf(&b, "%d:%d", s.Start[axis], s.Limit[axis])
	}
	b.WriteByte(']')
	return b.String()
}
