// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ispace

import (
	"github.com/gomlx/exceptions"
)

// Partition returns the contiguous slice of s along axis owned by
// worker number worker out of a team of workers; all other axes are
// untouched. It is a pure function of its inputs: the same arguments
// always return the same space, and s itself is never modified.
//
// The axis is split into workers chunks of Extent(axis)/workers
// indices; the last worker keeps the original Limit and so absorbs the
// remainder of the integer division. The slices of workers 0..workers-1
// are pairwise disjoint and together cover [Start[axis], Limit[axis])
// exactly.
//
// When workers exceeds the extent, the chunk is 0: every worker but the
// last gets an empty slice (which traverses zero times), and the last
// gets the whole axis. workers must be >= 1; axis must be a valid axis
// of s or Partition panics.
func (s Space[I]) Partition(axis, worker, workers int) Space[I] {
	if axis < 0 || axis >= s.Rank() {
		exceptions.Panicf("ispace: Space%s.Partition: axis %d out of range for rank %d", s, axis, s.Rank())
	}
	chunk := s.Extent(axis) / workers
	out := s
	out.Start[axis] = s.Start[axis] + worker*chunk
	if worker != workers-1 {
		out.Limit[axis] = s.Start[axis] + (worker+1)*chunk
	}
	return out
}
