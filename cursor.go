// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ispace

import (
	"github.com/gomlx/exceptions"
)

// advanceFunc takes the current index and the space it moves in, and
// returns the next index. When the traversal is exhausted it returns
// space.Limit, the canonical end sentinel.
type advanceFunc[I Index] func(index I, space Space[I]) I

// Cursor is a mutable position inside one Space, advanced by the rule
// of the Order that created it. Cursors are forward-only and
// single-pass: compare against the order's End cursor (or use Done) to
// detect completion, then discard.
//
// A single cursor must not be advanced from multiple goroutines.
// Independent cursors are safe to advance concurrently, including
// cursors over disjoint partitions of the same space: each cursor holds
// its own copy of the space.
type Cursor[I Index] struct {
	index   I
	space   Space[I]
	advance advanceFunc[I]
}

// Index returns the current multi-index. Pure accessor.
func (c Cursor[I]) Index() I { return c.index }

// Space returns the space the cursor moves in.
func (c Cursor[I]) Space() Space[I] { return c.space }

// Next advances the cursor in place, per the traversal order that
// created it.
//
// Advancing a cursor that already reached the end sentinel is
// undefined. Calling Next on a zero Cursor (one not created by an
// Order) panics: it has no advance rule bound.
func (c *Cursor[I]) Next() {
	if c.advance == nil {
		exceptions.Panicf("ispace: Cursor.Next called on a cursor with no traversal order bound -- create cursors with an Order's Begin or End")
	}
	c.index = c.advance(c.index, c.space)
}

// Equal reports whether both cursors are at the same index of the same
// space. The advance rule is not part of the comparison, so an order's
// End cursor compares equal to any exhausted cursor over its space.
func (c Cursor[I]) Equal(other Cursor[I]) bool {
	return c.index == other.index && c.space == other.space
}

// Done reports whether the cursor reached the canonical end sentinel,
// equivalent to Equal against the creating order's End cursor.
func (c Cursor[I]) Done() bool {
	return c.index == c.space.Limit
}
