// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package grids provides a minimal dense 2-D grid of floats, backed by
// a flat row-major slice. It is the sample data structure swept by the
// stencil example and the end-to-end tests; it is not a tensor library.
package grids

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/ispace"
	"golang.org/x/exp/constraints"
)

// Grid is a rows x cols dense grid of floats. The zero value is not
// usable; create grids with New.
type Grid[T constraints.Float] struct {
	rows, cols int
	cells      []T
}

// New returns a zero-filled rows x cols grid. Both dimensions must be
// positive or New panics.
func New[T constraints.Float](rows, cols int) *Grid[T] {
	if rows <= 0 || cols <= 0 {
		exceptions.Panicf("grids.New: grid dimensions must be positive, got %dx%d", rows, cols)
	}
	return &Grid[T]{
		rows:  rows,
		cols:  cols,
		cells: make([]T, rows*cols),
	}
}

// Rows returns the number of rows (axis 0).
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns (axis 1).
func (g *Grid[T]) Cols() int { return g.cols }

// At returns the cell at row i, column j.
func (g *Grid[T]) At(i, j int) T { return g.cells[i*g.cols+j] }

// Set writes the cell at row i, column j.
func (g *Grid[T]) Set(i, j int, value T) { g.cells[i*g.cols+j] = value }

// Fill sets every cell to value.
func (g *Grid[T]) Fill(value T) {
	for i := range g.cells {
		g.cells[i] = value
	}
}

// Space returns the index space of the whole grid: [0,0] to [rows,cols).
func (g *Grid[T]) Space() ispace.Space[[2]int] {
	return ispace.New([2]int{0, 0}, [2]int{g.rows, g.cols})
}

// Interior returns the index space of the non-border cells, the region
// a 4-neighbour stencil can read without bounds checks. Grids smaller
// than 3x3 have an empty interior.
func (g *Grid[T]) Interior() ispace.Space[[2]int] {
	return ispace.New([2]int{1, 1}, [2]int{g.rows - 1, g.cols - 1})
}
