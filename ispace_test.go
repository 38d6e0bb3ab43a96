// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ispace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	space := New([2]int{1, 1}, [2]int{3, 4})
	require.Equal(t, 2, space.Rank())
	require.Equal(t, 2, space.Extent(0))
	require.Equal(t, 3, space.Extent(1))
	require.Equal(t, 6, space.Size())
	require.False(t, space.IsEmpty())
	require.Equal(t, "[1:3 1:4]", space.String())
}

func TestFromBounds(t *testing.T) {
	space, err := FromBounds[[2]int](1, 3, 1, 4)
	require.NoError(t, err)
	require.Equal(t, New([2]int{1, 1}, [2]int{3, 4}), space)

	// A rank-2 space takes exactly 4 bounds: fail before any traversal.
	_, err = FromBounds[[2]int](1, 3, 1)
	require.Error(t, err)
	_, err = FromBounds[[2]int](1, 3, 1, 4, 7)
	require.Error(t, err)

	// Rank-1 and rank-3 variants.
	space1, err := FromBounds[[1]int](-2, 5)
	require.NoError(t, err)
	require.Equal(t, 7, space1.Size())
	_, err = FromBounds[[3]int](0, 1, 0, 1)
	require.Error(t, err)
}

func TestSpace_SizeAndIsEmpty(t *testing.T) {
	require.Equal(t, 0, New([2]int{1, 5}, [2]int{1, 9}).Size())
	require.True(t, New([2]int{1, 5}, [2]int{1, 9}).IsEmpty())

	// Negative extents are degenerate-but-legal and count as empty.
	require.Equal(t, 0, New([2]int{3, 0}, [2]int{1, 9}).Size())
	require.True(t, New([2]int{3, 0}, [2]int{1, 9}).IsEmpty())

	require.Equal(t, 1, New([3]int{0, 0, 0}, [3]int{1, 1, 1}).Size())
	require.False(t, New([3]int{0, 0, 0}, [3]int{1, 1, 1}).IsEmpty())
}

func TestSpace_Contains(t *testing.T) {
	space := New([2]int{1, 1}, [2]int{3, 3})
	require.True(t, space.Contains([2]int{1, 1}))
	require.True(t, space.Contains([2]int{2, 2}))
	require.False(t, space.Contains([2]int{3, 2}))
	require.False(t, space.Contains([2]int{2, 0}))
	require.False(t, space.Contains([2]int{0, 0}))
}

func TestSpace_Equality(t *testing.T) {
	// Spaces are plain comparable values.
	a := New([2]int{1, 1}, [2]int{3, 3})
	b := New([2]int{1, 1}, [2]int{3, 3})
	c := New([2]int{0, 1}, [2]int{3, 3})
	require.True(t, a == b)
	require.True(t, a != c)
}
