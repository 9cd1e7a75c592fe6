// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sortable int

func (s sortable) Less(other sortable) bool {
	return s < other
}

func TestSortSortable(t *testing.T) {
	require := require.New(t)

	s := []sortable{3, 1, 2}
	Sort(s)
	require.Equal([]sortable{1, 2, 3}, s)
	require.True(IsSortedAndUnique(s))

	s = []sortable{1, 1}
	require.False(IsSortedAndUnique(s))
}

func TestSortBytes(t *testing.T) {
	require := require.New(t)

	s := [][]byte{{2}, {1, 5}, {1}}
	require.False(IsSortedBytes(s))
	SortBytes(s)
	require.Equal([][]byte{{1}, {1, 5}, {2}}, s)
	require.True(IsSortedBytes(s))

	// Duplicates are sorted but not unique.
	require.True(IsSortedBytes([][]byte{{1}, {1}}))
}

func TestIsSortedAndUniqueOrdered(t *testing.T) {
	require := require.New(t)

	require.True(IsSortedAndUniqueOrdered([]uint32{}))
	require.True(IsSortedAndUniqueOrdered([]uint32{0, 2, 7}))
	require.False(IsSortedAndUniqueOrdered([]uint32{1, 0}))
	require.False(IsSortedAndUniqueOrdered([]uint32{1, 1}))
}
