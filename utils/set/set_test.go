// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package set

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	require := require.New(t)
	id1 := 1

	s := Set[int]{id1: struct{}{}}

	s.Add(id1)
	require.True(s.Contains(id1))

	s.Remove(id1)
	require.False(s.Contains(id1))

	s.Add(id1)
	require.True(s.Contains(id1))
	require.Len(s.List(), 1)
	require.Equal(id1, s.List()[0])

	s.Clear()
	require.False(s.Contains(id1))

	s.Add(id1)

	s2 := Set[int]{}

	require.False(s.Overlaps(s2))

	s2.Union(s)
	require.True(s2.Contains(id1))
	require.True(s.Overlaps(s2))

	s2.Difference(s)
	require.False(s2.Contains(id1))
	require.False(s.Overlaps(s2))
}

func TestOf(t *testing.T) {
	tests := []struct {
		name     string
		elements []int
		expected []int
	}{
		{
			name:     "nil",
			elements: nil,
			expected: []int{},
		},
		{
			name:     "one",
			elements: []int{1},
			expected: []int{1},
		},
		{
			name:     "duplicates",
			elements: []int{1, 2, 1},
			expected: []int{1, 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			s := Of(tt.elements...)
			require.Len(s, len(tt.expected))
			for _, expected := range tt.expected {
				require.True(s.Contains(expected))
			}
		})
	}
}

func TestSetPeek(t *testing.T) {
	require := require.New(t)

	s := Set[int]{}
	_, ok := s.Peek()
	require.False(ok)

	s.Add(7)
	elt, ok := s.Peek()
	require.True(ok)
	require.Equal(7, elt)
}

func TestSetEquals(t *testing.T) {
	require := require.New(t)

	require.True(Of(1, 2).Equals(Of(2, 1)))
	require.False(Of(1, 2).Equals(Of(1)))
	require.True(Set[int]{}.Equals(nil))
}

func TestSetUnmarshalJSON(t *testing.T) {
	require := require.New(t)

	s := Set[int]{}
	require.NoError(json.Unmarshal([]byte("[1,2,2]"), &s))
	require.Equal(Of(1, 2), s)

	require.NoError(json.Unmarshal([]byte("null"), &s))
	require.Equal(Of(1, 2), s)
}
