// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/nftissuer/ids"
)

func TestOutputOwnersVerify(t *testing.T) {
	tests := []struct {
		name        string
		out         *OutputOwners
		expectedErr error
	}{
		{
			name:        "nil",
			out:         nil,
			expectedErr: ErrNilOutput,
		},
		{
			name: "threshold > num addrs",
			out: &OutputOwners{
				Threshold: 1,
				Addrs:     []ids.ShortID{},
			},
			expectedErr: ErrOutputUnspendable,
		},
		{
			name: "unoptimized",
			out: &OutputOwners{
				Threshold: 0,
				Addrs:     []ids.ShortID{ids.GenerateTestShortID()},
			},
			expectedErr: ErrOutputUnoptimized,
		},
		{
			name: "not sorted",
			out: &OutputOwners{
				Threshold: 1,
				Addrs:     []ids.ShortID{{2}, {1}},
			},
			expectedErr: ErrAddrsNotSortedUnique,
		},
		{
			name: "not unique",
			out: &OutputOwners{
				Threshold: 1,
				Addrs:     []ids.ShortID{{2}, {2}},
			},
			expectedErr: ErrAddrsNotSortedUnique,
		},
		{
			name: "passes verification",
			out: &OutputOwners{
				Threshold: 1,
				Addrs:     []ids.ShortID{{1}, {2}},
			},
			expectedErr: nil,
		},
		{
			name:        "empty owners",
			out:         &OutputOwners{},
			expectedErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.out.Verify()
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestOutputOwnersEquals(t *testing.T) {
	require := require.New(t)

	require.True((*OutputOwners)(nil).Equals(nil))

	out0 := &OutputOwners{
		Threshold: 1,
		Addrs:     []ids.ShortID{ids.ShortEmpty},
	}
	out1 := &OutputOwners{
		Threshold: 1,
		Addrs:     []ids.ShortID{{1}},
	}
	require.False(out0.Equals(out1))
	require.False(out0.Equals(nil))

	out2 := &OutputOwners{
		Threshold: 1,
		Addrs:     []ids.ShortID{{1}},
	}
	require.True(out1.Equals(out2))

	out2.Locktime = 1
	require.False(out1.Equals(out2))
}

func TestOutputOwnersSort(t *testing.T) {
	require := require.New(t)

	out := &OutputOwners{
		Threshold: 2,
		Addrs:     []ids.ShortID{{3}, {1}, {2}},
	}
	require.ErrorIs(out.Verify(), ErrAddrsNotSortedUnique)

	out.Sort()
	require.NoError(out.Verify())
	require.Equal([]ids.ShortID{{1}, {2}, {3}}, out.Addrs)
	addrs := out.AddressesSet()
	require.True(addrs.Contains(ids.ShortID{2}))
	require.Len(out.Addresses(), 3)
}
