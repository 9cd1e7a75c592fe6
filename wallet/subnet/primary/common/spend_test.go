// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package common

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/utils/set"
	"github.com/ava-labs/nftissuer/vms/secp256k1fx"
)

func TestMatchOwners(t *testing.T) {
	var (
		addr0 = ids.ShortID{0}
		addr1 = ids.ShortID{1}
		addr2 = ids.ShortID{2}
	)
	tests := []struct {
		name            string
		owners          *secp256k1fx.OutputOwners
		addrs           set.Set[ids.ShortID]
		minIssuanceTime uint64
		expectedSigs    []uint32
		expectedOK      bool
	}{
		{
			name: "single owner",
			owners: &secp256k1fx.OutputOwners{
				Threshold: 1,
				Addrs:     []ids.ShortID{addr0},
			},
			addrs:        set.Of(addr0),
			expectedSigs: []uint32{0},
			expectedOK:   true,
		},
		{
			name: "first threshold matches in owner order",
			owners: &secp256k1fx.OutputOwners{
				Threshold: 2,
				Addrs:     []ids.ShortID{addr0, addr1, addr2},
			},
			addrs:        set.Of(addr2, addr1, addr0),
			expectedSigs: []uint32{0, 1},
			expectedOK:   true,
		},
		{
			name: "skips unknown owners",
			owners: &secp256k1fx.OutputOwners{
				Threshold: 2,
				Addrs:     []ids.ShortID{addr0, addr1, addr2},
			},
			addrs:        set.Of(addr0, addr2),
			expectedSigs: []uint32{0, 2},
			expectedOK:   true,
		},
		{
			name: "threshold unmet",
			owners: &secp256k1fx.OutputOwners{
				Threshold: 2,
				Addrs:     []ids.ShortID{addr0, addr1},
			},
			addrs:        set.Of(addr1),
			expectedSigs: []uint32{1},
			expectedOK:   false,
		},
		{
			name: "locked",
			owners: &secp256k1fx.OutputOwners{
				Locktime:  10,
				Threshold: 1,
				Addrs:     []ids.ShortID{addr0},
			},
			addrs:           set.Of(addr0),
			minIssuanceTime: 9,
			expectedOK:      false,
		},
		{
			name: "unlocked at locktime",
			owners: &secp256k1fx.OutputOwners{
				Locktime:  10,
				Threshold: 1,
				Addrs:     []ids.ShortID{addr0},
			},
			addrs:           set.Of(addr0),
			minIssuanceTime: 10,
			expectedSigs:    []uint32{0},
			expectedOK:      true,
		},
		{
			name: "zero threshold",
			owners: &secp256k1fx.OutputOwners{
				Addrs: []ids.ShortID{addr0},
			},
			addrs:        set.Of(addr0),
			expectedSigs: []uint32{},
			expectedOK:   true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			sigs, ok := MatchOwners(test.owners, test.addrs, test.minIssuanceTime)
			require.Equal(test.expectedOK, ok)
			if test.expectedSigs != nil {
				require.Equal(test.expectedSigs, sigs)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	require := require.New(t)

	defaultOps := NewOptions(nil)
	require.Equal(context.Background(), defaultOps.Context())
	require.Equal(time.Minute, defaultOps.PollFrequency(time.Minute))
	require.False(defaultOps.AssumeDecided())
	require.Nil(defaultOps.Memo())
	require.Nil(defaultOps.PostIssuanceFunc())

	defaultAddrs := set.Of(ids.ShortID{1})
	require.Equal(defaultAddrs, defaultOps.Addresses(defaultAddrs))

	defaultOwner := &secp256k1fx.OutputOwners{Threshold: 1}
	require.Equal(defaultOwner, defaultOps.ChangeOwner(defaultOwner))

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, 1)
	customAddrs := set.Of(ids.ShortID{2})
	changeOwner := &secp256k1fx.OutputOwners{Threshold: 2}
	var issued ids.ID
	ops := NewOptions(UnionOptions(
		[]Option{
			WithContext(ctx),
			WithCustomAddresses(customAddrs),
			WithMinIssuanceTime(7),
		},
		[]Option{
			WithChangeOwner(changeOwner),
			WithMemo([]byte("memo")),
			WithAssumeDecided(),
			WithPollFrequency(time.Second),
			WithPostIssuanceFunc(func(txID ids.ID) { issued = txID }),
		},
	))
	require.Equal(ctx, ops.Context())
	require.Equal(customAddrs, ops.Addresses(defaultAddrs))
	require.Equal(uint64(7), ops.MinIssuanceTime())
	require.Equal(changeOwner, ops.ChangeOwner(defaultOwner))
	require.Equal([]byte("memo"), ops.Memo())
	require.True(ops.AssumeDecided())
	require.Equal(time.Second, ops.PollFrequency(time.Minute))

	txID := ids.GenerateTestID()
	ops.PostIssuanceFunc()(txID)
	require.Equal(txID, issued)
}
