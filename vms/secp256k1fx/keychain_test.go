// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/utils"
	"github.com/ava-labs/nftissuer/utils/crypto/secp256k1"
)

func TestKeychainAdd(t *testing.T) {
	require := require.New(t)

	keys := secp256k1.TestKeys()
	kc := NewKeychain()
	kc.Add(keys[0])
	kc.Add(keys[0])

	require.Len(kc.Keys, 1)
	require.Equal(1, kc.Addresses().Len())

	signer, ok := kc.Get(keys[0].Address())
	require.True(ok)
	require.Equal(keys[0].Address(), signer.Address())

	signer, ok = kc.Get(ids.ShortEmpty)
	require.False(ok)
	require.Nil(signer)
}

func TestKeychainMatch(t *testing.T) {
	require := require.New(t)

	keys := secp256k1.TestKeys()
	kc := NewKeychain(keys[1], keys[2])

	addrs := []ids.ShortID{
		keys[0].Address(),
		keys[1].Address(),
		keys[2].Address(),
	}
	utils.Sort(addrs)

	owners := &OutputOwners{
		Threshold: 1,
		Addrs:     addrs,
	}
	sigs, signers, ok := kc.Match(owners, 0)
	require.True(ok)
	require.Len(sigs, 1)
	require.Len(signers, 1)
	require.Equal(addrs[sigs[0]], signers[0].Address())

	owners.Threshold = 3
	_, _, ok = kc.Match(owners, 0)
	require.False(ok)

	owners.Threshold = 2
	owners.Locktime = 10
	_, _, ok = kc.Match(owners, 9)
	require.False(ok)
	sigs, _, ok = kc.Match(owners, 10)
	require.True(ok)
	require.True(utils.IsSortedAndUniqueOrdered(sigs))
}

func TestKeychainSpend(t *testing.T) {
	require := require.New(t)

	keys := secp256k1.TestKeys()
	kc := NewKeychain(keys[0])

	out := &TransferOutput{
		Amt: 100,
		OutputOwners: OutputOwners{
			Threshold: 1,
			Addrs:     []ids.ShortID{keys[0].Address()},
		},
	}
	inIntf, signers, err := kc.Spend(out, 0)
	require.NoError(err)
	require.Len(signers, 1)

	in, ok := inIntf.(*TransferInput)
	require.True(ok)
	require.Equal(uint64(100), in.Amt)
	require.Equal([]uint32{0}, in.SigIndices)

	mint := &MintOutput{
		OutputOwners: OutputOwners{
			Threshold: 1,
			Addrs:     []ids.ShortID{ids.GenerateTestShortID()},
		},
	}
	_, _, err = kc.Spend(mint, 0)
	require.ErrorIs(err, errCantSpend)

	_, _, err = kc.Spend(&OutputOwners{}, 0)
	require.ErrorIs(err, ErrUnknownOutputType)
}

func TestKeychainString(t *testing.T) {
	require := require.New(t)

	keys := secp256k1.TestKeys()
	kc := NewKeychain(keys[0])
	require.Contains(kc.String(), "Key[0]: Key: PrivateKey-")
	require.Contains(kc.PrefixedString("  "), "  Key[0]")
}
