// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package builder

import (
	"fmt"

	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/utils/set"
	"github.com/ava-labs/nftissuer/vms/avm/txs"
	"github.com/ava-labs/nftissuer/vms/components/verify"
	"github.com/ava-labs/nftissuer/vms/secp256k1fx"
	"github.com/ava-labs/nftissuer/wallet/subnet/primary/common"
)

// SigIndex binds a signing address to its position in the owner list of the
// output being consumed.
type SigIndex struct {
	Index   uint32
	Address ids.ShortID
}

// Spenders returns which of [addrs] must sign to spend an output held by
// [owners] at [now]. The first Threshold matches are taken in owner order.
func Spenders(
	owners *secp256k1fx.OutputOwners,
	addrs set.Set[ids.ShortID],
	now uint64,
) ([]ids.ShortID, bool) {
	indices, ok := common.MatchOwners(owners, addrs, now)
	if !ok {
		return nil, false
	}
	spenders := make([]ids.ShortID, len(indices))
	for i, index := range indices {
		spenders[i] = owners.Addrs[index]
	}
	return spenders, true
}

// ResolveSigIndices returns the position of each of [spenders] in the owner
// list of [out], in the order [spenders] was supplied.
func ResolveSigIndices(out verify.State, spenders []ids.ShortID) ([]SigIndex, error) {
	owners, err := txs.OwnersOf(out)
	if err != nil {
		return nil, err
	}

	positions := make(map[ids.ShortID]uint32, len(owners.Addrs))
	for i, addr := range owners.Addrs {
		positions[addr] = uint32(i)
	}

	sigIndices := make([]SigIndex, len(spenders))
	for i, spender := range spenders {
		index, ok := positions[spender]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotOwner, spender)
		}
		sigIndices[i] = SigIndex{
			Index:   index,
			Address: spender,
		}
	}
	return sigIndices, nil
}

func indicesOf(sigIndices []SigIndex) []uint32 {
	indices := make([]uint32, len(sigIndices))
	for i, sigIndex := range sigIndices {
		indices[i] = sigIndex.Index
	}
	return indices
}

func addressesOf(sigIndices []SigIndex) []ids.ShortID {
	addrs := make([]ids.ShortID, len(sigIndices))
	for i, sigIndex := range sigIndices {
		addrs[i] = sigIndex.Address
	}
	return addrs
}
