// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utxos

import (
	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/utils/set"
	"github.com/ava-labs/nftissuer/vms/avm/txs"
	"github.com/ava-labs/nftissuer/vms/components/avax"
	"github.com/ava-labs/nftissuer/vms/nftfx"
	"github.com/ava-labs/nftissuer/vms/secp256k1fx"
	"github.com/ava-labs/nftissuer/wallet/subnet/primary/common"
)

// Predicate reports whether a UTXO should be kept by a scan.
type Predicate func(utxo *avax.UTXO) bool

// OwnedBy keeps UTXOs that list any of [addrs] as an owner. Outputs of an
// unknown kind are never owned.
func OwnedBy(addrs set.Set[ids.ShortID]) Predicate {
	return func(utxo *avax.UTXO) bool {
		owners, err := txs.OwnersOf(utxo.Out)
		if err != nil {
			return false
		}
		for _, addr := range owners.Addrs {
			if addrs.Contains(addr) {
				return true
			}
		}
		return false
	}
}

// OfKind keeps UTXOs whose output is of [kind].
func OfKind(kind txs.OutputKind) Predicate {
	return func(utxo *avax.UTXO) bool {
		utxoKind, err := txs.KindOf(utxo.Out)
		return err == nil && utxoKind == kind
	}
}

// OfAsset keeps UTXOs of [assetID].
func OfAsset(assetID ids.ID) Predicate {
	return func(utxo *avax.UTXO) bool {
		return utxo.AssetID() == assetID
	}
}

// AmountAbove keeps amount UTXOs holding strictly more than [min].
func AmountAbove(min uint64) Predicate {
	return func(utxo *avax.UTXO) bool {
		out, ok := utxo.Out.(*secp256k1fx.TransferOutput)
		return ok && out.Amt > min
	}
}

// InGroup keeps NFT mint and transfer outputs of [groupID].
func InGroup(groupID uint32) Predicate {
	return func(utxo *avax.UTXO) bool {
		switch out := utxo.Out.(type) {
		case *nftfx.MintOutput:
			return out.GroupID == groupID
		case *nftfx.TransferOutput:
			return out.GroupID == groupID
		default:
			return false
		}
	}
}

// SpendableBy keeps UTXOs that [addrs] can spend at [now], honoring the
// locktime and threshold of their owners.
func SpendableBy(addrs set.Set[ids.ShortID], now uint64) Predicate {
	return func(utxo *avax.UTXO) bool {
		owners, err := txs.OwnersOf(utxo.Out)
		if err != nil {
			return false
		}
		_, ok := common.MatchOwners(owners, addrs, now)
		return ok
	}
}

// FromTx keeps UTXOs produced by [txID].
func FromTx(txID ids.ID) Predicate {
	return func(utxo *avax.UTXO) bool {
		return utxo.TxID == txID
	}
}

// Not inverts [predicate].
func Not(predicate Predicate) Predicate {
	return func(utxo *avax.UTXO) bool {
		return !predicate(utxo)
	}
}
