// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package utxos provides a read-only view over a snapshot of X-chain UTXOs.
package utxos

import (
	"errors"
	"fmt"

	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/utils/math"
	"github.com/ava-labs/nftissuer/utils/set"
	"github.com/ava-labs/nftissuer/vms/components/avax"
	"github.com/ava-labs/nftissuer/vms/secp256k1fx"
)

var (
	ErrNotFound       = errors.New("utxo not found")
	ErrAmountOverflow = errors.New("balance overflows a u64")
)

// Index is an immutable view of a UTXO snapshot. Scans return UTXOs in
// snapshot order. An Index is safe for concurrent reads.
type Index struct {
	utxos []*avax.UTXO
	byID  map[ids.ID]*avax.UTXO
}

// New indexes [snapshot]. If a UTXO appears more than once, only its first
// occurrence is kept.
func New(snapshot []*avax.UTXO) *Index {
	i := &Index{
		utxos: make([]*avax.UTXO, 0, len(snapshot)),
		byID:  make(map[ids.ID]*avax.UTXO, len(snapshot)),
	}
	for _, utxo := range snapshot {
		utxoID := utxo.InputID()
		if _, ok := i.byID[utxoID]; ok {
			continue
		}
		i.byID[utxoID] = utxo
		i.utxos = append(i.utxos, utxo)
	}
	return i
}

// Len returns the number of UTXOs in the snapshot.
func (i *Index) Len() int {
	return len(i.utxos)
}

// All returns every UTXO in the snapshot.
func (i *Index) All() []*avax.UTXO {
	return i.Filter()
}

// AllFor returns the UTXOs whose owners include any of [addrs].
func (i *Index) AllFor(addrs set.Set[ids.ShortID]) []*avax.UTXO {
	return i.Filter(OwnedBy(addrs))
}

// Get returns the UTXO with [utxoID] as its InputID.
func (i *Index) Get(utxoID ids.ID) (*avax.UTXO, error) {
	utxo, ok := i.byID[utxoID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, utxoID)
	}
	return utxo, nil
}

// Filter returns the UTXOs that satisfy every one of [predicates].
func (i *Index) Filter(predicates ...Predicate) []*avax.UTXO {
	matched := make([]*avax.UTXO, 0, len(i.utxos))
utxoLoop:
	for _, utxo := range i.utxos {
		for _, predicate := range predicates {
			if !predicate(utxo) {
				continue utxoLoop
			}
		}
		matched = append(matched, utxo)
	}
	return matched
}

// Balance returns the amount of [assetID] held in amount outputs owned by any
// of [addrs]. Locked outputs are included.
func (i *Index) Balance(assetID ids.ID, addrs set.Set[ids.ShortID]) (uint64, error) {
	var sum math.Sum
	for _, utxo := range i.Filter(OfAsset(assetID), OwnedBy(addrs)) {
		out, ok := utxo.Out.(*secp256k1fx.TransferOutput)
		if !ok {
			continue
		}
		sum.Add(out.Amt)
	}
	balance, err := sum.Uint64()
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrAmountOverflow, sum.Big().ToBig())
	}
	return balance, nil
}
