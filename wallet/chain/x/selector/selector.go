// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package selector picks the UTXOs a transaction consumes. The strategies here
// are deliberately first-match: they scan in snapshot order and never
// aggregate.
package selector

import (
	"errors"
	"fmt"

	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/vms/components/avax"
	"github.com/ava-labs/nftissuer/vms/secp256k1fx"
)

var (
	ErrNotFound = errors.New("no eligible fee UTXO")

	_ CoinSelector = FirstEligible{}
)

// CoinSelector picks the single UTXO that pays a transaction's fee.
type CoinSelector interface {
	// SelectFeeUTXO returns a UTXO of [assetID] whose amount strictly exceeds
	// [minAmount], or ErrNotFound.
	SelectFeeUTXO(utxos []*avax.UTXO, assetID ids.ID, minAmount uint64) (*avax.UTXO, error)
}

// FirstEligible returns the first amount UTXO, in the order supplied, whose
// amount strictly exceeds the minimum.
type FirstEligible struct{}

func (FirstEligible) SelectFeeUTXO(utxos []*avax.UTXO, assetID ids.ID, minAmount uint64) (*avax.UTXO, error) {
	for _, utxo := range utxos {
		if utxo.AssetID() != assetID {
			continue
		}
		out, ok := utxo.Out.(*secp256k1fx.TransferOutput)
		if !ok {
			continue
		}
		if out.Amt > minAmount {
			return utxo, nil
		}
	}
	return nil, fmt.Errorf("%w: need more than %d of %s", ErrNotFound, minAmount, assetID)
}
