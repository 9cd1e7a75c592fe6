// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fees

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/nftissuer/api/info"
	"github.com/ava-labs/nftissuer/utils/rpc"
)

var (
	ErrFeesUnavailable = errors.New("network parameters unavailable")

	_ Oracle = (*static)(nil)
)

// Oracle reports the fees, denominated in the fee asset, that the X-chain
// burns per transaction.
type Oracle interface {
	// CreationFee is burned by transactions that create an asset.
	CreationFee() uint64
	// StandardFee is burned by every other transaction.
	StandardFee() uint64
}

type static struct {
	creation uint64
	standard uint64
}

// NewStatic returns an Oracle that always reports the provided fees.
func NewStatic(creationFee, standardFee uint64) Oracle {
	return &static{
		creation: creationFee,
		standard: standardFee,
	}
}

func (s *static) CreationFee() uint64 {
	return s.creation
}

func (s *static) StandardFee() uint64 {
	return s.standard
}

// FetchOracle queries the node's fee parameters once and returns an Oracle
// that reports them.
func FetchOracle(ctx context.Context, client info.Client, options ...rpc.Option) (Oracle, error) {
	txFees, err := client.GetTxFee(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFeesUnavailable, err)
	}
	return NewStatic(uint64(txFees.CreateAssetTxFee), uint64(txFees.TxFee)), nil
}
