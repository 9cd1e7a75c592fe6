// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avax

import (
	"errors"
	"fmt"

	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/utils/math"
	"github.com/ava-labs/nftissuer/utils/wrappers"
)

var ErrInsufficientFunds = errors.New("insufficient funds")

// FlowChecker tracks, per asset, the value consumed by a transaction's inputs
// and the value produced by its outputs.
type FlowChecker struct {
	consumed, produced map[ids.ID]uint64
	errs               wrappers.Errs
}

func NewFlowChecker() *FlowChecker {
	return &FlowChecker{
		consumed: make(map[ids.ID]uint64),
		produced: make(map[ids.ID]uint64),
	}
}

func (fc *FlowChecker) Consume(assetID ids.ID, amount uint64) {
	fc.add(fc.consumed, assetID, amount)
}

func (fc *FlowChecker) Produce(assetID ids.ID, amount uint64) {
	fc.add(fc.produced, assetID, amount)
}

func (fc *FlowChecker) add(value map[ids.ID]uint64, assetID ids.ID, amount uint64) {
	var err error
	value[assetID], err = math.Add64(value[assetID], amount)
	fc.errs.Add(err)
}

// Verify returns nil iff every asset consumed at least as much as it produced.
func (fc *FlowChecker) Verify() error {
	if !fc.errs.Errored() {
		for assetID, producedAssetAmount := range fc.produced {
			consumedAssetAmount := fc.consumed[assetID]
			if producedAssetAmount > consumedAssetAmount {
				fc.errs.Add(fmt.Errorf("%w: asset %s consumed %d < produced %d",
					ErrInsufficientFunds,
					assetID,
					consumedAssetAmount,
					producedAssetAmount,
				))
				break
			}
		}
	}
	return fc.errs.Err
}

// Burned returns how much of [assetID] is consumed but not produced.
func (fc *FlowChecker) Burned(assetID ids.ID) (uint64, error) {
	if err := fc.Verify(); err != nil {
		return 0, err
	}
	return math.Sub(fc.consumed[assetID], fc.produced[assetID])
}
