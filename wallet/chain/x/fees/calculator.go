// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fees

import (
	"fmt"

	"github.com/ava-labs/nftissuer/vms/avm/txs"
)

var _ txs.Visitor = (*Calculator)(nil)

// TxKind distinguishes the fee classes of the X-chain.
type TxKind byte

const (
	Standard TxKind = iota
	Creation
)

func (k TxKind) String() string {
	switch k {
	case Standard:
		return "standard"
	case Creation:
		return "creation"
	default:
		return fmt.Sprintf("unknown fee kind %d", byte(k))
	}
}

// FeeFor returns the fee [o] reports for [kind].
func FeeFor(o Oracle, kind TxKind) uint64 {
	if kind == Creation {
		return o.CreationFee()
	}
	return o.StandardFee()
}

// Calculator computes the fee an unsigned tx must burn.
type Calculator struct {
	// setup, to be filled before visitor methods are called
	Oracle Oracle

	// outputs of visitor execution
	Fee uint64
}

// CalculateFee returns the fee [tx] must burn according to [o].
func CalculateFee(o Oracle, tx txs.UnsignedTx) (uint64, error) {
	c := &Calculator{Oracle: o}
	if err := tx.Visit(c); err != nil {
		return 0, err
	}
	return c.Fee, nil
}

func (c *Calculator) BaseTx(*txs.BaseTx) error {
	c.Fee = FeeFor(c.Oracle, Standard)
	return nil
}

func (c *Calculator) CreateAssetTx(*txs.CreateAssetTx) error {
	c.Fee = FeeFor(c.Oracle, Creation)
	return nil
}

func (c *Calculator) OperationTx(*txs.OperationTx) error {
	c.Fee = FeeFor(c.Oracle, Standard)
	return nil
}
