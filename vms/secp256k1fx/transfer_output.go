// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"errors"

	"github.com/ava-labs/nftissuer/vms/components/verify"
)

var (
	_ verify.State = (*TransferOutput)(nil)

	ErrNoValueOutput = errors.New("output has no value")
)

type TransferOutput struct {
	verify.StateMarker `json:"-"`

	Amt uint64 `serialize:"true" json:"amount"`

	OutputOwners `serialize:"true"`
}

// Amount returns the quantity of the asset this output consumes
func (out *TransferOutput) Amount() uint64 {
	return out.Amt
}

func (out *TransferOutput) Verify() error {
	switch {
	case out == nil:
		return ErrNilOutput
	case out.Amt == 0:
		return ErrNoValueOutput
	default:
		return out.OutputOwners.Verify()
	}
}
