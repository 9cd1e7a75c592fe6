// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package nftfx

import (
	"errors"

	"github.com/ava-labs/nftissuer/vms/components/verify"
	"github.com/ava-labs/nftissuer/vms/secp256k1fx"
)

var (
	ErrNilMintOperation = errors.New("nil mint operation")

	errNilMintOutput = errors.New("nil mint output")
)

// MintOperation consumes a MintOutput and produces one TransferOutput per
// entry in Outputs, all sharing the group and payload of the operation.
type MintOperation struct {
	MintInput secp256k1fx.Input           `serialize:"true" json:"mintInput"`
	GroupID   uint32                      `serialize:"true" json:"groupID"`
	Payload   []byte                      `serialize:"true" json:"payload"`
	Outputs   []*secp256k1fx.OutputOwners `serialize:"true" json:"outputs"`
}

func (op *MintOperation) Cost() (uint64, error) {
	return op.MintInput.Cost()
}

// Outs returns the NFTs this operation creates.
func (op *MintOperation) Outs() []verify.State {
	outs := []verify.State{}
	for _, out := range op.Outputs {
		outs = append(outs, &TransferOutput{
			GroupID:      op.GroupID,
			Payload:      op.Payload,
			OutputOwners: *out,
		})
	}
	return outs
}

func (op *MintOperation) Verify() error {
	switch {
	case op == nil:
		return ErrNilMintOperation
	case len(op.Payload) > MaxPayloadSize:
		return ErrPayloadTooLarge
	}

	for _, out := range op.Outputs {
		if err := out.Verify(); err != nil {
			return err
		}
	}
	return op.MintInput.Verify()
}
