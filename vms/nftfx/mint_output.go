// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package nftfx

import (
	"github.com/ava-labs/nftissuer/vms/components/verify"
	"github.com/ava-labs/nftissuer/vms/secp256k1fx"
)

var _ verify.State = (*MintOutput)(nil)

// MintOutput is the authority to mint NFTs of a single group.
type MintOutput struct {
	verify.StateMarker `json:"-"`

	GroupID                  uint32 `serialize:"true" json:"groupID"`
	secp256k1fx.OutputOwners `serialize:"true"`
}

func (out *MintOutput) Verify() error {
	switch {
	case out == nil:
		return errNilMintOutput
	default:
		return out.OutputOwners.Verify()
	}
}
