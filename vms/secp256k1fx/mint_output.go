// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import "github.com/ava-labs/nftissuer/vms/components/verify"

var _ verify.State = (*MintOutput)(nil)

// MintOutput grants its owners the right to mint more of a fungible asset.
type MintOutput struct {
	verify.StateMarker `json:"-"`

	OutputOwners `serialize:"true"`
}

func (out *MintOutput) Verify() error {
	switch {
	case out == nil:
		return ErrNilOutput
	default:
		return out.OutputOwners.Verify()
	}
}
