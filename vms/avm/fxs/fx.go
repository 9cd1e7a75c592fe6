// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fxs

import (
	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/vms/components/verify"
	"github.com/ava-labs/nftissuer/vms/nftfx"
	"github.com/ava-labs/nftissuer/vms/secp256k1fx"
)

var (
	_ verify.Verifiable = (*FxCredential)(nil)

	// IDs of the feature extensions in the order the X-chain loads them.
	IDs = []ids.ID{
		secp256k1fx.ID,
		nftfx.ID,
	}
)

type FxCredential struct {
	FxID       ids.ID            `serialize:"false" json:"fxID"`
	Credential verify.Verifiable `serialize:"true"  json:"credential"`
}

func (f *FxCredential) Verify() error {
	return f.Credential.Verify()
}
