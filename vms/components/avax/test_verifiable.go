// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avax

import "github.com/ava-labs/nftissuer/vms/components/verify"

var (
	_ TransferableOut = (*TestTransferable)(nil)
	_ TransferableIn  = (*TestInput)(nil)
)

type TestVerifiable struct{ Err error }

func (v *TestVerifiable) Verify() error {
	return v.Err
}

type TestTransferable struct {
	TestVerifiable
	verify.StateMarker

	Val uint64 `serialize:"true"`
}

func (t *TestTransferable) Amount() uint64 {
	return t.Val
}

type TestInput struct {
	TestVerifiable
	verify.NotStateMarker

	Val uint64 `serialize:"true"`
}

func (t *TestInput) Amount() uint64 {
	return t.Val
}
