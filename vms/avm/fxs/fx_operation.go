// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fxs

import "github.com/ava-labs/nftissuer/vms/components/verify"

// FxOperation is an operation a feature extension performs over one or more
// UTXOs of the same asset.
type FxOperation interface {
	verify.Verifiable

	Outs() []verify.State
}
