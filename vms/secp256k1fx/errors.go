// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import "errors"

var (
	ErrUnknownOutputType = errors.New("unknown output type")
	ErrWrongUTXOType     = errors.New("wrong utxo type")
)
