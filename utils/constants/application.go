// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package constants

const (
	// AppName is used for the metrics namespace, env var prefix and default
	// log directory.
	AppName = "nftissuer"

	// XChainAlias is the alias the X-chain is reachable under.
	XChainAlias = "X"

	// AVAXSymbol is the symbol of the fee asset.
	AVAXSymbol = "AVAX"
)
