// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avm

import (
	"fmt"

	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/utils/formatting"
)

// ParseServiceAddress parses an address as the X-chain API renders it. Both
// the raw cb58 form and the bech32 "X-hrp1..." form are accepted. An empty
// string is the empty address.
func ParseServiceAddress(addrStr string) (ids.ShortID, error) {
	if addrStr == "" {
		return ids.ShortEmpty, nil
	}
	if addr, err := ids.ShortFromString(addrStr); err == nil {
		return addr, nil
	}
	_, _, addrBytes, err := formatting.ParseAddress(addrStr)
	if err != nil {
		return ids.ShortEmpty, fmt.Errorf("couldn't parse address %q: %w", addrStr, err)
	}
	return ids.ToShortID(addrBytes)
}
