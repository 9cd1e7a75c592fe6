// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avax

import (
	"errors"
	"fmt"

	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/utils/constants"
	"github.com/ava-labs/nftissuer/utils/formatting"
	"github.com/ava-labs/nftissuer/utils/set"
)

var (
	ErrMismatchedChainIDs = errors.New("mismatched chainIDs")
	ErrMismatchedHRP      = errors.New("mismatched hrp")

	_ AddressManager = (*addressManager)(nil)
)

type AddressManager interface {
	// ParseLocalAddress takes in an address for this chain and produces the ID
	ParseLocalAddress(addrStr string) (ids.ShortID, error)

	// FormatLocalAddress takes in a raw address and produces the formatted
	// address for this chain
	FormatLocalAddress(addr ids.ShortID) (string, error)
}

type addressManager struct {
	chainAlias string
	hrp        string
}

// NewAddressManager returns an AddressManager for the chain aliased by
// [chainAlias] on network [networkID].
func NewAddressManager(chainAlias string, networkID uint32) AddressManager {
	return &addressManager{
		chainAlias: chainAlias,
		hrp:        constants.GetHRP(networkID),
	}
}

func (a *addressManager) ParseLocalAddress(addrStr string) (ids.ShortID, error) {
	chainAlias, hrp, addrBytes, err := formatting.ParseAddress(addrStr)
	if err != nil {
		return ids.ShortID{}, err
	}
	if chainAlias != a.chainAlias {
		return ids.ShortID{}, fmt.Errorf(
			"%w: expected %q but got %q",
			ErrMismatchedChainIDs,
			a.chainAlias,
			chainAlias,
		)
	}
	if hrp != a.hrp {
		return ids.ShortID{}, fmt.Errorf(
			"%w: expected %q but got %q",
			ErrMismatchedHRP,
			a.hrp,
			hrp,
		)
	}
	return ids.ToShortID(addrBytes)
}

func (a *addressManager) FormatLocalAddress(addr ids.ShortID) (string, error) {
	return formatting.FormatAddress(a.chainAlias, a.hrp, addr.Bytes())
}

// ParseLocalAddresses parses every address in [addrStrs].
func ParseLocalAddresses(a AddressManager, addrStrs []string) (set.Set[ids.ShortID], error) {
	addrs := make(set.Set[ids.ShortID], len(addrStrs))
	for _, addrStr := range addrStrs {
		addr, err := a.ParseLocalAddress(addrStr)
		if err != nil {
			return nil, fmt.Errorf("couldn't parse address %q: %w", addrStr, err)
		}
		addrs.Add(addr)
	}
	return addrs, nil
}
