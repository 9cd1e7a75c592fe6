// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"
	"fmt"

	"github.com/ava-labs/nftissuer/vms/components/verify"
	"github.com/ava-labs/nftissuer/vms/nftfx"
	"github.com/ava-labs/nftissuer/vms/secp256k1fx"
)

var ErrUnknownOutputType = errors.New("unknown output type")

// OutputKind tags the UTXO outputs the X-chain wallet knows how to handle.
type OutputKind byte

const (
	// KindAmount is a fungible amount owned by a set of addresses.
	KindAmount OutputKind = iota
	// KindMintAuthority is the right to mint NFTs of one group.
	KindMintAuthority
	// KindNFTTransfer is a minted NFT.
	KindNFTTransfer
	// KindFungibleMint is the right to mint more of a variable cap asset. It
	// is recognized so snapshots containing it parse, but it is never spent.
	KindFungibleMint
)

func (k OutputKind) String() string {
	switch k {
	case KindAmount:
		return "amount"
	case KindMintAuthority:
		return "mint authority"
	case KindNFTTransfer:
		return "nft transfer"
	case KindFungibleMint:
		return "fungible mint"
	default:
		return fmt.Sprintf("unknown kind %d", byte(k))
	}
}

// KindOf returns the kind of [out].
func KindOf(out verify.State) (OutputKind, error) {
	switch out.(type) {
	case *secp256k1fx.TransferOutput:
		return KindAmount, nil
	case *nftfx.MintOutput:
		return KindMintAuthority, nil
	case *nftfx.TransferOutput:
		return KindNFTTransfer, nil
	case *secp256k1fx.MintOutput:
		return KindFungibleMint, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnknownOutputType, out)
	}
}

// OwnersOf returns the owners that must authorize spending [out].
func OwnersOf(out verify.State) (*secp256k1fx.OutputOwners, error) {
	switch out := out.(type) {
	case *secp256k1fx.TransferOutput:
		return &out.OutputOwners, nil
	case *nftfx.MintOutput:
		return &out.OutputOwners, nil
	case *nftfx.TransferOutput:
		return &out.OutputOwners, nil
	case *secp256k1fx.MintOutput:
		return &out.OutputOwners, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownOutputType, out)
	}
}
