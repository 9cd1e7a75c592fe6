// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/ava-labs/nftissuer/codec"
	"github.com/ava-labs/nftissuer/codec/linearcodec"
	"github.com/ava-labs/nftissuer/utils/constants"
	"github.com/ava-labs/nftissuer/utils/wrappers"
	"github.com/ava-labs/nftissuer/vms/nftfx"
	"github.com/ava-labs/nftissuer/vms/secp256k1fx"
)

const CodecVersion = constants.CodecVersion

// Codec does serialization and deserialization of X-chain transactions and
// UTXOs.
var Codec codec.Manager

func init() {
	c := linearcodec.NewDefault()
	Codec = codec.NewDefaultManager()

	errs := wrappers.Errs{}
	errs.Add(
		RegisterTypes(c),
		Codec.RegisterCodec(CodecVersion, c),
	)
	if errs.Errored() {
		panic(errs.Err)
	}
}

// RegisterTypes registers the transaction and feature extension types in the
// order the X-chain assigns their type IDs. Import and export transactions are
// never produced here, so their IDs are skipped.
func RegisterTypes(c linearcodec.Codec) error {
	errs := wrappers.Errs{}
	errs.Add(
		c.RegisterType(&BaseTx{}),
		c.RegisterType(&CreateAssetTx{}),
		c.RegisterType(&OperationTx{}),
	)
	c.SkipRegistrations(2)

	errs.Add(
		c.RegisterType(&secp256k1fx.TransferInput{}),
		c.RegisterType(&secp256k1fx.MintOutput{}),
		c.RegisterType(&secp256k1fx.TransferOutput{}),
		c.RegisterType(&secp256k1fx.MintOperation{}),
		c.RegisterType(&secp256k1fx.Credential{}),

		c.RegisterType(&nftfx.MintOutput{}),
		c.RegisterType(&nftfx.TransferOutput{}),
		c.RegisterType(&nftfx.MintOperation{}),
		c.RegisterType(&nftfx.TransferOperation{}),
		c.RegisterType(&nftfx.Credential{}),
	)
	return errs.Err
}
