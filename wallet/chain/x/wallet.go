// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package x

import (
	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/vms/avm/txs"
	"github.com/ava-labs/nftissuer/vms/components/avax"
	"github.com/ava-labs/nftissuer/vms/secp256k1fx"
	"github.com/ava-labs/nftissuer/wallet/chain/x/builder"
	"github.com/ava-labs/nftissuer/wallet/chain/x/issuer"
	"github.com/ava-labs/nftissuer/wallet/chain/x/utxos"
	"github.com/ava-labs/nftissuer/wallet/subnet/primary/common"
)

var _ Wallet = (*wallet)(nil)

type Wallet interface {
	// Builder returns the builder that will be used to create the
	// transactions.
	Builder() *builder.Builder

	// Signer returns the signer that will be used to sign the transactions.
	Signer() Signer

	// IssueBaseTx creates, signs, and issues a new simple value transfer of
	// the fee asset.
	IssueBaseTx(
		outputs []*avax.TransferableOutput,
		options ...common.Option,
	) (ids.ID, error)

	// IssueCreateAssetTx creates, signs, and issues a new NFT asset with one
	// mint authority per entry of [groups]. The returned ID is the asset ID.
	IssueCreateAssetTx(
		name string,
		symbol string,
		denomination byte,
		groups []builder.Group,
		options ...common.Option,
	) (ids.ID, error)

	// IssueMintNFTTx creates, signs, and issues an operation minting one NFT
	// of [groupID] carrying [payload] to each of [owners].
	IssueMintNFTTx(
		assetID ids.ID,
		groupID uint32,
		payload []byte,
		owners []*secp256k1fx.OutputOwners,
		options ...common.Option,
	) (ids.ID, error)

	// IssueTransferNFTTx creates, signs, and issues an operation sending the
	// NFT minted by [mintTxID] to [to].
	IssueTransferNFTTx(
		mintTxID ids.ID,
		to *secp256k1fx.OutputOwners,
		options ...common.Option,
	) (ids.ID, error)

	// IssueUnsignedTx signs and issues the unsigned tx.
	IssueUnsignedTx(
		res *builder.Result,
		options ...common.Option,
	) (ids.ID, error)

	// IssueTx issues the signed tx.
	IssueTx(
		tx *txs.Tx,
		options ...common.Option,
	) (ids.ID, error)
}

// NewWallet returns a wallet that builds every tx from a fresh snapshot of
// the ledger.
func NewWallet(
	backend *Backend,
	builder *builder.Builder,
	signer Signer,
	issuer *issuer.Issuer,
) Wallet {
	return &wallet{
		backend: backend,
		builder: builder,
		signer:  signer,
		issuer:  issuer,
	}
}

type wallet struct {
	backend *Backend
	builder *builder.Builder
	signer  Signer
	issuer  *issuer.Issuer
}

func (w *wallet) Builder() *builder.Builder {
	return w.builder
}

func (w *wallet) Signer() Signer {
	return w.signer
}

func (w *wallet) IssueBaseTx(
	outputs []*avax.TransferableOutput,
	options ...common.Option,
) (ids.ID, error) {
	snapshot, err := w.snapshot(options)
	if err != nil {
		return ids.Empty, err
	}
	res, err := w.builder.NewBaseTx(snapshot, outputs, options...)
	if err != nil {
		return ids.Empty, err
	}
	return w.IssueUnsignedTx(res, options...)
}

func (w *wallet) IssueCreateAssetTx(
	name string,
	symbol string,
	denomination byte,
	groups []builder.Group,
	options ...common.Option,
) (ids.ID, error) {
	snapshot, err := w.snapshot(options)
	if err != nil {
		return ids.Empty, err
	}
	res, err := w.builder.NewCreateAssetTx(snapshot, name, symbol, denomination, groups, options...)
	if err != nil {
		return ids.Empty, err
	}
	return w.IssueUnsignedTx(res, options...)
}

func (w *wallet) IssueMintNFTTx(
	assetID ids.ID,
	groupID uint32,
	payload []byte,
	owners []*secp256k1fx.OutputOwners,
	options ...common.Option,
) (ids.ID, error) {
	snapshot, err := w.snapshot(options)
	if err != nil {
		return ids.Empty, err
	}
	res, err := w.builder.NewMintNFTTx(snapshot, assetID, groupID, payload, owners, options...)
	if err != nil {
		return ids.Empty, err
	}
	return w.IssueUnsignedTx(res, options...)
}

func (w *wallet) IssueTransferNFTTx(
	mintTxID ids.ID,
	to *secp256k1fx.OutputOwners,
	options ...common.Option,
) (ids.ID, error) {
	snapshot, err := w.snapshot(options)
	if err != nil {
		return ids.Empty, err
	}
	res, err := w.builder.NewTransferNFTTx(snapshot, mintTxID, to, options...)
	if err != nil {
		return ids.Empty, err
	}
	return w.IssueUnsignedTx(res, options...)
}

func (w *wallet) IssueUnsignedTx(
	res *builder.Result,
	options ...common.Option,
) (ids.ID, error) {
	ops := common.NewOptions(options)
	tx, err := w.signer.Sign(ops.Context(), res)
	if err != nil {
		return ids.Empty, err
	}
	return w.IssueTx(tx, options...)
}

func (w *wallet) IssueTx(
	tx *txs.Tx,
	options ...common.Option,
) (ids.ID, error) {
	ops := common.NewOptions(options)
	return w.issuer.Issue(ops.Context(), tx, options...)
}

func (w *wallet) snapshot(options []common.Option) (*utxos.Index, error) {
	ops := common.NewOptions(options)
	addrs := ops.Addresses(w.builder.Addresses())
	return w.backend.Snapshot(ops.Context(), addrs)
}
