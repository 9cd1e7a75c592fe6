// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package nft

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/utils/logging"
	"github.com/ava-labs/nftissuer/vms/secp256k1fx"
	"github.com/ava-labs/nftissuer/wallet/chain/x"
	"github.com/ava-labs/nftissuer/wallet/chain/x/builder"
	"github.com/ava-labs/nftissuer/wallet/subnet/primary/common"
)

var (
	ErrNoItems  = errors.New("plan has no items")
	ErrNoHolder = errors.New("plan has no holder")
)

// Item is one NFT to mint.
type Item struct {
	Payload []byte
	// Recipient receives the NFT once minted. If nil, the NFT stays with the
	// plan's holder.
	Recipient *secp256k1fx.OutputOwners
	// Memo is attached to the transfer to Recipient.
	Memo []byte
}

// Plan describes an NFT collection. One mint authority of GroupID is created
// per item.
type Plan struct {
	Name         string
	Symbol       string
	Denomination byte
	GroupID      uint32
	Minters      builder.MinterSet
	// Holder owns every NFT when it is minted. The wallet must be able to
	// spend outputs of Holder to transfer NFTs to their recipients.
	Holder secp256k1fx.OutputOwners
	Items  []Item
}

type ItemReport struct {
	Payload      []byte
	MintTxID     ids.ID
	TransferTxID ids.ID
	// Err is the reason the item was not fully delivered, if any.
	Err error
}

type Report struct {
	AssetID ids.ID
	Items   []ItemReport
}

// Failed returns the number of items that were not fully delivered.
func (r *Report) Failed() int {
	var failed int
	for _, item := range r.Items {
		if item.Err != nil {
			failed++
		}
	}
	return failed
}

// Pipeline creates an NFT asset, mints every item of a plan and then delivers
// the minted NFTs, one tx at a time. Every tx is built against a fresh
// snapshot and awaited before the next one is built, so a pipeline must not
// share its fee addresses with another pipeline running concurrently.
type Pipeline struct {
	wallet  x.Wallet
	log     logging.Logger
	options []common.Option
}

func NewPipeline(wallet x.Wallet, log logging.Logger, options ...common.Option) *Pipeline {
	return &Pipeline{
		wallet:  wallet,
		log:     log,
		options: options,
	}
}

// Run executes [plan]. If the asset can't be created no report is returned.
// Every item is minted to the holder before any NFT is transferred. Failures
// of a single item are recorded in its report and the remaining items are
// still processed. Items whose mint failed are not transferred.
func (p *Pipeline) Run(ctx context.Context, plan Plan) (*Report, error) {
	switch {
	case len(plan.Items) == 0:
		return nil, ErrNoItems
	case len(plan.Holder.Addrs) == 0:
		return nil, ErrNoHolder
	}

	options := common.UnionOptions(p.options, []common.Option{common.WithContext(ctx)})

	groups := make([]builder.Group, len(plan.Items))
	for i := range groups {
		groups[i] = builder.Group{
			GroupID: plan.GroupID,
			Minters: plan.Minters,
		}
	}
	assetID, err := p.wallet.IssueCreateAssetTx(
		plan.Name,
		plan.Symbol,
		plan.Denomination,
		groups,
		options...,
	)
	if err != nil {
		return nil, fmt.Errorf("couldn't create asset %q: %w", plan.Name, err)
	}
	p.log.Info("created NFT asset",
		zap.Stringer("assetID", assetID),
		zap.String("name", plan.Name),
		zap.Int("numMintAuthorities", len(groups)),
	)

	report := &Report{
		AssetID: assetID,
		Items:   make([]ItemReport, len(plan.Items)),
	}
	for i, item := range plan.Items {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		itemReport := &report.Items[i]
		itemReport.Payload = item.Payload
		itemReport.MintTxID, itemReport.Err = p.wallet.IssueMintNFTTx(
			assetID,
			plan.GroupID,
			item.Payload,
			[]*secp256k1fx.OutputOwners{&plan.Holder},
			options...,
		)
		if itemReport.Err != nil {
			p.log.Warn("failed to mint NFT",
				zap.Int("item", i),
				zap.Error(itemReport.Err),
			)
			continue
		}
		p.log.Info("minted NFT",
			zap.Int("item", i),
			zap.Stringer("txID", itemReport.MintTxID),
		)
	}

	for i, item := range plan.Items {
		itemReport := &report.Items[i]
		if itemReport.Err != nil || item.Recipient == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}

		itemReport.TransferTxID, itemReport.Err = p.wallet.IssueTransferNFTTx(
			itemReport.MintTxID,
			item.Recipient,
			common.UnionOptions(options, []common.Option{common.WithMemo(item.Memo)})...,
		)
		if itemReport.Err != nil {
			p.log.Warn("failed to transfer NFT",
				zap.Int("item", i),
				zap.Stringer("mintTxID", itemReport.MintTxID),
				zap.Error(itemReport.Err),
			)
			continue
		}
		p.log.Info("transferred NFT",
			zap.Int("item", i),
			zap.Stringer("txID", itemReport.TransferTxID),
		)
	}
	return report, nil
}
