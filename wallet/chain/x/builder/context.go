// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package builder

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/nftissuer/api/info"
	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/utils/constants"
	"github.com/ava-labs/nftissuer/vms/avm"
)

// Context is the chain configuration every transaction built by a Builder is
// bound to.
type Context struct {
	NetworkID    uint32
	BlockchainID ids.ID
	AVAXAssetID  ids.ID
}

// NewContextFromClients fetches the network ID, the X-chain ID and the AVAX
// asset ID concurrently.
func NewContextFromClients(
	ctx context.Context,
	infoClient info.Client,
	xChainClient avm.Client,
) (*Context, error) {
	var c Context
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		networkID, err := infoClient.GetNetworkID(egCtx)
		c.NetworkID = networkID
		return err
	})
	eg.Go(func() error {
		blockchainID, err := infoClient.GetBlockchainID(egCtx, constants.XChainAlias)
		c.BlockchainID = blockchainID
		return err
	})
	eg.Go(func() error {
		asset, err := xChainClient.GetAssetDescription(egCtx, constants.AVAXSymbol)
		if err != nil {
			return err
		}
		c.AVAXAssetID = asset.AssetID
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return &c, nil
}
