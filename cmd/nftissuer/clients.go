// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/ava-labs/nftissuer/api/info"
	"github.com/ava-labs/nftissuer/config"
	"github.com/ava-labs/nftissuer/utils/constants"
	"github.com/ava-labs/nftissuer/utils/rpc"
	"github.com/ava-labs/nftissuer/vms/avm"
	"github.com/ava-labs/nftissuer/wallet/chain/x/fees"
)

type clients struct {
	xChain avm.Client
	info   info.Client
}

// newClients returns the API clients of the node at [c.URI]. Both clients
// share one rate limiter.
func newClients(c config.Config) clients {
	limit := rate.Inf
	if c.APIRateLimit > 0 {
		limit = rate.Limit(c.APIRateLimit)
	}
	limiter := rate.NewLimiter(limit, 1)
	return clients{
		xChain: avm.NewClientWithRequester(rpc.NewLimitedEndpointRequester(
			fmt.Sprintf("%s/ext/bc/%s", c.URI, constants.XChainAlias),
			limiter,
		)),
		info: info.NewClientWithRequester(rpc.NewLimitedEndpointRequester(
			c.URI+"/ext/info",
			limiter,
		)),
	}
}

// feeOracle returns the configured fees. Fees left at zero are fetched from
// the node.
func feeOracle(ctx context.Context, c config.Config, client info.Client) (fees.Oracle, error) {
	creationFee, txFee := c.CreationFee, c.TxFee
	if creationFee == 0 || txFee == 0 {
		fetched, err := fees.FetchOracle(ctx, client)
		if err != nil {
			return nil, err
		}
		if creationFee == 0 {
			creationFee = fetched.CreationFee()
		}
		if txFee == 0 {
			txFee = fetched.StandardFee()
		}
	}
	return fees.NewStatic(creationFee, txFee), nil
}
