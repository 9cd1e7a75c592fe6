// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/nftissuer/utils/logging"
	"github.com/ava-labs/nftissuer/utils/set"
	"github.com/ava-labs/nftissuer/wallet/chain/x"
)

func balanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Prints the AVAX held by the private key",
		Args:  cobra.NoArgs,
		RunE:  balanceFunc,
	}
}

func balanceFunc(c *cobra.Command, _ []string) error {
	config, err := parseConfig(c)
	if err != nil {
		return err
	}

	ctx := c.Context()
	clients := newClients(config)
	backend := x.NewBackend(clients.xChain, logging.NoLog{})
	chainContext, err := backend.Context(ctx, clients.info)
	if err != nil {
		return err
	}

	addr := config.PrivateKey.Address()
	balance, err := backend.Balance(ctx, set.Of(addr), chainContext.AVAXAssetID)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.OutOrStdout(), "%s has %d nAVAX\n", addr, balance)
	return err
}
