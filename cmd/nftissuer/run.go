// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/ava-labs/nftissuer/config"
	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/utils/logging"
	"github.com/ava-labs/nftissuer/utils/timer/mockable"
	"github.com/ava-labs/nftissuer/vms/secp256k1fx"
	"github.com/ava-labs/nftissuer/wallet/chain/x"
	"github.com/ava-labs/nftissuer/wallet/chain/x/builder"
	"github.com/ava-labs/nftissuer/wallet/chain/x/issuer"
	"github.com/ava-labs/nftissuer/wallet/nft"
)

func runCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Creates an NFT asset and mints one NFT per payload URL",
		Args:  cobra.NoArgs,
		RunE:  runFunc,
	}
}

func runFunc(c *cobra.Command, _ []string) error {
	config, err := parseConfig(c)
	if err != nil {
		return err
	}
	if err := config.Verify(); err != nil {
		return err
	}
	plan, err := newPlan(config)
	if err != nil {
		return err
	}

	logFactory := logging.NewFactory(config.Logging)
	defer logFactory.Close()

	log, err := logFactory.Make(name)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	metrics, err := issuer.NewMetrics(name, registry)
	if err != nil {
		return err
	}
	if config.MetricsAddr != "" {
		stop := serveMetrics(log, config.MetricsAddr, registry)
		defer stop()
	}

	ctx := c.Context()
	clients := newClients(config)
	backend := x.NewBackend(clients.xChain, log)
	chainContext, err := backend.Context(ctx, clients.info)
	if err != nil {
		return fmt.Errorf("couldn't fetch chain context: %w", err)
	}
	oracle, err := feeOracle(ctx, config, clients.info)
	if err != nil {
		return err
	}

	i, err := issuer.New(clients.xChain, &mockable.Clock{}, log, metrics, config.Issuer)
	if err != nil {
		return err
	}

	kc := secp256k1fx.NewKeychain(config.PrivateKey)
	wallet := x.NewWallet(
		backend,
		builder.New(
			kc.Addresses(),
			chainContext,
			oracle,
			builder.WithOperationLocator(config.OperationLocator()),
		),
		x.NewSigner(kc),
		i,
	)

	report, err := nft.NewPipeline(wallet, log).Run(ctx, plan)
	if report != nil {
		if err := printReport(c.OutOrStdout(), report); err != nil {
			return err
		}
	}
	if err != nil {
		return err
	}
	if failed := report.Failed(); failed > 0 {
		return fmt.Errorf("%d of %d NFTs were not delivered", failed, len(report.Items))
	}
	return nil
}

// newPlan mints every NFT to the private key and, unless the recipient is the
// private key itself, transfers it to the recipient.
func newPlan(c config.Config) (nft.Plan, error) {
	addr := c.PrivateKey.Address()
	plan := nft.Plan{
		Name:    c.AssetName,
		Symbol:  c.AssetSymbol,
		GroupID: c.GroupID,
		Minters: builder.MinterSet{
			Threshold: 1,
			Minters:   []ids.ShortID{addr},
		},
		Holder: secp256k1fx.OutputOwners{
			Threshold: 1,
			Addrs:     []ids.ShortID{addr},
		},
		Items: make([]nft.Item, len(c.PayloadURLs)),
	}

	var recipient *secp256k1fx.OutputOwners
	if c.Recipient != addr {
		recipient = &secp256k1fx.OutputOwners{
			Threshold: 1,
			Addrs:     []ids.ShortID{c.Recipient},
		}
	}
	for i, u := range c.PayloadURLs {
		payload, err := nft.URLPayload(u)
		if err != nil {
			return nft.Plan{}, err
		}
		plan.Items[i] = nft.Item{
			Payload:   payload,
			Recipient: recipient,
		}
	}
	return plan, nil
}

func printReport(w io.Writer, report *nft.Report) error {
	if _, err := fmt.Fprintf(w, "asset %s\n", report.AssetID); err != nil {
		return err
	}
	for i, item := range report.Items {
		url, err := nft.ParseURLPayload(item.Payload)
		if err != nil {
			url = fmt.Sprintf("%x", item.Payload)
		}

		status := "delivered"
		if item.Err != nil {
			status = "failed: " + item.Err.Error()
		}
		_, err = fmt.Fprintf(w, "%d %s mint=%s transfer=%s %s\n",
			i,
			url,
			item.MintTxID,
			item.TransferTxID,
			status,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
