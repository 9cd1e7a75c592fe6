// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ava-labs/nftissuer/config"
)

const (
	name       = "nftissuer"
	cliVersion = "0.1.0"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := Command().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", name, err)
		os.Exit(1)
	}
}

// Command returns the root command. Every flag is shared by the subcommands
// and may also be provided through the environment or a config file.
func Command() *cobra.Command {
	c := &cobra.Command{
		Use:           name,
		Short:         "Creates NFT collections on the X-chain",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.AddFlags(c.PersistentFlags())
	c.AddCommand(
		runCommand(),
		balanceCommand(),
		versionCommand(),
	)
	return c
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(c.OutOrStdout(), cliVersion)
			return err
		},
	}
}

func parseConfig(c *cobra.Command) (config.Config, error) {
	v, err := config.NewViper(c.Flags())
	if err != nil {
		return config.Config{}, err
	}
	return config.GetConfig(v)
}
