// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package x

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ava-labs/nftissuer/api/info"
	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/utils/logging"
	"github.com/ava-labs/nftissuer/utils/set"
	"github.com/ava-labs/nftissuer/vms/avm"
	"github.com/ava-labs/nftissuer/vms/avm/txs"
	"github.com/ava-labs/nftissuer/vms/components/avax"
	"github.com/ava-labs/nftissuer/wallet/chain/x/builder"
	"github.com/ava-labs/nftissuer/wallet/chain/x/utxos"
)

// MaxPageSize is the largest number of UTXOs the X-chain returns per
// avm.getUTXOs call.
const MaxPageSize = 1024

// Backend loads the ledger state the builder works from.
type Backend struct {
	client   avm.Client
	log      logging.Logger
	pageSize uint32
}

func NewBackend(client avm.Client, log logging.Logger) *Backend {
	return &Backend{
		client:   client,
		log:      log,
		pageSize: MaxPageSize,
	}
}

// Snapshot fetches every UTXO referencing any of [addrs], following the
// pagination cursor until a short page is returned. UTXOs referenced by more
// than one of [addrs] appear once.
func (b *Backend) Snapshot(ctx context.Context, addrs set.Set[ids.ShortID]) (*utxos.Index, error) {
	var (
		addrList  = addrs.List()
		snapshot  []*avax.UTXO
		startAddr = ids.ShortEmpty
		startUTXO = ids.Empty
		pages     int
	)
	for {
		utxosBytes, endAddr, endUTXO, err := b.client.GetUTXOs(
			ctx,
			addrList,
			b.pageSize,
			startAddr,
			startUTXO,
		)
		if err != nil {
			return nil, fmt.Errorf("couldn't fetch UTXOs: %w", err)
		}
		pages++

		for _, utxoBytes := range utxosBytes {
			utxo, err := txs.ParseUTXO(utxoBytes)
			if err != nil {
				return nil, fmt.Errorf("couldn't parse UTXO: %w", err)
			}
			snapshot = append(snapshot, utxo)
		}

		if len(utxosBytes) < int(b.pageSize) {
			break
		}
		if endAddr == startAddr && endUTXO == startUTXO {
			// the cursor didn't move so another request would return the
			// same page
			break
		}
		startAddr, startUTXO = endAddr, endUTXO
	}

	index := utxos.New(snapshot)
	b.log.Debug("fetched UTXO snapshot",
		zap.Int("numAddresses", len(addrList)),
		zap.Int("numPages", pages),
		zap.Int("numUTXOs", index.Len()),
	)
	return index, nil
}

// Balance returns how much of [assetID] is held in UTXOs referencing any of
// [addrs].
func (b *Backend) Balance(ctx context.Context, addrs set.Set[ids.ShortID], assetID ids.ID) (uint64, error) {
	index, err := b.Snapshot(ctx, addrs)
	if err != nil {
		return 0, err
	}
	return index.Balance(assetID, addrs)
}

// Context fetches the chain configuration transactions are built against.
func (b *Backend) Context(ctx context.Context, infoClient info.Client) (*builder.Context, error) {
	return builder.NewContextFromClients(ctx, infoClient, b.client)
}
