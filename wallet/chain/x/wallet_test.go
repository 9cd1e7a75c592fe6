// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package x

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/utils/crypto/secp256k1"
	"github.com/ava-labs/nftissuer/utils/logging"
	"github.com/ava-labs/nftissuer/utils/set"
	"github.com/ava-labs/nftissuer/utils/timer/mockable"
	"github.com/ava-labs/nftissuer/utils/units"
	"github.com/ava-labs/nftissuer/vms/avm"
	"github.com/ava-labs/nftissuer/vms/avm/avmtest"
	"github.com/ava-labs/nftissuer/vms/avm/txs"
	"github.com/ava-labs/nftissuer/vms/components/avax"
	"github.com/ava-labs/nftissuer/vms/nftfx"
	"github.com/ava-labs/nftissuer/vms/secp256k1fx"
	"github.com/ava-labs/nftissuer/wallet/chain/x/builder"
	"github.com/ava-labs/nftissuer/wallet/chain/x/issuer"
	"github.com/ava-labs/nftissuer/wallet/subnet/primary/common"
)

func newTestWallet(t *testing.T, server *avmtest.Server, keys ...*secp256k1.PrivateKey) Wallet {
	t.Helper()
	require := require.New(t)

	kc := secp256k1fx.NewKeychain(keys...)
	client := avm.NewClient(server.URL, "X")

	metrics, err := issuer.NewMetrics("wallet", prometheus.NewRegistry())
	require.NoError(err)
	config := issuer.DefaultConfig
	config.PollFrequency = time.Millisecond
	i, err := issuer.New(client, &mockable.Clock{}, logging.NoLog{}, metrics, config)
	require.NoError(err)

	return NewWallet(
		NewBackend(client, logging.NoLog{}),
		newNodeBuilder(server.Node, kc.Addresses()),
		NewSigner(kc),
		i,
	)
}

func TestWalletCreateMintTransfer(t *testing.T) {
	require := require.New(t)

	server := newTestServer(t)
	server.Node.ProcessingPolls = 2
	addr0 := keys[0].Address()
	addr1 := keys[1].Address()
	server.Node.Fund(addr0, units.Avax)

	w := newTestWallet(t, server, keys[0])

	assetID, err := w.IssueCreateAssetTx(
		"Collectible",
		"COL",
		0,
		[]builder.Group{{
			GroupID: 42,
			Minters: builder.MinterSet{
				Threshold: 1,
				Minters:   []ids.ShortID{addr0},
			},
		}},
	)
	require.NoError(err)

	mintTxID, err := w.IssueMintNFTTx(
		assetID,
		42,
		[]byte("https://example.com/1.png"),
		[]*secp256k1fx.OutputOwners{{
			Threshold: 1,
			Addrs:     []ids.ShortID{addr0},
		}},
	)
	require.NoError(err)

	transferTxID, err := w.IssueTransferNFTTx(
		mintTxID,
		&secp256k1fx.OutputOwners{
			Threshold: 1,
			Addrs:     []ids.ShortID{addr1},
		},
	)
	require.NoError(err)

	var nfts []*nftfx.TransferOutput
	for _, utxo := range server.Node.UTXOs(set.Of(addr1)) {
		if out, ok := utxo.Out.(*nftfx.TransferOutput); ok {
			require.Equal(transferTxID, utxo.TxID)
			require.Equal(assetID, utxo.AssetID())
			nfts = append(nfts, out)
		}
	}
	require.Len(nfts, 1)
	require.Equal(uint32(42), nfts[0].GroupID)
	require.Equal([]byte("https://example.com/1.png"), nfts[0].Payload)

	expectedBalance := units.Avax - server.Node.CreateAssetTxFee - 2*server.Node.TxFee
	balance, err := NewBackend(avm.NewClient(server.URL, "X"), logging.NoLog{}).Balance(
		context.Background(),
		set.Of(addr0),
		server.Node.AVAXAssetID,
	)
	require.NoError(err)
	require.Equal(expectedBalance, balance)
}

func TestWalletIssueRefused(t *testing.T) {
	require := require.New(t)

	server := newTestServer(t)
	server.Node.RejectIssuance = func(*txs.Tx) error {
		return errUnavailable
	}
	server.Node.Fund(keys[0].Address(), units.Avax)

	w := newTestWallet(t, server, keys[0])
	_, err := w.IssueBaseTx(nil)
	require.ErrorIs(err, issuer.ErrSubmissionRejected)
}

func TestWalletWithOptions(t *testing.T) {
	require := require.New(t)

	server := newTestServer(t)
	addr0 := keys[0].Address()
	addr1 := keys[1].Address()
	server.Node.Fund(addr0, units.Avax)

	var issued []ids.ID
	w := NewWalletWithOptions(
		newTestWallet(t, server, keys[0]),
		common.WithMemo([]byte("memo")),
		common.WithPostIssuanceFunc(func(txID ids.ID) {
			issued = append(issued, txID)
		}),
	)

	txID, err := w.IssueBaseTx([]*avax.TransferableOutput{{
		Asset: avax.Asset{ID: server.Node.AVAXAssetID},
		Out: &secp256k1fx.TransferOutput{
			Amt: units.MilliAvax,
			OutputOwners: secp256k1fx.OutputOwners{
				Threshold: 1,
				Addrs:     []ids.ShortID{addr1},
			},
		},
	}})
	require.NoError(err)
	require.Equal([]ids.ID{txID}, issued)

	tx, ok := server.Node.Tx(txID)
	require.True(ok)
	baseTx, ok := tx.Unsigned.(*txs.BaseTx)
	require.True(ok)
	require.Equal([]byte("memo"), baseTx.Memo)
}

func TestWalletStaleMint(t *testing.T) {
	require := require.New(t)

	server := newTestServer(t)
	addr0 := keys[0].Address()
	server.Node.Fund(addr0, units.Avax)

	w := newTestWallet(t, server, keys[0])
	_, err := w.IssueMintNFTTx(
		ids.GenerateTestID(),
		42,
		nil,
		[]*secp256k1fx.OutputOwners{{
			Threshold: 1,
			Addrs:     []ids.ShortID{addr0},
		}},
	)
	require.ErrorIs(err, builder.ErrNoDescendant)
}
