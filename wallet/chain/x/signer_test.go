// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package x

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/utils/crypto/secp256k1"
	"github.com/ava-labs/nftissuer/utils/set"
	"github.com/ava-labs/nftissuer/utils/units"
	"github.com/ava-labs/nftissuer/vms/avm/avmtest"
	"github.com/ava-labs/nftissuer/vms/avm/fxs"
	"github.com/ava-labs/nftissuer/vms/avm/txs"
	"github.com/ava-labs/nftissuer/vms/components/verify"
	"github.com/ava-labs/nftissuer/vms/nftfx"
	"github.com/ava-labs/nftissuer/vms/secp256k1fx"
	"github.com/ava-labs/nftissuer/wallet/chain/x/builder"
	"github.com/ava-labs/nftissuer/wallet/chain/x/fees"
	"github.com/ava-labs/nftissuer/wallet/chain/x/utxos"
)

// newNodeBuilder returns a builder for the chain simulated by [node] that
// spends the UTXOs of [addrs].
func newNodeBuilder(node *avmtest.Node, addrs set.Set[ids.ShortID]) *builder.Builder {
	return builder.New(
		addrs,
		&builder.Context{
			NetworkID:    node.NetworkID,
			BlockchainID: node.ChainID,
			AVAXAssetID:  node.AVAXAssetID,
		},
		fees.NewStatic(node.CreateAssetTxFee, node.TxFee),
	)
}

func snapshotOf(node *avmtest.Node, addrs set.Set[ids.ShortID]) *utxos.Index {
	return utxos.New(node.UTXOs(addrs))
}

func TestSignerCreateAndMint(t *testing.T) {
	require := require.New(t)

	node := avmtest.NewNode()
	addr0 := keys[0].Address()
	addr1 := keys[1].Address()
	addrs := set.Of(addr0, addr1)
	node.Fund(addr0, units.Avax)

	b := newNodeBuilder(node, addrs)
	s := NewSigner(secp256k1fx.NewKeychain(keys[0], keys[1]))

	res, err := b.NewCreateAssetTx(
		snapshotOf(node, addrs),
		"Collectible",
		"COL",
		0,
		[]builder.Group{{
			GroupID: 42,
			Minters: builder.MinterSet{
				Threshold: 2,
				Minters:   []ids.ShortID{addr0, addr1},
			},
		}},
	)
	require.NoError(err)

	createTx, err := s.Sign(context.Background(), res)
	require.NoError(err)
	require.Len(createTx.Creds, 1)
	require.Equal(secp256k1fx.ID, createTx.Creds[0].FxID)

	assetID, err := node.Issue(createTx.Bytes())
	require.NoError(err)
	require.Equal(createTx.ID(), assetID)

	res, err = b.NewMintNFTTx(
		snapshotOf(node, addrs),
		assetID,
		42,
		[]byte("payload"),
		[]*secp256k1fx.OutputOwners{{
			Threshold: 1,
			Addrs:     []ids.ShortID{addr1},
		}},
	)
	require.NoError(err)

	mintTx, err := s.Sign(context.Background(), res)
	require.NoError(err)
	require.Len(mintTx.Creds, 2)
	require.Equal(nftfx.ID, mintTx.Creds[1].FxID)
	mintCred, ok := mintTx.Creds[1].Credential.(*nftfx.Credential)
	require.True(ok)
	require.Len(mintCred.Sigs, 2)

	mintTxID, err := node.Issue(mintTx.Bytes())
	require.NoError(err)
	require.Equal(mintTx.ID(), mintTxID)
}

func TestSignerErrors(t *testing.T) {
	node := avmtest.NewNode()
	addr0 := keys[0].Address()
	node.Fund(addr0, units.Avax)

	res, err := newNodeBuilder(node, set.Of(addr0)).NewBaseTx(snapshotOf(node, set.Of(addr0)), nil)
	require.NoError(t, err)

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name        string
		ctx         context.Context
		keys        []*secp256k1.PrivateKey
		res         *builder.Result
		expectedErr error
	}{
		{
			name:        "missing key",
			ctx:         context.Background(),
			keys:        []*secp256k1.PrivateKey{keys[1]},
			res:         res,
			expectedErr: ErrMissingKey,
		},
		{
			name: "extra signer list",
			ctx:  context.Background(),
			keys: []*secp256k1.PrivateKey{keys[0]},
			res: &builder.Result{
				Tx:      res.Tx,
				Signers: append(res.Signers, []ids.ShortID{addr0}),
			},
			expectedErr: errWrongNumberSigners,
		},
		{
			name:        "canceled",
			ctx:         canceled,
			keys:        []*secp256k1.PrivateKey{keys[0]},
			res:         res,
			expectedErr: context.Canceled,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := NewSigner(secp256k1fx.NewKeychain(test.keys...))
			_, err := s.Sign(test.ctx, test.res)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

type unknownOperation struct{}

func (*unknownOperation) Verify() error {
	return nil
}

func (*unknownOperation) Outs() []verify.State {
	return nil
}

func TestOperationCredential(t *testing.T) {
	tests := []struct {
		name         string
		op           fxs.FxOperation
		expectedFxID ids.ID
		expectedErr  error
	}{
		{
			name:         "nft mint",
			op:           &nftfx.MintOperation{},
			expectedFxID: nftfx.ID,
		},
		{
			name:         "nft transfer",
			op:           &nftfx.TransferOperation{},
			expectedFxID: nftfx.ID,
		},
		{
			name:         "secp256k1 mint",
			op:           &secp256k1fx.MintOperation{},
			expectedFxID: secp256k1fx.ID,
		},
		{
			name:        "unknown",
			op:          &unknownOperation{},
			expectedErr: errUnknownOpType,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			cred, err := operationCredential(&txs.Operation{Op: test.op})
			require.ErrorIs(err, test.expectedErr)
			if test.expectedErr != nil {
				return
			}
			require.Equal(test.expectedFxID, cred.fxCred.FxID)
			require.NotNil(cred.sigs)
		})
	}
}
