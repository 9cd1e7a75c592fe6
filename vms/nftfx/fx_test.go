// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package nftfx

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/utils/crypto/secp256k1"
	"github.com/ava-labs/nftissuer/utils/hashing"
	"github.com/ava-labs/nftissuer/vms/secp256k1fx"
)

func sign(t *testing.T, hash []byte, key *secp256k1.PrivateKey) *Credential {
	sig, err := key.SignHash(hash)
	require.NoError(t, err)

	cred := &Credential{}
	cred.Sigs = make([][secp256k1.SignatureLen]byte, 1)
	copy(cred.Sigs[0][:], sig)
	return cred
}

func TestFxVerifyMintOperation(t *testing.T) {
	require := require.New(t)

	var (
		fx   Fx
		key  = secp256k1.TestKeys()[0]
		hash = hashing.ComputeHash256([]byte("mint"))
		cred = sign(t, hash, key)
	)
	owners := secp256k1fx.OutputOwners{
		Threshold: 1,
		Addrs:     []ids.ShortID{key.Address()},
	}
	utxo := &MintOutput{
		GroupID:      42,
		OutputOwners: owners,
	}
	op := &MintOperation{
		MintInput: secp256k1fx.Input{SigIndices: []uint32{0}},
		GroupID:   42,
		Payload:   []byte("nft"),
		Outputs:   []*secp256k1fx.OutputOwners{&owners},
	}
	require.NoError(fx.VerifyOperation(hash, 0, op, cred, []interface{}{utxo}))

	op.GroupID = 43
	require.ErrorIs(fx.VerifyOperation(hash, 0, op, cred, []interface{}{utxo}), ErrWrongUniqueID)

	require.ErrorIs(fx.VerifyOperation(hash, 0, op, cred, nil), ErrWrongNumberOfUTXOs)
	require.ErrorIs(fx.VerifyOperation(hash, 0, op, &secp256k1fx.Credential{}, []interface{}{utxo}), ErrWrongCredentialType)
	require.ErrorIs(fx.VerifyOperation(hash, 0, &secp256k1fx.MintOperation{}, cred, []interface{}{utxo}), ErrWrongOperationType)
	require.ErrorIs(fx.VerifyOperation(hash, 0, op, cred, []interface{}{&TransferOutput{}}), ErrWrongUTXOType)
}

func TestFxVerifyTransferOperation(t *testing.T) {
	require := require.New(t)

	var (
		fx   Fx
		key  = secp256k1.TestKeys()[1]
		hash = hashing.ComputeHash256([]byte("transfer"))
		cred = sign(t, hash, key)
	)
	utxo := &TransferOutput{
		GroupID: 1,
		Payload: []byte{1},
		OutputOwners: secp256k1fx.OutputOwners{
			Threshold: 1,
			Addrs:     []ids.ShortID{key.Address()},
		},
	}
	op := &TransferOperation{
		Input: secp256k1fx.Input{SigIndices: []uint32{0}},
		Output: TransferOutput{
			GroupID: 1,
			Payload: []byte{1},
			OutputOwners: secp256k1fx.OutputOwners{
				Threshold: 1,
				Addrs:     []ids.ShortID{ids.GenerateTestShortID()},
			},
		},
	}
	require.NoError(fx.VerifyOperation(hash, 0, op, cred, []interface{}{utxo}))

	op.Output.Payload = []byte{2}
	require.ErrorIs(fx.VerifyOperation(hash, 0, op, cred, []interface{}{utxo}), ErrWrongBytes)

	op.Output.Payload = []byte{1}
	op.Output.GroupID = 2
	require.ErrorIs(fx.VerifyOperation(hash, 0, op, cred, []interface{}{utxo}), ErrWrongUniqueID)

	op.Output.GroupID = 1
	wrongKeyCred := sign(t, hash, secp256k1.TestKeys()[2])
	require.ErrorIs(fx.VerifyOperation(hash, 0, op, wrongKeyCred, []interface{}{utxo}), secp256k1fx.ErrWrongSig)
}
