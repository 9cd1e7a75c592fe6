// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package x

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/utils/crypto/keychain"
	"github.com/ava-labs/nftissuer/utils/crypto/secp256k1"
	"github.com/ava-labs/nftissuer/utils/hashing"
	"github.com/ava-labs/nftissuer/vms/avm/fxs"
	"github.com/ava-labs/nftissuer/vms/avm/txs"
	"github.com/ava-labs/nftissuer/vms/nftfx"
	"github.com/ava-labs/nftissuer/vms/secp256k1fx"
	"github.com/ava-labs/nftissuer/wallet/chain/x/builder"
)

var (
	ErrMissingKey = errors.New("missing key")

	errUnknownOpType       = errors.New("unknown operation type")
	errWrongNumberSigners  = errors.New("wrong number of signer lists")
	errInvalidSignatureLen = errors.New("invalid signature length")

	_ Signer      = (*signer)(nil)
	_ txs.Visitor = (*signerVisitor)(nil)
)

type Signer interface {
	// Sign produces the signed form of [res]. Every address listed in
	// res.Signers must be held by the signer, otherwise ErrMissingKey is
	// returned and nothing is signed.
	Sign(ctx context.Context, res *builder.Result) (*txs.Tx, error)
}

type signer struct {
	kc keychain.Keychain
}

func NewSigner(kc keychain.Keychain) Signer {
	return &signer{
		kc: kc,
	}
}

func (s *signer) Sign(ctx context.Context, res *builder.Result) (*txs.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tx := &txs.Tx{Unsigned: res.Tx}
	err := res.Tx.Visit(&signerVisitor{
		kc:      s.kc,
		tx:      tx,
		signers: res.Signers,
	})
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// signerVisitor creates the credentials of a tx: one per input, then one per
// operation, each holding a signature for every address of its signer list.
type signerVisitor struct {
	kc      keychain.Keychain
	tx      *txs.Tx
	signers [][]ids.ShortID
}

func (s *signerVisitor) BaseTx(tx *txs.BaseTx) error {
	return s.sign(inputCredentials(len(tx.Ins)))
}

func (s *signerVisitor) CreateAssetTx(tx *txs.CreateAssetTx) error {
	return s.sign(inputCredentials(len(tx.Ins)))
}

func (s *signerVisitor) OperationTx(tx *txs.OperationTx) error {
	creds := inputCredentials(len(tx.Ins))
	for _, op := range tx.Ops {
		cred, err := operationCredential(op)
		if err != nil {
			return err
		}
		creds = append(creds, cred)
	}
	return s.sign(creds)
}

type credential struct {
	fxCred *fxs.FxCredential
	// sigs is the part of fxCred the signatures are written to
	sigs *secp256k1fx.Credential
}

func inputCredentials(numInputs int) []credential {
	creds := make([]credential, numInputs)
	for i := range creds {
		cred := &secp256k1fx.Credential{}
		creds[i] = credential{
			fxCred: &fxs.FxCredential{
				FxID:       secp256k1fx.ID,
				Credential: cred,
			},
			sigs: cred,
		}
	}
	return creds
}

func operationCredential(op *txs.Operation) (credential, error) {
	switch op.Op.(type) {
	case *nftfx.MintOperation, *nftfx.TransferOperation:
		cred := &nftfx.Credential{}
		return credential{
			fxCred: &fxs.FxCredential{
				FxID:       nftfx.ID,
				Credential: cred,
			},
			sigs: &cred.Credential,
		}, nil
	case *secp256k1fx.MintOperation:
		cred := &secp256k1fx.Credential{}
		return credential{
			fxCred: &fxs.FxCredential{
				FxID:       secp256k1fx.ID,
				Credential: cred,
			},
			sigs: cred,
		}, nil
	default:
		return credential{}, fmt.Errorf("%w: %T", errUnknownOpType, op.Op)
	}
}

func (s *signerVisitor) sign(creds []credential) error {
	if len(creds) != len(s.signers) {
		return fmt.Errorf("%w: %d credentials but %d signer lists",
			errWrongNumberSigners,
			len(creds),
			len(s.signers),
		)
	}

	unsignedBytes, err := txs.Codec.Marshal(txs.CodecVersion, &s.tx.Unsigned)
	if err != nil {
		return fmt.Errorf("couldn't marshal unsigned tx: %w", err)
	}
	unsignedHash := hashing.ComputeHash256(unsignedBytes)

	fxCreds := make([]*fxs.FxCredential, len(creds))
	for i, cred := range creds {
		addrs := s.signers[i]
		cred.sigs.Sigs = make([][secp256k1.SignatureLen]byte, len(addrs))
		for j, addr := range addrs {
			key, ok := s.kc.Get(addr)
			if !ok {
				return fmt.Errorf("%w for %s", ErrMissingKey, addr)
			}
			sig, err := key.SignHash(unsignedHash)
			if err != nil {
				return fmt.Errorf("failed to sign with %s: %w", addr, err)
			}
			if len(sig) != secp256k1.SignatureLen {
				return fmt.Errorf("%w: %d", errInvalidSignatureLen, len(sig))
			}
			copy(cred.sigs.Sigs[j][:], sig)
		}
		fxCreds[i] = cred.fxCred
	}
	s.tx.Creds = fxCreds

	signedBytes, err := txs.Codec.Marshal(txs.CodecVersion, s.tx)
	if err != nil {
		return fmt.Errorf("couldn't marshal tx: %w", err)
	}
	s.tx.SetBytes(unsignedBytes, signedBytes)
	return nil
}
