// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package nftfx

import (
	"bytes"
	"errors"

	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/vms/components/verify"
	"github.com/ava-labs/nftissuer/vms/secp256k1fx"
)

var (
	// ID that this Fx uses when labeled
	ID = ids.ID{'n', 'f', 't', 'f', 'x'}

	ErrWrongUTXOType       = errors.New("wrong utxo type")
	ErrWrongOperationType  = errors.New("wrong operation type")
	ErrWrongCredentialType = errors.New("wrong credential type")
	ErrWrongNumberOfUTXOs  = errors.New("wrong number of UTXOs for the operation")
	ErrWrongUniqueID       = errors.New("wrong unique ID provided")
	ErrWrongBytes          = errors.New("wrong bytes provided")
)

type Fx struct{ secp256k1fx.Fx }

// VerifyOperation checks that [opIntf] may consume the single UTXO in
// [utxosIntf] given the signatures in [credIntf].
func (fx *Fx) VerifyOperation(unsignedHash []byte, now uint64, opIntf, credIntf interface{}, utxosIntf []interface{}) error {
	if len(utxosIntf) != 1 {
		return ErrWrongNumberOfUTXOs
	}
	cred, ok := credIntf.(*Credential)
	if !ok {
		return ErrWrongCredentialType
	}

	switch op := opIntf.(type) {
	case *MintOperation:
		return fx.VerifyMintOperation(unsignedHash, now, op, cred, utxosIntf[0])
	case *TransferOperation:
		return fx.VerifyTransferOperation(unsignedHash, now, op, cred, utxosIntf[0])
	default:
		return ErrWrongOperationType
	}
}

func (fx *Fx) VerifyMintOperation(unsignedHash []byte, now uint64, op *MintOperation, cred *Credential, utxoIntf interface{}) error {
	out, ok := utxoIntf.(*MintOutput)
	if !ok {
		return ErrWrongUTXOType
	}

	if err := verify.All(op, cred, out); err != nil {
		return err
	}

	switch {
	case out.GroupID != op.GroupID:
		return ErrWrongUniqueID
	default:
		return fx.Fx.VerifyCredentials(unsignedHash, now, &op.MintInput, &cred.Credential, &out.OutputOwners)
	}
}

func (fx *Fx) VerifyTransferOperation(unsignedHash []byte, now uint64, op *TransferOperation, cred *Credential, utxoIntf interface{}) error {
	out, ok := utxoIntf.(*TransferOutput)
	if !ok {
		return ErrWrongUTXOType
	}

	if err := verify.All(op, cred, out); err != nil {
		return err
	}

	switch {
	case out.GroupID != op.Output.GroupID:
		return ErrWrongUniqueID
	case !bytes.Equal(out.Payload, op.Output.Payload):
		return ErrWrongBytes
	default:
		return fx.Fx.VerifyCredentials(unsignedHash, now, &op.Input, &cred.Credential, &out.OutputOwners)
	}
}
