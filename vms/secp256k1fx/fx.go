// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"errors"

	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/utils/crypto/secp256k1"
	"github.com/ava-labs/nftissuer/vms/components/verify"
)

var (
	// ID that this Fx uses when labeled
	ID = ids.ID{'s', 'e', 'c', 'p', '2', '5', '6', 'k', '1', 'f', 'x'}

	ErrWrongInputType                 = errors.New("wrong input type")
	ErrWrongCredentialType            = errors.New("wrong credential type")
	ErrMismatchedAmounts              = errors.New("utxo amount and input amount are not equal")
	ErrWrongNumberOfUTXOs             = errors.New("wrong number of utxos for the operation")
	ErrTimelocked                     = errors.New("output is time locked")
	ErrTooManySigners                 = errors.New("input has more signers than expected")
	ErrTooFewSigners                  = errors.New("input has less signers than expected")
	ErrInputOutputIndexOutOfBounds    = errors.New("input referenced a nonexistent address in the output")
	ErrInputCredentialSignersMismatch = errors.New("input expected a different number of signers than provided in the credential")
	ErrWrongSig                       = errors.New("wrong signature")
)

// Fx checks that inputs are authorized to consume outputs. Signatures are
// recovered against [unsignedHash] and locktimes are compared with [now].
type Fx struct{}

// VerifyTransfer verifies that [inIntf] consuming [utxoIntf] is authorized by
// [credIntf].
func (fx *Fx) VerifyTransfer(unsignedHash []byte, now uint64, inIntf, credIntf, utxoIntf interface{}) error {
	in, ok := inIntf.(*TransferInput)
	if !ok {
		return ErrWrongInputType
	}
	cred, ok := credIntf.(*Credential)
	if !ok {
		return ErrWrongCredentialType
	}
	out, ok := utxoIntf.(*TransferOutput)
	if !ok {
		return ErrWrongUTXOType
	}
	if err := verify.All(out, in, cred); err != nil {
		return err
	}
	if out.Amt != in.Amt {
		return ErrMismatchedAmounts
	}
	return fx.VerifyCredentials(unsignedHash, now, &in.Input, cred, &out.OutputOwners)
}

// VerifyCredentials ensures that the output can be spent by the input with the
// credential. A nil return values means the output can be spent.
func (*Fx) VerifyCredentials(unsignedHash []byte, now uint64, in *Input, cred *Credential, out *OutputOwners) error {
	numSigs := len(in.SigIndices)
	switch {
	case out.Locktime > now:
		return ErrTimelocked
	case out.Threshold < uint32(numSigs):
		return ErrTooManySigners
	case out.Threshold > uint32(numSigs):
		return ErrTooFewSigners
	case numSigs != len(cred.Sigs):
		return ErrInputCredentialSignersMismatch
	}

	for i, index := range in.SigIndices {
		if index >= uint32(len(out.Addrs)) {
			return ErrInputOutputIndexOutOfBounds
		}

		sig := cred.Sigs[i]
		pk, err := secp256k1.RecoverPublicKeyFromHash(unsignedHash, sig[:])
		if err != nil {
			return err
		}

		if expectedAddress := out.Addrs[index]; expectedAddress != pk.Address() {
			return ErrWrongSig
		}
	}
	return nil
}
