// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"
	"fmt"

	"github.com/ava-labs/nftissuer/codec"
	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/utils/hashing"
	"github.com/ava-labs/nftissuer/utils/set"
	"github.com/ava-labs/nftissuer/vms/avm/fxs"
	"github.com/ava-labs/nftissuer/vms/components/avax"
)

var (
	ErrNilTx            = errors.New("nil tx is not valid")
	ErrWrongNumberCreds = errors.New("wrong number of credentials")
)

type UnsignedTx interface {
	SetBytes(unsignedBytes []byte)
	Bytes() []byte

	InputIDs() set.Set[ids.ID]
	InputUTXOs() []*avax.UTXOID
	NumCredentials() int

	// SyntacticVerify checks the parts of the transaction that do not depend
	// on chain state.
	SyntacticVerify(networkID uint32, chainID ids.ID) error

	// Visit calls [visitor] with this transaction's concrete type
	Visit(visitor Visitor) error
}

// Tx is the core operation that can be performed. The tx uses the UTXO model.
// Specifically, a txs inputs will consume previous txs outputs. A tx will be
// valid if the inputs have the authority to consume the outputs they are
// attempting to consume and the inputs consume sufficient state to produce the
// outputs.
type Tx struct {
	Unsigned UnsignedTx          `serialize:"true" json:"unsignedTx"`
	Creds    []*fxs.FxCredential `serialize:"true" json:"credentials"` // The credentials of this transaction

	TxID  ids.ID `json:"id"`
	bytes []byte
}

// Initialize computes the unsigned and signed bytes of the tx along with its
// ID.
func (t *Tx) Initialize(c codec.Manager) error {
	unsignedBytes, err := c.Marshal(CodecVersion, &t.Unsigned)
	if err != nil {
		return fmt.Errorf("couldn't marshal UnsignedTx: %w", err)
	}

	signedBytes, err := c.Marshal(CodecVersion, t)
	if err != nil {
		return fmt.Errorf("couldn't marshal Tx: %w", err)
	}

	t.SetBytes(unsignedBytes, signedBytes)
	return nil
}

func (t *Tx) SetBytes(unsignedBytes, signedBytes []byte) {
	t.TxID = hashing.ComputeHash256Array(signedBytes)
	t.bytes = signedBytes
	t.Unsigned.SetBytes(unsignedBytes)
}

// ID returns the unique ID of this tx
func (t *Tx) ID() ids.ID {
	return t.TxID
}

// Bytes returns the binary representation of this tx
func (t *Tx) Bytes() []byte {
	return t.bytes
}

// UnsignedHash returns the hash the credentials of this tx sign.
func (t *Tx) UnsignedHash() []byte {
	return hashing.ComputeHash256(t.Unsigned.Bytes())
}

// UTXOs returns the UTXOs transaction is producing.
func (t *Tx) UTXOs() []*avax.UTXO {
	u := utxoGetter{tx: t}
	// The visit error is explicitly dropped here because no error is ever
	// returned from the utxoGetter.
	_ = t.Unsigned.Visit(&u)
	return u.utxos
}

// SyntacticVerify verifies that this transaction is well-formed.
func (t *Tx) SyntacticVerify(networkID uint32, chainID ids.ID) error {
	if t == nil || t.Unsigned == nil {
		return ErrNilTx
	}

	if err := t.Unsigned.SyntacticVerify(networkID, chainID); err != nil {
		return err
	}

	for _, cred := range t.Creds {
		if err := cred.Verify(); err != nil {
			return err
		}
	}

	if numCreds := t.Unsigned.NumCredentials(); numCreds != len(t.Creds) {
		return fmt.Errorf("%w: tx has %d credentials but %d inputs",
			ErrWrongNumberCreds,
			len(t.Creds),
			numCreds,
		)
	}
	return nil
}
