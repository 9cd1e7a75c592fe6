// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/vms/components/avax"
)

var _ UnsignedTx = (*BaseTx)(nil)

// BaseTx is the basis of all transactions.
type BaseTx struct {
	avax.BaseTx `serialize:"true"`

	bytes []byte
}

func (t *BaseTx) SetBytes(bytes []byte) {
	t.bytes = bytes
}

func (t *BaseTx) Bytes() []byte {
	return t.bytes
}

func (t *BaseTx) SyntacticVerify(networkID uint32, chainID ids.ID) error {
	return t.BaseTx.Verify(networkID, chainID, Codec)
}

func (t *BaseTx) Visit(v Visitor) error {
	return v.BaseTx(t)
}
