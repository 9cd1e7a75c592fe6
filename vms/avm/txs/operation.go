// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"bytes"
	"errors"

	"github.com/ava-labs/nftissuer/codec"
	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/utils"
	"github.com/ava-labs/nftissuer/vms/avm/fxs"
	"github.com/ava-labs/nftissuer/vms/components/avax"
	"github.com/ava-labs/nftissuer/vms/components/verify"
)

var (
	ErrNilOperation              = errors.New("nil operation is not valid")
	ErrNilFxOperation            = errors.New("nil fx operation is not valid")
	ErrNotSortedAndUniqueUTXOIDs = errors.New("utxo IDs not sorted and unique")
)

type Operation struct {
	avax.Asset `serialize:"true"`
	UTXOIDs    []*avax.UTXOID  `serialize:"true" json:"inputIDs"`
	FxID       ids.ID          `serialize:"false" json:"fxID"`
	Op         fxs.FxOperation `serialize:"true" json:"operation"`
}

func (op *Operation) Verify() error {
	switch {
	case op == nil:
		return ErrNilOperation
	case op.Op == nil:
		return ErrNilFxOperation
	case !utils.IsSortedAndUnique(op.UTXOIDs):
		return ErrNotSortedAndUniqueUTXOIDs
	default:
		return verify.All(&op.Asset, op.Op)
	}
}

type operationAndCodec struct {
	op    *Operation
	codec codec.Manager
}

func (o *operationAndCodec) Less(other *operationAndCodec) bool {
	oBytes, err := o.codec.Marshal(CodecVersion, o.op)
	if err != nil {
		return false
	}
	otherBytes, err := o.codec.Marshal(CodecVersion, other.op)
	if err != nil {
		return false
	}
	return bytes.Compare(oBytes, otherBytes) == -1
}

func IsSortedAndUniqueOperations(ops []*Operation, c codec.Manager) bool {
	sortableOps := make([]*operationAndCodec, len(ops))
	for i, op := range ops {
		sortableOps[i] = &operationAndCodec{
			op:    op,
			codec: c,
		}
	}
	return utils.IsSortedAndUnique(sortableOps)
}
