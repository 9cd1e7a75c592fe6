// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avax

import (
	"bytes"
	"errors"
	"sort"

	"golang.org/x/exp/slices"

	"github.com/ava-labs/nftissuer/codec"
	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/utils"
	"github.com/ava-labs/nftissuer/utils/constants"
	"github.com/ava-labs/nftissuer/vms/components/verify"
)

var (
	ErrNilTransferableOutput   = errors.New("nil transferable output is not valid")
	ErrNilTransferableFxOutput = errors.New("nil transferable feature extension output is not valid")
	ErrOutputsNotSorted        = errors.New("outputs not sorted")

	ErrNilTransferableInput   = errors.New("nil transferable input is not valid")
	ErrNilTransferableFxInput = errors.New("nil transferable feature extension input is not valid")
	ErrInputsNotSortedUnique  = errors.New("inputs not sorted and unique")

	_ verify.Verifiable                  = (*TransferableOutput)(nil)
	_ verify.Verifiable                  = (*TransferableInput)(nil)
	_ utils.Sortable[*TransferableInput] = (*TransferableInput)(nil)
)

// Amounter is a data structure that has an amount of something associated with it
type Amounter interface {
	// Amount returns how much value this element represents of the asset in its
	// transaction.
	Amount() uint64
}

// TransferableIn is the interface a feature extension must provide to transfer
// value between features extensions.
type TransferableIn interface {
	verify.Verifiable
	verify.IsNotState
	Amounter
}

// TransferableOut is the interface a feature extension must provide to transfer
// value between features extensions.
type TransferableOut interface {
	verify.State
	Amounter
}

type TransferableOutput struct {
	Asset `serialize:"true"`
	// FxID has serialize false because we don't actually want to serialize this
	// value.
	FxID ids.ID `json:"fxID"`

	Out TransferableOut `serialize:"true" json:"output"`
}

// Output returns the feature extension output that this Output is using.
func (out *TransferableOutput) Output() TransferableOut {
	return out.Out
}

func (out *TransferableOutput) Verify() error {
	switch {
	case out == nil:
		return ErrNilTransferableOutput
	case out.Out == nil:
		return ErrNilTransferableFxOutput
	default:
		return verify.All(&out.Asset, out.Out)
	}
}

type outerOutputSorter struct {
	out   *TransferableOutput
	bytes []byte
}

// SortTransferableOutputs sorts output objects by their serialized bytes.
func SortTransferableOutputs(outs []*TransferableOutput, c codec.Manager) {
	sorters := make([]outerOutputSorter, len(outs))
	for i, out := range outs {
		// Outputs that fail to marshal sort first and are rejected by Verify.
		b, _ := c.Marshal(constants.CodecVersion, out)
		sorters[i] = outerOutputSorter{out: out, bytes: b}
	}
	slices.SortFunc(sorters, func(a, b outerOutputSorter) bool {
		return bytes.Compare(a.bytes, b.bytes) == -1
	})
	for i, s := range sorters {
		outs[i] = s.out
	}
}

// IsSortedTransferableOutputs returns true if output objects are sorted
func IsSortedTransferableOutputs(outs []*TransferableOutput, c codec.Manager) bool {
	serialized := make([][]byte, len(outs))
	for i, out := range outs {
		b, err := c.Marshal(constants.CodecVersion, out)
		if err != nil {
			return false
		}
		serialized[i] = b
	}
	return utils.IsSortedBytes(serialized)
}

type TransferableInput struct {
	UTXOID `serialize:"true"`
	Asset  `serialize:"true"`
	// FxID has serialize false because we don't actually want to serialize this
	// value.
	FxID ids.ID `json:"fxID"`

	In TransferableIn `serialize:"true" json:"input"`
}

// Input returns the feature extension input that this Input is using.
func (in *TransferableInput) Input() TransferableIn {
	return in.In
}

func (in *TransferableInput) Verify() error {
	switch {
	case in == nil:
		return ErrNilTransferableInput
	case in.In == nil:
		return ErrNilTransferableFxInput
	default:
		return verify.All(&in.UTXOID, &in.Asset, in.In)
	}
}

func (in *TransferableInput) Less(other *TransferableInput) bool {
	return in.UTXOID.Less(&other.UTXOID)
}

type innerSortTransferableInputsWithSigners[T any] struct {
	ins     []*TransferableInput
	signers [][]T
}

func (s *innerSortTransferableInputsWithSigners[_]) Less(i, j int) bool {
	return s.ins[i].Less(s.ins[j])
}

func (s *innerSortTransferableInputsWithSigners[_]) Len() int {
	return len(s.ins)
}

func (s *innerSortTransferableInputsWithSigners[_]) Swap(i, j int) {
	s.ins[j], s.ins[i] = s.ins[i], s.ins[j]
	s.signers[j], s.signers[i] = s.signers[i], s.signers[j]
}

// SortTransferableInputsWithSigners sorts the inputs and signers based on the
// input's utxo ID
func SortTransferableInputsWithSigners[T any](ins []*TransferableInput, signers [][]T) {
	sort.Sort(&innerSortTransferableInputsWithSigners[T]{ins: ins, signers: signers})
}

// VerifyTx verifies that the inputs and outputs are well formed and sorted.
func VerifyTx(
	ins []*TransferableInput,
	outs []*TransferableOutput,
	c codec.Manager,
) error {
	for _, out := range outs {
		if err := out.Verify(); err != nil {
			return err
		}
	}
	if !IsSortedTransferableOutputs(outs, c) {
		return ErrOutputsNotSorted
	}

	for _, in := range ins {
		if err := in.Verify(); err != nil {
			return err
		}
	}
	if !utils.IsSortedAndUnique(ins) {
		return ErrInputsNotSortedUnique
	}
	return nil
}
