// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package nftfx

import (
	"encoding/json"
	"errors"

	"github.com/ava-labs/nftissuer/utils/formatting"
	"github.com/ava-labs/nftissuer/utils/units"
	"github.com/ava-labs/nftissuer/vms/components/verify"
	"github.com/ava-labs/nftissuer/vms/secp256k1fx"
)

const MaxPayloadSize = units.KiB

var (
	_ verify.State = (*TransferOutput)(nil)

	ErrNilTransferOutput = errors.New("nil transfer output")
	ErrPayloadTooLarge   = errors.New("payload too large")
)

type TransferOutput struct {
	verify.StateMarker `json:"-"`

	GroupID                  uint32 `serialize:"true" json:"groupID"`
	Payload                  []byte `serialize:"true" json:"payload"`
	secp256k1fx.OutputOwners `serialize:"true"`
}

// MarshalJSON renders the payload as hex alongside the owners.
func (out *TransferOutput) MarshalJSON() ([]byte, error) {
	payload, err := formatting.Encode(formatting.HexNC, out.Payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]interface{}{
		"groupID":   out.GroupID,
		"payload":   payload,
		"locktime":  out.Locktime,
		"threshold": out.Threshold,
		"addresses": out.Addrs,
	})
}

func (out *TransferOutput) Verify() error {
	switch {
	case out == nil:
		return ErrNilTransferOutput
	case len(out.Payload) > MaxPayloadSize:
		return ErrPayloadTooLarge
	default:
		return out.OutputOwners.Verify()
	}
}
