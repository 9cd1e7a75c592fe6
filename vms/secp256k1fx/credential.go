// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"encoding/json"
	"errors"

	"github.com/ava-labs/nftissuer/utils/crypto/secp256k1"
	"github.com/ava-labs/nftissuer/utils/formatting"
	"github.com/ava-labs/nftissuer/vms/components/verify"
)

var ErrNilCredential = errors.New("nil credential")

type Credential struct {
	verify.NotStateMarker `json:"-"`

	Sigs [][secp256k1.SignatureLen]byte `serialize:"true" json:"signatures"`
}

// MarshalJSON marshals [cr] to JSON
// The string representation of each signature is created using the hex
// formatter
func (cr *Credential) MarshalJSON() ([]byte, error) {
	signatures := make([]string, len(cr.Sigs))
	for i, sig := range cr.Sigs {
		sigStr, err := formatting.Encode(formatting.HexNC, sig[:])
		if err != nil {
			return nil, err
		}
		signatures[i] = sigStr
	}
	return json.Marshal(map[string]interface{}{
		"signatures": signatures,
	})
}

func (cr *Credential) Verify() error {
	if cr == nil {
		return ErrNilCredential
	}
	return nil
}
