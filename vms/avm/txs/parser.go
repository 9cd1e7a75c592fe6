// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"fmt"

	"github.com/ava-labs/nftissuer/vms/components/avax"
)

// Parse decodes signed transaction bytes and initializes the tx ID.
func Parse(signedBytes []byte) (*Tx, error) {
	tx := &Tx{}
	parsedVersion, err := Codec.Unmarshal(signedBytes, tx)
	if err != nil {
		return nil, err
	}
	if parsedVersion != CodecVersion {
		return nil, fmt.Errorf("expected codec version %d but got %d", CodecVersion, parsedVersion)
	}

	unsignedBytes, err := Codec.Marshal(CodecVersion, &tx.Unsigned)
	if err != nil {
		return nil, err
	}
	tx.SetBytes(unsignedBytes, signedBytes)
	return tx, nil
}

// ParseUTXO decodes the bytes of a UTXO as returned by avm.getUTXOs.
func ParseUTXO(utxoBytes []byte) (*avax.UTXO, error) {
	utxo := &avax.UTXO{}
	if _, err := Codec.Unmarshal(utxoBytes, utxo); err != nil {
		return nil, err
	}
	return utxo, nil
}
