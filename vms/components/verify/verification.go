// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

// Verifiable can be verified
type Verifiable interface {
	Verify() error
}

// State that can be verified
type State interface {
	Verifiable
	IsState
}

// IsState is embedded by outputs that can live in a UTXO.
type IsState interface {
	isState()
}

// IsNotState is embedded by values that must never live in a UTXO, such as
// inputs and credentials.
type IsNotState interface {
	isState() error
}

// All returns nil if all the verifiables were verified with no errors
func All(verifiables ...Verifiable) error {
	for _, verifiable := range verifiables {
		if err := verifiable.Verify(); err != nil {
			return err
		}
	}
	return nil
}
