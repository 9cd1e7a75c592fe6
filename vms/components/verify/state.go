// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

var (
	_ IsState    = StateMarker{}
	_ IsNotState = NotStateMarker{}
)

// StateMarker marks a type as a valid UTXO output.
type StateMarker struct{}

func (StateMarker) isState() {}

// NotStateMarker marks a type as something that must not be stored as an
// output.
type NotStateMarker struct{}

func (NotStateMarker) isState() error {
	return nil
}
