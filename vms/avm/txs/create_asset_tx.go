// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/utils"
)

const (
	MinNameLen      = 1
	MaxNameLen      = 128
	MaxSymbolLen    = 4
	MaxDenomination = 32
)

var (
	ErrNameTooShort                 = errors.New("name is too short")
	ErrNameTooLong                  = errors.New("name is too long")
	ErrSymbolTooLong                = errors.New("symbol is too long")
	ErrNoFxs                        = errors.New("assets must support at least one Fx")
	ErrIllegalNameCharacter         = errors.New("asset's name must be made up of only letters and numbers")
	ErrIllegalSymbolCharacter       = errors.New("asset's symbol must be all upper case letters")
	ErrUnexpectedWhitespace         = errors.New("unexpected whitespace provided")
	ErrDenominationTooLarge         = errors.New("denomination is too large")
	ErrInitialStatesNotSortedUnique = errors.New("initial states not sorted and unique")

	_ UnsignedTx = (*CreateAssetTx)(nil)
)

// CreateAssetTx is a transaction that creates a new asset.
type CreateAssetTx struct {
	BaseTx       `serialize:"true"`
	Name         string          `serialize:"true" json:"name"`
	Symbol       string          `serialize:"true" json:"symbol"`
	Denomination byte            `serialize:"true" json:"denomination"`
	States       []*InitialState `serialize:"true" json:"initialStates"`
}

// InitialStates track which virtual machines, and the initial state of these
// machines, this asset uses. The returned array should not be modified.
func (t *CreateAssetTx) InitialStates() []*InitialState {
	return t.States
}

// VerifyAssetDefinition checks the name, symbol and denomination rules the
// X-chain enforces on new assets.
func VerifyAssetDefinition(name, symbol string, denomination byte) error {
	switch {
	case len(name) < MinNameLen:
		return fmt.Errorf("%w: %q", ErrNameTooShort, name)
	case len(name) > MaxNameLen:
		return fmt.Errorf("%w: %d > %d", ErrNameTooLong, len(name), MaxNameLen)
	case len(symbol) > MaxSymbolLen:
		return fmt.Errorf("%w: %q", ErrSymbolTooLong, symbol)
	case denomination > MaxDenomination:
		return fmt.Errorf("%w: %d > %d", ErrDenominationTooLarge, denomination, MaxDenomination)
	case strings.TrimSpace(name) != name:
		return ErrUnexpectedWhitespace
	}

	for _, r := range name {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsNumber(r) || r == ' ') {
			return fmt.Errorf("%w: %q", ErrIllegalNameCharacter, name)
		}
	}
	for _, r := range symbol {
		if r > unicode.MaxASCII || !unicode.IsUpper(r) {
			return fmt.Errorf("%w: %q", ErrIllegalSymbolCharacter, symbol)
		}
	}
	return nil
}

func (t *CreateAssetTx) SyntacticVerify(networkID uint32, chainID ids.ID) error {
	if t == nil {
		return ErrNilTx
	}
	if err := VerifyAssetDefinition(t.Name, t.Symbol, t.Denomination); err != nil {
		return err
	}
	if len(t.States) == 0 {
		return ErrNoFxs
	}
	if err := t.BaseTx.SyntacticVerify(networkID, chainID); err != nil {
		return err
	}

	for _, state := range t.States {
		if err := state.Verify(Codec); err != nil {
			return err
		}
	}
	if !utils.IsSortedAndUnique(t.States) {
		return ErrInitialStatesNotSortedUnique
	}
	return nil
}

func (t *CreateAssetTx) Visit(v Visitor) error {
	return v.CreateAssetTx(t)
}
