// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package selector

import (
	"strings"

	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/vms/avm/txs"
	"github.com/ava-labs/nftissuer/vms/components/avax"
)

// LegacyPrefixLen is the number of characters of the cb58 tx ID that the
// string prefix locator compares.
const LegacyPrefixLen = 10

var (
	_ OperationLocator = FirstDescendant{}
	_ OperationLocator = StringPrefixDescendant{}
)

// OperationLocator finds the UTXO an operation consumes.
type OperationLocator interface {
	// FindDescendantUTXOs returns at most one UTXO produced by [originTxID]
	// whose output is of [kind]. An empty result means the origin tx is not
	// visible in [utxos].
	FindDescendantUTXOs(utxos []*avax.UTXO, originTxID ids.ID, kind txs.OutputKind) []avax.UTXOID
}

// FirstDescendant matches the producing tx ID exactly.
type FirstDescendant struct{}

func (FirstDescendant) FindDescendantUTXOs(utxos []*avax.UTXO, originTxID ids.ID, kind txs.OutputKind) []avax.UTXOID {
	return findFirst(utxos, kind, func(utxo *avax.UTXO) bool {
		return utxo.TxID == originTxID
	})
}

// StringPrefixDescendant matches the first Len characters of the cb58 form of
// the producing tx ID. Distinct txs can share a prefix, so this may return a
// UTXO that [originTxID] did not produce.
type StringPrefixDescendant struct {
	Len int
}

func (s StringPrefixDescendant) FindDescendantUTXOs(utxos []*avax.UTXO, originTxID ids.ID, kind txs.OutputKind) []avax.UTXOID {
	prefix := truncate(originTxID.String(), s.Len)
	return findFirst(utxos, kind, func(utxo *avax.UTXO) bool {
		return strings.HasPrefix(utxo.UTXOID.String(), prefix)
	})
}

func findFirst(utxos []*avax.UTXO, kind txs.OutputKind, match func(*avax.UTXO) bool) []avax.UTXOID {
	for _, utxo := range utxos {
		utxoKind, err := txs.KindOf(utxo.Out)
		if err != nil || utxoKind != kind {
			continue
		}
		if match(utxo) {
			return []avax.UTXOID{{
				TxID:        utxo.TxID,
				OutputIndex: utxo.OutputIndex,
			}}
		}
	}
	return nil
}

func truncate(s string, n int) string {
	if n < 0 || n >= len(s) {
		return s
	}
	return s[:n]
}
