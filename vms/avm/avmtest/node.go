// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package avmtest provides an in-memory X-chain node that serves the avm and
// info JSON-RPC APIs. Transactions are verified with the same fxs the ledger
// uses and are applied to the UTXO set as soon as they are issued.
package avmtest

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/snow/choices"
	"github.com/ava-labs/nftissuer/utils/constants"
	"github.com/ava-labs/nftissuer/utils/hashing"
	"github.com/ava-labs/nftissuer/utils/set"
	"github.com/ava-labs/nftissuer/utils/timer/mockable"
	"github.com/ava-labs/nftissuer/utils/units"
	"github.com/ava-labs/nftissuer/utils/wrappers"
	"github.com/ava-labs/nftissuer/vms/avm/txs"
	"github.com/ava-labs/nftissuer/vms/components/avax"
	"github.com/ava-labs/nftissuer/vms/nftfx"
	"github.com/ava-labs/nftissuer/vms/secp256k1fx"
	"github.com/ava-labs/nftissuer/wallet/chain/x/fees"
)

const (
	DefaultTxFee            = units.MilliAvax
	DefaultCreateAssetTxFee = 10 * units.MilliAvax
)

var (
	ErrMissingUTXO      = errors.New("missing utxo")
	ErrWrongAsset       = errors.New("utxo asset does not match")
	ErrDuplicateTx      = errors.New("tx has already been issued")
	ErrUnknownAsset     = errors.New("unknown asset")
	ErrUnknownAlias     = errors.New("unknown blockchain alias")
	ErrWrongCredential  = errors.New("wrong credential type")
	ErrRejectedByPolicy = errors.New("tx rejected by test policy")

	avaxAssetID = ids.ID{'A', 'V', 'A', 'X'}
	xChainID    = ids.ID{'X', '-', 'c', 'h', 'a', 'i', 'n'}
)

type assetDescription struct {
	Name         string
	Symbol       string
	Denomination byte
}

type txRecord struct {
	tx     *txs.Tx
	status choices.Status
	// number of status queries that still report Processing
	pending int
}

// Node is the state of a fake X-chain. It is safe for concurrent use.
type Node struct {
	NetworkID        uint32
	ChainID          ids.ID
	AVAXAssetID      ids.ID
	TxFee            uint64
	CreateAssetTxFee uint64
	Clock            mockable.Clock

	// ProcessingPolls is the number of status queries that report Processing
	// before an issued tx reports Accepted.
	ProcessingPolls int
	// RejectIssuance, if set, is consulted before a tx is applied. A non-nil
	// error refuses the tx.
	RejectIssuance func(tx *txs.Tx) error

	lock      sync.Mutex
	utxos     map[ids.ID]*avax.UTXO
	utxoOrder []ids.ID
	txs       map[ids.ID]*txRecord
	assets    map[ids.ID]assetDescription
	fundNonce uint64
}

// NewNode returns a node on the local network that holds no UTXOs.
func NewNode() *Node {
	n := &Node{
		NetworkID:        constants.LocalID,
		ChainID:          xChainID,
		AVAXAssetID:      avaxAssetID,
		TxFee:            DefaultTxFee,
		CreateAssetTxFee: DefaultCreateAssetTxFee,
		utxos:            make(map[ids.ID]*avax.UTXO),
		txs:              make(map[ids.ID]*txRecord),
		assets:           make(map[ids.ID]assetDescription),
	}
	n.assets[avaxAssetID] = assetDescription{
		Name:         "Avalanche",
		Symbol:       constants.AVAXSymbol,
		Denomination: 9,
	}
	return n
}

// Fund creates a new AVAX UTXO of [amount] owned solely by [addr] and returns
// it.
func (n *Node) Fund(addr ids.ShortID, amount uint64) *avax.UTXO {
	n.lock.Lock()
	defer n.lock.Unlock()

	n.fundNonce++
	p := wrappers.Packer{MaxSize: wrappers.LongLen}
	p.PackLong(n.fundNonce)
	utxo := &avax.UTXO{
		UTXOID: avax.UTXOID{
			TxID: hashing.ComputeHash256Array(p.Bytes),
		},
		Asset: avax.Asset{ID: n.AVAXAssetID},
		Out: &secp256k1fx.TransferOutput{
			Amt: amount,
			OutputOwners: secp256k1fx.OutputOwners{
				Threshold: 1,
				Addrs:     []ids.ShortID{addr},
			},
		},
	}
	n.addUTXO(utxo)
	return utxo
}

// AddUTXO inserts [utxo] into the UTXO set.
func (n *Node) AddUTXO(utxo *avax.UTXO) {
	n.lock.Lock()
	defer n.lock.Unlock()

	n.addUTXO(utxo)
}

func (n *Node) addUTXO(utxo *avax.UTXO) {
	utxoID := utxo.InputID()
	if _, ok := n.utxos[utxoID]; !ok {
		n.utxoOrder = append(n.utxoOrder, utxoID)
	}
	n.utxos[utxoID] = utxo
}

func (n *Node) removeUTXO(utxoID ids.ID) {
	delete(n.utxos, utxoID)
	for i, id := range n.utxoOrder {
		if id == utxoID {
			n.utxoOrder = append(n.utxoOrder[:i], n.utxoOrder[i+1:]...)
			return
		}
	}
}

// UTXOs returns the UTXOs that list any of [addrs] as an owner, in insertion
// order.
func (n *Node) UTXOs(addrs set.Set[ids.ShortID]) []*avax.UTXO {
	n.lock.Lock()
	defer n.lock.Unlock()

	var utxos []*avax.UTXO
	for _, utxoID := range n.utxoOrder {
		utxo := n.utxos[utxoID]
		owners, err := txs.OwnersOf(utxo.Out)
		if err != nil {
			continue
		}
		ownerAddrs := owners.AddressesSet()
		if ownerAddrs.Overlaps(addrs) {
			utxos = append(utxos, utxo)
		}
	}
	return utxos
}

// Tx returns a previously issued tx.
func (n *Node) Tx(txID ids.ID) (*txs.Tx, bool) {
	n.lock.Lock()
	defer n.lock.Unlock()

	record, ok := n.txs[txID]
	if !ok {
		return nil, false
	}
	return record.tx, true
}

// SetStatus overrides the status that is reported for [txID].
func (n *Node) SetStatus(txID ids.ID, status choices.Status) {
	n.lock.Lock()
	defer n.lock.Unlock()

	record, ok := n.txs[txID]
	if !ok {
		record = &txRecord{}
		n.txs[txID] = record
	}
	record.status = status
	record.pending = 0
}

// Status returns the status of [txID]. Unknown txs report Unknown.
func (n *Node) Status(txID ids.ID) choices.Status {
	n.lock.Lock()
	defer n.lock.Unlock()

	record, ok := n.txs[txID]
	if !ok {
		return choices.Unknown
	}
	if record.pending > 0 {
		record.pending--
		return choices.Processing
	}
	return record.status
}

// Issue verifies [txBytes] against the current UTXO set and applies it.
func (n *Node) Issue(txBytes []byte) (ids.ID, error) {
	tx, err := txs.Parse(txBytes)
	if err != nil {
		return ids.Empty, fmt.Errorf("couldn't parse tx: %w", err)
	}

	n.lock.Lock()
	defer n.lock.Unlock()

	txID := tx.ID()
	if _, ok := n.txs[txID]; ok {
		return ids.Empty, fmt.Errorf("%w: %s", ErrDuplicateTx, txID)
	}
	if err := tx.SyntacticVerify(n.NetworkID, n.ChainID); err != nil {
		return ids.Empty, err
	}
	if n.RejectIssuance != nil {
		if err := n.RejectIssuance(tx); err != nil {
			return ids.Empty, fmt.Errorf("%w: %w", ErrRejectedByPolicy, err)
		}
	}

	fee, err := fees.CalculateFee(fees.NewStatic(n.CreateAssetTxFee, n.TxFee), tx.Unsigned)
	if err != nil {
		return ids.Empty, err
	}
	v := &semanticVerifier{node: n, tx: tx, fee: fee}
	if err := tx.Unsigned.Visit(v); err != nil {
		return ids.Empty, err
	}

	for _, utxoID := range tx.Unsigned.InputUTXOs() {
		n.removeUTXO(utxoID.InputID())
	}
	for _, utxo := range tx.UTXOs() {
		n.addUTXO(utxo)
	}
	if createAssetTx, ok := tx.Unsigned.(*txs.CreateAssetTx); ok {
		n.assets[txID] = assetDescription{
			Name:         createAssetTx.Name,
			Symbol:       createAssetTx.Symbol,
			Denomination: createAssetTx.Denomination,
		}
	}
	n.txs[txID] = &txRecord{
		tx:      tx,
		status:  choices.Accepted,
		pending: n.ProcessingPolls,
	}
	return txID, nil
}

func (n *Node) assetDescription(assetID ids.ID) (assetDescription, bool) {
	n.lock.Lock()
	defer n.lock.Unlock()

	desc, ok := n.assets[assetID]
	return desc, ok
}

var _ txs.Visitor = (*semanticVerifier)(nil)

// semanticVerifier checks a tx against the node's UTXO set. The caller must
// hold the node's lock.
type semanticVerifier struct {
	node *Node
	tx   *txs.Tx
	fee  uint64
}

func (v *semanticVerifier) BaseTx(tx *txs.BaseTx) error {
	return v.verifyBaseTx(tx, v.fee, nil)
}

func (v *semanticVerifier) CreateAssetTx(tx *txs.CreateAssetTx) error {
	return v.verifyBaseTx(&tx.BaseTx, v.fee, nil)
}

func (v *semanticVerifier) OperationTx(tx *txs.OperationTx) error {
	return v.verifyBaseTx(&tx.BaseTx, v.fee, tx.Ops)
}

func (v *semanticVerifier) verifyBaseTx(tx *txs.BaseTx, fee uint64, ops []*txs.Operation) error {
	var (
		secpFx       secp256k1fx.Fx
		nftFx        nftfx.Fx
		unsignedHash = v.tx.UnsignedHash()
		now          = v.node.Clock.Unix()
		fc           = avax.NewFlowChecker()
	)

	fc.Produce(v.node.AVAXAssetID, fee)
	for _, out := range tx.Outs {
		fc.Produce(out.AssetID(), out.Output().Amount())
	}

	for i, in := range tx.Ins {
		utxo, err := v.utxo(&in.UTXOID, in.AssetID())
		if err != nil {
			return err
		}
		if err := secpFx.VerifyTransfer(unsignedHash, now, in.In, v.tx.Creds[i].Credential, utxo.Out); err != nil {
			return fmt.Errorf("failed to verify input %d: %w", i, err)
		}
		fc.Consume(in.AssetID(), in.Input().Amount())
	}

	offset := len(tx.Ins)
	for i, op := range ops {
		utxos := make([]interface{}, len(op.UTXOIDs))
		for j, utxoID := range op.UTXOIDs {
			utxo, err := v.utxo(utxoID, op.AssetID())
			if err != nil {
				return err
			}
			utxos[j] = utxo.Out
		}

		cred, ok := v.tx.Creds[offset+i].Credential.(*nftfx.Credential)
		if !ok {
			return fmt.Errorf("%w: operation %d", ErrWrongCredential, i)
		}
		if err := nftFx.VerifyOperation(unsignedHash, now, op.Op, cred, utxos); err != nil {
			return fmt.Errorf("failed to verify operation %d: %w", i, err)
		}
	}
	return fc.Verify()
}

func (v *semanticVerifier) utxo(utxoID *avax.UTXOID, assetID ids.ID) (*avax.UTXO, error) {
	utxo, ok := v.node.utxos[utxoID.InputID()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingUTXO, utxoID)
	}
	if utxo.AssetID() != assetID {
		return nil, fmt.Errorf("%w: %s", ErrWrongAsset, utxoID)
	}
	return utxo, nil
}
