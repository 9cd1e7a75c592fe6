// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package builder

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/utils/constants"
	"github.com/ava-labs/nftissuer/utils/math"
	"github.com/ava-labs/nftissuer/utils/set"
	"github.com/ava-labs/nftissuer/vms/avm/txs"
	"github.com/ava-labs/nftissuer/vms/components/avax"
	"github.com/ava-labs/nftissuer/vms/components/verify"
	"github.com/ava-labs/nftissuer/vms/nftfx"
	"github.com/ava-labs/nftissuer/vms/secp256k1fx"
	"github.com/ava-labs/nftissuer/wallet/chain/x/fees"
	"github.com/ava-labs/nftissuer/wallet/chain/x/selector"
	"github.com/ava-labs/nftissuer/wallet/chain/x/utxos"
	"github.com/ava-labs/nftissuer/wallet/subnet/primary/common"
)

var (
	ErrNoDescendant              = errors.New("no descendant UTXO found")
	ErrInsufficientAuthorization = errors.New("insufficient authorization")
	ErrNotOwner                  = errors.New("address is not an owner of the output")
	ErrNoGroups                  = errors.New("no NFT groups requested")
	ErrEmptyMinterSet            = errors.New("minter set has no minters")
	ErrNoOwners                  = errors.New("no owners provided")
	ErrUnsupportedAsset          = errors.New("only the fee asset can be sent")
)

// MinterSet is the set of addresses, and the number of them that must sign,
// allowed to mint NFTs of a group.
type MinterSet struct {
	Threshold uint32
	Minters   []ids.ShortID
}

// Group requests one mint authority output for GroupID. Several groups may
// share an ID; each resulting output authorizes exactly one mint.
type Group struct {
	GroupID uint32
	Minters MinterSet
}

// Result is an unsigned transaction together with the addresses that must sign
// it. Signers holds one list per input followed by one list per operation, in
// the order the credentials must be supplied.
type Result struct {
	Tx      txs.UnsignedTx
	Signers [][]ids.ShortID
}

type Option func(*Builder)

// WithCoinSelector overrides the strategy picking the fee UTXO.
func WithCoinSelector(s selector.CoinSelector) Option {
	return func(b *Builder) {
		b.selector = s
	}
}

// WithOperationLocator overrides the strategy finding the UTXO an operation
// consumes.
func WithOperationLocator(l selector.OperationLocator) Option {
	return func(b *Builder) {
		b.locator = l
	}
}

// Builder assembles unsigned X-chain transactions from a UTXO snapshot. Every
// method is a pure function of its arguments: the snapshot is never modified
// and no state is kept between calls.
type Builder struct {
	addrs    set.Set[ids.ShortID]
	context  *Context
	fees     fees.Oracle
	selector selector.CoinSelector
	locator  selector.OperationLocator
}

// New returns a builder spending the UTXOs of [addrs] on the chain described
// by [context].
func New(
	addrs set.Set[ids.ShortID],
	context *Context,
	oracle fees.Oracle,
	opts ...Option,
) *Builder {
	b := &Builder{
		addrs:    addrs,
		context:  context,
		fees:     oracle,
		selector: selector.FirstEligible{},
		locator:  selector.FirstDescendant{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) Context() *Context {
	return b.context
}

// Addresses returns the addresses the builder spends from when no custom
// addresses are provided.
func (b *Builder) Addresses() set.Set[ids.ShortID] {
	return b.addrs
}

// NewBaseTx sends [outputs] of the fee asset, paying for them and the fee with
// a single UTXO.
func (b *Builder) NewBaseTx(
	snapshot *utxos.Index,
	outputs []*avax.TransferableOutput,
	options ...common.Option,
) (*Result, error) {
	toBurn := fees.FeeFor(b.fees, fees.Standard)
	for _, out := range outputs {
		assetID := out.AssetID()
		if assetID != b.context.AVAXAssetID {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedAsset, assetID)
		}

		var err error
		toBurn, err = math.Add64(toBurn, out.Out.Amount())
		if err != nil {
			return nil, err
		}
	}

	ops := common.NewOptions(options)
	input, inputSigners, changeOutputs, err := b.spendFee(snapshot, toBurn, ops)
	if err != nil {
		return nil, err
	}

	outs := make([]*avax.TransferableOutput, 0, len(outputs)+len(changeOutputs))
	outs = append(outs, outputs...)
	outs = append(outs, changeOutputs...)
	avax.SortTransferableOutputs(outs, txs.Codec)

	tx := &txs.BaseTx{BaseTx: avax.BaseTx{
		NetworkID:    b.context.NetworkID,
		BlockchainID: b.context.BlockchainID,
		Ins:          []*avax.TransferableInput{input},
		Outs:         outs,
		Memo:         ops.Memo(),
	}}
	return b.result(tx, [][]ids.ShortID{inputSigners})
}

// NewCreateAssetTx creates an NFT asset with one mint authority output per
// entry of [groups].
func (b *Builder) NewCreateAssetTx(
	snapshot *utxos.Index,
	name string,
	symbol string,
	denomination byte,
	groups []Group,
	options ...common.Option,
) (*Result, error) {
	if err := txs.VerifyAssetDefinition(name, symbol, denomination); err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, ErrNoGroups
	}

	mintOutputs := make([]verify.State, len(groups))
	for i, group := range groups {
		if len(group.Minters.Minters) == 0 {
			return nil, fmt.Errorf("%w: group %d", ErrEmptyMinterSet, group.GroupID)
		}
		out := &nftfx.MintOutput{
			GroupID: group.GroupID,
			OutputOwners: *sortedOwners(&secp256k1fx.OutputOwners{
				Threshold: group.Minters.Threshold,
				Addrs:     group.Minters.Minters,
			}),
		}
		if err := out.Verify(); err != nil {
			return nil, fmt.Errorf("invalid minter set for group %d: %w", group.GroupID, err)
		}
		mintOutputs[i] = out
	}
	initialState := &txs.InitialState{
		FxIndex: constants.NFTFxIndex,
		FxID:    nftfx.ID,
		Outs:    mintOutputs,
	}
	initialState.Sort(txs.Codec)

	ops := common.NewOptions(options)
	input, inputSigners, changeOutputs, err := b.spendFee(
		snapshot,
		fees.FeeFor(b.fees, fees.Creation),
		ops,
	)
	if err != nil {
		return nil, err
	}

	tx := &txs.CreateAssetTx{
		BaseTx: txs.BaseTx{BaseTx: avax.BaseTx{
			NetworkID:    b.context.NetworkID,
			BlockchainID: b.context.BlockchainID,
			Ins:          []*avax.TransferableInput{input},
			Outs:         changeOutputs,
			Memo:         ops.Memo(),
		}},
		Name:         name,
		Symbol:       symbol,
		Denomination: denomination,
		States:       []*txs.InitialState{initialState},
	}
	return b.result(tx, [][]ids.ShortID{inputSigners})
}

// NewMintNFTTx mints one NFT of [groupID] carrying [payload], owned by each of
// [owners]. The mint authority consumed is the first one of the group that
// the asset's creation tx produced and that is still unspent in [snapshot].
func (b *Builder) NewMintNFTTx(
	snapshot *utxos.Index,
	assetID ids.ID,
	groupID uint32,
	payload []byte,
	owners []*secp256k1fx.OutputOwners,
	options ...common.Option,
) (*Result, error) {
	if len(payload) > nftfx.MaxPayloadSize {
		return nil, fmt.Errorf("%w: %d > %d", nftfx.ErrPayloadTooLarge, len(payload), nftfx.MaxPayloadSize)
	}
	if len(owners) == 0 {
		return nil, ErrNoOwners
	}
	outputs := make([]*secp256k1fx.OutputOwners, len(owners))
	for i, owner := range owners {
		outputs[i] = sortedOwners(owner)
		if err := outputs[i].Verify(); err != nil {
			return nil, fmt.Errorf("invalid owners %d: %w", i, err)
		}
	}

	ops := common.NewOptions(options)
	mintUTXO, err := b.locate(
		snapshot,
		assetID,
		txs.KindMintAuthority,
		utxos.OfAsset(assetID),
		utxos.InGroup(groupID),
	)
	if err != nil {
		return nil, err
	}
	sigIndices, err := b.authorize(mintUTXO, ops)
	if err != nil {
		return nil, err
	}

	input, inputSigners, changeOutputs, err := b.spendFee(
		snapshot,
		fees.FeeFor(b.fees, fees.Standard),
		ops,
	)
	if err != nil {
		return nil, err
	}

	utxoID := mintUTXO.UTXOID
	op := &txs.Operation{
		Asset:   mintUTXO.Asset,
		UTXOIDs: []*avax.UTXOID{&utxoID},
		FxID:    nftfx.ID,
		Op: &nftfx.MintOperation{
			MintInput: secp256k1fx.Input{
				SigIndices: indicesOf(sigIndices),
			},
			GroupID: groupID,
			Payload: payload,
			Outputs: outputs,
		},
	}
	return b.newOperationTx(input, inputSigners, changeOutputs, op, addressesOf(sigIndices), ops)
}

// NewTransferNFTTx sends the NFT minted by [mintTxID] to [to]. The new output
// keeps the group and payload of the consumed one.
func (b *Builder) NewTransferNFTTx(
	snapshot *utxos.Index,
	mintTxID ids.ID,
	to *secp256k1fx.OutputOwners,
	options ...common.Option,
) (*Result, error) {
	if to == nil || len(to.Addrs) == 0 {
		return nil, ErrNoOwners
	}
	owners := sortedOwners(to)
	if err := owners.Verify(); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}

	ops := common.NewOptions(options)
	nftUTXO, err := b.locate(snapshot, mintTxID, txs.KindNFTTransfer)
	if err != nil {
		return nil, err
	}
	nft, ok := nftUTXO.Out.(*nftfx.TransferOutput)
	if !ok {
		return nil, fmt.Errorf("%w: %T", txs.ErrUnknownOutputType, nftUTXO.Out)
	}
	sigIndices, err := b.authorize(nftUTXO, ops)
	if err != nil {
		return nil, err
	}

	input, inputSigners, changeOutputs, err := b.spendFee(
		snapshot,
		fees.FeeFor(b.fees, fees.Standard),
		ops,
	)
	if err != nil {
		return nil, err
	}

	utxoID := nftUTXO.UTXOID
	op := &txs.Operation{
		Asset:   nftUTXO.Asset,
		UTXOIDs: []*avax.UTXOID{&utxoID},
		FxID:    nftfx.ID,
		Op: &nftfx.TransferOperation{
			Input: secp256k1fx.Input{
				SigIndices: indicesOf(sigIndices),
			},
			Output: nftfx.TransferOutput{
				GroupID:      nft.GroupID,
				Payload:      nft.Payload,
				OutputOwners: *owners,
			},
		},
	}
	return b.newOperationTx(input, inputSigners, changeOutputs, op, addressesOf(sigIndices), ops)
}

func (b *Builder) newOperationTx(
	input *avax.TransferableInput,
	inputSigners []ids.ShortID,
	changeOutputs []*avax.TransferableOutput,
	op *txs.Operation,
	opSigners []ids.ShortID,
	ops *common.Options,
) (*Result, error) {
	tx := &txs.OperationTx{
		BaseTx: txs.BaseTx{BaseTx: avax.BaseTx{
			NetworkID:    b.context.NetworkID,
			BlockchainID: b.context.BlockchainID,
			Ins:          []*avax.TransferableInput{input},
			Outs:         changeOutputs,
			Memo:         ops.Memo(),
		}},
		Ops: []*txs.Operation{op},
	}
	return b.result(tx, [][]ids.ShortID{inputSigners, opSigners})
}

func (b *Builder) result(tx txs.UnsignedTx, signers [][]ids.ShortID) (*Result, error) {
	if err := tx.SyntacticVerify(b.context.NetworkID, b.context.BlockchainID); err != nil {
		return nil, err
	}
	return &Result{
		Tx:      tx,
		Signers: signers,
	}, nil
}

// spendFee consumes the UTXO the coin selector picks to burn [toBurn]. The
// whole UTXO is spent and the remainder is returned as change, to the change
// owner if one was provided or to the owners of the consumed UTXO otherwise.
func (b *Builder) spendFee(
	snapshot *utxos.Index,
	toBurn uint64,
	ops *common.Options,
) (
	*avax.TransferableInput,
	[]ids.ShortID,
	[]*avax.TransferableOutput,
	error,
) {
	addrs := ops.Addresses(b.addrs)
	candidates := snapshot.Filter(
		utxos.OwnedBy(addrs),
		utxos.SpendableBy(addrs, ops.MinIssuanceTime()),
	)
	utxo, err := b.selector.SelectFeeUTXO(candidates, b.context.AVAXAssetID, toBurn)
	if err != nil {
		return nil, nil, nil, err
	}
	out, ok := utxo.Out.(*secp256k1fx.TransferOutput)
	if !ok {
		return nil, nil, nil, fmt.Errorf("%w: %T", txs.ErrUnknownOutputType, utxo.Out)
	}
	sigIndices, err := b.authorize(utxo, ops)
	if err != nil {
		return nil, nil, nil, err
	}
	changeAmount, err := math.Sub(out.Amt, toBurn)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("fee UTXO %s holds %d, need %d: %w", utxo.InputID(), out.Amt, toBurn, err)
	}

	input := &avax.TransferableInput{
		UTXOID: utxo.UTXOID,
		Asset:  utxo.Asset,
		FxID:   secp256k1fx.ID,
		In: &secp256k1fx.TransferInput{
			Amt: out.Amt,
			Input: secp256k1fx.Input{
				SigIndices: indicesOf(sigIndices),
			},
		},
	}

	var changeOutputs []*avax.TransferableOutput
	if changeAmount > 0 {
		changeOwner := ops.ChangeOwner(&secp256k1fx.OutputOwners{
			Threshold: out.Threshold,
			Addrs:     slices.Clone(out.Addrs),
		})
		changeOutputs = append(changeOutputs, &avax.TransferableOutput{
			Asset: utxo.Asset,
			FxID:  secp256k1fx.ID,
			Out: &secp256k1fx.TransferOutput{
				Amt:          changeAmount,
				OutputOwners: *changeOwner,
			},
		})
	}
	return input, addressesOf(sigIndices), changeOutputs, nil
}

// authorize resolves which of the builder's addresses sign to consume [utxo].
func (b *Builder) authorize(utxo *avax.UTXO, ops *common.Options) ([]SigIndex, error) {
	owners, err := txs.OwnersOf(utxo.Out)
	if err != nil {
		return nil, err
	}
	spenders, ok := Spenders(owners, ops.Addresses(b.addrs), ops.MinIssuanceTime())
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInsufficientAuthorization, utxo.InputID())
	}
	return ResolveSigIndices(utxo.Out, spenders)
}

// locate returns the first UTXO of [kind] produced by [originTxID] among the
// UTXOs of [snapshot] matching [predicates].
func (b *Builder) locate(
	snapshot *utxos.Index,
	originTxID ids.ID,
	kind txs.OutputKind,
	predicates ...utxos.Predicate,
) (*avax.UTXO, error) {
	candidates := snapshot.Filter(predicates...)
	utxoIDs := b.locator.FindDescendantUTXOs(candidates, originTxID, kind)
	if len(utxoIDs) == 0 {
		return nil, fmt.Errorf("%w: no %s output of %s", ErrNoDescendant, kind, originTxID)
	}
	return snapshot.Get(utxoIDs[0].InputID())
}

// sortedOwners returns a copy of [owners] with its addresses sorted.
func sortedOwners(owners *secp256k1fx.OutputOwners) *secp256k1fx.OutputOwners {
	sorted := &secp256k1fx.OutputOwners{
		Locktime:  owners.Locktime,
		Threshold: owners.Threshold,
		Addrs:     slices.Clone(owners.Addrs),
	}
	sorted.Sort()
	return sorted
}
