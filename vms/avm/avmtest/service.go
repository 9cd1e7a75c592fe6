// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avmtest

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/ava-labs/nftissuer/api"
	"github.com/ava-labs/nftissuer/api/info"
	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/utils"
	"github.com/ava-labs/nftissuer/utils/constants"
	"github.com/ava-labs/nftissuer/utils/formatting"
	"github.com/ava-labs/nftissuer/utils/json"
	"github.com/ava-labs/nftissuer/utils/set"
	"github.com/ava-labs/nftissuer/vms/avm"
	"github.com/ava-labs/nftissuer/vms/avm/txs"
	"github.com/ava-labs/nftissuer/vms/components/avax"
	"github.com/ava-labs/nftissuer/vms/secp256k1fx"
)

// MaxPageSize is the maximum number of UTXOs returned by a single getUTXOs
// call.
const MaxPageSize = 1024

var (
	errNoAddresses  = errors.New("no addresses provided")
	errSourceChain  = errors.New("cross chain UTXOs are not supported")
	errMissingTxArg = errors.New("argument 'tx' not given")
)

// Service is the avm API of a Node.
type Service struct{ node *Node }

// GetUTXOs returns the UTXOs owned by the provided addresses. Addresses are
// visited in sorted order and, per address, UTXOs in ID order. Pagination
// resumes strictly after [StartIndex].
func (s *Service) GetUTXOs(_ *http.Request, args *api.GetUTXOsArgs, reply *api.GetUTXOsReply) error {
	switch {
	case len(args.Addresses) == 0:
		return errNoAddresses
	case args.SourceChain != "":
		return errSourceChain
	}

	addrSet := set.NewSet[ids.ShortID](len(args.Addresses))
	for _, addrStr := range args.Addresses {
		addr, err := avm.ParseServiceAddress(addrStr)
		if err != nil {
			return err
		}
		addrSet.Add(addr)
	}
	startAddr, err := avm.ParseServiceAddress(args.StartIndex.Address)
	if err != nil {
		return err
	}
	startUTXO := ids.Empty
	if args.StartIndex.UTXO != "" {
		startUTXO, err = ids.FromString(args.StartIndex.UTXO)
		if err != nil {
			return err
		}
	}

	limit := int(args.Limit)
	if limit <= 0 || limit > MaxPageSize {
		limit = MaxPageSize
	}

	addrs := addrSet.List()
	utils.Sort(addrs)

	s.node.lock.Lock()
	defer s.node.lock.Unlock()

	var (
		seen    set.Set[ids.ID]
		endAddr = startAddr
		endUTXO = startUTXO
	)
addrLoop:
	for _, addr := range addrs {
		if addr.Less(startAddr) {
			continue
		}
		utxoIDs := s.node.ownedUTXOIDs(addr)
		for _, utxoID := range utxoIDs {
			if addr == startAddr && bytes.Compare(utxoID[:], startUTXO[:]) <= 0 {
				continue
			}
			if len(reply.UTXOs) == limit {
				break addrLoop
			}
			endAddr, endUTXO = addr, utxoID
			if seen.Contains(utxoID) {
				continue
			}
			seen.Add(utxoID)

			utxoBytes, err := txs.Codec.Marshal(txs.CodecVersion, s.node.utxos[utxoID])
			if err != nil {
				return fmt.Errorf("couldn't serialize UTXO %s: %w", utxoID, err)
			}
			utxoStr, err := formatting.Encode(args.Encoding, utxoBytes)
			if err != nil {
				return fmt.Errorf("couldn't encode UTXO %s: %w", utxoID, err)
			}
			reply.UTXOs = append(reply.UTXOs, utxoStr)
		}
	}

	endAddrStr, err := avax.NewAddressManager(constants.XChainAlias, s.node.NetworkID).FormatLocalAddress(endAddr)
	if err != nil {
		return err
	}
	reply.NumFetched = json.Uint64(len(reply.UTXOs))
	reply.EndIndex = api.Index{
		Address: endAddrStr,
		UTXO:    endUTXO.String(),
	}
	reply.Encoding = args.Encoding
	return nil
}

// GetBalance returns the balance of an asset held by an address. Unless
// [IncludePartial], only UTXOs that [Address] can spend alone right now are
// counted.
func (s *Service) GetBalance(_ *http.Request, args *avm.GetBalanceArgs, reply *avm.GetBalanceReply) error {
	addr, err := avm.ParseServiceAddress(args.Address)
	if err != nil {
		return err
	}
	assetID, err := s.node.lookupAsset(args.AssetID)
	if err != nil {
		return err
	}

	now := s.node.Clock.Unix()
	var balance uint64
	for _, utxo := range s.node.UTXOs(set.Of(addr)) {
		if utxo.AssetID() != assetID {
			continue
		}
		out, ok := utxo.Out.(*secp256k1fx.TransferOutput)
		if !ok {
			continue
		}
		if !args.IncludePartial && (out.Threshold > 1 || out.Locktime > now) {
			continue
		}
		balance += out.Amt
		reply.UTXOIDs = append(reply.UTXOIDs, utxo.UTXOID)
	}
	reply.Balance = json.Uint64(balance)
	return nil
}

// GetAssetDescription returns the description of an asset. "AVAX" is accepted
// as an alias of the fee asset.
func (s *Service) GetAssetDescription(_ *http.Request, args *avm.GetAssetDescriptionArgs, reply *avm.GetAssetDescriptionReply) error {
	assetID, err := s.node.lookupAsset(args.AssetID)
	if err != nil {
		return err
	}
	desc, ok := s.node.assetDescription(assetID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAsset, assetID)
	}
	reply.AssetID = assetID
	reply.Name = desc.Name
	reply.Symbol = desc.Symbol
	reply.Denomination = json.Uint8(desc.Denomination)
	return nil
}

// IssueTx attempts to issue a transaction.
func (s *Service) IssueTx(_ *http.Request, args *api.FormattedTx, reply *api.JSONTxID) error {
	if args.Tx == "" {
		return errMissingTxArg
	}
	txBytes, err := formatting.Decode(args.Encoding, args.Tx)
	if err != nil {
		return fmt.Errorf("problem decoding transaction: %w", err)
	}
	reply.TxID, err = s.node.Issue(txBytes)
	return err
}

// GetTxStatus returns the status of the specified transaction.
func (s *Service) GetTxStatus(_ *http.Request, args *api.JSONTxID, reply *avm.GetTxStatusReply) error {
	reply.Status = s.node.Status(args.TxID)
	return nil
}

// InfoService is the info API of a Node.
type InfoService struct{ node *Node }

func (s *InfoService) GetNetworkID(_ *http.Request, _ *struct{}, reply *info.GetNetworkIDReply) error {
	reply.NetworkID = json.Uint32(s.node.NetworkID)
	return nil
}

func (s *InfoService) GetBlockchainID(_ *http.Request, args *info.GetBlockchainIDArgs, reply *info.GetBlockchainIDReply) error {
	if args.Alias != constants.XChainAlias && args.Alias != s.node.ChainID.String() {
		return fmt.Errorf("%w: %q", ErrUnknownAlias, args.Alias)
	}
	reply.BlockchainID = s.node.ChainID
	return nil
}

func (s *InfoService) GetTxFee(_ *http.Request, _ *struct{}, reply *info.GetTxFeeResponse) error {
	reply.TxFee = json.Uint64(s.node.TxFee)
	reply.CreateAssetTxFee = json.Uint64(s.node.CreateAssetTxFee)
	return nil
}

// ownedUTXOIDs returns the IDs of the UTXOs owned by [addr] in sorted order.
// The caller must hold the node's lock.
func (n *Node) ownedUTXOIDs(addr ids.ShortID) []ids.ID {
	var utxoIDs []ids.ID
	for _, utxoID := range n.utxoOrder {
		owners, err := txs.OwnersOf(n.utxos[utxoID].Out)
		if err != nil {
			continue
		}
		ownerAddrs := owners.AddressesSet()
		if ownerAddrs.Contains(addr) {
			utxoIDs = append(utxoIDs, utxoID)
		}
	}
	utils.Sort(utxoIDs)
	return utxoIDs
}

func (n *Node) lookupAsset(assetStr string) (ids.ID, error) {
	if assetStr == constants.AVAXSymbol {
		return n.AVAXAssetID, nil
	}
	return ids.FromString(assetStr)
}
