// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package constants

// CodecVersion is the only supported linear codec version.
const CodecVersion uint16 = 0

// Type IDs registered by the AVM codec. The order matches the X-chain
// registration order so serialized bytes are accepted by the node.
const (
	BaseTxTypeID uint32 = iota
	CreateAssetTxTypeID
	OperationTxTypeID
	ImportTxTypeID
	ExportTxTypeID

	SECP256K1TransferInputTypeID
	SECP256K1MintOutputTypeID
	SECP256K1TransferOutputTypeID
	SECP256K1MintOperationTypeID
	SECP256K1CredentialTypeID

	NFTMintOutputTypeID
	NFTTransferOutputTypeID
	NFTMintOperationTypeID
	NFTTransferOperationTypeID
	NFTCredentialTypeID
)

// Fx indices in the order the X-chain loads them.
const (
	SECP256K1FxIndex uint32 = iota
	NFTFxIndex
	PropertyFxIndex
)
