// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package info

import (
	"context"

	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/utils/json"
	"github.com/ava-labs/nftissuer/utils/rpc"
)

var _ Client = (*client)(nil)

// Client interface for an Info API Client
type Client interface {
	GetNetworkID(context.Context, ...rpc.Option) (uint32, error)
	GetBlockchainID(context.Context, string, ...rpc.Option) (ids.ID, error)
	GetTxFee(context.Context, ...rpc.Option) (*GetTxFeeResponse, error)
}

// GetNetworkIDReply are the results from calling GetNetworkID
type GetNetworkIDReply struct {
	NetworkID json.Uint32 `json:"networkID"`
}

// GetBlockchainIDArgs are the arguments for calling GetBlockchainID
type GetBlockchainIDArgs struct {
	Alias string `json:"alias"`
}

// GetBlockchainIDReply are the results from calling GetBlockchainID
type GetBlockchainIDReply struct {
	BlockchainID ids.ID `json:"blockchainID"`
}

// GetTxFeeResponse are the results from calling GetTxFee
type GetTxFeeResponse struct {
	TxFee            json.Uint64 `json:"txFee"`
	CreateAssetTxFee json.Uint64 `json:"createAssetTxFee"`
}

// Client implementation for an Info API Client
type client struct {
	requester rpc.EndpointRequester
}

// NewClient returns a new Info API Client
func NewClient(uri string) Client {
	return NewClientWithRequester(rpc.NewEndpointRequester(uri + "/ext/info"))
}

// NewClientWithRequester returns a Client that sends its requests through
// [requester].
func NewClientWithRequester(requester rpc.EndpointRequester) Client {
	return &client{requester: requester}
}

func (c *client) GetNetworkID(ctx context.Context, options ...rpc.Option) (uint32, error) {
	res := &GetNetworkIDReply{}
	err := c.requester.SendRequest(ctx, "info.getNetworkID", struct{}{}, res, options...)
	return uint32(res.NetworkID), err
}

func (c *client) GetBlockchainID(ctx context.Context, alias string, options ...rpc.Option) (ids.ID, error) {
	res := &GetBlockchainIDReply{}
	err := c.requester.SendRequest(ctx, "info.getBlockchainID", &GetBlockchainIDArgs{
		Alias: alias,
	}, res, options...)
	return res.BlockchainID, err
}

func (c *client) GetTxFee(ctx context.Context, options ...rpc.Option) (*GetTxFeeResponse, error) {
	res := &GetTxFeeResponse{}
	err := c.requester.SendRequest(ctx, "info.getTxFee", struct{}{}, res, options...)
	return res, err
}
