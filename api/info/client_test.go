// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package info

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/utils/rpc"
)

var errTest = errors.New("non-nil error")

type mockClient struct {
	method string
	params interface{}
	reply  func(replyIntf interface{})
	err    error
}

func (mc *mockClient) SendRequest(_ context.Context, method string, params interface{}, replyIntf interface{}, _ ...rpc.Option) error {
	mc.method = method
	mc.params = params
	if mc.reply != nil {
		mc.reply(replyIntf)
	}
	return mc.err
}

func TestNewClient(t *testing.T) {
	require.NotNil(t, NewClient(""))
}

func TestClientGetNetworkID(t *testing.T) {
	require := require.New(t)

	mc := &mockClient{
		reply: func(replyIntf interface{}) {
			replyIntf.(*GetNetworkIDReply).NetworkID = 12345
		},
	}
	c := NewClientWithRequester(mc)

	networkID, err := c.GetNetworkID(context.Background())
	require.NoError(err)
	require.Equal(uint32(12345), networkID)
	require.Equal("info.getNetworkID", mc.method)
}

func TestClientGetBlockchainID(t *testing.T) {
	require := require.New(t)

	chainID := ids.GenerateTestID()
	mc := &mockClient{
		reply: func(replyIntf interface{}) {
			replyIntf.(*GetBlockchainIDReply).BlockchainID = chainID
		},
	}
	c := NewClientWithRequester(mc)

	gotChainID, err := c.GetBlockchainID(context.Background(), "X")
	require.NoError(err)
	require.Equal(chainID, gotChainID)
	require.Equal(&GetBlockchainIDArgs{Alias: "X"}, mc.params)
}

func TestClientGetTxFee(t *testing.T) {
	require := require.New(t)

	mc := &mockClient{
		reply: func(replyIntf interface{}) {
			reply := replyIntf.(*GetTxFeeResponse)
			reply.TxFee = 1000
			reply.CreateAssetTxFee = 10000
		},
	}
	c := NewClientWithRequester(mc)

	fees, err := c.GetTxFee(context.Background())
	require.NoError(err)
	require.Equal(uint64(1000), uint64(fees.TxFee))
	require.Equal(uint64(10000), uint64(fees.CreateAssetTxFee))

	mc.err = errTest
	_, err = c.GetTxFee(context.Background())
	require.ErrorIs(err, errTest)
}
