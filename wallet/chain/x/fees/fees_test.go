// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fees

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/nftissuer/api/info"
	"github.com/ava-labs/nftissuer/vms/avm/txs"
)

var errTest = errors.New("non-nil error")

func TestStatic(t *testing.T) {
	require := require.New(t)

	o := NewStatic(10, 1)
	require.Equal(uint64(10), o.CreationFee())
	require.Equal(uint64(1), o.StandardFee())
	require.Equal(uint64(10), FeeFor(o, Creation))
	require.Equal(uint64(1), FeeFor(o, Standard))
}

func TestFetchOracle(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	client := info.NewMockClient(ctrl)
	client.EXPECT().GetTxFee(gomock.Any()).Return(&info.GetTxFeeResponse{
		TxFee:            1_000_000,
		CreateAssetTxFee: 10_000_000,
	}, nil)

	o, err := FetchOracle(context.Background(), client)
	require.NoError(err)
	require.Equal(uint64(10_000_000), o.CreationFee())
	require.Equal(uint64(1_000_000), o.StandardFee())
}

func TestFetchOracleUnavailable(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	client := info.NewMockClient(ctrl)
	client.EXPECT().GetTxFee(gomock.Any()).Return(nil, errTest)

	_, err := FetchOracle(context.Background(), client)
	require.ErrorIs(err, ErrFeesUnavailable)
	require.ErrorIs(err, errTest)
}

func TestCalculateFee(t *testing.T) {
	o := NewStatic(10, 1)
	tests := []struct {
		name     string
		tx       txs.UnsignedTx
		expected uint64
	}{
		{
			name:     "base tx",
			tx:       &txs.BaseTx{},
			expected: 1,
		},
		{
			name:     "create asset tx",
			tx:       &txs.CreateAssetTx{},
			expected: 10,
		},
		{
			name:     "operation tx",
			tx:       &txs.OperationTx{},
			expected: 1,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			fee, err := CalculateFee(o, test.tx)
			require.NoError(err)
			require.Equal(test.expected, fee)
		})
	}
}

func TestTxKindString(t *testing.T) {
	require := require.New(t)

	require.Equal("standard", Standard.String())
	require.Equal("creation", Creation.String())
	require.Equal("unknown fee kind 7", TxKind(7).String())
}
