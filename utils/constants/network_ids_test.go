// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package constants

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetHRP(t *testing.T) {
	tests := []struct {
		id  uint32
		hrp string
	}{
		{
			id:  MainnetID,
			hrp: MainnetHRP,
		},
		{
			id:  FujiID,
			hrp: FujiHRP,
		},
		{
			id:  LocalID,
			hrp: LocalHRP,
		},
		{
			id:  4294967295,
			hrp: FallbackHRP,
		},
	}
	for _, test := range tests {
		t.Run(test.hrp, func(t *testing.T) {
			require.Equal(t, test.hrp, GetHRP(test.id))
		})
	}
}

func TestNetworkName(t *testing.T) {
	require := require.New(t)

	require.Equal(MainnetName, NetworkName(MainnetID))
	require.Equal(LocalName, NetworkName(LocalID))
	require.Equal("network-4294967295", NetworkName(4294967295))
}

func TestNetworkID(t *testing.T) {
	tests := []struct {
		name        string
		expectedID  uint32
		expectedErr error
	}{
		{
			name:       MainnetName,
			expectedID: MainnetID,
		},
		{
			name:       "MaInNeT",
			expectedID: MainnetID,
		},
		{
			name:       TestnetName,
			expectedID: TestnetID,
		},
		{
			name:       "network-4294967295",
			expectedID: 4294967295,
		},
		{
			name:       "4294967295",
			expectedID: 4294967295,
		},
		{
			name:        "network-4294967296",
			expectedErr: ErrParseNetworkName,
		},
		{
			name:        "asdcvasdc-252",
			expectedErr: ErrParseNetworkName,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			id, err := NetworkID(test.name)
			require.ErrorIs(err, test.expectedErr)
			require.Equal(test.expectedID, id)
		})
	}
}

func TestCodecTypeIDs(t *testing.T) {
	require := require.New(t)

	require.Equal(uint32(7), SECP256K1TransferOutputTypeID)
	require.Equal(uint32(10), NFTMintOutputTypeID)
	require.Equal(uint32(14), NFTCredentialTypeID)
	require.Equal(uint32(1), NFTFxIndex)
}
