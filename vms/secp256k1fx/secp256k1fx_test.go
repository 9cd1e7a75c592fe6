// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/nftissuer/codec"
	"github.com/ava-labs/nftissuer/codec/linearcodec"
	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/vms/components/verify"
)

func newTestCodec(t *testing.T) codec.Manager {
	c := linearcodec.NewDefault()
	require.NoError(t, c.RegisterType(&TransferInput{}))
	require.NoError(t, c.RegisterType(&MintOutput{}))
	require.NoError(t, c.RegisterType(&TransferOutput{}))
	require.NoError(t, c.RegisterType(&MintOperation{}))
	require.NoError(t, c.RegisterType(&Credential{}))

	m := codec.NewDefaultManager()
	require.NoError(t, m.RegisterCodec(0, c))
	return m
}

func TestTransferOutputVerify(t *testing.T) {
	tests := []struct {
		name        string
		out         *TransferOutput
		expectedErr error
	}{
		{
			name:        "nil",
			out:         nil,
			expectedErr: ErrNilOutput,
		},
		{
			name: "no value",
			out: &TransferOutput{
				OutputOwners: OutputOwners{
					Threshold: 1,
					Addrs:     []ids.ShortID{{1}},
				},
			},
			expectedErr: ErrNoValueOutput,
		},
		{
			name: "invalid owners",
			out: &TransferOutput{
				Amt: 1,
				OutputOwners: OutputOwners{
					Threshold: 2,
					Addrs:     []ids.ShortID{{1}},
				},
			},
			expectedErr: ErrOutputUnspendable,
		},
		{
			name: "valid",
			out: &TransferOutput{
				Amt: 1,
				OutputOwners: OutputOwners{
					Threshold: 1,
					Addrs:     []ids.ShortID{{1}},
				},
			},
			expectedErr: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.out.Verify(), tt.expectedErr)
		})
	}
}

func TestTransferInputVerify(t *testing.T) {
	require := require.New(t)

	require.ErrorIs((*TransferInput)(nil).Verify(), ErrNilInput)
	require.ErrorIs((&TransferInput{}).Verify(), ErrNoValueInput)
	require.ErrorIs((&TransferInput{
		Amt:   1,
		Input: Input{SigIndices: []uint32{1, 0}},
	}).Verify(), ErrInputIndicesNotSortedUnique)
	require.NoError((&TransferInput{
		Amt:   1,
		Input: Input{SigIndices: []uint32{0, 1}},
	}).Verify())
}

func TestInputCost(t *testing.T) {
	require := require.New(t)

	in := Input{SigIndices: []uint32{0, 1, 2}}
	cost, err := in.Cost()
	require.NoError(err)
	require.Equal(3*CostPerSignature, cost)
}

func TestStateMarkers(t *testing.T) {
	require := require.New(t)

	var (
		_ verify.State = (*TransferOutput)(nil)
		_ verify.State = (*MintOutput)(nil)
	)

	_, isState := interface{}(&TransferInput{}).(verify.State)
	require.False(isState)
	_, isState = interface{}(&Credential{}).(verify.State)
	require.False(isState)
	_, isState = interface{}(&OutputOwners{}).(verify.State)
	require.False(isState)
}

func TestTransferOutputSerialize(t *testing.T) {
	require := require.New(t)
	c := newTestCodec(t)

	expected := []byte{
		// Codec version
		0x00, 0x00,
		// amount:
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x30, 0x39,
		// locktime:
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xd4, 0x31,
		// threshold:
		0x00, 0x00, 0x00, 0x01,
		// number of addresses:
		0x00, 0x00, 0x00, 0x02,
		// addrs[0]:
		0x51, 0x02, 0x5c, 0x61, 0xfb, 0xcf, 0xc0, 0x78,
		0xf6, 0x93, 0x34, 0xf8, 0x34, 0xbe, 0x6d, 0xd2,
		0x6d, 0x55, 0xa9, 0x55,
		// addrs[1]:
		0xc3, 0x34, 0x41, 0x28, 0xe0, 0x60, 0x12, 0x8e,
		0xde, 0x35, 0x23, 0xa2, 0x4a, 0x46, 0x1c, 0x89,
		0x43, 0xab, 0x08, 0x59,
	}
	out := TransferOutput{
		Amt: 12345,
		OutputOwners: OutputOwners{
			Locktime:  54321,
			Threshold: 1,
			Addrs: []ids.ShortID{
				{
					0x51, 0x02, 0x5c, 0x61, 0xfb, 0xcf, 0xc0, 0x78,
					0xf6, 0x93, 0x34, 0xf8, 0x34, 0xbe, 0x6d, 0xd2,
					0x6d, 0x55, 0xa9, 0x55,
				},
				{
					0xc3, 0x34, 0x41, 0x28, 0xe0, 0x60, 0x12, 0x8e,
					0xde, 0x35, 0x23, 0xa2, 0x4a, 0x46, 0x1c, 0x89,
					0x43, 0xab, 0x08, 0x59,
				},
			},
		},
	}
	require.NoError(out.Verify())

	result, err := c.Marshal(0, &out)
	require.NoError(err)
	require.Equal(expected, result)

	var parsed TransferOutput
	_, err = c.Unmarshal(result, &parsed)
	require.NoError(err)
	require.Equal(out, parsed)
}

func TestCredentialSerialize(t *testing.T) {
	require := require.New(t)
	c := newTestCodec(t)

	cred := Credential{Sigs: [][65]byte{{1, 2, 3}}}
	result, err := c.Marshal(0, &cred)
	require.NoError(err)
	// version + slice length + one signature
	require.Len(result, 2+4+65)

	var parsed Credential
	_, err = c.Unmarshal(result, &parsed)
	require.NoError(err)
	require.Equal(cred, parsed)

	jsonBytes, err := cred.MarshalJSON()
	require.NoError(err)
	require.Contains(string(jsonBytes), `"signatures":["0x010203`)
}

func TestMintOperationVerify(t *testing.T) {
	require := require.New(t)

	require.ErrorIs((*MintOperation)(nil).Verify(), ErrNilMintOperation)

	owners := OutputOwners{
		Threshold: 1,
		Addrs:     []ids.ShortID{{1}},
	}
	op := &MintOperation{
		MintInput:  Input{SigIndices: []uint32{0}},
		MintOutput: MintOutput{OutputOwners: owners},
		TransferOutput: TransferOutput{
			Amt:          1,
			OutputOwners: owners,
		},
	}
	require.NoError(op.Verify())
	require.Len(op.Outs(), 2)

	op.TransferOutput.Amt = 0
	require.ErrorIs(op.Verify(), ErrNoValueOutput)
}
