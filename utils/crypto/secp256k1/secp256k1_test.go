// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/ava-labs/nftissuer/utils/formatting"
	"github.com/ava-labs/nftissuer/utils/hashing"
)

const ewoqKeyStr = "PrivateKey-ewoqjP7PxY4yr3iLTpLisriqt94hdyDFNgchSxGGztUrTXtNN"

func TestRecover(t *testing.T) {
	require := require.New(t)

	key, err := NewPrivateKey()
	require.NoError(err)

	msg := []byte{1, 2, 3}
	sig, err := key.Sign(msg)
	require.NoError(err)
	require.Len(sig, SignatureLen)

	pub := key.PublicKey()
	pubRec, err := RecoverPublicKey(msg, sig)
	require.NoError(err)

	require.Equal(pub.Address(), pubRec.Address())
	require.Equal(pub.Bytes(), pubRec.Bytes())
	require.True(pub.Verify(msg, sig))
	require.False(pub.Verify([]byte{1, 2, 4}, sig))
}

func TestPrivateKeyRoundTrip(t *testing.T) {
	require := require.New(t)

	key, err := NewPrivateKey()
	require.NoError(err)

	parsed, err := ToPrivateKey(key.Bytes())
	require.NoError(err)
	require.Equal(key.Address(), parsed.Address())

	pub, err := ToPublicKey(key.PublicKey().Bytes())
	require.NoError(err)
	require.Equal(key.Address(), pub.Address())
}

func TestInvalidLengths(t *testing.T) {
	require := require.New(t)

	_, err := ToPrivateKey(make([]byte, PrivateKeyLen-1))
	require.ErrorIs(err, errInvalidPrivateKeyLength)

	_, err = ToPublicKey(make([]byte, PublicKeyLen+1))
	require.ErrorIs(err, errInvalidPublicKeyLength)

	_, err = RecoverPublicKey([]byte{1}, make([]byte, SignatureLen-1))
	require.ErrorIs(err, errInvalidSigLen)
}

func TestMalleableSignatureRejected(t *testing.T) {
	require := require.New(t)

	key, err := NewPrivateKey()
	require.NoError(err)

	msg := []byte{1, 2, 3}
	sig, err := key.Sign(msg)
	require.NoError(err)

	// (r, N-s) with the flipped recovery id is valid for the same key but
	// has a high s value.
	var s secp256k1.ModNScalar
	s.SetByteSlice(sig[32:64])
	s.Negate()
	highS := s.Bytes()

	malleated := make([]byte, SignatureLen)
	copy(malleated, sig[:32])
	copy(malleated[32:64], highS[:])
	malleated[64] = sig[64] ^ 1

	_, err = RecoverPublicKey(msg, malleated)
	require.ErrorIs(err, errMutatedSig)
}

func TestEwoqKeyAddress(t *testing.T) {
	require := require.New(t)

	key := &PrivateKey{}
	require.NoError(key.UnmarshalText([]byte(ewoqKeyStr)))
	require.Equal(ewoqKeyStr, key.String())

	addr, err := formatting.FormatAddress("X", "local", key.Address().Bytes())
	require.NoError(err)
	require.Equal("X-local18jma8ppw3nhx5r4ap8clazz0dps7rv5u00z96u", addr)

	require.Equal(
		hashing.PubkeyBytesToAddress(key.PublicKey().Bytes()),
		key.Address().Bytes(),
	)
}

func TestPrivateKeyJSON(t *testing.T) {
	require := require.New(t)

	keys := TestKeys()
	b, err := json.Marshal(keys[3])
	require.NoError(err)
	require.Equal(`"`+ewoqKeyStr+`"`, string(b))

	parsed := &PrivateKey{}
	require.NoError(json.Unmarshal(b, parsed))
	require.Equal(keys[3].Bytes(), parsed.Bytes())

	require.ErrorIs(parsed.UnmarshalJSON([]byte(`ewoq`)), errMissingQuotes)
	require.ErrorIs(parsed.UnmarshalText([]byte("ewoq")), errMissingKeyPrefix)
}
