// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package nft

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/nftissuer/vms/nftfx"
)

func TestURLPayload(t *testing.T) {
	require := require.New(t)

	const u = "https://i.ibb.co/ydXY8bD/pink.png"
	payload, err := URLPayload(u)
	require.NoError(err)
	require.Equal(append([]byte{URLPayloadType}, u...), payload)
	require.Equal(byte(0x1b), payload[0])

	parsed, err := ParseURLPayload(payload)
	require.NoError(err)
	require.Equal(u, parsed)
}

func TestURLPayloadErrors(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		expectedErr error
	}{
		{
			name:        "too large",
			url:         "https://example.com/" + strings.Repeat("a", nftfx.MaxPayloadSize),
			expectedErr: errPayloadTooLarge,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := URLPayload(test.url)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}

	_, err := URLPayload("not a url")
	var urlErr *url.Error
	require.ErrorAs(t, err, &urlErr)
}

func TestParseURLPayloadErrors(t *testing.T) {
	for _, payload := range [][]byte{nil, {0x01, 'a'}, {0x02, 'a'}} {
		_, err := ParseURLPayload(payload)
		require.ErrorIs(t, err, ErrNotURLPayload)
	}
}
