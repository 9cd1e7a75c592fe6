// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package nft

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/ava-labs/nftissuer/vms/nftfx"
)

// URLPayloadType prefixes payloads that hold a URL. Explorers resolve the
// content type of an NFT payload from this byte.
const URLPayloadType byte = 27

var (
	ErrNotURLPayload = errors.New("payload does not hold a URL")

	errPayloadTooLarge = errors.New("payload too large")
)

// URLPayload returns the NFT payload referencing [rawURL].
func URLPayload(rawURL string) ([]byte, error) {
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return nil, err
	}
	payload := make([]byte, 1+len(rawURL))
	payload[0] = URLPayloadType
	copy(payload[1:], rawURL)
	if len(payload) > nftfx.MaxPayloadSize {
		return nil, fmt.Errorf("%w: %d > %d", errPayloadTooLarge, len(payload), nftfx.MaxPayloadSize)
	}
	return payload, nil
}

// ParseURLPayload returns the URL held by [payload].
func ParseURLPayload(payload []byte) (string, error) {
	if len(payload) == 0 || payload[0] != URLPayloadType {
		return "", ErrNotURLPayload
	}
	return string(payload[1:]), nil
}
