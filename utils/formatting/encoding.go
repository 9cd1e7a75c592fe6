// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mr-tron/base58/base58"

	"github.com/ava-labs/nftissuer/utils/hashing"
)

const (
	hexPrefix    = "0x"
	checksumLen  = 4
	maxCB58Size  = 16 * 1024 // 16 KB
	maxCB58Input = math.MaxInt32 - checksumLen
)

var (
	ErrInvalidEncoding  = errors.New("invalid encoding")
	errMissingChecksum  = errors.New("input string is smaller than the checksum size")
	errBadChecksum      = errors.New("invalid input checksum")
	errMissingHexPrefix = errors.New("missing 0x prefix to hex encoding")
)

// Encoding defines how bytes are converted to a string and vice versa
type Encoding uint8

const (
	// Hex specifies a hex plus 4 byte checksum encoding format
	Hex Encoding = iota
	// HexNC specifies a hex encoding format without a checksum
	HexNC
	// CB58 specifies the checksummed base-58 encoding format
	CB58
)

func (enc Encoding) String() string {
	switch enc {
	case Hex:
		return "hex"
	case HexNC:
		return "hexnc"
	case CB58:
		return "cb58"
	default:
		return ErrInvalidEncoding.Error()
	}
}

func (enc Encoding) MarshalJSON() ([]byte, error) {
	switch enc {
	case Hex, HexNC, CB58:
		return []byte(`"` + enc.String() + `"`), nil
	default:
		return nil, ErrInvalidEncoding
	}
}

func (enc *Encoding) UnmarshalJSON(b []byte) error {
	switch strings.ToLower(string(b)) {
	case `"hex"`:
		*enc = Hex
	case `"hexnc"`:
		*enc = HexNC
	case `"cb58"`:
		*enc = CB58
	case "null":
	default:
		return ErrInvalidEncoding
	}
	return nil
}

// Encode [bytes] to a string using the given encoding format.
func Encode(encoding Encoding, bytes []byte) (string, error) {
	switch encoding {
	case Hex:
		return hexPrefix + hex.EncodeToString(addChecksum(bytes)), nil
	case HexNC:
		return hexPrefix + hex.EncodeToString(bytes), nil
	case CB58:
		return EncodeCB58(bytes)
	default:
		return "", ErrInvalidEncoding
	}
}

// Decode [str] to bytes using the given encoding format.
func Decode(encoding Encoding, str string) ([]byte, error) {
	switch encoding {
	case Hex, HexNC:
		if len(str) == 0 {
			return nil, nil
		}
		if !strings.HasPrefix(str, hexPrefix) {
			return nil, errMissingHexPrefix
		}
		decoded, err := hex.DecodeString(str[len(hexPrefix):])
		if err != nil {
			return nil, err
		}
		if encoding == HexNC {
			return decoded, nil
		}
		return stripChecksum(decoded)
	case CB58:
		return DecodeCB58(str)
	default:
		return nil, ErrInvalidEncoding
	}
}

// EncodeCB58 returns the base-58 string of [b] with a 4 byte checksum appended.
func EncodeCB58(b []byte) (string, error) {
	if len(b) > maxCB58Size {
		return "", fmt.Errorf("byte slice length (%d) > maximum for cb58 (%d)", len(b), maxCB58Size)
	}
	return base58.Encode(addChecksum(b)), nil
}

// DecodeCB58 is the inverse of EncodeCB58.
func DecodeCB58(str string) ([]byte, error) {
	if len(str) == 0 {
		return []byte{}, nil
	}
	if len(str) > maxCB58Input {
		return nil, ErrInvalidEncoding
	}
	decoded, err := base58.Decode(str)
	if err != nil {
		return nil, err
	}
	return stripChecksum(decoded)
}

func addChecksum(b []byte) []byte {
	checked := make([]byte, len(b)+checksumLen)
	copy(checked, b)
	copy(checked[len(b):], hashing.Checksum(b, checksumLen))
	return checked
}

func stripChecksum(b []byte) ([]byte, error) {
	if len(b) < checksumLen {
		return nil, errMissingChecksum
	}
	rawBytes := b[:len(b)-checksumLen]
	checksum := b[len(b)-checksumLen:]
	if !bytes.Equal(checksum, hashing.Checksum(rawBytes, checksumLen)) {
		return nil, errBadChecksum
	}
	return rawBytes, nil
}
