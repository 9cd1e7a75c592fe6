// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hashing

import (
	"crypto/sha256"
	"errors"
	"fmt"

	// Addresses are ripemd160(sha256(pubkey)), matching the ledger's address
	// derivation.
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck
)

const (
	HashLen = sha256.Size
	AddrLen = ripemd160.Size
)

var ErrInvalidHashLen = errors.New("invalid hash length")

// Hash256 is a 256 bit hash value.
type Hash256 = [HashLen]byte

// Hash160 is a 160 bit hash value.
type Hash160 = [AddrLen]byte

func ComputeHash256Array(buf []byte) Hash256 {
	return sha256.Sum256(buf)
}

func ComputeHash256(buf []byte) []byte {
	arr := ComputeHash256Array(buf)
	return arr[:]
}

func ComputeHash160(buf []byte) []byte {
	ripe := ripemd160.New() //nolint:gosec
	// hash.Hash never returns an error on Write.
	_, _ = ripe.Write(buf)
	return ripe.Sum(nil)
}

func ComputeHash160Array(buf []byte) Hash160 {
	var h Hash160
	copy(h[:], ComputeHash160(buf))
	return h
}

// Checksum returns the last [length] bytes of the sha256 hash of [bytes].
//
// Panics if length > 32.
func Checksum(bytes []byte, length int) []byte {
	hash := ComputeHash256Array(bytes)
	return hash[len(hash)-length:]
}

func ToHash256(bytes []byte) (Hash256, error) {
	hash := Hash256{}
	if bytesLen := len(bytes); bytesLen != HashLen {
		return hash, fmt.Errorf("%w: expected %d bytes but got %d", ErrInvalidHashLen, HashLen, bytesLen)
	}
	copy(hash[:], bytes)
	return hash, nil
}

func ToHash160(bytes []byte) (Hash160, error) {
	hash := Hash160{}
	if bytesLen := len(bytes); bytesLen != AddrLen {
		return hash, fmt.Errorf("%w: expected %d bytes but got %d", ErrInvalidHashLen, AddrLen, bytesLen)
	}
	copy(hash[:], bytes)
	return hash, nil
}

// PubkeyBytesToAddress derives the 20 byte address of a compressed public key.
func PubkeyBytesToAddress(key []byte) []byte {
	return ComputeHash160(ComputeHash256(key))
}
