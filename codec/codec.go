// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"errors"

	"github.com/ava-labs/nftissuer/utils/wrappers"
)

var (
	ErrUnsupportedType           = errors.New("unsupported type")
	ErrMaxSliceLenExceeded       = errors.New("max slice length exceeded")
	ErrDoesNotImplementInterface = errors.New("does not implement interface")
	ErrUnexportedField           = errors.New("unexported field")
	ErrExtraSpace                = errors.New("trailing buffer space")
	ErrMarshalNil                = errors.New("can't marshal nil pointer or interface")
	ErrUnmarshalNil              = errors.New("can't unmarshal nil")
	ErrNeedPointer               = errors.New("argument to unmarshal must be a pointer")
	ErrUnknownTypeID             = errors.New("unknown type ID")
)

// Codec marshals and unmarshals
type Codec interface {
	MarshalInto(interface{}, *wrappers.Packer) error
	Unmarshal([]byte, interface{}) error
}

// Registry registers new types that can be marshaled into
type Registry interface {
	RegisterType(interface{}) error
}
