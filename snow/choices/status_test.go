// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package choices

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusValid(t *testing.T) {
	require := require.New(t)

	require.NoError(Accepted.Valid())
	require.NoError(Rejected.Valid())
	require.NoError(Processing.Valid())
	require.NoError(Unknown.Valid())

	err := Status(math.MaxInt32).Valid()
	require.ErrorIs(err, errUnknownStatus)
}

func TestStatusDecided(t *testing.T) {
	require := require.New(t)

	require.True(Accepted.Decided())
	require.True(Rejected.Decided())
	require.False(Processing.Decided())
	require.False(Unknown.Decided())
	require.False(Status(math.MaxInt32).Decided())
}

func TestStatusFetched(t *testing.T) {
	require := require.New(t)

	require.True(Accepted.Fetched())
	require.True(Rejected.Fetched())
	require.True(Processing.Fetched())
	require.False(Unknown.Fetched())
	require.False(Status(math.MaxInt32).Fetched())
}

func TestStatusJSON(t *testing.T) {
	require := require.New(t)

	for _, status := range []Status{Unknown, Processing, Rejected, Accepted} {
		b, err := json.Marshal(status)
		require.NoError(err)
		require.Equal(`"`+status.String()+`"`, string(b))

		var parsed Status
		require.NoError(json.Unmarshal(b, &parsed))
		require.Equal(status, parsed)
	}

	_, err := json.Marshal(Status(math.MaxInt32))
	require.ErrorIs(err, errUnknownStatus)

	var parsed Status
	require.ErrorIs(json.Unmarshal([]byte(`"Dropped"`), &parsed), errUnknownStatus)
}

func TestStatusString(t *testing.T) {
	require := require.New(t)

	require.Equal("Accepted", Accepted.String())
	require.Equal("Rejected", Rejected.String())
	require.Equal("Processing", Processing.String())
	require.Equal("Unknown", Unknown.String())
	require.Equal("Invalid status", Status(math.MaxInt32).String())
}
