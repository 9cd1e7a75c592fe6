// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelRoundTrip(t *testing.T) {
	for _, l := range []Level{Off, Fatal, Error, Warn, Info, Trace, Debug, Verbo} {
		t.Run(l.String(), func(t *testing.T) {
			require := require.New(t)

			parsed, err := ToLevel(l.LowerString())
			require.NoError(err)
			require.Equal(l, parsed)

			b, err := json.Marshal(l)
			require.NoError(err)

			var unmarshalled Level
			require.NoError(json.Unmarshal(b, &unmarshalled))
			require.Equal(l, unmarshalled)
		})
	}
}

func TestToLevelUnknown(t *testing.T) {
	_, err := ToLevel("loud")
	require.ErrorIs(t, err, ErrUnknownLevel)
}

func TestToFormat(t *testing.T) {
	require := require.New(t)

	f, err := ToFormat("json")
	require.NoError(err)
	require.Equal(JSON, f)

	_, err = ToFormat("xml")
	require.ErrorIs(err, errUnknownFormat)
}
