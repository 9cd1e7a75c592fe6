// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mockable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClockSet(t *testing.T) {
	require := require.New(t)

	clock := Clock{}
	time := time.Unix(1000000, 0)
	clock.Set(time)
	require.True(clock.faked)
	require.Equal(time, clock.Time())
	require.Equal(uint64(1000000), clock.Unix())
}

func TestClockSync(t *testing.T) {
	require := require.New(t)

	clock := Clock{faked: true}
	clock.Sync()
	require.False(clock.faked)
}

func TestClockUnixTime(t *testing.T) {
	require := require.New(t)

	clock := Clock{}
	clock.Set(time.Unix(123, 123))
	require.Zero(clock.UnixTime().Nanosecond())
	require.Equal(int64(123), clock.Time().Unix())
}

func TestClockUnixBeforeEpoch(t *testing.T) {
	clock := Clock{}
	clock.Set(time.Unix(-10, 0))
	require.Zero(t, clock.Unix())
}

func TestFakedClockAfterAdvances(t *testing.T) {
	require := require.New(t)

	start := time.Unix(100, 0)
	clock := Clock{}
	clock.Set(start)

	fired := <-clock.After(250 * time.Millisecond)
	require.Equal(start.Add(250*time.Millisecond), fired)
	require.Equal(start.Add(250*time.Millisecond), clock.Time())
}

func TestRealClockAfter(t *testing.T) {
	clock := Clock{}
	select {
	case <-clock.After(time.Millisecond):
	case <-time.After(time.Minute):
		require.FailNow(t, "real clock never fired")
	}
}
