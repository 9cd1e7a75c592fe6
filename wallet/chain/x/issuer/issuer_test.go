// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package issuer

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/rpc/v2/json2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	dto "github.com/prometheus/client_model/go"

	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/snow/choices"
	"github.com/ava-labs/nftissuer/utils/constants"
	"github.com/ava-labs/nftissuer/utils/logging"
	"github.com/ava-labs/nftissuer/utils/rpc"
	"github.com/ava-labs/nftissuer/utils/timer/mockable"
	"github.com/ava-labs/nftissuer/vms/avm"
	"github.com/ava-labs/nftissuer/vms/avm/txs"
	"github.com/ava-labs/nftissuer/vms/components/avax"
	"github.com/ava-labs/nftissuer/wallet/subnet/primary/common"
)

const testNamespace = "issuer"

var (
	errConnectionRefused = errors.New("connection refused")

	startTime = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
)

type testEnv struct {
	client   *avm.MockClient
	clock    *mockable.Clock
	registry *prometheus.Registry
	issuer   *Issuer
	tx       *txs.Tx
}

func newTestEnv(t *testing.T, config Config) *testEnv {
	require := require.New(t)

	ctrl := gomock.NewController(t)
	client := avm.NewMockClient(ctrl)

	clock := &mockable.Clock{}
	clock.Set(startTime)

	registry := prometheus.NewRegistry()
	metrics, err := NewMetrics(testNamespace, registry)
	require.NoError(err)

	issuer, err := New(client, clock, logging.NoLog{}, metrics, config)
	require.NoError(err)

	tx := &txs.Tx{Unsigned: &txs.BaseTx{BaseTx: avax.BaseTx{
		NetworkID:    constants.UnitTestID,
		BlockchainID: ids.GenerateTestID(),
		Memo:         []byte("issuer"),
	}}}
	require.NoError(tx.Initialize(txs.Codec))

	return &testEnv{
		client:   client,
		clock:    clock,
		registry: registry,
		issuer:   issuer,
		tx:       tx,
	}
}

// counter returns the value of the counter [name] in [registry].
func gather(t *testing.T, registry *prometheus.Registry, name string) *dto.Metric {
	require := require.New(t)

	mfs, err := registry.Gather()
	require.NoError(err)
	for _, mf := range mfs {
		if mf.GetName() == testNamespace+"_"+name {
			require.Len(mf.GetMetric(), 1)
			return mf.GetMetric()[0]
		}
	}
	require.FailNow("missing metric", name)
	return nil
}

func counter(t *testing.T, registry *prometheus.Registry, name string) float64 {
	return gather(t, registry, name).GetCounter().GetValue()
}

func confirmations(t *testing.T, registry *prometheus.Registry) (uint64, float64) {
	h := gather(t, registry, "tx_confirmation_seconds").GetHistogram()
	return h.GetSampleCount(), h.GetSampleSum()
}

func TestConfigVerify(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectedErr error
	}{
		{
			name:   "default",
			config: DefaultConfig,
		},
		{
			name: "no poll frequency",
			config: Config{
				MaxPollAttempts: 1,
			},
			expectedErr: errInvalidConfig,
		},
		{
			name: "no poll attempts",
			config: Config{
				PollFrequency: time.Second,
			},
			expectedErr: errInvalidConfig,
		},
		{
			name: "negative unknown polls",
			config: Config{
				PollFrequency:   time.Second,
				MaxPollAttempts: 1,
				MaxUnknownPolls: -1,
			},
			expectedErr: errInvalidConfig,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.config.Verify()
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestDefaultConfigPollsForOneMinute(t *testing.T) {
	require.Equal(
		t,
		time.Minute,
		time.Duration(DefaultConfig.MaxPollAttempts)*DefaultConfig.PollFrequency,
	)
}

func TestSubmit(t *testing.T) {
	require := require.New(t)

	env := newTestEnv(t, DefaultConfig)
	env.client.EXPECT().IssueTx(gomock.Any(), env.tx.Bytes()).Return(env.tx.ID(), nil)

	txID, err := env.issuer.Submit(context.Background(), env.tx)
	require.NoError(err)
	require.Equal(env.tx.ID(), txID)
	require.Equal(1.0, counter(t, env.registry, "txs_issued"))
	require.Zero(counter(t, env.registry, "txs_rejected"))
}

func TestSubmitErrors(t *testing.T) {
	serverErr := fmt.Errorf("failed to decode client response: %w", &json2.Error{
		Code:    json2.E_SERVER,
		Message: "insufficient funds",
	})

	tests := []struct {
		name             string
		txID             ids.ID
		issueErr         error
		expectedErr      error
		expectedRejected float64
	}{
		{
			name:             "node refusal",
			issueErr:         serverErr,
			expectedErr:      ErrSubmissionRejected,
			expectedRejected: 1,
		},
		{
			name:        "transport failure",
			issueErr:    errConnectionRefused,
			expectedErr: errConnectionRefused,
		},
		{
			name:        "unexpected tx ID",
			txID:        ids.GenerateTestID(),
			expectedErr: ErrTxIDMismatch,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			env := newTestEnv(t, DefaultConfig)
			env.client.EXPECT().IssueTx(gomock.Any(), env.tx.Bytes()).Return(test.txID, test.issueErr)

			txID, err := env.issuer.Submit(context.Background(), env.tx)
			require.ErrorIs(err, test.expectedErr)
			require.Equal(ids.Empty, txID)
			require.Equal(test.expectedRejected, counter(t, env.registry, "txs_rejected"))
			require.Zero(counter(t, env.registry, "txs_issued"))
		})
	}
}

func TestSubmitTransportFailureIsNotRejection(t *testing.T) {
	require := require.New(t)

	env := newTestEnv(t, DefaultConfig)
	env.client.EXPECT().IssueTx(gomock.Any(), gomock.Any()).Return(ids.Empty, errConnectionRefused)

	_, err := env.issuer.Submit(context.Background(), env.tx)
	require.ErrorIs(err, errConnectionRefused)
	require.NotErrorIs(err, ErrSubmissionRejected)
}

func TestAwaitAcceptedRejectedDoesNotSleep(t *testing.T) {
	require := require.New(t)

	env := newTestEnv(t, DefaultConfig)
	txID := env.tx.ID()
	env.client.EXPECT().GetTxStatus(gomock.Any(), txID).Return(choices.Rejected, nil)

	status, err := env.issuer.AwaitAccepted(context.Background(), txID)
	require.ErrorIs(err, ErrSubmissionRejected)
	require.Equal(choices.Rejected, status)
	require.Equal(startTime, env.clock.Time())
	require.Equal(1.0, counter(t, env.registry, "tx_status_polls"))
	require.Equal(1.0, counter(t, env.registry, "txs_rejected"))
}

func TestAwaitAcceptedProcessingThenAccepted(t *testing.T) {
	require := require.New(t)

	env := newTestEnv(t, DefaultConfig)
	txID := env.tx.ID()
	gomock.InOrder(
		env.client.EXPECT().GetTxStatus(gomock.Any(), txID).Return(choices.Processing, nil),
		env.client.EXPECT().GetTxStatus(gomock.Any(), txID).Return(choices.Accepted, nil),
	)

	status, err := env.issuer.AwaitAccepted(context.Background(), txID)
	require.NoError(err)
	require.Equal(choices.Accepted, status)
	require.Equal(startTime.Add(DefaultConfig.PollFrequency), env.clock.Time())
	require.Equal(2.0, counter(t, env.registry, "tx_status_polls"))
	require.Equal(1.0, counter(t, env.registry, "txs_accepted"))

	count, sum := confirmations(t, env.registry)
	require.Equal(uint64(1), count)
	require.Equal(DefaultConfig.PollFrequency.Seconds(), sum)
}

func TestAwaitAcceptedTimesOut(t *testing.T) {
	require := require.New(t)

	config := Config{
		PollFrequency:   time.Second,
		MaxPollAttempts: 3,
		MaxUnknownPolls: 0,
	}
	env := newTestEnv(t, config)
	txID := env.tx.ID()
	env.client.EXPECT().GetTxStatus(gomock.Any(), txID).Return(choices.Processing, nil).Times(3)

	status, err := env.issuer.AwaitAccepted(context.Background(), txID)
	require.ErrorIs(err, ErrTimedOut)
	require.Equal(choices.Processing, status)
	require.Equal(startTime.Add(2*time.Second), env.clock.Time())
	require.Equal(1.0, counter(t, env.registry, "txs_timed_out"))
	require.Zero(counter(t, env.registry, "txs_accepted"))
}

func TestAwaitAcceptedUnknown(t *testing.T) {
	tests := []struct {
		name           string
		statuses       []choices.Status
		expectedStatus choices.Status
		expectedErr    error
	}{
		{
			name: "unknown within limit",
			statuses: []choices.Status{
				choices.Unknown,
				choices.Unknown,
				choices.Accepted,
			},
			expectedStatus: choices.Accepted,
		},
		{
			name: "unknown beyond limit",
			statuses: []choices.Status{
				choices.Unknown,
				choices.Processing,
				choices.Unknown,
				choices.Unknown,
			},
			expectedStatus: choices.Unknown,
			expectedErr:    ErrUnknownTx,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			config := DefaultConfig
			config.MaxUnknownPolls = 2
			env := newTestEnv(t, config)
			txID := env.tx.ID()

			calls := make([]*gomock.Call, len(test.statuses))
			for i, status := range test.statuses {
				calls[i] = env.client.EXPECT().GetTxStatus(gomock.Any(), txID).Return(status, nil)
			}
			gomock.InOrder(calls...)

			status, err := env.issuer.AwaitAccepted(context.Background(), txID)
			require.ErrorIs(err, test.expectedErr)
			require.Equal(test.expectedStatus, status)
			require.Equal(float64(len(test.statuses)), counter(t, env.registry, "tx_status_polls"))
		})
	}
}

func TestAwaitAcceptedStatusError(t *testing.T) {
	require := require.New(t)

	env := newTestEnv(t, DefaultConfig)
	txID := env.tx.ID()
	env.client.EXPECT().GetTxStatus(gomock.Any(), txID).Return(choices.Unknown, errConnectionRefused)

	_, err := env.issuer.AwaitAccepted(context.Background(), txID)
	require.ErrorIs(err, errConnectionRefused)
}

func TestAwaitAcceptedCanceled(t *testing.T) {
	require := require.New(t)

	env := newTestEnv(t, DefaultConfig)
	txID := env.tx.ID()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	env.client.EXPECT().GetTxStatus(gomock.Any(), txID).DoAndReturn(
		func(context.Context, ids.ID, ...rpc.Option) (choices.Status, error) {
			cancel()
			return choices.Processing, nil
		},
	)

	_, err := env.issuer.AwaitAccepted(ctx, txID)
	require.ErrorIs(err, context.Canceled)
	require.Equal(1.0, counter(t, env.registry, "tx_status_polls"))
}

func TestAwaitAcceptedAlreadyCanceled(t *testing.T) {
	require := require.New(t)

	env := newTestEnv(t, DefaultConfig)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := env.issuer.AwaitAccepted(ctx, env.tx.ID())
	require.ErrorIs(err, context.Canceled)
	require.Zero(counter(t, env.registry, "tx_status_polls"))
}

func TestIssue(t *testing.T) {
	require := require.New(t)

	env := newTestEnv(t, DefaultConfig)
	txID := env.tx.ID()
	gomock.InOrder(
		env.client.EXPECT().IssueTx(gomock.Any(), env.tx.Bytes()).Return(txID, nil),
		env.client.EXPECT().GetTxStatus(gomock.Any(), txID).Return(choices.Processing, nil),
		env.client.EXPECT().GetTxStatus(gomock.Any(), txID).Return(choices.Accepted, nil),
	)

	var issued ids.ID
	issuedTxID, err := env.issuer.Issue(
		context.Background(),
		env.tx,
		common.WithPollFrequency(time.Second),
		common.WithPostIssuanceFunc(func(txID ids.ID) {
			issued = txID
		}),
	)
	require.NoError(err)
	require.Equal(txID, issuedTxID)
	require.Equal(txID, issued)
	require.Equal(startTime.Add(time.Second), env.clock.Time())
	require.Equal(1.0, counter(t, env.registry, "txs_issued"))
	require.Equal(1.0, counter(t, env.registry, "txs_accepted"))
}

func TestIssueAssumeDecided(t *testing.T) {
	require := require.New(t)

	env := newTestEnv(t, DefaultConfig)
	txID := env.tx.ID()
	env.client.EXPECT().IssueTx(gomock.Any(), env.tx.Bytes()).Return(txID, nil)

	issuedTxID, err := env.issuer.Issue(context.Background(), env.tx, common.WithAssumeDecided())
	require.NoError(err)
	require.Equal(txID, issuedTxID)
	require.Zero(counter(t, env.registry, "tx_status_polls"))
}

func TestIssueRejected(t *testing.T) {
	require := require.New(t)

	env := newTestEnv(t, DefaultConfig)
	txID := env.tx.ID()
	gomock.InOrder(
		env.client.EXPECT().IssueTx(gomock.Any(), env.tx.Bytes()).Return(txID, nil),
		env.client.EXPECT().GetTxStatus(gomock.Any(), txID).Return(choices.Rejected, nil),
	)

	issuedTxID, err := env.issuer.Issue(context.Background(), env.tx)
	require.ErrorIs(err, ErrSubmissionRejected)
	require.Equal(txID, issuedTxID)
	require.Equal(startTime, env.clock.Time())
}

func TestNewMetricsDuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := NewMetrics(testNamespace, registry)
	require.NoError(t, err)

	_, err = NewMetrics(testNamespace, registry)
	var alreadyRegistered prometheus.AlreadyRegisteredError
	require.ErrorAs(t, err, &alreadyRegistered)
}
