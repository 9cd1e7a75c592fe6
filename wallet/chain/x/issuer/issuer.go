// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package issuer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/snow/choices"
	"github.com/ava-labs/nftissuer/utils/logging"
	"github.com/ava-labs/nftissuer/utils/rpc"
	"github.com/ava-labs/nftissuer/utils/timer/mockable"
	"github.com/ava-labs/nftissuer/vms/avm"
	"github.com/ava-labs/nftissuer/vms/avm/txs"
	"github.com/ava-labs/nftissuer/wallet/subnet/primary/common"
)

var (
	ErrSubmissionRejected = errors.New("submission rejected")
	ErrTimedOut           = errors.New("timed out awaiting acceptance")
	ErrUnknownTx          = errors.New("tx unknown to the node")
	ErrTxIDMismatch       = errors.New("tx ID mismatch")

	errInvalidConfig = errors.New("invalid issuer config")
)

var DefaultConfig = Config{
	PollFrequency:   100 * time.Millisecond,
	MaxPollAttempts: 600,
	MaxUnknownPolls: 10,
}

type Config struct {
	// PollFrequency is the delay between two status requests.
	PollFrequency time.Duration `json:"pollFrequency"`
	// MaxPollAttempts bounds the number of status requests made for a tx.
	MaxPollAttempts int `json:"maxPollAttempts"`
	// MaxUnknownPolls bounds the number of status requests that may report
	// the tx as unknown.
	MaxUnknownPolls int `json:"maxUnknownPolls"`
}

func (c Config) Verify() error {
	switch {
	case c.PollFrequency <= 0:
		return fmt.Errorf("%w: poll frequency must be positive", errInvalidConfig)
	case c.MaxPollAttempts <= 0:
		return fmt.Errorf("%w: max poll attempts must be positive", errInvalidConfig)
	case c.MaxUnknownPolls < 0:
		return fmt.Errorf("%w: max unknown polls must not be negative", errInvalidConfig)
	default:
		return nil
	}
}

// Issuer submits signed transactions and polls the node until they are
// decided.
type Issuer struct {
	client  avm.Client
	clock   *mockable.Clock
	log     logging.Logger
	metrics *Metrics
	config  Config
}

func New(
	client avm.Client,
	clock *mockable.Clock,
	log logging.Logger,
	metrics *Metrics,
	config Config,
) (*Issuer, error) {
	if err := config.Verify(); err != nil {
		return nil, err
	}
	return &Issuer{
		client:  client,
		clock:   clock,
		log:     log,
		metrics: metrics,
		config:  config,
	}, nil
}

// Submit hands [tx] to the node. A refusal by the node is reported as
// ErrSubmissionRejected.
func (i *Issuer) Submit(ctx context.Context, tx *txs.Tx) (ids.ID, error) {
	expectedTxID := tx.ID()
	txID, err := i.client.IssueTx(ctx, tx.Bytes())
	switch {
	case rpc.IsServerError(err):
		i.metrics.rejected.Inc()
		i.log.Debug("node refused tx",
			zap.Stringer("txID", expectedTxID),
			zap.Error(err),
		)
		return ids.Empty, fmt.Errorf("%w: %s: %w", ErrSubmissionRejected, expectedTxID, err)
	case err != nil:
		return ids.Empty, fmt.Errorf("couldn't issue tx %s: %w", expectedTxID, err)
	case txID != expectedTxID:
		return ids.Empty, fmt.Errorf("%w: expected %s but node returned %s",
			ErrTxIDMismatch,
			expectedTxID,
			txID,
		)
	}

	i.metrics.issued.Inc()
	i.log.Info("issued tx",
		zap.Stringer("txID", txID),
	)
	return txID, nil
}

// AwaitAccepted polls the status of [txID] until it is accepted. The first
// request is made immediately.
func (i *Issuer) AwaitAccepted(ctx context.Context, txID ids.ID) (choices.Status, error) {
	return i.await(ctx, txID, i.config.PollFrequency, i.clock.Time())
}

// Issue submits [tx] and, unless WithAssumeDecided is given, waits for its
// acceptance.
func (i *Issuer) Issue(ctx context.Context, tx *txs.Tx, options ...common.Option) (ids.ID, error) {
	ops := common.NewOptions(options)
	start := i.clock.Time()
	txID, err := i.Submit(ctx, tx)
	if err != nil {
		return ids.Empty, err
	}

	if f := ops.PostIssuanceFunc(); f != nil {
		f(txID)
	}

	if ops.AssumeDecided() {
		return txID, nil
	}

	pollFrequency := ops.PollFrequency(i.config.PollFrequency)
	if _, err := i.await(ctx, txID, pollFrequency, start); err != nil {
		return txID, err
	}
	return txID, nil
}

func (i *Issuer) await(
	ctx context.Context,
	txID ids.ID,
	pollFrequency time.Duration,
	start time.Time,
) (choices.Status, error) {
	var (
		status       = choices.Unknown
		unknownPolls int
		numPolls     int
	)
	for {
		if err := ctx.Err(); err != nil {
			return status, err
		}

		var err error
		status, err = i.client.GetTxStatus(ctx, txID)
		numPolls++
		i.metrics.polls.Inc()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return choices.Unknown, ctxErr
			}
			return choices.Unknown, fmt.Errorf("couldn't fetch status of tx %s: %w", txID, err)
		}

		i.log.Verbo("polled tx status",
			zap.Stringer("txID", txID),
			zap.Stringer("status", status),
			zap.Int("numPolls", numPolls),
		)

		switch status {
		case choices.Accepted:
			i.metrics.accepted.Inc()
			i.metrics.confirmation.Observe(i.clock.Time().Sub(start).Seconds())
			i.log.Info("tx accepted",
				zap.Stringer("txID", txID),
				zap.Int("numPolls", numPolls),
			)
			return status, nil
		case choices.Rejected:
			i.metrics.rejected.Inc()
			return status, fmt.Errorf("%w: %s", ErrSubmissionRejected, txID)
		case choices.Unknown:
			unknownPolls++
			if unknownPolls > i.config.MaxUnknownPolls {
				return status, fmt.Errorf("%w: %s after %d polls", ErrUnknownTx, txID, numPolls)
			}
		}

		if numPolls >= i.config.MaxPollAttempts {
			i.metrics.timedOut.Inc()
			i.log.Warn("gave up awaiting tx",
				zap.Stringer("txID", txID),
				zap.Stringer("status", status),
				zap.Int("numPolls", numPolls),
			)
			return status, fmt.Errorf("%w: %s is %s after %d polls", ErrTimedOut, txID, status, numPolls)
		}

		select {
		case <-ctx.Done():
			return status, ctx.Err()
		case <-i.clock.After(pollFrequency):
		}
	}
}
