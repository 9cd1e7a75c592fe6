// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package issuer

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/nftissuer/utils/wrappers"
)

type Metrics struct {
	issued       prometheus.Counter
	accepted     prometheus.Counter
	rejected     prometheus.Counter
	timedOut     prometheus.Counter
	polls        prometheus.Counter
	confirmation prometheus.Histogram
}

func NewMetrics(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		issued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "txs_issued",
			Help:      "Number of transactions the node accepted for processing",
		}),
		accepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "txs_accepted",
			Help:      "Number of issued transactions observed as accepted",
		}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "txs_rejected",
			Help:      "Number of transactions refused on submission or rejected afterwards",
		}),
		timedOut: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "txs_timed_out",
			Help:      "Number of transactions still undecided after the last status poll",
		}),
		polls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tx_status_polls",
			Help:      "Number of transaction status requests",
		}),
		confirmation: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tx_confirmation_seconds",
			Help:      "Time between submitting a transaction and observing its acceptance",
			Buckets:   prometheus.ExponentialBuckets(.1, 2, 10),
		}),
	}

	errs := wrappers.Errs{}
	errs.Add(
		reg.Register(m.issued),
		reg.Register(m.accepted),
		reg.Register(m.rejected),
		reg.Register(m.timedOut),
		reg.Register(m.polls),
		reg.Register(m.confirmation),
	)
	return m, errs.Err
}
