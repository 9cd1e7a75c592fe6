// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ava-labs/nftissuer/utils/logging"
)

const (
	metricsEndpoint        = "/metrics"
	metricsShutdownTimeout = 5 * time.Second
	metricsReadTimeout     = 10 * time.Second
)

// serveMetrics exposes [gatherer] on [addr] until the returned function is
// called.
func serveMetrics(log logging.Logger, addr string, gatherer prometheus.Gatherer) func() {
	mux := http.NewServeMux()
	mux.Handle(metricsEndpoint, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: metricsReadTimeout,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		log.Info("serving metrics",
			zap.String("addr", addr),
			zap.String("endpoint", metricsEndpoint),
		)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server failed",
				zap.Error(err),
			)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Warn("failed to shut down metrics server",
				zap.Error(err),
			)
		}
		<-done
	}
}
