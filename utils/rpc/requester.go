// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"
)

var (
	ErrUnexpectedStatus = errors.New("received unexpected status code")

	_ EndpointRequester = (*endpointRequester)(nil)
)

type EndpointRequester interface {
	SendRequest(ctx context.Context, method string, params interface{}, reply interface{}, options ...Option) error
}

type endpointRequester struct {
	uri     string
	client  *http.Client
	limiter *rate.Limiter
}

// NewEndpointRequester returns a requester for the JSON-RPC service served at
// [uri], for example "http://127.0.0.1:9650/ext/bc/X".
func NewEndpointRequester(uri string) EndpointRequester {
	return NewLimitedEndpointRequester(uri, rate.NewLimiter(rate.Inf, 0))
}

// NewLimitedEndpointRequester returns a requester that waits on [limiter]
// before every request.
func NewLimitedEndpointRequester(uri string, limiter *rate.Limiter) EndpointRequester {
	return &endpointRequester{
		uri:     uri,
		client:  http.DefaultClient,
		limiter: limiter,
	}
}

func (e *endpointRequester) SendRequest(
	ctx context.Context,
	method string,
	params interface{},
	reply interface{},
	options ...Option,
) error {
	uri, err := url.Parse(e.uri)
	if err != nil {
		return err
	}
	if err := e.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limited request %q: %w", method, err)
	}
	return SendJSONRequest(
		ctx,
		e.client,
		uri,
		method,
		params,
		reply,
		options...,
	)
}
