// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avmtest

import (
	"net/http"
	"net/http/httptest"

	"github.com/gorilla/rpc/v2"

	"github.com/ava-labs/nftissuer/utils/constants"
	"github.com/ava-labs/nftissuer/utils/json"
	"github.com/ava-labs/nftissuer/utils/wrappers"
)

// Server serves a Node over HTTP at the same endpoints as an avalanche node.
type Server struct {
	*httptest.Server
	Node *Node
}

// NewHandler returns an http.Handler that serves the avm API at
// /ext/bc/X and the info API at /ext/info.
func NewHandler(node *Node) (http.Handler, error) {
	avmServer := rpc.NewServer()
	avmServer.RegisterCodec(json.NewCodec(), "application/json")
	avmServer.RegisterCodec(json.NewCodec(), "application/json;charset=UTF-8")

	infoServer := rpc.NewServer()
	infoServer.RegisterCodec(json.NewCodec(), "application/json")
	infoServer.RegisterCodec(json.NewCodec(), "application/json;charset=UTF-8")

	errs := wrappers.Errs{}
	errs.Add(
		avmServer.RegisterService(&Service{node: node}, "avm"),
		infoServer.RegisterService(&InfoService{node: node}, "info"),
	)
	if errs.Errored() {
		return nil, errs.Err
	}

	mux := http.NewServeMux()
	mux.Handle("/ext/bc/"+constants.XChainAlias, avmServer)
	mux.Handle("/ext/bc/"+node.ChainID.String(), avmServer)
	mux.Handle("/ext/info", infoServer)
	return mux, nil
}

// NewServer starts serving [node] on a local port. The caller must Close the
// returned server.
func NewServer(node *Node) (*Server, error) {
	handler, err := NewHandler(node)
	if err != nil {
		return nil, err
	}
	return &Server{
		Server: httptest.NewServer(handler),
		Node:   node,
	}, nil
}
