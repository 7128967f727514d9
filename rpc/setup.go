// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/auctiond/counter"
	"github.com/bitmark-inc/auctiond/rpc/certificate"
	"github.com/bitmark-inc/auctiond/rpc/listeners"
	"github.com/bitmark-inc/auctiond/rpc/server"
)

const (
	tlsName = "client_rpc"
)

// Server - the running client RPC listeners
type Server struct {
	log      *logger.L
	listener listeners.Listener
	count    counter.Counter
}

// Start - load the certificate, register the services and listen
func Start(configuration *listeners.RPCConfiguration, handlers *server.Handlers, version string) (*Server, error) {

	log := logger.New("rpc")
	log.Info("starting…")

	tlsConfig, fingerprint, err := certificate.Load(log, tlsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return nil, err
	}

	s := &Server{
		log: log,
	}

	rpcServer, err := server.Create(log, version, &s.count, handlers)
	if nil != err {
		return nil, err
	}

	s.listener, err = listeners.NewRPC(configuration, log, &s.count, rpcServer, tlsConfig, fingerprint)
	if nil != err {
		return nil, err
	}

	if err := s.listener.Serve(); nil != err {
		return nil, err
	}

	return s, nil
}

// Connections - number of open client connections
func (s *Server) Connections() uint64 {
	return s.count.Uint64()
}

// Stop - stop accepting connections
func (s *Server) Stop() {
	if nil == s {
		return
	}
	s.log.Info("shutting down…")
	_ = s.listener.Close()
	s.log.Info("finished")
}
