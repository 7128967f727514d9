// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - register every RPC service on one server
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/auctiond/counter"
	"github.com/bitmark-inc/auctiond/messagebus"
	"github.com/bitmark-inc/auctiond/payment"
	"github.com/bitmark-inc/auctiond/query"
	"github.com/bitmark-inc/auctiond/rpc/auction"
	"github.com/bitmark-inc/auctiond/rpc/bid"
	"github.com/bitmark-inc/auctiond/rpc/node"
	rpcpayment "github.com/bitmark-inc/auctiond/rpc/payment"
	"github.com/bitmark-inc/auctiond/rpc/proposal"
	rpcquery "github.com/bitmark-inc/auctiond/rpc/query"
	"github.com/bitmark-inc/auctiond/storage"
)

// Handlers - everything the services act on
//
// a nil Escrow leaves the Payment service unregistered
type Handlers struct {
	Store     *storage.Store
	Bus       *messagebus.Queue
	Auctions  auction.Ledger
	Proposals proposal.Ledger
	Bidding   bid.Ledger
	Queries   *query.Queries
	Escrow    *payment.Escrow
}

// Create - a JSON-RPC server with all services registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, handlers *Handlers) (*rpc.Server, error) {

	start := time.Now().UTC()

	services := []interface{}{
		auction.New(log, handlers.Auctions),
		proposal.New(log, handlers.Proposals),
		bid.NewBid(log, handlers.Bidding),
		bid.NewItem(log, handlers.Bidding),
		rpcquery.New(log, handlers.Queries),
		node.New(log, start, version, handlers.Store, handlers.Bus, rpcCount),
	}
	if nil != handlers.Escrow {
		services = append(services, rpcpayment.New(log, handlers.Escrow))
	}

	server := rpc.NewServer()
	for _, s := range services {
		if err := server.Register(s); nil != err {
			log.Criticalf("register: %T  error: %s", s, err)
			return nil, err
		}
	}

	return server, nil
}
