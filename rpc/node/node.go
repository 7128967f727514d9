// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/auctiond/counter"
	"github.com/bitmark-inc/auctiond/messagebus"
	"github.com/bitmark-inc/auctiond/rpc/ratelimit"
	"github.com/bitmark-inc/auctiond/storage"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Store   *storage.Store
	Bus     *messagebus.Queue
	counter *counter.Counter
}

// New - create the node RPC
func New(log *logger.L, start time.Time, version string, store *storage.Store, bus *messagebus.Queue, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Store:   store,
		Bus:     bus,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version       string         `json:"version"`
	Uptime        string         `json:"uptime"`
	ReadOnly      bool           `json:"readOnly"`
	RPCs          uint64         `json:"rpcs"`
	EventsDropped uint64         `json:"eventsDropped"`
	Records       map[string]int `json:"records"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.ReadOnly = node.Store.IsReadOnly()
	reply.RPCs = node.counter.Uint64()
	reply.EventsDropped = node.Bus.Dropped()
	reply.Records = make(map[string]int)
	for _, name := range node.Store.PoolNames() {
		pool, err := node.Store.PoolByName(name)
		if nil != err {
			return err
		}
		reply.Records[name] = pool.Count()
	}
	return nil
}
