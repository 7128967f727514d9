// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - forward ledger events to external subscribers
package publish

import (
	"context"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/auctiond/background"
	"github.com/bitmark-inc/auctiond/messagebus"
)

const (
	defaultSendTimeout = 5 * time.Second
)

// Configuration - a block of configuration data read from the
// publish section of the configuration file
type Configuration struct {
	Broadcast  []string           `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string             `gluamapper:"private_key" json:"private_key"`
	PublicKey  string             `gluamapper:"public_key" json:"public_key"`
	Redis      RedisConfiguration `gluamapper:"redis" json:"redis"`
}

// Sink - one destination for events
type Sink interface {
	Name() string
	Publish(ctx context.Context, m *messagebus.Message) error
	Close() error
}

// Publisher - handle for the running forwarder
type Publisher struct {
	log        *logger.L
	background *background.T
}

// New - open the configured sinks and start forwarding
func New(log *logger.L, configuration *Configuration, queue *messagebus.Queue) (*Publisher, error) {
	sinks := []Sink{}

	if 0 != len(configuration.Broadcast) {
		b, err := newBroadcaster(log, configuration)
		if nil != err {
			return nil, err
		}
		sinks = append(sinks, b)
	}

	if "" != configuration.Redis.Address {
		r, err := newRedisSink(&configuration.Redis)
		if nil != err {
			log.Errorf("redis: %q  error: %s", configuration.Redis.Address, err)
			closeAll(log, sinks)
			return nil, err
		}
		sinks = append(sinks, r)
	}

	return Start(log, queue, sinks...), nil
}

// Start - forward events from the queue to a set of sinks
func Start(log *logger.L, queue *messagebus.Queue, sinks ...Sink) *Publisher {
	log.Infof("starting with %d sinks…", len(sinks))

	f := &forwarder{
		log:     log,
		queue:   queue,
		sinks:   sinks,
		timeout: defaultSendTimeout,
	}

	return &Publisher{
		log:        log,
		background: background.Start(background.Processes{f}, nil),
	}
}

// Stop - stop forwarding and close all sinks
func (p *Publisher) Stop() {
	if nil == p {
		return
	}
	p.log.Info("shutting down…")
	p.background.Stop()
	p.log.Info("finished")
}

func closeAll(log *logger.L, sinks []Sink) {
	for _, s := range sinks {
		if err := s.Close(); nil != err {
			log.Warnf("close sink: %s  error: %s", s.Name(), err)
		}
	}
}
