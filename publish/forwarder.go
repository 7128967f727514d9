// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"context"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/auctiond/messagebus"
)

type forwarder struct {
	log     *logger.L
	queue   *messagebus.Queue
	sinks   []Sink
	timeout time.Duration
}

// Run - wait for events and send each one to every sink
func (f *forwarder) Run(args interface{}, shutdown <-chan struct{}) {

	log := f.log
	log.Info("forwarder starting…")

	queue := f.queue.Chan()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-queue:
			log.Debugf("sending: %s  key: %d  id: %s", item.Command, item.Key, item.Id)
			f.process(&item)
		}
	}

	closeAll(log, f.sinks)
	log.Info("forwarder stopped")
}

// a failing sink is logged and does not hold up the others
func (f *forwarder) process(item *messagebus.Message) {
	for _, s := range f.sinks {
		ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
		err := s.Publish(ctx, item)
		cancel()
		if nil != err {
			f.log.Errorf("sink: %s  command: %s  error: %s", s.Name(), item.Command, err)
		}
	}
}
