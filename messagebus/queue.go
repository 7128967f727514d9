// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// internal constants
const (
	DefaultQueueSize = 1000
)

// Message - one ledger event
type Message struct {
	Id        uuid.UUID       `json:"id"`
	Command   string          `json:"command"`
	Key       uint64          `json:"key"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// Queue - a bounded event queue
//
// a nil queue discards everything sent to it
type Queue struct {
	queue   chan Message
	dropped uint64
}

// New - create a queue holding up to size messages
func New(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{
		queue: make(chan Message, size),
	}
}

// Send - queue an event for a record
//
// never blocks: when the queue is full the event is counted and dropped
func (q *Queue) Send(command string, key uint64, item interface{}) {
	if nil == q {
		return
	}

	data, err := json.Marshal(item)
	if nil != err {
		data = nil
	}

	m := Message{
		Id:        uuid.New(),
		Command:   command,
		Key:       key,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}

	select {
	case q.queue <- m:
	default:
		atomic.AddUint64(&q.dropped, 1)
	}
}

// Chan - channel to read from
//
// a nil queue gives a nil channel, which never delivers
func (q *Queue) Chan() <-chan Message {
	if nil == q {
		return nil
	}
	return q.queue
}

// Dropped - number of events discarded because the queue was full
func (q *Queue) Dropped() uint64 {
	if nil == q {
		return 0
	}
	return atomic.LoadUint64(&q.dropped)
}
