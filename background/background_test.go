// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/auctiond/background"
)

type counter struct {
	initial int
	final   int
	count   int
}

func (state *counter) Run(args interface{}, shutdown <-chan struct{}) {
	t := args.(*testing.T)
	if state.initial != state.count {
		t.Errorf("unexpected initial count: %d", state.count)
	}

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		state.count += 9
		time.Sleep(time.Millisecond)
	}

	// test for the stop operation
	state.count = state.final
}

func TestBackground(t *testing.T) {
	proc1 := &counter{initial: 246, final: 987654321, count: 246}
	proc2 := &counter{initial: 777, final: 897645312, count: 777}

	p := background.Start(background.Processes{proc1, proc2}, t)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	assert.Equal(t, 987654321, proc1.count, "process 1 not stopped")
	assert.Equal(t, 897645312, proc2.count, "process 2 not stopped")

	// a second stop is harmless
	p.Stop()
}
