// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/auctiond/fault"
	"github.com/bitmark-inc/auctiond/fixtures"
)

func run(t *testing.T, arguments ...string) (string, error) {
	t.Setenv("AUCTION_CLI_CONNECT", "")
	t.Setenv("AUCTION_CLI_CALLER", "")

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"auction-cli", "--connect", "127.0.0.1:1"}, arguments...))
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	assert.Nil(t, err, "version")
	assert.Equal(t, version+"\n", out, "output")
}

func TestArgumentChecks(t *testing.T) {
	caller := fixtures.Voter.String()

	tests := []struct {
		arguments []string
		err       error
	}{
		{[]string{"vote", "--key", "1", "--choice", "approve"}, ErrMissingCaller},
		{[]string{"--caller", caller, "vote", "--choice", "approve"}, ErrMissingKey},
		{[]string{"--caller", caller, "vote", "--key", "1", "--choice", "maybe"}, fault.InvalidChoice},
		{[]string{"--caller", caller, "create-proposal"}, fault.MissingParameters},
		{[]string{"--caller", caller, "bid", "--key", "3"}, ErrMissingAmount},
		{[]string{"--caller", caller, "paid-bid", "--key", "3", "--amount", "5"}, ErrMissingCurrency},
		{[]string{"--caller", caller, "create-auction"}, fault.MissingParameters},
		{[]string{"deposit", "--currency", "BTC", "--amount", "5"}, ErrMissingCaller},
		{[]string{"show", "--key", "1"}, ErrMissingKind},
	}

	for i, item := range tests {
		_, err := run(t, item.arguments...)
		assert.Equal(t, item.err, err, "%d: %v", i, item.arguments)
	}
}

func TestInvalidCaller(t *testing.T) {
	_, err := run(t, "--caller", "not-an-account", "info")
	assert.NotNil(t, err, "invalid caller accepted")
}
