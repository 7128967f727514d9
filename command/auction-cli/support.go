// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/auctiond/account"
	"github.com/bitmark-inc/auctiond/command/auction-cli/rpccalls"
)

func getMetadata(c *cli.Context) *metadata {
	return c.App.Metadata["config"].(*metadata)
}

func (m *metadata) client() (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.verbose, m.e)
}

func (m *metadata) requireCaller() (*account.Account, error) {
	if nil == m.caller {
		return nil, ErrMissingCaller
	}
	return m.caller, nil
}

func getKey(c *cli.Context) (uint64, error) {
	key := c.Uint64("key")
	if 0 == key {
		return 0, ErrMissingKey
	}
	return key, nil
}

// an explicit owner or else the caller
func getOwner(c *cli.Context, m *metadata) (*account.Account, error) {
	if s := c.String("owner"); "" != s {
		return account.FromBase58(s)
	}
	return m.requireCaller()
}

// key of the new record
type keyReply struct {
	Key uint64 `json:"key,string"`
}

type okReply struct {
	OK bool `json:"ok"`
}
