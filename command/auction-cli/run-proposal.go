// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/auctiond/fault"
	"github.com/bitmark-inc/auctiond/records"
)

func runCreateProposal(c *cli.Context) error {

	m := getMetadata(c)

	caller, err := m.requireCaller()
	if nil != err {
		return err
	}

	description := c.String("description")
	if "" == description {
		return fault.MissingParameters
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	key, err := client.CreateProposal(caller, description)
	if nil != err {
		return err
	}

	return printJson(m.w, keyReply{Key: key})
}

func runVote(c *cli.Context) error {

	m := getMetadata(c)

	caller, err := m.requireCaller()
	if nil != err {
		return err
	}
	key, err := getKey(c)
	if nil != err {
		return err
	}

	var choice records.Choice
	if err := choice.UnmarshalText([]byte(c.String("choice"))); nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	if err := client.Vote(caller, key, choice); nil != err {
		return err
	}

	return printJson(m.w, okReply{OK: true})
}

func runCloseProposal(c *cli.Context) error {

	m := getMetadata(c)

	caller, err := m.requireCaller()
	if nil != err {
		return err
	}
	key, err := getKey(c)
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	if err := client.CloseProposal(caller, key); nil != err {
		return err
	}

	return printJson(m.w, okReply{OK: true})
}
