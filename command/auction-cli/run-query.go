// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/urfave/cli"
)

func runShow(c *cli.Context) error {

	m := getMetadata(c)

	kind := strings.ToLower(c.Args().First())
	if "" == kind {
		return ErrMissingKind
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

	var reply interface{}
	switch kind {
	case "proposal", "p":
		reply, err = client.GetProposal(key)
	case "auction", "a":
		reply, err = client.GetAuctionItem(key)
	case "item", "i":
		reply, err = client.GetItem(key)
	case "bid", "b":
		reply, err = client.GetBid(key)
	default:
		return ErrUnknownKind
	}
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runMostBidded(c *cli.Context) error {

	m := getMetadata(c)

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetMostBidded()
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runList(c *cli.Context) error {

	m := getMetadata(c)

	kind := strings.ToLower(c.Args().First())
	if "" == kind {
		return ErrMissingKind
	}
	start := c.Uint64("start")
	count := c.Int("count")

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	var reply interface{}
	switch kind {
	case "proposals", "p":
		reply, err = client.ListProposals(start, count)
	case "auctions", "a":
		reply, err = client.ListAuctionItems(start, count)
	case "items", "i":
		reply, err = client.ListItems(start, count)
	default:
		return ErrUnknownKind
	}
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
