// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/auctiond/account"
	"github.com/bitmark-inc/auctiond/command/auction-cli/rpccalls"
	"github.com/bitmark-inc/auctiond/fault"
)

func runCreateAuction(c *cli.Context) error {

	m := getMetadata(c)

	caller, err := m.requireCaller()
	if nil != err {
		return err
	}

	title := c.String("title")
	if "" == title {
		return fault.MissingParameters
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	key, err := client.CreateAuction(&rpccalls.AuctionData{
		Caller:      caller,
		Title:       title,
		Description: c.String("description"),
		StartPrice:  c.Uint64("start-price"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, keyReply{Key: key})
}

func runPlaceBid(c *cli.Context) error {
	return runAuctionBid(c, (*rpccalls.Client).PlaceBid)
}

func runIncreaseBid(c *cli.Context) error {
	return runAuctionBid(c, (*rpccalls.Client).IncreaseBid)
}

func runWithdrawBid(c *cli.Context) error {
	return runAuctionKey(c, (*rpccalls.Client).WithdrawBid)
}

func runEndAuction(c *cli.Context) error {
	return runAuctionKey(c, (*rpccalls.Client).EndAuction)
}

func runAuctionBid(c *cli.Context, f func(*rpccalls.Client, *account.Account, uint64, uint64) error) error {

	m := getMetadata(c)

	caller, err := m.requireCaller()
	if nil != err {
		return err
	}
	key, err := getKey(c)
	if nil != err {
		return err
	}
	amount := c.Uint64("amount")
	if 0 == amount {
		return ErrMissingAmount
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	if err := f(client, caller, key, amount); nil != err {
		return err
	}

	return printJson(m.w, okReply{OK: true})
}

func runAuctionKey(c *cli.Context, f func(*rpccalls.Client, *account.Account, uint64) error) error {

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

	if err := f(client, caller, key); nil != err {
		return err
	}

	return printJson(m.w, okReply{OK: true})
}
