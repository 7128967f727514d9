// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/auctiond/bidding"
	"github.com/bitmark-inc/auctiond/fault"
)

func getDetails(c *cli.Context) (bidding.Details, error) {
	details := bidding.Details{
		Description: c.String("description"),
		Currency:    c.String("currency"),
		Amount:      c.Uint64("amount"),
	}
	if "" == details.Currency {
		return details, ErrMissingCurrency
	}
	if 0 == details.Amount {
		return details, ErrMissingAmount
	}
	return details, nil
}

func runPaidBid(c *cli.Context) error {

	m := getMetadata(c)

	caller, err := m.requireCaller()
	if nil != err {
		return err
	}
	key, err := getKey(c)
	if nil != err {
		return err
	}
	details, err := getDetails(c)
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	bidKey, err := client.CreateBid(caller, key, details)
	if nil != err {
		return err
	}

	return printJson(m.w, keyReply{Key: bidKey})
}

func runCreateItem(c *cli.Context) error {

	m := getMetadata(c)

	caller, err := m.requireCaller()
	if nil != err {
		return err
	}

	details := bidding.ItemDetails{
		Title:       c.String("title"),
		Description: c.String("description"),
		Currency:    c.String("currency"),
		Amount:      c.Uint64("amount"),
		StartTime:   c.String("start-time"),
		EndTime:     c.String("end-time"),
	}
	if "" == details.Title {
		return fault.MissingParameters
	}
	if "" == details.Currency {
		return ErrMissingCurrency
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	key, err := client.CreateItem(caller, details)
	if nil != err {
		return err
	}

	return printJson(m.w, keyReply{Key: key})
}

func runItemBid(c *cli.Context) error {

	m := getMetadata(c)

	caller, err := m.requireCaller()
	if nil != err {
		return err
	}
	key, err := getKey(c)
	if nil != err {
		return err
	}
	details, err := getDetails(c)
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	if err := client.BidOnItem(caller, key, details); nil != err {
		return err
	}

	return printJson(m.w, okReply{OK: true})
}

func runCloseItem(c *cli.Context) error {

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

	if err := client.CloseItem(caller, key); nil != err {
		return err
	}

	return printJson(m.w, okReply{OK: true})
}
