// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runDeposit(c *cli.Context) error {

	m := getMetadata(c)

	owner, err := getOwner(c, m)
	if nil != err {
		return err
	}
	currency := c.String("currency")
	if "" == currency {
		return ErrMissingCurrency
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

	reply, err := client.Deposit(owner, currency, amount)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runBalance(c *cli.Context) error {

	m := getMetadata(c)

	owner, err := getOwner(c, m)
	if nil != err {
		return err
	}
	currency := c.String("currency")
	if "" == currency {
		return ErrMissingCurrency
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetBalance(owner, currency)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
