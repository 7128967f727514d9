// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/auctiond/account"
	"github.com/bitmark-inc/auctiond/rpc/payment"
)

// Deposit - credit an escrow balance
func (c *Client) Deposit(owner *account.Account, currency string, amount uint64) (*payment.BalanceReply, error) {
	arguments := payment.DepositArguments{
		Owner:    owner,
		Currency: currency,
		Amount:   amount,
	}
	var reply payment.BalanceReply
	if err := c.call("Payment.Deposit", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetBalance - read an escrow balance
func (c *Client) GetBalance(owner *account.Account, currency string) (*payment.BalanceReply, error) {
	arguments := payment.BalanceArguments{
		Owner:    owner,
		Currency: currency,
	}
	var reply payment.BalanceReply
	if err := c.call("Payment.Balance", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
