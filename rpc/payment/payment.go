// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment

import (
	"context"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/auctiond/account"
	"github.com/bitmark-inc/auctiond/fault"
	"github.com/bitmark-inc/auctiond/payment"
	"github.com/bitmark-inc/auctiond/rpc/ratelimit"
)

const (
	rateLimitPayment = 100
	rateBurstPayment = 50

	balanceTimeout = 5 * time.Second
)

// Payment - type for the RPC
type Payment struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Escrow  *payment.Escrow
}

// New - create the payment RPC
func New(log *logger.L, escrow *payment.Escrow) *Payment {
	return &Payment{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitPayment, rateBurstPayment),
		Escrow:  escrow,
	}
}

// DepositArguments - funds added to an owner's balance
type DepositArguments struct {
	Owner    *account.Account `json:"owner"`
	Currency string           `json:"currency"`
	Amount   uint64           `json:"amount,string"`
}

// BalanceReply - an owner's balance in one currency
type BalanceReply struct {
	Currency string `json:"currency"`
	Balance  uint64 `json:"balance,string"`
}

// Deposit - credit an owner's balance
func (p *Payment) Deposit(arguments *DepositArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Owner || 0 == arguments.Amount {
		return fault.MissingParameters
	}

	p.Log.Infof("deposit: %d %s  owner: %s", arguments.Amount, arguments.Currency, arguments.Owner)

	balance, err := p.Escrow.Deposit(arguments.Owner, arguments.Currency, arguments.Amount)
	if nil != err {
		return err
	}
	reply.Currency = arguments.Currency
	reply.Balance = balance
	return nil
}

// BalanceArguments - balance enquiry
type BalanceArguments struct {
	Owner    *account.Account `json:"owner"`
	Currency string           `json:"currency"`
}

// Balance - read an owner's balance
func (p *Payment) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Owner {
		return fault.MissingParameters
	}

	ctx, cancel := context.WithTimeout(context.Background(), balanceTimeout)
	defer cancel()

	balance, err := p.Escrow.Balance(ctx, arguments.Owner, arguments.Currency)
	if nil != err {
		return err
	}
	reply.Currency = arguments.Currency
	reply.Balance = balance
	return nil
}
