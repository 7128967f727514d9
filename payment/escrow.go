// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package payment - a local escrow ledger that backs bids
//
// balances are kept per currency and owner in the Balances pool;
// funds taken for a bid are held under the escrow entry of the
// currency until refunded
package payment

import (
	"context"
	"sync"
	"unicode/utf8"

	"github.com/bitmark-inc/auctiond/account"
	"github.com/bitmark-inc/auctiond/fault"
	"github.com/bitmark-inc/auctiond/storage"
	"github.com/bitmark-inc/logger"
)

const maxCurrencyLength = 16

// key of the escrow holding for a currency
var escrowOwner = []byte("*escrow*")

// Escrow - balance store implementing bidding.Payer
type Escrow struct {
	sync.Mutex
	log   *logger.L
	store *storage.Store
	pool  *storage.PoolHandle
}

// New - create an escrow over the Balances pool
func New(log *logger.L, store *storage.Store) *Escrow {
	return &Escrow{
		log:   log,
		store: store,
		pool:  store.Pool.Balances,
	}
}

// C ++ currency ++ 0x00 ++ owner
func balanceKey(currency string, owner []byte) []byte {
	key := make([]byte, 0, len(currency)+1+len(owner))
	key = append(key, currency...)
	key = append(key, 0x00)
	return append(key, owner...)
}

func checkCurrency(currency string) error {
	n := utf8.RuneCountInString(currency)
	if 0 == n || n > maxCurrencyLength {
		return fault.InvalidCurrency
	}
	return nil
}

// Balance - current free balance of an owner
func (e *Escrow) Balance(ctx context.Context, owner *account.Account, currency string) (uint64, error) {
	if err := ctx.Err(); nil != err {
		return 0, err
	}
	if err := checkCurrency(currency); nil != err {
		return 0, err
	}
	if nil == owner {
		return 0, fault.InvalidOwner
	}
	balance, _ := e.pool.GetN(balanceKey(currency, owner.Bytes()))
	return balance, nil
}

// Held - total amount currently in escrow for a currency
func (e *Escrow) Held(currency string) uint64 {
	held, _ := e.pool.GetN(balanceKey(currency, escrowOwner))
	return held
}

// Deposit - credit an owner and return the new balance
func (e *Escrow) Deposit(owner *account.Account, currency string, amount uint64) (uint64, error) {
	if err := checkCurrency(currency); nil != err {
		return 0, err
	}
	if nil == owner {
		return 0, fault.InvalidOwner
	}

	e.Lock()
	defer e.Unlock()

	key := balanceKey(currency, owner.Bytes())
	balance, _ := e.pool.GetN(key)
	if balance+amount < balance {
		return 0, fault.InvalidCount
	}
	balance += amount

	batch := e.store.NewBatch()
	batch.PutN(e.pool, key, balance)
	if err := batch.Commit(); nil != err {
		return 0, err
	}

	e.log.Infof("deposit: %s  amount: %d %s  balance: %d", owner, amount, currency, balance)
	return balance, nil
}

// TransferToSelf - move funds from an owner into escrow
func (e *Escrow) TransferToSelf(ctx context.Context, owner *account.Account, currency string, amount uint64) error {
	if nil == owner {
		return fault.InvalidOwner
	}
	return e.move(ctx, currency, owner.Bytes(), escrowOwner, amount)
}

// Refund - return escrowed funds to an owner
func (e *Escrow) Refund(ctx context.Context, owner *account.Account, currency string, amount uint64) error {
	if nil == owner {
		return fault.InvalidOwner
	}
	return e.move(ctx, currency, escrowOwner, owner.Bytes(), amount)
}

// debit one entry and credit another in a single batch
func (e *Escrow) move(ctx context.Context, currency string, from []byte, to []byte, amount uint64) error {
	if err := checkCurrency(currency); nil != err {
		return err
	}

	e.Lock()
	defer e.Unlock()

	if err := ctx.Err(); nil != err {
		return err
	}

	fromKey := balanceKey(currency, from)
	toKey := balanceKey(currency, to)

	fromBalance, _ := e.pool.GetN(fromKey)
	if fromBalance < amount {
		return fault.InsufficientFunds
	}
	toBalance, _ := e.pool.GetN(toKey)

	batch := e.store.NewBatch()
	batch.PutN(e.pool, fromKey, fromBalance-amount)
	batch.PutN(e.pool, toKey, toBalance+amount)
	err := batch.Commit()
	if nil != err {
		e.log.Errorf("move: %d %s  error: %s", amount, currency, err)
		return err
	}
	e.log.Debugf("moved: %d %s", amount, currency)
	return nil
}
