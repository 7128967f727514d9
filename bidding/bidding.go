// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bidding - bids backed by a payment transfer
//
// two kinds of target are supported: auction items, where each paid
// bid is stored in the Bids pool, and items, which keep the paid bids
// as their own history
package bidding

import (
	"context"
	"time"

	"github.com/bitmark-inc/auctiond/account"
	"github.com/bitmark-inc/auctiond/auction"
	"github.com/bitmark-inc/auctiond/fault"
	"github.com/bitmark-inc/auctiond/messagebus"
	"github.com/bitmark-inc/auctiond/records"
	"github.com/bitmark-inc/auctiond/storage"
	"github.com/bitmark-inc/logger"
)

// DefaultTimeout - limit on each payment call
const DefaultTimeout = 10 * time.Second

// event names
const (
	EventBidCreated = "bid.created"
	EventItemCreate = "item.create"
	EventItemBid    = "item.bid"
	EventItemClose  = "item.close"
)

// Details - the caller supplied part of a bid
type Details struct {
	Description string `json:"description"`
	Currency    string `json:"currency"`
	Amount      uint64 `json:"amount"`
}

// ItemDetails - the caller supplied part of an item
type ItemDetails struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Currency    string `json:"currency"`
	Amount      uint64 `json:"amount"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

// Ledger - the only writer of the Bids and Items pools
type Ledger struct {
	log      *logger.L
	auctions *auction.Ledger
	bids     *storage.Map[*records.Bid]
	items    *storage.Map[*records.Item]
	locks    storage.KeyLock
	payer    Payer
	timeout  time.Duration
	bus      *messagebus.Queue
}

// New - create a bid ledger
//
// a zero timeout selects DefaultTimeout
func New(
	log *logger.L,
	auctions *auction.Ledger,
	bids *storage.Map[*records.Bid],
	items *storage.Map[*records.Item],
	payer Payer,
	timeout time.Duration,
	bus *messagebus.Queue,
) *Ledger {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Ledger{
		log:      log,
		auctions: auctions,
		bids:     bids,
		items:    items,
		payer:    payer,
		timeout:  timeout,
		bus:      bus,
	}
}

// CreateBid - take payment then record a bid against an auction item
//
// the auction item is checked before payment and again, under its
// lock, before the bid is written; a failure after payment refunds it
func (l *Ledger) CreateBid(caller *account.Account, auctionKey uint64, details Details) (uint64, error) {
	bid := &records.Bid{
		Description: details.Description,
		Auction:     auctionKey,
		Owner:       caller,
		Currency:    details.Currency,
		Amount:      details.Amount,
		IsActive:    true,
	}
	if _, err := bid.Pack(); nil != err {
		return 0, err
	}

	err := l.auctions.WithActive(auctionKey, func(*records.AuctionItem) error { return nil })
	if nil != err {
		return 0, bidFamily(err)
	}

	err = l.pay(caller, details.Currency, details.Amount)
	if nil != err {
		return 0, err
	}

	key := uint64(0)
	err = l.auctions.WithActive(auctionKey, func(*records.AuctionItem) error {
		var err error
		key, err = l.bids.Append(bid)
		if nil != err {
			return fault.Update(fault.BidUpdateError, err)
		}
		return nil
	})
	if nil != err {
		l.log.Warnf("create bid on: %d  failed after payment: %s", auctionKey, err)
		l.refund(caller, details.Currency, details.Amount)
		return 0, bidFamily(err)
	}

	l.log.Infof("bid: %d  auction: %d  owner: %s  amount: %d %s", key, auctionKey, caller, details.Amount, details.Currency)
	l.bus.Send(EventBidCreated, key, bid)
	return key, nil
}

// CreateItem - add a new active item owned by the caller
func (l *Ledger) CreateItem(caller *account.Account, details ItemDetails) (uint64, error) {
	item := &records.Item{
		Title:       details.Title,
		Description: details.Description,
		Owner:       caller,
		Currency:    details.Currency,
		Amount:      details.Amount,
		IsActive:    true,
		StartTime:   details.StartTime,
		EndTime:     details.EndTime,
		Bids:        []records.Bid{},
	}
	if _, err := item.Pack(); nil != err {
		return 0, err
	}

	key, err := l.items.Append(item)
	if nil != err {
		l.log.Errorf("create item: %q  error: %s", details.Title, err)
		return 0, fault.Update(fault.AuctionUpdateError, err)
	}

	l.log.Infof("item: %d  owner: %s  amount: %d %s", key, caller, details.Amount, details.Currency)
	l.bus.Send(EventItemCreate, key, item)
	return key, nil
}

// PlaceItemBid - take payment then append a bid above the current
// amount to an item's history
func (l *Ledger) PlaceItemBid(caller *account.Account, key uint64, details Details) error {
	bid := records.Bid{
		Description: details.Description,
		Auction:     key,
		Owner:       caller,
		Currency:    details.Currency,
		Amount:      details.Amount,
		IsActive:    true,
	}
	if _, err := bid.Pack(); nil != err {
		return err
	}

	err := l.withItem(key, func(item *records.Item) error {
		return acceptable(item, &bid)
	})
	if nil != err {
		return err
	}

	err = l.pay(caller, details.Currency, details.Amount)
	if nil != err {
		return err
	}

	var stored *records.Item
	err = l.withItem(key, func(item *records.Item) error {
		if err := acceptable(item, &bid); nil != err {
			return err
		}
		item.Bids = append(item.Bids, bid)
		item.Amount = bid.Amount
		if _, err := l.items.Insert(key, item); nil != err {
			return fault.Update(fault.BidUpdateError, err)
		}
		stored = item
		return nil
	})
	if nil != err {
		l.log.Warnf("item bid on: %d  failed after payment: %s", key, err)
		l.refund(caller, details.Currency, details.Amount)
		return err
	}

	l.log.Infof("item: %d  bid: %d  owner: %s", key, details.Amount, caller)
	l.bus.Send(EventItemBid, key, stored)
	return nil
}

// CloseItem - the owner ends bidding; the last bidder becomes the new
// owner and every earlier bid is refunded
func (l *Ledger) CloseItem(caller *account.Account, key uint64) error {
	var stored *records.Item
	var outbid []records.Bid

	err := l.withItemAny(key, func(item *records.Item) error {
		if !item.Owner.Equal(caller) {
			return fault.AuctionAccessRejected
		}
		if !item.IsActive {
			return fault.AuctionIsNotActive
		}
		last, ok := item.LastBid()
		if !ok {
			return fault.AuctionNoBids
		}

		item.IsActive = false
		item.NewOwner = last.Owner
		n := len(item.Bids) - 1
		for i := 0; i < n; i += 1 {
			if item.Bids[i].IsActive {
				item.Bids[i].IsActive = false
				outbid = append(outbid, item.Bids[i])
			}
		}

		if _, err := l.items.Insert(key, item); nil != err {
			outbid = nil
			return fault.Update(fault.AuctionUpdateError, err)
		}
		stored = item
		return nil
	})
	if nil != err {
		return err
	}

	for _, b := range outbid {
		l.refund(b.Owner, b.Currency, b.Amount)
	}

	l.log.Infof("item: %d  closed  new owner: %s", key, stored.NewOwner)
	l.bus.Send(EventItemClose, key, stored)
	return nil
}

// item must be active and the bid must beat the current amount in the
// item's currency
func acceptable(item *records.Item, bid *records.Bid) error {
	if !item.IsActive {
		return fault.BidAuctionIsNotActive
	}
	if bid.Currency != item.Currency {
		return fault.InvalidCurrency
	}
	if bid.Amount <= item.Amount {
		return fault.BidAmountLessThanCurrent
	}
	return nil
}

// run f on an existing item under its key lock
func (l *Ledger) withItem(key uint64, f func(item *records.Item) error) error {
	l.locks.Lock(key)
	defer l.locks.Unlock(key)

	item, found := l.items.Get(key)
	if !found {
		return fault.BidNoSuchAuction
	}
	return f(item)
}

// as withItem, reporting a missing item in the auction family
func (l *Ledger) withItemAny(key uint64, f func(item *records.Item) error) error {
	err := l.withItem(key, f)
	if fault.BidNoSuchAuction == err {
		return fault.NoSuchAuction
	}
	return err
}

// check the balance and move the amount to escrow
func (l *Ledger) pay(caller *account.Account, currency string, amount uint64) error {
	balance := uint64(0)
	err := l.call(func(ctx context.Context) error {
		var err error
		balance, err = l.payer.Balance(ctx, caller, currency)
		return err
	})
	if nil != err {
		l.log.Errorf("balance: %s  error: %s", caller, err)
		return fault.TransferError
	}
	if balance < amount {
		return fault.NotEnoughFunds
	}

	err = l.call(func(ctx context.Context) error {
		return l.payer.TransferToSelf(ctx, caller, currency, amount)
	})
	if nil != err {
		l.log.Errorf("transfer: %s  amount: %d %s  error: %s", caller, amount, currency, err)
		return fault.TransferError
	}
	return nil
}

// return escrowed funds; a failure here can only be logged
func (l *Ledger) refund(owner *account.Account, currency string, amount uint64) {
	err := l.call(func(ctx context.Context) error {
		return l.payer.Refund(ctx, owner, currency, amount)
	})
	if nil != err {
		l.log.Criticalf("refund: %s  amount: %d %s  error: %s", owner, amount, currency, err)
	}
}

// one payment call bounded by the ledger timeout
//
// a call still running at the deadline is reported as
// context.DeadlineExceeded
func (l *Ledger) call(f func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- f(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// map auction precondition failures to their bid equivalents
func bidFamily(err error) error {
	switch err {
	case fault.NoSuchAuction:
		return fault.BidNoSuchAuction
	case fault.AuctionIsNotActive:
		return fault.BidAuctionIsNotActive
	default:
		return err
	}
}
