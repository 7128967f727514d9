// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package auction - auction items that hold only the current highest bid
//
// an item is Active until its owner ends it, then Closed for good
package auction

import (
	"github.com/bitmark-inc/auctiond/account"
	"github.com/bitmark-inc/auctiond/fault"
	"github.com/bitmark-inc/auctiond/messagebus"
	"github.com/bitmark-inc/auctiond/records"
	"github.com/bitmark-inc/auctiond/storage"
	"github.com/bitmark-inc/logger"
)

// event names
const (
	EventCreate   = "auction.create"
	EventBid      = "auction.bid"
	EventWithdraw = "auction.withdraw"
	EventIncrease = "auction.increase"
	EventEnd      = "auction.end"
)

// Ledger - the only writer of the AuctionItems pool
type Ledger struct {
	log   *logger.L
	items *storage.Map[*records.AuctionItem]
	locks storage.KeyLock
	bus   *messagebus.Queue
}

// New - create an auction ledger over its pool
func New(log *logger.L, items *storage.Map[*records.AuctionItem], bus *messagebus.Queue) *Ledger {
	return &Ledger{
		log:   log,
		items: items,
		bus:   bus,
	}
}

// Create - add a new active item with the start price as its baseline
func (l *Ledger) Create(owner *account.Account, title string, description string, startPrice uint64) (uint64, error) {
	item := &records.AuctionItem{
		Title:             title,
		Description:       description,
		Owner:             owner,
		CurrentHighestBid: startPrice,
		StartPrice:        startPrice,
		IsActive:          true,
	}

	// field errors are reported as they are
	if _, err := item.Pack(); nil != err {
		return 0, err
	}

	key, err := l.items.Append(item)
	if nil != err {
		l.log.Errorf("create: %q  error: %s", title, err)
		return 0, fault.Update(fault.AuctionUpdateError, err)
	}

	l.log.Infof("created: %d  owner: %s  start price: %d", key, owner, startPrice)
	l.bus.Send(EventCreate, key, item)
	return key, nil
}

// PlaceBid - caller becomes the highest bidder at amount
func (l *Ledger) PlaceBid(caller *account.Account, key uint64, amount uint64) error {
	return l.update(key, EventBid, func(item *records.AuctionItem) error {
		if nil == caller {
			return fault.AuctionAccessRejected
		}
		if !item.IsActive {
			return fault.AuctionIsNotActive
		}
		if item.HasBidder() && item.CurrentHighestBidder.Equal(caller) {
			return fault.AlreadyHighestBidder
		}
		if amount <= item.CurrentHighestBid {
			return fault.BidAmountLessThanCurrent
		}
		item.CurrentHighestBidder = caller
		item.CurrentHighestBid = amount
		return nil
	})
}

// WithdrawBid - the highest bidder retracts, restoring the baseline
func (l *Ledger) WithdrawBid(caller *account.Account, key uint64) error {
	return l.update(key, EventWithdraw, func(item *records.AuctionItem) error {
		if nil == caller {
			return fault.AuctionAccessRejected
		}
		if !item.IsActive {
			return fault.AuctionIsNotActive
		}
		if !item.HasBidder() || !item.CurrentHighestBidder.Equal(caller) {
			return fault.NotBidder
		}
		item.CurrentHighestBidder = nil
		item.CurrentHighestBid = item.StartPrice
		return nil
	})
}

// IncreaseBid - the highest bidder raises their own bid
func (l *Ledger) IncreaseBid(caller *account.Account, key uint64, amount uint64) error {
	return l.update(key, EventIncrease, func(item *records.AuctionItem) error {
		if nil == caller {
			return fault.AuctionAccessRejected
		}
		if !item.IsActive {
			return fault.AuctionIsNotActive
		}
		if !item.HasBidder() || !item.CurrentHighestBidder.Equal(caller) {
			return fault.NotBidder
		}
		if amount <= item.CurrentHighestBid {
			return fault.BidAmountLessThanCurrent
		}
		item.CurrentHighestBid = amount
		return nil
	})
}

// EndAuction - the owner closes the item and ownership passes to the
// highest bidder
func (l *Ledger) EndAuction(caller *account.Account, key uint64) error {
	return l.update(key, EventEnd, func(item *records.AuctionItem) error {
		if nil == caller {
			return fault.AuctionAccessRejected
		}
		if !item.Owner.Equal(caller) {
			return fault.AuctionAccessRejected
		}
		if !item.IsActive {
			return fault.AuctionIsNotActive
		}
		if !item.HasBidder() {
			return fault.AuctionNoBids
		}
		item.IsActive = false
		item.Owner = item.CurrentHighestBidder
		return nil
	})
}

// WithActive - run f while holding the item lock, only if the item
// exists and is active
//
// f must not call back into the ledger for the same key
func (l *Ledger) WithActive(key uint64, f func(item *records.AuctionItem) error) error {
	l.locks.Lock(key)
	defer l.locks.Unlock(key)

	item, found := l.items.Get(key)
	if !found {
		return fault.NoSuchAuction
	}
	if !item.IsActive {
		return fault.AuctionIsNotActive
	}
	return f(item)
}

// read-modify-write of one item under its key lock
//
// nothing is written unless modify succeeds
func (l *Ledger) update(key uint64, event string, modify func(item *records.AuctionItem) error) error {
	l.locks.Lock(key)
	defer l.locks.Unlock(key)

	item, found := l.items.Get(key)
	if !found {
		return fault.NoSuchAuction
	}

	err := modify(item)
	if nil != err {
		l.log.Debugf("%s: %d  rejected: %s", event, key, err)
		return err
	}

	_, err = l.items.Insert(key, item)
	if nil != err {
		l.log.Errorf("%s: %d  write error: %s", event, key, err)
		return fault.Update(fault.AuctionUpdateError, err)
	}

	l.log.Infof("%s: %d  bid: %d  active: %t", event, key, item.CurrentHighestBid, item.IsActive)
	l.bus.Send(event, key, item)
	return nil
}
