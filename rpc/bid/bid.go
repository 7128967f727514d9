// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bid - RPC for payment backed bids and items
package bid

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/auctiond/account"
	"github.com/bitmark-inc/auctiond/bidding"
	"github.com/bitmark-inc/auctiond/fault"
	"github.com/bitmark-inc/auctiond/rpc/ratelimit"
)

// payment calls are slow so the rate is lower than for other services
const (
	rateLimitBid = 50
	rateBurstBid = 20
)

// Ledger - the payment backed operations served
type Ledger interface {
	CreateBid(caller *account.Account, auctionKey uint64, details bidding.Details) (uint64, error)
	CreateItem(caller *account.Account, details bidding.ItemDetails) (uint64, error)
	PlaceItemBid(caller *account.Account, key uint64, details bidding.Details) error
	CloseItem(caller *account.Account, key uint64) error
}

// KeyReply - the key of the affected record
type KeyReply struct {
	Key uint64 `json:"key,string"`
}

// Bid - type for the RPC
type Bid struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  Ledger
}

// NewBid - create the bid RPC
func NewBid(log *logger.L, ledger Ledger) *Bid {
	return &Bid{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitBid, rateBurstBid),
		Ledger:  ledger,
	}
}

// CreateArguments - a paid bid on an auction item
type CreateArguments struct {
	Caller  *account.Account `json:"caller"`
	Auction uint64           `json:"auction,string"`
	Details bidding.Details  `json:"details"`
}

// Create - pay for and record a bid
func (bid *Bid) Create(arguments *CreateArguments, reply *KeyReply) error {
	if err := ratelimit.Limit(bid.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}

	bid.Log.Infof("create bid on: %d  amount: %d %s  caller: %s", arguments.Auction, arguments.Details.Amount, arguments.Details.Currency, arguments.Caller)

	key, err := bid.Ledger.CreateBid(arguments.Caller, arguments.Auction, arguments.Details)
	if nil != err {
		return err
	}
	reply.Key = key
	return nil
}

// Item - type for the RPC
type Item struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  Ledger
}

// NewItem - create the item RPC
func NewItem(log *logger.L, ledger Ledger) *Item {
	return &Item{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitBid, rateBurstBid),
		Ledger:  ledger,
	}
}

// ItemCreateArguments - a new item
type ItemCreateArguments struct {
	Caller  *account.Account    `json:"caller"`
	Details bidding.ItemDetails `json:"details"`
}

// Create - list a new item
func (item *Item) Create(arguments *ItemCreateArguments, reply *KeyReply) error {
	if err := ratelimit.Limit(item.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}

	key, err := item.Ledger.CreateItem(arguments.Caller, arguments.Details)
	if nil != err {
		return err
	}
	reply.Key = key
	return nil
}

// BidArguments - a paid bid on an item
type BidArguments struct {
	Caller  *account.Account `json:"caller"`
	Key     uint64           `json:"key,string"`
	Details bidding.Details  `json:"details"`
}

// Bid - pay for and append a bid to an item's history
func (item *Item) Bid(arguments *BidArguments, reply *KeyReply) error {
	if err := ratelimit.Limit(item.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}

	if err := item.Ledger.PlaceItemBid(arguments.Caller, arguments.Key, arguments.Details); nil != err {
		return err
	}
	reply.Key = arguments.Key
	return nil
}

// CloseArguments - owner closing an item
type CloseArguments struct {
	Caller *account.Account `json:"caller"`
	Key    uint64           `json:"key,string"`
}

// Close - close the item and assign its new owner
func (item *Item) Close(arguments *CloseArguments, reply *KeyReply) error {
	if err := ratelimit.Limit(item.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}

	if err := item.Ledger.CloseItem(arguments.Caller, arguments.Key); nil != err {
		return err
	}
	reply.Key = arguments.Key
	return nil
}
