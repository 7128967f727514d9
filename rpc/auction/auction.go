// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auction

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/auctiond/account"
	"github.com/bitmark-inc/auctiond/fault"
	"github.com/bitmark-inc/auctiond/rpc/ratelimit"
)

const (
	rateLimitAuction = 200
	rateBurstAuction = 100
)

// Ledger - the auction operations served
//
//go:generate mockgen -source=auction.go -destination=../mocks/auction.go -package=mocks -mock_names=Ledger=MockAuctionLedger
type Ledger interface {
	Create(owner *account.Account, title string, description string, startPrice uint64) (uint64, error)
	PlaceBid(caller *account.Account, key uint64, amount uint64) error
	WithdrawBid(caller *account.Account, key uint64) error
	IncreaseBid(caller *account.Account, key uint64, amount uint64) error
	EndAuction(caller *account.Account, key uint64) error
}

// Auction - type for the RPC
type Auction struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  Ledger
}

// New - create the auction RPC
func New(log *logger.L, ledger Ledger) *Auction {
	return &Auction{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitAuction, rateBurstAuction),
		Ledger:  ledger,
	}
}

// ---

// CreateArguments - arguments for a new auction item
type CreateArguments struct {
	Caller      *account.Account `json:"caller"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	StartPrice  uint64           `json:"startPrice,string"`
}

// KeyReply - the key of the affected record
type KeyReply struct {
	Key uint64 `json:"key,string"`
}

// Create - list a new item for auction
func (auction *Auction) Create(arguments *CreateArguments, reply *KeyReply) error {
	if err := ratelimit.Limit(auction.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}

	auction.Log.Infof("create: %q  owner: %s", arguments.Title, arguments.Caller)

	key, err := auction.Ledger.Create(arguments.Caller, arguments.Title, arguments.Description, arguments.StartPrice)
	if nil != err {
		return err
	}
	reply.Key = key
	return nil
}

// ---

// BidArguments - an amount offered for an item
type BidArguments struct {
	Caller *account.Account `json:"caller"`
	Key    uint64           `json:"key,string"`
	Amount uint64           `json:"amount,string"`
}

// PlaceBid - become the highest bidder
func (auction *Auction) PlaceBid(arguments *BidArguments, reply *KeyReply) error {
	return auction.bid(arguments, reply, auction.Ledger.PlaceBid)
}

// IncreaseBid - raise the caller's own highest bid
func (auction *Auction) IncreaseBid(arguments *BidArguments, reply *KeyReply) error {
	return auction.bid(arguments, reply, auction.Ledger.IncreaseBid)
}

func (auction *Auction) bid(arguments *BidArguments, reply *KeyReply, f func(*account.Account, uint64, uint64) error) error {
	if err := ratelimit.Limit(auction.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}

	auction.Log.Debugf("bid: %d  amount: %d  caller: %s", arguments.Key, arguments.Amount, arguments.Caller)

	if err := f(arguments.Caller, arguments.Key, arguments.Amount); nil != err {
		return err
	}
	reply.Key = arguments.Key
	return nil
}

// ---

// KeyArguments - a caller acting on one item
type KeyArguments struct {
	Caller *account.Account `json:"caller"`
	Key    uint64           `json:"key,string"`
}

// WithdrawBid - give up the highest bid
func (auction *Auction) WithdrawBid(arguments *KeyArguments, reply *KeyReply) error {
	return auction.act(arguments, reply, auction.Ledger.WithdrawBid)
}

// End - close the auction and hand the item to the highest bidder
func (auction *Auction) End(arguments *KeyArguments, reply *KeyReply) error {
	return auction.act(arguments, reply, auction.Ledger.EndAuction)
}

func (auction *Auction) act(arguments *KeyArguments, reply *KeyReply, f func(*account.Account, uint64) error) error {
	if err := ratelimit.Limit(auction.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}

	if err := f(arguments.Caller, arguments.Key); nil != err {
		return err
	}
	reply.Key = arguments.Key
	return nil
}
