// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/auctiond/account"
	"github.com/bitmark-inc/auctiond/rpc/auction"
)

// AuctionData - the parameters for a new auction item
type AuctionData struct {
	Caller      *account.Account
	Title       string
	Description string
	StartPrice  uint64
}

// CreateAuction - open an auction item owned by the caller
func (c *Client) CreateAuction(data *AuctionData) (uint64, error) {
	arguments := auction.CreateArguments{
		Caller:      data.Caller,
		Title:       data.Title,
		Description: data.Description,
		StartPrice:  data.StartPrice,
	}
	var reply auction.KeyReply
	if err := c.call("Auction.Create", arguments, &reply); nil != err {
		return 0, err
	}
	return reply.Key, nil
}

// PlaceBid - bid on an auction item
func (c *Client) PlaceBid(caller *account.Account, key uint64, amount uint64) error {
	return c.auctionBid("Auction.PlaceBid", caller, key, amount)
}

// IncreaseBid - raise the caller's winning bid
func (c *Client) IncreaseBid(caller *account.Account, key uint64, amount uint64) error {
	return c.auctionBid("Auction.IncreaseBid", caller, key, amount)
}

// WithdrawBid - retract the caller's winning bid
func (c *Client) WithdrawBid(caller *account.Account, key uint64) error {
	return c.auctionKey("Auction.WithdrawBid", caller, key)
}

// EndAuction - close an auction item
func (c *Client) EndAuction(caller *account.Account, key uint64) error {
	return c.auctionKey("Auction.End", caller, key)
}

func (c *Client) auctionBid(method string, caller *account.Account, key uint64, amount uint64) error {
	arguments := auction.BidArguments{
		Caller: caller,
		Key:    key,
		Amount: amount,
	}
	var reply auction.KeyReply
	return c.call(method, arguments, &reply)
}

func (c *Client) auctionKey(method string, caller *account.Account, key uint64) error {
	arguments := auction.KeyArguments{
		Caller: caller,
		Key:    key,
	}
	var reply auction.KeyReply
	return c.call(method, arguments, &reply)
}
