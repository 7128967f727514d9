// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/auctiond/account"
	"github.com/bitmark-inc/auctiond/bidding"
	"github.com/bitmark-inc/auctiond/rpc/bid"
)

// CreateBid - pay for and record a bid against an auction item
func (c *Client) CreateBid(caller *account.Account, auctionKey uint64, details bidding.Details) (uint64, error) {
	arguments := bid.CreateArguments{
		Caller:  caller,
		Auction: auctionKey,
		Details: details,
	}
	var reply bid.KeyReply
	if err := c.call("Bid.Create", arguments, &reply); nil != err {
		return 0, err
	}
	return reply.Key, nil
}

// CreateItem - list an item for payment backed bidding
func (c *Client) CreateItem(caller *account.Account, details bidding.ItemDetails) (uint64, error) {
	arguments := bid.ItemCreateArguments{
		Caller:  caller,
		Details: details,
	}
	var reply bid.KeyReply
	if err := c.call("Item.Create", arguments, &reply); nil != err {
		return 0, err
	}
	return reply.Key, nil
}

// BidOnItem - pay for and place a bid on an item
func (c *Client) BidOnItem(caller *account.Account, key uint64, details bidding.Details) error {
	arguments := bid.BidArguments{
		Caller:  caller,
		Key:     key,
		Details: details,
	}
	var reply bid.KeyReply
	return c.call("Item.Bid", arguments, &reply)
}

// CloseItem - close an item and assign its new owner
func (c *Client) CloseItem(caller *account.Account, key uint64) error {
	arguments := bid.CloseArguments{
		Caller: caller,
		Key:    key,
	}
	var reply bid.KeyReply
	return c.call("Item.Close", arguments, &reply)
}
