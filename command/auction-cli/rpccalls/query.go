// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/auctiond/rpc/query"
)

// GetProposal - fetch one proposal
func (c *Client) GetProposal(key uint64) (*query.ProposalReply, error) {
	var reply query.ProposalReply
	if err := c.call("Query.Proposal", query.KeyArguments{Key: key}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetAuctionItem - fetch one auction item
func (c *Client) GetAuctionItem(key uint64) (*query.AuctionItemReply, error) {
	var reply query.AuctionItemReply
	if err := c.call("Query.AuctionItem", query.KeyArguments{Key: key}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetItem - fetch one item with its bid history
func (c *Client) GetItem(key uint64) (*query.ItemReply, error) {
	var reply query.ItemReply
	if err := c.call("Query.Item", query.KeyArguments{Key: key}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetBid - fetch one paid bid
func (c *Client) GetBid(key uint64) (*query.BidReply, error) {
	var reply query.BidReply
	if err := c.call("Query.Bid", query.KeyArguments{Key: key}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetMostBidded - the active auction item with the highest bid
func (c *Client) GetMostBidded() (*query.MostBiddedReply, error) {
	var reply query.MostBiddedReply
	if err := c.call("Query.MostBidded", query.EmptyArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ListAuctionItems - one page of auction items
func (c *Client) ListAuctionItems(start uint64, count int) (*query.ListAuctionItemsReply, error) {
	var reply query.ListAuctionItemsReply
	if err := c.call("Query.ListAuctionItems", query.ListArguments{Start: start, Count: count}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ListProposals - one page of proposals
func (c *Client) ListProposals(start uint64, count int) (*query.ListProposalsReply, error) {
	var reply query.ListProposalsReply
	if err := c.call("Query.ListProposals", query.ListArguments{Start: start, Count: count}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ListItems - one page of items
func (c *Client) ListItems(start uint64, count int) (*query.ListItemsReply, error) {
	var reply query.ListItemsReply
	if err := c.call("Query.ListItems", query.ListArguments{Start: start, Count: count}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
