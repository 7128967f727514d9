// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package query - read only projections over the record pools
package query

import (
	"errors"

	"github.com/bitmark-inc/auctiond/fault"
	"github.com/bitmark-inc/auctiond/records"
	"github.com/bitmark-inc/auctiond/storage"
)

// Maps - the pools a query may read
type Maps struct {
	Proposals    *storage.Map[*records.Proposal]
	AuctionItems *storage.Map[*records.AuctionItem]
	Items        *storage.Map[*records.Item]
	Bids         *storage.Map[*records.Bid]
}

// Queries - the read side of the ledgers
type Queries struct {
	maps Maps
}

// New - create the query layer
func New(maps Maps) *Queries {
	return &Queries{
		maps: maps,
	}
}

// GetProposal - fetch one proposal
func (q *Queries) GetProposal(key uint64) (*records.Proposal, error) {
	p, found := q.maps.Proposals.Get(key)
	if !found {
		return nil, fault.NoSuchProposal
	}
	return p, nil
}

// GetAuctionItem - fetch one auction item
func (q *Queries) GetAuctionItem(key uint64) (*records.AuctionItem, error) {
	item, found := q.maps.AuctionItems.Get(key)
	if !found {
		return nil, fault.NoSuchAuction
	}
	return item, nil
}

// GetItem - fetch one item with its bid history
func (q *Queries) GetItem(key uint64) (*records.Item, error) {
	item, found := q.maps.Items.Get(key)
	if !found {
		return nil, fault.NoSuchAuction
	}
	return item, nil
}

// GetBid - fetch one payment backed bid
func (q *Queries) GetBid(key uint64) (*records.Bid, error) {
	bid, found := q.maps.Bids.Get(key)
	if !found {
		return nil, fault.NoSuchBid
	}
	return bid, nil
}

// AuctionItemCount - number of auction items, active or not
func (q *Queries) AuctionItemCount() int {
	return q.maps.AuctionItems.Len()
}

var errFound = errors.New("found")

// FindMostBiddedItem - the first active auction item, in ascending key
// order, that currently holds a bid
func (q *Queries) FindMostBiddedItem() (storage.Keyed[*records.AuctionItem], bool) {
	result := storage.Keyed[*records.AuctionItem]{}
	err := q.maps.AuctionItems.Iterate(func(key uint64, item *records.AuctionItem) error {
		if item.IsActive && item.HasBidder() {
			result.Key = key
			result.Record = item
			return errFound
		}
		return nil
	})
	return result, errFound == err
}

// ListAuctionItems - a page of auction items starting at a key
func (q *Queries) ListAuctionItems(start uint64, count int) ([]storage.Keyed[*records.AuctionItem], uint64, error) {
	return q.maps.AuctionItems.List(start, count)
}

// ListProposals - a page of proposals starting at a key
func (q *Queries) ListProposals(start uint64, count int) ([]storage.Keyed[*records.Proposal], uint64, error) {
	return q.maps.Proposals.List(start, count)
}

// ListItems - a page of items starting at a key
func (q *Queries) ListItems(start uint64, count int) ([]storage.Keyed[*records.Item], uint64, error) {
	return q.maps.Items.List(start, count)
}
