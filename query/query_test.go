// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/auctiond/fault"
	"github.com/bitmark-inc/auctiond/fixtures"
	"github.com/bitmark-inc/auctiond/query"
	"github.com/bitmark-inc/auctiond/records"
	"github.com/bitmark-inc/auctiond/storage"
)

func setup(t *testing.T) (*query.Queries, query.Maps, *storage.Store) {
	fixtures.SetupTestLogger()
	store, err := storage.Open(filepath.Join(t.TempDir(), "query.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	maps := query.Maps{
		Proposals:    storage.NewMap[*records.Proposal](store, store.Pool.Proposals),
		AuctionItems: storage.NewMap[*records.AuctionItem](store, store.Pool.AuctionItems),
		Items:        storage.NewMap[*records.Item](store, store.Pool.Items),
		Bids:         storage.NewMap[*records.Bid](store, store.Pool.Bids),
	}
	return query.New(maps), maps, store
}

func teardown(store *storage.Store) {
	store.Close()
	fixtures.TeardownTestLogger()
}

func TestGetMissing(t *testing.T) {
	q, _, store := setup(t)
	defer teardown(store)

	_, err := q.GetProposal(1)
	assert.Equal(t, fault.NoSuchProposal, err, "proposal")
	_, err = q.GetAuctionItem(1)
	assert.Equal(t, fault.NoSuchAuction, err, "auction item")
	_, err = q.GetItem(1)
	assert.Equal(t, fault.NoSuchAuction, err, "item")
	_, err = q.GetBid(1)
	assert.Equal(t, fault.NoSuchBid, err, "bid")
	assert.Equal(t, 0, q.AuctionItemCount(), "count")
}

func TestFindMostBiddedItem(t *testing.T) {
	q, maps, store := setup(t)
	defer teardown(store)

	_, found := q.FindMostBiddedItem()
	assert.False(t, found, "empty pool")

	items := []*records.AuctionItem{
		{Title: "no bid", Owner: fixtures.Owner, IsActive: true},
		{Title: "closed", Owner: fixtures.BidderOne, CurrentHighestBidder: fixtures.BidderOne, CurrentHighestBid: 900},
		{Title: "first", Owner: fixtures.Owner, CurrentHighestBidder: fixtures.BidderOne, CurrentHighestBid: 5, IsActive: true},
		{Title: "second", Owner: fixtures.Owner, CurrentHighestBidder: fixtures.BidderTwo, CurrentHighestBid: 50, IsActive: true},
	}
	for i, item := range items {
		_, err := maps.AuctionItems.Insert(uint64(10+i), item)
		assert.Nil(t, err, "%d: insert", i)
	}

	result, found := q.FindMostBiddedItem()
	assert.True(t, found, "not found")
	assert.Equal(t, uint64(12), result.Key, "wrong key")
	assert.Equal(t, "first", result.Record.Title, "wrong item")
	assert.Equal(t, 4, q.AuctionItemCount(), "count")

	item, err := q.GetAuctionItem(13)
	assert.Nil(t, err, "get")
	assert.Equal(t, "second", item.Title, "get title")
}

func TestListAuctionItems(t *testing.T) {
	q, maps, store := setup(t)
	defer teardown(store)

	for i := 0; i < 3; i += 1 {
		_, _ = maps.AuctionItems.Append(&records.AuctionItem{Title: "item", Owner: fixtures.Owner, IsActive: true})
	}

	page, next, err := q.ListAuctionItems(2, 5)
	assert.Nil(t, err, "list")
	assert.Equal(t, 2, len(page), "page size")
	assert.Equal(t, uint64(2), page[0].Key, "first key")
	assert.Equal(t, uint64(0), next, "exhausted")
}
