// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/auctiond/query"
	"github.com/bitmark-inc/auctiond/records"
	"github.com/bitmark-inc/auctiond/rpc/ratelimit"
	"github.com/bitmark-inc/auctiond/storage"
)

const (
	rateLimitQuery = 500
	rateBurstQuery = 200

	// limit for count
	maximumList = 100
)

// Query - type for the RPC
type Query struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Queries *query.Queries
}

// New - create the query RPC
func New(log *logger.L, queries *query.Queries) *Query {
	return &Query{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitQuery, rateBurstQuery),
		Queries: queries,
	}
}

// KeyArguments - a single record
type KeyArguments struct {
	Key uint64 `json:"key,string"`
}

// EmptyArguments - no arguments
type EmptyArguments struct{}

// ---

// ProposalReply - result of a proposal read
type ProposalReply struct {
	Proposal *records.Proposal `json:"proposal"`
}

// Proposal - read one proposal
func (q *Query) Proposal(arguments *KeyArguments, reply *ProposalReply) error {
	if err := ratelimit.Limit(q.Limiter); nil != err {
		return err
	}
	p, err := q.Queries.GetProposal(arguments.Key)
	if nil != err {
		return err
	}
	reply.Proposal = p
	return nil
}

// AuctionItemReply - result of an auction item read
type AuctionItemReply struct {
	Item *records.AuctionItem `json:"item"`
}

// AuctionItem - read one auction item
func (q *Query) AuctionItem(arguments *KeyArguments, reply *AuctionItemReply) error {
	if err := ratelimit.Limit(q.Limiter); nil != err {
		return err
	}
	item, err := q.Queries.GetAuctionItem(arguments.Key)
	if nil != err {
		return err
	}
	reply.Item = item
	return nil
}

// ItemReply - result of an item read
type ItemReply struct {
	Item *records.Item `json:"item"`
}

// Item - read one item with its bid history
func (q *Query) Item(arguments *KeyArguments, reply *ItemReply) error {
	if err := ratelimit.Limit(q.Limiter); nil != err {
		return err
	}
	item, err := q.Queries.GetItem(arguments.Key)
	if nil != err {
		return err
	}
	reply.Item = item
	return nil
}

// BidReply - result of a bid read
type BidReply struct {
	Bid *records.Bid `json:"bid"`
}

// Bid - read one paid bid
func (q *Query) Bid(arguments *KeyArguments, reply *BidReply) error {
	if err := ratelimit.Limit(q.Limiter); nil != err {
		return err
	}
	bid, err := q.Queries.GetBid(arguments.Key)
	if nil != err {
		return err
	}
	reply.Bid = bid
	return nil
}

// ---

// CountReply - number of auction items
type CountReply struct {
	Count int `json:"count"`
}

// AuctionItemCount - number of auction items, active or not
func (q *Query) AuctionItemCount(_ *EmptyArguments, reply *CountReply) error {
	if err := ratelimit.Limit(q.Limiter); nil != err {
		return err
	}
	reply.Count = q.Queries.AuctionItemCount()
	return nil
}

// MostBiddedReply - the selected item if any
type MostBiddedReply struct {
	Found bool                 `json:"found"`
	Key   uint64               `json:"key,string"`
	Item  *records.AuctionItem `json:"item"`
}

// MostBidded - first active auction item holding a bid
func (q *Query) MostBidded(_ *EmptyArguments, reply *MostBiddedReply) error {
	if err := ratelimit.Limit(q.Limiter); nil != err {
		return err
	}
	result, found := q.Queries.FindMostBiddedItem()
	reply.Found = found
	if found {
		reply.Key = result.Key
		reply.Item = result.Record
	}
	return nil
}

// ---

// ListArguments - a page request
type ListArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// ListAuctionItemsReply - a page of auction items
//
// NextStart is zero when there are no more items
type ListAuctionItemsReply struct {
	Items     []storage.Keyed[*records.AuctionItem] `json:"items"`
	NextStart uint64                                `json:"nextStart,string"`
}

// ListAuctionItems - page through auction items by key
func (q *Query) ListAuctionItems(arguments *ListArguments, reply *ListAuctionItemsReply) error {
	if err := ratelimit.LimitN(q.Limiter, arguments.Count, maximumList); nil != err {
		return err
	}
	items, next, err := q.Queries.ListAuctionItems(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	reply.Items = items
	reply.NextStart = next
	return nil
}

// ListItemsReply - a page of items
type ListItemsReply struct {
	Items     []storage.Keyed[*records.Item] `json:"items"`
	NextStart uint64                         `json:"nextStart,string"`
}

// ListItems - page through items by key
func (q *Query) ListItems(arguments *ListArguments, reply *ListItemsReply) error {
	if err := ratelimit.LimitN(q.Limiter, arguments.Count, maximumList); nil != err {
		return err
	}
	items, next, err := q.Queries.ListItems(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	reply.Items = items
	reply.NextStart = next
	return nil
}

// ListProposalsReply - a page of proposals
type ListProposalsReply struct {
	Proposals []storage.Keyed[*records.Proposal] `json:"proposals"`
	NextStart uint64                             `json:"nextStart,string"`
}

// ListProposals - page through proposals by key
func (q *Query) ListProposals(arguments *ListArguments, reply *ListProposalsReply) error {
	if err := ratelimit.LimitN(q.Limiter, arguments.Count, maximumList); nil != err {
		return err
	}
	proposals, next, err := q.Queries.ListProposals(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	reply.Proposals = proposals
	reply.NextStart = next
	return nil
}
