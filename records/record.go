// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package records

import (
	"github.com/bitmark-inc/auctiond/account"
	"github.com/bitmark-inc/auctiond/fault"
	"github.com/bitmark-inc/auctiond/util"
)

// TagType - type code for records
type TagType uint64

// enumerate the possible record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	ProposalTag    = TagType(iota) // governance proposal with vote tallies
	AuctionItemTag = TagType(iota) // auction item holding only the highest bid
	BidTag         = TagType(iota) // payment backed bid
	ItemTag        = TagType(iota) // auction item with full bid history

	// this item must be last
	InvalidTag = TagType(iota)
)

// MaximumRecordSize - largest packed record accepted by the store
const MaximumRecordSize = 5000

// byte sizes for various fields
const (
	minTitleLength       = 1
	maxTitleLength       = 128
	maxDescriptionLength = 2048
	minCurrencyLength    = 1
	maxCurrencyLength    = 16
	maxTimeLength        = 64
)

// Packed - packed records are just a byte slice
type Packed []byte

// Record - generic record interface
type Record interface {
	Pack() (Packed, error)
}

// Choice - the kind of a vote
type Choice int

// possible votes
const (
	Approve Choice = iota
	Reject
	Pass
)

// Proposal - a governance proposal
type Proposal struct {
	Description string             `json:"description"`
	Approve     uint64             `json:"approve"`
	Reject      uint64             `json:"reject"`
	Pass        uint64             `json:"pass"`
	IsActive    bool               `json:"isActive"`
	Voted       []*account.Account `json:"voted"`
	Owner       *account.Account   `json:"owner"`
}

// AuctionItem - an auction that keeps only the current highest bid
//
// CurrentHighestBidder is nil while no bid is held
type AuctionItem struct {
	Title                string           `json:"title"`
	Description          string           `json:"description"`
	Owner                *account.Account `json:"owner"`
	CurrentHighestBidder *account.Account `json:"currentHighestBidder"`
	CurrentHighestBid    uint64           `json:"currentHighestBid"`
	StartPrice           uint64           `json:"startPrice"`
	IsActive             bool             `json:"isActive"`
}

// Bid - a payment backed offer
//
// Auction is the key of the auction item or item the bid targets
type Bid struct {
	Description string           `json:"description"`
	Auction     uint64           `json:"auction"`
	Owner       *account.Account `json:"owner"`
	Currency    string           `json:"currency"`
	Amount      uint64           `json:"amount"`
	IsActive    bool             `json:"isActive"`
}

// Item - an auction that retains every bid placed on it
//
// NewOwner is nil until the item is closed
type Item struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Owner       *account.Account `json:"owner"`
	NewOwner    *account.Account `json:"newOwner"`
	Currency    string           `json:"currency"`
	Amount      uint64           `json:"amount"`
	IsActive    bool             `json:"isActive"`
	StartTime   string           `json:"startTime"`
	EndTime     string           `json:"endTime"`
	Bids        []Bid            `json:"bids"`
}

// Type - returns the record type code
func (record Packed) Type() TagType {
	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return NullTag
	}
	return TagType(recordType)
}

// RecordName - returns the name of a record as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *Proposal, Proposal:
		return "Proposal", true

	case *AuctionItem, AuctionItem:
		return "AuctionItem", true

	case *Bid, Bid:
		return "Bid", true

	case *Item, Item:
		return "Item", true

	default:
		return "*unknown*", false
	}
}

// String - name of a vote choice
func (choice Choice) String() string {
	switch choice {
	case Approve:
		return "approve"
	case Reject:
		return "reject"
	case Pass:
		return "pass"
	default:
		return "*unknown*"
	}
}

// Valid - true for one of the defined choices
func (choice Choice) Valid() bool {
	return choice >= Approve && choice <= Pass
}

// MarshalText - choice as its name
func (choice Choice) MarshalText() ([]byte, error) {
	if !choice.Valid() {
		return nil, fault.InvalidChoice
	}
	return []byte(choice.String()), nil
}

// UnmarshalText - choice from its name
func (choice *Choice) UnmarshalText(s []byte) error {
	for c := Approve; c <= Pass; c += 1 {
		if c.String() == string(s) {
			*choice = c
			return nil
		}
	}
	return fault.InvalidChoice
}

// HasBidder - true if a bid is currently held
func (item *AuctionItem) HasBidder() bool {
	return nil != item.CurrentHighestBidder
}

// HasVoted - true if the identity has already voted
func (proposal *Proposal) HasVoted(voter *account.Account) bool {
	for _, v := range proposal.Voted {
		if v.Equal(voter) {
			return true
		}
	}
	return false
}

// LastBid - most recent bid in an item's history
func (item *Item) LastBid() (*Bid, bool) {
	if 0 == len(item.Bids) {
		return nil, false
	}
	return &item.Bids[len(item.Bids)-1], true
}
