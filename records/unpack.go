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

// Unpack - turn a byte slice into a record
//
// must cast result to correct type
//
// e.g.
//   switch r := result.(type) {
//   case *records.AuctionItem:
func (record Packed) Unpack() (r Record, n int, e error) {

	defer func() {
		if x := recover(); nil != x {
			r = nil
			n = 0
			e = fault.NotRecordPack
		}
	}()

	recordType, n := util.ClippedVarint64(record, 1, 8192)
	if 0 == n {
		return nil, 0, fault.NotRecordPack
	}

	u := &unpacker{record: record, n: n}

	switch TagType(recordType) {

	case ProposalTag:
		p := &Proposal{
			Description: u.text(maxDescriptionLength),
			Approve:     u.uint64(),
			Reject:      u.uint64(),
			Pass:        u.uint64(),
			IsActive:    u.bool(),
		}
		count := u.count()
		p.Voted = make([]*account.Account, count)
		for i := 0; i < count; i += 1 {
			p.Voted[i] = u.account()
		}
		p.Owner = u.account()
		return p, u.n, nil

	case AuctionItemTag:
		a := &AuctionItem{
			Title:                u.text(maxTitleLength),
			Description:          u.text(maxDescriptionLength),
			Owner:                u.account(),
			CurrentHighestBidder: u.optionalAccount(),
			CurrentHighestBid:    u.uint64(),
			StartPrice:           u.uint64(),
			IsActive:             u.bool(),
		}
		return a, u.n, nil

	case BidTag:
		b := u.bid()
		return &b, u.n, nil

	case ItemTag:
		i := &Item{
			Title:       u.text(maxTitleLength),
			Description: u.text(maxDescriptionLength),
			Owner:       u.account(),
			NewOwner:    u.optionalAccount(),
			Currency:    u.text(maxCurrencyLength),
			Amount:      u.uint64(),
			IsActive:    u.bool(),
			StartTime:   u.text(maxTimeLength),
			EndTime:     u.text(maxTimeLength),
		}
		count := u.count()
		i.Bids = make([]Bid, count)
		for j := 0; j < count; j += 1 {
			i.Bids[j] = u.bid()
		}
		return i, u.n, nil

	default: // also NullTag
	}
	return nil, 0, fault.UnknownRecordType
}

// field reader: any malformed field panics with the fault,
// which Unpack converts to NotRecordPack
type unpacker struct {
	record Packed
	n      int
}

func (u *unpacker) uint64() uint64 {
	value, length := util.FromVarint64(u.record[u.n:])
	if 0 == length {
		panic(fault.NotRecordPack)
	}
	u.n += length
	return value
}

// a length or element count bounded by the largest record
func (u *unpacker) count() int {
	value, length := util.ClippedVarint64(u.record[u.n:], 0, MaximumRecordSize)
	if 0 == length {
		panic(fault.NotRecordPack)
	}
	u.n += length
	return value
}

func (u *unpacker) bytes() []byte {
	length := u.count()
	data := u.record[u.n : u.n+length]
	u.n += length
	return data
}

func (u *unpacker) text(maximum int) string {
	s := u.bytes()
	if len(s) > 4*maximum {
		panic(fault.NotRecordPack)
	}
	return string(s)
}

func (u *unpacker) bool() bool {
	b := u.record[u.n]
	u.n += 1
	switch b {
	case 0:
		return false
	case 1:
		return true
	default:
		panic(fault.NotRecordPack)
	}
}

func (u *unpacker) account() *account.Account {
	a, err := account.FromBytes(u.bytes())
	if nil != err {
		panic(err)
	}
	return a
}

func (u *unpacker) optionalAccount() *account.Account {
	if u.bool() {
		return u.account()
	}
	return nil
}

func (u *unpacker) bid() Bid {
	return Bid{
		Description: u.text(maxDescriptionLength),
		Auction:     u.uint64(),
		Owner:       u.account(),
		Currency:    u.text(maxCurrencyLength),
		Amount:      u.uint64(),
		IsActive:    u.bool(),
	}
}
