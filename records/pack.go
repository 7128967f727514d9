// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package records

import (
	"unicode/utf8"

	"github.com/bitmark-inc/auctiond/account"
	"github.com/bitmark-inc/auctiond/fault"
	"github.com/bitmark-inc/auctiond/util"
)

// Pack - pack Proposal
//
// Varint64(tag) followed by fields in order as struct above
func (proposal *Proposal) Pack() (Packed, error) {
	if nil == proposal.Owner {
		return nil, fault.InvalidOwner
	}
	if err := checkText(proposal.Description, 0, maxDescriptionLength, fault.DescriptionTooLong, fault.DescriptionTooLong); nil != err {
		return nil, err
	}

	message := util.ToVarint64(uint64(ProposalTag))
	message = appendString(message, proposal.Description)
	message = appendUint64(message, proposal.Approve)
	message = appendUint64(message, proposal.Reject)
	message = appendUint64(message, proposal.Pass)
	message = appendBool(message, proposal.IsActive)
	message = appendUint64(message, uint64(len(proposal.Voted)))
	for _, voter := range proposal.Voted {
		if nil == voter {
			return nil, fault.InvalidOwner
		}
		message = appendAccount(message, voter)
	}
	return appendAccount(message, proposal.Owner), nil
}

// Pack - pack AuctionItem
//
// the optional highest bidder is preceded by a presence byte
func (item *AuctionItem) Pack() (Packed, error) {
	if nil == item.Owner {
		return nil, fault.InvalidOwner
	}
	if err := checkText(item.Title, minTitleLength, maxTitleLength, fault.TitleTooShort, fault.TitleTooLong); nil != err {
		return nil, err
	}
	if err := checkText(item.Description, 0, maxDescriptionLength, fault.DescriptionTooLong, fault.DescriptionTooLong); nil != err {
		return nil, err
	}

	message := util.ToVarint64(uint64(AuctionItemTag))
	message = appendString(message, item.Title)
	message = appendString(message, item.Description)
	message = appendAccount(message, item.Owner)
	message = appendOptionalAccount(message, item.CurrentHighestBidder)
	message = appendUint64(message, item.CurrentHighestBid)
	message = appendUint64(message, item.StartPrice)
	return appendBool(message, item.IsActive), nil
}

// Pack - pack Bid
func (bid *Bid) Pack() (Packed, error) {
	message := util.ToVarint64(uint64(BidTag))
	return bid.appendFields(message)
}

// Pack - pack Item
//
// the bid history is a count followed by each bid without its tag
func (item *Item) Pack() (Packed, error) {
	if nil == item.Owner {
		return nil, fault.InvalidOwner
	}
	if err := checkText(item.Title, minTitleLength, maxTitleLength, fault.TitleTooShort, fault.TitleTooLong); nil != err {
		return nil, err
	}
	if err := checkText(item.Description, 0, maxDescriptionLength, fault.DescriptionTooLong, fault.DescriptionTooLong); nil != err {
		return nil, err
	}
	if err := checkText(item.Currency, minCurrencyLength, maxCurrencyLength, fault.InvalidCurrency, fault.InvalidCurrency); nil != err {
		return nil, err
	}
	if err := checkText(item.StartTime, 0, maxTimeLength, fault.TimeTooLong, fault.TimeTooLong); nil != err {
		return nil, err
	}
	if err := checkText(item.EndTime, 0, maxTimeLength, fault.TimeTooLong, fault.TimeTooLong); nil != err {
		return nil, err
	}

	message := util.ToVarint64(uint64(ItemTag))
	message = appendString(message, item.Title)
	message = appendString(message, item.Description)
	message = appendAccount(message, item.Owner)
	message = appendOptionalAccount(message, item.NewOwner)
	message = appendString(message, item.Currency)
	message = appendUint64(message, item.Amount)
	message = appendBool(message, item.IsActive)
	message = appendString(message, item.StartTime)
	message = appendString(message, item.EndTime)
	message = appendUint64(message, uint64(len(item.Bids)))

	var err error
	for i := range item.Bids {
		message, err = item.Bids[i].appendFields(message)
		if nil != err {
			return nil, err
		}
	}
	return message, nil
}

func (bid *Bid) appendFields(message Packed) (Packed, error) {
	if nil == bid.Owner {
		return nil, fault.InvalidOwner
	}
	if err := checkText(bid.Description, 0, maxDescriptionLength, fault.DescriptionTooLong, fault.DescriptionTooLong); nil != err {
		return nil, err
	}
	if err := checkText(bid.Currency, minCurrencyLength, maxCurrencyLength, fault.InvalidCurrency, fault.InvalidCurrency); nil != err {
		return nil, err
	}

	message = appendString(message, bid.Description)
	message = appendUint64(message, bid.Auction)
	message = appendAccount(message, bid.Owner)
	message = appendString(message, bid.Currency)
	message = appendUint64(message, bid.Amount)
	return appendBool(message, bid.IsActive), nil
}

// validate a text field: UTF-8 and rune count within limits
func checkText(s string, minimum int, maximum int, tooShort error, tooLong error) error {
	if !utf8.ValidString(s) {
		return fault.InvalidUtf8
	}
	n := utf8.RuneCountInString(s)
	if n < minimum {
		return tooShort
	}
	if n > maximum {
		return tooLong
	}
	return nil
}

// append a single field to a buffer
//
// the field is prefixed by Varint64(length)
func appendString(buffer Packed, s string) Packed {
	buffer = util.AppendVarint64(buffer, uint64(len(s)))
	return append(buffer, s...)
}

// append an account to a buffer
//
// the field is prefixed by Varint64(length)
func appendAccount(buffer Packed, address *account.Account) Packed {
	data := address.Bytes()
	buffer = util.AppendVarint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// append 0 for absent or 1 followed by the account
func appendOptionalAccount(buffer Packed, address *account.Account) Packed {
	if nil == address {
		return append(buffer, 0)
	}
	return appendAccount(append(buffer, 1), address)
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	return util.AppendVarint64(buffer, value)
}

// append a single byte flag
func appendBool(buffer Packed, flag bool) Packed {
	if flag {
		return append(buffer, 1)
	}
	return append(buffer, 0)
}
