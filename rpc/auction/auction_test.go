// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auction_test

import (
	"encoding/json"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/auctiond/fault"
	"github.com/bitmark-inc/auctiond/fixtures"
	"github.com/bitmark-inc/auctiond/rpc/auction"
	"github.com/bitmark-inc/auctiond/rpc/mocks"
)

func TestAuctionCreate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockAuctionLedger(ctl)
	l.EXPECT().Create(fixtures.Owner, "lamp", "brass", uint64(10)).Return(uint64(3), nil).Times(1)

	a := auction.New(logger.New(fixtures.LogCategory), l)

	var reply auction.KeyReply
	err := a.Create(&auction.CreateArguments{
		Caller:      fixtures.Owner,
		Title:       "lamp",
		Description: "brass",
		StartPrice:  10,
	}, &reply)
	assert.Nil(t, err, "create")
	assert.Equal(t, uint64(3), reply.Key, "key")
}

func TestAuctionBids(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockAuctionLedger(ctl)
	gomock.InOrder(
		l.EXPECT().PlaceBid(fixtures.BidderOne, uint64(1), uint64(150)).Return(nil),
		l.EXPECT().PlaceBid(fixtures.BidderTwo, uint64(1), uint64(100)).Return(fault.BidAmountLessThanCurrent),
		l.EXPECT().IncreaseBid(fixtures.BidderOne, uint64(1), uint64(200)).Return(nil),
		l.EXPECT().WithdrawBid(fixtures.BidderOne, uint64(1)).Return(nil),
		l.EXPECT().EndAuction(fixtures.Owner, uint64(1)).Return(fault.AuctionNoBids),
	)

	a := auction.New(logger.New(fixtures.LogCategory), l)

	var reply auction.KeyReply
	err := a.PlaceBid(&auction.BidArguments{Caller: fixtures.BidderOne, Key: 1, Amount: 150}, &reply)
	assert.Nil(t, err, "first bid")
	assert.Equal(t, uint64(1), reply.Key, "reply key")

	err = a.PlaceBid(&auction.BidArguments{Caller: fixtures.BidderTwo, Key: 1, Amount: 100}, &reply)
	assert.Equal(t, fault.BidAmountLessThanCurrent, err, "low bid")

	err = a.IncreaseBid(&auction.BidArguments{Caller: fixtures.BidderOne, Key: 1, Amount: 200}, &reply)
	assert.Nil(t, err, "increase")

	err = a.WithdrawBid(&auction.KeyArguments{Caller: fixtures.BidderOne, Key: 1}, &reply)
	assert.Nil(t, err, "withdraw")

	err = a.End(&auction.KeyArguments{Caller: fixtures.Owner, Key: 1}, &reply)
	assert.Equal(t, fault.AuctionNoBids, err, "end without bids")
}

func TestAuctionMissingCaller(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := auction.New(logger.New(fixtures.LogCategory), mocks.NewMockAuctionLedger(ctl))

	var reply auction.KeyReply
	assert.Equal(t, fault.MissingParameters, a.Create(&auction.CreateArguments{Title: "x"}, &reply), "create")
	assert.Equal(t, fault.MissingParameters, a.PlaceBid(&auction.BidArguments{Key: 1, Amount: 2}, &reply), "bid")
	assert.Equal(t, fault.MissingParameters, a.End(&auction.KeyArguments{Key: 1}, &reply), "end")
}

func TestAuctionArgumentsJSON(t *testing.T) {
	data := `{"caller":"` + fixtures.BidderOne.String() + `","key":"7","amount":"250"}`

	var arguments auction.BidArguments
	err := json.Unmarshal([]byte(data), &arguments)
	assert.Nil(t, err, "unmarshal")
	assert.True(t, fixtures.BidderOne.Equal(arguments.Caller), "caller")
	assert.Equal(t, uint64(7), arguments.Key, "key")
	assert.Equal(t, uint64(250), arguments.Amount, "amount")
}
