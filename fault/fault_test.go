// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/auctiond/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrLengthOne   = fault.LengthError("length one")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrRecordOne   = fault.RecordError("record one")
)

// test that the various classes are distinguishable
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		length   bool
		notFound bool
		process  bool
		record   bool
	}{
		{ErrExistsOne, true, false, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false, false},
		{ErrLengthOne, false, false, true, false, false, false},
		{ErrNotFoundOne, false, false, false, true, false, false},
		{ErrProcessOne, false, false, false, false, true, false},
		{ErrRecordOne, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		assert.Equal(t, e.exists, fault.IsErrExists(err), "%d: exists for: %v", i, err)
		assert.Equal(t, e.invalid, fault.IsErrInvalid(err), "%d: invalid for: %v", i, err)
		assert.Equal(t, e.length, fault.IsErrLength(err), "%d: length for: %v", i, err)
		assert.Equal(t, e.notFound, fault.IsErrNotFound(err), "%d: not found for: %v", i, err)
		assert.Equal(t, e.process, fault.IsErrProcess(err), "%d: process for: %v", i, err)
		assert.Equal(t, e.record, fault.IsErrRecord(err), "%d: record for: %v", i, err)
	}
}

func TestFamilies(t *testing.T) {
	errorList := []struct {
		err     error
		auction bool
		bid     bool
		vote    bool
	}{
		{fault.NoSuchAuction, true, false, false},
		{fault.AuctionNoBids, true, false, false},
		{fault.NotBidder, false, true, false},
		{fault.TransferError, false, true, false},
		{fault.AlreadyVoted, false, false, true},
		{fault.Update(fault.VoteUpdateError, fault.RecordTooLarge), false, false, true},
		{fault.RecordTooLarge, false, false, false},
		{nil, false, false, false},
	}

	for i, e := range errorList {
		assert.Equal(t, e.auction, fault.IsErrAuction(e.err), "%d: auction for: %v", i, e.err)
		assert.Equal(t, e.bid, fault.IsErrBid(e.err), "%d: bid for: %v", i, e.err)
		assert.Equal(t, e.vote, fault.IsErrVote(e.err), "%d: vote for: %v", i, e.err)
	}
}

func TestUpdateFailure(t *testing.T) {
	err := fault.Update(fault.BidUpdateError, fault.RecordTooLarge)

	assert.True(t, errors.Is(err, fault.BidUpdateError), "kind not matched")
	assert.True(t, errors.Is(err, fault.RecordTooLarge), "reason not matched")
	assert.False(t, errors.Is(err, fault.AuctionUpdateError), "wrong kind matched")
	assert.True(t, fault.IsErrLength(err), "reason class not visible")
	assert.Equal(t, "bid update error: record too large", err.Error())
}
