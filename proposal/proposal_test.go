// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proposal_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/auctiond/account"
	"github.com/bitmark-inc/auctiond/fault"
	"github.com/bitmark-inc/auctiond/fixtures"
	"github.com/bitmark-inc/auctiond/proposal"
	"github.com/bitmark-inc/auctiond/records"
	"github.com/bitmark-inc/auctiond/storage"
	"github.com/bitmark-inc/logger"
)

func setup(t *testing.T) (*proposal.Ledger, *storage.Map[*records.Proposal], *storage.Store) {
	fixtures.SetupTestLogger()

	store, err := storage.Open(filepath.Join(t.TempDir(), "proposal.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	proposals := storage.NewMap[*records.Proposal](store, store.Pool.Proposals)
	return proposal.New(logger.New(fixtures.LogCategory), proposals, nil), proposals, store
}

func teardown(store *storage.Store) {
	store.Close()
	fixtures.TeardownTestLogger()
}

func TestCastVote(t *testing.T) {
	l, proposals, store := setup(t)
	defer teardown(store)

	key, err := l.Create(fixtures.Owner, "lower the fee")
	assert.Nil(t, err, "create")

	assert.Nil(t, l.CastVote(fixtures.BidderOne, key, records.Approve), "first vote")
	assert.Nil(t, l.CastVote(fixtures.BidderTwo, key, records.Reject), "second vote")
	assert.Nil(t, l.CastVote(fixtures.Voter, key, records.Pass), "third vote")

	p, _ := proposals.Get(key)
	assert.Equal(t, uint64(1), p.Approve, "approve")
	assert.Equal(t, uint64(1), p.Reject, "reject")
	assert.Equal(t, uint64(1), p.Pass, "pass")
	assert.Equal(t, 3, len(p.Voted), "voted")
}

func TestCastVoteTwice(t *testing.T) {
	l, proposals, store := setup(t)
	defer teardown(store)

	key, _ := l.Create(fixtures.Owner, "")

	assert.Nil(t, l.CastVote(fixtures.Voter, key, records.Approve), "first vote")
	before, _ := proposals.Get(key)

	err := l.CastVote(fixtures.Voter, key, records.Reject)
	assert.Equal(t, fault.AlreadyVoted, err, "second vote")

	after, _ := proposals.Get(key)
	assert.Equal(t, before, after, "failed vote changed the proposal")
}

func TestCastVoteRejections(t *testing.T) {
	l, proposals, store := setup(t)
	defer teardown(store)

	key, _ := l.Create(fixtures.Owner, "")

	err := l.CastVote(fixtures.Voter, key+1, records.Approve)
	assert.Equal(t, fault.NoSuchProposal, err, "missing proposal")

	err = l.CastVote(nil, key, records.Approve)
	assert.Equal(t, fault.VoteAccessRejected, err, "anonymous vote")

	err = l.CastVote(fixtures.Voter, key, records.Choice(9))
	assert.Equal(t, fault.InvalidChoice, err, "unknown choice")

	p, _ := proposals.Get(key)
	assert.Equal(t, 0, len(p.Voted), "rejected vote recorded")
}

func TestClose(t *testing.T) {
	l, _, store := setup(t)
	defer teardown(store)

	key, _ := l.Create(fixtures.Owner, "")

	err := l.Close(fixtures.Voter, key)
	assert.Equal(t, fault.VoteAccessRejected, err, "close by non owner")

	assert.Nil(t, l.Close(fixtures.Owner, key), "close")

	err = l.Close(fixtures.Owner, key)
	assert.Equal(t, fault.ProposalIsNotActive, err, "second close")

	err = l.CastVote(fixtures.Voter, key, records.Approve)
	assert.Equal(t, fault.ProposalIsNotActive, err, "vote on closed proposal")
}

func TestVoteUpdateError(t *testing.T) {
	l, _, store := setup(t)
	defer teardown(store)

	key, _ := l.Create(fixtures.Owner, "")

	// each voter adds a packed account until the record no longer fits
	var err error
	for i := 0; i < 200 && nil == err; i += 1 {
		publicKey := make([]byte, 32)
		publicKey[0] = byte(i)
		publicKey[1] = 0xee
		err = l.CastVote(&account.Account{Test: true, PublicKey: publicKey}, key, records.Pass)
	}
	assert.True(t, errors.Is(err, fault.VoteUpdateError), "kind: %v", err)
	assert.True(t, errors.Is(err, fault.RecordTooLarge), "reason: %v", err)
	assert.True(t, fault.IsErrVote(err), "family")
}
