// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package proposal - governance proposals and their vote tallies
package proposal

import (
	"github.com/bitmark-inc/auctiond/account"
	"github.com/bitmark-inc/auctiond/fault"
	"github.com/bitmark-inc/auctiond/messagebus"
	"github.com/bitmark-inc/auctiond/records"
	"github.com/bitmark-inc/auctiond/storage"
	"github.com/bitmark-inc/logger"
)

// event names
const (
	EventCreate = "proposal.create"
	EventVote   = "proposal.vote"
	EventClose  = "proposal.close"
)

// Ledger - the only writer of the Proposals pool
type Ledger struct {
	log       *logger.L
	proposals *storage.Map[*records.Proposal]
	locks     storage.KeyLock
	bus       *messagebus.Queue
}

// New - create a proposal ledger over its pool
func New(log *logger.L, proposals *storage.Map[*records.Proposal], bus *messagebus.Queue) *Ledger {
	return &Ledger{
		log:       log,
		proposals: proposals,
		bus:       bus,
	}
}

// Create - add a new active proposal owned by the caller
func (l *Ledger) Create(owner *account.Account, description string) (uint64, error) {
	proposal := &records.Proposal{
		Description: description,
		IsActive:    true,
		Voted:       []*account.Account{},
		Owner:       owner,
	}

	if _, err := proposal.Pack(); nil != err {
		return 0, err
	}

	key, err := l.proposals.Append(proposal)
	if nil != err {
		l.log.Errorf("create error: %s", err)
		return 0, fault.Update(fault.VoteUpdateError, err)
	}

	l.log.Infof("created: %d  owner: %s", key, owner)
	l.bus.Send(EventCreate, key, proposal)
	return key, nil
}

// CastVote - record one vote per identity while the proposal is active
func (l *Ledger) CastVote(caller *account.Account, key uint64, choice records.Choice) error {
	return l.update(key, EventVote, func(proposal *records.Proposal) error {
		if nil == caller {
			return fault.VoteAccessRejected
		}
		if !proposal.IsActive {
			return fault.ProposalIsNotActive
		}
		if proposal.HasVoted(caller) {
			return fault.AlreadyVoted
		}

		switch choice {
		case records.Approve:
			proposal.Approve += 1
		case records.Reject:
			proposal.Reject += 1
		case records.Pass:
			proposal.Pass += 1
		default:
			return fault.InvalidChoice
		}
		proposal.Voted = append(proposal.Voted, caller)
		return nil
	})
}

// Close - the owner stops further voting
func (l *Ledger) Close(caller *account.Account, key uint64) error {
	return l.update(key, EventClose, func(proposal *records.Proposal) error {
		if !proposal.Owner.Equal(caller) {
			return fault.VoteAccessRejected
		}
		if !proposal.IsActive {
			return fault.ProposalIsNotActive
		}
		proposal.IsActive = false
		return nil
	})
}

// read-modify-write of one proposal under its key lock
func (l *Ledger) update(key uint64, event string, modify func(proposal *records.Proposal) error) error {
	l.locks.Lock(key)
	defer l.locks.Unlock(key)

	proposal, found := l.proposals.Get(key)
	if !found {
		return fault.NoSuchProposal
	}

	err := modify(proposal)
	if nil != err {
		l.log.Debugf("%s: %d  rejected: %s", event, key, err)
		return err
	}

	_, err = l.proposals.Insert(key, proposal)
	if nil != err {
		l.log.Errorf("%s: %d  write error: %s", event, key, err)
		return fault.Update(fault.VoteUpdateError, err)
	}

	l.log.Infof("%s: %d  approve: %d  reject: %d  pass: %d", event, key, proposal.Approve, proposal.Reject, proposal.Pass)
	l.bus.Send(event, key, proposal)
	return nil
}
