// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proposal

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/auctiond/account"
	"github.com/bitmark-inc/auctiond/fault"
	"github.com/bitmark-inc/auctiond/records"
	"github.com/bitmark-inc/auctiond/rpc/ratelimit"
)

const (
	rateLimitProposal = 200
	rateBurstProposal = 100
)

// Ledger - the proposal operations served
type Ledger interface {
	Create(owner *account.Account, description string) (uint64, error)
	CastVote(caller *account.Account, key uint64, choice records.Choice) error
	Close(caller *account.Account, key uint64) error
}

// Proposal - type for the RPC
type Proposal struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  Ledger
}

// New - create the proposal RPC
func New(log *logger.L, ledger Ledger) *Proposal {
	return &Proposal{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitProposal, rateBurstProposal),
		Ledger:  ledger,
	}
}

// CreateArguments - arguments for a new proposal
type CreateArguments struct {
	Caller      *account.Account `json:"caller"`
	Description string           `json:"description"`
}

// KeyReply - the key of the affected proposal
type KeyReply struct {
	Key uint64 `json:"key,string"`
}

// Create - open a new proposal for voting
func (proposal *Proposal) Create(arguments *CreateArguments, reply *KeyReply) error {
	if err := ratelimit.Limit(proposal.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}

	key, err := proposal.Ledger.Create(arguments.Caller, arguments.Description)
	if nil != err {
		return err
	}
	reply.Key = key
	return nil
}

// VoteArguments - a single vote
type VoteArguments struct {
	Caller *account.Account `json:"caller"`
	Key    uint64           `json:"key,string"`
	Choice records.Choice   `json:"choice"`
}

// Vote - record the caller's vote
func (proposal *Proposal) Vote(arguments *VoteArguments, reply *KeyReply) error {
	if err := ratelimit.Limit(proposal.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}

	proposal.Log.Debugf("vote: %d  choice: %s  caller: %s", arguments.Key, arguments.Choice, arguments.Caller)

	if err := proposal.Ledger.CastVote(arguments.Caller, arguments.Key, arguments.Choice); nil != err {
		return err
	}
	reply.Key = arguments.Key
	return nil
}

// CloseArguments - owner closing a proposal
type CloseArguments struct {
	Caller *account.Account `json:"caller"`
	Key    uint64           `json:"key,string"`
}

// Close - stop voting on a proposal
func (proposal *Proposal) Close(arguments *CloseArguments, reply *KeyReply) error {
	if err := ratelimit.Limit(proposal.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}

	if err := proposal.Ledger.Close(arguments.Caller, arguments.Key); nil != err {
		return err
	}
	reply.Key = arguments.Key
	return nil
}
