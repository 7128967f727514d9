// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/auctiond/account"
	"github.com/bitmark-inc/auctiond/records"
	"github.com/bitmark-inc/auctiond/rpc/proposal"
)

// CreateProposal - open a proposal owned by the caller
func (c *Client) CreateProposal(caller *account.Account, description string) (uint64, error) {
	arguments := proposal.CreateArguments{
		Caller:      caller,
		Description: description,
	}
	var reply proposal.KeyReply
	if err := c.call("Proposal.Create", arguments, &reply); nil != err {
		return 0, err
	}
	return reply.Key, nil
}

// Vote - cast the caller's vote on a proposal
func (c *Client) Vote(caller *account.Account, key uint64, choice records.Choice) error {
	arguments := proposal.VoteArguments{
		Caller: caller,
		Key:    key,
		Choice: choice,
	}
	var reply proposal.KeyReply
	return c.call("Proposal.Vote", arguments, &reply)
}

// CloseProposal - stop voting on a proposal
func (c *Client) CloseProposal(caller *account.Account, key uint64) error {
	arguments := proposal.CloseArguments{
		Caller: caller,
		Key:    key,
	}
	var reply proposal.KeyReply
	return c.call("Proposal.Close", arguments, &reply)
}
