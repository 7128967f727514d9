// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"bytes"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/auctiond/command/auction-cli/rpccalls"
	"github.com/bitmark-inc/auctiond/fault"
	"github.com/bitmark-inc/auctiond/fixtures"
	"github.com/bitmark-inc/auctiond/records"
	"github.com/bitmark-inc/auctiond/rpc/auction"
	"github.com/bitmark-inc/auctiond/rpc/node"
	"github.com/bitmark-inc/auctiond/rpc/proposal"
)

type fakeAuction struct {
	created *auction.CreateArguments
	bid     *auction.BidArguments
}

func (f *fakeAuction) Create(arguments *auction.CreateArguments, reply *auction.KeyReply) error {
	f.created = arguments
	reply.Key = 42
	return nil
}

func (f *fakeAuction) PlaceBid(arguments *auction.BidArguments, reply *auction.KeyReply) error {
	f.bid = arguments
	return fault.BidAmountLessThanCurrent
}

type fakeProposal struct {
	vote *proposal.VoteArguments
}

func (f *fakeProposal) Vote(arguments *proposal.VoteArguments, reply *proposal.KeyReply) error {
	f.vote = arguments
	reply.Key = arguments.Key
	return nil
}

type fakeNode struct{}

func (fakeNode) Info(_ *node.InfoArguments, reply *node.InfoReply) error {
	reply.Version = "1.2"
	reply.Records = map[string]int{"Proposals": 3}
	return nil
}

func setup(t *testing.T, verbose bool) (*rpccalls.Client, *bytes.Buffer, *fakeAuction, *fakeProposal) {
	a := &fakeAuction{}
	p := &fakeProposal{}

	server := rpc.NewServer()
	require.Nil(t, server.RegisterName("Auction", a), "register auction")
	require.Nil(t, server.RegisterName("Proposal", p), "register proposal")
	require.Nil(t, server.RegisterName("Node", fakeNode{}), "register node")

	serverConn, clientConn := net.Pipe()
	go server.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	var out bytes.Buffer
	client := rpccalls.NewClientFromConn(clientConn, verbose, &out)
	return client, &out, a, p
}

func TestCreateAuction(t *testing.T) {
	client, out, a, _ := setup(t, false)
	defer client.Close()

	key, err := client.CreateAuction(&rpccalls.AuctionData{
		Caller:      fixtures.Owner,
		Title:       "lamp",
		Description: "brass",
		StartPrice:  100,
	})
	require.Nil(t, err, "create")
	assert.Equal(t, uint64(42), key, "key")

	require.NotNil(t, a.created, "server not called")
	assert.True(t, fixtures.Owner.Equal(a.created.Caller), "caller")
	assert.Equal(t, "lamp", a.created.Title, "title")
	assert.Equal(t, uint64(100), a.created.StartPrice, "start price")
	assert.Equal(t, 0, out.Len(), "quiet client wrote output")
}

func TestServerErrorReturned(t *testing.T) {
	client, _, a, _ := setup(t, false)
	defer client.Close()

	err := client.PlaceBid(fixtures.BidderOne, 7, 5)
	require.NotNil(t, err, "error expected")
	assert.Equal(t, fault.BidAmountLessThanCurrent.Error(), err.Error(), "error text")

	require.NotNil(t, a.bid, "server not called")
	assert.Equal(t, uint64(7), a.bid.Key, "key")
	assert.Equal(t, uint64(5), a.bid.Amount, "amount")
}

func TestVoteVerbose(t *testing.T) {
	client, out, _, p := setup(t, true)
	defer client.Close()

	err := client.Vote(fixtures.Voter, 3, records.Reject)
	require.Nil(t, err, "vote")

	require.NotNil(t, p.vote, "server not called")
	assert.Equal(t, records.Reject, p.vote.Choice, "choice")
	assert.True(t, fixtures.Voter.Equal(p.vote.Caller), "caller")

	text := out.String()
	assert.True(t, strings.Contains(text, "Proposal.Vote Request"), "request not shown: %s", text)
	assert.True(t, strings.Contains(text, `"reject"`), "choice not shown: %s", text)
	assert.True(t, strings.Contains(text, "Proposal.Vote Reply"), "reply not shown: %s", text)
}

func TestGetInfo(t *testing.T) {
	client, _, _, _ := setup(t, false)
	defer client.Close()

	info, err := client.GetInfo()
	require.Nil(t, err, "info")
	assert.Equal(t, "1.2", info.Version, "version")
	assert.Equal(t, 3, info.Records["Proposals"], "records")
}
