// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON-RPC over TLS for the ledgers
//
// services:
//
//	Auction   - Create, PlaceBid, IncreaseBid, WithdrawBid, End
//	Proposal  - Create, Vote, Close
//	Bid       - Create
//	Item      - Create, Bid, Close
//	Query     - read only access to every pool
//	Node      - Info
//	Payment   - Deposit, Balance on the local escrow
package rpc
