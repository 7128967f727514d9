// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. key          = record identifier as big endian uint64 (8 bytes)
// 4. count        = successive index value as big endian uint64 (8 bytes)
// 5. owner        = packed account (key variant ++ 32 byte public key)
// 6. record       = packed record, at most records.MaximumRecordSize bytes
//
// Records:
//
//   P ++ key                   - governance proposals
//                                data: packed Proposal
//   A ++ key                   - auction items holding the highest bid
//                                data: packed AuctionItem
//   I ++ key                   - auction items with bid history
//                                data: packed Item
//   B ++ key                   - payment backed bids
//                                data: packed Bid
//
// Sequences:
//
//   N ++ prefix                - last key allocated in the pool named by prefix
//                                data: count
//
// Payment:
//
//   C ++ owner                 - escrow balance
//                                data: count
//
// Version:
//
//   0x00 ++ "VERSION"          - database format
//                                data: big endian uint32
package storage
