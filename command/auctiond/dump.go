// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/auctiond/records"
	"github.com/bitmark-inc/auctiond/storage"
)

type keyedRecord struct {
	Key    uint64      `json:"key,string"`
	Record interface{} `json:"record"`
}

type rawElement struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// write every element of a pool as a JSON array
//
// record pools are decoded, the others are shown as hex
func dumpPool(store *storage.Store, name string, w io.Writer) error {

	pool, err := store.PoolByName(name)
	if nil != err {
		return err
	}

	first := true
	emit := func(item interface{}) error {
		s, err := json.MarshalIndent(item, "  ", "  ")
		if nil != err {
			return err
		}
		separator := ","
		if first {
			separator = ""
			first = false
		}
		_, err = fmt.Fprintf(w, "%s\n  %s", separator, s)
		return err
	}

	if _, err := fmt.Fprint(w, "["); nil != err {
		return err
	}

	switch pool {
	case store.Pool.Proposals:
		err = dumpMap(storage.NewMap[*records.Proposal](store, pool), emit)
	case store.Pool.AuctionItems:
		err = dumpMap(storage.NewMap[*records.AuctionItem](store, pool), emit)
	case store.Pool.Items:
		err = dumpMap(storage.NewMap[*records.Item](store, pool), emit)
	case store.Pool.Bids:
		err = dumpMap(storage.NewMap[*records.Bid](store, pool), emit)
	default:
		err = pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
			return emit(rawElement{
				Key:   hex.EncodeToString(key),
				Value: hex.EncodeToString(value),
			})
		})
	}
	if nil != err {
		return err
	}

	_, err = fmt.Fprint(w, "\n]\n")
	return err
}

func dumpMap[R records.Record](m *storage.Map[R], emit func(interface{}) error) error {
	return m.Iterate(func(key uint64, record R) error {
		return emit(keyedRecord{
			Key:    key,
			Record: record,
		})
	})
}
