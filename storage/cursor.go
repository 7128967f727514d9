// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/auctiond/fault"
)

// FetchCursor - cursor structure
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - initialise a cursor to the start of a key range
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool:     p,
		maxRange: *p.keyRange(),
	}
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// iterate over a snapshot so the whole pass sees one consistent state
func (cursor *FetchCursor) iterate(f func(iter iterator.Iterator) bool) error {
	store := cursor.pool.store
	store.RLock()
	defer store.RUnlock()
	if nil == store.db {
		return fault.NotInitialised
	}

	snapshot, err := store.db.GetSnapshot()
	if nil != err {
		return err
	}
	defer snapshot.Release()

	iter := snapshot.NewIterator(&cursor.maxRange, nil)
	for iter.Next() && f(iter) {
	}
	iter.Release()
	return iter.Error()
}

// copy the current element out of an iterator
func element(iter iterator.Iterator) Element {

	// contents of the returned slice must not be modified, and are
	// only valid until the next call to Next
	key := iter.Key()
	value := iter.Value()

	dataKey := make([]byte, len(key)-1) // strip the prefix
	copy(dataKey, key[1:])              // ...

	dataValue := make([]byte, len(value))
	copy(dataValue, value)

	return Element{
		Key:   dataKey,
		Value: dataValue,
	}
}

// Fetch - return some elements starting from key
//
// the cursor advances past the last element returned
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if cursor == nil {
		return nil, fault.InvalidCursor
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	results := make([]Element, 0, count)
	err := cursor.iterate(func(iter iterator.Iterator) bool {
		results = append(results, element(iter))
		return len(results) < count
	})

	if n := len(results); n > 0 {
		// smallest key strictly after the last one returned
		cursor.maxRange.Start = append(cursor.pool.prefixKey(results[n-1].Key), 0x00)
	}
	return results, err
}

// Map - run a function on all elements in the range
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if cursor == nil {
		return fault.InvalidCursor
	}

	var err error
	iterErr := cursor.iterate(func(iter iterator.Iterator) bool {
		e := element(iter)
		err = f(e.Key, e.Value)
		return nil == err
	})
	if nil == err {
		err = iterErr
	}
	return err
}
