// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/auctiond/fault"
	"github.com/bitmark-inc/auctiond/records"
	"github.com/bitmark-inc/logger"
)

// Written - result of an accepted Insert
//
// Replaced is false when the key was not previously present, in
// which case Previous is the zero value
type Written[R records.Record] struct {
	Previous R
	Replaced bool
}

// Keyed - a record together with its key
type Keyed[R records.Record] struct {
	Key    uint64 `json:"key"`
	Record R      `json:"record"`
}

// Map - a typed view of one pool holding packed records of type R
//
// keys are big endian uint64 so iteration is in ascending key order
type Map[R records.Record] struct {
	sync.Mutex // serialise sequence allocation
	pool       *PoolHandle
	sequences  *PoolHandle
}

// NewMap - create a typed map over a pool
func NewMap[R records.Record](store *Store, pool *PoolHandle) *Map[R] {
	return &Map[R]{
		pool:      pool,
		sequences: store.Pool.Sequences,
	}
}

// Pool - the underlying pool
func (m *Map[R]) Pool() *PoolHandle {
	return m.pool
}

// Get - fetch and decode a record
//
// a record that cannot be decoded is storage corruption and panics
func (m *Map[R]) Get(key uint64) (R, bool) {
	var zero R
	packed := m.pool.Get(toKey(key))
	if nil == packed {
		return zero, false
	}
	return m.decode(key, packed), true
}

// Has - true if the key is present
func (m *Map[R]) Has(key uint64) bool {
	return m.pool.Has(toKey(key))
}

// Insert - write a record, returning the value it replaced
//
// a record that packs to more than records.MaximumRecordSize bytes is
// rejected with fault.RecordTooLarge and nothing is written
func (m *Map[R]) Insert(key uint64, record R) (Written[R], error) {
	packed, err := m.pack(record)
	if nil != err {
		return Written[R]{}, err
	}

	previous, replaced := m.Get(key)

	batch := m.pool.store.NewBatch()
	batch.Put(m.pool, toKey(key), packed)
	err = batch.Commit()
	if nil != err {
		return Written[R]{}, err
	}

	return Written[R]{
		Previous: previous,
		Replaced: replaced,
	}, nil
}

// Append - write a record under the next key of the pool sequence
//
// the record and the updated sequence are written in one batch
func (m *Map[R]) Append(record R) (uint64, error) {
	packed, err := m.pack(record)
	if nil != err {
		return 0, err
	}

	m.Lock()
	defer m.Unlock()

	sequenceKey := []byte{m.pool.prefix}
	last, _ := m.sequences.GetN(sequenceKey)
	key := last + 1

	batch := m.pool.store.NewBatch()
	batch.Put(m.pool, toKey(key), packed)
	batch.PutN(m.sequences, sequenceKey, key)
	err = batch.Commit()
	if nil != err {
		return 0, err
	}
	return key, nil
}

// Iterate - call f for every record in ascending key order
//
// all records come from one snapshot taken at the start of the call;
// a non-nil error from f stops the iteration and is returned
func (m *Map[R]) Iterate(f func(key uint64, record R) error) error {
	return m.pool.NewFetchCursor().Map(func(k []byte, v []byte) error {
		key := fromKey(k)
		return f(key, m.decode(key, v))
	})
}

// Len - number of records
func (m *Map[R]) Len() int {
	return m.pool.Count()
}

// List - up to count records with keys at or after start
//
// next is the key to resume from, zero when the pool is exhausted
func (m *Map[R]) List(start uint64, count int) ([]Keyed[R], uint64, error) {
	cursor := m.pool.NewFetchCursor().Seek(toKey(start))
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, 0, err
	}

	results := make([]Keyed[R], len(elements))
	for i, e := range elements {
		key := fromKey(e.Key)
		results[i] = Keyed[R]{
			Key:    key,
			Record: m.decode(key, e.Value),
		}
	}

	next := uint64(0)
	if len(results) == count {
		next = results[count-1].Key + 1
	}
	return results, next, nil
}

func (m *Map[R]) pack(record R) ([]byte, error) {
	packed, err := record.Pack()
	if nil != err {
		return nil, err
	}
	if len(packed) > records.MaximumRecordSize {
		return nil, fault.RecordTooLarge
	}
	return packed, nil
}

func (m *Map[R]) decode(key uint64, packed []byte) R {
	r, _, err := records.Packed(packed).Unpack()
	if nil != err {
		logger.Panicf("pool: %s  key: %d  unpack error: %s", m.pool.name, key, err)
	}
	record, ok := r.(R)
	if !ok {
		logger.Panicf("pool: %s  key: %d  unexpected record type: %T", m.pool.name, key, r)
	}
	return record
}

func toKey(key uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, key)
	return buffer
}

func fromKey(buffer []byte) uint64 {
	if 8 != len(buffer) {
		logger.Panicf("pool key length: %d  expected: 8", len(buffer))
	}
	return binary.BigEndian.Uint64(buffer)
}
