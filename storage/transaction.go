// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/auctiond/fault"
)

// Batch - a set of writes to one or more pools applied atomically
type Batch struct {
	store  *Store
	batch  *leveldb.Batch
	cached map[string][]byte
}

// NewBatch - start an empty batch
func (s *Store) NewBatch() *Batch {
	return &Batch{
		store:  s,
		batch:  new(leveldb.Batch),
		cached: make(map[string][]byte),
	}
}

// Put - queue a key/value pair for a pool
func (b *Batch) Put(p *PoolHandle, key []byte, value []byte) {
	prefixedKey := p.prefixKey(key)
	b.batch.Put(prefixedKey, value)
	b.cached[string(prefixedKey)] = value
}

// PutN - queue a big endian uint64 value for a pool
func (b *Batch) PutN(p *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	b.Put(p, key, buffer)
}

// Len - number of queued writes
func (b *Batch) Len() int {
	return b.batch.Len()
}

// Commit - write all queued entries in a single LevelDB batch
//
// the cache only reflects the batch once the write has succeeded; the
// exclusive lock keeps a reader's database fetch and cache fill from
// straddling the write
func (b *Batch) Commit() error {
	if b.store.readOnly {
		return fault.DatabaseIsReadOnly
	}

	b.store.Lock()
	defer b.store.Unlock()
	if nil == b.store.db {
		return fault.NotInitialised
	}

	err := b.store.db.Write(b.batch, nil)
	if nil != err {
		for key := range b.cached {
			b.store.cache.Delete(key)
		}
		return err
	}
	for key, value := range b.cached {
		b.store.cache.Set(key, value)
	}
	b.batch.Reset()
	b.cached = make(map[string][]byte)
	return nil
}
