// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/auctiond/fixtures"
)

// readers racing a write on an uncached key must never leave the
// previous value in the cache
func TestCacheFillRacingCommit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	store, err := Open(filepath.Join(t.TempDir(), "cache.leveldb"), ReadWrite)
	require.Nil(t, err, "storage open")
	defer store.Close()

	p := store.Pool.AuctionItems
	key := []byte("race")

	const (
		rounds  = 2000
		readers = 7
	)

	stale := 0
	for i := 0; i < rounds; i += 1 {
		old := make([]byte, 8)
		binary.BigEndian.PutUint64(old, uint64(2*i))
		updated := make([]byte, 8)
		binary.BigEndian.PutUint64(updated, uint64(2*i+1))

		require.Nil(t, p.Put(key, old), "put old")
		store.cache.Clear()

		var wg sync.WaitGroup
		start := make(chan struct{})
		for r := 0; r < readers; r += 1 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				_ = p.Get(key)
			}()
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			assert.Nil(t, p.Put(key, updated), "put updated")
		}()
		close(start)
		wg.Wait()

		if !bytes.Equal(updated, p.Get(key)) {
			stale += 1
		}
	}
	assert.Equal(t, 0, stale, "stale reads after committed write")
}
