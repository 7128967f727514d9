// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"
)

// KeyLock - mutual exclusion per record key
//
// the zero value is ready to use; entries are removed when the last
// holder or waiter releases them
type KeyLock struct {
	sync.Mutex
	entries map[uint64]*keyEntry
}

type keyEntry struct {
	sync.Mutex
	users int
}

// Lock - block until the key is held exclusively
func (k *KeyLock) Lock(key uint64) {
	k.Mutex.Lock()
	if nil == k.entries {
		k.entries = make(map[uint64]*keyEntry)
	}
	e, ok := k.entries[key]
	if !ok {
		e = &keyEntry{}
		k.entries[key] = e
	}
	e.users += 1
	k.Mutex.Unlock()

	e.Lock()
}

// Unlock - release a key obtained by Lock
func (k *KeyLock) Unlock(key uint64) {
	k.Mutex.Lock()
	e, ok := k.entries[key]
	if !ok {
		k.Mutex.Unlock()
		panic("storage: unlock of unlocked key")
	}
	e.users -= 1
	if 0 == e.users {
		delete(k.entries, key)
	}
	k.Mutex.Unlock()

	e.Unlock()
}
