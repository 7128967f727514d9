// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/auctiond/fault"
	"github.com/bitmark-inc/logger"
)

// Pools - the set of storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	Proposals    *PoolHandle `prefix:"P"`
	AuctionItems *PoolHandle `prefix:"A"`
	Items        *PoolHandle `prefix:"I"`
	Bids         *PoolHandle `prefix:"B"`
	Sequences    *PoolHandle `prefix:"N"`
	Balances     *PoolHandle `prefix:"C"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Store - an open database and its pools
type Store struct {
	sync.RWMutex
	Pool     Pools
	log      *logger.L
	db       *leveldb.DB
	cache    Cache
	readOnly bool
}

// Open - open up the database connection
//
// an empty database is tagged with the current version; a database
// written by a newer program is refused
func Open(database string, readOnly bool) (*Store, error) {
	log := logger.New("storage")

	db, version, err := getDB(database, readOnly)
	if nil != err {
		return nil, err
	}

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fault.DatabaseVersionTooNew
	}

	if 0 == version && !readOnly {
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
	}

	store := &Store{
		log:      log,
		db:       db,
		cache:    newCache(),
		readOnly: readOnly,
	}

	err = store.setupPools()
	if nil != err {
		return nil, err
	}

	log.Infof("opened: %q  version: %d  read only: %t", database, version, readOnly)

	ok = true // prevent db close
	return store, nil
}

// scan each field of the pools struct and attach a handle for its prefix
func (s *Store) setupPools() error {

	// this will be a struct type
	poolType := reflect.TypeOf(s.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&s.Pool).Elem()

	seen := make(map[byte]string)
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo.Name, prefixTag)
		}

		prefix := prefixTag[0]
		if previous, ok := seen[prefix]; ok {
			return fmt.Errorf("pool: %s has same prefix as: %s", fieldInfo.Name, previous)
		}
		seen[prefix] = fieldInfo.Name

		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			name:   fieldInfo.Name,
			prefix: prefix,
			limit:  limit,
			store:  s,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Close - close the database connection
func (s *Store) Close() {
	s.Lock()
	defer s.Unlock()
	if nil != s.db {
		s.db.Close()
		s.db = nil
		s.cache.Clear()
		s.log.Info("closed")
	}
}

// IsReadOnly - true if opened with ReadOnly
func (s *Store) IsReadOnly() bool {
	return s.readOnly
}

// PoolByName - find a pool from its case insensitive field name
func (s *Store) PoolByName(name string) (*PoolHandle, error) {
	poolValue := reflect.ValueOf(s.Pool)
	poolType := poolValue.Type()
	for i := 0; i < poolType.NumField(); i += 1 {
		if strings.EqualFold(poolType.Field(i).Name, name) {
			return poolValue.Field(i).Interface().(*PoolHandle), nil
		}
	}
	return nil, fault.InvalidPoolName
}

// PoolNames - list of all pool names in declaration order
func (s *Store) PoolNames() []string {
	poolType := reflect.TypeOf(s.Pool)
	names := make([]string, poolType.NumField())
	for i := range names {
		names[i] = poolType.Field(i).Name
	}
	return names
}

// return:
//   databse handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
