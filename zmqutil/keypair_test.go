// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/auctiond/fault"
	"github.com/bitmark-inc/auctiond/zmqutil"
)

func TestParseKey(t *testing.T) {
	hex := strings.Repeat("ab", 32)

	key, private, err := zmqutil.ParseKey("PUBLIC:" + hex + "\n")
	assert.Nil(t, err, "public")
	assert.False(t, private, "public flagged private")
	assert.Equal(t, 32, len(key), "public length")

	key, private, err = zmqutil.ParseKey("  PRIVATE:" + hex)
	assert.Nil(t, err, "private")
	assert.True(t, private, "private not flagged")
	assert.Equal(t, byte(0xab), key[0], "private value")

	_, err = zmqutil.ReadPublicKey("PRIVATE:" + hex)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "private as public")
	_, err = zmqutil.ReadPrivateKey("PUBLIC:" + hex)
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "public as private")
	_, _, err = zmqutil.ParseKey("PUBLIC:abcd")
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "short public")
	_, _, err = zmqutil.ParseKey("PRIVATE:" + strings.Repeat("zz", 32))
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "bad hex")
	_, _, err = zmqutil.ParseKey(hex)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "untagged")
}

func TestMakeKeyPair(t *testing.T) {
	dir := t.TempDir()
	public := filepath.Join(dir, "publish.public")
	private := filepath.Join(dir, "publish.private")

	err := zmqutil.MakeKeyPair(public, private)
	assert.Nil(t, err, "make")

	publicKey, err := zmqutil.ReadPublicKeyFile(public)
	assert.Nil(t, err, "read public")
	assert.Equal(t, 32, len(publicKey), "public length")

	privateKey, err := zmqutil.ReadPrivateKeyFile(private)
	assert.Nil(t, err, "read private")
	assert.Equal(t, 32, len(privateKey), "private length")

	err = zmqutil.MakeKeyPair(public, private)
	assert.Equal(t, fault.KeyFileExists, err, "overwrite")
}
