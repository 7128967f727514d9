// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/auctiond/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{137, []byte{0x89, 0x01}},
	{255, []byte{0xff, 0x01}},
	{256, []byte{0x80, 0x02}},
	{16383, []byte{0xff, 0x7f}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{0x7fffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
	{0xfffffffffffffffe, []byte{0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

var varint64TruncatedTests = [][]byte{
	{},
	{0x80},
	{0xff},
	{0x80, 0x80},
	{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
}

func TestVarint64RoundTrip(t *testing.T) {
	for i, item := range varint64Tests {
		assert.Equal(t, item.encoded, util.ToVarint64(item.value), "%d: encode %x", i, item.value)

		b := append(append([]byte{}, item.encoded...), 0xff, 0x97, 0x23)
		value, count := util.FromVarint64(b)
		assert.Equal(t, item.value, value, "%d: decode %x", i, b)
		assert.Equal(t, len(item.encoded), count, "%d: count for %x", i, b)
	}
}

func TestVarint64Truncated(t *testing.T) {
	for i, item := range varint64TruncatedTests {
		value, count := util.FromVarint64(item)
		assert.Equal(t, uint64(0), value, "%d: value for %x", i, item)
		assert.Equal(t, 0, count, "%d: count for %x", i, item)
	}
}

func TestAppendVarint64(t *testing.T) {
	b := util.AppendVarint64([]byte{0xaa}, 300)
	assert.Equal(t, []byte{0xaa, 0xac, 0x02}, b)
}

func TestClippedVarint64(t *testing.T) {
	n, count := util.ClippedVarint64([]byte{0x05}, 1, 10)
	assert.Equal(t, 5, n)
	assert.Equal(t, 1, count)

	n, count = util.ClippedVarint64([]byte{0x0b}, 1, 10)
	assert.Equal(t, 0, n, "above maximum")
	assert.Equal(t, 0, count, "above maximum")

	n, count = util.ClippedVarint64([]byte{0x00}, 1, 10)
	assert.Equal(t, 0, count, "below minimum")

	n, count = util.ClippedVarint64([]byte{0x00}, 0, 10)
	assert.Equal(t, 0, n, "zero allowed")
	assert.Equal(t, 1, count, "zero allowed")
}
