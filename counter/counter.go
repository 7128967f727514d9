// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - a shared count of open connections
package counter

import (
	"sync/atomic"
)

// Counter - an unsigned count safe for concurrent use
//
// the zero value is ready to use
type Counter struct {
	value atomic.Uint64
}

// Increment - add 1 and return the new value
func (c *Counter) Increment() uint64 {
	return c.value.Add(1)
}

// Decrement - subtract 1 and return the new value
func (c *Counter) Decrement() uint64 {
	return c.value.Add(^uint64(0))
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return c.value.Load()
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return 0 == c.value.Load()
}
