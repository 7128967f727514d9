// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/auctiond/fault"
	"github.com/bitmark-inc/auctiond/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(1000, 10)
	assert.Nil(t, ratelimit.Limit(limiter), "limit")

	// burst of zero can never be satisfied
	assert.Equal(t, fault.RateLimiting, ratelimit.Limit(rate.NewLimiter(1, 0)), "zero burst")
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(1000, 10)

	assert.Nil(t, ratelimit.LimitN(limiter, 5, 10), "in range")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(limiter, 0, 10), "zero")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(limiter, 11, 10), "over maximum")
	assert.Equal(t, fault.RateLimiting, ratelimit.LimitN(limiter, 15, 20), "beyond burst")
}
