// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/auctiond/fault"
)

// common errors - keep in alphabetic order
const (
	ErrMissingAmount   = fault.InvalidError("amount is required")
	ErrMissingCaller   = fault.InvalidError("caller account is required")
	ErrMissingConnect  = fault.InvalidError("connect address is required")
	ErrMissingCurrency = fault.InvalidError("currency is required")
	ErrMissingKey      = fault.InvalidError("record key is required")
	ErrMissingKind     = fault.InvalidError("record kind is required")
	ErrUnknownKind     = fault.InvalidError("unknown record kind")
)
