// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bidding

import (
	"context"

	"github.com/bitmark-inc/auctiond/account"
)

//go:generate mockgen -source=payer.go -destination=mocks/payer.go -package=mocks

// Payer - the payment ledger that backs every bid
//
// implementations must return promptly once ctx is done
type Payer interface {
	Balance(ctx context.Context, owner *account.Account, currency string) (uint64, error)
	TransferToSelf(ctx context.Context, owner *account.Account, currency string, amount uint64) error
	Refund(ctx context.Context, owner *account.Account, currency string, amount uint64) error
}
