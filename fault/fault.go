// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// operation families - each is a closed set of outcomes
type AuctionError GenericError
type BidError GenericError
type VoteError GenericError

// common errors - keep in alphabetic order
var (
	CannotDecodeAccount   = RecordError("cannot decode account")
	CertificateFileExists = ExistsError("certificate file already exists")
	ChecksumMismatch      = ProcessError("checksum mismatch")
	ConfigurationNotTable = InvalidError("configuration did not return a table")
	DatabaseIsReadOnly    = ProcessError("database is read only")
	DatabaseVersionTooNew = InvalidError("database version is newer than this program")
	DescriptionTooLong    = LengthError("description too long")
	InsufficientFunds     = ProcessError("insufficient funds")
	InvalidCount          = InvalidError("invalid count")
	InvalidCurrency       = InvalidError("invalid currency")
	InvalidCursor         = InvalidError("invalid cursor")
	InvalidIpAddress      = InvalidError("invalid IP Address")
	InvalidKeyLength      = InvalidError("invalid key length")
	InvalidKeyType        = InvalidError("invalid key type")
	InvalidOwner          = InvalidError("invalid owner")
	InvalidPoolName       = InvalidError("invalid pool name")
	InvalidPortNumber     = InvalidError("invalid port number")
	InvalidPrivateKeyFile = InvalidError("invalid private key file")
	InvalidPublicKeyFile  = InvalidError("invalid public key file")
	InvalidStructPointer  = InvalidError("invalid struct pointer")
	InvalidUtf8           = InvalidError("invalid UTF-8")
	KeyFileExists         = ExistsError("key file already exists")
	MissingParameters     = InvalidError("missing parameters")
	NoSuchBid             = NotFoundError("no such bid")
	NotInitialised        = NotFoundError("not initialised")
	NotPublicKey          = InvalidError("not public key")
	NotRecordPack         = RecordError("not a packed record")
	RateLimiting          = InvalidError("rate limiting")
	RecordTooLarge        = LengthError("record too large")
	TimeTooLong           = LengthError("time too long")
	TitleTooLong          = LengthError("title too long")
	TitleTooShort         = LengthError("title too short")
	UnknownRecordType     = RecordError("unknown record type")
)

// auction family
var (
	AuctionAccessRejected = AuctionError("auction access rejected")
	AuctionIsNotActive    = AuctionError("auction is not active")
	AuctionNoBids         = AuctionError("auction has no bids")
	AuctionUpdateError    = AuctionError("auction update error")
	NoSuchAuction         = AuctionError("no such auction")
)

// bid family
var (
	AlreadyHighestBidder     = BidError("already highest bidder")
	BidAmountLessThanCurrent = BidError("bid amount less than current")
	BidAuctionIsNotActive    = BidError("bid: auction is not active")
	BidNoSuchAuction         = BidError("bid: no such auction")
	BidUpdateError           = BidError("bid update error")
	NotBidder                = BidError("not bidder")
	NotEnoughFunds           = BidError("not enough funds")
	TransferError            = BidError("transfer error")
)

// vote family
var (
	AlreadyVoted        = VoteError("already voted")
	InvalidChoice       = VoteError("invalid choice")
	NoSuchProposal      = VoteError("no such proposal")
	ProposalIsNotActive = VoteError("proposal is not active")
	VoteAccessRejected  = VoteError("vote access rejected")
	VoteUpdateError     = VoteError("vote update error")
)

// the error interface methods
func (e GenericError) Error() string  { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }
func (e AuctionError) Error() string  { return string(e) }
func (e BidError) Error() string      { return string(e) }
func (e VoteError) Error() string     { return string(e) }

// UpdateFailure - a family update error carrying the reason the store
// rejected the write
type UpdateFailure struct {
	Kind   error
	Reason error
}

// Update - wrap a store rejection in a family update error
func Update(kind error, reason error) error {
	return &UpdateFailure{
		Kind:   kind,
		Reason: reason,
	}
}

func (e *UpdateFailure) Error() string {
	return e.Kind.Error() + ": " + e.Reason.Error()
}

// Is - match the family kind
func (e *UpdateFailure) Is(target error) bool {
	return e.Kind == target
}

// Unwrap - expose the store reason
func (e *UpdateFailure) Unwrap() error {
	return e.Reason
}

// determine the class of an error
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrLength(e error) bool   { var t LengthError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
func IsErrRecord(e error) bool   { var t RecordError; return errors.As(e, &t) }

// determine the operation family of an error
func IsErrAuction(e error) bool { return isFamily(e, func(k error) bool { _, ok := k.(AuctionError); return ok }) }
func IsErrBid(e error) bool     { return isFamily(e, func(k error) bool { _, ok := k.(BidError); return ok }) }
func IsErrVote(e error) bool    { return isFamily(e, func(k error) bool { _, ok := k.(VoteError); return ok }) }

func isFamily(e error, match func(error) bool) bool {
	var u *UpdateFailure
	if errors.As(e, &u) {
		return match(u.Kind)
	}
	return nil != e && match(e)
}
