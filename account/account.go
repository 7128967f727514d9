// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/auctiond/fault"
	"github.com/bitmark-inc/auctiond/util"
)

// enumeration of supported key algorithms
const (
	// list of valid algorithms
	Nothing = iota // zero keytype **Just for Testing**
	ED25519 = iota
	// end of list (one greater than last item)
	algorithmLimit = iota
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - the identity of a caller
//
// only Ed25519 public keys are accepted; the test flag selects
// the network the key was generated for
type Account struct {
	Test      bool
	PublicKey []byte
}

// New - create a fresh identity and return it with its private key
func New(test bool) (*Account, ed25519.PrivateKey, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, nil, err
	}
	a := &Account{
		Test:      test,
		PublicKey: publicKey,
	}
	return a, privateKey, nil
}

// FromBase58 - convert a Base58 encoded string to an account
func FromBase58(accountBase58Encoded string) (*Account, error) {
	decoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || 0 == len(decoded) {
		return nil, fault.CannotDecodeAccount
	}

	keyVariantLength, err := checkVariant(decoded)
	if nil != err {
		return nil, err
	}

	checksumStart := len(decoded) - checksumLength
	if checksumStart <= keyVariantLength {
		return nil, fault.InvalidKeyLength
	}
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}
	return FromBytes(decoded[:checksumStart])
}

// FromBytes - convert the packed form of an account
func FromBytes(accountBytes []byte) (*Account, error) {
	keyVariantLength, err := checkVariant(accountBytes)
	if nil != err {
		return nil, err
	}

	keyLength := len(accountBytes) - keyVariantLength
	if keyLength != ed25519.PublicKeySize {
		return nil, fault.InvalidKeyLength
	}

	publicKey := make([]byte, keyLength)
	copy(publicKey, accountBytes[keyVariantLength:])

	a := &Account{
		Test:      0 != accountBytes[0]&testKeyCode,
		PublicKey: publicKey,
	}
	return a, nil
}

// validate the leading key variant and return its length
func checkVariant(buffer []byte) (int, error) {
	keyVariant, keyVariantLength := util.FromVarint64(buffer)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return 0, fault.NotPublicKey
	}

	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm >= algorithmLimit || keyAlgorithm != ED25519 {
		return 0, fault.InvalidKeyType
	}
	return keyVariantLength, nil
}

// Bytes - packed form: key variant followed by the public key
func (account *Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey...)
}

// String - base58 encoding of packed key with checksum
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// Equal - true if both refer to the same identity
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other {
		return account == other
	}
	return account.Test == other.Test && bytes.Equal(account.PublicKey, other.PublicKey)
}

// IsTesting - whether the public key is for the test network
func (account *Account) IsTesting() bool {
	return account.Test
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert Base58 JSON form to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*account = *a
	return nil
}
