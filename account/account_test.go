// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/auctiond/account"
	"github.com/bitmark-inc/auctiond/fault"
)

type accountTest struct {
	testnet       bool
	publicKey     []byte
	base58Account string
}

var testAccount = []accountTest{
	{
		testnet:       false,
		publicKey:     decodeHex("60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e"),
		base58Account: "anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("731114267f15754a5fce4aaed8380b28aff25af7b378b011d92ef7b3f08910db"),
		base58Account: "eopaSeB7uiSVMdAmTrijq3W2MCWA5KHZrZvm5QLFGRVd3oWNe2",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("cb6ff605f79deba3deb0c5122e40359a258481c151dffc176a2da5e8bc87cd2e"),
		base58Account: "fUjtNvmUJn7yJ7PVP7NT2FZbKDrudFxLVBHkwLJFgKWmGsPNVi",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("0000000000000000000000000000000000000000000000000000000000000000"),
		base58Account: "dw9MQXcC5rJZb3QE1nz86PiQAheMP1dx9M3dr52tT8NNs14m33",
	},
	{
		testnet:       false,
		publicKey:     decodeHex("0000000000000000000000000000000000000000000000000000000000000000"),
		base58Account: "a3ezwdYVEVrHwszQrYzDTCAZwUD3yKtNsCq9YhEu97bPaGAKy1",
	},
}

var testInvalidAccountFromBase58 = []struct {
	str string
	err error
}{
	{"3gLJjLSociTmf4kgL3ztUK;tgADFvg9yjXt1jFbEx9KgpEEAFn", fault.CannotDecodeAccount}, // invalid base58 string
	{"anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLDj", fault.ChecksumMismatch},    // checksum mismatch
	{"WjbRFkA9dhmMKnKTuufZ1sVD4E4H1NRnsmwjMKNHHRSCvDm5bXPV", fault.InvalidKeyType},    // undefined key algorithm
	{"YqVxD4vazrrnxnLH2MzCHJedPPz1VKHnKbVfya39nF96ABAYes", fault.NotPublicKey},        // private key
	{"3MvykBZzN", fault.InvalidKeyType},                                                 // zero key type
}

func TestValidBytes(t *testing.T) {
	for index, test := range testAccount {
		testnet := 0x00
		if test.testnet {
			testnet = 0x02
		}

		buffer := []byte{byte(account.ED25519<<4 | 0x01 | testnet)}
		buffer = append(buffer, test.publicKey...)
		acc, err := account.FromBytes(buffer)
		if !assert.Nil(t, err, "%d: from bytes", index) {
			continue
		}
		assert.Equal(t, buffer, acc.Bytes(), "%d: bytes", index)
		assert.Equal(t, test.base58Account, acc.String(), "%d: base58", index)
		assert.Equal(t, test.testnet, acc.IsTesting(), "%d: testnet", index)
	}
}

func TestValidBase58(t *testing.T) {
	for index, test := range testAccount {
		acc, err := account.FromBase58(test.base58Account)
		if !assert.Nil(t, err, "%d: from base58", index) {
			continue
		}
		assert.Equal(t, test.testnet, acc.IsTesting(), "%d: testnet", index)
		assert.Equal(t, test.publicKey, acc.PublicKey, "%d: public key", index)
		assert.Equal(t, test.base58Account, acc.String(), "%d: to base58", index)

		j := `"` + test.base58Account + `"`
		var a account.Account
		err = json.Unmarshal([]byte(j), &a)
		if !assert.Nil(t, err, "%d: from JSON", index) {
			continue
		}
		assert.True(t, acc.Equal(&a), "%d: JSON account differs", index)

		buffer, err := json.Marshal(a)
		assert.Nil(t, err, "%d: to JSON", index)
		assert.Equal(t, j, string(buffer), "%d: marshal JSON", index)
	}
}

func TestInvalidBase58(t *testing.T) {
	for index, test := range testInvalidAccountFromBase58 {
		_, err := account.FromBase58(test.str)
		assert.Equal(t, test.err, err, "%d: invalid base58 string: %s", index, test.str)
	}
}

func TestInvalidBytes(t *testing.T) {
	_, err := account.FromBytes([]byte{0x11, 0x01, 0x02})
	assert.Equal(t, fault.InvalidKeyLength, err)

	_, err = account.FromBytes([]byte{0x10, 0x01, 0x02})
	assert.Equal(t, fault.NotPublicKey, err)

	_, err = account.FromBytes(nil)
	assert.Equal(t, fault.NotPublicKey, err)
}

func TestEqual(t *testing.T) {
	a, _ := account.FromBase58(testAccount[3].base58Account)
	b, _ := account.FromBase58(testAccount[4].base58Account)
	c, _ := account.FromBase58(testAccount[4].base58Account)

	assert.False(t, a.Equal(b), "different network must differ")
	assert.True(t, b.Equal(c), "same key must match")
	assert.False(t, b.Equal(nil), "nil must differ")
}

func TestNew(t *testing.T) {
	acc, privateKey, err := account.New(true)
	assert.Nil(t, err, "new")
	assert.True(t, acc.IsTesting(), "test flag")
	assert.Equal(t, 64, len(privateKey), "private key size")

	decoded, err := account.FromBase58(acc.String())
	assert.Nil(t, err, "decode")
	assert.True(t, acc.Equal(decoded), "round trip")
}

func decodeHex(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}
