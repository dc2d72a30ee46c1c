// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blinklabs-io/ledgerquery/internal/test"
	"github.com/blinklabs-io/ledgerquery/keys"
	"github.com/blinklabs-io/ledgerquery/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTxHash = strings.Repeat("ab", 32)

func writeTestFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewRequestFromArgs(t *testing.T) {
	testDefs := []struct {
		args     []string
		expected signRequest
	}{
		{
			args:     []string{"GetAccount", "alice@domain"},
			expected: signRequest{Kind: "GetAccount", AccountId: "alice@domain"},
		},
		{
			args: []string{"get-asset-info", "alice@domain", "coin#domain"},
			expected: signRequest{
				Kind:      "get-asset-info",
				AccountId: "alice@domain",
				AssetId:   "coin#domain",
			},
		},
		{
			args: []string{"get-role-permissions", "alice@domain", "admin"},
			expected: signRequest{
				Kind:      "get-role-permissions",
				AccountId: "alice@domain",
				RoleId:    "admin",
			},
		},
		{
			args: []string{"get-transactions", "alice@domain", testTxHash, testTxHash},
			expected: signRequest{
				Kind:      "get-transactions",
				AccountId: "alice@domain",
				TxHashes:  []string{testTxHash, testTxHash},
			},
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.args[0], func(t *testing.T) {
			req, err := newRequestFromArgs(testDef.args)
			require.NoError(t, err)
			assert.Equal(t, testDef.expected, *req)
		})
	}
}

func TestNewRequestFromArgsErrors(t *testing.T) {
	testDefs := []struct {
		name string
		args []string
	}{
		{name: "NoArgs", args: []string{}},
		{name: "UnknownKind", args: []string{"get-blocks", "alice@domain"}},
		{name: "BadAccount", args: []string{"get-account", "alice"}},
		{name: "MissingAsset", args: []string{"get-asset-info", "alice@domain"}},
		{name: "ExtraArgs", args: []string{"get-roles", "alice@domain", "x"}},
		{name: "BadTxHash", args: []string{"get-transactions", "alice@domain", "zz"}},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := newRequestFromArgs(testDef.args)
			assert.Error(t, err)
		})
	}
}

func TestLoadRequest(t *testing.T) {
	path := writeTestFile(
		t,
		"request.yaml",
		`kind: get-account-asset-transactions
account_id: alice@domain
asset_id: coin#domain
counter: 5
created_time: 1000
creator: admin@domain
`,
	)
	req, err := loadRequest(path)
	require.NoError(t, err)
	assert.Equal(
		t,
		signRequest{
			Kind:        "get-account-asset-transactions",
			AccountId:   "alice@domain",
			AssetId:     "coin#domain",
			Counter:     5,
			CreatedTime: 1000,
			Creator:     "admin@domain",
		},
		*req,
	)
}

func TestLoadRequestValidation(t *testing.T) {
	path := writeTestFile(
		t,
		"request.yaml",
		`kind: get-everything
account_id: Alice@domain
tx_hashes:
  - nothex
`,
	)
	_, err := loadRequest(path)
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "signRequest.Kind: unknown query kind")
	assert.Contains(t, msg, "signRequest.AccountId: must be of the form name@domain")
	assert.Contains(t, msg, "signRequest.TxHashes[0]: must be 64 hex characters")
}

func TestSignAndVerifyRequest(t *testing.T) {
	kp, err := keys.NewKeypairFromSeed(test.Seed(0x07))
	require.NoError(t, err)
	req, err := newRequestFromArgs([]string{"get-account", "alice@domain"})
	require.NoError(t, err)
	req.Counter = 5
	req.CreatedTime = 1000
	b, err := query.NewBuilder(kp, req.builderOptions()...)
	require.NoError(t, err)
	require.NoError(t, req.selectQuery(b))
	signed, err := b.Finalize()
	require.NoError(t, err)
	envelope, err := signed.Cbor()
	require.NoError(t, err)

	result, err := verifyEnvelope(hex.EncodeToString(envelope), kp.PublicKeyBech32())
	require.NoError(t, err)
	assert.Equal(t, "GetAccount", result.Kind)
	assert.Equal(t, uint64(5), result.Meta.Counter)
	assert.Equal(t, uint64(1000), result.Meta.CreatedTime)
	assert.Equal(t, kp.PublicKeyBech32(), result.PublicKey)
	assert.Equal(t, signed.Hash(), result.Hash)

	other, err := keys.NewKeypairFromSeed(test.Seed(0x08))
	require.NoError(t, err)
	_, err = verifyEnvelope(hex.EncodeToString(envelope), other.PublicKeyBech32())
	assert.ErrorIs(t, err, query.ErrInvalidSignature)
}

func TestLoadKeypair(t *testing.T) {
	kp, err := keys.NewKeypairFromSeed(test.Seed(0x07))
	require.NoError(t, err)

	ret, err := loadKeypair(kp.SecretKeyBech32())
	require.NoError(t, err)
	assert.Equal(t, kp.PublicKey(), ret.PublicKey())

	path := writeTestFile(t, "key.sk", kp.SecretKeyBech32()+"\n")
	ret, err = loadKeypair(path)
	require.NoError(t, err)
	assert.Equal(t, kp.PublicKey(), ret.PublicKey())

	_, err = loadKeypair("")
	assert.Error(t, err)
	_, err = loadKeypair(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
