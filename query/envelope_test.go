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

package query_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/blinklabs-io/ledgerquery/cbor"
	"github.com/blinklabs-io/ledgerquery/internal/test"
	"github.com/blinklabs-io/ledgerquery/keys"
	"github.com/blinklabs-io/ledgerquery/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSignedQuery(t *testing.T) *query.SignedQuery {
	t.Helper()
	b := newTestBuilder(t)
	_, err := b.GetAccount("alice@domain")
	require.NoError(t, err)
	signed, err := b.Finalize()
	require.NoError(t, err)
	return signed
}

func encodeEnvelope(t *testing.T, queryCbor []byte, publicKey []byte, signature []byte) []byte {
	t.Helper()
	data, err := cbor.Encode([]any{queryCbor, publicKey, signature})
	require.NoError(t, err)
	return data
}

func TestSignedQueryVerify(t *testing.T) {
	signed := newTestSignedQuery(t)
	require.NoError(t, signed.Verify())
	require.NoError(t, signed.VerifyWith(newTestKeypair(t).PublicKey()))
}

func TestSignedQueryVerifyWithOtherKey(t *testing.T) {
	signed := newTestSignedQuery(t)
	other, err := keys.NewKeypairFromSeed(test.Seed(0x01))
	require.NoError(t, err)
	err = signed.VerifyWith(other.PublicKey())
	require.Error(t, err)
	assert.True(t, errors.Is(err, query.ErrInvalidSignature))
}

func TestSignedQueryTamperedBytes(t *testing.T) {
	signed := newTestSignedQuery(t)
	queryCbor := signed.QueryCbor()
	for i := range queryCbor {
		tampered := bytes.Clone(queryCbor)
		tampered[i] ^= 0x01
		assert.False(
			t,
			keys.Verify(signed.PublicKey(), tampered, signed.Signature()),
			"byte %d", i,
		)
	}
}

func TestSignedQueryTamperedCounter(t *testing.T) {
	signed := newTestSignedQuery(t)
	queryCbor := signed.QueryCbor()
	// meta is [1000, "alice@domain", 5]; the counter is the last byte of the meta array
	counterIdx := bytes.Index(queryCbor, []byte("alice@domain")) + len("alice@domain")
	require.Equal(t, byte(0x05), queryCbor[counterIdx])
	queryCbor[counterIdx] = 0x06
	data := encodeEnvelope(t, queryCbor, signed.PublicKey(), signed.Signature())
	decoded, err := query.NewSignedQueryFromCbor(data)
	require.NoError(t, err)
	q, err := decoded.Query()
	require.NoError(t, err)
	assert.Equal(t, uint64(6), q.Meta.Counter)
	err = decoded.Verify()
	require.Error(t, err)
	assert.True(t, errors.Is(err, query.ErrInvalidSignature))
}

func TestSignedQueryCborRoundTrip(t *testing.T) {
	signed := newTestSignedQuery(t)
	data, err := signed.Cbor()
	require.NoError(t, err)
	assert.Equal(
		t,
		encodeEnvelope(t, signed.QueryCbor(), signed.PublicKey(), signed.Signature()),
		data,
	)
	decoded, err := query.NewSignedQueryFromCbor(data)
	require.NoError(t, err)
	assert.Equal(t, signed.QueryCbor(), decoded.QueryCbor())
	assert.Equal(t, signed.PublicKey(), decoded.PublicKey())
	assert.Equal(t, signed.Signature(), decoded.Signature())
	require.NoError(t, decoded.Verify())
	reencoded, err := decoded.Cbor()
	require.NoError(t, err)
	assert.Equal(t, data, reencoded)
}

func TestSignedQueryHash(t *testing.T) {
	signed := newTestSignedQuery(t)
	assert.Equal(t, query.NewQueryHash(signed.QueryCbor()), signed.Hash())
	q, err := signed.Query()
	require.NoError(t, err)
	hash, err := q.Hash()
	require.NoError(t, err)
	assert.Equal(t, signed.Hash(), hash)
}

func TestSignedQueryAccessorsReturnCopies(t *testing.T) {
	signed := newTestSignedQuery(t)
	queryCbor := signed.QueryCbor()
	queryCbor[0] ^= 0xff
	sig := signed.Signature()
	sig[0] ^= 0xff
	pub := signed.PublicKey()
	pub[0] ^= 0xff
	require.NoError(t, signed.Verify())
}

func TestNewSignedQueryFromCborErrors(t *testing.T) {
	signed := newTestSignedQuery(t)
	testDefs := []struct {
		name string
		data []byte
	}{
		{
			name: "NotAnArray",
			data: test.DecodeHexString("01"),
		},
		{
			name: "EmptyQuery",
			data: encodeEnvelope(t, []byte{}, signed.PublicKey(), signed.Signature()),
		},
		{
			name: "QueryNotDecodable",
			data: encodeEnvelope(t, []byte{0x01}, signed.PublicKey(), signed.Signature()),
		},
		{
			name: "TrailingBytes",
			data: append(
				encodeEnvelope(t, signed.QueryCbor(), signed.PublicKey(), signed.Signature()),
				0x00,
			),
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			ret, err := query.NewSignedQueryFromCbor(testDef.data)
			require.Error(t, err)
			assert.Nil(t, ret)
		})
	}
}

func TestSignedQueryMalformedKeyDoesNotVerify(t *testing.T) {
	signed := newTestSignedQuery(t)
	data := encodeEnvelope(t, signed.QueryCbor(), []byte{0x01, 0x02}, signed.Signature())
	decoded, err := query.NewSignedQueryFromCbor(data)
	require.NoError(t, err)
	assert.True(t, errors.Is(decoded.Verify(), query.ErrInvalidSignature))
}
