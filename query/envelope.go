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

package query

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/blinklabs-io/ledgerquery/cbor"
	"github.com/blinklabs-io/ledgerquery/keys"
)

// SignedQuery is the authenticated envelope handed to a transport. It is immutable:
// all accessors return copies
type SignedQuery struct {
	queryCbor []byte
	publicKey []byte
	signature []byte
}

// signedQueryWire is the encoding of a SignedQuery: [query_cbor, public_key, signature]
type signedQueryWire struct {
	cbor.StructAsArray
	QueryCbor []byte
	PublicKey []byte
	Signature []byte
}

func newSignedQuery(queryCbor []byte, publicKey []byte, signature []byte) *SignedQuery {
	return &SignedQuery{
		queryCbor: bytes.Clone(queryCbor),
		publicKey: bytes.Clone(publicKey),
		signature: bytes.Clone(signature),
	}
}

// NewSignedQueryFromCbor decodes an envelope. The embedded query must decode, but the
// signature is not checked; use Verify for that
func NewSignedQueryFromCbor(data []byte) (*SignedQuery, error) {
	var ret SignedQuery
	if err := cbor.DecodeStrict(data, &ret); err != nil {
		return nil, err
	}
	if _, err := ret.Query(); err != nil {
		return nil, err
	}
	return &ret, nil
}

// QueryCbor returns the exact bytes that were signed
func (s *SignedQuery) QueryCbor() []byte {
	return bytes.Clone(s.queryCbor)
}

func (s *SignedQuery) PublicKey() []byte {
	return bytes.Clone(s.publicKey)
}

func (s *SignedQuery) Signature() []byte {
	return bytes.Clone(s.signature)
}

// Query decodes the signed query bytes
func (s *SignedQuery) Query() (*Query, error) {
	return NewQueryFromCbor(s.queryCbor)
}

// Hash returns the hash of the signed query bytes
func (s *SignedQuery) Hash() QueryHash {
	return NewQueryHash(s.queryCbor)
}

// Verify checks the signature against the public key carried in the envelope
func (s *SignedQuery) Verify() error {
	if !keys.Verify(s.publicKey, s.queryCbor, s.signature) {
		return fmt.Errorf("%w: signature does not match query", ErrInvalidSignature)
	}
	return nil
}

// VerifyWith checks that the envelope was signed by publicKey
func (s *SignedQuery) VerifyWith(publicKey []byte) error {
	if !bytes.Equal(s.publicKey, publicKey) {
		return fmt.Errorf("%w: public key mismatch", ErrInvalidSignature)
	}
	return s.Verify()
}

// Cbor returns the envelope encoding
func (s *SignedQuery) Cbor() ([]byte, error) {
	return cbor.Encode(s)
}

func (s *SignedQuery) MarshalCBOR() ([]byte, error) {
	tmp := signedQueryWire{
		QueryCbor: s.queryCbor,
		PublicKey: s.publicKey,
		Signature: s.signature,
	}
	return cbor.Encode(&tmp)
}

func (s *SignedQuery) UnmarshalCBOR(data []byte) error {
	var tmp signedQueryWire
	if _, err := cbor.Decode(data, &tmp); err != nil {
		return fmt.Errorf("failed to decode signed query: %w", err)
	}
	if len(tmp.QueryCbor) == 0 {
		return errors.New("signed query has no query data")
	}
	s.queryCbor = tmp.QueryCbor
	s.publicKey = tmp.PublicKey
	s.signature = tmp.Signature
	return nil
}
