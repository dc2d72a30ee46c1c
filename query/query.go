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
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blinklabs-io/ledgerquery/cbor"
	"golang.org/x/crypto/blake2b"
)

const QueryHashSize = blake2b.Size256

// QueryHash is the Blake2b-256 hash of a query's canonical encoding
type QueryHash [QueryHashSize]byte

func NewQueryHash(queryCbor []byte) QueryHash {
	return QueryHash(blake2b.Sum256(queryCbor))
}

func (h QueryHash) String() string {
	return hex.EncodeToString(h[:])
}

func (h QueryHash) Bytes() []byte {
	return h[:]
}

func (h QueryHash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// QueryMeta is the metadata block shared by all query kinds
type QueryMeta struct {
	cbor.StructAsArray
	// CreatedTime is milliseconds since the Unix epoch
	CreatedTime      uint64
	CreatorAccountId string
	// Counter must increase for every query an account sends
	Counter uint64
}

// Query is the unsigned wire object: [meta, payload]
type Query struct {
	cbor.DecodeStoreCbor
	Meta    QueryMeta
	Payload Payload
}

// NewQueryFromCbor decodes a query. The original bytes are available from Cbor()
func NewQueryFromCbor(data []byte) (*Query, error) {
	var ret Query
	if err := cbor.DecodeStrict(data, &ret); err != nil {
		return nil, err
	}
	return &ret, nil
}

func (q *Query) Kind() QueryKind {
	return q.Payload.Kind()
}

func (q *Query) MarshalCBOR() ([]byte, error) {
	if q.Payload == nil {
		return nil, errors.New("query has no payload")
	}
	tmp := []any{
		q.Meta,
		q.Payload,
	}
	return cbor.Encode(tmp)
}

func (q *Query) UnmarshalCBOR(data []byte) error {
	var tmp struct {
		cbor.StructAsArray
		Meta    QueryMeta
		Payload cbor.RawMessage
	}
	if _, err := cbor.Decode(data, &tmp); err != nil {
		return fmt.Errorf("failed to decode query: %w", err)
	}
	payload, err := NewPayloadFromCbor(tmp.Payload)
	if err != nil {
		return err
	}
	q.Meta = tmp.Meta
	q.Payload = payload
	q.SetCbor(data)
	return nil
}

// Hash returns the hash of the query's original CBOR if it was decoded, or of its
// canonical encoding otherwise
func (q *Query) Hash() (QueryHash, error) {
	if queryCbor := q.Cbor(); queryCbor != nil {
		return NewQueryHash(queryCbor), nil
	}
	queryCbor, err := cbor.Encode(q)
	if err != nil {
		return QueryHash{}, err
	}
	return NewQueryHash(queryCbor), nil
}
