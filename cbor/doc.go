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

// Package cbor provides the canonical CBOR encoding used for ledger queries.
//
// This package wraps github.com/fxamacker/cbor/v2. Encoding always uses the core
// deterministic mode, so the same value produces the same bytes on every call and on
// every platform. That property is what makes a signature over the encoded bytes
// meaningful to a verifier that re-encodes the query.
//
// # Key Types
//
//   - StructAsArray: Embed to encode struct fields as a CBOR array instead of a map
//   - DecodeStoreCbor: Embed to preserve original CBOR bytes for hashing and signing
//   - RawMessage: Deferred decoding (like json.RawMessage)
//
// # Decoding by leading ID
//
// Tagged unions on the wire are encoded as [id, fields...]. DecodeById peeks at the id
// and decodes into a fresh value produced by the matching constructor:
//
//	ret, err := cbor.DecodeById(data, map[int]func() any{
//	    0: func() any { return &First{} },
//	    1: func() any { return &Second{} },
//	})
package cbor
