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

// Package query builds and signs read-queries against a ledger.
//
// # AI Navigation Guide
//
// Key files in this package:
//   - generator.go: one Generate* function per query kind (start here for payload work)
//   - payloads.go: payload types and decoding by kind
//   - identifiers.go: account, asset, role and transaction hash grammar
//   - query.go: the unsigned wire object and its metadata
//   - builder.go: the session object that stamps and signs queries
//   - envelope.go: the signed envelope handed to a transport
//
// # Wire Format
//
// All structures are canonical CBOR arrays:
//
//	Query       = [meta, payload]
//	meta        = [created_time, creator_account_id, counter]
//	payload     = [kind, params...]
//	SignedQuery = [bytes .cbor Query, public_key, signature]
//
// The signature covers the Query bytes exactly as carried in the envelope.
//
// # State Machine
//
// A Builder moves between these states:
//
//	Unselected -> Selected (any Get* call)
//	Selected   -> Selected (another Get* call replaces the query)
//	Selected   -> Signed   (Finalize; the builder stays usable)
//
// Finalize from Unselected fails with ErrIllegalState. A failed Get* call leaves the
// previous selection in place.
//
// # Counters
//
// The builder never advances its counter on its own. Call IncrementCounter (or create a new
// Builder) between queries; the ledger rejects a repeated counter for the same account.
//
// # Example Usage
//
//	kp, _ := keys.NewKeypairFromSeed(seed)
//	b, _ := query.NewBuilder(kp, query.WithCounter(5))
//	if _, err := b.GetAccount("alice@wonderland"); err != nil {
//	    return err
//	}
//	signed, _ := b.Finalize()
//	envelope, _ := signed.Cbor()
package query
