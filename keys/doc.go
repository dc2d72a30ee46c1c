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

// Package keys provides the ed25519 identity used to sign ledger queries.
//
// A Keypair is immutable once created. Its Sign and PublicKey methods make it usable
// directly as the signer of a query builder. Keys can be exchanged in bech32 form using
// the ed25519_pk and ed25519_sk prefixes.
package keys
