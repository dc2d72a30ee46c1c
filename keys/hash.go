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

package keys

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

const KeyHashSize = 28

// KeyHashBech32Prefix is used when rendering a KeyHash for humans
const KeyHashBech32Prefix = "ed25519_pkh"

// KeyHash identifies a public key by its Blake2b-224 hash
type KeyHash [KeyHashSize]byte

// NewKeyHash hashes the provided public key
func NewKeyHash(publicKey []byte) KeyHash {
	tmpHash, err := blake2b.New(KeyHashSize, nil)
	if err != nil {
		panic(
			fmt.Sprintf(
				"unexpected error generating empty blake2b hash: %s",
				err,
			),
		)
	}
	tmpHash.Write(publicKey)
	return KeyHash(tmpHash.Sum(nil))
}

func (k KeyHash) String() string {
	return hex.EncodeToString(k[:])
}

func (k KeyHash) Bytes() []byte {
	return k[:]
}

func (k KeyHash) Bech32() string {
	return encodeBech32(KeyHashBech32Prefix, k[:])
}

func (k KeyHash) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}
