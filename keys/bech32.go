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
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	PublicKeyBech32Prefix = "ed25519_pk"
	SecretKeyBech32Prefix = "ed25519_sk"
)

func encodeBech32(prefix string, data []byte) string {
	// Convert data to base32 and encode as bech32
	convData, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		panic(
			fmt.Sprintf("unexpected error converting data to base32: %s", err),
		)
	}
	encoded, err := bech32.Encode(prefix, convData)
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding data as bech32: %s", err))
	}
	return encoded
}

func decodeBech32(expectedPrefix string, value string) ([]byte, error) {
	prefix, data, err := bech32.Decode(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBech32, err)
	}
	if prefix != expectedPrefix {
		return nil, fmt.Errorf(
			"%w: expected prefix %q, got %q",
			ErrInvalidBech32,
			expectedPrefix,
			prefix,
		)
	}
	decoded, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBech32, err)
	}
	return decoded, nil
}

// DecodePublicKeyBech32 decodes and validates a bech32 public key with the ed25519_pk prefix
func DecodePublicKeyBech32(value string) ([]byte, error) {
	publicKey, err := decodeBech32(PublicKeyBech32Prefix, value)
	if err != nil {
		return nil, err
	}
	if err := ValidatePublicKey(publicKey); err != nil {
		return nil, err
	}
	return publicKey, nil
}

// EncodePublicKeyBech32 encodes a public key as bech32 with the ed25519_pk prefix
func EncodePublicKeyBech32(publicKey []byte) string {
	return encodeBech32(PublicKeyBech32Prefix, publicKey)
}
