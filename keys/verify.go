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
	"crypto/ed25519"
	"fmt"

	"filippo.io/edwards25519"
)

// ValidatePublicKey checks that publicKey decodes to a curve point outside the
// small-order subgroup
func ValidatePublicKey(publicKey []byte) error {
	if len(publicKey) != PublicKeySize {
		return fmt.Errorf(
			"%w: public key must be %d bytes, got %d",
			ErrInvalidPublicKey,
			PublicKeySize,
			len(publicKey),
		)
	}
	point, err := new(edwards25519.Point).SetBytes(publicKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	isSmallOrder := new(edwards25519.Point).MultByCofactor(point).
		Equal(edwards25519.NewIdentityPoint()) == 1
	if isSmallOrder {
		return fmt.Errorf("%w: small-order point", ErrInvalidPublicKey)
	}
	return nil
}

// Verify reports whether signature is a valid signature of message by publicKey.
// Malformed keys and signatures never verify.
func Verify(publicKey []byte, message []byte, signature []byte) bool {
	if len(signature) != SignatureSize {
		return false
	}
	if err := ValidatePublicKey(publicKey); err != nil {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(publicKey), message, signature)
}
