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
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

const (
	PublicKeySize = ed25519.PublicKeySize
	SeedSize      = ed25519.SeedSize
	SignatureSize = ed25519.SignatureSize
)

var (
	ErrInvalidSeed      = errors.New("invalid key seed")
	ErrInvalidPublicKey = errors.New("invalid public key")
	ErrInvalidBech32    = errors.New("invalid bech32 key")
)

// Keypair is an ed25519 signing identity
type Keypair struct {
	publicKey  ed25519.PublicKey
	privateKey ed25519.PrivateKey
}

// GenerateKeypair creates a new random keypair. If r is nil, crypto/rand is used
func GenerateKeypair(r io.Reader) (*Keypair, error) {
	if r == nil {
		r = rand.Reader
	}
	pub, priv, err := ed25519.GenerateKey(r)
	if err != nil {
		return nil, fmt.Errorf("failed to generate keypair: %w", err)
	}
	return &Keypair{
		publicKey:  pub,
		privateKey: priv,
	}, nil
}

// NewKeypairFromSeed derives a keypair from a 32-byte seed
func NewKeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf(
			"%w: seed must be %d bytes, got %d",
			ErrInvalidSeed,
			SeedSize,
			len(seed),
		)
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pub, ok := priv.Public().(ed25519.PublicKey)
	if !ok {
		return nil, errors.New("unexpected public key type")
	}
	return &Keypair{
		publicKey:  pub,
		privateKey: priv,
	}, nil
}

// NewKeypairFromBech32 derives a keypair from a bech32 secret key with the ed25519_sk prefix
func NewKeypairFromBech32(secretKey string) (*Keypair, error) {
	seed, err := decodeBech32(SecretKeyBech32Prefix, secretKey)
	if err != nil {
		return nil, err
	}
	return NewKeypairFromSeed(seed)
}

// PublicKey returns a copy of the 32-byte public key
func (k *Keypair) PublicKey() []byte {
	if k == nil {
		return nil
	}
	ret := make([]byte, len(k.publicKey))
	copy(ret, k.publicKey)
	return ret
}

// Seed returns a copy of the 32-byte private seed
func (k *Keypair) Seed() []byte {
	return k.privateKey.Seed()
}

// Sign returns the ed25519 signature of message
func (k *Keypair) Sign(message []byte) ([]byte, error) {
	if k == nil || len(k.privateKey) != ed25519.PrivateKeySize {
		return nil, errors.New("keypair has no private key")
	}
	return ed25519.Sign(k.privateKey, message), nil
}

// KeyHash returns the Blake2b-224 hash of the public key
func (k *Keypair) KeyHash() KeyHash {
	return NewKeyHash(k.publicKey)
}

// PublicKeyBech32 returns the public key in bech32 form
func (k *Keypair) PublicKeyBech32() string {
	return EncodePublicKeyBech32(k.publicKey)
}

// SecretKeyBech32 returns the private seed in bech32 form
func (k *Keypair) SecretKeyBech32() string {
	return encodeBech32(SecretKeyBech32Prefix, k.privateKey.Seed())
}
