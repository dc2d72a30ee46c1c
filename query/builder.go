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
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/blinklabs-io/ledgerquery/cbor"
	"github.com/blinklabs-io/ledgerquery/keys"
)

// DefaultCounter is the first counter value of a session
const DefaultCounter uint64 = 1

// Signer is the signing capability bound to a Builder. *keys.Keypair implements it
type Signer interface {
	PublicKey() []byte
	Sign(message []byte) ([]byte, error)
}

// Builder holds one query session: an identity, a request counter and a creation time.
// Each Get* call replaces the selected query; Finalize signs it.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	signer           Signer
	counter          uint64
	createdTime      uint64
	createdTimeSet   bool
	creatorAccountId string
	clock            func() time.Time
	logger           *slog.Logger
	query            *Query
}

// NewBuilder returns a Builder bound to signer. The counter defaults to 1 and the creation
// time defaults to the current time in milliseconds
func NewBuilder(signer Signer, opts ...BuilderOptionFunc) (*Builder, error) {
	if signer == nil {
		return nil, fmt.Errorf("%w: signer is nil", ErrInvalidArgument)
	}
	b := &Builder{
		signer:  signer,
		counter: DefaultCounter,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	if b.clock == nil {
		b.clock = time.Now
	}
	if b.counter == 0 {
		return nil, fmt.Errorf("%w: counter must be at least 1", ErrInvalidArgument)
	}
	if b.creatorAccountId != "" {
		if err := ValidateAccountId(b.creatorAccountId); err != nil {
			return nil, err
		}
	}
	if err := keys.ValidatePublicKey(signer.PublicKey()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if !b.createdTimeSet {
		b.createdTime = b.now()
	}
	return b, nil
}

func (b *Builder) now() uint64 {
	ms := b.clock().UnixMilli()
	if ms < 0 {
		return 0
	}
	// #nosec G115 -- negative values handled above
	return uint64(ms)
}

// Counter returns the counter that the next selection will be stamped with
func (b *Builder) Counter() uint64 {
	return b.counter
}

// SetCounter changes the counter for later selections. The selected query keeps the
// counter it was stamped with
func (b *Builder) SetCounter(counter uint64) error {
	if counter == 0 {
		return fmt.Errorf("%w: counter must be at least 1", ErrInvalidArgument)
	}
	b.counter = counter
	return nil
}

// IncrementCounter advances the counter for later selections and returns the new value
func (b *Builder) IncrementCounter() (uint64, error) {
	if b.counter == math.MaxUint64 {
		return 0, fmt.Errorf("%w: counter overflow", ErrIllegalState)
	}
	b.counter++
	return b.counter, nil
}

// CreatedTime returns the creation time that the next selection will be stamped with
func (b *Builder) CreatedTime() uint64 {
	return b.createdTime
}

// SetCreatedTime changes the creation time for later selections
func (b *Builder) SetCreatedTime(createdTime uint64) {
	b.createdTime = createdTime
}

// RefreshCreatedTime sets the creation time for later selections from the clock
func (b *Builder) RefreshCreatedTime() uint64 {
	b.createdTime = b.now()
	return b.createdTime
}

// Selected returns the kind of the selected query, if any
func (b *Builder) Selected() (QueryKind, bool) {
	if b.query == nil {
		return 0, false
	}
	return b.query.Kind(), true
}

// Query returns a copy of the selected query, if any
func (b *Builder) Query() (*Query, bool) {
	if b.query == nil {
		return nil, false
	}
	ret, err := cloneQuery(b.query)
	if err != nil {
		b.logger.Error("failed to copy selected query", "error", err)
		return nil, false
	}
	return ret, true
}

// Reset drops the selected query
func (b *Builder) Reset() {
	b.query = nil
}

func (b *Builder) selectQuery(accountId string, payload Payload) *Builder {
	creator := accountId
	if b.creatorAccountId != "" {
		creator = b.creatorAccountId
	}
	b.query = &Query{
		Meta: QueryMeta{
			CreatedTime:      b.createdTime,
			CreatorAccountId: creator,
			Counter:          b.counter,
		},
		Payload: payload,
	}
	b.logger.Debug(
		"selected query",
		"kind", payload.Kind().String(),
		"counter", b.counter,
		"created_time", b.createdTime,
	)
	return b
}

func (b *Builder) GetAccount(accountId string) (*Builder, error) {
	payload, err := GenerateGetAccount(accountId)
	if err != nil {
		return nil, err
	}
	return b.selectQuery(accountId, payload), nil
}

func (b *Builder) GetAccountAssets(accountId string) (*Builder, error) {
	payload, err := GenerateGetAccountAssets(accountId)
	if err != nil {
		return nil, err
	}
	return b.selectQuery(accountId, payload), nil
}

func (b *Builder) GetAccountDetail(accountId string) (*Builder, error) {
	payload, err := GenerateGetAccountDetail(accountId)
	if err != nil {
		return nil, err
	}
	return b.selectQuery(accountId, payload), nil
}

func (b *Builder) GetAccountTransactions(accountId string) (*Builder, error) {
	payload, err := GenerateGetAccountTransactions(accountId)
	if err != nil {
		return nil, err
	}
	return b.selectQuery(accountId, payload), nil
}

func (b *Builder) GetAccountAssetTransactions(
	accountId string,
	assetId string,
) (*Builder, error) {
	payload, err := GenerateGetAccountAssetTransactions(accountId, assetId)
	if err != nil {
		return nil, err
	}
	return b.selectQuery(accountId, payload), nil
}

func (b *Builder) GetTransactions(
	accountId string,
	txHashes []string,
) (*Builder, error) {
	payload, err := GenerateGetTransactions(accountId, txHashes)
	if err != nil {
		return nil, err
	}
	return b.selectQuery(accountId, payload), nil
}

func (b *Builder) GetSignatories(accountId string) (*Builder, error) {
	payload, err := GenerateGetSignatories(accountId)
	if err != nil {
		return nil, err
	}
	return b.selectQuery(accountId, payload), nil
}

func (b *Builder) GetAssetInfo(accountId string, assetId string) (*Builder, error) {
	payload, err := GenerateGetAssetInfo(accountId, assetId)
	if err != nil {
		return nil, err
	}
	return b.selectQuery(accountId, payload), nil
}

func (b *Builder) GetRoles(accountId string) (*Builder, error) {
	payload, err := GenerateGetRoles(accountId)
	if err != nil {
		return nil, err
	}
	return b.selectQuery(accountId, payload), nil
}

func (b *Builder) GetRolePermissions(
	accountId string,
	roleId string,
) (*Builder, error) {
	payload, err := GenerateGetRolePermissions(accountId, roleId)
	if err != nil {
		return nil, err
	}
	return b.selectQuery(accountId, payload), nil
}

// Finalize encodes the selected query canonically and signs the encoded bytes. It does
// not change the counter, and it may be called again to re-sign the same query
func (b *Builder) Finalize() (*SignedQuery, error) {
	if b.query == nil {
		return nil, fmt.Errorf("%w: no query selected", ErrIllegalState)
	}
	queryCbor, err := cbor.Encode(b.query)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}
	signature, err := b.signer.Sign(queryCbor)
	if err != nil {
		return nil, fmt.Errorf("failed to sign query: %w", err)
	}
	ret := newSignedQuery(queryCbor, b.signer.PublicKey(), signature)
	b.logger.Debug(
		"finalized query",
		"kind", b.query.Kind().String(),
		"counter", b.query.Meta.Counter,
		"created_time", b.query.Meta.CreatedTime,
		"hash", ret.Hash().String(),
	)
	return ret, nil
}
