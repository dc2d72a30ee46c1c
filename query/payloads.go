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

	"github.com/blinklabs-io/ledgerquery/cbor"
)

// Payload is implemented by each query variant. Every payload encodes as a CBOR array
// whose first element is its QueryKind
type Payload interface {
	Kind() QueryKind
}

type GetAccountQuery struct {
	cbor.StructAsArray
	Type      QueryKind
	AccountId string
}

func (q *GetAccountQuery) Kind() QueryKind {
	return QueryKindGetAccount
}

type GetAccountAssetsQuery struct {
	cbor.StructAsArray
	Type      QueryKind
	AccountId string
}

func (q *GetAccountAssetsQuery) Kind() QueryKind {
	return QueryKindGetAccountAssets
}

type GetAccountDetailQuery struct {
	cbor.StructAsArray
	Type      QueryKind
	AccountId string
}

func (q *GetAccountDetailQuery) Kind() QueryKind {
	return QueryKindGetAccountDetail
}

type GetAccountTransactionsQuery struct {
	cbor.StructAsArray
	Type      QueryKind
	AccountId string
}

func (q *GetAccountTransactionsQuery) Kind() QueryKind {
	return QueryKindGetAccountTransactions
}

type GetAccountAssetTransactionsQuery struct {
	cbor.StructAsArray
	Type      QueryKind
	AccountId string
	AssetId   string
}

func (q *GetAccountAssetTransactionsQuery) Kind() QueryKind {
	return QueryKindGetAccountAssetTransactions
}

// GetTransactionsQuery looks up transactions by hash. Hash order is preserved
type GetTransactionsQuery struct {
	cbor.StructAsArray
	Type     QueryKind
	TxHashes [][]byte
}

func (q *GetTransactionsQuery) Kind() QueryKind {
	return QueryKindGetTransactions
}

type GetSignatoriesQuery struct {
	cbor.StructAsArray
	Type      QueryKind
	AccountId string
}

func (q *GetSignatoriesQuery) Kind() QueryKind {
	return QueryKindGetSignatories
}

type GetAssetInfoQuery struct {
	cbor.StructAsArray
	Type    QueryKind
	AssetId string
}

func (q *GetAssetInfoQuery) Kind() QueryKind {
	return QueryKindGetAssetInfo
}

// GetRolesQuery lists all roles. It carries no parameters besides its kind
type GetRolesQuery struct {
	cbor.StructAsArray
	Type QueryKind
}

func (q *GetRolesQuery) Kind() QueryKind {
	return QueryKindGetRoles
}

type GetRolePermissionsQuery struct {
	cbor.StructAsArray
	Type   QueryKind
	RoleId string
}

func (q *GetRolePermissionsQuery) Kind() QueryKind {
	return QueryKindGetRolePermissions
}

var payloadConstructors = map[int]func() any{
	int(QueryKindGetAccount):                  func() any { return &GetAccountQuery{} },
	int(QueryKindGetAccountAssets):            func() any { return &GetAccountAssetsQuery{} },
	int(QueryKindGetAccountDetail):            func() any { return &GetAccountDetailQuery{} },
	int(QueryKindGetAccountTransactions):      func() any { return &GetAccountTransactionsQuery{} },
	int(QueryKindGetAccountAssetTransactions): func() any { return &GetAccountAssetTransactionsQuery{} },
	int(QueryKindGetTransactions):             func() any { return &GetTransactionsQuery{} },
	int(QueryKindGetSignatories):              func() any { return &GetSignatoriesQuery{} },
	int(QueryKindGetAssetInfo):                func() any { return &GetAssetInfoQuery{} },
	int(QueryKindGetRoles):                    func() any { return &GetRolesQuery{} },
	int(QueryKindGetRolePermissions):          func() any { return &GetRolePermissionsQuery{} },
}

// NewPayloadFromCbor decodes a payload, selecting the variant by its leading kind
func NewPayloadFromCbor(data []byte) (Payload, error) {
	id, err := cbor.DecodeIdFromList(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode query kind: %w", err)
	}
	if _, ok := payloadConstructors[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownQueryKind, id)
	}
	ret, err := cbor.DecodeById(data, payloadConstructors)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s payload: %w", QueryKind(id), err)
	}
	payload, ok := ret.(Payload)
	if !ok {
		return nil, fmt.Errorf("unexpected payload type: %T", ret)
	}
	return payload, nil
}
