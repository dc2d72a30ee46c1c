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
)

// The Generate* functions map a query request to its payload. They touch no shared state
// and never set metadata. The requesting account is validated for every kind, including
// kinds whose payload does not carry it.

func GenerateGetAccount(accountId string) (*GetAccountQuery, error) {
	if err := ValidateAccountId(accountId); err != nil {
		return nil, err
	}
	return &GetAccountQuery{
		Type:      QueryKindGetAccount,
		AccountId: accountId,
	}, nil
}

func GenerateGetAccountAssets(accountId string) (*GetAccountAssetsQuery, error) {
	if err := ValidateAccountId(accountId); err != nil {
		return nil, err
	}
	return &GetAccountAssetsQuery{
		Type:      QueryKindGetAccountAssets,
		AccountId: accountId,
	}, nil
}

func GenerateGetAccountDetail(accountId string) (*GetAccountDetailQuery, error) {
	if err := ValidateAccountId(accountId); err != nil {
		return nil, err
	}
	return &GetAccountDetailQuery{
		Type:      QueryKindGetAccountDetail,
		AccountId: accountId,
	}, nil
}

func GenerateGetAccountTransactions(
	accountId string,
) (*GetAccountTransactionsQuery, error) {
	if err := ValidateAccountId(accountId); err != nil {
		return nil, err
	}
	return &GetAccountTransactionsQuery{
		Type:      QueryKindGetAccountTransactions,
		AccountId: accountId,
	}, nil
}

func GenerateGetAccountAssetTransactions(
	accountId string,
	assetId string,
) (*GetAccountAssetTransactionsQuery, error) {
	if err := ValidateAccountId(accountId); err != nil {
		return nil, err
	}
	if err := ValidateAssetId(assetId); err != nil {
		return nil, err
	}
	return &GetAccountAssetTransactionsQuery{
		Type:      QueryKindGetAccountAssetTransactions,
		AccountId: accountId,
		AssetId:   assetId,
	}, nil
}

// GenerateGetTransactions requires at least one hash. Each hash is 64 hex characters
func GenerateGetTransactions(
	accountId string,
	txHashes []string,
) (*GetTransactionsQuery, error) {
	if err := ValidateAccountId(accountId); err != nil {
		return nil, err
	}
	if len(txHashes) == 0 {
		return nil, fmt.Errorf("%w: transaction hash list is empty", ErrInvalidArgument)
	}
	ret := &GetTransactionsQuery{
		Type:     QueryKindGetTransactions,
		TxHashes: make([][]byte, 0, len(txHashes)),
	}
	for _, txHash := range txHashes {
		hashBytes, err := decodeTxHash(txHash)
		if err != nil {
			return nil, err
		}
		ret.TxHashes = append(ret.TxHashes, hashBytes)
	}
	return ret, nil
}

func GenerateGetSignatories(accountId string) (*GetSignatoriesQuery, error) {
	if err := ValidateAccountId(accountId); err != nil {
		return nil, err
	}
	return &GetSignatoriesQuery{
		Type:      QueryKindGetSignatories,
		AccountId: accountId,
	}, nil
}

func GenerateGetAssetInfo(
	accountId string,
	assetId string,
) (*GetAssetInfoQuery, error) {
	if err := ValidateAccountId(accountId); err != nil {
		return nil, err
	}
	if err := ValidateAssetId(assetId); err != nil {
		return nil, err
	}
	return &GetAssetInfoQuery{
		Type:    QueryKindGetAssetInfo,
		AssetId: assetId,
	}, nil
}

func GenerateGetRoles(accountId string) (*GetRolesQuery, error) {
	if err := ValidateAccountId(accountId); err != nil {
		return nil, err
	}
	return &GetRolesQuery{
		Type: QueryKindGetRoles,
	}, nil
}

func GenerateGetRolePermissions(
	accountId string,
	roleId string,
) (*GetRolePermissionsQuery, error) {
	if err := ValidateAccountId(accountId); err != nil {
		return nil, err
	}
	if err := ValidateRoleId(roleId); err != nil {
		return nil, err
	}
	return &GetRolePermissionsQuery{
		Type:   QueryKindGetRolePermissions,
		RoleId: roleId,
	}, nil
}
