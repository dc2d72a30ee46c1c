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
	"strings"
)

// QueryKind is the tag that selects the payload variant of a query
type QueryKind uint

// Query kinds. The values are part of the wire format and must not change
const (
	QueryKindGetAccount                  QueryKind = 0
	QueryKindGetAccountAssets            QueryKind = 1
	QueryKindGetAccountDetail            QueryKind = 2
	QueryKindGetAccountTransactions      QueryKind = 3
	QueryKindGetAccountAssetTransactions QueryKind = 4
	QueryKindGetTransactions             QueryKind = 5
	QueryKindGetSignatories              QueryKind = 6
	QueryKindGetAssetInfo                QueryKind = 7
	QueryKindGetRoles                    QueryKind = 8
	QueryKindGetRolePermissions          QueryKind = 9
)

var queryKindNames = map[QueryKind]string{
	QueryKindGetAccount:                  "GetAccount",
	QueryKindGetAccountAssets:            "GetAccountAssets",
	QueryKindGetAccountDetail:            "GetAccountDetail",
	QueryKindGetAccountTransactions:      "GetAccountTransactions",
	QueryKindGetAccountAssetTransactions: "GetAccountAssetTransactions",
	QueryKindGetTransactions:             "GetTransactions",
	QueryKindGetSignatories:              "GetSignatories",
	QueryKindGetAssetInfo:                "GetAssetInfo",
	QueryKindGetRoles:                    "GetRoles",
	QueryKindGetRolePermissions:          "GetRolePermissions",
}

func (k QueryKind) String() string {
	if name, ok := queryKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("QueryKind(%d)", uint(k))
}

// Valid reports whether k is one of the known query kinds
func (k QueryKind) Valid() bool {
	_, ok := queryKindNames[k]
	return ok
}

// QueryKinds returns all known query kinds in wire order
func QueryKinds() []QueryKind {
	return []QueryKind{
		QueryKindGetAccount,
		QueryKindGetAccountAssets,
		QueryKindGetAccountDetail,
		QueryKindGetAccountTransactions,
		QueryKindGetAccountAssetTransactions,
		QueryKindGetTransactions,
		QueryKindGetSignatories,
		QueryKindGetAssetInfo,
		QueryKindGetRoles,
		QueryKindGetRolePermissions,
	}
}

// QueryKindByName looks up a query kind by its name. The match ignores case and dashes,
// so "GetAccount" and "get-account" are equivalent
func QueryKindByName(name string) (QueryKind, bool) {
	name = strings.ReplaceAll(name, "-", "")
	for kind, kindName := range queryKindNames {
		if strings.EqualFold(kindName, name) {
			return kind, true
		}
	}
	return 0, false
}
