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
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TxHashSize is the size in bytes of a transaction hash
const TxHashSize = 32

// Account, asset and role names share one grammar. Domains follow RFC 1123 hostnames
var nameRegexp = regexp.MustCompile(`^[a-z_0-9]{1,32}$`)

var validate *validator.Validate

func init() {
	validate = NewValidator()
}

// NewValidator returns a new validator with the ledger identifier tags registered:
// ledger_name, ledger_account_id, ledger_asset_id, ledger_role_id and ledger_tx_hash
func NewValidator() *validator.Validate {
	v := validator.New()
	validations := map[string]validator.Func{
		"ledger_name": func(fl validator.FieldLevel) bool {
			return nameRegexp.MatchString(fl.Field().String())
		},
		"ledger_account_id": func(fl validator.FieldLevel) bool {
			return ValidateAccountId(fl.Field().String()) == nil
		},
		"ledger_asset_id": func(fl validator.FieldLevel) bool {
			return ValidateAssetId(fl.Field().String()) == nil
		},
		"ledger_role_id": func(fl validator.FieldLevel) bool {
			return ValidateRoleId(fl.Field().String()) == nil
		},
		"ledger_tx_hash": func(fl validator.FieldLevel) bool {
			_, err := decodeTxHash(fl.Field().String())
			return err == nil
		},
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("unexpected error registering validation %q: %s", tag, err))
		}
	}
	return v
}

// Validator returns the shared validator used by this package. Callers that register
// their own tags should use NewValidator instead
func Validator() *validator.Validate {
	return validate
}

// ValidateAccountId checks that accountId has the form name@domain
func ValidateAccountId(accountId string) error {
	return validateQualifiedId("account id", accountId, "@")
}

// ValidateAssetId checks that assetId has the form name#domain
func ValidateAssetId(assetId string) error {
	return validateQualifiedId("asset id", assetId, "#")
}

// ValidateRoleId checks that roleId is a valid name
func ValidateRoleId(roleId string) error {
	if roleId == "" {
		return fmt.Errorf("%w: role id is empty", ErrInvalidArgument)
	}
	if !nameRegexp.MatchString(roleId) {
		return fmt.Errorf("%w: invalid role id %q", ErrInvalidArgument, roleId)
	}
	return nil
}

func validateQualifiedId(what string, id string, separator string) error {
	if id == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidArgument, what)
	}
	name, domain, ok := strings.Cut(id, separator)
	if !ok {
		return fmt.Errorf(
			"%w: %s %q is not of the form name%sdomain",
			ErrInvalidArgument,
			what,
			id,
			separator,
		)
	}
	if err := validate.Var(name, "ledger_name"); err != nil {
		return fmt.Errorf("%w: invalid name in %s %q", ErrInvalidArgument, what, id)
	}
	if err := validate.Var(domain, "required,hostname_rfc1123"); err != nil {
		return fmt.Errorf("%w: invalid domain in %s %q", ErrInvalidArgument, what, id)
	}
	return nil
}

func decodeTxHash(txHash string) ([]byte, error) {
	if err := validate.Var(txHash, "len=64,hexadecimal"); err != nil {
		return nil, fmt.Errorf(
			"%w: transaction hash %q must be %d hex characters",
			ErrInvalidArgument,
			txHash,
			TxHashSize*2,
		)
	}
	ret, err := hex.DecodeString(txHash)
	if err != nil {
		return nil, fmt.Errorf("%w: transaction hash %q: %w", ErrInvalidArgument, txHash, err)
	}
	return ret, nil
}
