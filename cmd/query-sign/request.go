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

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/blinklabs-io/ledgerquery/keys"
	"github.com/blinklabs-io/ledgerquery/query"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// signRequest describes one query to build and sign. It can be read from a YAML file or
// assembled from positional arguments
type signRequest struct {
	Kind        string   `yaml:"kind"         validate:"required,query_kind"`
	AccountId   string   `yaml:"account_id"   validate:"required,ledger_account_id"`
	AssetId     string   `yaml:"asset_id"     validate:"omitempty,ledger_asset_id"`
	RoleId      string   `yaml:"role_id"      validate:"omitempty,ledger_role_id"`
	TxHashes    []string `yaml:"tx_hashes"    validate:"omitempty,dive,ledger_tx_hash"`
	Counter     uint64   `yaml:"counter"`
	CreatedTime uint64   `yaml:"created_time"`
	Creator     string   `yaml:"creator"      validate:"omitempty,ledger_account_id"`
}

var requestValidate = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := query.NewValidator()
	if err := v.RegisterValidation(
		"query_kind",
		func(fl validator.FieldLevel) bool {
			_, ok := query.QueryKindByName(fl.Field().String())
			return ok
		},
	); err != nil {
		panic(fmt.Sprintf("unexpected error registering validation: %s", err))
	}
	return v
}

func loadRequest(path string) (*signRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request file %q: %w", path, err)
	}
	var req signRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request file %q: %w", path, err)
	}
	if err := req.validate(); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}
	return &req, nil
}

func newRequestFromArgs(args []string) (*signRequest, error) {
	if len(args) < 2 {
		return nil, errors.New("expected a query kind and an account id")
	}
	req := &signRequest{
		Kind:      args[0],
		AccountId: args[1],
	}
	kind, ok := query.QueryKindByName(req.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown query kind: %s", req.Kind)
	}
	extra := args[2:]
	switch kind {
	case query.QueryKindGetAccountAssetTransactions, query.QueryKindGetAssetInfo:
		if len(extra) != 1 {
			return nil, fmt.Errorf("%s expects an asset id", kind)
		}
		req.AssetId = extra[0]
	case query.QueryKindGetRolePermissions:
		if len(extra) != 1 {
			return nil, fmt.Errorf("%s expects a role id", kind)
		}
		req.RoleId = extra[0]
	case query.QueryKindGetTransactions:
		req.TxHashes = extra
	default:
		if len(extra) != 0 {
			return nil, fmt.Errorf("%s takes no arguments after the account id", kind)
		}
	}
	if err := req.validate(); err != nil {
		return nil, err
	}
	return req, nil
}

func (r *signRequest) validate() error {
	err := requestValidate.Struct(r)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		msgs = append(
			msgs,
			fmt.Sprintf("%s: %s", fieldErr.Namespace(), validationMessage(fieldErr)),
		)
	}
	return errors.New(strings.Join(msgs, "; "))
}

func validationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "this field is required"
	case "query_kind":
		return "unknown query kind"
	case "ledger_account_id":
		return "must be of the form name@domain"
	case "ledger_asset_id":
		return "must be of the form name#domain"
	case "ledger_role_id":
		return "must be a lowercase name"
	case "ledger_tx_hash":
		return "must be 64 hex characters"
	default:
		return "invalid value"
	}
}

// builderOptions returns the options carried by the request, so flags can be layered
// on top of them
func (r *signRequest) builderOptions() []query.BuilderOptionFunc {
	var ret []query.BuilderOptionFunc
	if r.Counter != 0 {
		ret = append(ret, query.WithCounter(r.Counter))
	}
	if r.CreatedTime != 0 {
		ret = append(ret, query.WithCreatedTime(r.CreatedTime))
	}
	if r.Creator != "" {
		ret = append(ret, query.WithCreatorAccountId(r.Creator))
	}
	return ret
}

// selectQuery makes the request's query the builder's selected query
func (r *signRequest) selectQuery(b *query.Builder) error {
	kind, ok := query.QueryKindByName(r.Kind)
	if !ok {
		return fmt.Errorf("unknown query kind: %s", r.Kind)
	}
	var err error
	switch kind {
	case query.QueryKindGetAccount:
		_, err = b.GetAccount(r.AccountId)
	case query.QueryKindGetAccountAssets:
		_, err = b.GetAccountAssets(r.AccountId)
	case query.QueryKindGetAccountDetail:
		_, err = b.GetAccountDetail(r.AccountId)
	case query.QueryKindGetAccountTransactions:
		_, err = b.GetAccountTransactions(r.AccountId)
	case query.QueryKindGetAccountAssetTransactions:
		_, err = b.GetAccountAssetTransactions(r.AccountId, r.AssetId)
	case query.QueryKindGetTransactions:
		_, err = b.GetTransactions(r.AccountId, r.TxHashes)
	case query.QueryKindGetSignatories:
		_, err = b.GetSignatories(r.AccountId)
	case query.QueryKindGetAssetInfo:
		_, err = b.GetAssetInfo(r.AccountId, r.AssetId)
	case query.QueryKindGetRoles:
		_, err = b.GetRoles(r.AccountId)
	case query.QueryKindGetRolePermissions:
		_, err = b.GetRolePermissions(r.AccountId, r.RoleId)
	default:
		return fmt.Errorf("unsupported query kind: %s", kind)
	}
	return err
}

// loadKeypair accepts a bech32 secret key or the path to a file containing one
func loadKeypair(value string) (*keys.Keypair, error) {
	if value == "" {
		return nil, errors.New("no signing key specified")
	}
	if strings.HasPrefix(value, keys.SecretKeyBech32Prefix+"1") {
		return keys.NewKeypairFromBech32(value)
	}
	data, err := os.ReadFile(value)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file %q: %w", value, err)
	}
	return keys.NewKeypairFromBech32(strings.TrimSpace(string(data)))
}
