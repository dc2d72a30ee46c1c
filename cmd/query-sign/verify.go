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
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/blinklabs-io/ledgerquery/keys"
	"github.com/blinklabs-io/ledgerquery/query"
)

type verifyFlags struct {
	flagset   *flag.FlagSet
	publicKey string
}

func newVerifyFlags() *verifyFlags {
	f := &verifyFlags{
		flagset: flag.NewFlagSet("verify", flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.publicKey,
		"public-key",
		"",
		"bech32 public key the envelope must be signed with",
	)
	return f
}

type verifyResult struct {
	Hash      query.QueryHash `json:"hash"`
	PublicKey string          `json:"publicKey"`
	Kind      string          `json:"kind"`
	Meta      query.QueryMeta `json:"meta"`
	Payload   query.Payload   `json:"payload"`
}

func runVerify(f *globalFlags) {
	verifyFlags := newVerifyFlags()
	err := verifyFlags.flagset.Parse(f.flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	if len(verifyFlags.flagset.Args()) != 1 {
		fmt.Printf("usage: verify [-public-key <bech32>] <envelope-hex>\n")
		os.Exit(1)
	}
	result, err := verifyEnvelope(verifyFlags.flagset.Arg(0), verifyFlags.publicKey)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Printf("ERROR: failed to format query: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("signature: valid\n%s\n", out)
}

func verifyEnvelope(envelopeHex string, expectedPublicKey string) (*verifyResult, error) {
	data, err := hex.DecodeString(strings.TrimSpace(envelopeHex))
	if err != nil {
		return nil, fmt.Errorf("failed to decode envelope hex: %w", err)
	}
	signed, err := query.NewSignedQueryFromCbor(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode envelope: %w", err)
	}
	if expectedPublicKey != "" {
		publicKey, err := keys.DecodePublicKeyBech32(expectedPublicKey)
		if err != nil {
			return nil, err
		}
		err = signed.VerifyWith(publicKey)
		if err != nil {
			return nil, err
		}
	} else if err := signed.Verify(); err != nil {
		return nil, err
	}
	q, err := signed.Query()
	if err != nil {
		return nil, err
	}
	return &verifyResult{
		Hash:      signed.Hash(),
		PublicKey: keys.EncodePublicKeyBech32(signed.PublicKey()),
		Kind:      q.Kind().String(),
		Meta:      q.Meta,
		Payload:   q.Payload,
	}, nil
}
