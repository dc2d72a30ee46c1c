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
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/blinklabs-io/ledgerquery/query"
)

type signFlags struct {
	flagset     *flag.FlagSet
	key         string
	counter     uint64
	createdTime uint64
	creator     string
	request     string
}

func newSignFlags() *signFlags {
	f := &signFlags{
		flagset: flag.NewFlagSet("sign", flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.key,
		"key",
		"",
		"bech32 secret key, or path to a file containing one",
	)
	f.flagset.Uint64Var(
		&f.counter,
		"counter",
		0,
		"request counter (defaults to 1)",
	)
	f.flagset.Uint64Var(
		&f.createdTime,
		"created-time",
		0,
		"creation time in milliseconds since the Unix epoch (defaults to now)",
	)
	f.flagset.StringVar(
		&f.creator,
		"creator",
		"",
		"requesting account id (defaults to the queried account)",
	)
	f.flagset.StringVar(
		&f.request,
		"request",
		"",
		"YAML file describing the query, used instead of positional arguments",
	)
	return f
}

func runSign(f *globalFlags, logger *slog.Logger) {
	signFlags := newSignFlags()
	err := signFlags.flagset.Parse(f.flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}

	var req *signRequest
	if signFlags.request != "" {
		req, err = loadRequest(signFlags.request)
	} else {
		req, err = newRequestFromArgs(signFlags.flagset.Args())
	}
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		fmt.Printf(
			"usage: sign [flags] <query-kind> <account-id> [asset-id | role-id | tx-hash...]\n",
		)
		os.Exit(1)
	}

	kp, err := loadKeypair(signFlags.key)
	if err != nil {
		fmt.Printf("ERROR: failed to load signing key: %s\n", err)
		os.Exit(1)
	}

	opts := req.builderOptions()
	opts = append(opts, query.WithLogger(logger))
	if signFlags.counter != 0 {
		opts = append(opts, query.WithCounter(signFlags.counter))
	}
	if signFlags.createdTime != 0 {
		opts = append(opts, query.WithCreatedTime(signFlags.createdTime))
	}
	if signFlags.creator != "" {
		opts = append(opts, query.WithCreatorAccountId(signFlags.creator))
	}
	b, err := query.NewBuilder(kp, opts...)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	if err := req.selectQuery(b); err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	signed, err := b.Finalize()
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	envelope, err := signed.Cbor()
	if err != nil {
		fmt.Printf("ERROR: failed to encode envelope: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("hash:     %s\n", signed.Hash().String())
	fmt.Printf("envelope: %s\n", hex.EncodeToString(envelope))
}
