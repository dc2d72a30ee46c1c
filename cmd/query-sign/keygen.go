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
	"flag"
	"fmt"
	"os"

	"github.com/blinklabs-io/ledgerquery/keys"
)

type keygenFlags struct {
	flagset *flag.FlagSet
	output  string
}

func newKeygenFlags() *keygenFlags {
	f := &keygenFlags{
		flagset: flag.NewFlagSet("keygen", flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.output,
		"output",
		"",
		"write the bech32 secret key to this file instead of stdout",
	)
	return f
}

func runKeygen(f *globalFlags) {
	keygenFlags := newKeygenFlags()
	err := keygenFlags.flagset.Parse(f.flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	kp, err := keys.GenerateKeypair(nil)
	if err != nil {
		fmt.Printf("ERROR: failed to generate key: %s\n", err)
		os.Exit(1)
	}
	if keygenFlags.output != "" {
		if err := os.WriteFile(
			keygenFlags.output,
			[]byte(kp.SecretKeyBech32()+"\n"),
			0o600,
		); err != nil {
			fmt.Printf("ERROR: failed to write secret key: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("secret key: written to %s\n", keygenFlags.output)
	} else {
		fmt.Printf("secret key: %s\n", kp.SecretKeyBech32())
	}
	fmt.Printf("public key: %s\n", kp.PublicKeyBech32())
	fmt.Printf("key hash:   %s\n", kp.KeyHash().String())
}
