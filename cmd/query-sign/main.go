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
	"log/slog"
	"os"
)

type globalFlags struct {
	flagset *flag.FlagSet
	debug   bool
}

func newGlobalFlags() *globalFlags {
	f := &globalFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.BoolVar(&f.debug, "debug", false, "enable debug logging")
	return f
}

func main() {
	f := newGlobalFlags()
	err := f.flagset.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if f.debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}),
	)
	slog.SetDefault(logger)

	if len(f.flagset.Args()) > 0 {
		switch f.flagset.Arg(0) {
		case "keygen":
			runKeygen(f)
		case "sign":
			runSign(f, logger)
		case "verify":
			runVerify(f)
		default:
			fmt.Printf("Unknown subcommand: %s\n", f.flagset.Arg(0))
			os.Exit(1)
		}
	} else {
		fmt.Printf("You must specify a subcommand (keygen, sign or verify)\n")
		os.Exit(1)
	}
}
