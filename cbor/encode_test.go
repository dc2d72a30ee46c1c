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

package cbor_test

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/ledgerquery/cbor"
)

type encodeTestDefinition struct {
	CborHex string
	Object  any
}

type encodeTestStruct struct {
	cbor.StructAsArray
	Counter uint64
	Name    string
}

var encodeTests = []encodeTestDefinition{
	// Simple list of numbers
	{
		CborHex: "83010203",
		Object:  []any{1, 2, 3},
	},
	// Map keys are sorted
	{
		CborHex: "a2616101616202",
		Object:  map[string]int{"b": 2, "a": 1},
	},
	// Struct encoded as array
	{
		CborHex: "820563616263",
		Object:  encodeTestStruct{Counter: 5, Name: "abc"},
	},
	// Integers use the shortest form
	{
		CborHex: "1903e8",
		Object:  uint64(1000),
	},
}

func TestEncode(t *testing.T) {
	for _, test := range encodeTests {
		cborData, err := cbor.Encode(test.Object)
		if err != nil {
			t.Fatalf("failed to encode object to CBOR: %s", err)
		}
		cborHex := hex.EncodeToString(cborData)
		if cborHex != test.CborHex {
			t.Fatalf(
				"object did not encode to expected CBOR\n  got: %s\n  wanted: %s",
				cborHex,
				test.CborHex,
			)
		}
	}
}

func TestEncodeDeterministic(t *testing.T) {
	obj := map[string]any{
		"zeta":  []any{uint64(1), "two"},
		"alpha": []byte{0xde, 0xad},
		"mid":   map[int]string{3: "c", 1: "a", 2: "b"},
	}
	first, err := cbor.Encode(obj)
	if err != nil {
		t.Fatalf("failed to encode object to CBOR: %s", err)
	}
	for range 20 {
		again, err := cbor.Encode(obj)
		if err != nil {
			t.Fatalf("failed to encode object to CBOR: %s", err)
		}
		if hex.EncodeToString(again) != hex.EncodeToString(first) {
			t.Fatalf("encoding is not stable: %x != %x", again, first)
		}
	}
}
