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

package cbor

import (
	_cbor "github.com/fxamacker/cbor/v2"
)

const (
	CborTypeArray uint8 = 0x80

	// Major type lives in the top 3 bits of the initial byte
	CborTypeMask uint8 = 0xe0

	// Largest argument that fits in the initial byte
	CborMaxUintSimple uint8 = 0x17
)

type RawMessage = _cbor.RawMessage

// StructAsArray is embedded in structs that are encoded as a CBOR array of their fields
type StructAsArray struct {
	_ struct{} `cbor:",toarray"`
}

// DecodeStoreCbor is embedded by types that need the exact bytes they were decoded from,
// such as anything that is hashed or signed
type DecodeStoreCbor struct {
	cborData []byte
}

// Cbor returns the original CBOR for the object
func (d *DecodeStoreCbor) Cbor() []byte {
	return d.cborData
}

// SetCbor stores a copy of the provided CBOR data
func (d *DecodeStoreCbor) SetCbor(cborData []byte) {
	if cborData == nil {
		d.cborData = nil
		return
	}
	d.cborData = make([]byte, len(cborData))
	copy(d.cborData, cborData)
}
