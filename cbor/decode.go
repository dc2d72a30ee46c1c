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
	"bytes"
	"errors"
	"fmt"
	"math"
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
)

var (
	cachedDecMode     _cbor.DecMode
	cachedDecModeErr  error
	cachedDecModeOnce sync.Once
)

// getDecMode builds the shared DecMode once. Later calls return the same mode, or the
// same error if building it failed
func getDecMode() (_cbor.DecMode, error) {
	cachedDecModeOnce.Do(func() {
		decOptions := _cbor.DecOptions{
			ExtraReturnErrors: _cbor.ExtraDecErrorUnknownField,
			// Signed payloads are always produced with definite lengths
			IndefLength: _cbor.IndefLengthForbidden,
			DupMapKey:   _cbor.DupMapKeyEnforcedAPF,
		}
		cachedDecMode, cachedDecModeErr = decOptions.DecMode()
	})
	return cachedDecMode, cachedDecModeErr
}

// Decode decodes the first CBOR item in dataBytes into dest and returns the number of bytes read
func Decode(dataBytes []byte, dest any) (int, error) {
	data := bytes.NewReader(dataBytes)
	decMode, err := getDecMode()
	if err != nil {
		return 0, err
	}
	if decMode == nil {
		return 0, errors.New("CBOR decoder mode not initialized")
	}
	dec := decMode.NewDecoder(data)
	err = dec.Decode(dest)
	return dec.NumBytesRead(), err
}

// DecodeStrict decodes dataBytes into dest and fails if any bytes remain after the first item
func DecodeStrict(dataBytes []byte, dest any) error {
	bytesRead, err := Decode(dataBytes, dest)
	if err != nil {
		return err
	}
	if bytesRead != len(dataBytes) {
		return fmt.Errorf(
			"found %d trailing bytes after CBOR item",
			len(dataBytes)-bytesRead,
		)
	}
	return nil
}

// DecodeIdFromList returns the leading item of a CBOR list, which must be an unsigned
// integer. Payloads use it as their kind tag
func DecodeIdFromList(cborData []byte) (int, error) {
	// Short lists with a small leading uint carry both in single header bytes
	listLen, err := ListLength(cborData)
	if err != nil {
		return 0, err
	}
	if listLen == 0 {
		return 0, errors.New("cannot return first item from empty list")
	}
	if listLen < int(CborMaxUintSimple) {
		if cborData[1] <= CborMaxUintSimple {
			return int(cborData[1]), nil
		}
	}
	var tmp []any
	if _, err := Decode(cborData, &tmp); err != nil {
		return 0, err
	}
	if len(tmp) == 0 {
		return 0, errors.New("cannot return first item from empty list")
	}
	switch v := tmp[0].(type) {
	case uint64:
		if v > uint64(math.MaxInt) {
			return 0, errors.New("decoded numeric value too large: uint64 > int")
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("first list item was not numeric, found: %v", v)
	}
}

// ListLength returns the number of items in the CBOR list at the start of cborData
func ListLength(cborData []byte) (int, error) {
	if len(cborData) == 0 {
		return 0, errors.New("no CBOR data provided")
	}
	if cborData[0]&CborTypeMask != CborTypeArray {
		return 0, fmt.Errorf("CBOR data is not a list: initial byte 0x%02x", cborData[0])
	}
	// Lengths up to 23 live in the initial byte
	if cborData[0] <= (CborTypeArray + CborMaxUintSimple) {
		return int(cborData[0]) - int(CborTypeArray), nil
	}
	var tmp []RawMessage
	if _, err := Decode(cborData, &tmp); err != nil {
		return 0, err
	}
	return len(tmp), nil
}

// DecodeById decodes a CBOR list into the type registered for its leading item. Each
// registered function returns a fresh pointer to decode into
func DecodeById(
	cborData []byte,
	idMap map[int]func() any,
) (any, error) {
	id, err := DecodeIdFromList(cborData)
	if err != nil {
		return nil, err
	}
	newFunc, ok := idMap[id]
	if !ok || newFunc == nil {
		return nil, fmt.Errorf("found unknown ID: %x", id)
	}
	ret := newFunc()
	if err := DecodeStrict(cborData, ret); err != nil {
		return nil, err
	}
	return ret, nil
}
