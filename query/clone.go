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
	"reflect"

	"github.com/jinzhu/copier"
)

// cloneQuery returns a deep copy of q without its stored CBOR
func cloneQuery(q *Query) (*Query, error) {
	ret := &Query{
		Meta: q.Meta,
	}
	if q.Payload == nil {
		return ret, nil
	}
	payloadType := reflect.TypeOf(q.Payload)
	if payloadType.Kind() != reflect.Pointer {
		return nil, fmt.Errorf("unexpected payload type: %T", q.Payload)
	}
	tmpPayload := reflect.New(payloadType.Elem()).Interface()
	if err := copier.CopyWithOption(
		tmpPayload,
		q.Payload,
		copier.Option{DeepCopy: true},
	); err != nil {
		return nil, fmt.Errorf("failed to copy payload: %w", err)
	}
	payload, ok := tmpPayload.(Payload)
	if !ok {
		return nil, fmt.Errorf("unexpected payload type: %T", tmpPayload)
	}
	ret.Payload = payload
	return ret, nil
}
