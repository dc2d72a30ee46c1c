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

import "errors"

// ErrInvalidArgument indicates a malformed or empty identifier, an empty required list, or
// a counter value the protocol does not allow
var ErrInvalidArgument = errors.New("invalid argument")

// ErrIllegalState indicates an operation that is not valid in the builder's current state,
// such as finalizing before any query has been selected
var ErrIllegalState = errors.New("illegal state")

// ErrInvalidSignature indicates that an envelope's signature does not verify
var ErrInvalidSignature = errors.New("invalid signature")

// ErrUnknownQueryKind indicates a payload with a kind tag this package does not know
var ErrUnknownQueryKind = errors.New("unknown query kind")
