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
	"log/slog"
	"time"
)

type BuilderOptionFunc func(*Builder)

// WithCounter sets the request counter. The protocol requires counters to start at 1
func WithCounter(counter uint64) BuilderOptionFunc {
	return func(b *Builder) {
		b.counter = counter
	}
}

// WithCreatedTime sets the creation time in milliseconds since the Unix epoch instead of
// reading it from the clock
func WithCreatedTime(createdTime uint64) BuilderOptionFunc {
	return func(b *Builder) {
		b.createdTime = createdTime
		b.createdTimeSet = true
	}
}

// WithClock sets the clock used to default the creation time
func WithClock(clock func() time.Time) BuilderOptionFunc {
	return func(b *Builder) {
		b.clock = clock
	}
}

func WithLogger(logger *slog.Logger) BuilderOptionFunc {
	return func(b *Builder) {
		b.logger = logger
	}
}

// WithCreatorAccountId fixes the requesting account recorded in every query's metadata.
// By default the account passed to each Get* call is used
func WithCreatorAccountId(accountId string) BuilderOptionFunc {
	return func(b *Builder) {
		b.creatorAccountId = accountId
	}
}
