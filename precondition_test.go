// Copyright 2025 The Rivaas Authors
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

package resource

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStrongMatch(t *testing.T) {
	t.Parallel()
	a := EntityTag{Opaque: "v1"}
	b := EntityTag{Opaque: "v1"}
	weakB := EntityTag{Weak: true, Opaque: "v1"}

	assert.True(t, StrongMatch(a, b))
	assert.False(t, StrongMatch(a, weakB))
	assert.False(t, StrongMatch(weakB, a))
}

func TestStrongMatch_Symmetric(t *testing.T) {
	t.Parallel()
	a := EntityTag{Opaque: "x"}
	b := EntityTag{Opaque: "y"}
	assert.Equal(t, StrongMatch(a, b), StrongMatch(b, a))

	c := EntityTag{Opaque: "x"}
	assert.Equal(t, StrongMatch(a, c), StrongMatch(c, a))
}

func TestWeakMatch(t *testing.T) {
	t.Parallel()
	a := EntityTag{Weak: true, Opaque: "v1"}
	b := EntityTag{Opaque: "v1"}
	assert.True(t, WeakMatch(a, b))

	c := EntityTag{Opaque: "v2"}
	assert.False(t, WeakMatch(a, c))
}

func TestAnyMatches(t *testing.T) {
	t.Parallel()
	candidates := []EntityTag{{Opaque: "a"}, {Opaque: "b"}}
	assert.True(t, anyMatches(EntityTag{Opaque: "b"}, candidates, StrongMatch))
	assert.False(t, anyMatches(EntityTag{Opaque: "c"}, candidates, StrongMatch))
}

func TestModifiedSince(t *testing.T) {
	t.Parallel()
	older := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, modifiedSince(newer, older))
	assert.False(t, modifiedSince(older, newer))
	assert.False(t, modifiedSince(time.Time{}, older))
}

func TestUnmodifiedSince(t *testing.T) {
	t.Parallel()
	older := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, unmodifiedSince(older, newer))
	assert.False(t, unmodifiedSince(newer, older))
	assert.False(t, unmodifiedSince(time.Time{}, newer))
}
