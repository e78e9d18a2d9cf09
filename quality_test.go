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

	"github.com/stretchr/testify/assert"
)

func TestBest_DropsZeroQuality(t *testing.T) {
	t.Parallel()
	accept := []QualityItem[string]{
		{Value: "gzip", Quality: 0},
		{Value: "br", Quality: 0.5},
	}
	v, ok := Best(accept, []string{"gzip", "br"}, matchSimple)
	assert.True(t, ok)
	assert.Equal(t, "br", v)
}

func TestBest_NoMatch(t *testing.T) {
	t.Parallel()
	accept := []QualityItem[string]{{Value: "fr", Quality: 1}}
	_, ok := Best(accept, []string{"en"}, matchSimple)
	assert.False(t, ok)
}

func TestBest_SortStability(t *testing.T) {
	t.Parallel()
	// Two equal-quality entries; accept order decides the tie, not
	// available list order, since sort is stable over equal keys and the
	// first accept entry that matches anything wins.
	accept := []QualityItem[string]{
		{Value: "a", Quality: 0.8},
		{Value: "b", Quality: 0.8},
	}
	v, ok := Best(accept, []string{"b", "a"}, matchSimple)
	assert.True(t, ok)
	assert.Equal(t, "a", v, "stable sort keeps accept order; a is scanned first")
}

func TestBest_EmptyAvailable(t *testing.T) {
	t.Parallel()
	_, ok := Best([]QualityItem[string]{{Value: "*", Quality: 1}}, nil, matchSimple)
	assert.False(t, ok)
}

func TestParseQuality(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in    string
		want  float64
		valid bool
	}{
		{"1", 1, true},
		{"1.0", 1, true},
		{"1.000", 1, true},
		{"0", 0, true},
		{"0.9", 0.9, true},
		{"0.85", 0.85, true},
		{"0.001", 0.001, true},
		{"1.1", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := parseQuality(c.in)
		assert.Equalf(t, c.valid, ok, "input %q", c.in)
		if ok {
			assert.InDeltaf(t, c.want, got, 0.0001, "input %q", c.in)
		}
	}
}
