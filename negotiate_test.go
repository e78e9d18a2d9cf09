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

func TestBestMediaType_WildcardSubsumption(t *testing.T) {
	t.Parallel()
	json := MediaType{Type: "application", Subtype: "json"}

	v, ok := BestMediaType("*/*", []MediaType{json})
	assert.True(t, ok)
	assert.True(t, v.Equal(json))

	v, ok = BestMediaType("application/*", []MediaType{json})
	assert.True(t, ok)
	assert.True(t, v.Equal(json))
}

func TestBestMediaType_QualityOrder(t *testing.T) {
	t.Parallel()
	avail := []MediaType{{Type: "application", Subtype: "json"}}
	v, ok := BestMediaType("text/plain, application/json;q=0.9", avail)
	assert.True(t, ok)
	assert.Equal(t, "json", v.Subtype)
}

func TestBestMediaType_Miss(t *testing.T) {
	t.Parallel()
	avail := []MediaType{{Type: "application", Subtype: "json"}}
	_, ok := BestMediaType("text/html", avail)
	assert.False(t, ok)
}

func TestBestMediaType_ParamsRequireEquality(t *testing.T) {
	t.Parallel()
	avail := []MediaType{{Type: "application", Subtype: "json", Params: []Param{{Name: "version", Value: "2"}}}}
	_, ok := BestMediaType(`application/json;version=1`, avail)
	assert.False(t, ok)

	v, ok := BestMediaType(`application/json;version=2`, avail)
	assert.True(t, ok)
	assert.Equal(t, "2", v.Params[0].Value)
}

func TestBestLanguage_PrefixMatch(t *testing.T) {
	t.Parallel()
	v, ok := BestLanguage("en", []Language{"en-US"})
	assert.True(t, ok)
	assert.Equal(t, Language("en-US"), v)
}

func TestBestLanguage_Wildcard(t *testing.T) {
	t.Parallel()
	v, ok := BestLanguage("*", []Language{"fr"})
	assert.True(t, ok)
	assert.Equal(t, Language("fr"), v)
}

func TestBestCharset_Simple(t *testing.T) {
	t.Parallel()
	v, ok := BestCharset("utf-8, iso-8859-1;q=0.5", []Charset{"UTF-8"})
	assert.True(t, ok)
	assert.Equal(t, Charset("UTF-8"), v)
}

func TestBestEncoding_ImplicitIdentity(t *testing.T) {
	t.Parallel()
	// No Accept-Encoding entries mention identity or "*": identity is
	// implicitly acceptable at a very low quality (RFC 7231 §5.3.4).
	v, ok := BestEncoding("gzip;q=0.5", []Encoding{IdentityEncoding})
	assert.True(t, ok)
	assert.Equal(t, IdentityEncoding, v)
}

func TestBestEncoding_WildcardMatchesAnyAvailable(t *testing.T) {
	t.Parallel()
	v, ok := BestEncoding("*;q=1", []Encoding{"br"})
	assert.True(t, ok)
	assert.Equal(t, Encoding("br"), v)
}

func TestBestEncoding_PreferenceOrder(t *testing.T) {
	t.Parallel()
	v, ok := BestEncoding("gzip;q=0.5, br;q=0.9", []Encoding{"gzip", "br"})
	assert.True(t, ok)
	assert.Equal(t, Encoding("br"), v)
}

func TestParseEntityTagMatch(t *testing.T) {
	t.Parallel()
	any := ParseEntityTagMatch(" * ")
	assert.True(t, any.IsAny())

	tags := ParseEntityTagMatch(`"a", W/"b"`)
	assert.False(t, tags.IsAny())
	assert.Equal(t, []EntityTag{{Opaque: "a"}, {Weak: true, Opaque: "b"}}, tags.Tags())
}

func TestParseEntityTagMatch_Malformed(t *testing.T) {
	t.Parallel()
	match := ParseEntityTagMatch(`not-a-tag, "valid"`)
	assert.Equal(t, []EntityTag{{Opaque: "valid"}}, match.Tags())
}
