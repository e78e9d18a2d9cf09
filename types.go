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

import "strings"

// QualityItem pairs a negotiated value with its client-declared quality
// (the "q" parameter). T is typically MediaType, Charset, Language, or
// Encoding.
type QualityItem[T any] struct {
	Value   T
	Quality float64
}

// Param is a single (name, value) media type parameter. Order matters:
// parameters participate only in strict equality comparisons, never in
// wildcard matching, so two MediaTypes with the same parameters in a
// different order are not equal.
type Param struct {
	Name  string
	Value string
}

// MediaType is a (top-level, sub-level, parameters) triple. Either level
// may be the wildcard "*"; wildcards only ever appear on the client
// (Accept header) side of a match, never on the server's advertised
// availability list.
type MediaType struct {
	Type    string
	Subtype string
	Params  []Param
}

// String renders the canonical "type/subtype;name=value" form.
func (m MediaType) String() string {
	var b strings.Builder
	b.WriteString(m.Type)
	b.WriteByte('/')
	b.WriteString(m.Subtype)
	for _, p := range m.Params {
		b.WriteByte(';')
		b.WriteString(p.Name)
		b.WriteByte('=')
		b.WriteString(p.Value)
	}
	return b.String()
}

// Equal reports strict equality: same type, subtype, and an identical
// parameter set, order-sensitive.
func (m MediaType) Equal(other MediaType) bool {
	if m.Type != other.Type || m.Subtype != other.Subtype {
		return false
	}
	if len(m.Params) != len(other.Params) {
		return false
	}
	for i, p := range m.Params {
		if p != other.Params[i] {
			return false
		}
	}
	return true
}

// Charset is an opaque charset token; "*" means "any".
type Charset string

// AnyCharset is the wildcard sentinel.
const AnyCharset Charset = "*"

// Language is an opaque BCP-47-ish language tag; "*" means "any".
type Language string

// AnyLanguage is the wildcard sentinel.
const AnyLanguage Language = "*"

// Encoding is an opaque content-coding token (e.g. "gzip", "br",
// "identity"). Matching supports RFC 7231 §5.3.4's wildcard and
// implicit-identity behavior on top of plain equality; see BestEncoding.
type Encoding string

// AnyEncoding is the wildcard sentinel ("*" in an Accept-Encoding header).
const AnyEncoding Encoding = "*"

// IdentityEncoding is the always-available fallback encoding.
const IdentityEncoding Encoding = "identity"

// EntityTag is a single HTTP entity tag: an opaque validator string plus
// the weak/strong flag (a leading "W/" in wire form).
type EntityTag struct {
	Weak   bool
	Opaque string
}

// String renders the wire form: `"opaque"` or `W/"opaque"`.
func (t EntityTag) String() string {
	if t.Weak {
		return `W/"` + t.Opaque + `"`
	}
	return `"` + t.Opaque + `"`
}

// entityTagMatchKind discriminates EntityTagMatch's two variants.
type entityTagMatchKind int

const (
	entityTagMatchKindTags entityTagMatchKind = iota
	entityTagMatchKindAny
)

// EntityTagMatch represents the parsed body of an If-Match or
// If-None-Match header: either the literal "*" (matches any current
// representation) or an explicit list of entity tags.
type EntityTagMatch struct {
	kind entityTagMatchKind
	tags []EntityTag
}

// ETagMatchAny returns the "*" variant.
func ETagMatchAny() EntityTagMatch {
	return EntityTagMatch{kind: entityTagMatchKindAny}
}

// ETagMatchTags returns the explicit-list variant.
func ETagMatchTags(tags ...EntityTag) EntityTagMatch {
	return EntityTagMatch{kind: entityTagMatchKindTags, tags: tags}
}

// IsAny reports whether this is the "*" variant.
func (m EntityTagMatch) IsAny() bool {
	return m.kind == entityTagMatchKindAny
}

// Tags returns the explicit tag list. Empty (and meaningless) for the
// "*" variant.
func (m EntityTagMatch) Tags() []EntityTag {
	return m.tags
}

// String serializes back to wire form, the inverse of ParseEntityTagMatch.
func (m EntityTagMatch) String() string {
	if m.kind == entityTagMatchKindAny {
		return "*"
	}
	parts := make([]string, len(m.tags))
	for i, t := range m.tags {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}

// ParseEntityTagMatch parses an If-Match / If-None-Match header value:
// raw bytes "*" (with surrounding whitespace allowed) parse to the Any
// variant; otherwise the value is a comma-delimited list of entity
// tags.
func ParseEntityTagMatch(raw string) EntityTagMatch {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "*" {
		return ETagMatchAny()
	}

	var tags []EntityTag
	for _, part := range strings.Split(trimmed, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if tag, ok := parseEntityTag(part); ok {
			tags = append(tags, tag)
		}
	}
	return ETagMatchTags(tags...)
}

// parseEntityTag parses a single entity-tag token: `"opaque"` or
// `W/"opaque"`. Malformed input is reported via ok=false so the caller
// can simply drop it rather than failing the whole header.
func parseEntityTag(s string) (EntityTag, bool) {
	weak := false
	if strings.HasPrefix(s, "W/") || strings.HasPrefix(s, "w/") {
		weak = true
		s = s[2:]
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return EntityTag{}, false
	}
	return EntityTag{Weak: weak, Opaque: s[1 : len(s)-1]}, true
}
