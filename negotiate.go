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

// splitHeaderParts splits a comma-delimited header value into trimmed,
// non-empty parts. Grounded in accept.go's manual byte scanning, but
// kept axis-agnostic here since all four Accept-* headers share this
// outer structure and only differ in what goes inside each part.
func splitHeaderParts(header string) []string {
	if header == "" {
		return nil
	}
	raw := strings.Split(header, ",")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// splitParams splits "value;k1=v1;k2=v2" into the bare value and a
// name/value parameter slice, preserving parameter order.
func splitParams(part string) (value string, params []Param) {
	segments := strings.Split(part, ";")
	value = strings.TrimSpace(segments[0])
	for _, seg := range segments[1:] {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		k, v, ok := strings.Cut(seg, "=")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		v = strings.TrimSpace(strings.Trim(strings.TrimSpace(v), `"`))
		params = append(params, Param{Name: k, Value: v})
	}
	return value, params
}

// qualityOf extracts and removes the "q" parameter from params, returning
// the remaining parameters (order preserved) and the quality (default 1.0 if absent or malformed — a bad q value is
// treated as absent rather than failing the whole header).
func qualityOf(params []Param) (rest []Param, quality float64) {
	quality = 1.0
	rest = make([]Param, 0, len(params))
	for _, p := range params {
		if p.Name == "q" {
			if q, ok := parseQuality(p.Value); ok {
				quality = q
			}
			continue
		}
		rest = append(rest, p)
	}
	return rest, quality
}

// ParseMediaTypeAccept parses an Accept header into quality-weighted
// MediaType entries.
func ParseMediaTypeAccept(header string) []QualityItem[MediaType] {
	var out []QualityItem[MediaType]
	for _, part := range splitHeaderParts(header) {
		value, params := splitParams(part)
		rest, q := qualityOf(params)
		mt, ok := parseMediaTypeValue(value)
		if !ok {
			continue
		}
		mt.Params = rest
		out = append(out, QualityItem[MediaType]{Value: mt, Quality: q})
	}
	return out
}

func parseMediaTypeValue(value string) (MediaType, bool) {
	top, sub, ok := strings.Cut(value, "/")
	if !ok {
		return MediaType{}, false
	}
	top = strings.ToLower(strings.TrimSpace(top))
	sub = strings.ToLower(strings.TrimSpace(sub))
	if top == "" || sub == "" {
		return MediaType{}, false
	}
	return MediaType{Type: top, Subtype: sub}, true
}

// parseSimpleAccept parses an Accept-Charset/Accept-Language/
// Accept-Encoding style header (no slash-separated value, optional
// params, "q" special-cased) into quality-weighted opaque strings.
func parseSimpleAccept(header string) []QualityItem[string] {
	var out []QualityItem[string]
	for _, part := range splitHeaderParts(header) {
		value, params := splitParams(part)
		if value == "" {
			continue
		}
		_, q := qualityOf(params)
		out = append(out, QualityItem[string]{Value: value, Quality: q})
	}
	return out
}

// matchMediaType matches a client Accept entry against an available
// media type. Wildcards live only on the accept (client) side.
func matchMediaType(accept, avail MediaType) bool {
	if accept.Type == "*" {
		return true
	}
	if accept.Type != avail.Type {
		return false
	}
	if accept.Subtype == "*" {
		return true
	}
	if accept.Subtype != avail.Subtype {
		return false
	}
	if len(accept.Params) == 0 {
		return true
	}
	return accept.Equal(avail)
}

// BestMediaType finds the highest-quality Accept entry that matches one
// of the available media types. onDropped, if given, is forwarded to
// Best (see its doc) to report q=0 entries discarded before matching.
func BestMediaType(acceptHeader string, available []MediaType, onDropped ...func(int)) (MediaType, bool) {
	accept := ParseMediaTypeAccept(acceptHeader)
	if len(accept) == 0 {
		return MediaType{}, false
	}
	return Best(accept, available, matchMediaType, onDropped...)
}

// matchSimple implements the wildcard-or-equal rule shared by the
// charset and language axes; equality ignores ASCII case.
func matchSimple(accept, avail string) bool {
	return accept == "*" || strings.EqualFold(accept, avail)
}

// matchLanguage implements matchSimple plus the RFC 4647 §3.3.1 basic
// filtering prefix rule: an accept-range like "en" also matches an
// available "en-US".
func matchLanguage(accept, avail string) bool {
	if matchSimple(accept, avail) {
		return true
	}
	a, v := strings.ToLower(accept), strings.ToLower(avail)
	return strings.HasPrefix(v, a+"-") || strings.HasPrefix(a, v+"-")
}

// BestCharset finds the highest-quality Accept-Charset entry that
// matches one of the available charsets. onDropped, if given, is
// forwarded to Best to report q=0 entries discarded before matching.
func BestCharset(acceptHeader string, available []Charset, onDropped ...func(int)) (Charset, bool) {
	accept := parseSimpleAccept(acceptHeader)
	avail := make([]string, len(available))
	for i, c := range available {
		avail[i] = string(c)
	}
	v, ok := Best(accept, avail, matchSimple, onDropped...)
	return Charset(v), ok
}

// BestLanguage finds the highest-quality Accept-Language entry that
// matches one of the available languages, including the BCP-47 prefix
// rule in matchLanguage. onDropped, if given, is forwarded to Best to
// report q=0 entries discarded before matching.
func BestLanguage(acceptHeader string, available []Language, onDropped ...func(int)) (Language, bool) {
	accept := parseSimpleAccept(acceptHeader)
	avail := make([]string, len(available))
	for i, l := range available {
		avail[i] = string(l)
	}
	v, ok := Best(accept, avail, matchLanguage, onDropped...)
	return Language(v), ok
}

// BestEncoding finds the highest-quality Accept-Encoding entry that
// matches one of the available encodings, implementing RFC 7231
// §5.3.4's wildcard and implicit-identity behavior. onDropped, if given,
// is forwarded to Best to report q=0 entries discarded before matching
// (the synthetic implicit-identity entry this function injects is never
// among them — it is only ever added at a nonzero quality).
func BestEncoding(acceptHeader string, available []Encoding, onDropped ...func(int)) (Encoding, bool) {
	items := parseSimpleAccept(acceptHeader)

	hasIdentity, hasWildcard := false, false
	explicit := make(map[string]bool, len(items))
	for _, it := range items {
		switch {
		case strings.EqualFold(it.Value, string(IdentityEncoding)):
			hasIdentity = true
		case it.Value == string(AnyEncoding):
			hasWildcard = true
		}
		if it.Value != string(AnyEncoding) {
			explicit[strings.ToLower(it.Value)] = true
		}
	}
	if !hasIdentity && !hasWildcard {
		items = append(items, QualityItem[string]{Value: string(IdentityEncoding), Quality: 0.001})
	}

	avail := make([]string, len(available))
	for i, e := range available {
		avail[i] = string(e)
	}
	v, ok := Best(items, avail, func(accept, avail string) bool {
		if accept == string(AnyEncoding) {
			return !explicit[strings.ToLower(avail)]
		}
		return strings.EqualFold(accept, avail)
	}, onDropped...)
	return Encoding(v), ok
}
