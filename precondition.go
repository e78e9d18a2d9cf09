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

import "time"

// StrongMatch implements RFC 7232 §2.3.2's strong comparison: two entity
// tags match only if neither is weak and their opaque parts are
// byte-identical.
func StrongMatch(a, b EntityTag) bool {
	return !a.Weak && !b.Weak && a.Opaque == b.Opaque
}

// WeakMatch implements RFC 7232 §2.3.2's weak comparison: entity tags
// match if their opaque parts are byte-identical, regardless of the weak
// flag on either side.
func WeakMatch(a, b EntityTag) bool {
	return a.Opaque == b.Opaque
}

// anyMatches reports whether tag matches any entry in candidates, under
// the given comparison function (StrongMatch for If-Match, WeakMatch for
// If-None-Match, per RFC 7232 §3.1/§3.2).
func anyMatches(tag EntityTag, candidates []EntityTag, cmp func(a, b EntityTag) bool) bool {
	for _, c := range candidates {
		if cmp(tag, c) {
			return true
		}
	}
	return false
}

// modifiedSince reports whether the server's last-modified time is
// strictly after the client-supplied comparison time. Returns false if
// the resource reports no last-modified time (the zero Time).
func modifiedSince(serverTime, clientTime time.Time) bool {
	if serverTime.IsZero() {
		return false
	}
	return serverTime.After(clientTime)
}

// unmodifiedSince reports whether the server's last-modified time is at
// or before the client-supplied comparison time. Returns false if the
// resource reports no last-modified time.
func unmodifiedSince(serverTime, clientTime time.Time) bool {
	if serverTime.IsZero() {
		return false
	}
	return !serverTime.After(clientTime)
}
