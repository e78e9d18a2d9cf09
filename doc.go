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

// Package resource implements an HTTP resource decision engine: it maps
// an incoming request to a single, well-defined status and
// representation by walking a fixed decision graph over user-supplied
// predicates and actions, covering RFC 7231/7232 method dispatch,
// content negotiation, and precondition evaluation.
//
// # Key Features
//
//   - 52-node decision graph covering GET/HEAD/POST/PUT/PATCH/DELETE/OPTIONS
//   - Quality-weighted content negotiation over media type, language,
//     charset, and encoding
//   - If-Match / If-None-Match / If-Modified-Since / If-Unmodified-Since
//     precondition evaluation per RFC 7232
//   - A closed, defaulted hook contract — override only what a
//     particular resource needs
//   - Host-framework independence: ship with the net/http adapter in
//     this package, or bind to another framework (see resourcerouter)
//   - OpenTelemetry tracing and metrics, structured logging, diagnostic
//     events — all optional, all no-ops until configured
//
// # Constructor Pattern
//
// Resource follows the same pragmatic constructor pattern as the rest of
// this module's stack:
//
//   - New(opts...) returns (*Resource, error) because a duplicate hook
//     registration is a configuration error, not a panic.
//   - MustNew(opts...) panics on that error, for callers whose option set
//     is fixed at compile time.
//   - All configuration options use the "With" prefix (WithGET, WithETag,
//     WithAvailableContentTypes, ...).
//   - Every hook has a package default (see defaults.go); New fills in
//     whatever wasn't explicitly configured.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "net/http"
//
//	    "rivaas.dev/resource"
//	)
//
//	func main() {
//	    var etag = resource.EntityTag{Opaque: "v1"}
//
//	    res := resource.MustNew(
//	        resource.WithAvailableContentTypes(func(*resource.Request, *resource.Response) []resource.MediaType {
//	            return []resource.MediaType{{Type: "application", Subtype: "json"}}
//	        }),
//	        resource.WithETag(func(*resource.Request, *resource.Response) (resource.EntityTag, bool) {
//	            return etag, true
//	        }),
//	        resource.WithGET(func(req *resource.Request, resp *resource.Response) error {
//	            resp.Body = []byte(`{"status":"ok"}`)
//	            return nil
//	        }),
//	    )
//
//	    http.Handle("/status", resource.NewHandler(res))
//	    http.ListenAndServe(":8080", nil)
//	}
//
// # Content Negotiation
//
// The matcher implements RFC 7231's best-match algorithm for each of
// four independent axes (media type, language, charset, encoding):
// client Accept-* entries are stable-sorted by quality descending, then
// matched in order against the resource's advertised availability.
// Quality-0 entries are dropped before matching (RFC 7231 §5.3.1), a
// deliberate correction over a source that searched them anyway.
//
//	resource.WithAvailableLanguages(func(*resource.Request, *resource.Response) []resource.Language {
//	    return []resource.Language{"en-US", "fr"}
//	})
//
// A request with "Accept-Language: en;q=0.8, fr;q=0.9" negotiates "fr".
// "Accept-Language: en" also matches "en-US" (RFC 4647 §3.3.1 basic
// filtering, a supplement over the strict byte-equality the ported
// source implements for this axis).
//
// # Preconditions
//
// If a resource reports an ETag and/or Last-Modified, the graph
// evaluates If-Match, If-None-Match, If-Modified-Since, and
// If-Unmodified-Since automatically (RFC 7232) before any action hook
// runs — a failed precondition short-circuits straight to 412 or 304.
//
// # Observability
//
// OpenTelemetry tracing and metrics, plus structured logging, attach via
// options:
//
//	res := resource.MustNew(
//	    resource.WithTracer(tracer),
//	    resource.WithMeter(meter),
//	    resource.WithLogger(logging.MustNew()),
//	    resource.WithDiagnostics(resource.DiagnosticHandlerFunc(func(e resource.DiagnosticEvent) {
//	        slog.Warn(e.Message, "kind", e.Kind)
//	    })),
//	)
package resource
