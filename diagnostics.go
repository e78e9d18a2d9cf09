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

// DiagnosticEvent represents an engine diagnostic or anomaly: something
// worth surfacing to an operator that is not itself a graph-terminal
// status.
//
// Diagnostic events are optional - the engine behaves correctly whether
// they are collected or not.
type DiagnosticEvent struct {
	Kind    DiagnosticKind
	Message string
	Fields  map[string]any // Structured context
}

// DiagnosticKind categorizes diagnostic events.
type DiagnosticKind string

const (
	// DiagQualityZeroDropped fires once per negotiated axis (media type,
	// language, charset, encoding) that had one or more Accept-* entries
	// discarded for explicit quality 0, carrying the count in
	// Fields["count"] — q=0 means "not acceptable" (RFC 7231 §5.3.1)
	// rather than merely low priority, so these never reach matching.
	DiagQualityZeroDropped DiagnosticKind = "quality_zero_dropped"

	// DiagMalformedPrecondition fires when If-Modified-Since or
	// If-Unmodified-Since could not be parsed and was therefore treated
	// as absent. Malformed entries in If-Match / If-None-Match are dropped
	// by ParseEntityTagMatch without an event.
	DiagMalformedPrecondition DiagnosticKind = "malformed_precondition_header"

	// DiagHookFailure fires when an action hook returned a non-nil
	// error and the adapter surfaced a 500 in its place.
	DiagHookFailure DiagnosticKind = "hook_failure"

	// DiagUnknownMethod fires when known_method rejected the request
	// method outright (routes to 501, see graph.go).
	DiagUnknownMethod DiagnosticKind = "unknown_method"
)

// DiagnosticHandler receives diagnostic events from the engine.
// Implementations may log, emit metrics, trace events, or ignore them.
//
// This interface is optional - if not provided, diagnostics are silently
// dropped. The engine's behavior is unchanged whether diagnostics are
// collected or not.
//
// Example with logging:
//
//	import "log/slog"
//
//	handler := resource.DiagnosticHandlerFunc(func(e resource.DiagnosticEvent) {
//	    slog.Warn(e.Message, "kind", e.Kind, "fields", e.Fields)
//	})
//	r := resource.MustNew(resource.WithDiagnostics(handler))
type DiagnosticHandler interface {
	OnDiagnostic(DiagnosticEvent)
}

// DiagnosticHandlerFunc is a function adapter for DiagnosticHandler.
type DiagnosticHandlerFunc func(DiagnosticEvent)

func (f DiagnosticHandlerFunc) OnDiagnostic(e DiagnosticEvent) {
	f(e)
}
