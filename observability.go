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
	"context"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// observability bundles the engine's optional OpenTelemetry hooks.
// Grounded in router/tracing.go's startTracing/finishTracing pair and
// router/metrics.go's counter-per-outcome pattern, collapsed here to the
// much smaller surface a single Dispatch call needs: one span with one
// event per decision node visited, and one terminal-status counter
// increment. Nil tracer/meter fields make every method a no-op, matching
// router's "observability is always optional" posture.
type observability struct {
	tracer trace.Tracer
	meter  metric.Meter

	terminalCounter metric.Int64Counter
}

func newObservability(cfg *config) *observability {
	o := &observability{tracer: cfg.tracer, meter: cfg.meter}
	if o.meter != nil {
		counter, err := o.meter.Int64Counter(
			"resource.dispatch.terminal",
			metric.WithDescription("count of decision-graph dispatches by terminal status"),
		)
		if err == nil {
			o.terminalCounter = counter
		}
	}
	return o
}

// dispatchSpan wraps the single span (if any) covering one Dispatch call.
type dispatchSpan struct {
	span trace.Span
	ctx  context.Context
}

// start begins the span named "resource.decide", grounded in
// router/tracing.go's startTracing. The span name is fixed (there is no
// route to put in it); the method is recorded as the http.method
// attribute.
func (o *observability) start(ctx context.Context, method string) (context.Context, *dispatchSpan) {
	if o.tracer == nil {
		return ctx, &dispatchSpan{}
	}
	spanCtx, span := o.tracer.Start(ctx, "resource.decide", trace.WithSpanKind(trace.SpanKindInternal))
	span.SetAttributes(attribute.String("http.method", method))
	return spanCtx, &dispatchSpan{span: span, ctx: spanCtx}
}

// event records one decision-node visit as a span event.
func (s *dispatchSpan) event(node nodeID) {
	if s.span == nil {
		return
	}
	s.span.AddEvent(string(node))
}

// finish ends the span, recording the terminal status the way
// router/tracing.go's finishTracing records http.status_code.
func (s *dispatchSpan) finish(status int) {
	if s.span == nil {
		return
	}
	s.span.SetAttributes(attribute.Int("http.status_code", status))
	if status >= 500 {
		s.span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", status))
	} else {
		s.span.SetStatus(codes.Ok, "")
	}
	s.span.End()
}

// recordTerminal increments the terminal-status counter, a no-op when no
// meter was configured.
func (o *observability) recordTerminal(ctx context.Context, node nodeID, status int) {
	if o.terminalCounter == nil {
		return
	}
	o.terminalCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("terminal", string(node)),
		attribute.String("status", strconv.Itoa(status)),
	))
}
