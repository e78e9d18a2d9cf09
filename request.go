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
	"net/http"
	"net/url"
)

// Request is the engine's view of an inbound HTTP request. It carries
// exactly what the decision graph needs: method, headers, and URI. The
// host framework is responsible for parsing wire bytes into this shape;
// this package never touches a socket.
type Request struct {
	// Method is the HTTP method, e.g. "GET". Unrecognized methods are
	// passed through verbatim; known_method is the hook that decides
	// whether this engine accepts them.
	Method string

	// Header is the canonical header map, reusing net/http's
	// representation since every Go HTTP framework in this ecosystem
	// already produces or accepts one.
	Header http.Header

	// URL is the parsed request URI.
	URL *url.URL

	// ctx carries cancellation from the host. Never set directly;
	// use WithContext.
	ctx context.Context
}

// NewRequest builds a Request from the pieces a host framework has
// already parsed.
func NewRequest(method string, header http.Header, u *url.URL) *Request {
	if header == nil {
		header = http.Header{}
	}
	return &Request{Method: method, Header: header, URL: u, ctx: context.Background()}
}

// Context returns the request's context, defaulting to context.Background
// if none was set.
func (r *Request) Context() context.Context {
	if r == nil || r.ctx == nil {
		return context.Background()
	}
	return r.ctx
}

// WithContext returns a shallow copy of r with its context replaced.
// Mirrors net/http.Request.WithContext's contract: ctx must not be nil.
func (r *Request) WithContext(ctx context.Context) *Request {
	if ctx == nil {
		panic("resource: nil context passed to Request.WithContext")
	}
	r2 := new(Request)
	*r2 = *r
	r2.ctx = ctx
	return r2
}

// IsMethod reports whether the request method equals m, case-sensitively
// (HTTP methods are tokens and conventionally uppercase; the engine does
// not normalize case, matching net/http's own behavior).
func (r *Request) IsMethod(m string) bool {
	return r.Method == m
}

// FromHTTPRequest adapts a *http.Request into the engine's Request shape.
// Used by handler.go; exported so alternate host-framework adapters (see
// the resourcerouter subpackage) can reuse it without depending on
// handler.go's net/http-specific wiring.
func FromHTTPRequest(req *http.Request) *Request {
	return &Request{
		Method: req.Method,
		Header: req.Header,
		URL:    req.URL,
		ctx:    req.Context(),
	}
}
