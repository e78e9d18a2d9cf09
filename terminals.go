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

import "net/http"

// allowedMethods lists every method the engine ever recognizes, in a
// stable order. probeAllowedMethods narrows this down per request by
// asking method_allowed about each one; this is the candidate set, not
// the answer.
var allowedMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// probeAllowedMethods reports which of allowedMethods res's method_allowed
// hook currently accepts, by running the hook against a synthetic request
// that carries req's headers and URL but a substituted method. Used to
// populate the Allow header on 405/501 per RFC 7231 §6.5.5, instead of
// advertising the full known set regardless of what the resource actually
// accepts.
func probeAllowedMethods(req *Request, res *Resource) []string {
	var out []string
	for _, m := range allowedMethods {
		probe := &Request{Method: m, Header: req.Header, URL: req.URL, ctx: req.Context()}
		if res.methodAllowed(probe, NewResponse()) {
			out = append(out, m)
		}
	}
	return out
}

// allowHeaderValue joins methods into a single Allow header value, per
// RFC 7231 §7.4.1's comma-separated list form. Empty if none matched.
func allowHeaderValue(methods []string) string {
	if len(methods) == 0 {
		return ""
	}
	v := methods[0]
	for _, m := range methods[1:] {
		v += ", " + m
	}
	return v
}

// defaultTerminals holds the package default body for each of the fixed
// statuses the decision graph can produce, including the 202
// delete_enacted routes to when a delete only queues its effect.
// WithTerminal overrides one entry per Resource; the zero value here is
// never mutated.
var defaultTerminals = map[int]TerminalFunc{
	http.StatusOK:                  func(resp *Response) { writeTerminal(resp, http.StatusOK, "") },
	http.StatusCreated:             func(resp *Response) { writeTerminal(resp, http.StatusCreated, "Created") },
	http.StatusAccepted:            func(resp *Response) { writeTerminal(resp, http.StatusAccepted, "Accepted") },
	http.StatusNoContent:           func(resp *Response) { writeTerminal(resp, http.StatusNoContent, "") },
	http.StatusMultipleChoices:     func(resp *Response) { writeTerminal(resp, http.StatusMultipleChoices, "Multiple representations") },
	http.StatusMovedPermanently:    func(resp *Response) { writeTerminal(resp, http.StatusMovedPermanently, "Moved permanently") },
	http.StatusSeeOther:            func(resp *Response) { writeTerminal(resp, http.StatusSeeOther, "See other") },
	http.StatusNotModified:         func(resp *Response) { writeTerminal(resp, http.StatusNotModified, "") },
	http.StatusTemporaryRedirect:   func(resp *Response) { writeTerminal(resp, http.StatusTemporaryRedirect, "Moved temporarily") },
	http.StatusBadRequest:          func(resp *Response) { writeTerminal(resp, http.StatusBadRequest, "Malformed request") },
	http.StatusUnauthorized:        func(resp *Response) { writeTerminal(resp, http.StatusUnauthorized, "Not authorized") },
	http.StatusForbidden:           func(resp *Response) { writeTerminal(resp, http.StatusForbidden, "Forbidden") },
	http.StatusNotFound:            func(resp *Response) { writeTerminal(resp, http.StatusNotFound, "Not found") },
	http.StatusMethodNotAllowed: func(resp *Response) {
		writeTerminal(resp, http.StatusMethodNotAllowed, "Method not allowed")
	},
	http.StatusNotAcceptable:          func(resp *Response) { writeTerminal(resp, http.StatusNotAcceptable, "Not acceptable") },
	http.StatusConflict:               func(resp *Response) { writeTerminal(resp, http.StatusConflict, "Conflict") },
	http.StatusGone:                   func(resp *Response) { writeTerminal(resp, http.StatusGone, "Gone") },
	http.StatusPreconditionFailed:     func(resp *Response) { writeTerminal(resp, http.StatusPreconditionFailed, "Precondition failed") },
	http.StatusRequestEntityTooLarge:  func(resp *Response) { writeTerminal(resp, http.StatusRequestEntityTooLarge, "Entity too large") },
	http.StatusRequestURITooLong:      func(resp *Response) { writeTerminal(resp, http.StatusRequestURITooLong, "URI too long") },
	http.StatusUnsupportedMediaType:   func(resp *Response) { writeTerminal(resp, http.StatusUnsupportedMediaType, "Unsupported media type") },
	http.StatusUnprocessableEntity:    func(resp *Response) { writeTerminal(resp, http.StatusUnprocessableEntity, "Unprocessable entity") },
	http.StatusInternalServerError:    func(resp *Response) { writeTerminal(resp, http.StatusInternalServerError, "Internal error") },
	http.StatusNotImplemented: func(resp *Response) {
		writeTerminal(resp, http.StatusNotImplemented, notImplementedBody)
	},
	http.StatusServiceUnavailable: func(resp *Response) { writeTerminal(resp, http.StatusServiceUnavailable, "Service unavailable") },
}

// writeTerminal sets status and, when resp carries no body yet, a short
// default reason. Actions that already wrote a body (get/head/post/put/
// patch) keep it; writeTerminal never clobbers a non-empty Body.
func writeTerminal(resp *Response, status int, defaultBody string) {
	resp.StatusCode = status
	if len(resp.Body) == 0 && defaultBody != "" {
		resp.Body = []byte(defaultBody)
	}
}
