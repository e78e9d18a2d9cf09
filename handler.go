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
	"encoding/json"
	"net/http"

	rerrors "rivaas.dev/errors"
)

// HandlerOption configures NewHandler, narrowed to the one knob the
// net/http adapter needs beyond the Resource itself.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	formatter *rerrors.Simple
}

// WithErrorFormatter reformats the body of an engine-internal 500 (a
// failed action hook, see graph.go's hookFailed) using f instead of the
// package default's plain-text "Internal error". The engine itself
// stays formatter-agnostic; only the net/http adapter opts in.
func WithErrorFormatter(f *rerrors.Simple) HandlerOption {
	return func(c *handlerConfig) {
		c.formatter = f
	}
}

// NewHandler binds res to net/http's http.Handler contract. One handler
// serves every request for whatever route(s) it is registered under;
// res is shared by reference across all of them.
func NewHandler(res *Resource, opts ...HandlerOption) http.Handler {
	if res == nil {
		panic(ErrNilResource)
	}
	cfg := &handlerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &httpHandler{res: res, cfg: cfg}
}

type httpHandler struct {
	res *Resource
	cfg *handlerConfig
}

// hookError adapts a terminal's plain-text body into an error value so
// it can be run back through rerrors.Simple.Format, which takes an
// error rather than a string.
type hookError string

func newHookError(msg string) error {
	if msg == "" {
		msg = "internal error"
	}
	return hookError(msg)
}

func (e hookError) Error() string { return string(e) }

func (h *httpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := FromHTTPRequest(r)
	resp := h.res.Dispatch(req)

	if h.cfg.formatter != nil && resp.StatusCode == http.StatusInternalServerError {
		h.reformatInternalError(r, resp)
	}

	resp.WriteHeader(w)
}

// reformatInternalError replaces the default plain-text 500 body with
// whatever h.cfg.formatter produces. The one place this package imports
// rivaas.dev/errors; its other formatters (RFC9457, JSON:API) are
// equally pluggable through the same HandlerOption.
func (h *httpHandler) reformatInternalError(r *http.Request, resp *Response) {
	cause := newHookError(string(resp.Body))
	formatted := h.cfg.formatter.Format(r, cause)

	body, err := json.Marshal(formatted.Body)
	if err != nil {
		return
	}
	resp.Body = body
	resp.Set("Content-Type", formatted.ContentType)
	resp.StatusCode = formatted.Status
}
