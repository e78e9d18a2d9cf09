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
	"fmt"
	"net/http"
	"strings"

	"rivaas.dev/logging"
)

// Engine runs the decision graph for one Resource. Built once by New and
// held on Resource.engine; never mutated after construction.
type Engine struct {
	res          *Resource
	logger       *logging.Logger
	obs          *observability
	diagnostics  DiagnosticHandler
	cacheControl []CacheControlOption
}

func newEngine(cfg *config) *Engine {
	return &Engine{
		res:          cfg.res,
		logger:       cfg.logger,
		obs:          newObservability(cfg),
		diagnostics:  cfg.diagnostics,
		cacheControl: cfg.cacheControl,
	}
}

func (e *Engine) diagnose(ev DiagnosticEvent) {
	if e.diagnostics != nil {
		e.diagnostics.OnDiagnostic(ev)
	}
}

// Dispatch runs req through the decision graph and returns the resulting
// Response. Safe to call concurrently from many goroutines since Engine
// and Resource are both read-only after New.
func (e *Engine) Dispatch(req *Request) *Response {
	resp := NewResponse()
	ctx, span := e.obs.start(req.Context(), req.Method)
	req = req.WithContext(ctx)

	st := &execState{req: req, resp: resp, res: e.res, eng: e}

	node := rootNode
	for hop := 0; ; hop++ {
		if hop >= maxHops {
			err := fmt.Errorf("%w: last node %q", ErrGraphTooDeep, node)
			e.logger.Error("decision graph exceeded hop limit", "error", err)
			e.runTerminal(st, http.StatusInternalServerError)
			span.finish(http.StatusInternalServerError)
			return resp
		}

		fn, ok := graphTable[node]
		if !ok {
			err := fmt.Errorf("%w: %q", ErrUnknownNode, node)
			e.logger.Error("unknown decision node", "error", err)
			e.runTerminal(st, http.StatusInternalServerError)
			span.finish(http.StatusInternalServerError)
			return resp
		}

		span.event(node)
		e.logger.Debug("decision node", "node", string(node), "method", req.Method)

		out := fn(st)
		if out.isTerminal {
			e.runTerminal(st, out.terminal)
			applyVary(resp)
			e.applyDefaultCacheControl(resp, out.terminal)
			e.obs.recordTerminal(ctx, node, out.terminal)
			span.finish(out.terminal)
			return resp
		}
		node = out.next
	}
}

// runTerminal writes status and a default body onto st.resp by looking up
// the resource's own WithTerminal override first, falling back to the
// package default for that status, and finally to a bare status write
// for a status the graph itself never produces (e.g. an engine-internal
// failure outside the fixed terminal set). For 405/501 it also populates
// the Allow header from a live probe of method_allowed, since that is
// per-request information no package-level default could carry.
func (e *Engine) runTerminal(st *execState, status int) {
	resp := st.resp
	if status == http.StatusMethodNotAllowed || status == http.StatusNotImplemented {
		resp.Set("Allow", allowHeaderValue(probeAllowedMethods(st.req, st.res)))
	}
	if e.res != nil {
		if fn, ok := e.res.terminals[status]; ok {
			fn(resp)
			return
		}
	}
	if fn, ok := defaultTerminals[status]; ok {
		fn(resp)
		return
	}
	resp.StatusCode = status
}

// applyDefaultCacheControl sets the resource-level Cache-Control
// configured via WithCacheControl on 2xx responses that don't already
// carry one — a hook that calls Response.CacheControl itself, or a
// WithTerminal override that sets the header directly, always wins.
func (e *Engine) applyDefaultCacheControl(resp *Response, status int) {
	if len(e.cacheControl) == 0 || status < 200 || status >= 300 {
		return
	}
	if resp.Header.Get("Cache-Control") != "" {
		return
	}
	resp.CacheControl(e.cacheControl...)
}

// Dispatch runs req through r's decision graph. Thin forwarding method so
// callers needn't reach into the unexported engine field; the real work
// is (*Engine).Dispatch above.
func (r *Resource) Dispatch(req *Request) *Response {
	return r.engine.Dispatch(req)
}

// applyVary builds the Vary header from the axes the engine actually
// negotiated this dispatch. Hooks and terminal overrides remain free to
// set their own Vary entries; this only covers what the engine itself
// negotiated, so a shared cache in front of it sees the full picture.
func applyVary(resp *Response) {
	var axes []string
	if resp.negotiated.mediaType {
		axes = append(axes, "Accept")
	}
	if resp.negotiated.language {
		axes = append(axes, "Accept-Language")
	}
	if resp.negotiated.charset {
		axes = append(axes, "Accept-Charset")
	}
	if resp.negotiated.encoding {
		axes = append(axes, "Accept-Encoding")
	}
	if len(axes) > 0 {
		resp.Set("Vary", strings.Join(axes, ", "))
	}
}
