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
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustURL(t *testing.T) *url.URL {
	t.Helper()
	u, err := url.Parse("/")
	require.NoError(t, err)
	return u
}

func TestDispatch_DefaultGetNotImplemented(t *testing.T) {
	t.Parallel()
	res := MustNew()
	req := NewRequest(http.MethodGet, http.Header{}, mustURL(t))
	resp := res.Dispatch(req)
	assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
	assert.Equal(t, notImplementedBody, string(resp.Body))
}

func TestDispatch_SimpleGetWithBody(t *testing.T) {
	t.Parallel()
	res := MustNew(WithGET(func(req *Request, resp *Response) error {
		resp.Body = []byte("hello")
		return nil
	}))
	req := NewRequest(http.MethodGet, http.Header{}, mustURL(t))
	resp := res.Dispatch(req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello", string(resp.Body))
}

func TestDispatch_ContentNegotiationHit(t *testing.T) {
	t.Parallel()
	json := MediaType{Type: "application", Subtype: "json"}
	res := MustNew(
		WithAvailableContentTypes(func(*Request, *Response) []MediaType { return []MediaType{json} }),
		WithGET(func(req *Request, resp *Response) error { return nil }),
	)
	h := http.Header{}
	h.Set("Accept", "text/plain, application/json;q=0.9")
	resp := res.Dispatch(NewRequest(http.MethodGet, h, mustURL(t)))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "Accept", resp.Header.Get("Vary"))
}

func TestDispatch_ContentNegotiationMiss(t *testing.T) {
	t.Parallel()
	res := MustNew(
		WithAvailableContentTypes(func(*Request, *Response) []MediaType {
			return []MediaType{{Type: "application", Subtype: "json"}}
		}),
	)
	h := http.Header{}
	h.Set("Accept", "text/html")
	resp := res.Dispatch(NewRequest(http.MethodGet, h, mustURL(t)))
	assert.Equal(t, http.StatusNotAcceptable, resp.StatusCode)
}

func TestDispatch_MethodNotAllowed(t *testing.T) {
	t.Parallel()
	res := MustNew()
	resp := res.Dispatch(NewRequest(http.MethodPost, http.Header{}, mustURL(t)))
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "GET, HEAD", resp.Header.Get("Allow"))
}

func TestDispatch_AllowHeaderReflectsRestrictedMethodAllowed(t *testing.T) {
	t.Parallel()
	res := MustNew(WithMethodAllowed(func(req *Request, _ *Response) bool {
		return req.Method == http.MethodGet || req.Method == http.MethodPost
	}))
	resp := res.Dispatch(NewRequest(http.MethodDelete, http.Header{}, mustURL(t)))
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "GET, POST", resp.Header.Get("Allow"))
}

func TestDispatch_IfMatchPreconditionFailure(t *testing.T) {
	t.Parallel()
	res := MustNew(WithETag(func(*Request, *Response) (EntityTag, bool) {
		return EntityTag{Opaque: "v1"}, true
	}))
	h := http.Header{}
	h.Set("If-Match", `"v2"`)
	resp := res.Dispatch(NewRequest(http.MethodGet, h, mustURL(t)))
	assert.Equal(t, http.StatusPreconditionFailed, resp.StatusCode)
}

func TestDispatch_OptionsShortcut(t *testing.T) {
	t.Parallel()
	// The default method_allowed only accepts GET/HEAD and runs before
	// is_options, so OPTIONS has to be allowed explicitly.
	res := MustNew(WithMethodAllowed(func(req *Request, _ *Response) bool {
		return req.Method == http.MethodOptions
	}))
	h := http.Header{}
	h.Set("Accept", "text/html") // should never be consulted
	resp := res.Dispatch(NewRequest(http.MethodOptions, h, mustURL(t)))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Body)
}

func TestDispatch_IfNoneMatchReturnsNotModifiedForGet(t *testing.T) {
	t.Parallel()
	res := MustNew(WithETag(func(*Request, *Response) (EntityTag, bool) {
		return EntityTag{Opaque: "v1"}, true
	}))
	h := http.Header{}
	h.Set("If-None-Match", `"v1"`)
	resp := res.Dispatch(NewRequest(http.MethodGet, h, mustURL(t)))
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)
}

func TestDispatch_DeleteEnactedFalseReturns202(t *testing.T) {
	t.Parallel()
	res := MustNew(
		WithMethodAllowed(func(req *Request, _ *Response) bool { return req.Method == http.MethodDelete }),
		WithDELETE(func(req *Request, resp *Response) error { return nil }),
		WithDeleteEnacted(func(*Request, *Response) bool { return false }),
	)
	resp := res.Dispatch(NewRequest(http.MethodDelete, http.Header{}, mustURL(t)))
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
}

func TestDispatch_DeleteEnactedTrueReturns204(t *testing.T) {
	t.Parallel()
	res := MustNew(
		WithMethodAllowed(func(req *Request, _ *Response) bool { return req.Method == http.MethodDelete }),
		WithDELETE(func(req *Request, resp *Response) error { return nil }),
	)
	resp := res.Dispatch(NewRequest(http.MethodDelete, http.Header{}, mustURL(t)))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestDispatch_PutToMissingCreates201(t *testing.T) {
	t.Parallel()
	res := MustNew(
		WithMethodAllowed(func(req *Request, _ *Response) bool { return req.Method == http.MethodPut }),
		WithExists(func(*Request, *Response) bool { return false }),
		WithPUT(func(req *Request, resp *Response) error { return nil }),
	)
	resp := res.Dispatch(NewRequest(http.MethodPut, http.Header{}, mustURL(t)))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestDispatch_PutConflict409(t *testing.T) {
	t.Parallel()
	res := MustNew(
		WithMethodAllowed(func(req *Request, _ *Response) bool { return req.Method == http.MethodPut }),
		WithConflict(func(*Request, *Response) bool { return true }),
	)
	resp := res.Dispatch(NewRequest(http.MethodPut, http.Header{}, mustURL(t)))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestDispatch_HeadDefersToGetWithoutBody(t *testing.T) {
	t.Parallel()
	res := MustNew(
		WithMethodAllowed(func(req *Request, _ *Response) bool { return true }),
		WithGET(func(req *Request, resp *Response) error {
			resp.Body = []byte("body")
			resp.Set("X-Custom", "1")
			return nil
		}),
	)
	resp := res.Dispatch(NewRequest(http.MethodHead, http.Header{}, mustURL(t)))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Body)
	assert.Equal(t, "1", resp.Header.Get("X-Custom"))
}

func TestDispatch_ServiceUnavailableShortCircuits(t *testing.T) {
	t.Parallel()
	res := MustNew(WithServiceAvailable(func(*Request, *Response) bool { return false }))
	resp := res.Dispatch(NewRequest(http.MethodGet, http.Header{}, mustURL(t)))
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestDispatch_QualityZeroDroppedFiresDiagnostic(t *testing.T) {
	t.Parallel()
	var events []DiagnosticEvent
	res := MustNew(
		WithAvailableContentTypes(func(*Request, *Response) []MediaType {
			return []MediaType{{Type: "application", Subtype: "json"}}
		}),
		WithGET(func(req *Request, resp *Response) error { return nil }),
		WithDiagnostics(DiagnosticHandlerFunc(func(e DiagnosticEvent) {
			events = append(events, e)
		})),
	)
	h := http.Header{}
	h.Set("Accept", "text/html;q=0, application/json")
	resp := res.Dispatch(NewRequest(http.MethodGet, h, mustURL(t)))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, events, 1)
	assert.Equal(t, DiagQualityZeroDropped, events[0].Kind)
	assert.Equal(t, "media_type", events[0].Fields["axis"])
	assert.Equal(t, 1, events[0].Fields["count"])
}

func TestDispatch_HookFailureSurfacesAs500(t *testing.T) {
	t.Parallel()
	res := MustNew(WithGET(func(req *Request, resp *Response) error {
		return ErrNilResource // any error value stands in for a real failure
	}))
	resp := res.Dispatch(NewRequest(http.MethodGet, http.Header{}, mustURL(t)))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
