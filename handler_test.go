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
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	rerrors "rivaas.dev/errors"
)

func TestNewHandler_PanicsOnNilResource(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		NewHandler(nil)
	})
}

func TestHandler_ServesSimpleGet(t *testing.T) {
	t.Parallel()
	res := MustNew(WithGET(func(req *Request, resp *Response) error {
		resp.Body = []byte("hello")
		resp.Set("Content-Type", "text/plain")
		return nil
	}))
	h := NewHandler(res)

	req := httptest.NewRequest(http.MethodGet, "/widgets/1", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestHandler_MethodNotAllowedSetsAllow(t *testing.T) {
	t.Parallel()
	res := MustNew()
	h := NewHandler(res)

	req := httptest.NewRequest(http.MethodPost, "/widgets/1", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Allow"))
}

func TestHandler_WithoutFormatterLeaves500BodyUntouched(t *testing.T) {
	t.Parallel()
	res := MustNew(WithGET(func(req *Request, resp *Response) error {
		return ErrNilResource
	}))
	h := NewHandler(res)

	req := httptest.NewRequest(http.MethodGet, "/widgets/1", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal error", rec.Body.String())
}

func TestHandler_WithErrorFormatterReformats500Body(t *testing.T) {
	t.Parallel()
	res := MustNew(WithGET(func(req *Request, resp *Response) error {
		return ErrNilResource
	}))
	formatter := &rerrors.Simple{
		StatusResolver: func(err error) int { return http.StatusInternalServerError },
	}
	h := NewHandler(res, WithErrorFormatter(formatter))

	req := httptest.NewRequest(http.MethodGet, "/widgets/1", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestNewHookError_DefaultsEmptyMessage(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "internal error", newHookError("").Error())
	assert.Equal(t, "boom", newHookError("boom").Error())
}
