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
	"time"
)

// knownMethods is the fixed set the default known_method hook tests
// against.
var knownMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
}

func alwaysTrue(*Request, *Response) bool  { return true }
func alwaysFalse(*Request, *Response) bool { return false }

func defaultKnownMethod(req *Request, _ *Response) bool {
	return knownMethods[req.Method]
}

func defaultMethodAllowed(req *Request, _ *Response) bool {
	return req.Method == http.MethodGet || req.Method == http.MethodHead
}

func defaultAvailableLanguages(*Request, *Response) []Language {
	return []Language{AnyLanguage}
}

func defaultAvailableCharsets(*Request, *Response) []Charset {
	return []Charset{"UTF-8"}
}

func defaultAvailableEncodings(*Request, *Response) []Encoding {
	return []Encoding{IdentityEncoding}
}

func defaultAvailableContentTypes(*Request, *Response) []MediaType {
	return nil
}

func defaultETag(*Request, *Response) (EntityTag, bool) {
	return EntityTag{}, false
}

func defaultLastModified(*Request, *Response) (time.Time, bool) {
	return time.Time{}, false
}

// notImplementedBody is the body default action hooks write when
// invoked.
const notImplementedBody = "Not implemented"

// defaultAction is the shared default for get/post/put/patch/delete:
// an un-configured resource answers every action with "not
// implemented". Rather than return an error (which the adapter would
// surface as a generic 500), the default writes the well-defined 501
// response itself.
func defaultAction(_ *Request, resp *Response) error {
	resp.StatusCode = http.StatusNotImplemented
	resp.Body = []byte(notImplementedBody)
	return nil
}
