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

import "time"

// Hook name constants, used for duplicate-registration detection and in
// the resulting error. These match the decision graph's own predicate and
// action names exactly, so an error message names the hook directly
// rather than through an intermediate label.
const (
	hookServiceAvailable      = "service_available"
	hookKnownMethod           = "known_method"
	hookURITooLong            = "uri_too_long"
	hookMethodAllowed         = "method_allowed"
	hookMalformed             = "malformed"
	hookAuthorized            = "authorized"
	hookAllowed               = "allowed"
	hookValidContentHeader    = "valid_content_header"
	hookKnownContentType      = "known_content_type"
	hookValidEntityLength     = "valid_entity_length"
	hookExists                = "exists"
	hookExisted               = "existed"
	hookRespondWithEntity     = "respond_with_entity"
	hookNew                   = "new"
	hookPostRedirect          = "post_redirect"
	hookPutToDifferentURL     = "put_to_different_url"
	hookMultipleReps          = "multiple_representations"
	hookConflict              = "conflict"
	hookCanPostToMissing      = "can_post_to_missing"
	hookCanPostToGone         = "can_post_to_gone"
	hookCanPutToMissing       = "can_put_to_missing"
	hookMovedPermanently      = "moved_permanently"
	hookMovedTemporarily      = "moved_temporarily"
	hookDeleteEnacted         = "delete_enacted"
	hookProcessable           = "processable"
	hookAvailableLanguages    = "available_languages"
	hookAvailableCharsets     = "available_charsets"
	hookAvailableEncodings    = "available_encodings"
	hookAvailableContentTypes = "available_content_types"
	hookETag                  = "etag"
	hookLastModified          = "last_modified"
	hookGET                   = "get"
	hookHEAD                  = "head"
	hookPOST                  = "post"
	hookPUT                   = "put"
	hookPATCH                 = "patch"
	hookDELETE                = "delete"
)

// PredicateFunc is a boolean hook: it may read the request and write to
// the response (e.g. a negotiation predicate records the chosen value),
// but it must never change Response.StatusCode — only action hooks and
// terminals do that.
type PredicateFunc func(*Request, *Response) bool

// ActionFunc produces a terminal body for a non-default lifecycle branch
// (get, head, post, put, patch, delete). It writes directly into resp
// and returns an error only when it genuinely cannot complete — the
// adapter surfaces that as a 500.
type ActionFunc func(req *Request, resp *Response) error

// LanguagesFunc, CharsetsFunc, EncodingsFunc, and ContentTypesFunc are
// the four availability-provider hooks: each reports what the resource
// can currently serve, and may vary per request.
type (
	LanguagesFunc    func(*Request, *Response) []Language
	CharsetsFunc     func(*Request, *Response) []Charset
	EncodingsFunc    func(*Request, *Response) []Encoding
	ContentTypesFunc func(*Request, *Response) []MediaType
)

// ETagFunc reports the resource's current entity tag, if it has one.
type ETagFunc func(*Request, *Response) (EntityTag, bool)

// LastModifiedFunc reports the resource's last-modified time, if known.
type LastModifiedFunc func(*Request, *Response) (time.Time, bool)

// Resource is a fully configured, immutable bundle of hooks, built once
// via New and never mutated afterward, so a single instance is safe to
// share across concurrently dispatched requests.
//
// Every field has a default assigned by New if the corresponding
// With<Hook> option was not supplied; see defaults.go.
type Resource struct {
	// Predicates.
	serviceAvailable    PredicateFunc
	knownMethod         PredicateFunc
	uriTooLong          PredicateFunc
	methodAllowed       PredicateFunc
	malformed           PredicateFunc
	authorized          PredicateFunc
	allowed             PredicateFunc
	validContentHeader  PredicateFunc
	knownContentType    PredicateFunc
	validEntityLength   PredicateFunc
	exists              PredicateFunc
	existed             PredicateFunc
	respondWithEntity   PredicateFunc
	isNew               PredicateFunc
	postRedirect        PredicateFunc
	putToDifferentURL   PredicateFunc
	multipleReps        PredicateFunc
	conflict            PredicateFunc
	canPostToMissing    PredicateFunc
	canPostToGone       PredicateFunc
	canPutToMissing     PredicateFunc
	movedPermanently    PredicateFunc
	movedTemporarily    PredicateFunc
	deleteEnacted       PredicateFunc
	processable         PredicateFunc

	// Availability providers.
	availableLanguages    LanguagesFunc
	availableCharsets     CharsetsFunc
	availableEncodings    EncodingsFunc
	availableContentTypes ContentTypesFunc

	// Metadata providers.
	etag         ETagFunc
	lastModified LastModifiedFunc

	// Actions.
	get   ActionFunc
	head  ActionFunc
	post  ActionFunc
	put   ActionFunc
	patch ActionFunc
	del   ActionFunc

	// Per-terminal body overrides, keyed by status code; absent entries
	// fall back to the package-level defaultTerminals table.
	terminals map[int]TerminalFunc

	// engine is built once from the above by New, via newEngine.
	engine *Engine
}

// TerminalFunc writes a status and body onto resp for a single fixed
// terminal status. Registered per-status via WithTerminal.
type TerminalFunc func(resp *Response)
