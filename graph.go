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

// nodeID names one decision node. Trace events and log lines carry it
// verbatim so a request's path through the graph can be read straight
// off a trace without any further translation.
type nodeID string

const (
	nodeServiceAvailable      nodeID = "service_available"
	nodeKnownMethod           nodeID = "known_method"
	nodeURITooLong            nodeID = "uri_too_long"
	nodeMethodAllowed         nodeID = "method_allowed"
	nodeMalformed             nodeID = "malformed"
	nodeAuthorized            nodeID = "authorized"
	nodeAllowed               nodeID = "allowed"
	nodeValidContentHeader    nodeID = "valid_content_header"
	nodeKnownContentType      nodeID = "known_content_type"
	nodeValidEntityLength     nodeID = "valid_entity_length"
	nodeIsOptions             nodeID = "is_options"
	nodeAcceptExists          nodeID = "accept_exists"
	nodeMediaTypeAvailable    nodeID = "media_type_available"
	nodeAcceptLanguageExists  nodeID = "accept_language_exists"
	nodeLanguageAvailable     nodeID = "language_available"
	nodeAcceptCharsetExists   nodeID = "accept_charset_exists"
	nodeCharsetAvailable      nodeID = "charset_available"
	nodeAcceptEncodingExists  nodeID = "accept_encoding_exists"
	nodeEncodingAvailable     nodeID = "encoding_available"
	nodeProcessable           nodeID = "processable"
	nodeExists                nodeID = "exists"
	nodeIfMatchExists         nodeID = "if_match_exists"
	nodeIfMatchStar           nodeID = "if_match_star"
	nodeIfMatch               nodeID = "if_match"
	nodeIfUnmodifiedSinceExists nodeID = "if_unmodified_since_exists"
	nodeIfUnmodifiedSince     nodeID = "if_unmodified_since"
	nodeIfNoneMatchExists     nodeID = "if_none_match_exists"
	nodeIfNoneMatchStar       nodeID = "if_none_match_star"
	nodeIfNoneMatch           nodeID = "if_none_match"
	nodeNoneMatchStatus       nodeID = "none_match_status"
	nodeIfModifiedSinceExists nodeID = "if_modified_since_exists"
	nodeIfModifiedSince       nodeID = "if_modified_since"
	nodeMethodDelete          nodeID = "method_delete"
	nodeMethodPatch           nodeID = "method_patch"
	nodePostToExisting        nodeID = "post_to_existing"
	nodePutToExisting         nodeID = "put_to_existing"
	nodeConflict              nodeID = "conflict"
	nodeIfMatchStarForMissing nodeID = "if_match_star_exists_for_missing"
	nodeMethodPut             nodeID = "method_put"
	nodePutToDifferentURL     nodeID = "put_to_different_url"
	nodeCanPutToMissing       nodeID = "can_put_to_missing"
	nodeExisted               nodeID = "existed"
	nodeMovedPermanently      nodeID = "moved_permanently"
	nodeMovedTemporarily      nodeID = "moved_temporarily"
	nodePostToGone            nodeID = "post_to_gone"
	nodeCanPostToGone         nodeID = "can_post_to_gone"
	nodePostToMissing         nodeID = "post_to_missing"
	nodeCanPostToMissing      nodeID = "can_post_to_missing_decision"
	nodePostRedirect          nodeID = "post_redirect"
	nodeNew                   nodeID = "new"
	nodeRespondWithEntity     nodeID = "respond_with_entity"
	nodeMultipleReps          nodeID = "multiple_representations"
)

const rootNode = nodeServiceAvailable

// maxHops bounds traversal: every request reaches a terminal well under
// this many hops, so exceeding it indicates a cycle bug in graphTable,
// not a reachable runtime condition.
const maxHops = 64

// outcome is what a single node produces: either a successor node to
// visit next, or a terminal status that ends the dispatch.
type outcome struct {
	next       nodeID
	terminal   int
	isTerminal bool
}

func goNode(n nodeID) outcome   { return outcome{next: n} }
func stop(status int) outcome  { return outcome{terminal: status, isTerminal: true} }

// execState is the per-dispatch scratch the graph functions read and
// write. Never shared across requests.
type execState struct {
	req  *Request
	resp *Response
	res  *Resource
	eng  *Engine
}

// nodeFunc evaluates one decision node. The graph is represented as data
// and traversed iteratively rather than having nodes hard-call each
// other: every entry in graphTable is independent, and the loop in
// (*Engine).Dispatch is the only place that walks from one to the next.
type nodeFunc func(st *execState) outcome

func headerPresent(h http.Header, name string) bool {
	return h.Get(name) != ""
}

// hookFailed reports an action hook's error as a diagnostic and produces
// the 500 outcome the adapter surfaces; the underlying cause is never
// exposed directly in the response body.
func hookFailed(st *execState, hook string, err error) outcome {
	st.eng.diagnose(DiagnosticEvent{
		Kind:    DiagHookFailure,
		Message: "action hook failed",
		Fields:  map[string]any{"hook": hook, "error": err.Error()},
	})
	return stop(http.StatusInternalServerError)
}

// reportQualityZeroDropped returns a Best/BestXxx onDropped callback that
// surfaces the drop as a DiagQualityZeroDropped event, naming which
// negotiated axis it happened on.
func reportQualityZeroDropped(st *execState, axis string) func(int) {
	return func(n int) {
		st.eng.diagnose(DiagnosticEvent{
			Kind:    DiagQualityZeroDropped,
			Message: "dropped q=0 accept entries",
			Fields:  map[string]any{"axis": axis, "count": n},
		})
	}
}

var graphTable = map[nodeID]nodeFunc{
	nodeServiceAvailable: func(st *execState) outcome {
		if !st.res.serviceAvailable(st.req, st.resp) {
			return stop(http.StatusServiceUnavailable)
		}
		return goNode(nodeKnownMethod)
	},
	nodeKnownMethod: func(st *execState) outcome {
		if !st.res.knownMethod(st.req, st.resp) {
			st.eng.diagnose(DiagnosticEvent{
				Kind:    DiagUnknownMethod,
				Message: "rejected unknown method",
				Fields:  map[string]any{"method": st.req.Method},
			})
			return stop(http.StatusNotImplemented)
		}
		return goNode(nodeURITooLong)
	},
	nodeURITooLong: func(st *execState) outcome {
		if st.res.uriTooLong(st.req, st.resp) {
			return stop(http.StatusRequestURITooLong)
		}
		return goNode(nodeMethodAllowed)
	},
	nodeMethodAllowed: func(st *execState) outcome {
		if !st.res.methodAllowed(st.req, st.resp) {
			return stop(http.StatusMethodNotAllowed)
		}
		return goNode(nodeMalformed)
	},
	nodeMalformed: func(st *execState) outcome {
		if st.res.malformed(st.req, st.resp) {
			return stop(http.StatusBadRequest)
		}
		return goNode(nodeAuthorized)
	},
	nodeAuthorized: func(st *execState) outcome {
		if !st.res.authorized(st.req, st.resp) {
			return stop(http.StatusUnauthorized)
		}
		return goNode(nodeAllowed)
	},
	nodeAllowed: func(st *execState) outcome {
		if !st.res.allowed(st.req, st.resp) {
			return stop(http.StatusForbidden)
		}
		return goNode(nodeValidContentHeader)
	},
	nodeValidContentHeader: func(st *execState) outcome {
		if !st.res.validContentHeader(st.req, st.resp) {
			return stop(http.StatusNotImplemented)
		}
		return goNode(nodeKnownContentType)
	},
	nodeKnownContentType: func(st *execState) outcome {
		if !st.res.knownContentType(st.req, st.resp) {
			return stop(http.StatusUnsupportedMediaType)
		}
		return goNode(nodeValidEntityLength)
	},
	nodeValidEntityLength: func(st *execState) outcome {
		if !st.res.validEntityLength(st.req, st.resp) {
			return stop(http.StatusRequestEntityTooLarge)
		}
		return goNode(nodeIsOptions)
	},
	nodeIsOptions: func(st *execState) outcome {
		if st.req.IsMethod(http.MethodOptions) {
			return stop(http.StatusOK)
		}
		return goNode(nodeAcceptExists)
	},
	nodeAcceptExists: func(st *execState) outcome {
		if headerPresent(st.req.Header, "Accept") {
			return goNode(nodeMediaTypeAvailable)
		}
		return goNode(nodeAcceptLanguageExists)
	},
	nodeMediaTypeAvailable: func(st *execState) outcome {
		available := st.res.availableContentTypes(st.req, st.resp)
		mt, ok := BestMediaType(st.req.Header.Get("Accept"), available, reportQualityZeroDropped(st, "media_type"))
		if !ok {
			return stop(http.StatusNotAcceptable)
		}
		st.resp.Set("Content-Type", mt.String())
		st.resp.negotiated.mediaType = true
		return goNode(nodeAcceptLanguageExists)
	},
	nodeAcceptLanguageExists: func(st *execState) outcome {
		if headerPresent(st.req.Header, "Accept-Language") {
			return goNode(nodeLanguageAvailable)
		}
		return goNode(nodeAcceptCharsetExists)
	},
	nodeLanguageAvailable: func(st *execState) outcome {
		available := st.res.availableLanguages(st.req, st.resp)
		lang, ok := BestLanguage(st.req.Header.Get("Accept-Language"), available, reportQualityZeroDropped(st, "language"))
		if !ok {
			return stop(http.StatusNotAcceptable)
		}
		st.resp.Set("Content-Language", string(lang))
		st.resp.negotiated.language = true
		return goNode(nodeAcceptCharsetExists)
	},
	nodeAcceptCharsetExists: func(st *execState) outcome {
		if headerPresent(st.req.Header, "Accept-Charset") {
			return goNode(nodeCharsetAvailable)
		}
		return goNode(nodeAcceptEncodingExists)
	},
	nodeCharsetAvailable: func(st *execState) outcome {
		available := st.res.availableCharsets(st.req, st.resp)
		cs, ok := BestCharset(st.req.Header.Get("Accept-Charset"), available, reportQualityZeroDropped(st, "charset"))
		if !ok {
			return stop(http.StatusNotAcceptable)
		}
		st.resp.negotiated.charset = true
		if ct := st.resp.Header.Get("Content-Type"); ct != "" {
			st.resp.Set("Content-Type", ct+"; charset="+string(cs))
		}
		return goNode(nodeAcceptEncodingExists)
	},
	nodeAcceptEncodingExists: func(st *execState) outcome {
		if headerPresent(st.req.Header, "Accept-Encoding") {
			return goNode(nodeEncodingAvailable)
		}
		return goNode(nodeProcessable)
	},
	nodeEncodingAvailable: func(st *execState) outcome {
		available := st.res.availableEncodings(st.req, st.resp)
		enc, ok := BestEncoding(st.req.Header.Get("Accept-Encoding"), available, reportQualityZeroDropped(st, "encoding"))
		if !ok {
			return stop(http.StatusNotAcceptable)
		}
		st.resp.negotiated.encoding = true
		if enc != IdentityEncoding {
			st.resp.Set("Content-Encoding", string(enc))
		}
		return goNode(nodeProcessable)
	},
	nodeProcessable: func(st *execState) outcome {
		if !st.res.processable(st.req, st.resp) {
			return stop(http.StatusUnprocessableEntity)
		}
		return goNode(nodeExists)
	},
	nodeExists: func(st *execState) outcome {
		if st.res.exists(st.req, st.resp) {
			return goNode(nodeIfMatchExists)
		}
		return goNode(nodeIfMatchStarForMissing)
	},
	nodeIfMatchExists: func(st *execState) outcome {
		if headerPresent(st.req.Header, "If-Match") {
			return goNode(nodeIfMatchStar)
		}
		return goNode(nodeIfUnmodifiedSinceExists)
	},
	nodeIfMatchStar: func(st *execState) outcome {
		match := ParseEntityTagMatch(st.req.Header.Get("If-Match"))
		if match.IsAny() {
			return goNode(nodeIfUnmodifiedSinceExists)
		}
		return goNode(nodeIfMatch)
	},
	nodeIfMatch: func(st *execState) outcome {
		match := ParseEntityTagMatch(st.req.Header.Get("If-Match"))
		tag, ok := st.res.etag(st.req, st.resp)
		if ok && anyMatches(tag, match.Tags(), StrongMatch) {
			return goNode(nodeIfUnmodifiedSinceExists)
		}
		return stop(http.StatusPreconditionFailed)
	},
	nodeIfUnmodifiedSinceExists: func(st *execState) outcome {
		if headerPresent(st.req.Header, "If-Unmodified-Since") {
			return goNode(nodeIfUnmodifiedSince)
		}
		return goNode(nodeIfNoneMatchExists)
	},
	nodeIfUnmodifiedSince: func(st *execState) outcome {
		clientTime, err := http.ParseTime(st.req.Header.Get("If-Unmodified-Since"))
		if err != nil {
			st.eng.diagnose(DiagnosticEvent{
				Kind:    DiagMalformedPrecondition,
				Message: "ignoring malformed If-Unmodified-Since",
				Fields:  map[string]any{"value": st.req.Header.Get("If-Unmodified-Since")},
			})
			return goNode(nodeIfNoneMatchExists)
		}
		serverTime, ok := st.res.lastModified(st.req, st.resp)
		if !ok {
			return goNode(nodeIfNoneMatchExists)
		}
		if !unmodifiedSince(serverTime, clientTime) {
			return stop(http.StatusPreconditionFailed)
		}
		return goNode(nodeIfNoneMatchExists)
	},
	nodeIfNoneMatchExists: func(st *execState) outcome {
		if headerPresent(st.req.Header, "If-None-Match") {
			return goNode(nodeIfNoneMatchStar)
		}
		return goNode(nodeIfModifiedSinceExists)
	},
	nodeIfNoneMatchStar: func(st *execState) outcome {
		match := ParseEntityTagMatch(st.req.Header.Get("If-None-Match"))
		if match.IsAny() {
			return goNode(nodeNoneMatchStatus)
		}
		return goNode(nodeIfNoneMatch)
	},
	nodeIfNoneMatch: func(st *execState) outcome {
		match := ParseEntityTagMatch(st.req.Header.Get("If-None-Match"))
		tag, ok := st.res.etag(st.req, st.resp)
		if ok && anyMatches(tag, match.Tags(), WeakMatch) {
			return goNode(nodeNoneMatchStatus)
		}
		return goNode(nodeIfModifiedSinceExists)
	},
	nodeNoneMatchStatus: func(st *execState) outcome {
		if st.req.IsMethod(http.MethodGet) || st.req.IsMethod(http.MethodHead) {
			return stop(http.StatusNotModified)
		}
		return stop(http.StatusPreconditionFailed)
	},
	nodeIfModifiedSinceExists: func(st *execState) outcome {
		if headerPresent(st.req.Header, "If-Modified-Since") {
			return goNode(nodeIfModifiedSince)
		}
		return goNode(nodeMethodDelete)
	},
	nodeIfModifiedSince: func(st *execState) outcome {
		clientTime, err := http.ParseTime(st.req.Header.Get("If-Modified-Since"))
		if err != nil {
			st.eng.diagnose(DiagnosticEvent{
				Kind:    DiagMalformedPrecondition,
				Message: "ignoring malformed If-Modified-Since",
				Fields:  map[string]any{"value": st.req.Header.Get("If-Modified-Since")},
			})
			return goNode(nodeMethodDelete)
		}
		serverTime, ok := st.res.lastModified(st.req, st.resp)
		if !ok {
			return goNode(nodeMethodDelete)
		}
		if !modifiedSince(serverTime, clientTime) {
			return stop(http.StatusNotModified)
		}
		return goNode(nodeMethodDelete)
	},
	nodeMethodDelete: func(st *execState) outcome {
		if !st.req.IsMethod(http.MethodDelete) {
			return goNode(nodeMethodPatch)
		}
		if err := st.res.del(st.req, st.resp); err != nil {
			return hookFailed(st, "delete", err)
		}
		if !st.res.deleteEnacted(st.req, st.resp) {
			return stop(http.StatusAccepted)
		}
		return goNode(nodeRespondWithEntity)
	},
	nodeMethodPatch: func(st *execState) outcome {
		if !st.req.IsMethod(http.MethodPatch) {
			return goNode(nodePostToExisting)
		}
		if err := st.res.patch(st.req, st.resp); err != nil {
			return hookFailed(st, "patch", err)
		}
		return goNode(nodeRespondWithEntity)
	},
	nodePostToExisting: func(st *execState) outcome {
		if !st.req.IsMethod(http.MethodPost) {
			return goNode(nodePutToExisting)
		}
		if err := st.res.post(st.req, st.resp); err != nil {
			return hookFailed(st, "post", err)
		}
		return goNode(nodePostRedirect)
	},
	nodePutToExisting: func(st *execState) outcome {
		if !st.req.IsMethod(http.MethodPut) {
			return goNode(nodeMultipleReps)
		}
		return goNode(nodeConflict)
	},
	nodeConflict: func(st *execState) outcome {
		if st.res.conflict(st.req, st.resp) {
			return stop(http.StatusConflict)
		}
		if err := st.res.put(st.req, st.resp); err != nil {
			return hookFailed(st, "put", err)
		}
		return goNode(nodeNew)
	},
	nodeIfMatchStarForMissing: func(st *execState) outcome {
		if headerPresent(st.req.Header, "If-Match") {
			match := ParseEntityTagMatch(st.req.Header.Get("If-Match"))
			if match.IsAny() {
				return stop(http.StatusPreconditionFailed)
			}
		}
		return goNode(nodeMethodPut)
	},
	nodeMethodPut: func(st *execState) outcome {
		if !st.req.IsMethod(http.MethodPut) {
			return goNode(nodeExisted)
		}
		return goNode(nodePutToDifferentURL)
	},
	nodePutToDifferentURL: func(st *execState) outcome {
		if st.res.putToDifferentURL(st.req, st.resp) {
			return stop(http.StatusMovedPermanently)
		}
		return goNode(nodeCanPutToMissing)
	},
	nodeCanPutToMissing: func(st *execState) outcome {
		if !st.res.canPutToMissing(st.req, st.resp) {
			return stop(http.StatusNotImplemented)
		}
		return goNode(nodeConflict)
	},
	nodeExisted: func(st *execState) outcome {
		if st.res.existed(st.req, st.resp) {
			return goNode(nodeMovedPermanently)
		}
		return goNode(nodePostToMissing)
	},
	nodeMovedPermanently: func(st *execState) outcome {
		if st.res.movedPermanently(st.req, st.resp) {
			return stop(http.StatusMovedPermanently)
		}
		return goNode(nodeMovedTemporarily)
	},
	nodeMovedTemporarily: func(st *execState) outcome {
		if st.res.movedTemporarily(st.req, st.resp) {
			return stop(http.StatusTemporaryRedirect)
		}
		return goNode(nodePostToGone)
	},
	nodePostToGone: func(st *execState) outcome {
		if !st.req.IsMethod(http.MethodPost) {
			return stop(http.StatusGone)
		}
		return goNode(nodeCanPostToGone)
	},
	nodeCanPostToGone: func(st *execState) outcome {
		if !st.res.canPostToGone(st.req, st.resp) {
			return stop(http.StatusGone)
		}
		if err := st.res.post(st.req, st.resp); err != nil {
			return hookFailed(st, "post", err)
		}
		return goNode(nodePostRedirect)
	},
	nodePostToMissing: func(st *execState) outcome {
		if !st.req.IsMethod(http.MethodPost) {
			return stop(http.StatusNotFound)
		}
		return goNode(nodeCanPostToMissing)
	},
	nodeCanPostToMissing: func(st *execState) outcome {
		if !st.res.canPostToMissing(st.req, st.resp) {
			return stop(http.StatusNotFound)
		}
		if err := st.res.post(st.req, st.resp); err != nil {
			return hookFailed(st, "post", err)
		}
		return goNode(nodePostRedirect)
	},
	nodePostRedirect: func(st *execState) outcome {
		if st.res.postRedirect(st.req, st.resp) {
			return stop(http.StatusSeeOther)
		}
		return goNode(nodeNew)
	},
	nodeNew: func(st *execState) outcome {
		if st.res.isNew(st.req, st.resp) {
			return stop(http.StatusCreated)
		}
		return goNode(nodeRespondWithEntity)
	},
	nodeRespondWithEntity: func(st *execState) outcome {
		if !st.res.respondWithEntity(st.req, st.resp) {
			return stop(http.StatusNoContent)
		}
		return goNode(nodeMultipleReps)
	},
	nodeMultipleReps: func(st *execState) outcome {
		if st.res.multipleReps(st.req, st.resp) {
			return stop(http.StatusMultipleChoices)
		}
		var action ActionFunc
		if st.req.IsMethod(http.MethodHead) {
			action = st.res.head
		} else {
			action = st.res.get
		}
		if err := action(st.req, st.resp); err != nil {
			return hookFailed(st, "get/head", err)
		}
		if st.resp.StatusCode == 0 {
			return stop(http.StatusOK)
		}
		return stop(st.resp.StatusCode)
	},
}
