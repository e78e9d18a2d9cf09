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

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"rivaas.dev/logging"
)

// predicateOption is the shared constructor for every WithXxx predicate
// hook: validate, check for a duplicate registration, assign, mark set.
func predicateOption(name string, fn PredicateFunc, dst *PredicateFunc) Option {
	return func(c *config) error {
		if fn == nil {
			return ErrNilHookFunc
		}
		if err := c.markSet(name); err != nil {
			return err
		}
		*dst = fn
		return nil
	}
}

// WithServiceAvailable overrides the service_available predicate
// (default: always true). Return false to short-circuit the whole graph
// with a 503, e.g. while a dependency is down.
func WithServiceAvailable(fn PredicateFunc) Option {
	return func(c *config) error { return predicateOption(hookServiceAvailable, fn, &c.res.serviceAvailable)(c) }
}

// WithKnownMethod overrides known_method (default: true iff the method
// is one of GET/HEAD/POST/PUT/PATCH/DELETE/OPTIONS).
func WithKnownMethod(fn PredicateFunc) Option {
	return func(c *config) error { return predicateOption(hookKnownMethod, fn, &c.res.knownMethod)(c) }
}

// WithURITooLong overrides uri_too_long (default: always false).
func WithURITooLong(fn PredicateFunc) Option {
	return func(c *config) error { return predicateOption(hookURITooLong, fn, &c.res.uriTooLong)(c) }
}

// WithMethodAllowed overrides method_allowed (default: true iff GET or
// HEAD — override this to accept more methods).
//
// Example:
//
//	resource.WithMethodAllowed(func(req *resource.Request, _ *resource.Response) bool {
//	    switch req.Method {
//	    case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodDelete:
//	        return true
//	    default:
//	        return false
//	    }
//	})
func WithMethodAllowed(fn PredicateFunc) Option {
	return func(c *config) error { return predicateOption(hookMethodAllowed, fn, &c.res.methodAllowed)(c) }
}

// WithMalformed overrides malformed (default: always false).
func WithMalformed(fn PredicateFunc) Option {
	return func(c *config) error { return predicateOption(hookMalformed, fn, &c.res.malformed)(c) }
}

// WithAuthorized overrides authorized (default: always true).
func WithAuthorized(fn PredicateFunc) Option {
	return func(c *config) error { return predicateOption(hookAuthorized, fn, &c.res.authorized)(c) }
}

// WithAllowed overrides allowed (default: always true).
func WithAllowed(fn PredicateFunc) Option {
	return func(c *config) error { return predicateOption(hookAllowed, fn, &c.res.allowed)(c) }
}

// WithValidContentHeader overrides valid_content_header (default:
// always true).
func WithValidContentHeader(fn PredicateFunc) Option {
	return func(c *config) error {
		return predicateOption(hookValidContentHeader, fn, &c.res.validContentHeader)(c)
	}
}

// WithKnownContentType overrides known_content_type (default: always
// true).
func WithKnownContentType(fn PredicateFunc) Option {
	return func(c *config) error {
		return predicateOption(hookKnownContentType, fn, &c.res.knownContentType)(c)
	}
}

// WithValidEntityLength overrides valid_entity_length (default: always
// true).
func WithValidEntityLength(fn PredicateFunc) Option {
	return func(c *config) error {
		return predicateOption(hookValidEntityLength, fn, &c.res.validEntityLength)(c)
	}
}

// WithExists overrides exists (default: always true). Most resources
// override this to check whether the addressed entity is actually
// present.
func WithExists(fn PredicateFunc) Option {
	return func(c *config) error { return predicateOption(hookExists, fn, &c.res.exists)(c) }
}

// WithExisted overrides existed (default: always false). Return true for
// a resource that used to exist, to route toward 301/307/410 instead of
// a plain 404.
func WithExisted(fn PredicateFunc) Option {
	return func(c *config) error { return predicateOption(hookExisted, fn, &c.res.existed)(c) }
}

// WithRespondWithEntity overrides respond_with_entity (default: always
// false, meaning a PATCH or enacted DELETE, or a PUT/POST that new
// reports as not a creation, ends in 204).
func WithRespondWithEntity(fn PredicateFunc) Option {
	return func(c *config) error {
		return predicateOption(hookRespondWithEntity, fn, &c.res.respondWithEntity)(c)
	}
}

// WithNew overrides new (default: always true — a successful PUT to a
// missing resource is treated as a creation, returning 201).
func WithNew(fn PredicateFunc) Option {
	return func(c *config) error { return predicateOption(hookNew, fn, &c.res.isNew)(c) }
}

// WithPostRedirect overrides post_redirect (default: always false).
func WithPostRedirect(fn PredicateFunc) Option {
	return func(c *config) error { return predicateOption(hookPostRedirect, fn, &c.res.postRedirect)(c) }
}

// WithPutToDifferentURL overrides put_to_different_url (default: always
// false).
func WithPutToDifferentURL(fn PredicateFunc) Option {
	return func(c *config) error {
		return predicateOption(hookPutToDifferentURL, fn, &c.res.putToDifferentURL)(c)
	}
}

// WithMultipleRepresentations overrides multiple_representations
// (default: always false).
func WithMultipleRepresentations(fn PredicateFunc) Option {
	return func(c *config) error { return predicateOption(hookMultipleReps, fn, &c.res.multipleReps)(c) }
}

// WithConflict overrides conflict (default: always false).
func WithConflict(fn PredicateFunc) Option {
	return func(c *config) error { return predicateOption(hookConflict, fn, &c.res.conflict)(c) }
}

// WithCanPostToMissing overrides can_post_to_missing (default: always
// true).
func WithCanPostToMissing(fn PredicateFunc) Option {
	return func(c *config) error {
		return predicateOption(hookCanPostToMissing, fn, &c.res.canPostToMissing)(c)
	}
}

// WithCanPostToGone overrides can_post_to_gone (default: always false).
func WithCanPostToGone(fn PredicateFunc) Option {
	return func(c *config) error {
		return predicateOption(hookCanPostToGone, fn, &c.res.canPostToGone)(c)
	}
}

// WithCanPutToMissing overrides can_put_to_missing (default: always
// true).
func WithCanPutToMissing(fn PredicateFunc) Option {
	return func(c *config) error {
		return predicateOption(hookCanPutToMissing, fn, &c.res.canPutToMissing)(c)
	}
}

// WithMovedPermanently overrides moved_permanently (default: always
// false).
func WithMovedPermanently(fn PredicateFunc) Option {
	return func(c *config) error {
		return predicateOption(hookMovedPermanently, fn, &c.res.movedPermanently)(c)
	}
}

// WithMovedTemporarily overrides moved_temporarily (default: always
// false).
func WithMovedTemporarily(fn PredicateFunc) Option {
	return func(c *config) error {
		return predicateOption(hookMovedTemporarily, fn, &c.res.movedTemporarily)(c)
	}
}

// WithDeleteEnacted overrides delete_enacted (default: always true).
// Return false for a delete that only queues the deletion; the graph
// then returns 202 Accepted instead of proceeding to respond_with_entity.
func WithDeleteEnacted(fn PredicateFunc) Option {
	return func(c *config) error { return predicateOption(hookDeleteEnacted, fn, &c.res.deleteEnacted)(c) }
}

// WithProcessable overrides processable (default: always true).
func WithProcessable(fn PredicateFunc) Option {
	return func(c *config) error { return predicateOption(hookProcessable, fn, &c.res.processable)(c) }
}

// WithAvailableLanguages overrides the available_languages provider
// (default: ["*"]).
func WithAvailableLanguages(fn LanguagesFunc) Option {
	return func(c *config) error {
		if fn == nil {
			return ErrNilHookFunc
		}
		if err := c.markSet(hookAvailableLanguages); err != nil {
			return err
		}
		c.res.availableLanguages = fn
		return nil
	}
}

// WithAvailableCharsets overrides the available_charsets provider
// (default: ["UTF-8"]).
func WithAvailableCharsets(fn CharsetsFunc) Option {
	return func(c *config) error {
		if fn == nil {
			return ErrNilHookFunc
		}
		if err := c.markSet(hookAvailableCharsets); err != nil {
			return err
		}
		c.res.availableCharsets = fn
		return nil
	}
}

// WithAvailableEncodings overrides the available_encodings provider
// (default: [identity]).
func WithAvailableEncodings(fn EncodingsFunc) Option {
	return func(c *config) error {
		if fn == nil {
			return ErrNilHookFunc
		}
		if err := c.markSet(hookAvailableEncodings); err != nil {
			return err
		}
		c.res.availableEncodings = fn
		return nil
	}
}

// WithAvailableContentTypes overrides the available_content_types
// provider (default: empty — an empty list with no Accept header still
// succeeds, since nothing asked for media-type negotiation).
func WithAvailableContentTypes(fn ContentTypesFunc) Option {
	return func(c *config) error {
		if fn == nil {
			return ErrNilHookFunc
		}
		if err := c.markSet(hookAvailableContentTypes); err != nil {
			return err
		}
		c.res.availableContentTypes = fn
		return nil
	}
}

// WithETag overrides the etag metadata provider (default: none).
func WithETag(fn ETagFunc) Option {
	return func(c *config) error {
		if fn == nil {
			return ErrNilHookFunc
		}
		if err := c.markSet(hookETag); err != nil {
			return err
		}
		c.res.etag = fn
		return nil
	}
}

// WithLastModified overrides the last_modified metadata provider
// (default: none).
func WithLastModified(fn LastModifiedFunc) Option {
	return func(c *config) error {
		if fn == nil {
			return ErrNilHookFunc
		}
		if err := c.markSet(hookLastModified); err != nil {
			return err
		}
		c.res.lastModified = fn
		return nil
	}
}

// actionOption is the shared constructor for every WithXxx action hook.
func actionOption(name string, fn ActionFunc, dst *ActionFunc) Option {
	return func(c *config) error {
		if fn == nil {
			return ErrNilHookFunc
		}
		if err := c.markSet(name); err != nil {
			return err
		}
		*dst = fn
		return nil
	}
}

// WithGET overrides the get action (default: not implemented, 501).
func WithGET(fn ActionFunc) Option {
	return func(c *config) error { return actionOption(hookGET, fn, &c.res.get)(c) }
}

// WithHEAD overrides the head action (default: defers to get, stripping
// the body).
func WithHEAD(fn ActionFunc) Option {
	return func(c *config) error {
		if fn == nil {
			return ErrNilHookFunc
		}
		if err := c.markSet(hookHEAD); err != nil {
			return err
		}
		c.res.head = fn
		c.headExplicit = true
		return nil
	}
}

// WithPOST overrides the post action (default: not implemented, 501).
func WithPOST(fn ActionFunc) Option {
	return func(c *config) error { return actionOption(hookPOST, fn, &c.res.post)(c) }
}

// WithPUT overrides the put action (default: not implemented, 501).
func WithPUT(fn ActionFunc) Option {
	return func(c *config) error { return actionOption(hookPUT, fn, &c.res.put)(c) }
}

// WithPATCH overrides the patch action (default: not implemented, 501).
func WithPATCH(fn ActionFunc) Option {
	return func(c *config) error { return actionOption(hookPATCH, fn, &c.res.patch)(c) }
}

// WithDELETE overrides the delete action (default: not implemented, 501).
func WithDELETE(fn ActionFunc) Option {
	return func(c *config) error { return actionOption(hookDELETE, fn, &c.res.del)(c) }
}

// WithTerminal overrides the default body for one of the fixed terminal
// statuses. status must be one of the statuses the decision graph
// actually produces (see terminals.go); anything else is a
// configuration error.
//
// Example:
//
//	resource.WithTerminal(http.StatusNotFound, func(resp *resource.Response) {
//	    resp.StatusCode = http.StatusNotFound
//	    resp.Body = []byte(`{"error":"not found"}`)
//	    resp.Header.Set("Content-Type", "application/json")
//	})
func WithTerminal(status int, fn TerminalFunc) Option {
	return func(c *config) error {
		if fn == nil {
			return ErrNilHookFunc
		}
		if _, ok := defaultTerminals[status]; !ok {
			return fmt.Errorf("%w: %d", ErrUnknownTerminalStatus, status)
		}
		c.res.terminals[status] = fn
		return nil
	}
}

// WithLogger sets the *logging.Logger used for per-node debug tracing —
// the engine logs each decision at debug level. Absent this option, New
// falls back to logging.MustNew()'s zero-value console handler, so
// there is always a logger to call.
func WithLogger(logger *logging.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithTracer enables per-dispatch OpenTelemetry tracing: one span named
// "resource.decide" per Dispatch call, with one event per decision node
// visited. Absent this option, tracing is a no-op.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *config) error {
		c.tracer = tracer
		return nil
	}
}

// WithMeter enables an OpenTelemetry counter of terminal status codes,
// one increment per Dispatch call, labeled by the terminal node name.
// Absent this option, metrics recording is a no-op.
func WithMeter(meter metric.Meter) Option {
	return func(c *config) error {
		c.meter = meter
		return nil
	}
}

// WithDiagnostics registers a handler for engine diagnostic events (q=0
// entries dropped, malformed date precondition headers ignored, action
// hook failures, unknown methods rejected). See diagnostics.go; mirrors
// router.WithDiagnostics exactly.
func WithDiagnostics(handler DiagnosticHandler) Option {
	return func(c *config) error {
		c.diagnostics = handler
		return nil
	}
}

// WithCacheControl sets a resource-level default Cache-Control header,
// applied by the engine to every 2xx response that doesn't already carry
// one. A get/head action hook can still call Response.CacheControl
// directly for a per-request value that overrides this default; see
// cache_control.go.
//
// Example:
//
//	resource.New(resource.WithCacheControl(
//	    resource.WithPublic(),
//	    resource.WithMaxAge(time.Minute),
//	))
func WithCacheControl(opts ...CacheControlOption) Option {
	return func(c *config) error {
		c.cacheControl = opts
		return nil
	}
}
