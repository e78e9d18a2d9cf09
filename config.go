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

// Option configures a Resource during New. Returns an error rather than
// panicking directly so a bad hook registration is a construction-time
// error the caller can handle, not a panic.
type Option func(*config) error

// config accumulates options before New finalizes them into an immutable
// Resource. Kept separate from Resource itself so Resource's zero value
// never has to be "partially built" — once New returns, every field is
// set, either to a user hook or a package default.
type config struct {
	res *Resource

	// set tracks which hook names have already been registered, so a
	// second WithGET (for example) is a configuration error rather than
	// a silent overwrite.
	set map[string]bool

	headExplicit bool

	logger       *logging.Logger
	tracer       trace.Tracer
	meter        metric.Meter
	diagnostics  DiagnosticHandler
	cacheControl []CacheControlOption
}

func newConfig() *config {
	return &config{
		res: &Resource{terminals: map[int]TerminalFunc{}},
		set: make(map[string]bool, 32),
	}
}

// markSet records that hook was configured, returning ErrHookAlreadyRegistered
// on a second registration.
func (c *config) markSet(hook string) error {
	if c.set[hook] {
		return fmt.Errorf("%w: %s", ErrHookAlreadyRegistered, hook)
	}
	c.set[hook] = true
	return nil
}

// applyDefaults fills every hook field left nil after options ran with
// its package-level default — every hook has one, so a Resource built
// with zero options still behaves predictably.
func (c *config) applyDefaults() {
	r := c.res

	if !c.set[hookServiceAvailable] {
		r.serviceAvailable = alwaysTrue
	}
	if !c.set[hookKnownMethod] {
		r.knownMethod = defaultKnownMethod
	}
	if !c.set[hookURITooLong] {
		r.uriTooLong = alwaysFalse
	}
	if !c.set[hookMethodAllowed] {
		r.methodAllowed = defaultMethodAllowed
	}
	if !c.set[hookMalformed] {
		r.malformed = alwaysFalse
	}
	if !c.set[hookAuthorized] {
		r.authorized = alwaysTrue
	}
	if !c.set[hookAllowed] {
		r.allowed = alwaysTrue
	}
	if !c.set[hookValidContentHeader] {
		r.validContentHeader = alwaysTrue
	}
	if !c.set[hookKnownContentType] {
		r.knownContentType = alwaysTrue
	}
	if !c.set[hookValidEntityLength] {
		r.validEntityLength = alwaysTrue
	}
	if !c.set[hookExists] {
		r.exists = alwaysTrue
	}
	if !c.set[hookExisted] {
		r.existed = alwaysFalse
	}
	if !c.set[hookRespondWithEntity] {
		r.respondWithEntity = alwaysFalse
	}
	if !c.set[hookNew] {
		r.isNew = alwaysTrue
	}
	if !c.set[hookPostRedirect] {
		r.postRedirect = alwaysFalse
	}
	if !c.set[hookPutToDifferentURL] {
		r.putToDifferentURL = alwaysFalse
	}
	if !c.set[hookMultipleReps] {
		r.multipleReps = alwaysFalse
	}
	if !c.set[hookConflict] {
		r.conflict = alwaysFalse
	}
	if !c.set[hookCanPostToMissing] {
		r.canPostToMissing = alwaysTrue
	}
	if !c.set[hookCanPostToGone] {
		r.canPostToGone = alwaysFalse
	}
	if !c.set[hookCanPutToMissing] {
		r.canPutToMissing = alwaysTrue
	}
	if !c.set[hookMovedPermanently] {
		r.movedPermanently = alwaysFalse
	}
	if !c.set[hookMovedTemporarily] {
		r.movedTemporarily = alwaysFalse
	}
	if !c.set[hookDeleteEnacted] {
		r.deleteEnacted = alwaysTrue
	}
	if !c.set[hookProcessable] {
		r.processable = alwaysTrue
	}

	if !c.set[hookAvailableLanguages] {
		r.availableLanguages = defaultAvailableLanguages
	}
	if !c.set[hookAvailableCharsets] {
		r.availableCharsets = defaultAvailableCharsets
	}
	if !c.set[hookAvailableEncodings] {
		r.availableEncodings = defaultAvailableEncodings
	}
	if !c.set[hookAvailableContentTypes] {
		r.availableContentTypes = defaultAvailableContentTypes
	}

	if !c.set[hookETag] {
		r.etag = defaultETag
	}
	if !c.set[hookLastModified] {
		r.lastModified = defaultLastModified
	}

	if !c.set[hookGET] {
		r.get = defaultAction
	}
	if !c.set[hookPOST] {
		r.post = defaultAction
	}
	if !c.set[hookPUT] {
		r.put = defaultAction
	}
	if !c.set[hookPATCH] {
		r.patch = defaultAction
	}
	if !c.set[hookDELETE] {
		r.del = defaultAction
	}

	// head defaults to get, resolved here so it picks up a user-supplied
	// get override even when head itself was never set.
	if !c.headExplicit {
		get := r.get
		r.head = func(req *Request, resp *Response) error {
			if err := get(req, resp); err != nil {
				return err
			}
			resp.Body = nil
			return nil
		}
	}

	if c.logger == nil {
		c.logger = logging.MustNew()
	}
}

// New builds a Resource from the given options, applying a package
// default to any hook not explicitly configured. Returns an error on
// duplicate hook registration rather than silently overwriting.
func New(opts ...Option) (*Resource, error) {
	cfg := newConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	cfg.applyDefaults()

	cfg.res.engine = newEngine(cfg)
	return cfg.res, nil
}

// MustNew is New, panicking on error. For callers who have already
// validated their own option set (e.g. it is fixed at compile time) and
// would rather fail fast at startup than thread an error through main.
func MustNew(opts ...Option) *Resource {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return r
}
