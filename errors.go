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

import "errors"

// Static errors for better error handling and testing.
// These errors should be wrapped with fmt.Errorf and %w when context is needed.
var (
	// Configuration errors, returned by New.
	ErrHookAlreadyRegistered = errors.New("resource: hook already registered")
	ErrUnknownTerminalStatus = errors.New("resource: unknown terminal status")
	ErrNilHookFunc           = errors.New("resource: hook function is nil")

	// Graph invariant errors. These indicate an engine bug, not a resource
	// outcome, and should never be observed outside this package's own tests.
	// Wrapped into the error logged by (*Engine).Dispatch; see engine.go.
	ErrUnknownNode  = errors.New("resource: unknown decision node")
	ErrGraphTooDeep = errors.New("resource: decision graph traversal exceeded hop limit")

	// Adapter errors.
	ErrNilResource = errors.New("resource: nil *Resource passed to adapter")
)
