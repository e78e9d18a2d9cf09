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

// Package resourcerouter binds a resource.Resource to rivaas.dev/router,
// demonstrating that the decision engine is host-framework independent:
// handler.go binds the same Resource to plain net/http, this package
// binds it to router.HandlerFunc. Neither adapter touches graph.go;
// both go through Resource.Dispatch.
package resourcerouter

import (
	"rivaas.dev/resource"
	"rivaas.dev/router"
)

// Bind adapts res into a router.HandlerFunc — the same signature,
// func(*router.Context), that router uses for every other handler and
// middleware it registers.
func Bind(res *resource.Resource) router.HandlerFunc {
	if res == nil {
		panic(resource.ErrNilResource)
	}
	return func(c *router.Context) {
		req := resource.FromHTTPRequest(c.Request)
		resp := res.Dispatch(req)
		resp.WriteHeader(c.Response)
	}
}
