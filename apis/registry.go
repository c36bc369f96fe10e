/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import (
	"dirpx.dev/problem/slug"
	"google.golang.org/grpc/codes"
)

// Meta is the machine metadata bound to a problem slug.
//
// The slug is the URI identity of the problem; Meta carries everything else a
// transport needs to serve it: the HTTP status, the short machine code that
// clients branch on, and the gRPC projection of the same condition.
//
// Code and slug are deliberately distinct values: the slug lives in the
// "type" URI and must read well as a path segment, while Code is the compact
// token a client switches on (uppercase, underscore-separated, e.g.
// "NOT_FOUND"). Two slugs MAY share a machine code; codes are advisory and
// no uniqueness is enforced.
type Meta struct {
	// Status is the HTTP status served for this problem. Must be a
	// well-known 4xx/5xx value.
	Status int

	// Code is the stable machine code, e.g. "NOT_FOUND", "RATE_LIMITED".
	// Must match ^[A-Z][A-Z0-9_]{1,63}$.
	Code string

	// GRPC is the gRPC status code used when the same problem crosses a
	// gRPC boundary. A zero value (codes.OK) means "not specified" and is
	// resolved from Status at registry build time.
	GRPC codes.Code
}

// Registry is an immutable, concurrency-safe view of the problem mappings.
//
// It answers the two questions the boundary layer asks on every failed
// request: "which problem is this error?" (SlugFor) and "what metadata is
// bound to that problem?" (MetaFor). Registration happens once, during
// single-threaded start-up; after construction a Registry never changes and
// is safe for lock-free concurrent reads.
type Registry interface {
	// MetaFor returns the metadata registered for the given slug.
	//
	// The boolean result makes "absent" explicit. For a slug that was
	// produced by SlugFor, absence is a wiring defect (a binding points at
	// an unregistered slug) and callers MUST treat it as fatal, not as a
	// user-facing condition.
	MetaFor(s slug.Slug) (Meta, bool)

	// SlugFor resolves an error value to a problem slug by walking the
	// error's wrap chain from the outermost (most specific) error inward.
	//
	// It returns ("", false) when no binding matches anywhere in the
	// chain. The registry never guesses: choosing a default identity
	// (conventionally slug.InternalError) is the caller's decision.
	SlugFor(err error) (slug.Slug, bool)

	// Explain returns a human-readable trace of how MetaFor resolved the
	// given slug (exact registration, prefix rule, or absent).
	// Intended for diagnostics and tests, not for machine parsing.
	Explain(s slug.Slug) string
}
