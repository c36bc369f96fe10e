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

package links

import (
	"fmt"
	"net/url"

	"dirpx.dev/problem/slug"
)

// problemsSegment is the stable namespace under which problem type URIs
// live. It is deliberately NOT under the versioned API root: a problem's
// identity survives API version bumps, so "type" URIs must not carry a
// version segment.
const problemsSegment = "problems/"

// Problems resolves problem slugs to their stable "type" URIs:
//
//	{host}/problems/{slug}
//
// The base is computed once at construction; Type is a pure function over
// it and safe for concurrent use.
type Problems struct {
	// base is the precomputed, slash-terminated problems namespace,
	// e.g. "https://example.com/problems/".
	base *url.URL
}

// NewProblems normalizes the host and precomputes the problems namespace.
// Fails with ErrInvalidHost when the host lacks a scheme or host component.
func NewProblems(host string) (*Problems, error) {
	h, err := NormalizeHost(host)
	if err != nil {
		return nil, err
	}
	return &Problems{base: Resolve(h, problemsSegment)}, nil
}

// Base returns a copy of the problems namespace URI,
// e.g. "https://example.com/problems/".
func (p *Problems) Base() *url.URL {
	u := *p.base
	return &u
}

// Type resolves a slug to its absolute, stable type URI.
//
// The slug is validated first: it becomes a URI path segment verbatim and
// must never require additional escaping. A blank slug or one with
// characters outside [a-z0-9.-] fails with slug.ErrSlugInvalid — that is a
// programmer error (an unvalidated identity reached link building), not a
// user-facing condition.
func (p *Problems) Type(s slug.Slug) (*url.URL, error) {
	if err := slug.Validate(s); err != nil {
		return nil, fmt.Errorf("links: type for slug %q: %w", s, err)
	}
	return Resolve(p.base, string(s)), nil
}
