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

// Package httpx adapts the problem pipeline to net/http: it serializes
// Problem documents as application/problem+json responses and renders
// pagination navigation sets as RFC 8288 Link headers.
package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"dirpx.dev/problem"
	"dirpx.dev/problem/apis"
	"dirpx.dev/problem/links"
	"dirpx.dev/problem/slug"
)

// ContentType is the RFC 7807 media type for problem documents.
const ContentType = "application/problem+json"

// requestIDHeader carries the per-response correlation id minted by Write.
const requestIDHeader = "X-Request-ID"

// Writer is a thin adapter that turns errors and Problem values into HTTP
// responses. It is configured once and shared across handlers.
type Writer struct {
	// Factory builds the problem documents. Required.
	Factory *problem.Factory

	// Registry resolves errors to slugs in WriteError. Required for
	// WriteError; Write alone does not use it.
	Registry apis.Registry

	// DefaultSlug is the identity used when the registry cannot resolve
	// an error. Empty means slug.InternalError.
	DefaultSlug slug.Slug

	// Logger, when set, records every 5xx problem that leaves this
	// writer. 4xx problems are client noise and are not logged.
	Logger *slog.Logger
}

// Write serializes a Problem to the response writer.
//
// The response carries Content-Type application/problem+json, the problem's
// status, and a freshly minted X-Request-ID. When the problem has no
// instance yet, the request path is used; without a request, a urn:uuid
// of the correlation id is used instead, so an instance is always present
// on the wire.
//
// No automatic redaction or filtering is performed here: whatever is
// present in the problem is exposed as-is. Higher-level handlers should
// apply policies before calling Write.
func (w Writer) Write(rw http.ResponseWriter, r *http.Request, p problem.Problem) {
	rid := uuid.NewString()
	if p.Instance == "" {
		if r != nil && r.URL != nil {
			p = p.WithInstance(r.URL.Path)
		} else {
			p = p.WithInstance("urn:uuid:" + rid)
		}
	}

	rw.Header().Set("Content-Type", ContentType)
	rw.Header().Set(requestIDHeader, rid)
	rw.WriteHeader(p.Status)
	_ = json.NewEncoder(rw).Encode(p)

	if w.Logger != nil && p.Status >= 500 {
		w.Logger.Error("problem response",
			"status", p.Status,
			"type", p.Type,
			"code", p.Code,
			"instance", p.Instance,
			"rid", rid,
		)
	}
}

// WriteError resolves err to a problem identity and writes the resulting
// document.
//
// Resolution follows the boundary convention: Registry.SlugFor first, the
// configured default slug (slug.InternalError unless overridden) when the
// registry reports absence. Extension members contributed by the error
// (apis.ExtendedError anywhere in the wrap chain) are merged into the
// document.
//
// err.Error() becomes the detail member verbatim; sanitize upstream if the
// error text may carry sensitive internals.
func (w Writer) WriteError(rw http.ResponseWriter, r *http.Request, err error, tag language.Tag) {
	s, ok := w.Registry.SlugFor(err)
	if !ok {
		s = w.DefaultSlug
		if s == slug.Empty {
			s = slug.InternalError
		}
	}

	var opts []problem.Option
	var ee apis.ExtendedError
	if errors.As(err, &ee) {
		if ext := ee.ProblemExtensions(); len(ext) > 0 {
			opts = append(opts, problem.WithExtensionsOption(ext))
		}
	}

	p, buildErr := w.Factory.Build(s, err.Error(), tag, "", opts...)
	if buildErr != nil {
		// Fatal tier: a binding points at an unregistered slug. Log loudly
		// and still answer the client with a bare 500 problem.
		if w.Logger != nil {
			w.Logger.Error("problem registry inconsistency", "slug", s.String(), "err", buildErr)
		}
		p = problem.Problem{
			Type:   "about:blank",
			Title:  http.StatusText(http.StatusInternalServerError),
			Status: http.StatusInternalServerError,
		}
	}
	w.Write(rw, r, p)
}

// LinkHeader renders a navigation set as an RFC 8288 Link header value:
//
//	<https://...?page=1&size=20>; rel="self", <https://...>; rel="first", ...
//
// The rel order is stable: self, first, prev, next, last.
func LinkHeader(nav links.Nav) string {
	var b strings.Builder
	for i, l := range nav.Links() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "<%s>; rel=%q", l.URL, l.Rel)
	}
	return b.String()
}
