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
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

const (
	// versionFmt validates the API version token: "v" followed by digits,
	// no leading zero. e.g. "v1", "v2", "v12".
	versionFmt = `^v[1-9][0-9]*$`
)

var versionRe = regexp.MustCompile(versionFmt)

var (
	// ErrInvalidVersion is returned when the configured API version token
	// does not match versionFmt.
	ErrInvalidVersion = errors.New("links: invalid api version")
)

// API builds versioned resource URIs of the form
//
//	{host}{basePath}/{version}/{segment}[/{id}]
//
// It is configured once at start-up and cached as read-only state; all
// methods are pure functions over that state and safe for concurrent use.
//
// Changing the version or the base path is a deliberate, versioned contract
// change for every published link — it is configuration, never something
// this type adjusts on its own.
type API struct {
	// base is the precomputed, slash-terminated versioned root,
	// e.g. "https://example.com/api/v1/".
	base *url.URL
	// version is kept for introspection and tests.
	version string
}

// NewAPI validates and normalizes the link configuration and precomputes
// the versioned base URI.
//
// host must be absolute ("https://example.com"); basePath is normalized to
// a leading slash and no trailing slash ("/api"); version must match
// versionFmt. Fails with ErrInvalidHost or ErrInvalidVersion on bad input.
func NewAPI(host, basePath, version string) (*API, error) {
	h, err := NormalizeHost(host)
	if err != nil {
		return nil, err
	}
	version = strings.TrimSpace(version)
	if !versionRe.MatchString(version) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVersion, version)
	}
	prefix := normalizeBasePath(basePath)
	// Resolve against the normalized host so percent-encoding and path
	// joining follow URI semantics, then re-terminate with "/" to keep the
	// base single-segment-safe for later resolution.
	base := Resolve(h, strings.TrimPrefix(prefix, "/")+"/"+version+"/")
	return &API{base: base, version: version}, nil
}

// Version returns the configured version token, e.g. "v1".
func (a *API) Version() string { return a.version }

// Collection returns the absolute URI of a top-level collection:
//
//	Collection("users") -> {host}{basePath}/{version}/users
func (a *API) Collection(segment string) *url.URL {
	return Resolve(a.base, strings.Trim(segment, "/"))
}

// Self returns the absolute URI of a single resource inside a collection:
//
//	Self("users", "42") -> {host}{basePath}/{version}/users/42
//
// The id is inserted as exactly one path segment; characters outside the
// unreserved set are percent-encoded.
func (a *API) Self(segment, id string) *url.URL {
	u := a.Collection(segment)
	u.Path = u.Path + "/" + id
	u.RawPath = ""
	return u
}

// Path returns the absolute URI for an arbitrary, possibly nested path
// below the versioned root:
//
//	Path("users/42/orders") -> {host}{basePath}/{version}/users/42/orders
func (a *API) Path(p string) *url.URL {
	return Resolve(a.base, strings.Trim(p, "/"))
}
