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
	"strings"
)

var (
	// ErrInvalidHost is returned when the configured application host is
	// unusable as a base URI: it cannot be parsed, or it lacks a scheme or
	// a host component. This is a configuration error and should abort
	// start-up, not be caught and ignored.
	ErrInvalidHost = errors.New("links: invalid host")
)

// NormalizeHost parses the configured application host and normalizes it
// into a base URI suitable for reference resolution: absolute (scheme and
// host present) and with a path that ends in "/".
//
// The trailing slash is not cosmetic — RFC 3986 reference resolution drops
// the last path segment of the base, so "https://example.com/api" + "v1"
// would yield ".../v1" while "https://example.com/api/" + "v1" yields
// ".../api/v1". Normalizing once here keeps every later Resolve call
// single-segment-safe.
func NormalizeHost(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidHost, raw, err)
	}
	if u.Scheme == "" {
		return nil, fmt.Errorf("%w: %q: missing scheme", ErrInvalidHost, raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: %q: missing host", ErrInvalidHost, raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	// A base URI carries no query or fragment; anything configured there
	// would leak into every resolved link.
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

// Resolve appends a relative segment to an already-normalized base using
// standard URI reference resolution, never string concatenation. The
// segment is percent-encoded where needed, so callers can pass raw path
// text. The base URL is not modified; a new URL is returned.
func Resolve(base *url.URL, segment string) *url.URL {
	ref := &url.URL{Path: strings.TrimPrefix(segment, "/")}
	return base.ResolveReference(ref)
}

// normalizeBasePath brings an API base path into canonical form: leading
// slash, no trailing slash. An empty or "/" input becomes "".
func normalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}
