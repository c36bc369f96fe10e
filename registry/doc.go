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

// Package registry provides the immutable mapping core of the problem
// pipeline: slug -> transport metadata, and error -> slug.
//
// # Overview
//
// Problems are identified by slugs (dirpx.dev/problem/slug). Transports need
// two lookups on every failed request:
//
//  1. which problem does this Go error correspond to? (SlugFor)
//  2. which HTTP status, machine code and gRPC code belong to that
//     problem? (MetaFor)
//
// Package registry answers both from a snapshot that is:
//
//   - immutable — a Registry is built once during start-up and never
//     changes, so lookups are lock-free and safe for concurrent use;
//   - overridable — options replay in order, so feature modules can replace
//     library defaults before the snapshot is frozen (last write wins);
//   - prefix-aware — dotted slug families ("payment.card-expired") can be
//     covered by a single family rule ("payment") with longest-prefix-match
//     semantics and "*" as a single-segment wildcard.
//
// # Resolution model
//
// MetaFor resolves in the following order:
//
//  1. exact registration for the slug;
//  2. longest dotted-prefix rule;
//  3. absent — there is deliberately no built-in fallback. A slug that came
//     out of SlugFor but has no metadata is a wiring defect, and hiding it
//     behind a default would mask the bug.
//
// SlugFor walks the error wrap chain outermost-first, checking self-reports
// (apis.SluggedError), type bindings, and sentinel bindings at each node.
// It too returns an explicit "absent" instead of guessing; boundaries
// conventionally fall back to slug.InternalError.
//
// # Library defaults
//
// The package ships metadata for every slug in the closed catalog
// (slug.Catalog), mapping them to standard net/http statuses, uppercase
// machine codes and canonical grpc/codes values. These can be replaced at
// build time:
//
//	reg, err := registry.New(
//	    registry.WithMeta(slug.RateLimited, apis.Meta{Status: 429, Code: "SLOW_DOWN"}),
//	    registry.WithBinding(storage.ErrNoRows, slug.ResourceNotFound),
//	    registry.WithTypeBinding(&ValidationError{}, slug.ValidationFailed),
//	)
//
// # Diagnostics
//
// For debugging and tests, Registry.Explain returns a human-readable trace
// of how a slug was resolved, including which tier matched and, for
// prefixes, which pattern was used. It is intended for inspection and
// logging, not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the
// Registry does not observe further changes to the caller's maps or slices.
// This makes it safe to share a single instance across handlers, goroutines,
// and requests.
package registry
