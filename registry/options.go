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

package registry

import (
	"dirpx.dev/problem/apis"
	"dirpx.dev/problem/slug"
	"google.golang.org/grpc/codes"
)

// Option configures the Registry at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Registry.
type Option func(*builder)

// WithMeta registers (or replaces) the metadata for the given slug.
//
// Registration is an idempotent upsert: the last write for a slug wins.
// This is what lets a feature module override a library default during
// start-up, strictly before the first request is served.
func WithMeta(s slug.Slug, m apis.Meta) Option {
	return func(b *builder) { b.metas[s] = m }
}

// WithMetaPrefix registers metadata for a whole family of dotted slugs.
//
// The prefix is evaluated against the slug's dot-separated segments; a more
// specific prefix wins, and an exact WithMeta registration always wins over
// any prefix. Use "*" to match a single segment:
//
//	WithMetaPrefix("payment", apis.Meta{Status: 402, Code: "PAYMENT"})
//	WithMetaPrefix("payment.*.retryable", apis.Meta{Status: 503, Code: "RETRY"})
func WithMetaPrefix(prefix string, m apis.Meta) Option {
	return func(b *builder) { b.prefixes = append(b.prefixes, prefixRule{prefix, m}) }
}

// WithBinding binds a sentinel error value to a slug.
//
// The binding matches by identity: resolution finds the sentinel anywhere in
// an error's wrap chain (fmt.Errorf("...: %w", ErrX), errors.Join, custom
// Unwrap). A later binding for the same sentinel replaces the earlier one.
func WithBinding(target error, s slug.Slug) Option {
	return func(b *builder) { b.sentinels = append(b.sentinels, sentinelBinding{target, s}) }
}

// WithTypeBinding binds the dynamic type of the example error to a slug.
//
// Any error whose concrete type equals the example's type resolves to the
// slug, regardless of the value's fields. This is the Go rendition of
// "register this exception class": pass a zero value of your error type,
// e.g. WithTypeBinding(&NotFoundError{}, slug.ResourceNotFound).
// A later binding for the same type replaces the earlier one.
func WithTypeBinding(example error, s slug.Slug) Option {
	return func(b *builder) { b.types = append(b.types, typeBinding{example, s}) }
}

// WithGRPCDefault replaces the derivation of Meta.GRPC for registrations
// that leave it unset (zero value). The library default maps by HTTP status
// (404 -> NotFound, 429 -> ResourceExhausted, ...); a service with different
// gRPC conventions swaps the whole table here instead of setting GRPC on
// every registration. A nil fn is ignored.
func WithGRPCDefault(fn func(status int) codes.Code) Option {
	return func(b *builder) {
		if fn != nil {
			b.grpcDefault = fn
		}
	}
}

// WithoutDefaults suppresses the library metadata for the closed slug
// catalog, producing a registry that contains only explicit registrations.
// Mostly useful in tests that assert on "absent" outcomes.
func WithoutDefaults() Option {
	return func(b *builder) { b.seedDefaults = false }
}
