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
	"errors"
	"fmt"
	"reflect"
	"regexp"

	"dirpx.dev/problem/apis"
	"dirpx.dev/problem/registry/internal/slugtrie"
	"dirpx.dev/problem/slug"
	"google.golang.org/grpc/codes"
)

// machineCodeFmt validates Meta.Code: a short, stable, uppercase token,
// 2..64 characters, e.g. "NOT_FOUND", "RATE_LIMITED".
const machineCodeFmt = `^[A-Z][A-Z0-9_]{1,63}$`

var machineCodeRe = regexp.MustCompile(machineCodeFmt)

var (
	// ErrInvalidMeta is returned by New when a registration carries an
	// out-of-range HTTP status or a malformed machine code.
	ErrInvalidMeta = errors.New("registry: invalid meta")

	// ErrInvalidBinding is returned by New when an error binding is
	// unusable: a nil target, a non-comparable sentinel value, or a
	// binding pointing at a slug with no registered metadata.
	ErrInvalidBinding = errors.New("registry: invalid binding")
)

// maxUnwrapDepth bounds the wrap-chain walk in SlugFor. Well-formed error
// chains are a handful of nodes deep; the bound only protects against
// cyclic Unwrap implementations.
const maxUnwrapDepth = 32

// New constructs an immutable apis.Registry snapshot.
//
// The resulting Registry is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained instance — no shared references
// to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library metadata for the closed slug catalog
//     (unless WithoutDefaults was given).
//  2. Apply user-provided options; later registrations for the same slug,
//     sentinel, or type replace earlier ones.
//  3. Validate every slug and every Meta (status range, machine-code
//     format); fill unset gRPC codes from the HTTP status.
//  4. Compile prefix rules into a segment trie supporting
//     longest-prefix-match with '*' as a single-segment wildcard.
//  5. Verify that every binding points at resolvable metadata, then freeze
//     all maps into immutable copies.
//
// Errors returned from this function indicate wiring defects (invalid slug,
// bad status, dangling binding) and should abort start-up.
func New(opts ...Option) (apis.Registry, error) {
	b := newBuilder()

	// (1+2) Apply options. Defaults are seeded first so user registrations
	// overwrite them, not the other way around.
	for _, opt := range opts {
		opt(b)
	}
	metas := make(map[slug.Slug]apis.Meta, len(defaultMeta)+len(b.metas))
	if b.seedDefaults {
		for s, m := range defaultMeta {
			metas[s] = m
		}
	}
	for s, m := range b.metas {
		metas[s] = m
	}

	// (3) Validate and complete every exact registration.
	for s, m := range metas {
		if err := slug.Validate(s); err != nil {
			return nil, fmt.Errorf("registry: meta for invalid slug %q: %w", s, err)
		}
		mm, err := completeMeta(m, b.grpcDefault)
		if err != nil {
			return nil, fmt.Errorf("registry: meta for slug %q: %w", s, err)
		}
		metas[s] = mm
	}

	// (4) Compile family rules into the trie. Later rules with the same
	// prefix replace earlier ones (Insert overwrites).
	var trie *slugtrie.Trie[apis.Meta]
	if len(b.prefixes) > 0 {
		trie = slugtrie.New[apis.Meta]()
		for _, r := range b.prefixes {
			m, err := completeMeta(r.meta, b.grpcDefault)
			if err != nil {
				return nil, fmt.Errorf("registry: meta for prefix %q: %w", r.prefix, err)
			}
			if err := trie.Insert(r.prefix, m); err != nil {
				return nil, fmt.Errorf("registry: cannot insert prefix %q: %w", r.prefix, err)
			}
		}
	}

	// (5) Compile bindings. Order matters: a later binding for the same
	// sentinel/type replaces the earlier one, so we fold front to back.
	sentinels := make(map[error]slug.Slug, len(b.sentinels))
	for _, sb := range b.sentinels {
		if sb.target == nil {
			return nil, fmt.Errorf("%w: nil sentinel for slug %q", ErrInvalidBinding, sb.s)
		}
		if !reflect.TypeOf(sb.target).Comparable() {
			return nil, fmt.Errorf("%w: sentinel of non-comparable type %T", ErrInvalidBinding, sb.target)
		}
		sentinels[sb.target] = sb.s
	}
	types := make(map[reflect.Type]slug.Slug, len(b.types))
	for _, tb := range b.types {
		if tb.example == nil {
			return nil, fmt.Errorf("%w: nil example for slug %q", ErrInvalidBinding, tb.s)
		}
		types[reflect.TypeOf(tb.example)] = tb.s
	}

	r := &registry{
		metas:     freezeMetas(metas),
		trie:      trie,
		sentinels: freezeSentinels(sentinels),
		types:     freezeTypes(types),
	}

	// Every binding must resolve to metadata; a dangling binding would
	// otherwise only surface as a fatal inconsistency at request time.
	for _, s := range sentinels {
		if _, ok := r.MetaFor(s); !ok {
			return nil, fmt.Errorf("%w: binding points at unregistered slug %q", ErrInvalidBinding, s)
		}
	}
	for _, s := range types {
		if _, ok := r.MetaFor(s); !ok {
			return nil, fmt.Errorf("%w: binding points at unregistered slug %q", ErrInvalidBinding, s)
		}
	}

	return r, nil
}

// MustNew is the panic-on-error variant of New, for wiring code that treats
// a bad registry as a start-up failure (which it is).
func MustNew(opts ...Option) apis.Registry {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// completeMeta validates a Meta and fills its unset gRPC projection using
// the builder's derivation function.
func completeMeta(m apis.Meta, derive func(status int) codes.Code) (apis.Meta, error) {
	if m.Status < 400 || m.Status > 599 {
		return apis.Meta{}, fmt.Errorf("%w: status %d outside 4xx/5xx", ErrInvalidMeta, m.Status)
	}
	if !machineCodeRe.MatchString(m.Code) {
		return apis.Meta{}, fmt.Errorf("%w: machine code %q", ErrInvalidMeta, m.Code)
	}
	if m.GRPC == codes.OK {
		m.GRPC = derive(m.Status)
	}
	return m, nil
}

// registry is the immutable Registry implementation. Lookups touch only
// frozen maps and the immutable trie, so they are safe for concurrent use
// without locking.
type registry struct {
	// metas holds exact slug -> meta registrations.
	metas map[slug.Slug]apis.Meta

	// trie resolves metadata for dotted-slug families by longest prefix.
	// nil when no prefix rules were registered.
	trie *slugtrie.Trie[apis.Meta]

	// sentinels maps error values (by identity) to slugs.
	sentinels map[error]slug.Slug

	// types maps concrete error types to slugs.
	types map[reflect.Type]slug.Slug
}

// MetaFor resolves the metadata for a slug.
//
// Resolution order (highest to lowest):
//  1. exact registration for the slug;
//  2. longest dotted-prefix rule matching the slug;
//  3. absent.
//
// There is no ultimate fallback here: absence is a real outcome the caller
// must handle (and, for slugs produced by SlugFor, treat as fatal).
func (r *registry) MetaFor(s slug.Slug) (apis.Meta, bool) {
	if m, ok := r.metas[s]; ok {
		return m, true
	}
	if r.trie != nil {
		if m, _, ok := r.trie.Match(string(s)); ok {
			return m, true
		}
	}
	return apis.Meta{}, false
}

// SlugFor resolves an error to a problem slug.
//
// The wrap chain is walked from the outermost error inward — the Go analog
// of "most-derived class first". At each node the checks are, in order:
//
//  1. self-report: the node implements apis.SluggedError and its slug is
//     canonical (a malformed self-report is ignored, never repaired);
//  2. type binding: the node's concrete type was registered;
//  3. sentinel binding: the node is a registered sentinel value.
//
// Nodes with Unwrap() []error (errors.Join) fan out breadth-first, so a
// match closer to the surface always wins over a deeper one. When the chain
// is exhausted the result is ("", false); picking a default slug is
// deliberately left to the boundary layer.
func (r *registry) SlugFor(err error) (slug.Slug, bool) {
	queue := []error{err}
	for depth := 0; len(queue) > 0 && depth < maxUnwrapDepth; depth++ {
		var next []error
		for _, e := range queue {
			if e == nil {
				continue
			}
			if se, ok := e.(apis.SluggedError); ok {
				s := slug.Slug(se.ProblemSlug())
				if slug.Validate(s) == nil {
					return s, true
				}
			}
			if s, ok := r.types[reflect.TypeOf(e)]; ok {
				return s, true
			}
			if reflect.TypeOf(e).Comparable() {
				if s, ok := r.sentinels[e]; ok {
					return s, true
				}
			}
			switch u := e.(type) {
			case interface{ Unwrap() error }:
				next = append(next, u.Unwrap())
			case interface{ Unwrap() []error }:
				next = append(next, u.Unwrap()...)
			}
		}
		queue = next
	}
	return slug.Empty, false
}

// Explain produces a textual trace of how MetaFor resolved the given slug.
//
// This is primarily a diagnostic tool: it shows which tier matched (exact,
// prefix, or absent) and, for prefix matches, which pattern was used.
//
// Example output:
//
//	slug="payment.card-expired"
//	meta: source=prefix pattern="payment" -> 402 PAYMENT
//
// source ∈ {exact | prefix | absent}; pattern is the rule as it was stored
// in the trie (may contain "*").
func (r *registry) Explain(s slug.Slug) string {
	head := fmt.Sprintf("slug=%q\n", s)
	if m, ok := r.metas[s]; ok {
		return head + fmt.Sprintf("meta: source=exact -> %d %s", m.Status, m.Code)
	}
	if r.trie != nil {
		if m, pat, ok := r.trie.Match(string(s)); ok {
			return head + fmt.Sprintf("meta: source=prefix pattern=%q -> %d %s", pat, m.Status, m.Code)
		}
	}
	return head + "meta: source=absent"
}
