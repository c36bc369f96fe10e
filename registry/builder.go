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

type prefixRule struct {
	// prefix is the raw, dot-separated slug prefix (may contain "*").
	// It is validated when we build the trie in New().
	prefix string
	// meta is the metadata to apply when this prefix matches.
	meta apis.Meta
}

type sentinelBinding struct {
	// target is the sentinel error value the binding matches by identity.
	target error
	// s is the slug resolved when the target is found in a wrap chain.
	s slug.Slug
}

type typeBinding struct {
	// example is a value of the error type the binding matches dynamically.
	// The concrete type is extracted in New(); keeping the value here keeps
	// the builder free of reflect.
	example error
	// s is the slug resolved when an error of that type is found.
	s slug.Slug
}

type builder struct {
	// seedDefaults controls whether New() pre-loads the library metadata
	// for the closed slug catalog before applying user options.
	seedDefaults bool

	// metas holds slug -> meta registrations. Later options overwrite
	// earlier ones (last write wins), which is what allows feature modules
	// to override library defaults during start-up.
	metas map[slug.Slug]apis.Meta

	// prefixes holds family rules for dotted slugs, compiled into a
	// segment trie in New(). Declaration order is irrelevant: the deepest
	// matching prefix wins at lookup time.
	prefixes []prefixRule

	// sentinels holds error-value bindings, applied in order so that a
	// later binding for the same target replaces the earlier one.
	sentinels []sentinelBinding

	// types holds error-type bindings, same replacement semantics.
	types []typeBinding

	// grpcDefault derives Meta.GRPC for registrations that leave it unset.
	grpcDefault func(status int) codes.Code
}

// newBuilder creates a builder with maps pre-sized to hold the library
// defaults plus a few user registrations.
func newBuilder() *builder {
	return &builder{
		seedDefaults: true,
		metas:        make(map[slug.Slug]apis.Meta, len(defaultMeta)+8),
		grpcDefault:  grpcForStatus,
	}
}
