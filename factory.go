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

package problem

import (
	"errors"
	"fmt"

	"dirpx.dev/problem/apis"
	"dirpx.dev/problem/links"
	"dirpx.dev/problem/slug"
	"dirpx.dev/problem/text"
	"golang.org/x/text/language"
)

var (
	// ErrUnknownSlug is returned by Build when the registry has no
	// metadata for the requested slug. For slugs that came out of
	// Registry.SlugFor this means a binding points at an unregistered
	// identity, a wiring defect the caller must treat as fatal, not a
	// user-facing condition.
	ErrUnknownSlug = errors.New("problem: no meta registered for slug")

	// ErrNilDependency is returned by NewFactory when a required
	// collaborator is missing.
	ErrNilDependency = errors.New("problem: nil factory dependency")
)

// Factory is the single seam where the three registries combine: metadata
// (registry), type URIs (links) and titles (text). Boundary layers call
// Build for response construction and never touch the collaborators
// directly; the only other call they make is Registry.SlugFor to translate
// an error into an identity first.
//
// A Factory is stateless apart from its immutable collaborators: Build is
// pure and safe for concurrent use from any number of request handlers.
type Factory struct {
	reg    apis.Registry
	types  *links.Problems
	titles *text.Titler
}

// NewFactory wires a factory from its three collaborators.
func NewFactory(reg apis.Registry, types *links.Problems, titles *text.Titler) (*Factory, error) {
	if reg == nil {
		return nil, fmt.Errorf("%w: registry", ErrNilDependency)
	}
	if types == nil {
		return nil, fmt.Errorf("%w: problem links", ErrNilDependency)
	}
	if titles == nil {
		return nil, fmt.Errorf("%w: titler", ErrNilDependency)
	}
	return &Factory{reg: reg, types: types, titles: titles}, nil
}

// Build assembles the Problem document for one failed request.
//
// Steps, in order:
//
//  1. resolve the metadata for the slug; absent metadata fails fast with
//     ErrUnknownSlug (fatal tier, see above);
//  2. resolve the stable type URI (validates the slug);
//  3. resolve the localized title (falls back to humanization, never
//     fails on a missing translation);
//  4. assemble and apply the options.
//
// detail must already be sanitized by the caller: Build copies it into the
// document verbatim. instance is the URI of this occurrence, typically the
// request path; it may be empty and filled in later via WithInstance.
func (f *Factory) Build(s slug.Slug, detail string, tag language.Tag, instance string, opts ...Option) (Problem, error) {
	meta, ok := f.reg.MetaFor(s)
	if !ok {
		return Problem{}, fmt.Errorf("%w: %q", ErrUnknownSlug, s)
	}
	typeURI, err := f.types.Type(s)
	if err != nil {
		return Problem{}, err
	}
	title, err := f.titles.Title(s, tag)
	if err != nil {
		return Problem{}, err
	}

	p := Problem{
		Type:     typeURI.String(),
		Title:    title,
		Status:   meta.Status,
		Detail:   detail,
		Instance: instance,
		Code:     meta.Code,
	}
	for _, opt := range opts {
		p = opt(p)
	}
	return p, nil
}
