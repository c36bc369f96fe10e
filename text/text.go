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

package text

import (
	"fmt"

	"dirpx.dev/problem/slug"
	"golang.org/x/text/language"
)

// TitleKey returns the catalog key under which a slug's title is stored:
//
//	TitleKey("resource-not-found") == "problems.resource-not-found.title"
//
// The key scheme is part of the public contract between this package and
// whoever maintains the message catalog.
func TitleKey(s slug.Slug) string {
	return "problems." + string(s) + ".title"
}

// Titler resolves a slug and a locale to a human-readable problem title.
//
// Resolution is a two-stage lookup, composed explicitly rather than through
// exception-style control flow:
//
//  1. try the message catalog under TitleKey(slug) for the requested
//     locale (the catalog applies its own fallback chain);
//  2. on a miss, derive the title from the slug itself (Humanize).
//
// Stage 2 guarantees that the error-response pipeline can never fail
// because a translation is missing: an incomplete catalog degrades to
// readable English-ish titles, it does not break error reporting.
type Titler struct {
	catalog Catalog
}

// NewTitler wraps a message catalog. A nil catalog is allowed and produces
// a titler that always humanizes — useful for tests and minimal setups.
func NewTitler(c Catalog) *Titler {
	return &Titler{catalog: c}
}

// Title resolves the localized title for a slug.
//
// The slug is validated first, independently of the identical check in the
// links package: the two components must not rely on each other having run.
// A malformed slug is a programmer error and fails with slug.ErrSlugInvalid.
//
// A missing catalog entry is NOT an error: the humanized slug is returned
// instead, and that fallback is a pure function of the slug alone, the
// same for every locale.
func (t *Titler) Title(s slug.Slug, tag language.Tag) (string, error) {
	if err := slug.Validate(s); err != nil {
		return "", fmt.Errorf("text: title for slug %q: %w", s, err)
	}
	if t.catalog != nil {
		if v, ok := t.catalog.Lookup(TitleKey(s), tag); ok {
			return v, nil
		}
	}
	return s.Humanize(), nil
}
