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

package slug

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
	"unicode"
)

// Slug is the canonical, validated identity of a problem category.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw user input with published identities.
//
// A slug is the stable half of a problem's public contract: it becomes the
// last path segment of the problem "type" URI and the lookup key for titles.
// Once a slug has been published, its string value MUST never change —
// renaming is a breaking change for every client that branches on the URI.
//
// IMPORTANT: Empty slugs ("") are NOT allowed. Every problem MUST have a
// non-empty slug.
type Slug string

// MinLength and MaxLength define the allowed length range for a canonical
// problem slug.
//
// We keep these values as separate constants so they can be referenced in
// validation errors, tests, or in other packages that want to mirror the same
// constraints.
const (
	// MinLength is the minimum length for a valid slug.
	// A single character is enough to be a legal URI path segment, and the
	// closed catalog is what keeps slugs descriptive in practice.
	MinLength = 1

	// MaxLength is the maximum length for a valid slug.
	// 64 characters is enough for descriptive identities like
	// "resource-not-found" while still preventing unbounded strings.
	MaxLength = 64
)

const (
	// slugFmt is the canonical regular expression used to validate slugs.
	//
	// The pattern is intentionally kept in a separate constant so that:
	//   - it can be referenced from tests;
	//   - it is obvious that the regexp below is derived from this exact pattern.
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[a-z0-9.\-]+ - lowercase ASCII letters, digits, dot or dash;
	//	$ - end of string;
	//
	// The character set is deliberately narrow: a slug is used verbatim as a
	// URI path segment and must never require percent-encoding. Widening the
	// set (uppercase, underscore, unicode) is a contract change, not a
	// convenience tweak.
	slugFmt = `^[a-z0-9.\-]+$`
)

var (
	// slugRe is the compiled regular expression used at runtime to validate
	// that a string is a canonical problem slug.
	//
	// We precompile it so that repeated validations (link building happens on
	// every failed request) do not pay the compilation cost over and over.
	//
	// Examples of valid slugs:
	//   - "resource-not-found"
	//   - "validation-failed"
	//   - "payment.card-expired"
	//
	// Examples of invalid slugs:
	//   - "Not-Found"   (uppercase)
	//   - "not_found"   (underscore)
	//   - " not ok "    (spaces)
	//   - ""            (empty)
	slugRe = regexp.MustCompile(slugFmt)
)

var (
	// ErrSlugInvalid is returned when a value cannot be parsed or validated
	// as a problem slug.
	//
	// Having a dedicated sentinel error makes it easy for callers and tests
	// to detect "this is about slug format" vs "this is some other error".
	ErrSlugInvalid = errors.New("problem: invalid slug")
)

// Ensure Slug implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Slug)(nil)
	_ encoding.TextUnmarshaler = (*Slug)(nil)
)

// Empty is the zero-value slug. It is never valid: every operation that takes
// a Slug rejects it. It exists only as a convenient "absent" return value.
var Empty Slug = ""

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Slug value.
func Parse(s string) (Slug, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Slug(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level slug constants in var blocks.
func MustParse(s string) Slug {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical slug form.
//
// This function is intentionally conservative: it only performs obvious,
// non-lossy transformations:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - replaces '_' with '-';
//
// It does NOT guarantee that the result is valid — callers should still call
// Validate/Parse after normalization.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", "-")
	return s
}

// Validate checks whether the provided Slug is valid.
// The empty slug ("") is considered invalid.
func Validate(s Slug) error {
	return validate(string(s))
}

// String returns the canonical string representation of the slug.
func (s Slug) String() string {
	return string(s)
}

// Humanize derives a human-readable fallback title from the slug: separator
// characters ('-' and '.') become spaces and the first character is
// upper-cased.
//
// The result is a pure function of the slug alone — no locale, no catalog —
// which is exactly what makes it safe as the last-resort title when a
// translation is missing:
//
//	Slug("validation-failed").Humanize() == "Validation failed"
func (s Slug) Humanize() string {
	t := strings.ReplaceAll(string(s), "-", " ")
	t = strings.ReplaceAll(t, ".", " ")
	if t == "" {
		return t
	}
	r := []rune(t)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical string representation.
func (s Slug) MarshalText() ([]byte, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (s *Slug) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// validate is a helper that checks whether the provided string is a valid slug.
func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrSlugInvalid
	}
	if !slugRe.MatchString(s) {
		return ErrSlugInvalid
	}
	return nil
}
