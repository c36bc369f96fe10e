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
	"errors"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  resource-not-found  ", "resource-not-found"},
		{"to lower", "Resource-Not-Found", "resource-not-found"},
		{"underscore to dash", "not_found", "not-found"},
		{"mixed", "  VALIDATION_FAILED  ", "validation-failed"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Slug
	}{
		{"simple", "conflict", Slug("conflict")},
		{"dashed", "resource-not-found", Slug("resource-not-found")},
		{"dotted family", "payment.card-expired", Slug("payment.card-expired")},
		{"digits", "err404", Slug("err404")},
		{"with spaces around", "  rate-limited  ", Slug("rate-limited")},
		{"upper", "FORBIDDEN", Slug("forbidden")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"inner spaces", " Not Ok "},
		{"slash", "users/42"},
		{"unicode", "prøblem"},
		{"percent", "not%20found"},
		{"too long", strings.Repeat("a", MaxLength+1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) = %q, want error", tt.in, got)
			}
			if !errors.Is(err, ErrSlugInvalid) {
				t.Fatalf("Parse(%q) error = %v, want ErrSlugInvalid", tt.in, err)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", tt.in, got)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := []Slug{"validation-failed", "a", "payment.card-expired", "429"}
	for _, s := range valid {
		if err := Validate(s); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", s, err)
		}
	}

	invalid := []Slug{
		"",            // empty
		"Not-Found",   // uppercase
		"not_found",   // underscore
		" not-found ", // spaces
	}
	for _, s := range invalid {
		if err := Validate(s); err == nil {
			t.Fatalf("Validate(%q) expected error", s)
		}
	}
}

func TestHumanize(t *testing.T) {
	tests := []struct {
		in   Slug
		want string
	}{
		{"validation-failed", "Validation failed"},
		{"resource-not-found", "Resource not found"},
		{"payment.card-expired", "Payment card expired"},
		{"conflict", "Conflict"},
	}
	for _, tt := range tests {
		if got := tt.in.Humanize(); got != tt.want {
			t.Fatalf("Humanize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	// Humanize must be a pure function of the slug: calling it twice gives
	// the same result, with no hidden state.
	s := Slug("rate-limited")
	if s.Humanize() != s.Humanize() {
		t.Fatalf("Humanize is not deterministic")
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("NOT A SLUG ??")
}

func TestSlug_TextMarshaling(t *testing.T) {
	s := Slug("resource-not-found")
	text, err := s.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "resource-not-found" {
		t.Fatalf("MarshalText() = %q, want %q", string(text), "resource-not-found")
	}

	if _, err := Slug("Invalid Slug").MarshalText(); err == nil {
		t.Fatalf("MarshalText() on invalid slug must return error")
	}

	var u Slug
	if err := u.UnmarshalText([]byte("  RESOURCE_NOT_FOUND  ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if u != Slug("resource-not-found") {
		t.Fatalf("UnmarshalText() = %q, want %q", u, "resource-not-found")
	}
}

func TestCatalog_Closed(t *testing.T) {
	cat := Catalog()
	if len(cat) != 9 {
		t.Fatalf("Catalog() has %d slugs, want 9", len(cat))
	}
	for _, s := range cat {
		if err := Validate(s); err != nil {
			t.Fatalf("catalog slug %q is invalid: %v", s, err)
		}
	}

	// The returned slice is a copy: mutating it must not leak back.
	cat[0] = "mutated"
	if Catalog()[0] != ValidationFailed {
		t.Fatalf("Catalog() exposes shared state")
	}
}
