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
	"testing"

	"dirpx.dev/problem/slug"
)

func TestProblems_Type(t *testing.T) {
	p, err := NewProblems("https://example.com")
	if err != nil {
		t.Fatalf("NewProblems: %v", err)
	}

	u, err := p.Type(slug.ResourceNotFound)
	if err != nil {
		t.Fatalf("Type(resource-not-found) unexpected error: %v", err)
	}
	if u.String() != "https://example.com/problems/resource-not-found" {
		t.Fatalf("Type(resource-not-found) = %q", u.String())
	}

	if p.Base().String() != "https://example.com/problems/" {
		t.Fatalf("Base() = %q", p.Base().String())
	}
}

// Problem type URIs must not depend on API versioning: the same host
// produces the same type URI no matter which API version resource links
// use.
func TestProblems_VersionIndependent(t *testing.T) {
	p, err := NewProblems("https://example.com")
	if err != nil {
		t.Fatalf("NewProblems: %v", err)
	}
	u, err := p.Type(slug.Conflict)
	if err != nil {
		t.Fatalf("Type: %v", err)
	}
	for _, version := range []string{"v1", "v2", "v99"} {
		a := mustAPI(t, "https://example.com", "/api", version)
		if a.Collection("users").String() == u.String() {
			t.Fatalf("api and problem namespaces overlap for %s", version)
		}
		if u.String() != "https://example.com/problems/conflict" {
			t.Fatalf("type URI changed: %q", u.String())
		}
	}
}

func TestProblems_Type_InvalidSlug(t *testing.T) {
	p, err := NewProblems("https://example.com")
	if err != nil {
		t.Fatalf("NewProblems: %v", err)
	}

	for _, s := range []slug.Slug{"", " Not Ok ", "Upper-Case", "has_underscore"} {
		if _, err := p.Type(s); !errors.Is(err, slug.ErrSlugInvalid) {
			t.Fatalf("Type(%q) error = %v, want ErrSlugInvalid", s, err)
		}
	}
}

func TestNewProblems_InvalidHost(t *testing.T) {
	if _, err := NewProblems("not a url at all ://"); !errors.Is(err, ErrInvalidHost) {
		t.Fatalf("NewProblems error = %v, want ErrInvalidHost", err)
	}
}
