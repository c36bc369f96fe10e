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
)

func mustAPI(t *testing.T, host, basePath, version string) *API {
	t.Helper()
	a, err := NewAPI(host, basePath, version)
	if err != nil {
		t.Fatalf("NewAPI(%q, %q, %q): %v", host, basePath, version, err)
	}
	return a
}

func TestAPI_Collection(t *testing.T) {
	a := mustAPI(t, "https://example.com", "/api", "v1")

	tests := []struct {
		name    string
		segment string
		want    string
	}{
		{"plain", "users", "https://example.com/api/v1/users"},
		{"surrounding slashes", "/users/", "https://example.com/api/v1/users"},
		{"dashed", "order-items", "https://example.com/api/v1/order-items"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Collection(tt.segment)
			if got.String() != tt.want {
				t.Fatalf("Collection(%q) = %q, want %q", tt.segment, got.String(), tt.want)
			}
		})
	}
}

func TestAPI_Self(t *testing.T) {
	a := mustAPI(t, "https://example.com", "/api", "v1")
	got := a.Self("users", "42")
	if got.String() != "https://example.com/api/v1/users/42" {
		t.Fatalf("Self(users, 42) = %q", got.String())
	}

	// An id needing escaping stays one path segment.
	got = a.Self("files", "a b")
	if got.String() != "https://example.com/api/v1/files/a%20b" {
		t.Fatalf("Self(files, a b) = %q", got.String())
	}
}

func TestAPI_Path(t *testing.T) {
	a := mustAPI(t, "https://example.com", "/api", "v1")
	got := a.Path("users/42/orders")
	if got.String() != "https://example.com/api/v1/users/42/orders" {
		t.Fatalf("Path(users/42/orders) = %q", got.String())
	}
}

func TestAPI_BasePathVariants(t *testing.T) {
	tests := []struct {
		name     string
		basePath string
		want     string
	}{
		{"canonical", "/api", "https://example.com/api/v2/users"},
		{"no leading slash", "api", "https://example.com/api/v2/users"},
		{"trailing slash", "/api/", "https://example.com/api/v2/users"},
		{"empty", "", "https://example.com/v2/users"},
		{"nested", "/backend/api", "https://example.com/backend/api/v2/users"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustAPI(t, "https://example.com", tt.basePath, "v2")
			if got := a.Collection("users"); got.String() != tt.want {
				t.Fatalf("Collection(users) = %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestNewAPI_Invalid(t *testing.T) {
	if _, err := NewAPI("example.com", "/api", "v1"); !errors.Is(err, ErrInvalidHost) {
		t.Fatalf("NewAPI without scheme: error = %v, want ErrInvalidHost", err)
	}

	for _, v := range []string{"", "1", "v0", "V1", "v1.2", "version1"} {
		if _, err := NewAPI("https://example.com", "/api", v); !errors.Is(err, ErrInvalidVersion) {
			t.Fatalf("NewAPI version %q: error = %v, want ErrInvalidVersion", v, err)
		}
	}
}
