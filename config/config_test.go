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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"dirpx.dev/problem/links"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte("host: https://example.com\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Host != "https://example.com" {
		t.Fatalf("Host = %q", cfg.Host)
	}
	// Unset fields keep their defaults.
	if cfg.APIBasePath != "/api" || cfg.APIVersion != "v1" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestParse_Overrides(t *testing.T) {
	data := []byte(`
host: https://api.example.com
api_base_path: /backend/api
api_version: v2
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.APIBasePath != "/backend/api" || cfg.APIVersion != "v2" {
		t.Fatalf("file values not applied: %+v", cfg)
	}

	a, err := cfg.API()
	if err != nil {
		t.Fatalf("API(): %v", err)
	}
	if got := a.Collection("users").String(); got != "https://api.example.com/backend/api/v2/users" {
		t.Fatalf("Collection(users) = %q", got)
	}
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv("PROBLEM_HOST", "https://staging.example.com")
	t.Setenv("PROBLEM_API_VERSION", "v3")

	cfg, err := Parse([]byte("host: https://example.com\napi_version: v1\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Host != "https://staging.example.com" || cfg.APIVersion != "v3" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestParse_InvalidHost(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing host", "api_version: v1\n"},
		{"no scheme", "host: example.com\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); !errors.Is(err, links.ErrInvalidHost) {
				t.Fatalf("Parse error = %v, want ErrInvalidHost", err)
			}
		})
	}
}

func TestParse_InvalidVersion(t *testing.T) {
	_, err := Parse([]byte("host: https://example.com\napi_version: \"2\"\n"))
	if !errors.Is(err, links.ErrInvalidVersion) {
		t.Fatalf("Parse error = %v, want ErrInvalidVersion", err)
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse([]byte("host: [not, a, scalar]")); err == nil {
		t.Fatalf("Parse with malformed YAML must fail")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problem.yaml")
	if err := os.WriteFile(path, []byte("host: https://example.com\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	p, err := cfg.Problems()
	if err != nil {
		t.Fatalf("Problems(): %v", err)
	}
	if p.Base().String() != "https://example.com/problems/" {
		t.Fatalf("Base() = %q", p.Base().String())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("Load of a missing file must fail")
	}
}
