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
	"encoding/json"
	"testing"
)

func sampleProblem() Problem {
	return Problem{
		Type:     "https://example.com/problems/resource-not-found",
		Title:    "Resource not found",
		Status:   404,
		Detail:   "Category 42 not found",
		Instance: "/api/v1/categories/42",
		Code:     "NOT_FOUND",
	}
}

func TestProblem_Error(t *testing.T) {
	p := sampleProblem()
	if got := p.Error(); got != "NOT_FOUND: Resource not found: Category 42 not found" {
		t.Fatalf("Error() = %q", got)
	}

	p.Detail = ""
	if got := p.Error(); got != "NOT_FOUND: Resource not found" {
		t.Fatalf("Error() without detail = %q", got)
	}
}

func TestProblem_MarshalJSON(t *testing.T) {
	p := sampleProblem().
		WithExtension("traceId", "abc-123").
		WithExtension("errors", []string{"name is required"})

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal into map: %v", err)
	}

	// Extensions live at the top level, next to the reserved members.
	if m["type"] != "https://example.com/problems/resource-not-found" {
		t.Fatalf("type = %v", m["type"])
	}
	if m["traceId"] != "abc-123" {
		t.Fatalf("extension not flattened: %v", m["traceId"])
	}
	if _, nested := m["extensions"]; nested {
		t.Fatalf("extensions must not appear as a nested member")
	}
	if m["status"] != float64(404) {
		t.Fatalf("status = %v", m["status"])
	}
}

func TestProblem_MarshalJSON_ReservedProtected(t *testing.T) {
	p := sampleProblem().WithExtensions(map[string]any{
		"status":  999,
		"type":    "https://evil.example.com",
		"traceId": "abc",
	})
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if m["status"] != float64(404) || m["type"] != "https://example.com/problems/resource-not-found" {
		t.Fatalf("reserved members overridden by extensions: status=%v type=%v", m["status"], m["type"])
	}
	if m["traceId"] != "abc" {
		t.Fatalf("non-reserved extension dropped")
	}
}

func TestProblem_MarshalJSON_Omitempty(t *testing.T) {
	p := Problem{Type: "about:blank", Title: "Internal error", Status: 500}
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	for _, member := range []string{"detail", "instance", "code"} {
		if _, present := m[member]; present {
			t.Fatalf("empty member %q must be omitted", member)
		}
	}
}

func TestProblem_UnmarshalJSON_Roundtrip(t *testing.T) {
	in := sampleProblem().WithExtension("traceId", "abc-123")
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out Problem
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.Type != in.Type || out.Title != in.Title || out.Status != in.Status ||
		out.Detail != in.Detail || out.Instance != in.Instance || out.Code != in.Code {
		t.Fatalf("reserved members did not survive the roundtrip: %+v", out)
	}
	if out.Extensions["traceId"] != "abc-123" {
		t.Fatalf("extension did not survive the roundtrip: %v", out.Extensions)
	}
	if _, reserved := out.Extensions["status"]; reserved {
		t.Fatalf("reserved member leaked into Extensions")
	}
}

func TestProblem_WithExtension_Immutable(t *testing.T) {
	base := sampleProblem().WithExtension("a", 1)
	derived := base.WithExtension("b", 2)

	if _, leaked := base.Extensions["b"]; leaked {
		t.Fatalf("WithExtension mutated the receiver's map")
	}
	if derived.Extensions["a"] != 1 || derived.Extensions["b"] != 2 {
		t.Fatalf("derived extensions incomplete: %v", derived.Extensions)
	}
}

func TestProblem_WithDetailAndInstance(t *testing.T) {
	base := sampleProblem()
	derived := base.WithDetail("other detail").WithInstance("/api/v1/categories/7")
	if base.Detail != "Category 42 not found" || base.Instance != "/api/v1/categories/42" {
		t.Fatalf("receiver mutated: %+v", base)
	}
	if derived.Detail != "other detail" || derived.Instance != "/api/v1/categories/7" {
		t.Fatalf("derived = %+v", derived)
	}
}
