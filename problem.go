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
	"fmt"
)

// Problem is the RFC 7807 document served for one failed request.
//
// It carries:
//   - Type: the stable problem identity URI ({host}/problems/{slug});
//   - Title: the localized, human-readable summary of the problem class;
//   - Status: the HTTP status the response is served with;
//   - Detail: free-form text about this occurrence (request-specific);
//   - Instance: URI of this occurrence, typically the request path;
//   - Code: the machine code clients branch on;
//   - Extensions: additional members flattened into the JSON document.
//
// A Problem is composed once per failed request by a Factory, never
// persisted and never cached across requests: Detail and Instance are
// occurrence-specific by definition.
//
// All mutation helpers (WithX) return a copy, so Problem values can be
// safely shared and modified in a functional style.
type Problem struct {
	// Type is the absolute problem type URI. Stable across API versions.
	Type string `json:"type"`

	// Title is the localized summary. Presentation only: clients must
	// branch on Type or Code, never on Title.
	Title string `json:"title"`

	// Status is the HTTP status code of the response carrying this body.
	Status int `json:"status"`

	// Detail is the occurrence-specific explanation. This is the only
	// member where free-form (potentially sensitive) text appears; the
	// caller is responsible for sanitizing it before Build.
	Detail string `json:"detail,omitempty"`

	// Instance identifies this occurrence, usually the request path.
	Instance string `json:"instance,omitempty"`

	// Code is the short, stable, uppercase machine code, e.g. "NOT_FOUND".
	Code string `json:"code,omitempty"`

	// Extensions holds additional members. They are flattened into the
	// top-level JSON object on marshal; keys colliding with reserved
	// members are dropped. The map is treated as immutable: WithExtension
	// always copies it.
	Extensions map[string]any `json:"-"`
}

// reservedMembers are the JSON member names owned by Problem itself.
// Extension keys that collide with them are dropped during marshaling, so
// an extension can never overwrite, say, the status of the document.
var reservedMembers = map[string]bool{
	"type":     true,
	"title":    true,
	"status":   true,
	"detail":   true,
	"instance": true,
	"code":     true,
}

// Error implements the built-in error interface, which lets a fully built
// Problem travel through error-returning call chains (gRPC interceptors,
// middleware) without a wrapper type.
//
// The format is:
//
//	<code>: <title>
//
// or, when Detail is present:
//
//	<code>: <title>: <detail>
func (p Problem) Error() string {
	if p.Detail != "" {
		return fmt.Sprintf("%s: %s: %s", p.Code, p.Title, p.Detail)
	}
	return fmt.Sprintf("%s: %s", p.Code, p.Title)
}

// WithDetail returns a copy of p with a replaced detail text.
func (p Problem) WithDetail(detail string) Problem {
	p.Detail = detail
	return p
}

// WithInstance returns a copy of p with a replaced instance URI.
func (p Problem) WithInstance(instance string) Problem {
	p.Instance = instance
	return p
}

// WithExtension returns a copy of p with one extra extension member.
//
// The method always copies the map to preserve immutability. This prevents
// surprising modifications across goroutines or shared problem values.
func (p Problem) WithExtension(k string, v any) Problem {
	m := make(map[string]any, len(p.Extensions)+1)
	for k0, v0 := range p.Extensions {
		m[k0] = v0
	}
	m[k] = v
	p.Extensions = m
	return p
}

// WithExtensions returns a copy of p with all provided members merged into
// Extensions, kv taking precedence on key conflicts.
func (p Problem) WithExtensions(kv map[string]any) Problem {
	if len(kv) == 0 {
		return p
	}
	m := make(map[string]any, len(p.Extensions)+len(kv))
	for k0, v0 := range p.Extensions {
		m[k0] = v0
	}
	for k, v := range kv {
		m[k] = v
	}
	p.Extensions = m
	return p
}

// MarshalJSON flattens Extensions into the top-level object, as RFC 7807
// requires: extension members are siblings of type/title/status, not a
// nested bag. Reserved member names are never overridden by an extension.
func (p Problem) MarshalJSON() ([]byte, error) {
	type plain Problem // drop methods to avoid recursion
	base, err := json.Marshal(plain(p))
	if err != nil {
		return nil, err
	}
	if len(p.Extensions) == 0 {
		return base, nil
	}
	var m map[string]any
	if err := json.Unmarshal(base, &m); err != nil {
		return nil, err
	}
	for k, v := range p.Extensions {
		if reservedMembers[k] {
			continue
		}
		m[k] = v
	}
	return json.Marshal(m)
}

// UnmarshalJSON is the inverse of MarshalJSON: known members land in their
// fields, everything else is collected into Extensions. Clients use this to
// read problem documents off the wire.
func (p *Problem) UnmarshalJSON(data []byte) error {
	type plain Problem
	var base plain
	if err := json.Unmarshal(data, &base); err != nil {
		return err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*p = Problem(base)
	for k := range m {
		if reservedMembers[k] {
			continue
		}
		if p.Extensions == nil {
			p.Extensions = make(map[string]any)
		}
		p.Extensions[k] = m[k]
	}
	return nil
}
