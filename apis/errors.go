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

package apis

// SluggedError represents an error that carries its own problem identity.
//
// This is the most direct way for domain code to participate in problem
// resolution: an error type that implements SluggedError short-circuits the
// registry's binding tables — the self-reported slug wins over any
// type or sentinel binding at the same position in the wrap chain.
//
// Implementations MUST return a value that is valid under the slug package's
// rules and that has metadata registered for it. Returning an unregistered
// slug is a wiring defect that surfaces as a fatal inconsistency at the
// boundary, so self-reporting is best reserved for slugs from the closed
// catalog or for feature slugs registered right next to the error type.
type SluggedError interface {
	error

	// ProblemSlug returns the problem slug for this error.
	//
	// The returned value MUST be non-empty and already canonical. Callers
	// should not try to "fix" or normalize the value here — if it is
	// invalid, it is handled as an internal error at the boundary.
	ProblemSlug() string
}

// ExtendedError represents an error that contributes extension members to
// the problem document built for it.
//
// While SluggedError decides *which* problem is reported, ExtendedError
// decides what extra structured data travels with it: the field that failed
// validation, the limit that was exceeded, the conflicting resource version.
//
// Implementations SHOULD return a map that is safe for the caller to read
// and that will not be mutated afterwards. Returning nil is allowed and
// simply means "no extra members". Keys must not collide with the reserved
// problem members (type, title, status, detail, instance, code); colliding
// keys are dropped by the document builder.
type ExtendedError interface {
	error

	// ProblemExtensions returns extension members for the problem document.
	// May return nil.
	ProblemExtensions() map[string]any
}
