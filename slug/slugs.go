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

// The closed catalog of canonical problem slugs.
//
// These constants are the ONLY place where slug literals may appear; business
// code refers to problems through these names, never through inline strings.
// Adding a slug here is additive and safe. Removing or renaming one breaks
// every client that stored the "type" URI and must be flagged in review.
const (
	// ValidationFailed indicates that the request body or parameters were
	// syntactically fine but violated a semantic constraint (range, format,
	// cross-field rule).
	//
	// Typically served as HTTP 422.
	ValidationFailed Slug = "validation-failed"

	// MalformedRequest indicates that the request could not be parsed at
	// all: broken JSON, wrong content type, unreadable parameters.
	//
	// Typically served as HTTP 400.
	MalformedRequest Slug = "malformed-request"

	// ResourceNotFound indicates that the addressed entity does not exist
	// in the caller's visible scope.
	//
	// Typically served as HTTP 404.
	ResourceNotFound Slug = "resource-not-found"

	// Unauthorized indicates that the caller is not authenticated, or the
	// presented credentials could not be verified.
	//
	// Typically served as HTTP 401.
	Unauthorized Slug = "unauthorized"

	// Forbidden indicates that the caller is authenticated but lacks the
	// privilege to perform the operation.
	//
	// Typically served as HTTP 403.
	Forbidden Slug = "forbidden"

	// Conflict indicates a domain-state conflict: concurrent modification,
	// uniqueness violation, version mismatch.
	//
	// Typically served as HTTP 409.
	Conflict Slug = "conflict"

	// RateLimited indicates that the caller exceeded the allowed request
	// rate and should back off.
	//
	// Typically served as HTTP 429.
	RateLimited Slug = "rate-limited"

	// InternalError indicates an unexpected server-side failure. This is
	// also the conventional default identity when an error reaches the
	// boundary without any registered mapping.
	//
	// Typically served as HTTP 500.
	InternalError Slug = "internal-error"

	// ServiceUnavailable indicates that the service or a required
	// dependency is temporarily unable to handle the request.
	//
	// Typically served as HTTP 503.
	ServiceUnavailable Slug = "service-unavailable"
)

// Catalog returns the closed set of canonical slugs, in stable order.
//
// The returned slice is a fresh copy on every call; callers may modify it
// freely without affecting the catalog.
func Catalog() []Slug {
	return []Slug{
		ValidationFailed,
		MalformedRequest,
		ResourceNotFound,
		Unauthorized,
		Forbidden,
		Conflict,
		RateLimited,
		InternalError,
		ServiceUnavailable,
	}
}
