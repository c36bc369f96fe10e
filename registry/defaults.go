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

package registry

import (
	"net/http"

	"dirpx.dev/problem/apis"
	"dirpx.dev/problem/slug"
	"google.golang.org/grpc/codes"
)

// defaultMeta defines the library's built-in metadata for the closed slug
// catalog. These are only defaults: feature modules are expected to override
// them via WithMeta where their policy differs.
//
// The HTTP statuses follow common REST conventions; the machine codes are
// short, stable, uppercase tokens distinct from the slugs themselves; the
// gRPC codes align with the canonical status mapping.
var defaultMeta = map[slug.Slug]apis.Meta{
	// 4xx — client / input / resource issues.
	slug.ValidationFailed: {Status: http.StatusUnprocessableEntity, Code: "VALIDATION_FAILED", GRPC: codes.InvalidArgument},
	slug.MalformedRequest: {Status: http.StatusBadRequest, Code: "MALFORMED_REQUEST", GRPC: codes.InvalidArgument},
	slug.ResourceNotFound: {Status: http.StatusNotFound, Code: "NOT_FOUND", GRPC: codes.NotFound},
	slug.Unauthorized:     {Status: http.StatusUnauthorized, Code: "UNAUTHORIZED", GRPC: codes.Unauthenticated},
	slug.Forbidden:        {Status: http.StatusForbidden, Code: "FORBIDDEN", GRPC: codes.PermissionDenied},
	slug.Conflict:         {Status: http.StatusConflict, Code: "CONFLICT", GRPC: codes.Aborted},
	slug.RateLimited:      {Status: http.StatusTooManyRequests, Code: "RATE_LIMITED", GRPC: codes.ResourceExhausted},

	// 5xx — server / dependency issues.
	slug.InternalError:      {Status: http.StatusInternalServerError, Code: "INTERNAL", GRPC: codes.Internal},
	slug.ServiceUnavailable: {Status: http.StatusServiceUnavailable, Code: "UNAVAILABLE", GRPC: codes.Unavailable},
}

// grpcForStatus derives a gRPC code from an HTTP status for registrations
// that left Meta.GRPC unset. The table covers the statuses this library
// actually maps; anything else falls back per status class.
func grpcForStatus(status int) codes.Code {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return codes.InvalidArgument
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	case http.StatusForbidden:
		return codes.PermissionDenied
	case http.StatusNotFound, http.StatusGone:
		return codes.NotFound
	case http.StatusConflict:
		return codes.Aborted
	case http.StatusPreconditionFailed:
		return codes.FailedPrecondition
	case http.StatusTooManyRequests:
		return codes.ResourceExhausted
	case http.StatusNotImplemented:
		return codes.Unimplemented
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return codes.Unavailable
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return codes.DeadlineExceeded
	}
	if status >= 400 && status < 500 {
		return codes.FailedPrecondition
	}
	return codes.Internal
}
