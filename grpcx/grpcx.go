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

// Package grpcx projects problem documents onto gRPC: a unary server
// interceptor that maps resolvable errors to gRPC statuses carrying the
// full problem document as a status detail, and the matching client-side
// extractor.
package grpcx

import (
	"context"
	"encoding/json"

	"golang.org/x/text/language"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/problem"
	"dirpx.dev/problem/apis"
	"dirpx.dev/problem/slug"
)

// LocaleFn extracts the response locale from the request context, typically
// from an accept-language request header recorded in metadata. It may
// return language.Und when nothing is available.
type LocaleFn func(ctx context.Context) language.Tag

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// errors with a registered problem identity into gRPC statuses.
//
// Behavior per handler error:
//
//   - Registry.SlugFor resolves the error to a slug; errors with no
//     binding anywhere in their wrap chain are returned unchanged, so the
//     interceptor never hijacks statuses produced elsewhere.
//   - The registry metadata supplies the gRPC code; the factory builds the
//     full problem document, which is attached as a structpb.Struct status
//     detail so HTTP gateways and clients see the identical document.
//
// The optional localeFn supplies the title locale; nil means language.Und
// (catalog fallback chain decides).
func UnaryServerInterceptor(f *problem.Factory, reg apis.Registry, localeFn LocaleFn) grpc.UnaryServerInterceptor {
	if localeFn == nil {
		localeFn = func(context.Context) language.Tag { return language.Und }
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		s, ok := reg.SlugFor(err)
		if !ok {
			// Not ours, return as-is.
			return nil, err
		}

		meta, ok := reg.MetaFor(s)
		if !ok {
			// Binding without metadata: registry construction prevents
			// this, but a foreign Registry implementation might not.
			return nil, err
		}

		p, buildErr := f.Build(s, err.Error(), localeFn(ctx), "")
		if buildErr != nil {
			return nil, err
		}

		base := gstatus.New(meta.GRPC, p.Title)

		// Attach the document as a detail when possible; the bare status
		// still carries the right code and title otherwise.
		if detail, derr := problemStruct(p); derr == nil {
			if with, werr := base.WithDetails(detail); werr == nil {
				return nil, with.Err()
			}
		}
		return nil, base.Err()
	}
}

// ExtractProblem pulls the problem document out of a gRPC error, if one was
// attached by the interceptor. Useful in tests and client code.
func ExtractProblem(err error) (problem.Problem, bool) {
	if err == nil {
		return problem.Problem{}, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return problem.Problem{}, false
	}
	for _, d := range st.Details() {
		s, ok := d.(*structpb.Struct)
		if !ok {
			continue
		}
		p, perr := problemFromStruct(s)
		if perr != nil {
			continue
		}
		return p, true
	}
	return problem.Problem{}, false
}

// problemStruct converts a Problem into a structpb.Struct via its JSON
// form, so the detail carries exactly the wire document (extensions
// flattened, reserved members protected).
func problemStruct(p problem.Problem) (*structpb.Struct, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return structpb.NewStruct(m)
}

// problemFromStruct is the inverse of problemStruct.
func problemFromStruct(s *structpb.Struct) (problem.Problem, error) {
	raw, err := json.Marshal(s.AsMap())
	if err != nil {
		return problem.Problem{}, err
	}
	var p problem.Problem
	if err := json.Unmarshal(raw, &p); err != nil {
		return problem.Problem{}, err
	}
	return p, nil
}

// DefaultSlugInterceptor wraps UnaryServerInterceptor with a catch-all
// identity: errors the registry cannot resolve are reported as the given
// slug (conventionally slug.InternalError) instead of passing through.
// Use this on servers where every error should leave as a problem.
func DefaultSlugInterceptor(f *problem.Factory, reg apis.Registry, fallback slug.Slug, localeFn LocaleFn) grpc.UnaryServerInterceptor {
	inner := UnaryServerInterceptor(f, &fallbackRegistry{Registry: reg, fallback: fallback}, localeFn)
	return inner
}

// fallbackRegistry decorates a Registry so SlugFor never reports absence.
// MetaFor and Explain are delegated unchanged.
type fallbackRegistry struct {
	apis.Registry
	fallback slug.Slug
}

func (r *fallbackRegistry) SlugFor(err error) (slug.Slug, bool) {
	if s, ok := r.Registry.SlugFor(err); ok {
		return s, true
	}
	return r.fallback, true
}
