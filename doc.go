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

// Package problem assembles RFC 7807 problem documents from three
// independently evolvable layers:
//
//   - identity: stable slugs (dirpx.dev/problem/slug) that become the
//     problem "type" URI and never change once published;
//   - machine metadata: HTTP status, machine code and gRPC projection
//     bound to each slug (dirpx.dev/problem/registry);
//   - presentation: localized titles that may be reworded at any time
//     (dirpx.dev/problem/text).
//
// The flow at a boundary is: error -> slug (Registry.SlugFor, with a
// default of slug.InternalError on absence) -> Factory.Build -> serialized
// Problem. The dirpx.dev/problem/httpx and dirpx.dev/problem/grpcx packages
// provide ready-made adapters for both transports, and
// dirpx.dev/problem/links additionally builds versioned resource URIs and
// pagination navigation sets for collection endpoints.
//
// Everything in this module is configured once at start-up and immutable
// afterwards; all lookup and build operations are pure and safe for
// concurrent use.
package problem
