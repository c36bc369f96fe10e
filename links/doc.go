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

// Package links builds the absolute URIs the problem pipeline publishes:
// versioned API resource links, stable problem "type" links, and paginated
// collection navigation sets.
//
// The package has two URI namespaces with deliberately different stability
// contracts:
//
//   - API links ({host}{basePath}/{version}/...) are version-qualified.
//     Bumping the version changes every resource URI — a visible, versioned
//     contract change.
//   - Problem type links ({host}/problems/{slug}) are NOT version-qualified.
//     A problem's identity survives API version bumps, so clients may cache
//     and compare type URIs across versions.
//
// All builders are configured once at start-up (NewAPI, NewProblems,
// NewPagination), normalize their configuration eagerly, and are pure and
// concurrency-safe afterwards. Composition always goes through RFC 3986
// reference resolution (Resolve), never string concatenation, so joining a
// slash-terminated base with a relative segment cannot double or drop
// slashes.
package links
