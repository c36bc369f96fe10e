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

// Package slug defines the stable string identity of problem categories.
//
// A slug is the machine identity that ties the whole problem pipeline
// together: the registry binds transport metadata to it, the links package
// turns it into the problem "type" URI, and the text package turns it into a
// localized title. Because a slug ends up verbatim inside published URIs, the
// allowed alphabet is restricted to [a-z0-9.-] and a published slug must
// never be renamed.
//
// The package ships the closed catalog of canonical slugs (see Catalog) and
// the validation/normalization helpers used by every other package. Feature
// modules may define additional slugs, but they should declare them as
// constants near their registry wiring — never as inline literals at the
// point of use.
package slug
