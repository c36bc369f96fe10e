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

// Package text resolves problem slugs to localized, human-readable titles.
//
// Titles are presentation, slugs are identity: a title may be reworded or
// translated at any time without breaking clients, which is exactly why the
// two live in different layers. The catalog is loaded once at start-up
// (StaticCatalog / ParseCatalog) and consulted lock-free afterwards; a
// missing translation falls back to a deterministic humanization of the
// slug, so the error-reporting path itself never fails on incomplete
// localization.
package text
