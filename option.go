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

// Option is a functional option for finishing a Problem during Build.
// It always takes a Problem and returns a (possibly new) Problem.
type Option func(Problem) Problem

// WithExtensionOption adds a single extension member on construction.
// Intended to be used with Factory.Build.
func WithExtensionOption(k string, v any) Option {
	return func(p Problem) Problem {
		return p.WithExtension(k, v)
	}
}

// WithExtensionsOption merges multiple extension members on construction.
// Intended to be used with Factory.Build.
func WithExtensionsOption(kv map[string]any) Option {
	return func(p Problem) Problem {
		return p.WithExtensions(kv)
	}
}
