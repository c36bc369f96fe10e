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
	"reflect"

	"dirpx.dev/problem/apis"
	"dirpx.dev/problem/slug"
)

// freezeMetas makes an immutable copy of the meta map. Used when finalizing
// the registry so later mutations to the builder (or caller-owned maps)
// cannot affect the snapshot.
func freezeMetas(src map[slug.Slug]apis.Meta) map[slug.Slug]apis.Meta {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[slug.Slug]apis.Meta, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeSentinels makes an immutable copy of the sentinel binding map.
func freezeSentinels(src map[error]slug.Slug) map[error]slug.Slug {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[error]slug.Slug, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeTypes makes an immutable copy of the type binding map.
func freezeTypes(src map[reflect.Type]slug.Slug) map[reflect.Type]slug.Slug {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[reflect.Type]slug.Slug, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
