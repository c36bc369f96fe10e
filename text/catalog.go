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

package text

import (
	"fmt"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Catalog supplies localized messages by key. Implementations are read-only
// after construction: the titler calls Lookup concurrently from many
// request-handling goroutines and performs no locking.
//
// Lookup returns (message, true) when a message exists for the key in the
// locale best matching tag, walking the implementation's fallback chain.
// A miss is an expected outcome, never an error.
type Catalog interface {
	Lookup(key string, tag language.Tag) (string, bool)
}

// StaticCatalog is an in-memory Catalog over per-locale message maps.
//
// Locale matching uses golang.org/x/text language matching, so a request
// for "de-AT" finds "de" messages, and anything unmatchable lands on the
// catalog's fallback locale. A key missing from the matched locale is
// retried against the fallback locale before reporting a miss.
type StaticCatalog struct {
	tags    []language.Tag
	byTag   []map[string]string
	matcher language.Matcher
}

var _ Catalog = (*StaticCatalog)(nil)

// NewStaticCatalog builds a catalog from per-locale message maps, keyed by
// BCP 47 tags ("en", "de", "pt-BR"). The fallback locale is the ultimate
// target of the matching chain and must be present in entries (unless
// entries is empty, in which case every lookup simply misses).
//
// The provided maps are copied; later mutation by the caller has no effect.
func NewStaticCatalog(fallback string, entries map[string]map[string]string) (*StaticCatalog, error) {
	c := &StaticCatalog{}
	if len(entries) == 0 {
		return c, nil
	}
	fbTag, err := language.Parse(fallback)
	if err != nil {
		return nil, fmt.Errorf("text: fallback locale %q: %w", fallback, err)
	}
	if _, ok := entries[fallback]; !ok {
		return nil, fmt.Errorf("text: fallback locale %q has no messages", fallback)
	}

	// The matcher prefers earlier tags, and returns the first tag when
	// nothing matches at all, so the fallback goes first.
	c.tags = append(c.tags, fbTag)
	c.byTag = append(c.byTag, copyMessages(entries[fallback]))
	for loc, msgs := range entries {
		if loc == fallback {
			continue
		}
		t, err := language.Parse(loc)
		if err != nil {
			return nil, fmt.Errorf("text: locale %q: %w", loc, err)
		}
		c.tags = append(c.tags, t)
		c.byTag = append(c.byTag, copyMessages(msgs))
	}
	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

// MustStaticCatalog is the panic-on-error variant of NewStaticCatalog, for
// package-level var blocks and tests.
func MustStaticCatalog(fallback string, entries map[string]map[string]string) *StaticCatalog {
	c, err := NewStaticCatalog(fallback, entries)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCatalog builds a StaticCatalog from YAML of the shape:
//
//	en:
//	  problems.resource-not-found.title: Resource not found
//	de:
//	  problems.resource-not-found.title: Ressource nicht gefunden
//
// The catalog file is loaded once at start-up; this package never watches
// or reloads it.
func ParseCatalog(fallback string, data []byte) (*StaticCatalog, error) {
	var entries map[string]map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("text: parse catalog: %w", err)
	}
	return NewStaticCatalog(fallback, entries)
}

// Lookup implements Catalog.
func (c *StaticCatalog) Lookup(key string, tag language.Tag) (string, bool) {
	if len(c.tags) == 0 {
		return "", false
	}
	_, i, _ := c.matcher.Match(tag)
	if v, ok := c.byTag[i][key]; ok {
		return v, true
	}
	// Matched locale lacks the key; the fallback locale (index 0) is the
	// last stop before reporting a miss.
	if i != 0 {
		if v, ok := c.byTag[0][key]; ok {
			return v, true
		}
	}
	return "", false
}

func copyMessages(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
