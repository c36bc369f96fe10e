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

package slugtrie

import (
	"errors"
	"strings"
)

// Trie is a segment-aware prefix index for dotted problem slugs.
//
// Slugs may form families through dots ("payment.card-expired",
// "payment.insufficient-funds"); the trie lets a registry bind metadata to a
// family prefix ("payment") once instead of per member. Each node represents
// one dot-separated segment; the wildcard "*" matches exactly one segment.
// Matching is longest-prefix: the deepest rule wins.
type Trie[T any] struct {
	// children contains next segments, including "*" for a single-segment wildcard.
	children map[string]*Trie[T]
	// hasVal marks that this node carries a value for the prefix ending here.
	hasVal bool
	val    T
	// pattern is the canonical dotted prefix (with '*' if wildcard was used)
	// for this node, set only when hasVal=true. It is returned by Match so
	// Explain() does not have to rebuild strings during lookup.
	pattern string
}

var (
	// ErrInvalidPrefix is returned when inserting a prefix that is empty,
	// has empty segments, contains characters outside the slug alphabet,
	// or consists only of wildcards.
	ErrInvalidPrefix = errors.New("slugtrie: invalid prefix")
)

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert adds a dot-separated prefix to the trie and associates it with val.
//
// Examples:
//
//	"payment"
//	"payment.card-expired"
//	"payment.*.retryable"
//
// The wildcard "*" matches exactly one segment. A prefix made only of "*"
// segments is rejected, because it would catch everything. Inserting the
// same prefix twice replaces the earlier value (last write wins, matching
// registry semantics). Returns ErrInvalidPrefix on malformed input.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	allWild := true
	for _, seg := range segs {
		if !validSegment(seg, true /* allowWildcard */) {
			return ErrInvalidPrefix
		}
		if seg != "*" {
			allWild = false
		}
	}
	if allWild {
		return ErrInvalidPrefix
	}

	cur := t
	for _, seg := range segs {
		child, exists := cur.children[seg]
		if !exists {
			child = New[T]()
			cur.children[seg] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Match finds the best (deepest) prefix match for a full dotted slug.
//
// Both exact segment matches and "*" wildcard branches are explored; among
// the rules that match, the one consuming the most segments wins. On success
// it returns the value, the stored rule pattern, and true. If the slug has a
// malformed segment or nothing matches, it returns zero values and false.
func (t *Trie[T]) Match(s string) (T, string, bool) {
	var zero T
	if t == nil {
		return zero, "", false
	}
	bestDepth := -1
	var bestVal T
	var bestPat string

	// dfs scans the next segment starting at byte offset 'off', with 'depth'
	// segments already consumed.
	var dfs func(n *Trie[T], off, depth int)
	dfs = func(n *Trie[T], off, depth int) {
		if n.hasVal && depth > bestDepth {
			bestDepth = depth
			bestVal = n.val
			bestPat = n.pattern
		}
		if off >= len(s) {
			return
		}

		// parse next segment [off:next), validating [a-z0-9-]+
		i := off
		for i < len(s) {
			c := s[i]
			if c == '.' {
				break
			}
			if !slugChar(c) {
				return // invalid char => stop this path
			}
			i++
		}
		if i == off {
			return // empty segment ("..", leading '.') => stop
		}
		seg := s[off:i] // substring; no heap alloc
		nextOff := i
		if nextOff < len(s) && s[nextOff] == '.' {
			nextOff++
		}

		// exact branch
		if next, ok := n.children[seg]; ok {
			dfs(next, nextOff, depth+1)
		}
		// wildcard branch
		if next, ok := n.children["*"]; ok {
			dfs(next, nextOff, depth+1)
		}
	}

	dfs(t, 0, 0)
	if bestDepth < 0 {
		return zero, "", false
	}
	return bestVal, bestPat, true
}

// validSegment reports whether seg is a valid trie segment.
// Rules:
//   - empty segments are invalid;
//   - when allowWildcard=true, the segment "*" is allowed;
//   - otherwise every character must belong to the slug alphabet
//     restricted to one segment: [a-z0-9-]+
func validSegment(seg string, allowWildcard bool) bool {
	if seg == "" {
		return false
	}
	if allowWildcard && seg == "*" {
		return true
	}
	for i := 0; i < len(seg); i++ {
		if !slugChar(seg[i]) {
			return false
		}
	}
	return true
}

// slugChar reports whether c may appear inside a single slug segment.
func slugChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-'
}
