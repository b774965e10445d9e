/*
   Copyright 2026 The Zeturn Authors

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

package codetrie

import (
	"errors"
	"strings"
)

// Trie is a segment-aware prefix index for underscore-separated error codes.
// Each node represents one code segment; the wildcard "*" matches exactly
// one segment. Lookups use longest-prefix-match with segment boundaries, so
// "token_expired" is matched by the rule "token" but never by "tok".
type Trie[T any] struct {
	// children holds the next segments, including "*" for the wildcard.
	children map[string]*Trie[T]
	// hasVal marks that a rule ends at this node.
	hasVal bool
	val    T
	// pattern is the rule as inserted (with '*' if used), kept for
	// MatchWithPattern so Explain() does not rebuild strings on lookup.
	pattern string
}

// ErrInvalidPrefix is returned when inserting a prefix that is empty, has
// empty segments, contains invalid characters, or consists only of wildcards.
var ErrInvalidPrefix = errors.New("codetrie: invalid prefix")

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert adds an underscore-separated prefix to the trie and associates it
// with val.
//
// Examples:
//
//	"token"
//	"token_expired"
//	"*_expired"
//
// The wildcard "*" matches exactly one segment. A prefix made only of "*"
// segments is rejected as too generic. Returns ErrInvalidPrefix on
// malformed input.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil {
		return ErrInvalidPrefix
	}
	segs, ok := split(prefix, true)
	if !ok || len(segs) == 0 {
		return ErrInvalidPrefix
	}
	if allWildcards(segs) {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, exists := cur.children[s]
		if !exists {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	if cur.pattern == "" {
		cur.pattern = prefix
	}
	return nil
}

// Match finds the deepest rule matching a full code string and returns its
// value. Both exact branches and "*" branches are explored; the rule
// consuming the most segments wins. If the code is malformed or no rule
// matches, it returns the zero value and false.
func (t *Trie[T]) Match(code string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(code)
	return v, ok
}

// MatchWithPattern is Match plus the stored rule pattern of the winning
// rule, for use by Explain-style diagnostics.
func (t *Trie[T]) MatchWithPattern(code string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	segs, ok := split(code, false)
	if !ok {
		return zero, false, ""
	}

	best := -1
	var bestVal T
	var bestPat string

	var walk func(n *Trie[T], depth int)
	walk = func(n *Trie[T], depth int) {
		if n.hasVal && depth > best {
			best = depth
			bestVal = n.val
			bestPat = n.pattern
		}
		if depth == len(segs) {
			return
		}
		if next, ok := n.children[segs[depth]]; ok {
			walk(next, depth+1)
		}
		if next, ok := n.children["*"]; ok {
			walk(next, depth+1)
		}
	}
	walk(t, 0)

	if best < 0 {
		return zero, false, ""
	}
	return bestVal, true, bestPat
}

// split breaks an underscore-separated string into validated segments.
// When allowWildcard is true, a segment that is exactly "*" is accepted.
// An empty string yields an empty (but valid) segment list so that matching
// against "" stays possible in callers.
func split(s string, allowWildcard bool) ([]string, bool) {
	if s == "" {
		return []string{}, true
	}
	segs := strings.Split(s, "_")
	for _, seg := range segs {
		if !validSegment(seg, allowWildcard) {
			return nil, false
		}
	}
	return segs, true
}

func allWildcards(segs []string) bool {
	for _, s := range segs {
		if s != "*" {
			return false
		}
	}
	return true
}

// validSegment reports whether seg is a valid trie segment: non-empty,
// either the wildcard (when allowed) or matching [a-z0-9]+. The underscore
// never appears inside a segment — it is the separator. Digit-leading
// segments are allowed because the code format permits them after the first
// segment, and the trie cannot know a segment's position in the rule.
func validSegment(seg string, allowWildcard bool) bool {
	if seg == "" {
		return false
	}
	if seg == "*" {
		return allowWildcard
	}
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			continue
		}
		return false
	}
	return true
}
