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

// Package segmenttrie implements a prefix index over dotted error codes.
//
// Keys are "."-separated segments of the form [a-z][a-z0-9_]*. A rule
// segment "*" matches exactly one key segment. Lookups return the value of
// the deepest rule that covers the key; at equal depth a literal segment
// beats a wildcard.
package segmenttrie

import (
	"errors"
	"strings"
)

// ErrInvalidPrefix is returned by Insert for empty prefixes, empty or
// malformed segments, and prefixes made only of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

const wildcard = "*"

// Trie maps code prefixes to values. A Trie is not safe for concurrent
// Insert; once built it may be read from any number of goroutines.
type Trie[T any] struct {
	root node[T]
	size int
}

type node[T any] struct {
	children map[string]*node[T]
	set      bool
	val      T
	// rule is the prefix as inserted, reported by MatchWithPattern.
	rule string
}

// New returns an empty trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{}
}

// Len returns the number of distinct prefixes stored.
func (t *Trie[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Insert associates val with prefix, replacing any previous value.
//
//	"storage.pg"
//	"auth.*.verify"
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	literal := false
	for _, s := range segs {
		if s == wildcard {
			continue
		}
		if !validSegment(s) {
			return ErrInvalidPrefix
		}
		literal = true
	}
	if !literal {
		return ErrInvalidPrefix
	}

	n := &t.root
	for _, s := range segs {
		next := n.children[s]
		if next == nil {
			if n.children == nil {
				n.children = make(map[string]*node[T])
			}
			next = &node[T]{}
			n.children[s] = next
		}
		n = next
	}
	if !n.set {
		t.size++
	}
	n.set, n.val, n.rule = true, val, prefix
	return nil
}

// Match returns the value of the longest rule covering code.
// Malformed codes only match up to their last well-formed segment.
func (t *Trie[T]) Match(code string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(code)
	return v, ok
}

// MatchWithPattern is Match that also reports the matching rule as it was
// inserted.
func (t *Trie[T]) MatchWithPattern(code string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	best, _ := t.root.longest(code, 0, 0, nil, -1)
	if best == nil {
		return zero, false, ""
	}
	return best.val, true, best.rule
}

// longest walks every branch compatible with code starting at byte offset
// off and returns the deepest node carrying a value. best/bestDepth carry
// the result found so far.
func (n *node[T]) longest(code string, off, depth int, best *node[T], bestDepth int) (*node[T], int) {
	if n.set && depth > bestDepth {
		best, bestDepth = n, depth
	}
	seg, next, ok := nextSegment(code, off)
	if !ok {
		return best, bestDepth
	}
	if c := n.children[seg]; c != nil {
		best, bestDepth = c.longest(code, next, depth+1, best, bestDepth)
	}
	if c := n.children[wildcard]; c != nil {
		best, bestDepth = c.longest(code, next, depth+1, best, bestDepth)
	}
	return best, bestDepth
}

// nextSegment slices the segment starting at off without allocating and
// returns the offset just past its trailing dot.
func nextSegment(code string, off int) (seg string, next int, ok bool) {
	if off >= len(code) {
		return "", off, false
	}
	end := strings.IndexByte(code[off:], '.')
	if end < 0 {
		end = len(code)
	} else {
		end += off
	}
	seg = code[off:end]
	if !validSegment(seg) {
		return "", off, false
	}
	if end < len(code) {
		end++
	}
	return seg, end, true
}

func validSegment(s string) bool {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}
