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

package mapper

import (
	"fmt"
	"strings"

	"dirpx.dev/outcome/category"
	"dirpx.dev/outcome/errcode"
	"dirpx.dev/outcome/mapper/internal/segmenttrie"
)

// freeze makes an immutable copy of a builder map. Empty maps become nil.
func freeze[K comparable, V any](src map[K]V) map[K]V {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[K]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// buildTries compiles per-category prefix rules into segment tries.
func buildTries[V any](kind string, rules map[category.Category][]prefixRule[V]) (map[category.Category]*segmenttrie.Trie[V], error) {
	if len(rules) == 0 {
		return nil, nil
	}
	out := make(map[category.Category]*segmenttrie.Trie[V], len(rules))
	for c, rs := range rules {
		if len(rs) == 0 {
			continue
		}
		t := segmenttrie.New[V]()
		for _, r := range rs {
			p, err := normalizeAndValidatePrefix(r.prefix)
			if err != nil {
				return nil, fmt.Errorf("mapper: invalid %s code prefix %q for category %q: %w", kind, r.prefix, c, err)
			}
			if err := t.Insert(p, r.val); err != nil {
				return nil, fmt.Errorf("mapper: cannot insert %s prefix %q for category %q: %w", kind, p, c, err)
			}
		}
		out[c] = t
	}
	return out, nil
}

// normalizeAndValidatePrefix brings a rule prefix to the canonical code form
// and checks every segment. The "*" wildcard survives normalization.
func normalizeAndValidatePrefix(raw string) (string, error) {
	p := errcode.Normalize(raw)
	if p == "" {
		return "", fmt.Errorf("empty prefix")
	}
	allWild := true
	for _, seg := range strings.Split(p, ".") {
		if !validPrefixSegment(seg) {
			return "", fmt.Errorf("invalid segment %q", seg)
		}
		if seg != "*" {
			allWild = false
		}
	}
	if allWild {
		return "", fmt.Errorf("prefix cannot consist of '*' only")
	}
	return p, nil
}

// validPrefixSegment accepts "*" or [a-z][a-z0-9_]*.
func validPrefixSegment(seg string) bool {
	if seg == "*" {
		return true
	}
	if seg == "" || seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}

// canonicalCode is the form error codes take before prefix matching.
func canonicalCode(code string) string {
	return errcode.Normalize(code)
}
