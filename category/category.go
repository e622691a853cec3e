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

package category

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"sort"
	"strings"
)

// Category is the canonical, validated representation of an error category.
//
// It is a separate type (not just string) so that APIs can state that they
// expect a classification and not an arbitrary label.
type Category string

// MaxLength is the maximum length of a custom category identifier.
const MaxLength = 64

// customFmt is the pattern a non-catalog category must match after
// normalization: an ASCII letter followed by 1..63 letters or digits.
const customFmt = `^[A-Za-z][A-Za-z0-9]{1,63}$`

var customRe = regexp.MustCompile(customFmt)

var (
	// ErrCategoryInvalid is returned when a value cannot be parsed or
	// validated as a category.
	ErrCategoryInvalid = errors.New("outcome: invalid category")
)

var (
	_ encoding.TextMarshaler   = (*Category)(nil)
	_ encoding.TextUnmarshaler = (*Category)(nil)
)

// Empty is the zero-value category. It is not valid on its own; constructors
// in errinfo replace it with General.
var Empty Category = ""

// known indexes the built-in catalog by folded key (lowercase, no separators).
var known = func() map[string]Category {
	m := make(map[string]Category, len(catalog))
	for _, c := range catalog {
		m[fold(string(c))] = c
	}
	return m
}()

// Parse normalizes s and returns the canonical Category.
//
// Built-in categories are matched case-insensitively and without regard to
// '_', '-' or spaces, so "not_found" parses to NotFound. Anything else must be
// a plain identifier and is accepted as a custom category with its first
// letter upper-cased.
func Parse(s string) (Category, error) {
	n := Normalize(s)
	if n == "" {
		return Empty, ErrCategoryInvalid
	}
	if c, ok := known[fold(n)]; ok {
		return c, nil
	}
	if err := validate(n); err != nil {
		return Empty, err
	}
	return Category(n), nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Category {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize performs the non-lossy cleanups Parse relies on: it trims
// surrounding spaces, joins '_', '-' and space separated words in PascalCase
// and upper-cases the first letter. The result is not guaranteed to be valid.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	var b strings.Builder
	b.Grow(len(s))
	for _, w := range words {
		b.WriteString(strings.ToUpper(w[:1]))
		if len(words) > 1 {
			b.WriteString(strings.ToLower(w[1:]))
		} else {
			b.WriteString(w[1:])
		}
	}
	return b.String()
}

// Validate checks whether c is a canonical category. Built-in categories must
// use their canonical spelling.
func Validate(c Category) error {
	if k, ok := known[fold(string(c))]; ok {
		if k != c {
			return ErrCategoryInvalid
		}
		return nil
	}
	return validate(string(c))
}

// IsKnown reports whether c belongs to the built-in catalog.
func IsKnown(c Category) bool {
	k, ok := known[fold(string(c))]
	return ok && k == c
}

// Known returns the built-in catalog sorted by name.
func Known() []Category {
	out := make([]Category, len(catalog))
	copy(out, catalog)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String returns the canonical string representation of the category.
func (c Category) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is parsed, so
// any accepted spelling ends up canonical.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func validate(s string) error {
	if len(s) > MaxLength || !customRe.MatchString(s) {
		return ErrCategoryInvalid
	}
	return nil
}

// fold produces the lookup key for the built-in catalog.
func fold(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)
}
