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

// Package errcode provides the canonical form of hierarchical error codes.
//
// ErrorInfo codes are free-form strings: "VAL" is as legal as
// "user.email.invalid". The canonical, dotted form defined here is what the
// errinfo helpers produce and what mapper prefix rules match against:
//
//	"user.email.invalid"
//	"storage.pg.connect_timeout"
//	"deserialization.status_invalid"
//
// Each segment starts with a lowercase ASCII letter and continues with
// lowercase letters, digits or underscores. At most MaxSegments segments are
// allowed.
package errcode

import (
	"errors"
	"regexp"
	"strings"
)

// Code is the canonical, validated representation of a dotted error code.
type Code string

const (
	// MinLength is the minimum length of a canonical code.
	MinLength = 2

	// MaxLength is the maximum length of a canonical code.
	MaxLength = 128

	// MaxSegments bounds the depth of a code.
	MaxSegments = 6
)

// codeFmt accepts 1..6 dot-separated segments of [a-z][a-z0-9_]*.
// The segment bound is tied to MaxSegments.
const codeFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,5}$`

var codeRe = regexp.MustCompile(codeFmt)

var (
	// ErrCodeInvalidFormat is returned when a code does not match the
	// canonical dotted format.
	ErrCodeInvalidFormat = errors.New("outcome: invalid error code format")

	// ErrCodeInvalidLength is returned when a code is too short or too long.
	ErrCodeInvalidLength = errors.New("outcome: invalid error code length")
)

// Empty is the zero-value code.
var Empty Code = ""

// Normalize brings s closer to the canonical form: it trims spaces,
// lower-cases, turns '/' and ':' into '.', and '-' and ' ' into '_'.
// It does not guarantee validity.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	return normalizer.Replace(s)
}

var normalizer = strings.NewReplacer("/", ".", ":", ".", "-", "_", " ", "_")

// Parse normalizes and validates s. The empty string parses to Empty.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Code(s), nil
}

// MustParse is the panic-on-error variant of Parse. Unlike Parse it rejects
// the empty string.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if c == Empty {
		panic("outcome: empty error code in MustParse")
	}
	return c
}

// Validate checks that c is canonical. Empty is valid.
func Validate(c Code) error {
	if c == Empty {
		return nil
	}
	return validate(string(c))
}

// Join normalizes each segment, drops empty ones and joins the rest with '.'.
// Segments that would break the format after normalization are reduced to
// their valid characters, so Join("validation", "Email Address") yields
// "validation.email_address".
func Join(segments ...string) Code {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		for _, p := range strings.Split(Normalize(s), ".") {
			if p = sanitizeSegment(p); p != "" {
				parts = append(parts, p)
			}
		}
	}
	if len(parts) > MaxSegments {
		parts = parts[:MaxSegments]
	}
	return Code(strings.Join(parts, "."))
}

// Segments splits c into its dot-separated parts.
func (c Code) Segments() []string {
	if c == Empty {
		return nil
	}
	return strings.Split(string(c), ".")
}

// String returns the code as a plain string.
func (c Code) String() string {
	return string(c)
}

// HasPrefix reports whether prefix is a segment-aligned prefix of c.
func (c Code) HasPrefix(prefix Code) bool {
	if prefix == Empty {
		return true
	}
	s, p := string(c), string(prefix)
	return s == p || strings.HasPrefix(s, p+".")
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrCodeInvalidLength
	}
	if !codeRe.MatchString(s) {
		return ErrCodeInvalidFormat
	}
	return nil
}

// sanitizeSegment keeps [a-z0-9_] and strips leading characters until the
// segment starts with a letter.
func sanitizeSegment(p string) string {
	var b strings.Builder
	for i := 0; i < len(p); i++ {
		ch := p[i]
		switch {
		case ch >= 'a' && ch <= 'z':
			b.WriteByte(ch)
		case (ch >= '0' && ch <= '9') || ch == '_':
			if b.Len() > 0 {
				b.WriteByte(ch)
			}
		}
	}
	return b.String()
}
