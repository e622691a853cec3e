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

// Package errinfo defines ErrorInfo, the immutable description of one failure
// cause carried by failed outcomes.
package errinfo

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"dirpx.dev/outcome/category"
)

// ErrorInfo describes one failure.
//
// It carries:
//   - Category: coarse classification (required, defaults to General);
//   - Code: short machine identifier, free-form ("VAL", "user.email.invalid");
//   - Message: human-oriented description;
//   - Detail: optional longer explanation;
//   - Metadata: optional key/value payload;
//   - InnerErrors: nested causes, e.g. field failures under an aggregate.
//
// ErrorInfo is a value type. All fields are private and every accessor that
// returns a map or slice returns a copy, so instances can be shared freely
// between goroutines. The WithX methods return modified copies.
type ErrorInfo struct {
	category category.Category
	code     string
	message  string
	detail   string
	metadata map[string]any
	inner    []ErrorInfo
}

// New constructs an ErrorInfo and applies opts in order.
//
// The category is put in canonical form with category.Parse, so "not_found"
// becomes NotFound; an empty or unparseable category becomes category.General.
// Code and message may be empty.
//
//	e := errinfo.New(category.Validation, "user.email.invalid", "email is malformed",
//	    errinfo.WithDetail("expected local@domain"),
//	    errinfo.WithMetadata("field", "email"),
//	)
func New(c category.Category, code, message string, opts ...Option) ErrorInfo {
	e := ErrorInfo{category: canonical(c), code: code, message: message}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

func canonical(c category.Category) category.Category {
	if c == category.Empty {
		return category.General
	}
	p, err := category.Parse(string(c))
	if err != nil {
		return category.General
	}
	return p
}

// Category returns the classification of the failure.
func (e ErrorInfo) Category() category.Category {
	if e.category == category.Empty {
		return category.General
	}
	return e.category
}

// Code returns the machine identifier of the failure.
func (e ErrorInfo) Code() string { return e.code }

// Message returns the human-readable description.
func (e ErrorInfo) Message() string { return e.message }

// Detail returns the optional longer explanation, or "".
func (e ErrorInfo) Detail() string { return e.detail }

// Metadata returns a copy of the metadata, or nil when there is none.
func (e ErrorInfo) Metadata() map[string]any {
	if len(e.metadata) == 0 {
		return nil
	}
	m := make(map[string]any, len(e.metadata))
	for k, v := range e.metadata {
		m[k] = v
	}
	return m
}

// Meta returns a single metadata value.
func (e ErrorInfo) Meta(key string) (any, bool) {
	v, ok := e.metadata[key]
	return v, ok
}

// InnerErrors returns a copy of the nested errors, or nil when there are none.
func (e ErrorInfo) InnerErrors() []ErrorInfo {
	if len(e.inner) == 0 {
		return nil
	}
	out := make([]ErrorInfo, len(e.inner))
	copy(out, e.inner)
	return out
}

// HasInner reports whether e has nested errors.
func (e ErrorInfo) HasInner() bool { return len(e.inner) > 0 }

// WithDetail returns a copy of e with the detail replaced.
func (e ErrorInfo) WithDetail(detail string) ErrorInfo {
	e.detail = detail
	return e
}

// WithMeta returns a copy of e with one extra metadata entry. The metadata
// map is always copied, the receiver is never modified.
func (e ErrorInfo) WithMeta(k string, v any) ErrorInfo {
	m := make(map[string]any, len(e.metadata)+1)
	for k0, v0 := range e.metadata {
		m[k0] = v0
	}
	m[k] = v
	e.metadata = m
	return e
}

// WithMetaMap returns a copy of e with kv merged into its metadata; kv wins
// on key conflicts.
func (e ErrorInfo) WithMetaMap(kv map[string]any) ErrorInfo {
	if len(kv) == 0 {
		return e
	}
	m := make(map[string]any, len(e.metadata)+len(kv))
	for k, v := range e.metadata {
		m[k] = v
	}
	for k, v := range kv {
		m[k] = v
	}
	e.metadata = m
	return e
}

// WithInnerErrors returns a copy of e with errs appended to its nested errors.
func (e ErrorInfo) WithInnerErrors(errs ...ErrorInfo) ErrorInfo {
	if len(errs) == 0 {
		return e
	}
	inner := make([]ErrorInfo, 0, len(e.inner)+len(errs))
	inner = append(inner, e.inner...)
	inner = append(inner, errs...)
	e.inner = inner
	return e
}

// Equal reports structural equality: same category, code, message, detail,
// deeply equal metadata (numbers by value) and element-wise equal inner errors. Nil and empty
// collections compare equal.
func (e ErrorInfo) Equal(o ErrorInfo) bool {
	if e.Category() != o.Category() || e.code != o.code || e.message != o.message || e.detail != o.detail {
		return false
	}
	if len(e.metadata) != len(o.metadata) {
		return false
	}
	for k, v := range e.metadata {
		w, ok := o.metadata[k]
		if !ok || !metaEqual(v, w) {
			return false
		}
	}
	if len(e.inner) != len(o.inner) {
		return false
	}
	for i := range e.inner {
		if !e.inner[i].Equal(o.inner[i]) {
			return false
		}
	}
	return true
}

// metaEqual compares metadata values deeply. Numbers compare by value
// whatever their Go type, so int 404 equals the float64 404 a JSON decoder
// may produce.
func metaEqual(a, b any) bool {
	if x, ok := numberKey(a); ok {
		y, ok := numberKey(b)
		return ok && x == y
	}
	return reflect.DeepEqual(a, b)
}

func numberKey(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f == math.Trunc(f) && math.Abs(f) < 1<<63 {
			return strconv.FormatInt(int64(f), 10), true
		}
		return strconv.FormatFloat(f, 'g', -1, 64), true
	}
	return "", false
}

// Error implements the error interface as "<code>: <message>", or just the
// message when the code is empty.
func (e ErrorInfo) Error() string {
	if e.code == "" {
		return e.message
	}
	return e.code + ": " + e.message
}

// String renders e deterministically:
//
//	ErrorInfo(Category: <c>, Code: <code>, Message: <m>[, Detail: <d>][, Metadata: {k=v, ...}][, Inner Errors: [...]])
//
// Optional segments are present only when non-empty and always appear in this
// order. Metadata keys are sorted. Log scrapers depend on this shape.
func (e ErrorInfo) String() string {
	var b strings.Builder
	b.WriteString("ErrorInfo(Category: ")
	b.WriteString(e.Category().String())
	b.WriteString(", Code: ")
	b.WriteString(e.code)
	b.WriteString(", Message: ")
	b.WriteString(e.message)
	if e.detail != "" {
		b.WriteString(", Detail: ")
		b.WriteString(e.detail)
	}
	if len(e.metadata) > 0 {
		keys := make([]string, 0, len(e.metadata))
		for k := range e.metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString(", Metadata: {")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			_, _ = fmt.Fprintf(&b, "%s=%v", k, e.metadata[k])
		}
		b.WriteString("}")
	}
	if len(e.inner) > 0 {
		b.WriteString(", Inner Errors: [")
		for i, in := range e.inner {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(in.String())
		}
		b.WriteString("]")
	}
	b.WriteString(")")
	return b.String()
}

// Messages returns the message of every error in errs, in order.
func Messages(errs []ErrorInfo) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.message
	}
	return out
}

// EqualAll reports element-wise equality of two error lists.
func EqualAll(a, b []ErrorInfo) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
