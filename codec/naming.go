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

package codec

import (
	"strings"
	"unicode"
)

// Naming maps a canonical camelCase field name, e.g. "isSuccess", to the
// name written on the wire.
type Naming func(field string) string

var (
	// CamelCase keeps the canonical names: "isSuccess", "innerErrors".
	CamelCase Naming = func(field string) string { return field }

	// PascalCase upper-cases the first letter: "IsSuccess", "InnerErrors".
	PascalCase Naming = func(field string) string {
		if field == "" {
			return field
		}
		r := []rune(field)
		r[0] = unicode.ToUpper(r[0])
		return string(r)
	}

	// SnakeCase splits words with underscores: "is_success", "inner_errors".
	SnakeCase Naming = func(field string) string {
		var b strings.Builder
		b.Grow(len(field) + 4)
		for i, r := range field {
			if unicode.IsUpper(r) {
				if i > 0 {
					b.WriteByte('_')
				}
				r = unicode.ToLower(r)
			}
			b.WriteRune(r)
		}
		return b.String()
	}
)

type field uint8

const (
	fieldUnknown field = iota
	fieldIsSuccess
	fieldIsFailure
	fieldStatus
	fieldCode
	fieldDescription
	fieldMessages
	fieldErrors
	fieldErrorMessage
	fieldValue
	fieldCategory
	fieldMessage
	fieldDetail
	fieldMetadata
	fieldInnerErrors
)

var canonical = [...]string{
	fieldIsSuccess:    "isSuccess",
	fieldIsFailure:    "isFailure",
	fieldStatus:       "status",
	fieldCode:         "code",
	fieldDescription:  "description",
	fieldMessages:     "messages",
	fieldErrors:       "errors",
	fieldErrorMessage: "errorMessage",
	fieldValue:        "value",
	fieldCategory:     "category",
	fieldMessage:      "message",
	fieldDetail:       "detail",
	fieldMetadata:     "metadata",
	fieldInnerErrors:  "innerErrors",
}

// byFoldedName indexes fields by their case- and separator-insensitive form.
var byFoldedName = func() map[string]field {
	m := make(map[string]field, len(canonical))
	for f, name := range canonical {
		if name != "" {
			m[foldName(name)] = field(f)
		}
	}
	return m
}()

// foldName lower-cases s and drops '_', '-' and spaces, so that
// "is_success", "IsSuccess" and "isSuccess" fold to the same key.
func foldName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '_', '-', ' ':
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func fieldOf(key string) field {
	return byFoldedName[foldName(key)]
}

// names holds the wire name of every field under one Naming.
type names [len(canonical)]string

func newNames(n Naming) names {
	var out names
	for f, name := range canonical {
		if name != "" {
			out[f] = n(name)
		}
	}
	return out
}
