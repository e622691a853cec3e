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

// Package status defines the classification attached to every outcome: a
// numeric code with a textual description, a catalog of well-known values and
// a concurrency-safe Registry for custom ones.
//
// Codes follow HTTP status semantics by convention only. Nothing in this
// package talks HTTP; a code of 460 is as valid as 404 as long as the
// application registers a description for it.
package status

import (
	"errors"
	"fmt"
)

// Status is an immutable (code, description) pair. It is a comparable value
// type and can be used as a map key.
type Status struct {
	// Code is the numeric classification, conventionally an HTTP status.
	Code int

	// Description is the human-readable name of the code, e.g. "Not Found".
	Description string
}

// ErrInvalidCode is returned when registering a status with a non-positive code.
var ErrInvalidCode = errors.New("outcome: invalid status code")

// New returns a Status with the given code and description.
func New(code int, description string) Status {
	return Status{Code: code, Description: description}
}

// IsSuccess reports whether the code is in the non-error range [100, 400).
// The zero Status is not a success.
func (s Status) IsSuccess() bool {
	return s.Code >= 100 && s.Code < 400
}

// IsClientError reports whether the code is in [400, 500).
func (s Status) IsClientError() bool {
	return s.Code >= 400 && s.Code < 500
}

// IsServerError reports whether the code is in [500, 600).
func (s Status) IsServerError() bool {
	return s.Code >= 500 && s.Code < 600
}

// IsZero reports whether s is the zero Status.
func (s Status) IsZero() bool {
	return s == Status{}
}

// Equal reports whether s and o carry the same code and description.
func (s Status) Equal(o Status) bool {
	return s == o
}

// String renders "<code> <description>", or just the code when the
// description is empty.
func (s Status) String() string {
	if s.Description == "" {
		return fmt.Sprintf("%d", s.Code)
	}
	return fmt.Sprintf("%d %s", s.Code, s.Description)
}
