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

package outcome

import (
	"errors"
	"fmt"
	"strconv"

	"dirpx.dev/outcome/apis"
	"dirpx.dev/outcome/errinfo"
	"dirpx.dev/outcome/status"
)

var (
	// ErrNilArgument is wrapped by ArgumentError when a required collection
	// is nil.
	ErrNilArgument = errors.New("outcome: nil argument")

	// ErrEmptyArgument is wrapped by ArgumentError when a required
	// collection is empty.
	ErrEmptyArgument = errors.New("outcome: empty argument")

	// ErrInvalidState is wrapped by InvalidStateError when a value is read
	// from a failed result.
	ErrInvalidState = errors.New("outcome: invalid state")
)

// ArgumentError reports a programmer error in a constructor call.
type ArgumentError struct {
	// Param names the offending parameter.
	Param string
	// Err is ErrNilArgument or ErrEmptyArgument.
	Err error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Param)
}

func (e *ArgumentError) Unwrap() error { return e.Err }

// InvalidStateError is returned by ValueOrError when the result is a
// failure.
type InvalidStateError struct {
	Message string
	Status  status.Status
	Errors  []errinfo.ErrorInfo
}

func (e *InvalidStateError) Error() string { return e.Message }

func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }

func invalidState(o Outcome) *InvalidStateError {
	msg := "outcome: value of a failed result"
	if first, ok := o.PrimaryError(); ok {
		msg += ": " + first.Message()
	} else {
		msg += ": status " + o.status.String()
	}
	return &InvalidStateError{Message: msg, Status: o.status, Errors: o.Errors()}
}

// Error carries a failed outcome across a boundary that requires a Go error.
// It keeps the structured error list rather than a flattened string.
type Error struct {
	Status status.Status
	Errors []errinfo.ErrorInfo
}

// AsError wraps a failed outcome into an *Error. It returns nil on success.
func AsError(o apis.Outcome) error {
	if o == nil || o.IsSuccess() {
		return nil
	}
	return &Error{Status: o.Status(), Errors: o.Errors()}
}

// Error returns the first error's message, followed by " (and N more)" when
// there are several.
func (e *Error) Error() string {
	switch len(e.Errors) {
	case 0:
		return "outcome: failure with status " + e.Status.String()
	case 1:
		return e.Errors[0].Message()
	default:
		return e.Errors[0].Message() + " (and " + strconv.Itoa(len(e.Errors)-1) + " more)"
	}
}

// Unwrap exposes each ErrorInfo to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	out := make([]error, len(e.Errors))
	for i, ei := range e.Errors {
		out[i] = ei
	}
	return out
}

// Outcome rebuilds the failed Outcome carried by e.
func (e *Error) Outcome() Outcome {
	return Outcome{status: e.Status, errors: cloneErrors(e.Errors)}
}
