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

package apis

import (
	"dirpx.dev/outcome/errinfo"
	"dirpx.dev/outcome/status"
)

// Outcome is the read-only view shared by the non-generic outcome and every
// Result[T] instantiation.
type Outcome interface {
	// IsSuccess reports whether there are no errors and the status is a
	// success status.
	IsSuccess() bool

	// IsFailure is the negation of IsSuccess.
	IsFailure() bool

	// Status returns the attached status descriptor.
	Status() status.Status

	// Messages returns a copy of the informational messages.
	Messages() []string

	// Errors returns a copy of the error list. It is empty on success.
	Errors() []errinfo.ErrorInfo

	// ErrorMessage returns the message of the first error, or "".
	ErrorMessage() string
}

// Payload is implemented by generic outcomes. PayloadValue returns the
// carried value boxed as any, and whether the outcome is a success. On
// failure the value must not be serialized.
type Payload interface {
	Outcome
	PayloadValue() (any, bool)
}

// ResultView is the generic read-only view of a Result[T]. It can be used as
// a field type in documents handled by the codec once registered with
// codec.RegisterView.
type ResultView[T any] interface {
	Outcome
	Value() (T, bool)
}

// State is the decoded, payload-free part of an outcome, as handed to a
// Restorer.
type State struct {
	Status   status.Status
	Messages []string
	Errors   []errinfo.ErrorInfo
}

// IsSuccess applies the failure-dominant rule to the decoded state.
func (s State) IsSuccess() bool {
	return len(s.Errors) == 0 && s.Status.IsSuccess()
}

// Restorer is implemented by pointers to outcome types. Restore overwrites
// the receiver with st.
//
// decodeValue is nil when the document carried no value. Otherwise it
// decodes the value into the given pointer; the implementation passes a
// pointer to its own T, which keeps the dispatch monomorphized.
type Restorer interface {
	Restore(st State, decodeValue func(into any) error) error
}
