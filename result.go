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
	"fmt"
	"reflect"
	"strings"

	"dirpx.dev/outcome/apis"
	"dirpx.dev/outcome/errinfo"
	"dirpx.dev/outcome/status"
)

// Result is an Outcome that carries a payload of type T on success.
//
// A failed Result may also hold a default or partial value supplied by the
// caller of FailureOf; it is reachable only through Partial.
type Result[T any] struct {
	o     Outcome
	value T
}

// Success returns a successful Result holding value. The status defaults to
// status.OK.
func Success[T any](value T, opts ...Option) Result[T] {
	return Result[T]{o: Ok(opts...), value: value}
}

// Of wraps a bare value into a successful Result.
func Of[T any](value T) Result[T] {
	return Result[T]{o: Outcome{status: status.OK}, value: value}
}

// FailureOf returns a failed Result carrying errs and the caller-supplied
// default value. It rejects nil and empty error lists like Failure.
func FailureOf[T any](defaultValue T, errs []errinfo.ErrorInfo, opts ...Option) (Result[T], error) {
	if err := checkErrors(errs); err != nil {
		return Result[T]{}, err
	}
	return Result[T]{o: newFailure(errs, apply(opts)), value: defaultValue}, nil
}

// MustFailureOf is the panic-on-error variant of FailureOf.
func MustFailureOf[T any](defaultValue T, errs []errinfo.ErrorInfo, opts ...Option) Result[T] {
	r, err := FailureOf(defaultValue, errs, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// FailWith returns a failed Result for one or more errors with a zero
// default value. The status is resolved by the default mapper.
func FailWith[T any](e errinfo.ErrorInfo, more ...errinfo.ErrorInfo) Result[T] {
	return Result[T]{o: OfError(e, more...)}
}

// Lift turns an Outcome into a Result with a zero payload, keeping its
// status, messages and errors.
func Lift[T any](o Outcome) Result[T] {
	return Result[T]{o: o}
}

// IsSuccess reports whether r has no errors and a success-range status.
func (r Result[T]) IsSuccess() bool { return r.o.IsSuccess() }

// IsFailure is the negation of IsSuccess.
func (r Result[T]) IsFailure() bool { return r.o.IsFailure() }

// Status returns the attached status.
func (r Result[T]) Status() status.Status { return r.o.status }

// Messages returns a copy of the informational messages.
func (r Result[T]) Messages() []string { return r.o.Messages() }

// Errors returns a copy of the errors.
func (r Result[T]) Errors() []errinfo.ErrorInfo { return r.o.Errors() }

// PrimaryError returns the first error.
func (r Result[T]) PrimaryError() (errinfo.ErrorInfo, bool) { return r.o.PrimaryError() }

// ErrorMessage returns the first error's message, or "".
func (r Result[T]) ErrorMessage() string { return r.o.ErrorMessage() }

// Outcome drops the payload.
func (r Result[T]) Outcome() Outcome { return r.o }

// Value returns the payload and true on success. On failure it returns the
// zero value and false; use Partial to read the default value of a failure.
func (r Result[T]) Value() (T, bool) {
	if !r.IsSuccess() {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Partial returns the stored value regardless of the branch.
func (r Result[T]) Partial() T { return r.value }

// PayloadValue implements apis.Payload.
func (r Result[T]) PayloadValue() (any, bool) {
	return r.value, r.IsSuccess()
}

// ValueOr returns the payload on success and fallback otherwise.
func (r Result[T]) ValueOr(fallback T) T {
	if r.IsSuccess() {
		return r.value
	}
	return fallback
}

// ValueOrError returns the payload on success. On failure it returns an
// *InvalidStateError whose message embeds the first error's message.
func (r Result[T]) ValueOrError() (T, error) {
	if r.IsSuccess() {
		return r.value, nil
	}
	var zero T
	return zero, invalidState(r.o)
}

// ValueOrErrorf is ValueOrError with a caller-supplied message.
func (r Result[T]) ValueOrErrorf(format string, args ...any) (T, error) {
	if r.IsSuccess() {
		return r.value, nil
	}
	err := invalidState(r.o)
	err.Message = fmt.Sprintf(format, args...)
	var zero T
	return zero, err
}

// ValueOrElse returns the payload on success; on failure it returns the
// error built by f from the error list.
func (r Result[T]) ValueOrElse(f func(errs []errinfo.ErrorInfo) error) (T, error) {
	if r.IsSuccess() {
		return r.value, nil
	}
	var zero T
	return zero, f(r.Errors())
}

// MustValue returns the payload or panics with an *InvalidStateError.
func (r Result[T]) MustValue() T {
	v, err := r.ValueOrError()
	if err != nil {
		panic(err)
	}
	return v
}

// OnSuccess calls f with the payload on success and returns r unchanged.
func (r Result[T]) OnSuccess(f func(T)) Result[T] {
	if r.IsSuccess() {
		f(r.value)
	}
	return r
}

// Tap is an alias of OnSuccess.
func (r Result[T]) Tap(f func(T)) Result[T] { return r.OnSuccess(f) }

// OnFailure calls f with the errors on failure and returns r unchanged.
func (r Result[T]) OnFailure(f func(errs []errinfo.ErrorInfo)) Result[T] {
	if r.IsFailure() {
		f(r.Errors())
	}
	return r
}

// Err returns nil on success and an *Error otherwise.
func (r Result[T]) Err() error { return r.o.Err() }

// Equal reports whether both results carry the same status, messages and
// errors, and deeply equal payloads when successful. Payloads of failures
// are not compared.
func (r Result[T]) Equal(other Result[T]) bool {
	if !r.o.Equal(other.o) {
		return false
	}
	if !r.IsSuccess() {
		return true
	}
	return reflect.DeepEqual(r.value, other.value)
}

// String renders r for logs, e.g.
//
//	Result(Success, Status: 200 OK, Value: 42)
func (r Result[T]) String() string {
	var b strings.Builder
	b.WriteString("Result(")
	r.o.writeFields(&b)
	if r.IsSuccess() {
		_, _ = fmt.Fprintf(&b, ", Value: %v", r.value)
	}
	b.WriteString(")")
	return b.String()
}

// View returns a flat snapshot of r without its payload.
func (r Result[T]) View() apis.View { return r.o.View() }

// MarshalLog implements logr.Marshaler.
func (r Result[T]) MarshalLog() any { return r.o.View() }

// Restore implements apis.Restorer. The payload is decoded only when st
// describes a success and the document carried a value.
func (r *Result[T]) Restore(st apis.State, decodeValue func(into any) error) error {
	var v T
	if st.IsSuccess() && decodeValue != nil {
		if err := decodeValue(&v); err != nil {
			return err
		}
	}
	*r = Result[T]{o: fromState(st), value: v}
	return nil
}
