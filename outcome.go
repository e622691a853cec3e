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
	"slices"
	"strings"

	"dirpx.dev/outcome/adapter"
	"dirpx.dev/outcome/apis"
	"dirpx.dev/outcome/category"
	"dirpx.dev/outcome/errinfo"
	"dirpx.dev/outcome/status"
)

// Outcome is the result of an operation that returns no payload.
//
// It is immutable. The zero Outcome is a failure without errors: its zero
// status is outside the success range.
type Outcome struct {
	status   status.Status
	messages []string
	errors   []errinfo.ErrorInfo
}

// Ok returns a successful Outcome. The status defaults to status.OK.
func Ok(opts ...Option) Outcome {
	s := apply(opts)
	return Outcome{status: s.statusOr(status.OK), messages: cloneStrings(s.messages)}
}

// Failure returns a failed Outcome carrying errs.
//
// errs must hold at least one error: a nil slice yields an *ArgumentError
// wrapping ErrNilArgument, an empty one wraps ErrEmptyArgument.
func Failure(errs []errinfo.ErrorInfo, opts ...Option) (Outcome, error) {
	if err := checkErrors(errs); err != nil {
		return Outcome{}, err
	}
	return newFailure(errs, apply(opts)), nil
}

// MustFailure is the panic-on-error variant of Failure.
func MustFailure(errs []errinfo.ErrorInfo, opts ...Option) Outcome {
	o, err := Failure(errs, opts...)
	if err != nil {
		panic(err)
	}
	return o
}

// OfError returns a failed Outcome for one or more errors. The status is
// resolved by the default mapper from the first error.
func OfError(e errinfo.ErrorInfo, more ...errinfo.ErrorInfo) Outcome {
	return newFailure(join(e, more), settings{})
}

func checkErrors(errs []errinfo.ErrorInfo) error {
	if errs == nil {
		return &ArgumentError{Param: "errors", Err: ErrNilArgument}
	}
	if len(errs) == 0 {
		return &ArgumentError{Param: "errors", Err: ErrEmptyArgument}
	}
	return nil
}

func newFailure(errs []errinfo.ErrorInfo, s settings) Outcome {
	st := s.status
	if !s.hasStatus {
		var ok bool
		if st, ok = problemStatus(errs[0]); !ok {
			st = s.resolver().OutcomeStatus(errs[0].Category(), errs[0].Code())
		}
	}
	return Outcome{status: st, messages: cloneStrings(s.messages), errors: cloneErrors(errs)}
}

// problemStatus returns the 4xx or 5xx status an imported problem document
// declares in its metadata.
func problemStatus(e errinfo.ErrorInfo) (status.Status, bool) {
	if e.Category() != category.ProblemDetails {
		return status.Status{}, false
	}
	v, _ := e.Meta(errinfo.MetaProblemStatus)
	var code int
	switch n := v.(type) {
	case int:
		code = n
	case int64:
		code = int(n)
	case float64:
		if n != float64(int(n)) {
			return status.Status{}, false
		}
		code = int(n)
	default:
		return status.Status{}, false
	}
	if code < 400 || code > 599 {
		return status.Status{}, false
	}
	return status.New(code, status.Text(code)), true
}

// IsSuccess reports whether o has no errors and a success-range status.
func (o Outcome) IsSuccess() bool {
	return len(o.errors) == 0 && o.status.IsSuccess()
}

// IsFailure is the negation of IsSuccess.
func (o Outcome) IsFailure() bool { return !o.IsSuccess() }

// Status returns the attached status.
func (o Outcome) Status() status.Status { return o.status }

// Messages returns a copy of the informational messages.
func (o Outcome) Messages() []string { return cloneStrings(o.messages) }

// Errors returns a copy of the errors. It is empty on success.
func (o Outcome) Errors() []errinfo.ErrorInfo { return cloneErrors(o.errors) }

// PrimaryError returns the first error, the one transports map to a status.
func (o Outcome) PrimaryError() (errinfo.ErrorInfo, bool) {
	if len(o.errors) == 0 {
		return errinfo.ErrorInfo{}, false
	}
	return o.errors[0], true
}

// ErrorMessage returns the first error's message, or "".
func (o Outcome) ErrorMessage() string {
	if len(o.errors) == 0 {
		return ""
	}
	return o.errors[0].Message()
}

// OnSuccess calls f when o is a success and returns o unchanged.
func (o Outcome) OnSuccess(f func()) Outcome {
	if o.IsSuccess() {
		f()
	}
	return o
}

// OnFailure calls f with the errors when o is a failure and returns o
// unchanged.
func (o Outcome) OnFailure(f func(errs []errinfo.ErrorInfo)) Outcome {
	if o.IsFailure() {
		f(o.Errors())
	}
	return o
}

// Err returns nil on success and an *Error otherwise.
func (o Outcome) Err() error {
	if o.IsSuccess() {
		return nil
	}
	return &Error{Status: o.status, Errors: o.Errors()}
}

// Equal reports whether both outcomes carry the same status, messages and
// errors.
func (o Outcome) Equal(other Outcome) bool {
	return o.status == other.status &&
		slices.Equal(o.messages, other.messages) &&
		errinfo.EqualAll(o.errors, other.errors)
}

// String renders o for logs, e.g.
//
//	Outcome(Failure, Status: 404 Not Found, Errors: [ErrorInfo(...)])
func (o Outcome) String() string {
	var b strings.Builder
	b.WriteString("Outcome(")
	o.writeFields(&b)
	b.WriteString(")")
	return b.String()
}

func (o Outcome) writeFields(b *strings.Builder) {
	if o.IsSuccess() {
		b.WriteString("Success")
	} else {
		b.WriteString("Failure")
	}
	b.WriteString(", Status: ")
	b.WriteString(o.status.String())
	if len(o.messages) > 0 {
		b.WriteString(", Messages: [")
		b.WriteString(strings.Join(o.messages, ", "))
		b.WriteString("]")
	}
	if len(o.errors) > 0 {
		b.WriteString(", Errors: [")
		for i, e := range o.errors {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(e.String())
		}
		b.WriteString("]")
	}
}

// View returns a flat snapshot of o.
func (o Outcome) View() apis.View { return adapter.ToView(o) }

// MarshalLog implements logr.Marshaler so that loggers render the flat view.
func (o Outcome) MarshalLog() any { return o.View() }

// Restore implements apis.Restorer.
func (o *Outcome) Restore(st apis.State, _ func(into any) error) error {
	*o = fromState(st)
	return nil
}

func fromState(st apis.State) Outcome {
	return Outcome{status: st.Status, messages: cloneStrings(st.Messages), errors: cloneErrors(st.Errors)}
}

func join(e errinfo.ErrorInfo, more []errinfo.ErrorInfo) []errinfo.ErrorInfo {
	out := make([]errinfo.ErrorInfo, 0, 1+len(more))
	out = append(out, e)
	return append(out, more...)
}

func cloneStrings(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}

func cloneErrors(e []errinfo.ErrorInfo) []errinfo.ErrorInfo {
	if len(e) == 0 {
		return nil
	}
	return slices.Clone(e)
}
