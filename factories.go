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
	"context"
	"errors"

	"dirpx.dev/outcome/apis"
	"dirpx.dev/outcome/category"
	"dirpx.dev/outcome/errinfo"
	"dirpx.dev/outcome/status"
)

// Named constructors pin the status to the matching catalog entry.

// BadRequest returns a failure with status 400.
func BadRequest(e errinfo.ErrorInfo, more ...errinfo.ErrorInfo) Outcome {
	return withStatus(status.BadRequest, e, more)
}

// Validation returns a failure with status 400. It is meant for
// errinfo.Validation errors and aggregates.
func Validation(e errinfo.ErrorInfo, more ...errinfo.ErrorInfo) Outcome {
	return withStatus(status.BadRequest, e, more)
}

// Unauthorized returns a failure with status 401.
func Unauthorized(e errinfo.ErrorInfo, more ...errinfo.ErrorInfo) Outcome {
	return withStatus(status.Unauthorized, e, more)
}

// Forbidden returns a failure with status 403.
func Forbidden(e errinfo.ErrorInfo, more ...errinfo.ErrorInfo) Outcome {
	return withStatus(status.Forbidden, e, more)
}

// NotFound returns a failure with status 404.
func NotFound(e errinfo.ErrorInfo, more ...errinfo.ErrorInfo) Outcome {
	return withStatus(status.NotFound, e, more)
}

// Conflict returns a failure with status 409.
func Conflict(e errinfo.ErrorInfo, more ...errinfo.ErrorInfo) Outcome {
	return withStatus(status.Conflict, e, more)
}

// RequestTimeout returns a failure with status 408.
func RequestTimeout(e errinfo.ErrorInfo, more ...errinfo.ErrorInfo) Outcome {
	return withStatus(status.RequestTimeout, e, more)
}

// TooManyRequests returns a failure with status 429.
func TooManyRequests(e errinfo.ErrorInfo, more ...errinfo.ErrorInfo) Outcome {
	return withStatus(status.TooManyRequests, e, more)
}

// ServiceUnavailable returns a failure with status 503.
func ServiceUnavailable(e errinfo.ErrorInfo, more ...errinfo.ErrorInfo) Outcome {
	return withStatus(status.ServiceUnavailable, e, more)
}

// Internal returns a failure with status 500.
func Internal(e errinfo.ErrorInfo, more ...errinfo.ErrorInfo) Outcome {
	return withStatus(status.InternalServerError, e, more)
}

func withStatus(s status.Status, e errinfo.ErrorInfo, more []errinfo.ErrorInfo) Outcome {
	return newFailure(join(e, more), settings{status: s, hasStatus: true})
}

// BadRequestOf is the Result form of BadRequest.
func BadRequestOf[T any](e errinfo.ErrorInfo, more ...errinfo.ErrorInfo) Result[T] {
	return Lift[T](BadRequest(e, more...))
}

// ValidationOf is the Result form of Validation.
func ValidationOf[T any](e errinfo.ErrorInfo, more ...errinfo.ErrorInfo) Result[T] {
	return Lift[T](Validation(e, more...))
}

// UnauthorizedOf is the Result form of Unauthorized.
func UnauthorizedOf[T any](e errinfo.ErrorInfo, more ...errinfo.ErrorInfo) Result[T] {
	return Lift[T](Unauthorized(e, more...))
}

// ForbiddenOf is the Result form of Forbidden.
func ForbiddenOf[T any](e errinfo.ErrorInfo, more ...errinfo.ErrorInfo) Result[T] {
	return Lift[T](Forbidden(e, more...))
}

// NotFoundOf is the Result form of NotFound.
func NotFoundOf[T any](e errinfo.ErrorInfo, more ...errinfo.ErrorInfo) Result[T] {
	return Lift[T](NotFound(e, more...))
}

// ConflictOf is the Result form of Conflict.
func ConflictOf[T any](e errinfo.ErrorInfo, more ...errinfo.ErrorInfo) Result[T] {
	return Lift[T](Conflict(e, more...))
}

// RequestTimeoutOf is the Result form of RequestTimeout.
func RequestTimeoutOf[T any](e errinfo.ErrorInfo, more ...errinfo.ErrorInfo) Result[T] {
	return Lift[T](RequestTimeout(e, more...))
}

// TooManyRequestsOf is the Result form of TooManyRequests.
func TooManyRequestsOf[T any](e errinfo.ErrorInfo, more ...errinfo.ErrorInfo) Result[T] {
	return Lift[T](TooManyRequests(e, more...))
}

// ServiceUnavailableOf is the Result form of ServiceUnavailable.
func ServiceUnavailableOf[T any](e errinfo.ErrorInfo, more ...errinfo.ErrorInfo) Result[T] {
	return Lift[T](ServiceUnavailable(e, more...))
}

// InternalOf is the Result form of Internal.
func InternalOf[T any](e errinfo.ErrorInfo, more ...errinfo.ErrorInfo) Result[T] {
	return Lift[T](Internal(e, more...))
}

// FromError converts a Go error into a failed Outcome.
//
//   - nil yields Ok(opts...);
//   - an *Error is unwrapped back into its status and errors;
//   - context.DeadlineExceeded and context.Canceled become Timeout and
//     Canceled failures with status 408 and 499;
//   - an errinfo.ErrorInfo in the chain keeps its identity, with the status
//     resolved by the mapper;
//   - errors implementing apis.CodedError or apis.CategorizedError keep
//     their code and category, with the status resolved by the mapper;
//   - anything else becomes an Exception error with status.Error, capturing
//     the caller's stack.
//
// WithStatus overrides the derived status in every case.
func FromError(err error, opts ...Option) Outcome {
	return fromError(err, apply(opts))
}

// FromErrorOf is the Result form of FromError.
func FromErrorOf[T any](err error, opts ...Option) Result[T] {
	return Lift[T](fromError(err, apply(opts)))
}

// fromError must be called directly by an exported entry point: the stack
// captured for foreign errors starts two frames above it.
func fromError(err error, s settings) Outcome {
	if err == nil {
		return Outcome{status: s.statusOr(status.OK), messages: cloneStrings(s.messages)}
	}

	var oe *Error
	if errors.As(err, &oe) {
		o := oe.Outcome()
		o.status = s.statusOr(o.status)
		o.messages = cloneStrings(s.messages)
		return o
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return newFailure([]errinfo.ErrorInfo{errinfo.FromContext(err)}, withDefault(s, status.RequestTimeout))
	case errors.Is(err, context.Canceled):
		return newFailure([]errinfo.ErrorInfo{errinfo.FromContext(err)}, withDefault(s, status.ClientClosedRequest))
	}

	var ei errinfo.ErrorInfo
	if errors.As(err, &ei) {
		return newFailure([]errinfo.ErrorInfo{ei}, s)
	}
	if e, ok := describeForeign(err); ok {
		return newFailure([]errinfo.ErrorInfo{e}, s)
	}
	return newFailure([]errinfo.ErrorInfo{errinfo.FromErrorSkip(err, 2)}, withDefault(s, status.Error))
}

func withDefault(s settings, def status.Status) settings {
	if !s.hasStatus {
		s.status, s.hasStatus = def, true
	}
	return s
}

// describeForeign converts errors that expose their own code or category.
func describeForeign(err error) (errinfo.ErrorInfo, bool) {
	var (
		coded       apis.CodedError
		categorized apis.CategorizedError
		detailed    apis.DetailedError
	)
	hasCode := errors.As(err, &coded)
	hasCategory := errors.As(err, &categorized)
	if !hasCode && !hasCategory {
		return errinfo.ErrorInfo{}, false
	}

	c := category.Exception
	if hasCategory {
		if parsed, perr := category.Parse(categorized.ErrorCategory()); perr == nil && parsed != category.Empty {
			c = parsed
		}
	}
	code := "exception"
	if hasCode && coded.ErrorCode() != "" {
		code = coded.ErrorCode()
	}
	var opts []errinfo.Option
	if errors.As(err, &detailed) && detailed.ErrorDetail() != "" {
		opts = append(opts, errinfo.WithDetail(detailed.ErrorDetail()))
	}
	return errinfo.New(c, code, err.Error(), opts...), true
}
