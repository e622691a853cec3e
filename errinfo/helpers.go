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

package errinfo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dirpx.dev/outcome/category"
	"dirpx.dev/outcome/errcode"
)

// Metadata keys written by the helpers in this file.
const (
	MetaField      = "field"
	MetaResource   = "resource"
	MetaKey        = "key"
	MetaAction     = "action"
	MetaOperation  = "operation"
	MetaService    = "service"
	MetaLimit      = "limit"
	MetaRetryAfter = "retryAfter"

	MetaExceptionMessage = "message"
	MetaExceptionType    = "type"
	MetaStackTrace       = "stackTrace"

	MetaProblemType     = "type"
	MetaProblemTitle    = "title"
	MetaProblemStatus   = "status"
	MetaProblemInstance = "instance"
)

// Validation describes an invalid field.
// The code is "validation.<field>".
func Validation(field, message string) ErrorInfo {
	return New(category.Validation, string(errcode.Join("validation", field)), message,
		WithMetadata(MetaField, field))
}

// NotFound describes a missing resource of the given kind identified by key.
// kind appears in the message as given: "user '7' was not found".
func NotFound(kind string, key any) ErrorInfo {
	return New(category.NotFound, string(errcode.Join("not_found", kind)),
		fmt.Sprintf("%s '%v' was not found", kind, key),
		WithMetadata(MetaResource, kind),
		WithMetadata(MetaKey, fmt.Sprint(key)))
}

// Conflict describes a clash with the current state of a resource.
func Conflict(kind, message string) ErrorInfo {
	return New(category.Conflict, string(errcode.Join("conflict", kind)), message,
		WithMetadata(MetaResource, kind))
}

// Authentication describes missing or invalid credentials.
func Authentication(message string) ErrorInfo {
	return New(category.Authentication, "authentication.failed", message)
}

// Authorization describes a permission failure for action on resource.
func Authorization(action, resource string) ErrorInfo {
	return New(category.Authorization, string(errcode.Join("authorization", action)),
		fmt.Sprintf("not allowed to %s %s", action, resource),
		WithMetadata(MetaAction, action),
		WithMetadata(MetaResource, resource))
}

// Timeout describes an operation that exceeded its time budget.
func Timeout(operation string) ErrorInfo {
	return New(category.Timeout, string(errcode.Join("timeout", operation)),
		fmt.Sprintf("%s timed out", operation),
		WithMetadata(MetaOperation, operation))
}

// Unavailable describes a service that cannot serve right now.
func Unavailable(service string) ErrorInfo {
	return New(category.ServiceUnavailable, string(errcode.Join("unavailable", service)),
		fmt.Sprintf("%s is unavailable", service),
		WithMetadata(MetaService, service))
}

// RateLimit describes an exceeded rate limit. A zero retryAfter is omitted.
func RateLimit(limit string, retryAfter time.Duration) ErrorInfo {
	e := New(category.RateLimit, "rate_limit.exceeded",
		fmt.Sprintf("rate limit %s exceeded", limit),
		WithMetadata(MetaLimit, limit))
	if retryAfter > 0 {
		e = e.WithMeta(MetaRetryAfter, retryAfter.String())
	}
	return e
}

// Internal describes an unexpected server-side failure.
func Internal(message string) ErrorInfo {
	return New(category.InternalServerError, "internal", message)
}

// Problem imports an RFC 7807 problem document. Empty fields are skipped.
func Problem(typ, title string, statusCode int, detail, instance string) ErrorInfo {
	e := New(category.ProblemDetails, "problem", title, WithDetail(detail))
	if typ != "" {
		e = e.WithMeta(MetaProblemType, typ)
	}
	if title != "" {
		e = e.WithMeta(MetaProblemTitle, title)
	}
	if statusCode != 0 {
		e = e.WithMeta(MetaProblemStatus, statusCode)
	}
	if instance != "" {
		e = e.WithMeta(MetaProblemInstance, instance)
	}
	return e
}

// AggregateMessage is the message of the umbrella built by Aggregate.
const AggregateMessage = "One or more validation errors occurred."

// Aggregate wraps several errors under one Validation umbrella whose inner
// errors are errs, in order.
func Aggregate(errs ...ErrorInfo) ErrorInfo {
	return New(category.Validation, "validation.aggregate", AggregateMessage, WithInner(errs...))
}

// FromError converts err into an ErrorInfo of category Exception, capturing
// the message, the dynamic type and the stack of the caller in metadata.
//
// An ErrorInfo found in err's chain is returned unchanged. A nil err yields
// the zero ErrorInfo.
func FromError(err error) ErrorInfo {
	return fromError(err, 0)
}

// FromErrorSkip is FromError for wrappers: skip additional frames are
// dropped from the top of the captured stack.
func FromErrorSkip(err error, skip int) ErrorInfo {
	return fromError(err, skip)
}

func fromError(err error, skip int) ErrorInfo {
	if err == nil {
		return ErrorInfo{}
	}
	var ei ErrorInfo
	if errors.As(err, &ei) {
		return ei
	}
	return New(category.Exception, "exception", err.Error(),
		WithMetadata(MetaExceptionMessage, err.Error()),
		WithMetadata(MetaExceptionType, fmt.Sprintf("%T", err)),
		// captureStack, fromError and the exported entry point
		WithMetadata(MetaStackTrace, captureStack(skip+2)))
}

// FromContext converts a context error: deadline overruns become Timeout,
// cancellations become Canceled. Other errors go through FromError.
func FromContext(err error) ErrorInfo {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return New(category.Timeout, "context.deadline_exceeded", "the operation deadline was exceeded",
			WithDetail(err.Error()))
	case errors.Is(err, context.Canceled):
		return New(category.Canceled, "context.canceled", "the operation was canceled",
			WithDetail(err.Error()))
	default:
		return FromError(err)
	}
}
