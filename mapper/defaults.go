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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/outcome/category"
)

// statusClientClosedRequest is the nginx-style code for requests the caller
// gave up on.
const statusClientClosedRequest = 499

// defaultStatus defines the built-in outcome statuses per category.
var defaultStatus = map[category.Category]int{
	// Input.
	category.Validation:     http.StatusBadRequest,
	category.BadRequest:     http.StatusBadRequest,
	category.ProblemDetails: http.StatusBadRequest,
	category.Unprocessable:  http.StatusUnprocessableEntity,

	// Resource state.
	category.NotFound:    http.StatusNotFound,
	category.Conflict:    http.StatusConflict,
	category.Concurrency: http.StatusConflict,

	// Identity.
	category.Authentication: http.StatusUnauthorized,
	category.Authorization:  http.StatusForbidden,

	// Time, load and availability.
	category.Timeout:            http.StatusRequestTimeout,
	category.Canceled:           statusClientClosedRequest,
	category.RateLimit:          http.StatusTooManyRequests,
	category.ServiceUnavailable: http.StatusServiceUnavailable,
	category.Network:            http.StatusServiceUnavailable,
	category.Dependency:         http.StatusBadGateway,

	// Server side.
	category.Database:            http.StatusInternalServerError,
	category.Exception:           http.StatusInternalServerError,
	category.InternalServerError: http.StatusInternalServerError,
	category.General:             http.StatusInternalServerError,
}

// defaultGRPC defines the built-in gRPC codes per category.
var defaultGRPC = map[category.Category]codes.Code{
	category.Validation:     codes.InvalidArgument,
	category.BadRequest:     codes.InvalidArgument,
	category.ProblemDetails: codes.InvalidArgument,
	category.Unprocessable:  codes.FailedPrecondition,

	category.NotFound:    codes.NotFound,
	category.Conflict:    codes.AlreadyExists,
	category.Concurrency: codes.Aborted, // optimistic lock failures are retried by clients

	category.Authentication: codes.Unauthenticated,
	category.Authorization:  codes.PermissionDenied,

	category.Timeout:            codes.DeadlineExceeded,
	category.Canceled:           codes.Canceled,
	category.RateLimit:          codes.ResourceExhausted,
	category.ServiceUnavailable: codes.Unavailable,
	category.Network:            codes.Unavailable,
	category.Dependency:         codes.Unavailable,

	category.Database:            codes.Internal,
	category.Exception:           codes.Internal,
	category.InternalServerError: codes.Internal,
	category.General:             codes.Internal,
}
