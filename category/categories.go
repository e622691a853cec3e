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

package category

// Input and request shape.
const (
	// Validation indicates that input violates a structural or semantic rule.
	// Aggregated field failures are nested as inner errors under one
	// Validation umbrella.
	//
	// Default status: 400 Bad Request.
	Validation Category = "Validation"

	// BadRequest indicates a malformed request that is not about a specific
	// field (unreadable body, unsupported combination of parameters).
	//
	// Default status: 400 Bad Request.
	BadRequest Category = "BadRequest"

	// Unprocessable indicates well-formed input that cannot be processed in
	// the current state of the target.
	//
	// Default status: 422 Unprocessable Entity.
	Unprocessable Category = "Unprocessable"

	// ProblemDetails marks an error imported from an RFC 7807 problem
	// document; the original fields are kept in metadata.
	//
	// Default status: 400 Bad Request.
	ProblemDetails Category = "ProblemDetails"
)

// Resource state.
const (
	// NotFound indicates that the target resource does not exist or is not
	// visible to the caller.
	//
	// Default status: 404 Not Found.
	NotFound Category = "NotFound"

	// Conflict indicates that the operation clashes with the current state of
	// the resource (duplicate key, already exists).
	//
	// Default status: 409 Conflict.
	Conflict Category = "Conflict"

	// Concurrency indicates an optimistic concurrency failure: the resource
	// changed between read and write.
	//
	// Default status: 409 Conflict.
	Concurrency Category = "Concurrency"
)

// Identity.
const (
	// Authentication indicates missing or invalid credentials.
	//
	// Default status: 401 Unauthorized.
	Authentication Category = "Authentication"

	// Authorization indicates an authenticated caller without permission.
	//
	// Default status: 403 Forbidden.
	Authorization Category = "Authorization"
)

// Infrastructure and runtime.
const (
	// Database indicates a failure in the persistence layer.
	//
	// Default status: 500 Internal Server Error.
	Database Category = "Database"

	// Network indicates a transport-level failure talking to a dependency.
	//
	// Default status: 503 Service Unavailable.
	Network Category = "Network"

	// Timeout indicates that the operation exceeded its time budget.
	//
	// Default status: 408 Request Timeout.
	Timeout Category = "Timeout"

	// Canceled indicates that the caller abandoned the operation.
	//
	// Default status: 499 Client Closed Request.
	Canceled Category = "Canceled"

	// ServiceUnavailable indicates that the service or a dependency is
	// temporarily unable to serve.
	//
	// Default status: 503 Service Unavailable.
	ServiceUnavailable Category = "ServiceUnavailable"

	// Dependency indicates that a reachable dependency answered with a
	// failure that makes continuing impossible.
	//
	// Default status: 502 Bad Gateway.
	Dependency Category = "Dependency"

	// RateLimit indicates that the caller exceeded a rate limit or quota.
	//
	// Default status: 429 Too Many Requests.
	RateLimit Category = "RateLimit"
)

// Catch-all.
const (
	// InternalServerError indicates an unexpected server-side failure.
	//
	// Default status: 500 Internal Server Error.
	InternalServerError Category = "InternalServerError"

	// Exception marks an ErrorInfo converted from a Go error; message, type
	// and stack trace are stored in metadata.
	//
	// Default status: 500 Internal Server Error.
	Exception Category = "Exception"

	// General is the fallback when nothing more specific applies.
	//
	// Default status: 500 Internal Server Error.
	General Category = "General"
)

var catalog = []Category{
	Validation, BadRequest, Unprocessable, ProblemDetails,
	NotFound, Conflict, Concurrency,
	Authentication, Authorization,
	Database, Network, Timeout, Canceled, ServiceUnavailable, Dependency, RateLimit,
	InternalServerError, Exception, General,
}
