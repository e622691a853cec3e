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

package status

import "sort"

// 1xx / 2xx / 3xx.
var (
	Continue           = Status{100, "Continue"}
	SwitchingProtocols = Status{101, "Switching Protocols"}
	Processing         = Status{102, "Processing"}

	OK                   = Status{200, "OK"}
	Created              = Status{201, "Created"}
	Accepted             = Status{202, "Accepted"}
	NonAuthoritativeInfo = Status{203, "Non-Authoritative Information"}
	NoContent            = Status{204, "No Content"}
	ResetContent         = Status{205, "Reset Content"}
	PartialContent       = Status{206, "Partial Content"}
	MultiStatus          = Status{207, "Multi-Status"}

	MultipleChoices   = Status{300, "Multiple Choices"}
	MovedPermanently  = Status{301, "Moved Permanently"}
	Found             = Status{302, "Found"}
	SeeOther          = Status{303, "See Other"}
	NotModified       = Status{304, "Not Modified"}
	TemporaryRedirect = Status{307, "Temporary Redirect"}
	PermanentRedirect = Status{308, "Permanent Redirect"}
)

// 4xx.
var (
	BadRequest            = Status{400, "Bad Request"}
	Unauthorized          = Status{401, "Unauthorized"}
	PaymentRequired       = Status{402, "Payment Required"}
	Forbidden             = Status{403, "Forbidden"}
	NotFound              = Status{404, "Not Found"}
	MethodNotAllowed      = Status{405, "Method Not Allowed"}
	NotAcceptable         = Status{406, "Not Acceptable"}
	RequestTimeout        = Status{408, "Request Timeout"}
	Conflict              = Status{409, "Conflict"}
	Gone                  = Status{410, "Gone"}
	PreconditionFailed    = Status{412, "Precondition Failed"}
	RequestEntityTooLarge = Status{413, "Request Entity Too Large"}
	UnsupportedMediaType  = Status{415, "Unsupported Media Type"}
	UnprocessableEntity   = Status{422, "Unprocessable Entity"}
	Locked                = Status{423, "Locked"}
	TooEarly              = Status{425, "Too Early"}
	PreconditionRequired  = Status{428, "Precondition Required"}
	TooManyRequests       = Status{429, "Too Many Requests"}
	ClientClosedRequest   = Status{499, "Client Closed Request"}
)

// 5xx.
var (
	InternalServerError = Status{500, "Internal Server Error"}
	NotImplemented      = Status{501, "Not Implemented"}
	BadGateway          = Status{502, "Bad Gateway"}
	ServiceUnavailable  = Status{503, "Service Unavailable"}
	GatewayTimeout      = Status{504, "Gateway Timeout"}
	InsufficientStorage = Status{507, "Insufficient Storage"}

	// Error is the canonical failure status used when nothing more specific
	// is known: generic Go errors and unreadable wire statuses end up here.
	Error = InternalServerError
)

var catalog = []Status{
	Continue, SwitchingProtocols, Processing,
	OK, Created, Accepted, NonAuthoritativeInfo, NoContent, ResetContent, PartialContent, MultiStatus,
	MultipleChoices, MovedPermanently, Found, SeeOther, NotModified, TemporaryRedirect, PermanentRedirect,
	BadRequest, Unauthorized, PaymentRequired, Forbidden, NotFound, MethodNotAllowed, NotAcceptable,
	RequestTimeout, Conflict, Gone, PreconditionFailed, RequestEntityTooLarge, UnsupportedMediaType,
	UnprocessableEntity, Locked, TooEarly, PreconditionRequired, TooManyRequests, ClientClosedRequest,
	InternalServerError, NotImplemented, BadGateway, ServiceUnavailable, GatewayTimeout, InsufficientStorage,
}

var catalogText = func() map[int]string {
	m := make(map[int]string, len(catalog))
	for _, s := range catalog {
		m[s.Code] = s.Description
	}
	return m
}()

// Text returns the catalog description for code, or "" if the code is not
// part of the built-in catalog. Custom codes live in a Registry.
func Text(code int) string {
	return catalogText[code]
}

// Catalog returns the built-in statuses ordered by code.
func Catalog() []Status {
	out := make([]Status, len(catalog))
	copy(out, catalog)
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
