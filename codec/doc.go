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

// Package codec serializes outcomes to and from JSON.
//
// The payload type of an outcome.Result[T] is only known at the call site,
// so the codec cannot be a plain set of struct tags. Instead it plugs a
// Bridge into a github.com/json-iterator/go configuration. The Bridge is a
// jsoniter Extension: whenever the pipeline meets a type it asks the Bridge
// whether the type belongs to the outcome family and, if so, uses the
// Bridge's encoder and decoder for it. Every Result[T] instantiation
// implements apis.Payload and apis.Restorer, so the Bridge never reflects
// over T itself; the payload is decoded by the instantiation into its own T.
//
// # Wire format
//
//	{
//	  "isSuccess": false,
//	  "isFailure": true,
//	  "status": {"code": 400, "description": "Bad Request"},
//	  "messages": ["..."],
//	  "errors": [{"category": "Validation", "code": "VAL", "message": "bad",
//	              "detail": "...", "metadata": {...}, "innerErrors": [...]}],
//	  "errorMessage": "bad",
//	  "value": ...
//	}
//
// messages is written only when non-empty. errors and errorMessage are
// written only for failures, value only for successful generic outcomes
// (null is a valid value). The casing of field names follows the Naming
// option; decoding accepts any casing.
//
// # Decoding
//
// Decoding never fails on missing or malformed fields:
//
//   - a missing or invalid status becomes status.Error and an extra error
//     with code "deserialization.status_invalid" is appended;
//   - a missing status description is looked up in the Registry;
//   - the isSuccess and isFailure flags are reconciled with the error list,
//     and a non-empty list always wins;
//   - a failure without errors receives an error with code
//     "deserialization.errors_missing";
//   - value is decoded only for successes, an absent value leaves the zero
//     value of T.
//
// A document that is not a JSON object (a bare string, a number) is a
// structural error and is returned to the caller. A JSON null decodes into
// a nil pointer or nil interface.
//
// # Interface views
//
// Fields of type apis.Outcome are handled out of the box and decode into an
// outcome.Outcome. Generic views need registration before first use:
//
//	c := codec.New()
//	codec.RegisterView[User](c.Bridge())
//	// fields of type apis.ResultView[User] now decode into outcome.Result[User]
package codec
