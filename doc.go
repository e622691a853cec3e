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

// Package outcome provides a typed alternative to returning bare errors: an
// operation returns either a success payload or a structured failure
// description that survives a trip over JSON or gRPC.
//
// Two immutable types carry results:
//
//   - Outcome: success or failure without a payload;
//   - Result[T]: the same, plus a payload of type T on success.
//
// Both carry a status.Status, informational messages and, on failure, one
// or more errinfo.ErrorInfo values. Errors are authoritative: an outcome
// with any error is a failure whatever its status says.
//
//	r := outcome.Success(42, outcome.WithMessages("All good"))
//	doubled := outcome.Map(r, func(v int) int { return v * 2 })
//
//	failed := outcome.NotFoundOf[User](errinfo.NotFound("user", id))
//	name := outcome.Map(failed, func(u User) string { return u.Name }) // not invoked
//
// Composition (Map, Bind, BindAsync, AndThen, Match) short-circuits on
// failure: later steps are skipped and the original errors are carried over.
//
// Failures are data. Boundaries that must return a Go error convert
// explicitly with AsError or the Err methods; the resulting *Error keeps the
// structured list and FromError turns it back into an Outcome.
package outcome
