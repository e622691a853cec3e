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

// Package apis defines the public Go-level contracts shared by the outcome
// packages.
//
// Callers that only need to inspect an outcome (loggers, transports, the
// JSON codec) should depend on these interfaces rather than on the concrete
// outcome.Outcome and outcome.Result[T] types.
//
// The package also holds the hooks that let the codec rebuild a generic
// Result[T] without knowing T: every instantiation implements Payload on the
// value type and Restorer on the pointer type, so the compiler generates the
// type-specific code and no reflection over T is needed.
//
// This package must remain lightweight: interfaces and very small view types
// only.
package apis
