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

package apis

import (
	"google.golang.org/grpc/codes"

	"dirpx.dev/outcome/category"
	"dirpx.dev/outcome/status"
)

// Mapper is an immutable, concurrency-safe view of the mapping rules.
// It resolves an error category (and optionally an error code) into the
// outcome status and the gRPC code used at transport boundaries.
type Mapper interface {
	// OutcomeStatus returns the status for the given category and code.
	// If no code-specific rule exists, the mapper must fall back to the
	// category-level rule.
	OutcomeStatus(c category.Category, code string) status.Status

	// GRPCStatus returns the gRPC code for the given category and code.
	// If no code-specific rule exists, the mapper must fall back to the
	// category-level rule.
	GRPCStatus(c category.Category, code string) codes.Code

	// Status resolves both in a single call, using the same matching logic.
	Status(c category.Category, code string) Status

	// Explain returns a human-readable description of which rule matched.
	Explain(c category.Category, code string) string
}

// Status represents a resolved pair of statuses for a single error.
type Status struct {
	Outcome status.Status // Status attached to the failed outcome.
	GRPC    codes.Code    // Resolved gRPC status code.
}
