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

// Package mapper provides deterministic, immutable mappings from error
// categories (dirpx.dev/outcome/category) and optional error codes to the
// status attached to a failed outcome and to the gRPC code used at the
// transport boundary.
//
// # Overview
//
// A failure is classified in two parts:
//
//  1. a coarse Category (category.NotFound, category.Validation, ...);
//  2. an optional, more specific error code ("storage.pg.connect_timeout").
//
// When an outcome is built without an explicit status, or exposed over gRPC,
// this pair is turned into concrete codes. A Mapper does that in a way that
// is:
//
//   - immutable: a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable: callers can change library defaults per Category;
//   - prefix-aware: callers can add fine-grained rules for specific codes;
//   - dual: outcome status and gRPC code are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the Category;
//  2. per-Category longest-prefix-match on the error code;
//  3. per-Category default (library or user-adjusted);
//  4. global fallback (500 Internal Server Error / codes.Internal).
//
// Error codes are normalized with errcode.Normalize before matching, so
// "Storage/PG" and "storage.pg" are the same key. Prefix rules are
// segment-aware and "*" matches exactly one segment:
//
//	WithStatusPrefix(category.Database, "storage.pg", 503)
//	WithStatusPrefix(category.Database, "storage.*.connect", 503)
//
// The more specific prefix wins.
//
// # Building a mapper
//
//	m, err := mapper.New(
//	    mapper.WithStatusOverride(category.Canceled, 408),
//	    mapper.WithStatusPrefix(category.Database, "storage.pg", 503),
//	)
//	if err != nil {
//	    // invalid prefix, etc.
//	}
//
//	st := m.Status(category.Database, "storage.pg.connect_timeout")
//	// st.Outcome == status.ServiceUnavailable, st.GRPC == codes.Internal
//
// Default returns a shared Mapper holding only the library defaults.
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a (category, code)
// pair was resolved, including which tier matched and, for prefixes, which
// pattern was used. It is meant for logs and tests, not for parsing.
package mapper
