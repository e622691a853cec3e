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

// Package category provides parsing, normalization and validation for error
// categories.
//
// A category is the coarse classification of a failure carried by every
// errinfo.ErrorInfo, such as "Validation", "NotFound" or "Timeout". Categories
// are:
//
//   - PascalCase in their canonical form;
//   - stable, because they travel over the wire and drive status resolution;
//   - open: projects may use their own identifiers next to the built-in catalog.
//
// Parsing is forgiving about spelling ("not_found", "NOT-FOUND" and "NotFound"
// are the same category) but the canonical spelling is what gets stored,
// rendered and serialized.
package category
