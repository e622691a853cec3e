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

// ErrorDescriptor is a flat, transport-friendly description of one
// errinfo.ErrorInfo.
//
// It uses plain strings so that it can live in the public "apis" layer and
// be used by log adapters and by the gRPC boundary. Metadata values are
// rendered with fmt's %v verb.
type ErrorDescriptor struct {
	// Category is the canonical category name, e.g. "Validation".
	Category string `json:"category"`

	// Code is the error code as carried by the ErrorInfo.
	Code string `json:"code"`

	// Message is the human-readable description.
	Message string `json:"message"`

	// Detail is the optional longer explanation.
	Detail string `json:"detail,omitempty"`

	// Metadata holds the stringified metadata entries.
	Metadata map[string]string `json:"metadata,omitempty"`

	// Inner holds the nested errors, flattened the same way.
	Inner []ErrorDescriptor `json:"innerErrors,omitempty"`
}
