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

// ViewProvider is implemented by values that can produce a flat snapshot of
// themselves. Both outcome.Outcome and outcome.Result[T] implement it.
type ViewProvider interface {
	View() View
}

// View is a minimal, log-friendly snapshot of an outcome. It never carries
// the payload of a generic outcome.
type View struct {
	// Success mirrors Outcome.IsSuccess.
	Success bool `json:"success"`

	// Status is the numeric status code.
	Status int `json:"status"`

	// StatusDescription is the status text, possibly empty.
	StatusDescription string `json:"statusDescription,omitempty"`

	// Messages are the informational messages.
	Messages []string `json:"messages,omitempty"`

	// Errors are the flattened errors. Empty on success.
	Errors []ErrorDescriptor `json:"errors,omitempty"`
}
