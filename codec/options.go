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

package codec

import (
	"github.com/go-logr/logr"

	"dirpx.dev/outcome/status"
)

// Option configures a Bridge, and through it a Codec.
type Option func(*Bridge)

// WithNaming sets the casing policy of written field names. A nil n keeps
// CamelCase.
func WithNaming(n Naming) Option {
	return func(b *Bridge) {
		if n != nil {
			b.naming = n
		}
	}
}

// WithRegistry sets the Registry used to fill in missing status
// descriptions while decoding. Without it the built-in catalog is used.
func WithRegistry(r *status.Registry) Option {
	return func(b *Bridge) { b.registry = r }
}

// WithLogger sets the logger used to report recoveries from incomplete
// documents, at verbosity 1. The default discards everything.
func WithLogger(l logr.Logger) Option {
	return func(b *Bridge) { b.log = l }
}

// WithErrorMessageField toggles the flattened "errorMessage" field written
// for failures. It is on by default.
func WithErrorMessageField(on bool) Option {
	return func(b *Bridge) { b.errorMessage = on }
}
