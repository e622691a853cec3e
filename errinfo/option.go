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

package errinfo

// Option is a functional option for constructing an ErrorInfo.
// It takes an ErrorInfo and returns the transformed copy.
type Option func(ErrorInfo) ErrorInfo

// WithDetail sets the detail on the error being constructed.
func WithDetail(detail string) Option {
	return func(e ErrorInfo) ErrorInfo {
		return e.WithDetail(detail)
	}
}

// WithMetadata adds a single metadata key/value on construction.
func WithMetadata(k string, v any) Option {
	return func(e ErrorInfo) ErrorInfo {
		return e.WithMeta(k, v)
	}
}

// WithMetadataMap merges kv into the metadata on construction.
func WithMetadataMap(kv map[string]any) Option {
	return func(e ErrorInfo) ErrorInfo {
		return e.WithMetaMap(kv)
	}
}

// WithInner nests errs under the error being constructed.
func WithInner(errs ...ErrorInfo) Option {
	return func(e ErrorInfo) ErrorInfo {
		return e.WithInnerErrors(errs...)
	}
}
