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

package mapper

import (
	"google.golang.org/grpc/codes"

	"dirpx.dev/outcome/category"
	"dirpx.dev/outcome/status"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithStatusDefault sets or replaces the default outcome status code for
// the category.
func WithStatusDefault(c category.Category, code int) Option {
	return func(b *builder) { b.statusDefaults[c] = code }
}

// WithGRPCDefault sets or replaces the default gRPC code for the category.
func WithGRPCDefault(c category.Category, code codes.Code) Option {
	return func(b *builder) { b.grpcDefaults[c] = code }
}

// WithStatusOverride registers an exact status for the category. Overrides
// take precedence over prefix rules and defaults.
func WithStatusOverride(c category.Category, code int) Option {
	return func(b *builder) { b.statusOverride[c] = code }
}

// WithGRPCOverride registers an exact gRPC code for the category.
func WithGRPCOverride(c category.Category, code codes.Code) Option {
	return func(b *builder) { b.grpcOverride[c] = code }
}

// WithStatusPrefix adds a longest-prefix-match rule on the error code for
// the category. Use "*" to match a single segment.
func WithStatusPrefix(c category.Category, prefix string, code int) Option {
	return func(b *builder) {
		b.statusPrefixes[c] = append(b.statusPrefixes[c], prefixRule[int]{prefix, code})
	}
}

// WithGRPCPrefix adds a longest-prefix-match rule on the error code for the
// category, resolving the gRPC code.
func WithGRPCPrefix(c category.Category, prefix string, code codes.Code) Option {
	return func(b *builder) {
		b.grpcPrefixes[c] = append(b.grpcPrefixes[c], prefixRule[codes.Code]{prefix, code})
	}
}

// WithFallback replaces the global fallback used for categories without any
// rule.
func WithFallback(code int, grpc codes.Code) Option {
	return func(b *builder) {
		b.fallbackStatus = code
		b.fallbackGRPC = grpc
	}
}

// WithRegistry makes the Mapper describe resolved codes from r, so that
// custom codes registered at startup carry their descriptions. Codes missing
// from r fall back to the built-in catalog.
func WithRegistry(r *status.Registry) Option {
	return func(b *builder) { b.registry = r }
}
