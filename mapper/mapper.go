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
	"fmt"
	"strings"
	"sync"

	"google.golang.org/grpc/codes"

	"dirpx.dev/outcome/apis"
	"dirpx.dev/outcome/category"
	"dirpx.dev/outcome/mapper/internal/segmenttrie"
	"dirpx.dev/outcome/status"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process:
//
//  1. Seed the builder with library defaults (status and gRPC).
//  2. Apply user-provided options (defaults, overrides, prefix rules).
//  3. Normalize and validate all code prefixes (via errcode.Normalize).
//  4. Build per-category segment tries supporting longest-prefix-match
//     with '*' as a single-segment wildcard.
//  5. Freeze all maps and tries into fresh allocations.
//
// Errors returned from this function indicate invalid prefixes.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for k, v := range defaultStatus {
		b.statusDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = v
	}

	for _, opt := range opts {
		opt(b)
	}

	statusTrie, err := buildTries("status", b.statusPrefixes)
	if err != nil {
		return nil, err
	}
	grpcTrie, err := buildTries("gRPC", b.grpcPrefixes)
	if err != nil {
		return nil, err
	}

	return &mapper{
		statusDefault:  freeze(b.statusDefaults),
		grpcDefault:    freeze(b.grpcDefaults),
		statusOverride: freeze(b.statusOverride),
		grpcOverride:   freeze(b.grpcOverride),
		statusTrie:     statusTrie,
		grpcTrie:       grpcTrie,
		fallbackStatus: b.fallbackStatus,
		fallbackGRPC:   b.fallbackGRPC,
		registry:       b.registry,
	}, nil
}

// MustNew is the panic-on-error variant of New.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

var defaultMapper = sync.OnceValue(func() apis.Mapper { return MustNew() })

// Default returns the shared Mapper built from library defaults only.
func Default() apis.Mapper {
	return defaultMapper()
}

// mapper combines per-category defaults, exact overrides and segment-aware
// prefix tries on error codes. Lookups are O(depth) and safe for concurrent
// use once constructed.
type mapper struct {
	statusDefault map[category.Category]int
	grpcDefault   map[category.Category]codes.Code

	statusOverride map[category.Category]int
	grpcOverride   map[category.Category]codes.Code

	statusTrie map[category.Category]*segmenttrie.Trie[int]
	grpcTrie   map[category.Category]*segmenttrie.Trie[codes.Code]

	fallbackStatus int
	fallbackGRPC   codes.Code

	registry *status.Registry
}

// OutcomeStatus resolves the outcome status for the category and code.
//
// Resolution order:
//  1. exact per-category override;
//  2. per-category longest-prefix-match on the code;
//  3. per-category default;
//  4. global fallback (500).
func (m *mapper) OutcomeStatus(c category.Category, code string) status.Status {
	v, _, _ := m.resolveStatus(c, canonicalCode(code))
	return m.describe(v)
}

// GRPCStatus resolves the gRPC code with the same precedence as
// OutcomeStatus.
func (m *mapper) GRPCStatus(c category.Category, code string) codes.Code {
	v, _, _ := m.resolveGRPC(c, canonicalCode(code))
	return v
}

// Status resolves both using the same inputs.
func (m *mapper) Status(c category.Category, code string) apis.Status {
	key := canonicalCode(code)
	s, _, _ := m.resolveStatus(c, key)
	g, _, _ := m.resolveGRPC(c, key)
	return apis.Status{Outcome: m.describe(s), GRPC: g}
}

// Explain produces a textual trace of the resolution:
//
//	category="Database" code="storage.pg.connect_timeout"
//	status: source=prefix pattern="storage.pg" -> 503 Service Unavailable
//	grpc: source=default -> Internal(13)
//
// source is one of override, prefix, default or fallback.
func (m *mapper) Explain(c category.Category, code string) string {
	key := canonicalCode(code)
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "category=%q code=%q\n", c, code)

	s, src, pat := m.resolveStatus(c, key)
	_, _ = fmt.Fprintf(&b, "status: %s -> %s\n", sourceLabel(src, pat), m.describe(s))

	g, src, pat := m.resolveGRPC(c, key)
	_, _ = fmt.Fprintf(&b, "grpc: %s -> %s(%d)", sourceLabel(src, pat), g, int(g))
	return b.String()
}

func (m *mapper) resolveStatus(c category.Category, key string) (v int, source, pattern string) {
	if v, ok := m.statusOverride[c]; ok {
		return v, "override", ""
	}
	if t := m.statusTrie[c]; t != nil {
		if v, ok, pat := t.MatchWithPattern(key); ok {
			return v, "prefix", pat
		}
	}
	if v, ok := m.statusDefault[c]; ok {
		return v, "default", ""
	}
	return m.fallbackStatus, "fallback", ""
}

func (m *mapper) resolveGRPC(c category.Category, key string) (v codes.Code, source, pattern string) {
	if v, ok := m.grpcOverride[c]; ok {
		return v, "override", ""
	}
	if t := m.grpcTrie[c]; t != nil {
		if v, ok, pat := t.MatchWithPattern(key); ok {
			return v, "prefix", pat
		}
	}
	if v, ok := m.grpcDefault[c]; ok {
		return v, "default", ""
	}
	return m.fallbackGRPC, "fallback", ""
}

// describe attaches a description to a resolved code, preferring the
// injected registry over the built-in catalog.
func (m *mapper) describe(code int) status.Status {
	text := status.Text(code)
	if m.registry != nil {
		text = m.registry.Describe(code, text)
	}
	return status.New(code, text)
}

func sourceLabel(source, pattern string) string {
	if pattern == "" {
		return "source=" + source
	}
	return fmt.Sprintf("source=%s pattern=%q", source, pattern)
}
