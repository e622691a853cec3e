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

package status

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is a concurrency-safe catalog of statuses keyed by code.
//
// A Registry is created explicitly (usually once at startup) and handed to
// the components that need it, such as the codec. It starts with the built-in
// catalog; custom codes are added with Register. Registering an existing code
// replaces its description: the last write wins.
type Registry struct {
	mu    sync.RWMutex
	codes map[int]Status
}

// NewRegistry returns a Registry seeded with the built-in catalog.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Reset()
	return r
}

// Register adds or replaces s. Codes must be positive.
func (r *Registry) Register(s Status) error {
	if s.Code <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCode, s.Code)
	}
	r.mu.Lock()
	r.codes[s.Code] = s
	r.mu.Unlock()
	return nil
}

// MustRegister is the panic-on-error variant of Register, handy in init code.
func (r *Registry) MustRegister(s Status) {
	if err := r.Register(s); err != nil {
		panic(err)
	}
}

// Lookup returns the status registered for code.
func (r *Registry) Lookup(code int) (Status, bool) {
	r.mu.RLock()
	s, ok := r.codes[code]
	r.mu.RUnlock()
	return s, ok
}

// Resolve returns the registered status for code, or a Status carrying only
// the code when nothing is registered.
func (r *Registry) Resolve(code int) Status {
	if s, ok := r.Lookup(code); ok {
		return s
	}
	return Status{Code: code}
}

// Describe returns the registered description for code, or fallback.
func (r *Registry) Describe(code int, fallback string) string {
	if s, ok := r.Lookup(code); ok && s.Description != "" {
		return s.Description
	}
	return fallback
}

// All returns every registered status ordered by code.
func (r *Registry) All() []Status {
	r.mu.RLock()
	out := make([]Status, 0, len(r.codes))
	for _, s := range r.codes {
		out = append(out, s)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Len returns the number of registered statuses.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.codes)
}

// Reset drops custom registrations and restores the built-in catalog.
func (r *Registry) Reset() {
	m := make(map[int]Status, len(catalog))
	for _, s := range catalog {
		m[s.Code] = s
	}
	r.mu.Lock()
	r.codes = m
	r.mu.Unlock()
}
