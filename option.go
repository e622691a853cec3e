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

package outcome

import (
	"dirpx.dev/outcome/apis"
	"dirpx.dev/outcome/mapper"
	"dirpx.dev/outcome/status"
)

// Option configures an outcome under construction.
type Option func(*settings)

type settings struct {
	status    status.Status
	hasStatus bool
	messages  []string
	mapper    apis.Mapper
}

// WithStatus sets the status explicitly. Without it, successes get
// status.OK and failures get the status the mapper resolves for the first
// error, unless that error is a problem document declaring a 4xx or 5xx
// status.
func WithStatus(s status.Status) Option {
	return func(o *settings) {
		o.status = s
		o.hasStatus = true
	}
}

// WithMessages appends informational messages.
func WithMessages(msgs ...string) Option {
	return func(o *settings) { o.messages = append(o.messages, msgs...) }
}

// WithMapper selects the mapper used to derive the status of a failure.
func WithMapper(m apis.Mapper) Option {
	return func(o *settings) { o.mapper = m }
}

func apply(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s settings) statusOr(def status.Status) status.Status {
	if s.hasStatus {
		return s.status
	}
	return def
}

func (s settings) resolver() apis.Mapper {
	if s.mapper != nil {
		return s.mapper
	}
	return mapper.Default()
}
