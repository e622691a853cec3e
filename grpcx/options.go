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

package grpcx

import (
	"github.com/go-logr/logr"

	"dirpx.dev/outcome/apis"
	"dirpx.dev/outcome/codec"
	"dirpx.dev/outcome/mapper"
)

// Option configures conversions and interceptors.
type Option func(*config)

type config struct {
	log    logr.Logger
	codec  *codec.Codec
	mapper apis.Mapper
}

func newConfig(opts []Option) config {
	c := config{log: logr.Discard()}
	for _, opt := range opts {
		opt(&c)
	}
	if c.codec == nil {
		c.codec = codec.Default()
	}
	if c.mapper == nil {
		c.mapper = mapper.Default()
	}
	return c
}

// WithLogger sets the logger. Conversions are logged at verbosity 1,
// detail encoding problems as errors.
func WithLogger(l logr.Logger) Option {
	return func(c *config) { c.log = l }
}

// WithCodec sets the codec used for the Struct detail. It defaults to
// codec.Default().
func WithCodec(cd *codec.Codec) Option {
	return func(c *config) { c.codec = cd }
}

// WithMapper sets the mapper used when rebuilding outcomes from statuses
// that only carry ErrorInfo details. It defaults to mapper.Default().
func WithMapper(m apis.Mapper) Option {
	return func(c *config) { c.mapper = m }
}
