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
	"errors"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
)

// ErrIndentUnsupported is returned by MarshalIndent for a non-empty prefix
// or an indent that is not made of spaces.
var ErrIndentUnsupported = errors.New("codec: only space indentation without prefix is supported")

// Codec is a JSON pipeline with a Bridge registered. It handles any value
// jsoniter handles, and outcomes anywhere inside it.
type Codec struct {
	api    jsoniter.API
	bridge *Bridge

	// indented holds one pipeline per indentation width, keyed by int.
	indented sync.Map
}

// New returns a Codec whose Bridge is configured by opts. Map keys are
// written sorted, which keeps the output deterministic.
func New(opts ...Option) *Codec {
	b := NewBridge(opts...)
	return &Codec{api: freeze(b, 0), bridge: b}
}

func freeze(b *Bridge, indent int) jsoniter.API {
	api := jsoniter.Config{
		EscapeHTML:             true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
		IndentionStep:          indent,
	}.Froze()
	api.RegisterExtension(b)
	return api
}

var defaultCodec = sync.OnceValue(func() *Codec { return New() })

// Default returns the shared Codec with default options.
func Default() *Codec { return defaultCodec() }

// Marshal encodes v.
func (c *Codec) Marshal(v any) ([]byte, error) { return c.api.Marshal(v) }

// Unmarshal decodes data into v, which must be a non-nil pointer.
func (c *Codec) Unmarshal(data []byte, v any) error { return c.api.Unmarshal(data, v) }

// MarshalIndent encodes v with each nesting level indented by indent, which
// must consist of spaces. prefix must be empty.
func (c *Codec) MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	if prefix != "" || strings.Trim(indent, " ") != "" {
		return nil, ErrIndentUnsupported
	}
	if indent == "" {
		return c.api.Marshal(v)
	}
	api, ok := c.indented.Load(len(indent))
	if !ok {
		api, _ = c.indented.LoadOrStore(len(indent), freeze(c.bridge, len(indent)))
	}
	return api.(jsoniter.API).Marshal(v)
}

// API exposes the underlying jsoniter configuration, e.g. for streaming
// encoders and decoders.
//
// Do not call MarshalIndent on the returned API: jsoniter derives the
// indented configuration from a process-wide cache keyed by options, so it
// may encode through the Bridge of another Codec. Use Codec.MarshalIndent.
func (c *Codec) API() jsoniter.API { return c.api }

// Bridge returns the registered Bridge.
func (c *Codec) Bridge() *Bridge { return c.bridge }

// Marshal encodes v with the default Codec.
func Marshal(v any) ([]byte, error) { return Default().Marshal(v) }

// Unmarshal decodes data into v with the default Codec.
func Unmarshal(data []byte, v any) error { return Default().Unmarshal(data, v) }
