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
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	"github.com/go-logr/logr"
	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"

	"dirpx.dev/outcome"
	"dirpx.dev/outcome/apis"
	"dirpx.dev/outcome/status"
)

// Kind tells how the Bridge handles a type.
type Kind uint8

const (
	// KindNone marks types outside the outcome family. The Bridge declines
	// them.
	KindNone Kind = iota

	// KindOutcome is a concrete outcome without payload, e.g. outcome.Outcome.
	KindOutcome

	// KindResult is a concrete generic outcome, e.g. outcome.Result[T].
	KindResult

	// KindView is the apis.Outcome interface.
	KindView

	// KindResultView is a generic interface view registered with
	// RegisterView.
	KindResultView
)

func (k Kind) String() string {
	switch k {
	case KindOutcome:
		return "outcome"
	case KindResult:
		return "result"
	case KindView:
		return "view"
	case KindResultView:
		return "result-view"
	default:
		return "none"
	}
}

var (
	outcomeType  = reflect.TypeOf((*apis.Outcome)(nil)).Elem()
	payloadType  = reflect.TypeOf((*apis.Payload)(nil)).Elem()
	restorerType = reflect.TypeOf((*apis.Restorer)(nil)).Elem()
)

// Bridge is the jsoniter Extension that teaches a jsoniter configuration
// how to encode and decode outcomes. It is safe for concurrent use.
//
// Most callers use a Codec, which owns a configuration with a Bridge
// already registered. To embed outcomes in documents handled by an existing
// configuration, register a Bridge with it:
//
//	api := jsoniter.Config{SortMapKeys: true}.Froze()
//	api.RegisterExtension(codec.NewBridge())
type Bridge struct {
	jsoniter.DummyExtension

	naming       Naming
	names        names
	registry     *status.Registry
	log          logr.Logger
	errorMessage bool

	kinds sync.Map // reflect.Type -> Kind
	views sync.Map // reflect.Type -> func() apis.Restorer
}

// NewBridge returns a Bridge configured by opts.
func NewBridge(opts ...Option) *Bridge {
	b := &Bridge{
		naming:       CamelCase,
		log:          logr.Discard(),
		errorMessage: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.names = newNames(b.naming)
	b.views.Store(outcomeType, func() apis.Restorer { return new(outcome.Outcome) })
	return b
}

// RegisterView makes fields of type apis.ResultView[T] decodable: they are
// filled with an outcome.Result[T]. Register views before the configuration
// first meets the type, jsoniter caches its codecs per type.
func RegisterView[T any](b *Bridge) {
	t := reflect.TypeOf((*apis.ResultView[T])(nil)).Elem()
	b.views.Store(t, func() apis.Restorer { return new(outcome.Result[T]) })
	b.kinds.Store(t, KindResultView)
}

// Recognize classifies t. Results are cached per type.
//
// A struct type belongs to the family when its values implement
// apis.Outcome and its pointers implement apis.Restorer, without inheriting
// them from an embedded field. It is generic when its values also implement
// apis.Payload. Pointer types are declined so that jsoniter keeps handling
// nil pointers itself.
func (b *Bridge) Recognize(t reflect.Type) Kind {
	if t == nil {
		return KindNone
	}
	if k, ok := b.kinds.Load(t); ok {
		return k.(Kind)
	}
	k := b.classify(t)
	b.kinds.Store(t, k)
	return k
}

func (b *Bridge) classify(t reflect.Type) Kind {
	switch t.Kind() {
	case reflect.Interface:
		if t == outcomeType {
			return KindView
		}
		if _, ok := b.views.Load(t); ok {
			return KindResultView
		}
	case reflect.Struct:
		if !t.Implements(outcomeType) || !reflect.PointerTo(t).Implements(restorerType) || promotes(t) {
			return KindNone
		}
		if t.Implements(payloadType) {
			return KindResult
		}
		return KindOutcome
	}
	return KindNone
}

// promotes reports whether t only gets its outcome methods from an embedded
// field. Such wrappers carry fields of their own and stay plain structs.
func promotes(t reflect.Type) bool {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && (f.Type.Implements(restorerType) || reflect.PointerTo(f.Type).Implements(restorerType)) {
			return true
		}
	}
	return false
}

// CreateEncoder implements jsoniter.Extension.
func (b *Bridge) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	t := typ.Type1()
	switch b.Recognize(t) {
	case KindOutcome, KindResult:
		return &outcomeEncoder{b: b, typ: t}
	case KindView, KindResultView:
		return &viewEncoder{b: b, typ: t}
	}
	return nil
}

// CreateDecoder implements jsoniter.Extension.
func (b *Bridge) CreateDecoder(typ reflect2.Type) jsoniter.ValDecoder {
	t := typ.Type1()
	switch b.Recognize(t) {
	case KindOutcome, KindResult:
		return &outcomeDecoder{b: b, typ: t}
	case KindView, KindResultView:
		f, ok := b.views.Load(t)
		if !ok {
			return nil
		}
		return &viewDecoder{b: b, typ: t, newTarget: f.(func() apis.Restorer)}
	}
	return nil
}

type outcomeEncoder struct {
	b   *Bridge
	typ reflect.Type
}

func (e *outcomeEncoder) IsEmpty(unsafe.Pointer) bool { return false }

func (e *outcomeEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	o := reflect.NewAt(e.typ, ptr).Elem().Interface().(apis.Outcome)
	e.b.write(o, stream)
}

type viewEncoder struct {
	b   *Bridge
	typ reflect.Type
}

func (e *viewEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	return reflect.NewAt(e.typ, ptr).Elem().IsNil()
}

func (e *viewEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	v := reflect.NewAt(e.typ, ptr).Elem()
	if v.IsNil() {
		stream.WriteNil()
		return
	}
	dyn := v.Elem()
	for dyn.Kind() == reflect.Pointer {
		if dyn.IsNil() {
			stream.WriteNil()
			return
		}
		dyn = dyn.Elem()
	}
	if e.b.Recognize(dyn.Type()) == KindNone {
		// Foreign implementations are written through the view.
		e.b.write(v.Interface().(apis.Outcome), stream)
		return
	}
	stream.WriteVal(v.Interface())
}

type outcomeDecoder struct {
	b   *Bridge
	typ reflect.Type
}

func (d *outcomeDecoder) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	target := reflect.NewAt(d.typ, ptr)
	if iter.WhatIsNext() == jsoniter.NilValue {
		iter.ReadNil()
		target.Elem().SetZero()
		return
	}
	d.b.read(iter, target.Interface().(apis.Restorer), d.typ)
}

type viewDecoder struct {
	b         *Bridge
	typ       reflect.Type
	newTarget func() apis.Restorer
}

func (d *viewDecoder) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	slot := reflect.NewAt(d.typ, ptr).Elem()
	if iter.WhatIsNext() == jsoniter.NilValue {
		iter.ReadNil()
		slot.SetZero()
		return
	}
	target := d.newTarget()
	if !d.b.read(iter, target, d.typ) {
		return
	}
	v := reflect.ValueOf(target).Elem()
	if !v.Type().AssignableTo(d.typ) {
		iter.ReportError("codec.Decode", fmt.Sprintf("%s does not implement %s", v.Type(), d.typ))
		return
	}
	slot.Set(v)
}
