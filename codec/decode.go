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
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"dirpx.dev/outcome/apis"
	"dirpx.dev/outcome/category"
	"dirpx.dev/outcome/errinfo"
	"dirpx.dev/outcome/status"
)

// Codes of the errors synthesized while decoding incomplete documents.
const (
	CodeStatusInvalid = "deserialization.status_invalid"
	CodeErrorsMissing = "deserialization.errors_missing"
)

// flag is an optional boolean read from the document.
type flag struct {
	set, v bool
}

// document collects the fields of one outcome object before reconciliation.
type document struct {
	isSuccess, isFailure flag
	status               status.Status
	statusOK             bool
	messages             []string
	errors               []errinfo.ErrorInfo
	value                []byte
	hasValue             bool
}

// read decodes one outcome object from iter into target. It reports false
// when iter failed; the error is already recorded on iter.
func (b *Bridge) read(iter *jsoniter.Iterator, target apis.Restorer, typ reflect.Type) bool {
	if next := iter.WhatIsNext(); next != jsoniter.ObjectValue {
		iter.ReportError("codec.Decode", fmt.Sprintf("%s: expect a JSON object", typ))
		return false
	}

	var doc document
	iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		switch fieldOf(key) {
		case fieldIsSuccess:
			doc.isSuccess = readFlag(it)
		case fieldIsFailure:
			doc.isFailure = readFlag(it)
		case fieldStatus:
			doc.status, doc.statusOK = readStatus(it)
		case fieldMessages:
			doc.messages = readStrings(it)
		case fieldErrors:
			doc.errors = readErrors(it)
		case fieldValue:
			doc.value = it.SkipAndReturnBytes()
			doc.hasValue = true
		default:
			it.Skip()
		}
		return true
	})
	if iter.Error != nil {
		return false
	}

	st := b.reconcile(&doc, typ)
	var decodeValue func(into any) error
	if doc.hasValue && st.IsSuccess() {
		api := b.apiOf(iter)
		raw := doc.value
		decodeValue = func(into any) error { return api.Unmarshal(raw, into) }
	}
	if err := target.Restore(st, decodeValue); err != nil {
		iter.ReportError("codec.Decode", fmt.Sprintf("%s: value: %v", typ, err))
		return false
	}
	return true
}

// reconcile turns the collected fields into a consistent state. Errors
// always win over flags and status.
func (b *Bridge) reconcile(doc *document, typ reflect.Type) apis.State {
	st := doc.status
	errs := doc.errors
	if !doc.statusOK {
		b.log.V(1).Info("status missing or invalid, substituting the error status",
			"type", typ.String(), "code", st.Code)
		st = status.Error
		errs = append(errs, errinfo.New(category.Exception, CodeStatusInvalid,
			"status missing or invalid during deserialization"))
	} else if st.Description == "" {
		st.Description = b.describe(st.Code)
	}

	failure := len(errs) > 0 || flaggedFailure(doc.isSuccess, doc.isFailure) || !st.IsSuccess()
	if failure && len(errs) == 0 {
		b.log.V(1).Info("failure without errors, synthesizing one",
			"type", typ.String(), "status", st.Code)
		errs = append(errs, errinfo.New(category.Exception, CodeErrorsMissing,
			"failure without errors during deserialization"))
	}
	return apis.State{Status: st, Messages: doc.messages, Errors: errs}
}

// flaggedFailure reads the branch off the isSuccess and isFailure flags.
// Contradictory flags are resolved by the error list, which is empty here,
// so they mean success.
func flaggedFailure(succ, fail flag) bool {
	switch {
	case succ.set && fail.set:
		if succ.v != fail.v {
			return fail.v
		}
		return false
	case fail.set:
		return fail.v
	case succ.set:
		return !succ.v
	}
	return false
}

func (b *Bridge) describe(code int) string {
	if b.registry != nil {
		return b.registry.Describe(code, status.Text(code))
	}
	return status.Text(code)
}

func (b *Bridge) apiOf(iter *jsoniter.Iterator) jsoniter.API {
	if api, ok := iter.Pool().(jsoniter.API); ok {
		return api
	}
	return jsoniter.ConfigDefault
}

func readFlag(it *jsoniter.Iterator) flag {
	if it.WhatIsNext() != jsoniter.BoolValue {
		it.Skip()
		return flag{}
	}
	return flag{set: true, v: it.ReadBool()}
}

func readString(it *jsoniter.Iterator) string {
	if it.WhatIsNext() != jsoniter.StringValue {
		it.Skip()
		return ""
	}
	return it.ReadString()
}

func readStrings(it *jsoniter.Iterator) []string {
	if it.WhatIsNext() != jsoniter.ArrayValue {
		it.Skip()
		return nil
	}
	var out []string
	it.ReadArrayCB(func(it *jsoniter.Iterator) bool {
		if it.WhatIsNext() == jsoniter.StringValue {
			out = append(out, it.ReadString())
		} else {
			it.Skip()
		}
		return true
	})
	return out
}

// readStatus reads {"code": n, "description": s}. The status is valid when
// it carries a positive integer code; numeric strings are accepted.
func readStatus(it *jsoniter.Iterator) (status.Status, bool) {
	if it.WhatIsNext() != jsoniter.ObjectValue {
		it.Skip()
		return status.Status{}, false
	}
	var st status.Status
	ok := false
	it.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		switch fieldOf(key) {
		case fieldCode:
			st.Code, ok = readCode(it)
		case fieldDescription:
			st.Description = readString(it)
		default:
			it.Skip()
		}
		return true
	})
	return st, ok && st.Code > 0
}

func readCode(it *jsoniter.Iterator) (int, bool) {
	var s string
	switch it.WhatIsNext() {
	case jsoniter.NumberValue:
		s = string(it.ReadNumber())
	case jsoniter.StringValue:
		s = it.ReadString()
	default:
		it.Skip()
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func readErrors(it *jsoniter.Iterator) []errinfo.ErrorInfo {
	if it.WhatIsNext() != jsoniter.ArrayValue {
		it.Skip()
		return nil
	}
	var out []errinfo.ErrorInfo
	it.ReadArrayCB(func(it *jsoniter.Iterator) bool {
		if e, ok := readError(it); ok {
			out = append(out, e)
		}
		return true
	})
	return out
}

// readError reads one error record. Non-object elements are dropped; an
// unknown category becomes category.General.
func readError(it *jsoniter.Iterator) (errinfo.ErrorInfo, bool) {
	if it.WhatIsNext() != jsoniter.ObjectValue {
		it.Skip()
		return errinfo.ErrorInfo{}, false
	}
	var (
		cat, code, msg, detail string
		md                     map[string]any
		inner                  []errinfo.ErrorInfo
	)
	it.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		switch fieldOf(key) {
		case fieldCategory:
			cat = readString(it)
		case fieldCode:
			code = readString(it)
		case fieldMessage:
			msg = readString(it)
		case fieldDetail:
			detail = readString(it)
		case fieldMetadata:
			md = readMetadata(it)
		case fieldInnerErrors:
			inner = readErrors(it)
		default:
			it.Skip()
		}
		return true
	})
	c, err := category.Parse(cat)
	if err != nil {
		c = category.General
	}
	return errinfo.New(c, code, msg,
		errinfo.WithDetail(detail),
		errinfo.WithMetadataMap(md),
		errinfo.WithInner(inner...),
	), true
}

func readMetadata(it *jsoniter.Iterator) map[string]any {
	if it.WhatIsNext() != jsoniter.ObjectValue {
		it.Skip()
		return nil
	}
	md := make(map[string]any)
	it.ReadMapCB(func(it *jsoniter.Iterator, key string) bool {
		md[key] = readAny(it)
		return true
	})
	return md
}

// readAny reads an arbitrary metadata value. Integral numbers become int
// (int64 when they overflow int), other numbers float64.
func readAny(it *jsoniter.Iterator) any {
	switch it.WhatIsNext() {
	case jsoniter.NumberValue:
		return number(string(it.ReadNumber()))
	case jsoniter.ObjectValue:
		m := make(map[string]any)
		it.ReadMapCB(func(it *jsoniter.Iterator, key string) bool {
			m[key] = readAny(it)
			return true
		})
		return m
	case jsoniter.ArrayValue:
		s := []any{}
		it.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			s = append(s, readAny(it))
			return true
		})
		return s
	default:
		return it.Read()
	}
}

func number(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n == int64(int(n)) {
			return int(n)
		}
		return n
	}
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
