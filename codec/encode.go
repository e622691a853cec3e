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
	"sort"

	jsoniter "github.com/json-iterator/go"

	"dirpx.dev/outcome/apis"
	"dirpx.dev/outcome/errinfo"
)

func (b *Bridge) write(o apis.Outcome, stream *jsoniter.Stream) {
	n := &b.names
	success := o.IsSuccess()
	st := o.Status()

	stream.WriteObjectStart()
	stream.WriteObjectField(n[fieldIsSuccess])
	stream.WriteBool(success)
	stream.WriteMore()
	stream.WriteObjectField(n[fieldIsFailure])
	stream.WriteBool(!success)
	stream.WriteMore()
	stream.WriteObjectField(n[fieldStatus])
	stream.WriteObjectStart()
	stream.WriteObjectField(n[fieldCode])
	stream.WriteInt(st.Code)
	stream.WriteMore()
	stream.WriteObjectField(n[fieldDescription])
	stream.WriteString(st.Description)
	stream.WriteObjectEnd()

	if msgs := o.Messages(); len(msgs) > 0 {
		stream.WriteMore()
		stream.WriteObjectField(n[fieldMessages])
		stream.WriteArrayStart()
		for i, m := range msgs {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteString(m)
		}
		stream.WriteArrayEnd()
	}

	if !success {
		errs := o.Errors()
		stream.WriteMore()
		stream.WriteObjectField(n[fieldErrors])
		b.writeErrors(errs, stream)
		if b.errorMessage && len(errs) > 0 {
			stream.WriteMore()
			stream.WriteObjectField(n[fieldErrorMessage])
			stream.WriteString(o.ErrorMessage())
		}
	}

	if p, ok := o.(apis.Payload); ok {
		if v, ok := p.PayloadValue(); ok {
			stream.WriteMore()
			stream.WriteObjectField(n[fieldValue])
			stream.WriteVal(v)
		}
	}
	stream.WriteObjectEnd()
}

func (b *Bridge) writeErrors(errs []errinfo.ErrorInfo, stream *jsoniter.Stream) {
	stream.WriteArrayStart()
	for i, e := range errs {
		if i > 0 {
			stream.WriteMore()
		}
		b.writeError(e, stream)
	}
	stream.WriteArrayEnd()
}

func (b *Bridge) writeError(e errinfo.ErrorInfo, stream *jsoniter.Stream) {
	n := &b.names
	stream.WriteObjectStart()
	stream.WriteObjectField(n[fieldCategory])
	stream.WriteString(e.Category().String())
	stream.WriteMore()
	stream.WriteObjectField(n[fieldCode])
	stream.WriteString(e.Code())
	stream.WriteMore()
	stream.WriteObjectField(n[fieldMessage])
	stream.WriteString(e.Message())
	if d := e.Detail(); d != "" {
		stream.WriteMore()
		stream.WriteObjectField(n[fieldDetail])
		stream.WriteString(d)
	}
	if md := e.Metadata(); len(md) > 0 {
		keys := make([]string, 0, len(md))
		for k := range md {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		stream.WriteMore()
		stream.WriteObjectField(n[fieldMetadata])
		stream.WriteObjectStart()
		for i, k := range keys {
			if i > 0 {
				stream.WriteMore()
			}
			// metadata keys are user data, never renamed
			stream.WriteObjectField(k)
			stream.WriteVal(md[k])
		}
		stream.WriteObjectEnd()
	}
	if e.HasInner() {
		stream.WriteMore()
		stream.WriteObjectField(n[fieldInnerErrors])
		b.writeErrors(e.InnerErrors(), stream)
	}
	stream.WriteObjectEnd()
}
