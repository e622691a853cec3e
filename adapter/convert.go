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

package adapter

import (
	"fmt"

	"dirpx.dev/outcome/apis"
	"dirpx.dev/outcome/category"
	"dirpx.dev/outcome/errinfo"
)

// ToDescriptor flattens e into a portable ErrorDescriptor. Metadata values
// are stringified with %v; inner errors are flattened recursively.
func ToDescriptor(e errinfo.ErrorInfo) apis.ErrorDescriptor {
	d := apis.ErrorDescriptor{
		Category: e.Category().String(),
		Code:     e.Code(),
		Message:  e.Message(),
		Detail:   e.Detail(),
	}
	if md := e.Metadata(); len(md) > 0 {
		d.Metadata = make(map[string]string, len(md))
		for k, v := range md {
			d.Metadata[k] = fmt.Sprint(v)
		}
	}
	if inner := e.InnerErrors(); len(inner) > 0 {
		d.Inner = ToDescriptors(inner)
	}
	return d
}

// ToDescriptors flattens every error of errs, in order.
func ToDescriptors(errs []errinfo.ErrorInfo) []apis.ErrorDescriptor {
	if len(errs) == 0 {
		return nil
	}
	out := make([]apis.ErrorDescriptor, len(errs))
	for i, e := range errs {
		out[i] = ToDescriptor(e)
	}
	return out
}

// FromDescriptor rebuilds an ErrorInfo from its flat form. Metadata values
// come back as strings. An unparsable category becomes category.General.
func FromDescriptor(d apis.ErrorDescriptor) errinfo.ErrorInfo {
	c, err := category.Parse(d.Category)
	if err != nil {
		c = category.General
	}
	opts := make([]errinfo.Option, 0, 3)
	if d.Detail != "" {
		opts = append(opts, errinfo.WithDetail(d.Detail))
	}
	if len(d.Metadata) > 0 {
		md := make(map[string]any, len(d.Metadata))
		for k, v := range d.Metadata {
			md[k] = v
		}
		opts = append(opts, errinfo.WithMetadataMap(md))
	}
	if len(d.Inner) > 0 {
		inner := make([]errinfo.ErrorInfo, len(d.Inner))
		for i, in := range d.Inner {
			inner[i] = FromDescriptor(in)
		}
		opts = append(opts, errinfo.WithInner(inner...))
	}
	return errinfo.New(c, d.Code, d.Message, opts...)
}

// ToView converts o into a flat View. The payload of generic outcomes is
// never included.
func ToView(o apis.Outcome) apis.View {
	if o == nil {
		return apis.View{}
	}
	st := o.Status()
	return apis.View{
		Success:           o.IsSuccess(),
		Status:            st.Code,
		StatusDescription: st.Description,
		Messages:          o.Messages(),
		Errors:            ToDescriptors(o.Errors()),
	}
}
