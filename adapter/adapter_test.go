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

package adapter_test

import (
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"dirpx.dev/outcome"
	"dirpx.dev/outcome/adapter"
	"dirpx.dev/outcome/apis"
	"dirpx.dev/outcome/category"
	"dirpx.dev/outcome/errinfo"
	"dirpx.dev/outcome/status"
)

func TestToDescriptor(t *testing.T) {
	e := errinfo.New(category.Validation, "user.invalid", "user is invalid",
		errinfo.WithDetail("see inner"),
		errinfo.WithMetadata("attempt", 3),
		errinfo.WithInner(errinfo.Validation("email", "is required")),
	)
	want := apis.ErrorDescriptor{
		Category: "Validation",
		Code:     "user.invalid",
		Message:  "user is invalid",
		Detail:   "see inner",
		Metadata: map[string]string{"attempt": "3"},
		Inner: []apis.ErrorDescriptor{{
			Category: "Validation",
			Code:     "validation.email",
			Message:  "is required",
			Metadata: map[string]string{errinfo.MetaField: "email"},
		}},
	}
	if diff := cmp.Diff(want, adapter.ToDescriptor(e)); diff != "" {
		t.Fatalf("ToDescriptor (-want +got):\n%s", diff)
	}
	assert.Nil(t, adapter.ToDescriptors(nil))
}

func TestFromDescriptor(t *testing.T) {
	e := errinfo.NotFound("order", "A-1").WithDetail("archived").
		WithInnerErrors(errinfo.Timeout("archive.read"))
	got := adapter.FromDescriptor(adapter.ToDescriptor(e))
	assert.True(t, got.Equal(e), "string metadata survives the flat form:\nwant %s\ngot  %s", e, got)

	unknown := adapter.FromDescriptor(apis.ErrorDescriptor{Category: "??", Code: "c", Message: "m"})
	assert.Equal(t, category.General, unknown.Category())

	custom := adapter.FromDescriptor(apis.ErrorDescriptor{Category: "telemetry", Code: "c"})
	assert.Equal(t, category.Category("Telemetry"), custom.Category())
}

func TestToView(t *testing.T) {
	assert.Equal(t, apis.View{}, adapter.ToView(nil))

	v := adapter.ToView(outcome.Success(5, outcome.WithMessages("fine")))
	assert.Equal(t, apis.View{Success: true, Status: 200, StatusDescription: "OK", Messages: []string{"fine"}}, v)

	v = adapter.ToView(outcome.Conflict(errinfo.Conflict("user", "email taken")))
	assert.False(t, v.Success)
	assert.Equal(t, 409, v.Status)
	if assert.Len(t, v.Errors, 1) {
		assert.Equal(t, "conflict.user", v.Errors[0].Code)
	}
}

func TestKeyValues(t *testing.T) {
	assert.Nil(t, adapter.KeyValues(nil))
	assert.Equal(t,
		[]any{adapter.KeySuccess, true, adapter.KeyStatus, 201},
		adapter.KeyValues(outcome.Ok(outcome.WithStatus(status.Created))))

	kv := adapter.KeyValues(outcome.NotFound(errinfo.NotFound("user", 7)))
	assert.Equal(t, []any{
		adapter.KeySuccess, false,
		adapter.KeyStatus, 404,
		adapter.KeyErrorCount, 1,
		adapter.KeyErrorCategory, "NotFound",
		adapter.KeyErrorCode, "not_found.user",
		adapter.KeyErrorMessage, "user '7' was not found",
	}, kv)

	var line string
	log := funcr.New(func(_, args string) { line = args }, funcr.Options{})
	log.Info("done", kv...)
	assert.Contains(t, line, `"errorCode"="not_found.user"`)
}
