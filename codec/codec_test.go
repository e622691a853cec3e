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

package codec_test

import (
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/outcome"
	"dirpx.dev/outcome/category"
	"dirpx.dev/outcome/codec"
	"dirpx.dev/outcome/errinfo"
	"dirpx.dev/outcome/status"
)

type user struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func richError() errinfo.ErrorInfo {
	return errinfo.New(category.Validation, "user.invalid", "user is invalid",
		errinfo.WithDetail("two fields failed"),
		errinfo.WithMetadataMap(map[string]any{"form": "signup", "ratio": 1.5}),
		errinfo.WithInner(
			errinfo.Validation("email", "is required"),
			errinfo.Validation("age", "must be positive"),
		),
	)
}

func TestMarshal_SuccessScenario(t *testing.T) {
	data, err := codec.New().Marshal(outcome.Success(42, outcome.WithMessages("All good")))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"isSuccess": true,
		"isFailure": false,
		"status": {"code": 200, "description": "OK"},
		"messages": ["All good"],
		"value": 42
	}`, string(data))
}

func TestMarshal_Failure(t *testing.T) {
	r := outcome.MustFailureOf(0,
		[]errinfo.ErrorInfo{errinfo.New(category.Validation, "VAL", "bad")},
		outcome.WithStatus(status.BadRequest))

	data, err := codec.New().Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"isSuccess": false,
		"isFailure": true,
		"status": {"code": 400, "description": "Bad Request"},
		"errors": [{"category": "Validation", "code": "VAL", "message": "bad"}],
		"errorMessage": "bad"
	}`, string(data))
}

func TestMarshal_WithoutErrorMessageField(t *testing.T) {
	c := codec.New(codec.WithErrorMessageField(false))
	data, err := c.Marshal(outcome.NotFound(errinfo.NotFound("user", 7)))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "errorMessage")
	assert.Contains(t, string(data), `"errors"`)
}

func TestRoundTrip_Success(t *testing.T) {
	c := codec.New()
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{"int", func(t *testing.T) { roundTrip(t, c, outcome.Success(42)) }},
		{"string", func(t *testing.T) { roundTrip(t, c, outcome.Of("hello")) }},
		{"struct", func(t *testing.T) { roundTrip(t, c, outcome.Success(user{ID: 1, Name: "Ada"})) }},
		{"pointer", func(t *testing.T) { roundTrip(t, c, outcome.Success(&user{ID: 2, Name: "Bob"})) }},
		{"slice", func(t *testing.T) { roundTrip(t, c, outcome.Success([]user{{ID: 1}, {ID: 2}})) }},
		{"map", func(t *testing.T) { roundTrip(t, c, outcome.Success(map[string]int{"a": 1, "b": 2})) }},
		{"created with messages", func(t *testing.T) {
			roundTrip(t, c, outcome.Success(user{ID: 3}, outcome.WithStatus(status.Created), outcome.WithMessages("stored", "indexed")))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, tt.run)
	}
}

func roundTrip[T any](t *testing.T, c *codec.Codec, want outcome.Result[T]) {
	t.Helper()
	data, err := c.Marshal(want)
	require.NoError(t, err)

	var got outcome.Result[T]
	require.NoError(t, c.Unmarshal(data, &got))
	assert.True(t, got.Equal(want), "round trip mismatch:\nwant %s\ngot  %s\njson %s", want, got, data)

	wv, _ := want.Value()
	gv, ok := got.Value()
	assert.Equal(t, want.IsSuccess(), ok)
	if diff := cmp.Diff(wv, gv); diff != "" {
		t.Errorf("value mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTrip_FailurePreservesErrors(t *testing.T) {
	c := codec.New()
	want := outcome.MustFailureOf(user{ID: 9},
		[]errinfo.ErrorInfo{richError(), errinfo.Conflict("user", "email taken")},
		outcome.WithStatus(status.UnprocessableEntity), outcome.WithMessages("rejected"))

	data, err := c.Marshal(want)
	require.NoError(t, err)

	var got outcome.Result[user]
	require.NoError(t, c.Unmarshal(data, &got))

	assert.True(t, got.IsFailure())
	assert.Equal(t, status.UnprocessableEntity, got.Status())
	assert.Equal(t, []string{"rejected"}, got.Messages())
	require.Len(t, got.Errors(), 2)
	for i, e := range want.Errors() {
		assert.True(t, e.Equal(got.Errors()[i]), "error %d:\nwant %s\ngot  %s", i, e, got.Errors()[i])
	}
	_, ok := got.Value()
	assert.False(t, ok)
	assert.Equal(t, user{}, got.Partial(), "the default value of a failure is not transmitted")
}

func TestRoundTrip_Outcome(t *testing.T) {
	c := codec.New()
	for _, want := range []outcome.Outcome{
		outcome.Ok(),
		outcome.Ok(outcome.WithStatus(status.NoContent), outcome.WithMessages("deleted")),
		outcome.NotFound(errinfo.NotFound("order", "A-1")),
		outcome.OfError(errinfo.Timeout("db.query"), errinfo.Unavailable("billing")),
	} {
		data, err := c.Marshal(want)
		require.NoError(t, err)

		var got outcome.Outcome
		require.NoError(t, c.Unmarshal(data, &got))
		assert.True(t, got.Equal(want), "want %s\ngot  %s", want, got)
	}
}

func TestRoundTrip_NumericMetadata(t *testing.T) {
	c := codec.New()
	tests := []struct {
		name string
		e    errinfo.ErrorInfo
		key  string
		want any
	}{
		{
			name: "problem status",
			e:    errinfo.Problem("about:blank", "Not Found", 404, "no user", "/users/7"),
			key:  errinfo.MetaProblemStatus,
			want: 404,
		},
		{
			name: "int64 beyond int32",
			e:    errinfo.New(category.General, "big", "big").WithMeta("n", int64(1)<<40),
			key:  "n",
			want: 1 << 40,
		},
		{
			name: "nested numbers",
			e:    errinfo.New(category.General, "nested", "nested").WithMeta("n", map[string]any{"retries": 3, "ratio": 0.25}),
			key:  "n",
			want: map[string]any{"retries": 3, "ratio": 0.25},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := outcome.OfError(tt.e)
			data, err := c.Marshal(want)
			require.NoError(t, err)

			var got outcome.Outcome
			require.NoError(t, c.Unmarshal(data, &got))
			require.Len(t, got.Errors(), 1)
			v, ok := got.Errors()[0].Meta(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, v)
			assert.True(t, got.Equal(want), "want %s\ngot  %s", want, got)
		})
	}
}

func TestRoundTrip_CustomCategory(t *testing.T) {
	c := codec.New()
	for _, cat := range []category.Category{"my-cat", "Telemetry", "not a category!"} {
		want := outcome.OfError(errinfo.New(cat, "custom", "custom"))
		data, err := c.Marshal(want)
		require.NoError(t, err)

		var got outcome.Outcome
		require.NoError(t, c.Unmarshal(data, &got))
		assert.True(t, got.Equal(want), "category %q:\nwant %s\ngot  %s", cat, want, got)
	}
}

func TestMarshalIndent_PerCodec(t *testing.T) {
	o := outcome.Internal(errinfo.Internal("x"))

	first, err := codec.New().MarshalIndent(o, "", "  ")
	require.NoError(t, err)
	assert.Contains(t, string(first), `"isSuccess": false`)

	snake := codec.New(codec.WithNaming(codec.SnakeCase), codec.WithErrorMessageField(false))
	got, err := snake.MarshalIndent(o, "", "  ")
	require.NoError(t, err)
	assert.Contains(t, string(got), `"is_success": false`)
	assert.NotContains(t, string(got), "isSuccess")
	assert.NotContains(t, string(got), "error_message")

	flat, err := snake.Marshal(o)
	require.NoError(t, err)
	assert.JSONEq(t, string(flat), string(got))

	_, err = snake.MarshalIndent(o, ">", "  ")
	assert.ErrorIs(t, err, codec.ErrIndentUnsupported)
	_, err = snake.MarshalIndent(o, "", "\t")
	assert.ErrorIs(t, err, codec.ErrIndentUnsupported)
}

func TestRoundTrip_NestedResult(t *testing.T) {
	c := codec.New()
	inner := outcome.FailWith[int](errinfo.NotFound("user", 7))
	want := outcome.Success(inner)

	data, err := c.Marshal(want)
	require.NoError(t, err)

	var got outcome.Result[outcome.Result[int]]
	require.NoError(t, c.Unmarshal(data, &got))
	require.True(t, got.IsSuccess())

	gotInner, ok := got.Value()
	require.True(t, ok)
	assert.True(t, gotInner.IsFailure())
	assert.Equal(t, inner.Status(), gotInner.Status())
	assert.True(t, errinfo.EqualAll(inner.Errors(), gotInner.Errors()))
}

func TestRoundTrip_InsideStruct(t *testing.T) {
	type page struct {
		Items outcome.Result[[]user] `json:"items"`
		Audit outcome.Outcome        `json:"audit"`
		Next  *outcome.Result[int]   `json:"next"`
		Total int                    `json:"total"`
	}
	c := codec.New()
	want := page{
		Items: outcome.Success([]user{{ID: 1, Name: "Ada"}}),
		Audit: outcome.Ok(outcome.WithMessages("logged")),
		Total: 1,
	}

	data, err := c.Marshal(want)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"next":null`)

	var got page
	require.NoError(t, c.Unmarshal(data, &got))
	assert.True(t, got.Items.Equal(want.Items))
	assert.True(t, got.Audit.Equal(want.Audit))
	assert.Nil(t, got.Next)
	assert.Equal(t, 1, got.Total)
}

func TestUnmarshal_MissingStatus(t *testing.T) {
	doc := `{"isSuccess":false,"isFailure":true,
		"errors":[{"category":"NotFound","code":"NF","message":"gone"}]}`

	var got outcome.Outcome
	require.NoError(t, codec.New().Unmarshal([]byte(doc), &got))

	assert.True(t, got.IsFailure())
	assert.Equal(t, status.Error, got.Status())
	errs := got.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, "NF", errs[0].Code())
	assert.Equal(t, category.NotFound, errs[0].Category())
	assert.Equal(t, codec.CodeStatusInvalid, errs[1].Code())
}

func TestUnmarshal_InvalidStatusNeverYieldsSuccess(t *testing.T) {
	docs := []string{
		`{"isSuccess":true,"isFailure":false,"value":5}`,
		`{"isSuccess":true,"status":"OK","value":5}`,
		`{"isSuccess":true,"status":{"code":"abc"},"value":5}`,
		`{"isSuccess":true,"status":{"code":0},"value":5}`,
		`{"isSuccess":true,"status":{"description":"OK"},"value":5}`,
	}
	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			var got outcome.Result[int]
			require.NoError(t, codec.New().Unmarshal([]byte(doc), &got))
			assert.True(t, got.IsFailure())
			assert.Equal(t, status.Error, got.Status())
			require.Len(t, got.Errors(), 1)
			assert.Equal(t, codec.CodeStatusInvalid, got.Errors()[0].Code())
			_, ok := got.Value()
			assert.False(t, ok)
		})
	}
}

func TestUnmarshal_StatusDescription(t *testing.T) {
	reg := status.NewRegistry()
	reg.MustRegister(status.New(460, "Quota Frozen"))

	tests := []struct {
		name string
		c    *codec.Codec
		doc  string
		want status.Status
	}{
		{"builtin", codec.New(), `{"status":{"code":201}}`, status.Created},
		{"numeric string", codec.New(), `{"status":{"code":"202"}}`, status.Accepted},
		{"registry", codec.New(codec.WithRegistry(reg)), `{"status":{"code":460},"errors":[{"code":"q","message":"m"}]}`, status.New(460, "Quota Frozen")},
		{"unknown", codec.New(), `{"status":{"code":299}}`, status.New(299, "")},
		{"kept", codec.New(), `{"status":{"code":200,"description":"Fine"}}`, status.New(200, "Fine")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got outcome.Outcome
			require.NoError(t, tt.c.Unmarshal([]byte(tt.doc), &got))
			assert.Equal(t, tt.want, got.Status())
		})
	}
}

func TestUnmarshal_FlagReconciliation(t *testing.T) {
	const bad = `[{"category":"Validation","code":"VAL","message":"bad"}]`
	tests := []struct {
		name        string
		doc         string
		wantSuccess bool
		wantCodes   []string
	}{
		{"consistent success", `{"isSuccess":true,"isFailure":false,"status":{"code":200}}`, true, nil},
		{"no flags no errors", `{"status":{"code":200}}`, true, nil},
		{"only isFailure false", `{"isFailure":false,"status":{"code":201}}`, true, nil},
		{"contradictory without errors", `{"isSuccess":true,"isFailure":true,"status":{"code":200}}`, true, nil},
		{"both false without errors", `{"isSuccess":false,"isFailure":false,"status":{"code":200}}`, true, nil},
		{"success flags with errors", `{"isSuccess":true,"isFailure":false,"status":{"code":200},"errors":` + bad + `}`, false, []string{"VAL"}},
		{"contradictory with errors", `{"isSuccess":true,"isFailure":true,"status":{"code":400},"errors":` + bad + `}`, false, []string{"VAL"}},
		{"no flags with errors", `{"status":{"code":400},"errors":` + bad + `}`, false, []string{"VAL"}},
		{"failure flags without errors", `{"isSuccess":false,"isFailure":true,"status":{"code":200}}`, false, []string{codec.CodeErrorsMissing}},
		{"error status without errors", `{"status":{"code":503}}`, false, []string{codec.CodeErrorsMissing}},
		{"flags of wrong type are ignored", `{"isSuccess":"yes","isFailure":1,"status":{"code":200}}`, true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got outcome.Outcome
			require.NoError(t, codec.New().Unmarshal([]byte(tt.doc), &got))
			assert.Equal(t, tt.wantSuccess, got.IsSuccess())
			var codes []string
			for _, e := range got.Errors() {
				codes = append(codes, e.Code())
			}
			assert.Equal(t, tt.wantCodes, codes)
		})
	}
}

func TestUnmarshal_TolerantFields(t *testing.T) {
	doc := `{
		"isSuccess": false, "isFailure": true,
		"status": {"code": 400, "description": "Bad Request", "extra": [1, 2]},
		"messages": ["kept", 3, null, "also kept"],
		"errors": [
			"not an object",
			{"category": "NoSuchCategory!", "code": "X", "message": "x", "metadata": {"n": 2, "s": "v"}},
			{"category": "Conflict", "code": 7, "message": "y", "metadata": "nope", "innerErrors": {}}
		],
		"errorMessage": 12,
		"unknown": {"deep": [true]}
	}`
	var got outcome.Outcome
	require.NoError(t, codec.New().Unmarshal([]byte(doc), &got))

	assert.Equal(t, []string{"kept", "also kept"}, got.Messages())
	errs := got.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, category.General, errs[0].Category())
	assert.Equal(t, map[string]any{"n": 2, "s": "v"}, errs[0].Metadata())
	assert.Equal(t, category.Conflict, errs[1].Category())
	assert.Equal(t, "", errs[1].Code())
	assert.Nil(t, errs[1].Metadata())
	assert.False(t, errs[1].HasInner())
}

func TestUnmarshal_NullValueVersusAbsent(t *testing.T) {
	c := codec.New()

	data, err := c.Marshal(outcome.Success[*user](nil))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"value":null`)

	got := outcome.Success(&user{ID: 1})
	require.NoError(t, c.Unmarshal(data, &got))
	v, ok := got.Value()
	assert.True(t, ok)
	assert.Nil(t, v)

	absent := []byte(`{"isSuccess":true,"isFailure":false,"status":{"code":200,"description":"OK"}}`)
	var n outcome.Result[int]
	require.NoError(t, c.Unmarshal(absent, &n))
	iv, ok := n.Value()
	assert.True(t, ok)
	assert.Equal(t, 0, iv)

	var u outcome.Result[user]
	require.NoError(t, c.Unmarshal(absent, &u))
	uv, ok := u.Value()
	assert.True(t, ok)
	assert.Equal(t, user{}, uv)
}

func TestUnmarshal_ValueIgnoredOnFailure(t *testing.T) {
	doc := `{"status":{"code":404},"errors":[{"code":"NF","message":"gone"}],"value":"not even an int"}`
	var got outcome.Result[int]
	require.NoError(t, codec.New().Unmarshal([]byte(doc), &got))
	assert.True(t, got.IsFailure())
	assert.Equal(t, 0, got.Partial())
}

func TestUnmarshal_ValueOfWrongTypeFails(t *testing.T) {
	doc := `{"status":{"code":200},"value":"not an int"}`
	var got outcome.Result[int]
	assert.Error(t, codec.New().Unmarshal([]byte(doc), &got))
}

func TestUnmarshal_TopLevelNull(t *testing.T) {
	c := codec.New()

	p := &outcome.Result[int]{}
	require.NoError(t, c.Unmarshal([]byte(`null`), &p))
	assert.Nil(t, p)

	o := new(outcome.Outcome)
	require.NoError(t, c.Unmarshal([]byte(`null`), &o))
	assert.Nil(t, o)
}

func TestUnmarshal_MalformedDocument(t *testing.T) {
	for _, doc := range []string{`"oops"`, `42`, `[1,2]`, `true`} {
		t.Run(doc, func(t *testing.T) {
			var r outcome.Result[int]
			assert.Error(t, codec.New().Unmarshal([]byte(doc), &r))

			var o outcome.Outcome
			assert.Error(t, codec.New().Unmarshal([]byte(doc), &o))
		})
	}
}

func TestNaming(t *testing.T) {
	r := outcome.FailWith[int](richError())
	tests := []struct {
		name   string
		naming codec.Naming
		keys   []string
	}{
		{"camel", codec.CamelCase, []string{`"isSuccess"`, `"isFailure"`, `"errorMessage"`, `"innerErrors"`}},
		{"snake", codec.SnakeCase, []string{`"is_success"`, `"is_failure"`, `"error_message"`, `"inner_errors"`}},
		{"pascal", codec.PascalCase, []string{`"IsSuccess"`, `"Status"`, `"ErrorMessage"`, `"InnerErrors"`}},
		{"custom", func(f string) string { return "x_" + f }, []string{`"x_isSuccess"`, `"x_status"`, `"x_code"`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := codec.New(codec.WithNaming(tt.naming))
			data, err := c.Marshal(r)
			require.NoError(t, err)
			for _, k := range tt.keys {
				assert.Contains(t, string(data), k)
			}
			// metadata keys are data and keep their spelling
			assert.Contains(t, string(data), `"form"`)

			if tt.name == "custom" {
				return
			}
			var got outcome.Result[int]
			require.NoError(t, codec.New().Unmarshal(data, &got))
			assert.True(t, got.Equal(r), "decoding is casing-insensitive")
		})
	}
}

func TestLogger_ReportsRecoveries(t *testing.T) {
	var lines []string
	log := funcr.New(func(prefix, args string) { lines = append(lines, args) }, funcr.Options{Verbosity: 1})

	var got outcome.Outcome
	require.NoError(t, codec.New(codec.WithLogger(log)).Unmarshal([]byte(`{"isFailure":true}`), &got))

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "status missing or invalid")
	assert.Contains(t, joined, "outcome.Outcome")
}

func TestDefaultCodec(t *testing.T) {
	data, err := codec.Marshal(outcome.Of(true))
	require.NoError(t, err)

	var got outcome.Result[bool]
	require.NoError(t, codec.Unmarshal(data, &got))
	assert.True(t, got.MustValue())
	assert.Same(t, codec.Default(), codec.Default())
}
