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

package grpcx_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/outcome"
	"dirpx.dev/outcome/category"
	"dirpx.dev/outcome/errinfo"
	"dirpx.dev/outcome/grpcx"
	"dirpx.dev/outcome/mapper"
	"dirpx.dev/outcome/status"
)

func sampleFailure() outcome.Outcome {
	return outcome.MustFailure([]errinfo.ErrorInfo{
		errinfo.NotFound("user", 7).WithDetail("looked in primary"),
		errinfo.Validation("email", "is required"),
	}, outcome.WithMessages("lookup failed"))
}

func TestToStatus(t *testing.T) {
	o := sampleFailure()
	st := grpcx.ToStatus(o, nil)
	require.NotNil(t, st)
	assert.Equal(t, codes.NotFound, st.Code())
	assert.Equal(t, "user '7' was not found", st.Message())

	var infos []*errdetails.ErrorInfo
	var structs int
	for _, d := range st.Details() {
		switch v := d.(type) {
		case *errdetails.ErrorInfo:
			infos = append(infos, v)
		case *structpb.Struct:
			structs++
			assert.Contains(t, v.GetFields(), grpcx.StructKey)
		}
	}
	require.Len(t, infos, 2)
	assert.Equal(t, "not_found.user", infos[0].GetReason())
	assert.Equal(t, "NotFound", infos[0].GetDomain())
	assert.Equal(t, "looked in primary", infos[0].GetMetadata()[grpcx.MetaDetail])
	assert.Equal(t, "7", infos[0].GetMetadata()[grpcx.MetaPrefix+errinfo.MetaKey])
	assert.Equal(t, 1, structs)
}

func TestToStatus_SuccessAndCustomMapper(t *testing.T) {
	assert.Nil(t, grpcx.ToStatus(outcome.Ok(), nil))
	assert.Nil(t, grpcx.ToStatus(nil, nil))

	m := mapper.MustNew(mapper.WithGRPCOverride(category.NotFound, codes.FailedPrecondition))
	st := grpcx.ToStatus(sampleFailure(), m)
	assert.Equal(t, codes.FailedPrecondition, st.Code())

	bare := grpcx.ToStatus(outcome.Ok(outcome.WithStatus(status.NotFound)), nil)
	assert.Equal(t, codes.Unknown, bare.Code())
	assert.Equal(t, "404 Not Found", bare.Message())
}

func TestFromStatus_StructDetail(t *testing.T) {
	want := sampleFailure()
	got := grpcx.FromStatus(grpcx.ToStatus(want, nil))
	assert.True(t, got.Equal(want), "want %s\ngot  %s", want, got)
}

func TestFromStatus_ErrorInfoDetails(t *testing.T) {
	st, err := gstatus.New(codes.InvalidArgument, "bad").WithDetails(
		grpcx.ToErrorInfo(errinfo.Validation("email", "is required")),
		&errdetails.ErrorInfo{Reason: "X", Domain: "not a category!", Metadata: map[string]string{"message": "x"}},
	)
	require.NoError(t, err)

	got := grpcx.FromStatus(st)
	require.True(t, got.IsFailure())
	assert.Equal(t, status.BadRequest, got.Status())
	errs := got.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, category.Validation, errs[0].Category())
	assert.Equal(t, "validation.email", errs[0].Code())
	assert.Equal(t, "is required", errs[0].Message())
	assert.Equal(t, map[string]any{errinfo.MetaField: "email"}, errs[0].Metadata())
	assert.Equal(t, category.General, errs[1].Category())
}

func TestFromStatus_Bare(t *testing.T) {
	tests := []struct {
		code codes.Code
		cat  category.Category
		want status.Status
	}{
		{codes.Unavailable, category.ServiceUnavailable, status.ServiceUnavailable},
		{codes.NotFound, category.NotFound, status.NotFound},
		{codes.PermissionDenied, category.Authorization, status.Forbidden},
		{codes.DeadlineExceeded, category.Timeout, status.RequestTimeout},
		{codes.Unknown, category.Exception, status.InternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			got := grpcx.FromStatus(gstatus.New(tt.code, "down"))
			require.True(t, got.IsFailure())
			assert.Equal(t, tt.want, got.Status())
			e, ok := got.PrimaryError()
			require.True(t, ok)
			assert.Equal(t, tt.cat, e.Category())
			assert.Equal(t, "down", e.Message())
		})
	}

	assert.True(t, grpcx.FromStatus(nil).IsSuccess())
	assert.True(t, grpcx.FromStatus(gstatus.New(codes.OK, "")).IsSuccess())
}

func TestExtractOutcome(t *testing.T) {
	want := sampleFailure()

	got, ok := grpcx.ExtractOutcome(grpcx.ToStatus(want, nil).Err())
	require.True(t, ok)
	assert.True(t, got.Equal(want))

	got, ok = grpcx.ExtractOutcome(want.Err())
	require.True(t, ok)
	assert.True(t, errinfo.EqualAll(want.Errors(), got.Errors()))

	_, ok = grpcx.ExtractOutcome(errors.New("plain"))
	assert.False(t, ok)
	_, ok = grpcx.ExtractOutcome(nil)
	assert.False(t, ok)
}

func TestUnaryServerInterceptor(t *testing.T) {
	icpt := grpcx.UnaryServerInterceptor(nil, grpcx.WithLogger(testr.NewWithOptions(t, testr.Options{Verbosity: 1})))
	info := &grpc.UnaryServerInfo{FullMethod: "/users.v1.Users/Get"}
	plain := errors.New("plain")

	tests := []struct {
		name     string
		handler  grpc.UnaryHandler
		wantResp any
		wantCode codes.Code
		wantErr  error
	}{
		{
			name:     "success",
			handler:  func(context.Context, any) (any, error) { return "ok", nil },
			wantResp: "ok",
			wantCode: codes.OK,
		},
		{
			name: "outcome failure",
			handler: func(context.Context, any) (any, error) {
				return nil, sampleFailure().Err()
			},
			wantCode: codes.NotFound,
		},
		{
			name: "wrapped outcome failure",
			handler: func(context.Context, any) (any, error) {
				return nil, errors.Join(errors.New("ctx"), outcome.Conflict(errinfo.Conflict("user", "taken")).Err())
			},
			wantCode: codes.AlreadyExists,
		},
		{
			name:     "foreign error",
			handler:  func(context.Context, any) (any, error) { return nil, plain },
			wantCode: codes.Unknown,
			wantErr:  plain,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := icpt(context.Background(), nil, info, tt.handler)
			assert.Equal(t, tt.wantResp, resp)
			assert.Equal(t, tt.wantCode, gstatus.Code(err))
			if tt.wantErr != nil {
				assert.Same(t, tt.wantErr, err)
			}
		})
	}
}

func TestUnaryClientInterceptor(t *testing.T) {
	icpt := grpcx.UnaryClientInterceptor(grpcx.WithLogger(testr.New(t)))
	want := sampleFailure()

	invoke := func(err error) error {
		return icpt(context.Background(), "/users.v1.Users/Get", nil, nil, nil,
			func(context.Context, string, any, any, *grpc.ClientConn, ...grpc.CallOption) error { return err })
	}

	require.NoError(t, invoke(nil))

	err := invoke(grpcx.ToStatus(want, nil).Err())
	var oe *outcome.Error
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, want.Status(), oe.Status)
	assert.True(t, errinfo.EqualAll(want.Errors(), oe.Errors))

	var nf errinfo.ErrorInfo
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, category.NotFound, nf.Category())

	plain := errors.New("transport closed")
	assert.Same(t, plain, invoke(plain))
}
