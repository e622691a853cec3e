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
	"errors"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/outcome"
	"dirpx.dev/outcome/adapter"
	"dirpx.dev/outcome/apis"
	"dirpx.dev/outcome/category"
	"dirpx.dev/outcome/errinfo"
)

// StructKey is the field of the google.protobuf.Struct detail that holds
// the encoded outcome.
const StructKey = "outcome"

// ErrorInfo metadata keys. Metadata entries of the error itself are
// prefixed with MetaPrefix.
const (
	MetaMessage = "message"
	MetaDetail  = "detail"
	MetaPrefix  = "meta."
)

// ToStatus converts a failed outcome into a gRPC status. It returns nil for
// nil or successful outcomes.
//
// The code is resolved by m (mapper.Default() when nil) from the primary
// error; a failure without errors maps to codes.Unknown. The message is the
// primary error's message, or the outcome status when there is none.
func ToStatus(o apis.Outcome, m apis.Mapper, opts ...Option) *gstatus.Status {
	if o == nil || o.IsSuccess() {
		return nil
	}
	cfg := newConfig(opts)
	if m != nil {
		cfg.mapper = m
	}

	errs := o.Errors()
	code := codes.Unknown
	msg := o.ErrorMessage()
	if len(errs) > 0 {
		code = cfg.mapper.GRPCStatus(errs[0].Category(), errs[0].Code())
	}
	if msg == "" {
		msg = o.Status().String()
	}
	st := gstatus.New(code, msg)

	details := make([]protoadapt.MessageV1, 0, len(errs)+1)
	for _, e := range errs {
		details = append(details, ToErrorInfo(e))
	}
	if s, err := encodeStruct(cfg, o); err != nil {
		cfg.log.Error(err, "encode outcome detail")
	} else {
		details = append(details, s)
	}
	with, err := st.WithDetails(details...)
	if err != nil {
		cfg.log.Error(err, "attach status details")
		return st
	}
	return with
}

// ToErrorInfo renders e as a google.rpc.ErrorInfo.
func ToErrorInfo(e errinfo.ErrorInfo) *errdetails.ErrorInfo {
	d := adapter.ToDescriptor(e)
	md := make(map[string]string, len(d.Metadata)+2)
	md[MetaMessage] = d.Message
	if d.Detail != "" {
		md[MetaDetail] = d.Detail
	}
	for k, v := range d.Metadata {
		md[MetaPrefix+k] = v
	}
	return &errdetails.ErrorInfo{Reason: d.Code, Domain: d.Category, Metadata: md}
}

// FromErrorInfo is the inverse of ToErrorInfo. Metadata values come back as
// strings and inner errors are not carried.
func FromErrorInfo(ei *errdetails.ErrorInfo) errinfo.ErrorInfo {
	d := apis.ErrorDescriptor{Category: ei.GetDomain(), Code: ei.GetReason()}
	for k, v := range ei.GetMetadata() {
		switch {
		case k == MetaMessage:
			d.Message = v
		case k == MetaDetail:
			d.Detail = v
		case strings.HasPrefix(k, MetaPrefix):
			if d.Metadata == nil {
				d.Metadata = make(map[string]string)
			}
			d.Metadata[strings.TrimPrefix(k, MetaPrefix)] = v
		}
	}
	return adapter.FromDescriptor(d)
}

// FromStatus rebuilds an outcome from st. A nil or OK status yields
// outcome.Ok().
//
// The Struct detail is preferred; without it the ErrorInfo details are
// used, and without those a single error is derived from the status code
// and message.
func FromStatus(st *gstatus.Status, opts ...Option) outcome.Outcome {
	if st == nil || st.Code() == codes.OK {
		return outcome.Ok()
	}
	cfg := newConfig(opts)

	var errs []errinfo.ErrorInfo
	for _, d := range st.Details() {
		switch v := d.(type) {
		case *structpb.Struct:
			if o, ok := decodeStruct(cfg, v); ok {
				return o
			}
		case *errdetails.ErrorInfo:
			errs = append(errs, FromErrorInfo(v))
		}
	}
	if len(errs) == 0 {
		errs = append(errs, errinfo.New(categoryOf(st.Code()),
			"grpc."+strings.ToLower(st.Code().String()), st.Message()))
	}
	return outcome.MustFailure(errs, outcome.WithMapper(cfg.mapper))
}

// ExtractOutcome pulls the outcome out of a gRPC error, if err carries a
// status.
func ExtractOutcome(err error, opts ...Option) (outcome.Outcome, bool) {
	if err == nil {
		return outcome.Outcome{}, false
	}
	var oe *outcome.Error
	if errors.As(err, &oe) {
		return oe.Outcome(), true
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return outcome.Outcome{}, false
	}
	return FromStatus(st, opts...), true
}

type envelope struct {
	Outcome outcome.Outcome `json:"outcome"`
}

func encodeStruct(cfg config, o apis.Outcome) (*structpb.Struct, error) {
	data, err := cfg.codec.Marshal(map[string]apis.Outcome{StructKey: o})
	if err != nil {
		return nil, err
	}
	s := &structpb.Struct{}
	if err := protojson.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

func decodeStruct(cfg config, s *structpb.Struct) (outcome.Outcome, bool) {
	if _, ok := s.GetFields()[StructKey]; !ok {
		return outcome.Outcome{}, false
	}
	data, err := protojson.Marshal(s)
	if err != nil {
		cfg.log.Error(err, "marshal outcome detail")
		return outcome.Outcome{}, false
	}
	var env envelope
	if err := cfg.codec.Unmarshal(data, &env); err != nil {
		cfg.log.Error(err, "decode outcome detail")
		return outcome.Outcome{}, false
	}
	return env.Outcome, true
}

// categoryOf classifies a bare gRPC code.
func categoryOf(c codes.Code) category.Category {
	switch c {
	case codes.InvalidArgument, codes.OutOfRange:
		return category.Validation
	case codes.FailedPrecondition:
		return category.Unprocessable
	case codes.NotFound:
		return category.NotFound
	case codes.AlreadyExists:
		return category.Conflict
	case codes.Aborted:
		return category.Concurrency
	case codes.Unauthenticated:
		return category.Authentication
	case codes.PermissionDenied:
		return category.Authorization
	case codes.DeadlineExceeded:
		return category.Timeout
	case codes.Canceled:
		return category.Canceled
	case codes.ResourceExhausted:
		return category.RateLimit
	case codes.Unavailable:
		return category.ServiceUnavailable
	case codes.Internal, codes.DataLoss, codes.Unimplemented:
		return category.InternalServerError
	default:
		return category.Exception
	}
}
