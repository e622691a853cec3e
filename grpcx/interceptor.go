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
	"context"
	"errors"

	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/outcome"
	"dirpx.dev/outcome/adapter"
	"dirpx.dev/outcome/apis"
)

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// *outcome.Error values returned by handlers into rich gRPC statuses.
//
// The provided apis.Mapper resolves the gRPC code from the primary error;
// nil selects mapper.Default(). Other errors are returned as-is.
func UnaryServerInterceptor(m apis.Mapper, opts ...Option) grpc.UnaryServerInterceptor {
	cfg := newConfig(opts)
	if m != nil {
		cfg.mapper = m
	}
	convOpts := []Option{WithLogger(cfg.log), WithCodec(cfg.codec)}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var oe *outcome.Error
		if !errors.As(err, &oe) {
			// Not ours, return as-is.
			return nil, err
		}

		o := oe.Outcome()
		st := ToStatus(o, cfg.mapper, convOpts...)
		if st == nil {
			return nil, err
		}
		if cfg.log.V(1).Enabled() {
			kv := append([]any{"method", info.FullMethod, "grpcCode", st.Code().String()}, adapter.KeyValues(o)...)
			cfg.log.V(1).Info("outcome failure returned", kv...)
		}
		return nil, st.Err()
	}
}

// UnaryClientInterceptor returns a gRPC UnaryClientInterceptor that turns
// status errors into *outcome.Error, so callers can use errors.As and
// Error.Outcome on them. Errors without a gRPC status are returned as-is.
func UnaryClientInterceptor(opts ...Option) grpc.UnaryClientInterceptor {
	cfg := newConfig(opts)
	convOpts := []Option{WithLogger(cfg.log), WithCodec(cfg.codec), WithMapper(cfg.mapper)}

	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, callOpts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, callOpts...)
		if err == nil {
			return nil
		}
		st, ok := gstatus.FromError(err)
		if !ok {
			return err
		}
		o := FromStatus(st, convOpts...)
		cfg.log.V(1).Info("gRPC status converted", "method", method, "grpcCode", st.Code().String(), "status", o.Status().Code)
		if oe := outcome.AsError(o); oe != nil {
			return oe
		}
		return err
	}
}
