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

// Package grpcx carries failed outcomes across gRPC boundaries.
//
// A failure becomes a *status.Status whose code comes from an apis.Mapper
// and whose details hold:
//
//   - one google.rpc.ErrorInfo per error (reason = error code,
//     domain = category, metadata = message, detail and stringified
//     metadata), readable by any gRPC client;
//   - one google.protobuf.Struct holding the full outcome in the codec's
//     JSON form, so that Go clients rebuild it losslessly.
//
// UnaryServerInterceptor converts *outcome.Error values returned by
// handlers; UnaryClientInterceptor turns rich statuses back into
// *outcome.Error.
package grpcx
