/*
   Copyright 2026 The Zeturn Authors

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
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"

	"zeturn.dev/zerr"
	"zeturn.dev/zerr/adapter"
	"zeturn.dev/zerr/apis"
	"zeturn.dev/zerr/code"
)

// Domain identifies this library in google.rpc.ErrorInfo details, so clients
// can tell zeturn failures apart from other producers of ErrorInfo.
const Domain = "zeturn"

// metadata key carrying the failure's Show flag across the wire.
const showKey = "show"

// UnaryServerInterceptor returns a gRPC interceptor that maps *zerr.Failure
// return values into gRPC statuses using the provided mapper.
//
// Only failures the handler returns explicitly are mapped — there is no
// panic recovery and no translation of foreign error types: anything that is
// not a *zerr.Failure passes through unchanged. The outgoing status message
// is redacted for non-user-facing failures.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		f, ok := err.(*zerr.Failure)
		if !ok {
			// Not ours — return as-is.
			return nil, err
		}
		return nil, Status(m, f).Err()
	}
}

// Status builds the gRPC status for a failure: the status code comes from
// the mapper, the message is the client-safe one, and the details carry a
// google.rpc.ErrorInfo with the zeturn code in Reason and the show flag in
// Metadata.
func Status(m apis.Mapper, f *zerr.Failure) *gstatus.Status {
	st := m.Status(code.Code(f.Code))
	msg := adapter.PublicMsg(f)

	info := &errdetails.ErrorInfo{
		Reason: f.Code,
		Domain: Domain,
		Metadata: map[string]string{
			showKey: strconv.FormatBool(f.Show),
		},
	}

	detail, err := anypb.New(info)
	if err != nil {
		// Cannot happen for a well-formed ErrorInfo; degrade to a bare status.
		return gstatus.New(st.GRPC, msg)
	}
	return gstatus.FromProto(&spb.Status{
		Code:    int32(st.GRPC),
		Message: msg,
		Details: []*anypb.Any{detail},
	})
}

// ExtractFailure pulls a zerr.Failure back out of a gRPC error produced by
// this package, for use in tests and client code. It reports false for nil
// errors, non-status errors, and statuses whose details carry no zeturn
// ErrorInfo.
func ExtractFailure(err error) (*zerr.Failure, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != Domain {
			continue
		}
		show, _ := strconv.ParseBool(info.GetMetadata()[showKey])
		return &zerr.Failure{
			Code: info.GetReason(),
			Msg:  st.Message(),
			Show: show,
		}, true
	}
	return nil, false
}
