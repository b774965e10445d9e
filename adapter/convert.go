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

// Package adapter projects zerr failures into the transport-neutral view
// types of the apis package, applying the show policy on the way out.
package adapter

import (
	"zeturn.dev/zerr"
	"zeturn.dev/zerr/apis"
	"zeturn.dev/zerr/extract"
)

// PublicMsg returns the message of f that is safe to expose to a client.
// For user-facing failures this is the failure's own message; for everything
// else it is the generic fallback, so internal detail cannot leak by
// accident (fail closed).
func PublicMsg(f *zerr.Failure) string {
	if f == nil {
		return extract.UnknownMsg
	}
	if f.Show && f.Msg != "" {
		return f.Msg
	}
	return extract.UnknownMsg
}

// ToView converts a failure into a public ErrorView. The view's message has
// the show policy already applied, so it can be serialized to a client
// as-is.
func ToView(f *zerr.Failure) apis.ErrorView {
	if f == nil {
		return apis.ErrorView{}
	}
	return apis.ErrorView{
		Code: f.Code,
		Msg:  PublicMsg(f),
		Show: f.Show,
	}
}

// ToDescriptor converts a failure together with its resolved transport
// status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message-bus
// propagation — internal consumers — so unlike ToView it carries the message
// unredacted alongside the Show flag.
func ToDescriptor(f *zerr.Failure, st apis.Status) apis.ErrorDescriptor {
	if f == nil {
		return apis.ErrorDescriptor{}
	}
	return apis.ErrorDescriptor{
		Code:       f.Code,
		Msg:        f.Msg,
		Show:       f.Show,
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
	}
}
