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

package apis

// ErrorView is a minimal, serializable representation of a failure.
//
// This is not the concrete type used internally — it is the shape we are
// comfortable exposing over the wire. Keeping it here allows the HTTP and
// gRPC adapters to share one struct.
//
// Producers are expected to have applied the show policy already: the Msg in
// a view is always safe to send to the client.
type ErrorView struct {
	// Code is the machine-readable error code, e.g. "invalid", "not_found".
	Code string `json:"code"`

	// Msg is the client-safe human message. When the underlying failure was
	// not user-facing, this carries the generic fallback message.
	Msg string `json:"msg"`

	// Show records whether the original message was user-facing. Clients can
	// use it to decide between displaying Msg and a localized default.
	Show bool `json:"show"`
}

// ErrorDescriptor is a flat, transport-annotated description of a failure.
// It extends ErrorView with the resolved transport statuses and is intended
// for structured logging, tracing, or message-bus propagation.
type ErrorDescriptor struct {
	// Code is the machine-readable error code.
	Code string `json:"code"`

	// Msg is the failure's message. Unlike ErrorView, a descriptor is an
	// internal artifact, so the message is carried unredacted.
	Msg string `json:"msg"`

	// Show reports whether Msg may be surfaced to an end user.
	Show bool `json:"show"`

	// HTTPStatus is the HTTP status resolved for this failure.
	// A value of 0 means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the gRPC status code (as integer) resolved for this
	// failure. A value of 0 means "not resolved" (0 is also codes.OK, which
	// a failure can never map to).
	GRPCCode int `json:"grpc_code,omitempty"`
}
