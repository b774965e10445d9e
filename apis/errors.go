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

// CodedError represents an error that is classified into a machine-readable
// error code.
//
// Codes denote broad, stable categories such as:
//   - "invalid"    — validation failed,
//   - "not_found"  — a referenced object does not exist,
//   - "conflict"   — concurrent modification or version mismatch,
//   - "internal"   — unexpected server-side failure.
//
// The code is the primary value higher-level adapters (HTTP, gRPC) use to
// decide which status to return, and the value the extraction helpers look
// for first when inspecting a caught value.
type CodedError interface {
	error

	// ErrorCode returns the machine-readable error code.
	//
	// Implementations SHOULD return a non-empty value; callers must treat an
	// empty result as "no code available".
	ErrorCode() string
}

// MessagedError represents an error that exposes a human-readable message
// separately from its Error() rendering.
//
// Error() strings often prepend classification prefixes ("not_found: ..."),
// which is what you want in a log line but not in an API response. This
// interface gives adapters access to the bare message.
type MessagedError interface {
	error

	// ErrorMessage returns the human-readable message without any
	// code/classification decoration. May be empty.
	ErrorMessage() string
}

// UserFacingError represents an error that knows whether its message is safe
// to surface to an end user.
//
// Adapters MUST treat errors that do not implement this interface as not
// user-facing (fail closed) and substitute a generic message.
type UserFacingError interface {
	error

	// ShowToUser reports whether the error's message may be exposed outside
	// the service boundary.
	ShowToUser() bool
}
