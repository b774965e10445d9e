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

package zerr

import (
	"fmt"

	"zeturn.dev/zerr/code"
)

// Failure is the normalized error payload carried by failed Results.
//
// It carries:
//   - Code: machine-readable identifier (never empty after Err/E);
//   - Msg: human-readable description of what went wrong;
//   - Show: whether Msg is safe to surface to an end user.
//
// Failure is a plain immutable value record. The WithX helpers operate on a
// copy, so Failure values can be shared freely across goroutines.
type Failure struct {
	// Code is the machine-readable classification of the failure, e.g.
	// "not_found" or "token_expired". When the producing code has no code to
	// offer, constructors fill in code.None ("no_error_code") so consumers
	// never have to guard against the empty string.
	Code string `json:"code"`

	// Msg is the human-readable explanation. It is always populated by the
	// producer; there is no defaulting for messages at construction time.
	Msg string `json:"msg"`

	// Show reports whether Msg is intended for end users. It defaults to
	// false: an unclassified message is assumed to be internal and must not
	// be exposed at a transport boundary.
	Show bool `json:"show"`
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<code>: <message>
//
// which keeps failures both human- and machine-scannable in logs.
func (f Failure) Error() string {
	if f.Code == "" {
		return f.Msg
	}
	return fmt.Sprintf("%s: %s", f.Code, f.Msg)
}

// ErrorCode returns the machine-readable code. Implements apis.CodedError.
func (f Failure) ErrorCode() string { return f.Code }

// ErrorMessage returns the human-readable message. Implements apis.MessagedError.
func (f Failure) ErrorMessage() string { return f.Msg }

// ShowToUser reports whether the message may be surfaced to an end user.
// Implements apis.UserFacingError.
func (f Failure) ShowToUser() bool { return f.Show }

// WithCode returns a copy of f with the given code set.
// The original value is not modified.
func (f Failure) WithCode(c string) Failure {
	f.Code = c
	return f
}

// WithShow returns a copy of f with the user-facing flag set.
// The original value is not modified.
func (f Failure) WithShow(show bool) Failure {
	f.Show = show
	return f
}

// E is a convenience constructor for Failure.
//
// Usage:
//
//	return zerr.Err[Session](zerr.E("challenge expired",
//	    zerr.WithCodeOption("expired"),
//	    zerr.WithShowOption(),
//	))
//
// The result is always normalized: a failure built by E carries a non-empty
// Code and an explicit Show flag.
func E(msg string, opts ...Option) Failure {
	f := Failure{Msg: msg}
	for _, opt := range opts {
		f = opt(f)
	}
	return normalize(f)
}

// normalize fills in the defaults the rest of the library relies on:
// an absent or empty code becomes code.None. Show needs no handling — the
// zero value of bool is already the fail-closed default.
func normalize(f Failure) Failure {
	if f.Code == "" {
		f.Code = code.None.String()
	}
	return f
}
