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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Code is the canonical, validated representation of an error code.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw user input with normalized values.
//
// Note that zerr.Err deliberately does NOT validate caller-provided codes —
// validation is opt-in, for callers that want to enforce the canonical form
// at their own boundaries (config files, registries, transport mappers).
type Code string

// MinLength and MaxLength define the allowed length range for a canonical
// zeturn code.
const (
	// MinLength is the minimum length for a valid code. Requiring at least
	// 3 characters keeps ambiguous identifiers like "a" or "x1" out.
	MinLength = 3

	// MaxLength is the maximum length for a valid code. 64 characters is
	// enough for descriptive codes like "too_many_attempts" while still
	// preventing accidental unbounded strings.
	MaxLength = 64
)

const (
	// codeFmt is the canonical pattern for error codes: one or more
	// lowercase alphanumeric segments, joined by single underscores, with
	// the first segment starting with a letter.
	//
	// The underscore is a separator, not part of a segment, so leading,
	// trailing and doubled underscores are all rejected. This matters to
	// the transport mapper, which matches code prefixes segment by segment.
	//
	// Total length is checked separately against MinLength / MaxLength.
	codeFmt = `^[a-z][a-z0-9]*(_[a-z0-9]+)*$`
)

// codeRe is the compiled form of codeFmt, precompiled so repeated
// validations in hot paths do not pay the compilation cost.
//
// Examples of valid codes:
//   - "invalid"
//   - "not_found"
//   - "no_error_code"
//   - "zeturn_unknown"
//
// Examples of invalid codes:
//   - "Invalid"     (uppercase)
//   - "not-found"   (dash instead of underscore)
//   - "_private"    (leading separator)
//   - "a__b"        (empty segment)
var codeRe = regexp.MustCompile(codeFmt)

// ErrCodeInvalid is returned when a value cannot be parsed or validated as a
// zeturn code. A dedicated sentinel makes it easy for callers and tests to
// detect "this is about code format" vs "some other error".
var ErrCodeInvalid = errors.New("zerr: invalid code")

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero-value code. It is considered "not provided" and is never
// valid; constructors in the root package replace it with None.
var Empty Code = ""

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Code value.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Code(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in init() or var blocks.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical code form. It only performs obvious, non-lossy transformations:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - replaces '-' with '_'.
//
// It does NOT guarantee that the result is valid — callers should still call
// Validate/Parse after normalization.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate checks whether the provided Code is valid.
// The empty code ("") is considered invalid.
func Validate(c Code) error {
	return validate(string(c))
}

// String returns the canonical string representation of the code.
func (c Code) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
// It refuses to marshal non-canonical codes.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It normalizes and validates the provided text before assigning.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// validate checks both the length bounds and the canonical pattern.
func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrCodeInvalid
	}
	if !codeRe.MatchString(s) {
		return ErrCodeInvalid
	}
	return nil
}
