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

// Result is a two-variant tagged union: either a success carrying Data, or a
// failure carrying Err. The OK flag is the discriminant — after checking it,
// exactly one of Data / Err is meaningful:
//
//	r := lookup(id)
//	if !r.OK {
//	    return r.Err
//	}
//	use(r.Data)
//
// There is no third state. Results are plain values; constructing one never
// fails and never has side effects.
type Result[T any] struct {
	// OK discriminates the two variants. True means Data is the payload;
	// false means Err is populated and Data is the zero value of T.
	OK bool `json:"ok"`

	// Data is the success payload. Only meaningful when OK is true.
	Data T `json:"data,omitzero"`

	// Err is the normalized failure payload. Non-nil exactly when OK is false.
	Err *Failure `json:"err,omitempty"`
}

// Void is the payload type for operations that succeed without producing a
// value. See OkVoid.
type Void = struct{}

// Ok returns a success Result carrying data. It cannot fail.
func Ok[T any](data T) Result[T] {
	return Result[T]{OK: true, Data: data}
}

// OkVoid returns a success Result with no payload.
func OkVoid() Result[Void] {
	return Ok(Void{})
}

// Err returns a failure Result carrying f, normalized so that downstream
// consumers can read Code and Show without existence checks: an empty Code
// is replaced with code.None ("no_error_code"), Show defaults to false.
// A non-empty Code passes through unchanged — Err never validates or
// rewrites codes the caller chose. It cannot fail.
func Err[T any](f Failure) Result[T] {
	f = normalize(f)
	return Result[T]{Err: &f}
}

// Unwrap converts the Result into the conventional Go (value, error) pair.
// For a success the error is nil; for a failure the value is the zero value
// of T and the error is the *Failure payload.
func (r Result[T]) Unwrap() (T, error) {
	if r.OK {
		return r.Data, nil
	}
	return r.Data, r.Err
}
