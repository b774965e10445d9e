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

// Option is a functional option for constructing a Failure.
// It always takes a Failure by value and returns the adjusted copy.
type Option func(Failure) Failure

// WithCodeOption sets the code on the failure being constructed.
// Intended to be used with E(...).
func WithCodeOption(c string) Option {
	return func(f Failure) Failure {
		return f.WithCode(c)
	}
}

// WithShowOption marks the failure's message as safe to surface to end users.
// Intended to be used with E(...).
func WithShowOption() Option {
	return func(f Failure) Failure {
		return f.WithShow(true)
	}
}
