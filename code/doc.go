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

// Package code provides parsing, normalization and validation for zeturn
// error codes.
//
// A "code" is the machine-readable classification of a failure, such as
// "invalid", "not_found" or "token_expired". Canonical codes are:
//
//   - short and stable;
//   - lowercased;
//   - underscore-separated (not dash-separated);
//   - suitable for use in JSON payloads and for lookup in mapper registries.
//
// The library itself only ever injects the two sentinels None and Unknown;
// all other codes are chosen by callers. Validation is opt-in: the zerr
// constructors pass non-empty caller codes through untouched, and callers
// that want the canonical form enforce it themselves via Parse/Validate.
package code
