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

// Package mapper resolves zeturn error codes into HTTP and gRPC statuses.
//
// A mapper is built once from options and then frozen: the resulting
// apis.Mapper is immutable and safe for concurrent use. Resolution for a
// code runs through four tiers, highest priority first:
//
//  1. exact per-code override;
//  2. longest-prefix match over the code's underscore-separated segments
//     ("token" matches "token_expired" but not "tokens"); "*" in a rule
//     matches exactly one segment;
//  3. built-in per-code default (the code package taxonomy), possibly
//     replaced via WithHTTPDefault / WithGRPCDefault;
//  4. the ultimate fallback (500 / codes.Internal) for codes the mapper has
//     never heard of — including the sentinels "no_error_code" and
//     "zeturn_unknown", which deliberately default to an internal error.
//
// Explain reports which tier produced a result, for debugging mapping
// policies.
package mapper
