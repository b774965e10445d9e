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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"zeturn.dev/zerr/code"
)

type prefixRule struct {
	// prefix is the raw, underscore-separated code prefix (may contain "*").
	// It is normalized and validated when the trie is built.
	prefix string
	// val is the numeric transport status to apply when this prefix matches.
	// For gRPC the builder stores ints and converts to codes.Code in New().
	val int
}

type builder struct {
	// user-provided adjustments, applied on top of library defaults

	// httpDefaults / grpcDefaults replace built-in per-code defaults.
	httpDefaults map[code.Code]int
	grpcDefaults map[code.Code]int

	// httpOverride / grpcOverride are exact per-code overrides, above
	// prefix rules and defaults.
	httpOverride map[code.Code]int
	grpcOverride map[code.Code]int

	// httpPrefixes / grpcPrefixes are LPM rules, compiled into tries in New().
	httpPrefixes []prefixRule
	grpcPrefixes []prefixRule

	// global fallbacks used when a code has no rule at all.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder creates an empty builder with maps pre-sized to hold the
// built-in defaults.
func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[code.Code]int, len(defaultHTTP)),
		grpcDefaults: make(map[code.Code]int, len(defaultGRPC)),

		httpOverride: make(map[code.Code]int),
		grpcOverride: make(map[code.Code]int),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
