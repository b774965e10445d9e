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

// defaultHTTP defines the built-in HTTP mappings for the well-known zeturn
// codes. These are only defaults: integrators override them at the boundary
// where HTTP is actually produced.
//
// The two sentinels (code.None, code.Unknown) are intentionally absent: a
// failure that never got a real code is an internal error, so both fall
// through to the 500 fallback.
var defaultHTTP = map[code.Code]int{
	// 5xx — server / dependency / transient issues.
	code.Internal:    http.StatusInternalServerError,
	code.Unavailable: http.StatusServiceUnavailable,
	code.Timeout:     http.StatusGatewayTimeout,

	// 4xx — client / resource issues.
	code.Invalid:  http.StatusBadRequest,
	code.Missing:  http.StatusBadRequest,
	code.NotFound: http.StatusNotFound,

	// Conflicts.
	code.AlreadyExists: http.StatusConflict,
	code.Conflict:      http.StatusConflict,

	// AuthN / AuthZ.
	code.Unauthenticated:  http.StatusUnauthorized,
	code.PermissionDenied: http.StatusForbidden,

	// Rate limiting.
	code.RateLimited: http.StatusTooManyRequests,
}

// defaultGRPC defines the built-in gRPC mappings for the well-known zeturn
// codes, aligned with canonical gRPC status semantics.
var defaultGRPC = map[code.Code]codes.Code{
	code.Internal:    codes.Internal,
	code.Unavailable: codes.Unavailable,
	code.Timeout:     codes.DeadlineExceeded,

	code.Invalid:  codes.InvalidArgument,
	code.Missing:  codes.InvalidArgument,
	code.NotFound: codes.NotFound,

	code.AlreadyExists: codes.AlreadyExists,
	code.Conflict:      codes.Aborted, // general conflict: concurrent updates etc.

	code.Unauthenticated:  codes.Unauthenticated,
	code.PermissionDenied: codes.PermissionDenied,

	code.RateLimited: codes.ResourceExhausted,
}
