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

// Library sentinels.
//
// These two codes are the defaults the library itself injects; every other
// code in a Failure comes from the caller.
const (
	// None is the code a Failure receives when the producer supplied none.
	// It guarantees that Failure.Code is never empty, so consumers can read
	// it without existence checks.
	None Code = "no_error_code"

	// Unknown is the code the extraction helpers fall back to when a caught
	// value carries no recognizable code at all.
	Unknown Code = "zeturn_unknown"
)

// Well-known domain error codes.
//
// These describe high-level, transport-agnostic error classes. They are a
// convention, not a closed set: any string passing Validate is a legal code,
// and zerr.Err accepts arbitrary non-empty codes unchanged. The transport
// mapper ships defaults for exactly this list.
const (
	// Internal indicates an internal, non-classified failure. Use this as
	// the fallback when no more specific code applies.
	// Mapped to HTTP 500 by default.
	Internal Code = "internal"

	// Invalid indicates that an input value violates a structural or
	// semantic invariant (format, range, cross-field consistency).
	// Mapped to HTTP 400 by default.
	Invalid Code = "invalid"

	// Missing indicates that a required value or structure is absent.
	// Mapped to HTTP 400 by default.
	Missing Code = "missing"

	// NotFound indicates that the requested entity does not exist in the
	// current scope or storage.
	// Mapped to HTTP 404 by default.
	NotFound Code = "not_found"

	// AlreadyExists indicates a creation clash: an entity with the same
	// primary identity already exists.
	// Mapped to HTTP 409 by default.
	AlreadyExists Code = "already_exists"

	// Conflict indicates a domain-state conflict that is not strictly
	// "already exists": version mismatches, concurrent updates, collisions.
	// Mapped to HTTP 409 by default.
	Conflict Code = "conflict"

	// Unauthenticated indicates that the caller's identity could not be
	// established at all.
	// Mapped to HTTP 401 by default.
	Unauthenticated Code = "unauthenticated"

	// PermissionDenied indicates that the caller is authenticated but not
	// allowed to perform the operation.
	// Mapped to HTTP 403 by default.
	PermissionDenied Code = "permission_denied"

	// RateLimited indicates that the caller exceeded the allowed request or
	// action rate in the current window.
	// Mapped to HTTP 429 by default.
	RateLimited Code = "rate_limited"

	// Timeout indicates that the operation could not complete within its
	// time budget.
	// Mapped to HTTP 504 by default.
	Timeout Code = "timeout"

	// Unavailable indicates that a required downstream dependency or the
	// service itself is temporarily unreachable.
	// Mapped to HTTP 503 by default.
	Unavailable Code = "unavailable"
)
