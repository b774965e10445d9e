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
	"testing"

	"google.golang.org/grpc/codes"

	"zeturn.dev/zerr/apis"
	"zeturn.dev/zerr/code"
)

func mustNew(t *testing.T, opts ...Option) apis.Mapper {
	t.Helper()
	m, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestDefaults(t *testing.T) {
	m := mustNew(t)

	tests := []struct {
		c        code.Code
		wantHTTP int
		wantGRPC codes.Code
	}{
		{code.Internal, http.StatusInternalServerError, codes.Internal},
		{code.Invalid, http.StatusBadRequest, codes.InvalidArgument},
		{code.NotFound, http.StatusNotFound, codes.NotFound},
		{code.Unauthenticated, http.StatusUnauthorized, codes.Unauthenticated},
		{code.PermissionDenied, http.StatusForbidden, codes.PermissionDenied},
		{code.RateLimited, http.StatusTooManyRequests, codes.ResourceExhausted},
		{code.Timeout, http.StatusGatewayTimeout, codes.DeadlineExceeded},
		{code.Unavailable, http.StatusServiceUnavailable, codes.Unavailable},
	}
	for _, tt := range tests {
		if got := m.HTTPStatus(tt.c); got != tt.wantHTTP {
			t.Fatalf("HTTPStatus(%q) = %d, want %d", tt.c, got, tt.wantHTTP)
		}
		if got := m.GRPCStatus(tt.c); got != tt.wantGRPC {
			t.Fatalf("GRPCStatus(%q) = %v, want %v", tt.c, got, tt.wantGRPC)
		}
	}
}

func TestFallback_UnknownAndSentinelCodes(t *testing.T) {
	m := mustNew(t)

	for _, c := range []code.Code{"mystery", code.None, code.Unknown} {
		if got := m.HTTPStatus(c); got != http.StatusInternalServerError {
			t.Fatalf("HTTPStatus(%q) = %d, want 500", c, got)
		}
		if got := m.GRPCStatus(c); got != codes.Internal {
			t.Fatalf("GRPCStatus(%q) = %v, want Internal", c, got)
		}
	}
}

func TestOverride_BeatsDefaultAndPrefix(t *testing.T) {
	m := mustNew(t,
		WithHTTPPrefix("not", 599),
		WithHTTPOverride(code.NotFound, http.StatusGone),
		WithGRPCOverride(code.NotFound, int(codes.FailedPrecondition)),
	)

	if got := m.HTTPStatus(code.NotFound); got != http.StatusGone {
		t.Fatalf("override HTTP = %d, want 410", got)
	}
	if got := m.GRPCStatus(code.NotFound); got != codes.FailedPrecondition {
		t.Fatalf("override gRPC = %v, want FailedPrecondition", got)
	}
}

func TestPrefix_LongestMatchWins(t *testing.T) {
	m := mustNew(t,
		WithHTTPPrefix("token", http.StatusUnauthorized),
		WithHTTPPrefix("token_expired", 440),
		WithGRPCPrefix("token", int(codes.Unauthenticated)),
	)

	if got := m.HTTPStatus("token_invalid"); got != http.StatusUnauthorized {
		t.Fatalf("HTTPStatus(token_invalid) = %d, want 401", got)
	}
	if got := m.HTTPStatus("token_expired"); got != 440 {
		t.Fatalf("HTTPStatus(token_expired) = %d, want 440", got)
	}
	if got := m.HTTPStatus("token_expired_hard"); got != 440 {
		t.Fatalf("HTTPStatus(token_expired_hard) = %d, want 440", got)
	}
	if got := m.GRPCStatus("token_expired"); got != codes.Unauthenticated {
		t.Fatalf("GRPCStatus(token_expired) = %v, want Unauthenticated", got)
	}

	// prefix rules beat per-code defaults for matching codes,
	// but unrelated codes keep their defaults
	if got := m.HTTPStatus(code.NotFound); got != http.StatusNotFound {
		t.Fatalf("HTTPStatus(not_found) = %d, want 404", got)
	}
}

func TestPrefix_Wildcard(t *testing.T) {
	m := mustNew(t,
		WithHTTPPrefix("*_expired", 440),
	)

	if got := m.HTTPStatus("token_expired"); got != 440 {
		t.Fatalf("HTTPStatus(token_expired) = %d, want 440", got)
	}
	if got := m.HTTPStatus("session_expired"); got != 440 {
		t.Fatalf("HTTPStatus(session_expired) = %d, want 440", got)
	}
	if got := m.HTTPStatus("expired"); got == 440 {
		t.Fatalf("HTTPStatus(expired) must not match two-segment rule")
	}
}

func TestPrefix_NormalizedBeforeInsert(t *testing.T) {
	m := mustNew(t,
		WithHTTPPrefix("  TOKEN-EXPIRED  ", 440),
	)
	if got := m.HTTPStatus("token_expired"); got != 440 {
		t.Fatalf("HTTPStatus(token_expired) = %d, want 440 after normalization", got)
	}
}

func TestNew_InvalidPrefix(t *testing.T) {
	for _, p := range []string{"", "*", "a__b"} {
		if _, err := New(WithHTTPPrefix(p, 500)); err == nil {
			t.Fatalf("New with prefix %q must fail", p)
		}
		if _, err := New(WithGRPCPrefix(p, int(codes.Internal))); err == nil {
			t.Fatalf("New with gRPC prefix %q must fail", p)
		}
	}
}

func TestWithDefault_ReplacesBuiltin(t *testing.T) {
	m := mustNew(t,
		WithHTTPDefault(code.Conflict, http.StatusPreconditionFailed),
		WithGRPCDefault(code.Conflict, int(codes.FailedPrecondition)),
	)
	if got := m.HTTPStatus(code.Conflict); got != http.StatusPreconditionFailed {
		t.Fatalf("replaced default HTTP = %d, want 412", got)
	}
	if got := m.GRPCStatus(code.Conflict); got != codes.FailedPrecondition {
		t.Fatalf("replaced default gRPC = %v, want FailedPrecondition", got)
	}
}

func TestStatus_ConsistentWithSingleLookups(t *testing.T) {
	m := mustNew(t)
	st := m.Status(code.NotFound)
	if st.HTTP != m.HTTPStatus(code.NotFound) || st.GRPC != m.GRPCStatus(code.NotFound) {
		t.Fatalf("Status() = %+v diverges from individual lookups", st)
	}
}

func TestSnapshot_DetachedFromLaterOptionsState(t *testing.T) {
	// Freezing must detach the mapper from the builder maps: building a
	// second mapper with different options must not affect the first.
	m1 := mustNew(t)
	m2 := mustNew(t, WithHTTPOverride(code.NotFound, http.StatusGone))

	if got := m1.HTTPStatus(code.NotFound); got != http.StatusNotFound {
		t.Fatalf("first mapper changed after second build: %d", got)
	}
	if got := m2.HTTPStatus(code.NotFound); got != http.StatusGone {
		t.Fatalf("second mapper missing its override: %d", got)
	}
}
