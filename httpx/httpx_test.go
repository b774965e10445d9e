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

package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"zeturn.dev/zerr"
	"zeturn.dev/zerr/mapper"
)

func newWriter(t *testing.T) Writer {
	t.Helper()
	m, err := mapper.New()
	require.NoError(t, err)
	return Writer{Mapper: m}
}

func TestWrite_UserFacingFailure(t *testing.T) {
	require := require.New(t)
	w := newWriter(t)

	f := zerr.E("user not found", zerr.WithCodeOption("not_found"), zerr.WithShowOption())
	rec := httptest.NewRecorder()
	w.Write(rec, &f, Meta{RequestID: "req-1"})

	require.Equal(http.StatusNotFound, rec.Code)
	require.Equal("application/json", rec.Header().Get("Content-Type"))
	require.Equal("req-1", rec.Header().Get("X-Request-Id"))
	require.JSONEq(`{"code":"not_found","msg":"user not found","show":true}`, rec.Body.String())
}

func TestWrite_RedactsInternalMessage(t *testing.T) {
	require := require.New(t)
	w := newWriter(t)

	f := zerr.E("pg: connection refused", zerr.WithCodeOption("unavailable"))
	rec := httptest.NewRecorder()
	w.Write(rec, &f, Meta{})

	require.Equal(http.StatusServiceUnavailable, rec.Code)
	require.JSONEq(`{"code":"unavailable","msg":"zeturn: unknown","show":false}`, rec.Body.String())
	require.NotContains(rec.Body.String(), "connection refused")
}

func TestWrite_UnknownCodeFallsBackTo500(t *testing.T) {
	require := require.New(t)
	w := newWriter(t)

	f := zerr.E("boom") // code defaults to no_error_code
	rec := httptest.NewRecorder()
	w.Write(rec, &f, Meta{})

	require.Equal(http.StatusInternalServerError, rec.Code)
	require.JSONEq(`{"code":"no_error_code","msg":"zeturn: unknown","show":false}`, rec.Body.String())
}

func TestWrite_RetryAfterHeader(t *testing.T) {
	require := require.New(t)
	w := newWriter(t)

	f := zerr.E("slow down", zerr.WithCodeOption("rate_limited"), zerr.WithShowOption())
	rec := httptest.NewRecorder()
	w.Write(rec, &f, Meta{RetryAfterSeconds: 30})

	require.Equal(http.StatusTooManyRequests, rec.Code)
	require.Equal("30", rec.Header().Get("Retry-After"))
}

func TestWrite_NilFailureWritesNothing(t *testing.T) {
	require := require.New(t)
	w := newWriter(t)

	rec := httptest.NewRecorder()
	w.Write(rec, nil, Meta{})

	require.Equal(http.StatusOK, rec.Code) // recorder default, untouched
	require.Empty(rec.Body.String())
	require.Empty(rec.Header().Get("Content-Type"))
}
