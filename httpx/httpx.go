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
	"encoding/json"
	"net/http"
	"strconv"

	"zeturn.dev/zerr"
	"zeturn.dev/zerr/adapter"
	"zeturn.dev/zerr/apis"
	"zeturn.dev/zerr/code"
)

// Meta carries extra context the HTTP layer can add on top of a failure.
// All fields are optional and typically come from request context, headers,
// or rate-limiter output.
type Meta struct {
	// RequestID is echoed back in the X-Request-Id header when set.
	RequestID string

	// RetryAfterSeconds emits a Retry-After header when positive.
	RetryAfterSeconds int
}

// Writer is a thin adapter that knows how to turn a zerr.Failure into an
// HTTP response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write resolves the failure's status via the Mapper and writes the JSON
// ErrorView to rw. The view's message is redacted for non-user-facing
// failures (adapter.PublicMsg); no other filtering is performed.
//
// A nil failure writes nothing, so handlers can call Write unconditionally
// on their error path.
func (w Writer) Write(rw http.ResponseWriter, f *zerr.Failure, meta Meta) {
	if f == nil {
		return
	}

	st := w.Mapper.Status(code.Code(f.Code))
	view := adapter.ToView(f)

	rw.Header().Set("Content-Type", "application/json")
	if meta.RequestID != "" {
		rw.Header().Set("X-Request-Id", meta.RequestID)
	}
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(meta.RetryAfterSeconds))
	}
	rw.WriteHeader(st.HTTP)

	b, _ := json.Marshal(view)
	_, _ = rw.Write(b)
}
