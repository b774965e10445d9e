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

package extract

import (
	"reflect"

	"zeturn.dev/zerr/apis"
	"zeturn.dev/zerr/code"
)

// Library-wide extraction defaults. These are the values the package-level
// functions fall back to, and the values an Extractor uses for any override
// left unset.
const (
	// UnknownCode is returned when no code could be extracted.
	UnknownCode = string(code.Unknown)

	// UnknownMsg is returned when no message could be extracted. It is also
	// the generic message adapters substitute for non-user-facing failures.
	UnknownMsg = "zeturn: unknown"
)

// mapKeys / structFields name the places a code or message may hide in a
// value of unknown shape. Map keys are matched as-is; struct fields must be
// exported string fields.
var (
	codeMapKeys      = []string{"code"}
	codeStructFields = []string{"Code"}
	msgMapKeys       = []string{"message", "msg"}
	msgStructFields  = []string{"Message", "Msg"}
)

// CodeFromError extracts a machine-readable code from a caught value of
// arbitrary shape, falling back to UnknownCode.
//
// See Extractor.CodeFromError for the inspection rules. CodeFromError never
// panics, whatever v is.
func CodeFromError(v any) string {
	return codeFrom(v, UnknownCode)
}

// MsgFromError extracts a human-readable message from a caught value of
// arbitrary shape, falling back to UnknownMsg.
//
// See Extractor.MsgFromError for the inspection rules. MsgFromError never
// panics, whatever v is.
func MsgFromError(v any) string {
	return msgFrom(v, UnknownMsg)
}

// Config carries optional override defaults for an Extractor. Any field left
// empty falls back to the library-wide sentinel (UnknownCode / UnknownMsg).
type Config struct {
	// NotFoundCode is returned by CodeFromError when no code is found.
	NotFoundCode string

	// NotFoundMsg is returned by MsgFromError when no message is found.
	NotFoundMsg string
}

// Extractor is the custom-default variant of the package-level extraction
// functions. The configuration is captured at construction and immutable
// afterwards, so a single Extractor is safe for concurrent use.
type Extractor struct {
	notFoundCode string
	notFoundMsg  string
}

// New returns an Extractor whose extraction operations fall back to the
// configured defaults instead of the library-wide sentinels.
func New(cfg Config) *Extractor {
	if cfg.NotFoundCode == "" {
		cfg.NotFoundCode = UnknownCode
	}
	if cfg.NotFoundMsg == "" {
		cfg.NotFoundMsg = UnknownMsg
	}
	return &Extractor{
		notFoundCode: cfg.NotFoundCode,
		notFoundMsg:  cfg.NotFoundMsg,
	}
}

// CodeFromError extracts a machine-readable code from v, falling back to the
// configured NotFoundCode.
//
// Inspection order:
//  1. apis.CodedError — the error declares its own code;
//  2. a "code" key in a map[string]any / map[string]string;
//  3. an exported string field Code on a struct (or pointer to struct).
//
// Only non-empty string values count; anything else is treated as absent.
// The method never panics: nil, primitives and malformed shapes all resolve
// to the default.
func (x *Extractor) CodeFromError(v any) string {
	return codeFrom(v, x.notFoundCode)
}

// MsgFromError extracts a human-readable message from v, falling back to the
// configured NotFoundMsg.
//
// Inspection order:
//  1. apis.MessagedError — the error exposes its bare message;
//  2. a "message" or "msg" key in a map[string]any / map[string]string;
//  3. an exported string field Message or Msg on a struct (or pointer);
//  4. the error interface — Error() is the Go analogue of a caught
//     exception's message field.
//
// The same absence and safety rules as CodeFromError apply.
func (x *Extractor) MsgFromError(v any) string {
	return msgFrom(v, x.notFoundMsg)
}

// codeFrom is the single implementation behind both code surfaces; the
// fallback is a parameter so shared-default and custom-default modes cannot
// drift apart.
func codeFrom(v any, fallback string) string {
	if isNil(v) {
		return fallback
	}
	if ce, ok := v.(apis.CodedError); ok {
		if c := ce.ErrorCode(); c != "" {
			return c
		}
	}
	if s, ok := stringField(v, codeMapKeys, codeStructFields); ok {
		return s
	}
	return fallback
}

// msgFrom is the single implementation behind both message surfaces.
func msgFrom(v any, fallback string) string {
	if isNil(v) {
		return fallback
	}
	if me, ok := v.(apis.MessagedError); ok {
		if m := me.ErrorMessage(); m != "" {
			return m
		}
	}
	if s, ok := stringField(v, msgMapKeys, msgStructFields); ok {
		return s
	}
	if err, ok := v.(error); ok {
		if m := err.Error(); m != "" {
			return m
		}
	}
	return fallback
}

// isNil reports whether v is nil in any of the ways an `any` can be: the
// nil interface itself, or a typed nil pointer/map/slice/func/channel.
// Calling interface methods on a typed nil pointer can panic, so both forms
// must be caught before any other inspection.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// stringField safely reads the first non-empty string under one of the given
// map keys or exported struct fields. It is the runtime type guard that
// replaces optional chaining over values of unreliable shape: no input can
// make it panic.
func stringField(v any, mapKeys, fieldNames []string) (string, bool) {
	switch m := v.(type) {
	case map[string]any:
		for _, k := range mapKeys {
			if s, ok := m[k].(string); ok && s != "" {
				return s, true
			}
		}
		return "", false
	case map[string]string:
		for _, k := range mapKeys {
			if s := m[k]; s != "" {
				return s, true
			}
		}
		return "", false
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return "", false
	}
	for _, name := range fieldNames {
		f := rv.FieldByName(name)
		if f.IsValid() && f.Kind() == reflect.String && f.CanInterface() {
			if s := f.String(); s != "" {
				return s, true
			}
		}
	}
	return "", false
}
