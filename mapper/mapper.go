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
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"

	"zeturn.dev/zerr/apis"
	"zeturn.dev/zerr/code"
	"zeturn.dev/zerr/mapper/internal/codetrie"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting mapper is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained instance: no references to
// global state or caller-provided structures remain.
//
// Build process:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, prefix rules).
//  3. Normalize and validate all prefix rules and compile them into segment
//     tries supporting longest-prefix-match with '*' as a single-segment
//     wildcard.
//  4. Freeze all maps into fresh copies.
//
// An error indicates an invalid prefix rule.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	// Seed with package-level defaults, copied into builder-owned maps so
	// options can replace entries without touching the shared tables.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Stored as int for builder uniformity; typed again when freezing.
		b.grpcDefaults[k] = int(v)
	}

	for _, opt := range opts {
		opt(b)
	}

	httpTrie, err := compile[int](b.httpPrefixes, func(v int) int { return v })
	if err != nil {
		return nil, fmt.Errorf("mapper: HTTP %w", err)
	}
	grpcTrie, err := compile[codes.Code](b.grpcPrefixes, func(v int) codes.Code { return codes.Code(v) })
	if err != nil {
		return nil, fmt.Errorf("mapper: gRPC %w", err)
	}

	return &mapper{
		httpDefault:  freeze(b.httpDefaults),
		grpcDefault:  freezeTyped(b.grpcDefaults),
		httpOverride: freeze(b.httpOverride),
		grpcOverride: freezeTyped(b.grpcOverride),
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// compile normalizes, validates and inserts prefix rules into a fresh trie.
// Returns a nil trie when there are no rules.
func compile[T any](rules []prefixRule, conv func(int) T) (*codetrie.Trie[T], error) {
	if len(rules) == 0 {
		return nil, nil
	}
	t := codetrie.New[T]()
	for _, r := range rules {
		p := code.Normalize(r.prefix)
		if err := t.Insert(p, conv(r.val)); err != nil {
			return nil, fmt.Errorf("prefix %q: %w", r.prefix, err)
		}
	}
	return t, nil
}

// freeze copies a builder map so later builder mutations cannot leak into
// the frozen mapper. Empty maps become nil to simplify lookups.
func freeze(src map[code.Code]int) map[code.Code]int {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Code]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeTyped is freeze for gRPC maps, converting builder ints into typed
// status codes.
func freezeTyped(src map[code.Code]int) map[code.Code]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Code]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}

// mapper is an immutable implementation combining exact overrides,
// segment-aware prefix tries, and per-code defaults. Lookups are O(segments)
// and safe for concurrent use once constructed.
type mapper struct {
	// httpDefault / grpcDefault hold the base status for a given code, used
	// when no override and no prefix rule applies.
	httpDefault map[code.Code]int
	grpcDefault map[code.Code]codes.Code

	// httpOverride / grpcOverride hold explicit statuses for specific codes.
	// These take precedence over everything else.
	httpOverride map[code.Code]int
	grpcOverride map[code.Code]codes.Code

	// httpTrie / grpcTrie resolve statuses by longest code-prefix match
	// (underscore-separated, "*" matching one segment). May be nil.
	httpTrie *codetrie.Trie[int]
	grpcTrie *codetrie.Trie[codes.Code]

	// fallbackHTTP / fallbackGRPC apply when no rule knows the code at all.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given code.
//
// Resolution order (highest to lowest):
//  1. exact per-code override;
//  2. longest-prefix match over the code's segments;
//  3. per-code default (library or user replaced);
//  4. the fallback (500). HTTP must never be zero.
func (m *mapper) HTTPStatus(c code.Code) int {
	if v, ok := m.httpOverride[c]; ok {
		return v
	}
	if v, ok := m.httpTrie.Match(string(c)); ok {
		return v
	}
	if v, ok := m.httpDefault[c]; ok {
		return v
	}
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given code, with the same
// precedence as HTTPStatus.
func (m *mapper) GRPCStatus(c code.Code) codes.Code {
	if v, ok := m.grpcOverride[c]; ok {
		return v
	}
	if v, ok := m.grpcTrie.Match(string(c)); ok {
		return v
	}
	if v, ok := m.grpcDefault[c]; ok {
		return v
	}
	return m.fallbackGRPC
}

// Status resolves both transports for a single logical failure, keeping the
// two decisions consistent.
func (m *mapper) Status(c code.Code) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c),
		GRPC: m.GRPCStatus(c),
	}
}

// Explain produces a textual trace of how the mapper resolved both statuses
// for a code. It is a diagnostic tool: it shows which tier matched
// (override, prefix, default, or fallback) and, for prefix matches, which
// pattern was used.
//
// Example output:
//
//	code="token_expired"
//	http: source=prefix pattern="token" -> 401
//	grpc: source=default -> UNAUTHENTICATED(16)
func (m *mapper) Explain(c code.Code) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q\n", string(c))
	_, _ = fmt.Fprintln(&b, m.explainHTTP(c))
	_, _ = fmt.Fprintln(&b, m.explainGRPC(c))
	return strings.TrimSuffix(b.String(), "\n")
}

func (m *mapper) explainHTTP(c code.Code) string {
	if v, ok := m.httpOverride[c]; ok {
		return fmt.Sprintf("http: source=override -> %d", v)
	}
	if v, ok, pat := m.httpTrie.MatchWithPattern(string(c)); ok {
		return fmt.Sprintf("http: source=prefix pattern=%q -> %d", pat, v)
	}
	if v, ok := m.httpDefault[c]; ok {
		return fmt.Sprintf("http: source=default -> %d", v)
	}
	return fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

func (m *mapper) explainGRPC(c code.Code) string {
	if v, ok := m.grpcOverride[c]; ok {
		return fmt.Sprintf("grpc: source=override -> %s", grpcName(v))
	}
	if v, ok, pat := m.grpcTrie.MatchWithPattern(string(c)); ok {
		return fmt.Sprintf("grpc: source=prefix pattern=%q -> %s", pat, grpcName(v))
	}
	if v, ok := m.grpcDefault[c]; ok {
		return fmt.Sprintf("grpc: source=default -> %s", grpcName(v))
	}
	return fmt.Sprintf("grpc: source=fallback -> %s", grpcName(m.fallbackGRPC))
}

func grpcName(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", strings.ToUpper(c.String()), int(c))
}
