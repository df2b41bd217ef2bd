/*
   Copyright 2025 The errdesc Authors

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

	"github.com/sveri/errdesc/apis"
	"github.com/sveri/errdesc/group"
	"github.com/sveri/errdesc/mapper/internal/segmenttrie"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained mapper instance — no shared
// references to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Apply user-provided options (overrides, prefix rules, set defaults).
//  2. Normalize and validate all identities and prefixes.
//  3. Build segment tries (HTTP & gRPC) supporting longest-prefix-match
//     with '*' as a single-segment wildcard.
//  4. Freeze all maps and tries into immutable copies (fresh allocations).
//
// Errors returned from this function indicate invalid identities or prefixes
// during normalization or trie construction.
func New(opts ...Option) (apis.Mapper, error) {
	// (0) Start with an empty builder; the hard fallbacks are pre-seeded.
	b := newBuilder()

	// (1) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (2) Normalize exact overrides. Wildcards make no sense in an exact
	// identity, so they are rejected here.
	httpOverride, err := normalizeIdentMap(b.httpOverride)
	if err != nil {
		return nil, fmt.Errorf("mapper: invalid HTTP override: %w", err)
	}
	grpcOverride, err := normalizeIdentMap(b.grpcOverride)
	if err != nil {
		return nil, fmt.Errorf("mapper: invalid gRPC override: %w", err)
	}

	// (3) Build the HTTP prefix trie.
	httpTrie := segmenttrie.New[int]()
	for _, r := range b.httpPrefixes {
		p, err := normalizePrefix(r.prefix)
		if err != nil {
			return nil, fmt.Errorf("mapper: invalid HTTP prefix %q: %w", r.prefix, err)
		}
		if err := httpTrie.Insert(p, r.val); err != nil {
			return nil, fmt.Errorf("mapper: cannot insert HTTP prefix %q: %w", p, err)
		}
	}

	// (4) Build the gRPC prefix trie. Values are stored as int in the
	// builder and converted to codes.Code here.
	grpcTrie := segmenttrie.New[codes.Code]()
	for _, r := range b.grpcPrefixes {
		p, err := normalizePrefix(r.prefix)
		if err != nil {
			return nil, fmt.Errorf("mapper: invalid gRPC prefix %q: %w", r.prefix, err)
		}
		if err := grpcTrie.Insert(p, codes.Code(r.val)); err != nil {
			return nil, fmt.Errorf("mapper: cannot insert gRPC prefix %q: %w", p, err)
		}
	}

	// (5) Normalize per-set defaults.
	httpSetDefault, err := normalizeIdentMap(b.httpSetDefault)
	if err != nil {
		return nil, fmt.Errorf("mapper: invalid HTTP set default: %w", err)
	}
	grpcSetDefault, err := normalizeIdentMap(b.grpcSetDefault)
	if err != nil {
		return nil, fmt.Errorf("mapper: invalid gRPC set default: %w", err)
	}

	// (6) Freeze everything into a read-only snapshot.
	m := &mapper{
		httpOverride:   httpOverride,
		grpcOverride:   toGRPCMap(grpcOverride),
		httpTrie:       httpTrie,
		grpcTrie:       grpcTrie,
		httpSetDefault: httpSetDefault,
		grpcSetDefault: toGRPCMap(grpcSetDefault),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}

	return m, nil
}

// mapper is an immutable mapper implementation that combines exact identity
// overrides, segment-aware prefix tries, per-set defaults and a global
// fallback. Lookups are O(depth) and safe for concurrent use once
// constructed.
type mapper struct {
	// httpOverride holds explicit HTTP statuses for specific identities.
	httpOverride map[string]int

	// grpcOverride holds explicit gRPC statuses for specific identities.
	grpcOverride map[string]codes.Code

	// httpTrie resolves HTTP statuses based on identity prefixes
	// (dot-separated, with "*" for one-segment wildcards).
	httpTrie *segmenttrie.Trie[int]

	// grpcTrie resolves gRPC statuses based on identity prefixes.
	grpcTrie *segmenttrie.Trie[codes.Code]

	// httpSetDefault holds the base HTTP status for a given set identity.
	// Used when no per-identity rule is present.
	httpSetDefault map[string]int

	// grpcSetDefault holds the base gRPC status for a given set identity.
	grpcSetDefault map[string]codes.Code

	// fallbackHTTP is used when there is no rule at all for an identity.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when there is no rule at all for an identity.
	// Typically codes.Internal.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given descriptor identity.
//
// Resolution order (highest to lowest):
//  1. exact identity override (explicitly registered);
//  2. longest-prefix-match rule over the identity;
//  3. set-level default (identity minus the case segment);
//  4. global fallback (500 unless overridden).
func (m *mapper) HTTPStatus(ident string) int {
	ident = normalizeLookup(ident)

	// 1. Fast path: exact override for this identity.
	if v, ok := m.httpOverride[ident]; ok {
		return v
	}

	// 2. Prefix LPM over the identity.
	if v, ok := m.httpTrie.Match(ident); ok {
		return v
	}

	// 3. Set-level default.
	if v, ok := m.httpSetDefault[setIdent(ident)]; ok {
		return v
	}

	// 4. Ultimate fallback: HTTP must never be zero.
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given descriptor identity.
// Uses the same precedence as HTTPStatus, but returns gRPC codes.
func (m *mapper) GRPCStatus(ident string) codes.Code {
	ident = normalizeLookup(ident)

	// 1. Exact override.
	if v, ok := m.grpcOverride[ident]; ok {
		return v
	}

	// 2. Trie-based LPM.
	if v, ok := m.grpcTrie.Match(ident); ok {
		return v
	}

	// 3. Set-level default.
	if v, ok := m.grpcSetDefault[setIdent(ident)]; ok {
		return v
	}

	// 4. Ultimate fallback.
	return m.fallbackGRPC
}

// Status resolves both HTTP and gRPC using the same input.
// This keeps HTTP/gRPC decisions consistent for a single logical error.
func (m *mapper) Status(ident string) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(ident),
		GRPC: m.GRPCStatus(ident),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular identity.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, prefix, default, or fallback) and, for prefix matches,
// which pattern was used.
//
// Example output:
//
//	ident="encoder.foo_errors.baz_error"
//	http: source=prefix pattern="encoder.foo_errors" -> 422
//	grpc: source=default -> INVALIDARGUMENT(3)
//
// Notes:
//   - source ∈ {override | prefix | default | fallback}
//   - pattern is the rule as it was stored in the trie (may contain "*")
func (m *mapper) Explain(ident string) string {
	ident = normalizeLookup(ident)

	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "ident=%q\n", ident)
	_, _ = fmt.Fprintln(&b, m.explainHTTP(ident))
	_, _ = fmt.Fprintln(&b, m.explainGRPC(ident))
	return strings.TrimSuffix(b.String(), "\n")
}

// explainHTTP returns a formatted line describing how the HTTP status was
// chosen.
func (m *mapper) explainHTTP(ident string) string {
	// 1) exact override
	if v, ok := m.httpOverride[ident]; ok {
		return fmt.Sprintf("http: source=override -> %d", v)
	}

	// 2) LPM against the identity
	if v, ok, pat := m.httpTrie.MatchWithPattern(ident); ok {
		return fmt.Sprintf("http: source=prefix pattern=%q -> %d", pat, v)
	}

	// 3) set-level default
	if v, ok := m.httpSetDefault[setIdent(ident)]; ok {
		return fmt.Sprintf("http: source=default -> %d", v)
	}

	// 4) global fallback
	return fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

// explainGRPC returns a formatted line describing how the gRPC status was
// chosen.
func (m *mapper) explainGRPC(ident string) string {
	// 1) exact override
	if v, ok := m.grpcOverride[ident]; ok {
		return fmt.Sprintf("grpc: source=override -> %s(%d)", strings.ToUpper(v.String()), int(v))
	}

	// 2) LPM against the identity
	if v, ok, pat := m.grpcTrie.MatchWithPattern(ident); ok {
		return fmt.Sprintf("grpc: source=prefix pattern=%q -> %s(%d)", pat, strings.ToUpper(v.String()), int(v))
	}

	// 3) set-level default
	if v, ok := m.grpcSetDefault[setIdent(ident)]; ok {
		return fmt.Sprintf("grpc: source=default -> %s(%d)", strings.ToUpper(v.String()), int(v))
	}

	// 4) global fallback
	return fmt.Sprintf("grpc: source=fallback -> %s(%d)", strings.ToUpper(m.fallbackGRPC.String()), int(m.fallbackGRPC))
}

// setIdent trims the case segment off a full descriptor identity, producing
// the set identity used by the defaults tier. An identity without a dot is
// returned unchanged (records map through overrides/prefixes anyway).
func setIdent(ident string) string {
	if i := strings.LastIndexByte(ident, '.'); i > 0 {
		return ident[:i]
	}
	return ident
}

// normalizeLookup brings a caller-provided identity into canonical lookup
// form. Identities produced by descriptors are already canonical; this keeps
// hand-written lookups (tests, registries) forgiving.
func normalizeLookup(ident string) string {
	return group.Normalize(ident)
}

// normalizeIdent ensures an exact identity is canonical and wildcard-free.
func normalizeIdent(raw string) (string, error) {
	p := group.Normalize(raw)
	if p == "" {
		return "", fmt.Errorf("empty identity")
	}
	for _, seg := range strings.Split(p, ".") {
		if !validIdentSegment(seg, false /* allowWildcard */) {
			return "", fmt.Errorf("invalid segment %q", seg)
		}
	}
	return p, nil
}

// normalizePrefix ensures a prefix rule is canonical and valid.
// It forbids empty prefixes and prefixes consisting of wildcards only.
func normalizePrefix(raw string) (string, error) {
	p := group.Normalize(raw)
	if p == "" {
		return "", fmt.Errorf("empty prefix")
	}
	segs := strings.Split(p, ".")
	allWild := true
	for _, seg := range segs {
		if !validIdentSegment(seg, true /* allowWildcard */) {
			return "", fmt.Errorf("invalid segment %q", seg)
		}
		if seg != "*" {
			allWild = false
		}
	}
	if allWild {
		return "", fmt.Errorf("prefix cannot consist of '*' only")
	}
	return p, nil
}

// normalizeIdentMap normalizes every key of a rule map into a freshly
// allocated map, detaching the snapshot from caller-owned state.
func normalizeIdentMap(src map[string]int) (map[string]int, error) {
	if len(src) == 0 {
		return nil, nil
	}
	dst := make(map[string]int, len(src))
	for k, v := range src {
		ident, err := normalizeIdent(k)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", k, err)
		}
		dst[ident] = v
	}
	return dst, nil
}

// toGRPCMap converts a map of int gRPC codes into a typed gRPC map.
// Builder options store values as int for symmetry with HTTP.
func toGRPCMap(m map[string]int) map[string]codes.Code {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]codes.Code, len(m))
	for k, v := range m {
		out[k] = codes.Code(v)
	}
	return out
}

// validIdentSegment reports whether seg is a valid identity segment.
// Rules:
//   - empty segments are invalid;
//   - the segment "*" is allowed only when allowWildcard=true;
//   - otherwise the segment must match: [a-z][a-z0-9_]*
func validIdentSegment(seg string, allowWildcard bool) bool {
	if seg == "" {
		return false
	}
	if seg == "*" {
		return allowWildcard
	}
	if seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
