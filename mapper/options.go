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

import "google.golang.org/grpc/codes"

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPOverride registers an exact HTTP override for the given descriptor
// identity. Overrides are the highest tier: they beat prefix rules and set
// defaults.
func WithHTTPOverride(ident string, http int) Option {
	return func(b *builder) { b.httpOverride[ident] = http }
}

// WithGRPCOverride registers an exact gRPC override for the given descriptor
// identity. Overrides are the highest tier: they beat prefix rules and set
// defaults.
func WithGRPCOverride(ident string, grpc int) Option {
	return func(b *builder) { b.grpcOverride[ident] = grpc }
}

// WithHTTPPrefix adds an HTTP longest-prefix-match rule. The rule is
// evaluated against the full dotted identity. A more specific prefix wins.
// Use "*" to match a single segment.
func WithHTTPPrefix(prefix string, http int) Option {
	return func(b *builder) { b.httpPrefixes = append(b.httpPrefixes, prefixRule{prefix, http}) }
}

// WithGRPCPrefix adds a gRPC longest-prefix-match rule. The rule is
// evaluated against the full dotted identity. A more specific prefix wins.
// Use "*" to match a single segment.
func WithGRPCPrefix(prefix string, grpc int) Option {
	return func(b *builder) { b.grpcPrefixes = append(b.grpcPrefixes, prefixRule{prefix, grpc}) }
}

// WithHTTPSetDefault sets the HTTP status applied to every case of a set
// when no override and no prefix rule matched. The key is the set identity —
// the descriptor identity with its case segment removed, e.g.
// "encoder.foo_errors".
func WithHTTPSetDefault(setIdent string, http int) Option {
	return func(b *builder) { b.httpSetDefault[setIdent] = http }
}

// WithGRPCSetDefault mirrors WithHTTPSetDefault for gRPC.
func WithGRPCSetDefault(setIdent string, grpc int) Option {
	return func(b *builder) { b.grpcSetDefault[setIdent] = grpc }
}

// WithHTTPFallback replaces the global HTTP fallback (500 by default).
func WithHTTPFallback(http int) Option {
	return func(b *builder) { b.fallbackHTTP = http }
}

// WithGRPCFallback replaces the global gRPC fallback (codes.Internal by
// default).
func WithGRPCFallback(grpc codes.Code) Option {
	return func(b *builder) { b.fallbackGRPC = grpc }
}
