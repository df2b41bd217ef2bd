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
	"net/http"

	"google.golang.org/grpc/codes"
)

type prefixRule struct {
	// prefix is the raw, dot-separated identity prefix (may contain "*").
	// It is validated/normalized when we build the trie.
	prefix string
	// val is the numeric transport status to apply when this prefix matches.
	// For HTTP this is the final value; for gRPC we store ints in the builder
	// and convert to codes.Code later.
	val int
}

type builder struct {
	// httpOverride holds exact per-identity HTTP overrides (highest tier).
	httpOverride map[string]int
	// grpcOverride holds exact per-identity gRPC overrides as ints; converted in New().
	grpcOverride map[string]int

	// httpPrefixes holds LPM rules for HTTP, defined as raw prefixRule
	// and later compiled into a segment trie.
	httpPrefixes []prefixRule
	// grpcPrefixes holds LPM rules for gRPC.
	grpcPrefixes []prefixRule

	// httpSetDefault holds per-set HTTP defaults, keyed by the set identity
	// (the descriptor identity with its case segment removed).
	httpSetDefault map[string]int
	// grpcSetDefault holds per-set gRPC defaults as ints; converted in New().
	grpcSetDefault map[string]int

	// global fallbacks used when nothing else matches.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder creates an empty builder with the hard fallbacks pre-seeded.
func newBuilder() *builder {
	return &builder{
		// overrides, prefixes and set defaults are usually few
		httpOverride:   make(map[string]int),
		grpcOverride:   make(map[string]int),
		httpSetDefault: make(map[string]int),
		grpcSetDefault: make(map[string]int),

		// hard fallbacks if the identity was never seen
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
