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

	"google.golang.org/grpc/codes"
	"gopkg.in/yaml.v3"
)

// rulesDoc is the YAML document shape accepted by FromYAML.
//
// Example:
//
//	fallback:
//	  http: 500
//	  grpc: 13
//	overrides:
//	  - ident: encoder.foo_errors.baz_error
//	    http: 422
//	    grpc: 3
//	prefixes:
//	  - prefix: storage.*
//	    http: 503
//	    grpc: 14
//	defaults:
//	  - set: encoder.foo_errors
//	    http: 400
//	    grpc: 3
//
// A zero (or absent) http/grpc field means "no rule for that transport";
// a rule entry may configure one transport without the other.
type rulesDoc struct {
	Fallback  statusPair `yaml:"fallback"`
	Overrides []identRule `yaml:"overrides"`
	Prefixes  []prefixDoc `yaml:"prefixes"`
	Defaults  []setRule   `yaml:"defaults"`
}

type statusPair struct {
	HTTP int `yaml:"http"`
	GRPC int `yaml:"grpc"`
}

type identRule struct {
	Ident string `yaml:"ident"`
	HTTP  int    `yaml:"http"`
	GRPC  int    `yaml:"grpc"`
}

type prefixDoc struct {
	Prefix string `yaml:"prefix"`
	HTTP   int    `yaml:"http"`
	GRPC   int    `yaml:"grpc"`
}

type setRule struct {
	Set  string `yaml:"set"`
	HTTP int    `yaml:"http"`
	GRPC int    `yaml:"grpc"`
}

// FromYAML parses a YAML rules document and converts it into the equivalent
// slice of Options, ready to be passed to New. This lets deployments keep
// their status-mapping table in configuration rather than in code:
//
//	opts, err := mapper.FromYAML(raw)
//	if err != nil { ... }
//	m, err := mapper.New(opts...)
//
// FromYAML only checks document structure; identity and prefix validation
// happens in New, where all rules (YAML-sourced or not) go through the same
// normalization.
func FromYAML(raw []byte) ([]Option, error) {
	var doc rulesDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("mapper: cannot parse rules document: %w", err)
	}

	var opts []Option

	if doc.Fallback.HTTP != 0 {
		opts = append(opts, WithHTTPFallback(doc.Fallback.HTTP))
	}
	if doc.Fallback.GRPC != 0 {
		opts = append(opts, WithGRPCFallback(codes.Code(doc.Fallback.GRPC)))
	}

	for i, r := range doc.Overrides {
		if r.Ident == "" {
			return nil, fmt.Errorf("mapper: overrides[%d]: missing ident", i)
		}
		if r.HTTP == 0 && r.GRPC == 0 {
			return nil, fmt.Errorf("mapper: overrides[%d] (%q): no status configured", i, r.Ident)
		}
		if r.HTTP != 0 {
			opts = append(opts, WithHTTPOverride(r.Ident, r.HTTP))
		}
		if r.GRPC != 0 {
			opts = append(opts, WithGRPCOverride(r.Ident, r.GRPC))
		}
	}

	for i, r := range doc.Prefixes {
		if r.Prefix == "" {
			return nil, fmt.Errorf("mapper: prefixes[%d]: missing prefix", i)
		}
		if r.HTTP == 0 && r.GRPC == 0 {
			return nil, fmt.Errorf("mapper: prefixes[%d] (%q): no status configured", i, r.Prefix)
		}
		if r.HTTP != 0 {
			opts = append(opts, WithHTTPPrefix(r.Prefix, r.HTTP))
		}
		if r.GRPC != 0 {
			opts = append(opts, WithGRPCPrefix(r.Prefix, r.GRPC))
		}
	}

	for i, r := range doc.Defaults {
		if r.Set == "" {
			return nil, fmt.Errorf("mapper: defaults[%d]: missing set", i)
		}
		if r.HTTP == 0 && r.GRPC == 0 {
			return nil, fmt.Errorf("mapper: defaults[%d] (%q): no status configured", i, r.Set)
		}
		if r.HTTP != 0 {
			opts = append(opts, WithHTTPSetDefault(r.Set, r.HTTP))
		}
		if r.GRPC != 0 {
			opts = append(opts, WithGRPCSetDefault(r.Set, r.GRPC))
		}
	}

	return opts, nil
}
