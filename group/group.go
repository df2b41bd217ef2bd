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

package group

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Group is the canonical, validated namespace of a set or record.
//
// Groups are dot-separated hierarchical identifiers with a small, fixed depth.
// Each segment names a module or component inside the system.
//
// Example valid groups:
//
//   - "encoder"
//   - "storage.pg"
//   - "auth.jwt"
//   - "network.dns.resolve"
//
// The intent is to make it easy to programmatically build such identifiers
// from known package/component names, and later to let transport mappers
// quickly match on these prefixes.
type Group string

// MinLength and MaxLength define the allowed length range for a canonical
// group string.
const (
	// MinLength is the minimum length for a non-empty group.
	// We keep it at 3 so that trivial values like "x" are not considered
	// meaningful groups. Remember: the empty string is still allowed and
	// means "no group provided".
	MinLength = 3

	// MaxLength is the maximum length for a valid group.
	// 128 characters is enough even for 4 segments with descriptive names.
	MaxLength = 128
)

const (
	// groupFmt is the canonical regular expression used to validate groups.
	//
	// We accept 1 to 4 segments, dot-separated, each segment:
	//
	//   - starts with a lowercase ASCII letter [a-z]
	//   - continues with lowercase letters, digits, or underscore [a-z0-9_]*
	//
	// Examples that match:
	//
	//	"encoder"
	//	"storage.pg"
	//	"auth.jwt.verify"
	//
	// Examples that DO NOT match:
	//
	//	"Encoder"         (uppercase)
	//	"storage/pg"      (slash)
	//	"storage..pg"     (empty segment)
	//	"1storage.pg"     (digit first)
	//
	// NOTE: empty string ("") is treated separately as "optional group" and
	// does not go through this regexp.
	groupFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`
)

var (
	// groupRe is the compiled regexp for the above pattern.
	groupRe = regexp.MustCompile(groupFmt)
)

var (
	// ErrGroupInvalidFormat is returned when a group does not conform to
	// the expected format.
	ErrGroupInvalidFormat = errors.New("errdesc: invalid group format")
	// ErrGroupInvalidLength is returned when a group is too short or too long.
	ErrGroupInvalidLength = errors.New("errdesc: invalid group length")
)

// Ensure Group implements encoding.TextMarshaler / encoding.TextUnmarshaler.
var (
	_ encoding.TextMarshaler   = (*Group)(nil)
	_ encoding.TextUnmarshaler = (*Group)(nil)
)

// Empty is the zero-value group. It is considered "not provided" and is valid
// to store alongside set definitions. Callers that require a non-empty,
// canonical group should explicitly call Validate.
var Empty Group = ""

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical group form.
//
// We do *very* conservative transformations:
//
//   - trim spaces
//   - lower-case
//   - convert "/" to "." (because callers may build paths with slashes)
//   - replace "-" with "_" (to align with identifier style)
//
// It does NOT guarantee validity — callers should still call Parse/Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Group value.
//
// Parse also accepts the empty string and returns group.Empty without error.
// This is what makes Group an "optional" part of the descriptor model.
func Parse(s string) (Group, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Group(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level group constants in var/const blocks.
//
// NOTE: unlike Parse, MustParse does NOT allow the empty string — passing
// an empty string here is almost always a programmer error.
func MustParse(s string) Group {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if g == Empty {
		panic("errdesc: empty group in MustParse")
	}
	return g
}

// Validate checks whether the provided Group is in canonical form.
//
// The empty group ("") is considered valid here, because the whole point of
// this type is to be optional. If you need to enforce "must be non-empty",
// add that check at call site.
func Validate(g Group) error {
	if g == Empty {
		return nil
	}
	return validate(string(g))
}

// String returns the canonical string representation of the group.
func (g Group) String() string {
	return string(g)
}

// MarshalText implements encoding.TextMarshaler.
//
// We allow marshaling of the empty group as an empty slice to not break
// JSON/YAML encoders that rely on TextMarshaler.
func (g Group) MarshalText() ([]byte, error) {
	if err := Validate(g); err != nil {
		return nil, err
	}
	if g == Empty {
		return []byte{}, nil
	}
	return []byte(g), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
// An empty or whitespace-only input will produce group.Empty.
func (g *Group) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// validate is the internal helper that checks length and format.
func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrGroupInvalidLength
	}
	if !groupRe.MatchString(s) {
		return ErrGroupInvalidFormat
	}
	return nil
}
