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

package name

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Name is the canonical, validated identifier of a set, record or case.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw user input with validated identifiers.
//
// IMPORTANT: Empty names ("") are NOT allowed. Every declared set, record
// and case MUST have a non-empty name.
type Name string

// MinLength and MaxLength define the allowed length range for a name.
//
// We keep these values as separate constants so they can be referenced in
// validation errors, tests, or in other packages that want to mirror the same
// constraints.
const (
	// MinLength is the minimum length for a valid name. A single letter is
	// allowed — short case names like "E" are legal identifiers in the
	// source declarations we mirror.
	MinLength = 1

	// MaxLength is the maximum length for a valid name. 64 characters is
	// enough for descriptive identifiers like "SerializationFailedError"
	// while still preventing unbounded or accidental long strings.
	MaxLength = 64
)

const (
	// nameFmt is the canonical regular expression used to validate names.
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[A-Za-z] - first character must be an ASCII letter;
	//	[A-Za-z0-9_]{0,63} - the remaining characters may be letters,
	//	                     digits or underscore; the quantifier {0,63}
	//	                     makes the total length 1..64 characters;
	//	$ - end of string;
	//
	// IMPORTANT: the numeric range {0,63} is tied to MinLength / MaxLength
	// above. If you change those, adjust this pattern as well.
	nameFmt = `^[A-Za-z][A-Za-z0-9_]{0,63}$`
)

var (
	// nameRe is the compiled regular expression used at runtime to validate
	// that a string is a canonical errdesc name.
	//
	// We precompile it so that repeated validations (e.g. while building a
	// set with many cases) do not pay the compilation cost over and over.
	//
	// Examples of valid names:
	//   - "FooErrors"
	//   - "BazError"
	//   - "unnamed0"
	//   - "E"
	//
	// Examples of invalid names:
	//   - ""            (empty)
	//   - "1Error"      (does not start with a letter)
	//   - "Foo-Error"   (dash)
	//   - "Foo.Error"   (dot)
	nameRe = regexp.MustCompile(nameFmt)
)

var (
	// ErrNameInvalid is returned when a value cannot be parsed or validated
	// as an errdesc name.
	//
	// Having a dedicated sentinel error makes it easier for callers and tests
	// to detect "this is about name format" vs "this is some other error".
	ErrNameInvalid = errors.New("errdesc: invalid name")
)

// Ensure Name implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Name)(nil)
	_ encoding.TextUnmarshaler = (*Name)(nil)
)

// Empty is the zero-value name. It is never valid: callers that accept a Name
// should treat it as "not provided" and reject it where a name is required.
var Empty Name = ""

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Name value.
func Parse(s string) (Name, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Name(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level set and case names in var blocks.
func MustParse(s string) Name {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical name form.
//
// Names are case-significant, so — unlike lowercase transport identifiers —
// normalization here only trims surrounding whitespace. It does NOT guarantee
// that the result is valid; callers should still call Validate/Parse.
func Normalize(s string) string {
	return strings.TrimSpace(s)
}

// Validate checks whether the provided Name is valid.
// The empty name ("") is considered invalid.
func Validate(n Name) error {
	return validate(string(n))
}

// String returns the canonical string representation of the name.
func (n Name) String() string {
	return string(n)
}

// Snake returns the canonical lowercase form of the name, with word
// boundaries marked by underscores:
//
//	"FooErrors"  -> "foo_errors"
//	"BazError"   -> "baz_error"
//	"HTTPError"  -> "http_error"
//	"unnamed0"   -> "unnamed0"
//
// This form is what descriptor identities (and therefore mapper rules) are
// built from. Snake never fails: it is a pure transformation of whatever the
// name already holds.
func (n Name) Snake() string {
	s := string(n)
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			// Boundary before an uppercase letter when the previous rune is
			// lowercase/digit, or when an acronym ends (upper followed by lower).
			if i > 0 {
				prev := s[i-1]
				nextLower := i+1 < len(s) && s[i+1] >= 'a' && s[i+1] <= 'z'
				if (prev >= 'a' && prev <= 'z') || (prev >= '0' && prev <= '9') ||
					(prev >= 'A' && prev <= 'Z' && nextLower) {
					b.WriteByte('_')
				}
			}
			b.WriteByte(c - 'A' + 'a')
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical string representation.
func (n Name) MarshalText() ([]byte, error) {
	if err := Validate(n); err != nil {
		return nil, err
	}
	return []byte(n), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (n *Name) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// validate is a helper that checks whether the provided string is a valid name.
func validate(s string) error {
	if !nameRe.MatchString(s) {
		return ErrNameInvalid
	}
	return nil
}
