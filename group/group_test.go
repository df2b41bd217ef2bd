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
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  encoder  ", "encoder"},
		{"to lower", "Storage.PG", "storage.pg"},
		{"slash to dot", "storage/pg", "storage.pg"},
		{"dash to underscore", "auth-jwt", "auth_jwt"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Group
	}{
		{"single segment", "encoder", Group("encoder")},
		{"two segments", "storage.pg", Group("storage.pg")},
		{"four segments", "a1.b2.c3.d4", Group("a1.b2.c3.d4")},
		{"slashes", "auth/jwt", Group("auth.jwt")},
		{"empty is optional", "", Empty},
		{"whitespace only", "   ", Empty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty segment", "storage..pg"},
		{"digit first", "1storage.pg"},
		{"too many segments", "a.b.c.d.e"},
		{"too short", "ab"},
		{"too long", "s." + strings.Repeat("x", MaxLength)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) = %q, want error", tt.in, got)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", tt.in, got)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := []Group{
		"",
		"encoder",
		"storage.pg",
		"auth.jwt.verify",
	}
	for _, g := range valid {
		if err := Validate(g); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", g, err)
		}
	}

	invalid := []Group{
		"Encoder",     // uppercase
		"storage..pg", // empty segment
		"ab",          // too short
	}
	for _, g := range invalid {
		if err := Validate(g); err == nil {
			t.Fatalf("Validate(%q) expected error", g)
		}
	}
}

func TestMustParse(t *testing.T) {
	if g := MustParse("storage.pg"); g != "storage.pg" {
		t.Fatalf("MustParse = %q", g)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on empty input")
		}
	}()
	_ = MustParse("")
}

func TestGroup_TextRoundtrip(t *testing.T) {
	g := Group("storage.pg")
	text, err := g.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}

	var back Group
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if back != g {
		t.Fatalf("roundtrip mismatch: %q != %q", back, g)
	}

	var empty Group
	if err := empty.UnmarshalText([]byte("   ")); err != nil {
		t.Fatalf("UnmarshalText(blank): %v", err)
	}
	if empty != Empty {
		t.Fatalf("blank input must give Empty, got %q", empty)
	}
}
