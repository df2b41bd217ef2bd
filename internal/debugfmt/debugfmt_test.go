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

package debugfmt

import (
	"errors"
	"testing"
)

func TestDump_Unit(t *testing.T) {
	if got := Dump("BarError", nil); got != "BarError" {
		t.Fatalf("Dump = %q, want %q", got, "BarError")
	}
}

func TestDump_Positional(t *testing.T) {
	got := Dump("BazError", []Field{
		{Name: "unnamed0", Value: "x", Positional: true},
	})
	if got != `BazError("x")` {
		t.Fatalf("Dump = %q, want %q", got, `BazError("x")`)
	}

	got = Dump("PairError", []Field{
		{Name: "unnamed0", Value: 1, Positional: true},
		{Name: "unnamed1", Value: "two", Positional: true},
	})
	if got != `PairError(1, "two")` {
		t.Fatalf("Dump = %q, want %q", got, `PairError(1, "two")`)
	}
}

func TestDump_Named(t *testing.T) {
	got := Dump("QuxError", []Field{
		{Name: "start", Value: uint64(1)},
		{Name: "end", Value: uint64(2)},
	})
	if got != "QuxError { start: 1, end: 2 }" {
		t.Fatalf("Dump = %q, want %q", got, "QuxError { start: 1, end: 2 }")
	}
}

func TestValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string quoted", "x", `"x"`},
		{"int plain", 42, "42"},
		{"bool plain", true, "true"},
		{"nil", nil, "<nil>"},
		{"error quoted", errors.New("boom"), `"boom"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Value(tt.in); got != tt.want {
				t.Fatalf("Value(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
