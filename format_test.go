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

package errdesc

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestFormat_Concise(t *testing.T) {
	set := fooErrors(t)
	d := set.New("BazError", Pos("x"))

	if got := fmt.Sprintf("%v", d); got != "Error in baz (x)" {
		t.Fatalf("%%v = %q", got)
	}
	if got := fmt.Sprintf("%s", d); got != "Error in baz (x)" {
		t.Fatalf("%%s = %q", got)
	}
	if got := fmt.Sprintf("%q", d); got != `"Error in baz (x)"` {
		t.Fatalf("%%q = %q", got)
	}
}

func TestFormat_Verbose(t *testing.T) {
	set := fooErrors(t, WithGroup("encoder"))
	root := errors.New("read: connection reset")
	d := set.Wrap("BazError", root, Pos("x")).
		WithAttachment("Unable to read foo.txt file")

	got := fmt.Sprintf("%+v", d)

	wantLines := []string{
		"Error in baz (x)",
		"ident: encoder.foo_errors.baz_error",
		"fields: unnamed0=x",
		"attachments:",
		"  - Unable to read foo.txt file",
		"cause: read: connection reset",
	}
	for _, line := range wantLines {
		if !strings.Contains(got, line) {
			t.Fatalf("%%+v missing %q:\n%s", line, got)
		}
	}
}

func TestFormat_VerboseNestedDescriptors(t *testing.T) {
	inner := fooErrors(t).New("BarError")
	outer := fooErrors(t).Wrap("QuxError", inner, Named("start", 1), Named("end", 2))

	got := fmt.Sprintf("%+v", outer)
	if !strings.Contains(got, "Error in qux (1, 2)") {
		t.Fatalf("outer message missing:\n%s", got)
	}
	// The nested descriptor renders its own verbose block.
	if !strings.Contains(got, "cause: An exception in bar") {
		t.Fatalf("nested cause missing:\n%s", got)
	}
	if !strings.Contains(got, "ident: foo_errors.bar_error") {
		t.Fatalf("nested ident missing:\n%s", got)
	}
}
