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
	"strings"
	"testing"

	"github.com/sveri/errdesc/message"
)

// fooErrors mirrors the canonical example declaration: one fixed message,
// one positional template, one named template, one case with nothing.
func fooErrors(t *testing.T, opts ...SetOption) *Set {
	t.Helper()
	base := []SetOption{
		WithCase("BarError",
			WithMessage(message.Fixed("An exception in bar"))),
		WithCase("BazError",
			WithMessage(message.MustTemplate("Error in baz ({unnamed0})"))),
		WithCase("QuxError",
			WithMessage(message.MustTemplate("Error in qux ({start}, {end})"))),
		WithCase("NoMessageError"),
	}
	s, err := NewSet("FooErrors", append(base, opts...)...)
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}
	return s
}

func TestRender_FixedMessage_ExactForAnyFields(t *testing.T) {
	set := fooErrors(t)

	// The fixed string comes back verbatim no matter what the instance carries.
	for _, fields := range [][]Field{
		nil,
		{Pos("x")},
		{Named("anything", 42), Pos(true)},
	} {
		d := set.New("BarError", fields...)
		if got := d.Render(); got != "An exception in bar" {
			t.Fatalf("Render() = %q, want %q", got, "An exception in bar")
		}
	}
}

func TestRender_Template_Positional(t *testing.T) {
	set := fooErrors(t)
	d := set.New("BazError", Pos("x"))
	if got := d.Render(); got != "Error in baz (x)" {
		t.Fatalf("Render() = %q, want %q", got, "Error in baz (x)")
	}
}

func TestRender_Template_Named(t *testing.T) {
	set := fooErrors(t)
	d := set.New("QuxError", Named("start", uint64(3)), Named("end", uint64(9)))
	if got := d.Render(); got != "Error in qux (3, 9)" {
		t.Fatalf("Render() = %q, want %q", got, "Error in qux (3, 9)")
	}
}

func TestRender_Deterministic(t *testing.T) {
	set := fooErrors(t)
	d := set.New("QuxError", Named("start", 1), Named("end", 2))
	first := d.Render()
	for i := 0; i < 5; i++ {
		if got := d.Render(); got != first {
			t.Fatalf("renders differ: %q vs %q", got, first)
		}
	}
}

func TestRender_SetDefault(t *testing.T) {
	set := fooErrors(t, WithDefault(message.Fixed("Default error message")))

	// A case without a dedicated message uses the set-level default.
	d := set.New("NoMessageError")
	if got := d.Render(); got != "Default error message" {
		t.Fatalf("Render() = %q, want the set default", got)
	}

	// Dedicated messages still win over the default.
	if got := set.New("BarError").Render(); got != "An exception in bar" {
		t.Fatalf("Render() = %q, dedicated message must win", got)
	}
}

func TestRender_GenericFallback(t *testing.T) {
	set := fooErrors(t)

	// No dedicated message, no set default: the generic composed message
	// carries the set name and the debug-printed contents.
	d := set.New("NoMessageError", Pos("x"))
	got := d.Render()
	if want := `[FooErrors] An error occured; NoMessageError("x")`; got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
	for _, sub := range []string{"FooErrors", `NoMessageError("x")`} {
		if !strings.Contains(got, sub) {
			t.Fatalf("Render() missing %q in %q", sub, got)
		}
	}
}

func TestRender_UnknownCase_FallsBack(t *testing.T) {
	set := fooErrors(t)

	d := set.New("NeverDeclared", Pos("x"))
	got := d.Render()
	if want := `[FooErrors] An error occured; NeverDeclared("x")`; got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestRender_AbsorbsComputedFailure(t *testing.T) {
	boom := message.Func(func(message.Fields) (string, error) {
		panic("message computation exploded")
	})
	bad := message.Func(func(message.Fields) (string, error) {
		return "", errors.New("cannot compute")
	})

	set, err := NewSet("FooErrors",
		WithCase("PanicError", WithMessage(boom)),
		WithCase("ErrError", WithMessage(bad)),
	)
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}

	for _, caseName := range []string{"PanicError", "ErrError"} {
		d := set.New(caseName)
		got := d.Render()
		if !strings.HasPrefix(got, "[FooErrors] An error occured; ") {
			t.Fatalf("Render(%s) = %q, want the generic fallback", caseName, got)
		}
	}
}

func TestRender_MissingTemplateField_FallsBack(t *testing.T) {
	set := fooErrors(t)

	// QuxError's template wants {start} and {end}; give it neither.
	d := set.New("QuxError")
	got := d.Render()
	if want := "[FooErrors] An error occured; QuxError"; got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestRender_RedactedFallback(t *testing.T) {
	set := fooErrors(t, WithRedactedFallback())

	d := set.New("NoMessageError", Pos("secret value"))
	got := d.Render()
	if want := "[FooErrors] An error occured; NoMessageError"; got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
	if strings.Contains(got, "secret") {
		t.Fatalf("redacted fallback leaked field contents: %q", got)
	}
}

func TestDescriptor_ErrorEqualsRender(t *testing.T) {
	set := fooErrors(t)
	d := set.New("BazError", Pos("x"))
	if d.Error() != d.Render() {
		t.Fatalf("Error() %q != Render() %q", d.Error(), d.Render())
	}

	var nilDesc *Descriptor
	if nilDesc.Error() != "<nil>" {
		t.Fatalf("nil descriptor Error() = %q", nilDesc.Error())
	}
}

func TestDescriptor_WrapAndUnwrap(t *testing.T) {
	root := errors.New("root cause")
	set := fooErrors(t)

	d := set.Wrap("BarError", root)
	if !errors.Is(d, root) {
		t.Fatal("errors.Is failed")
	}
	if errors.Unwrap(d) != root {
		t.Fatal("Unwrap failed")
	}
	if d.Cause() != root {
		t.Fatal("Cause failed")
	}

	// Wrap with a nil cause behaves like New.
	if set.Wrap("BarError", nil).Cause() != nil {
		t.Fatal("nil cause must stay nil")
	}
}

func TestDescriptor_WithCause_CopyOnWrite(t *testing.T) {
	set := fooErrors(t)
	d1 := set.New("BarError")
	d2 := d1.WithCause(errors.New("late cause"))

	if d1.Cause() != nil {
		t.Fatal("original mutated")
	}
	if d2.Cause() == nil {
		t.Fatal("copy missing cause")
	}
	if d1.WithCause(nil) != d1 {
		t.Fatal("WithCause(nil) must return the original")
	}
}

func TestDescriptor_WithField_CopyOnWrite(t *testing.T) {
	set := fooErrors(t)
	d1 := set.New("BazError", Pos("x"))
	d2 := d1.WithField(Pos("y"))

	if len(d1.Fields()) != 1 || len(d2.Fields()) != 2 {
		t.Fatal("fields size mismatch")
	}
	// Positional numbering continues where the original left off.
	if v, ok := d2.Lookup("unnamed1"); !ok || v != "y" {
		t.Fatalf("unnamed1 = %v, %v", v, ok)
	}
	if _, ok := d1.Lookup("unnamed1"); ok {
		t.Fatal("original mutated")
	}
}

func TestDescriptor_Attachments(t *testing.T) {
	set := fooErrors(t)
	d1 := set.New("BarError")
	d2 := d1.WithAttachment("Unable to read foo.txt file")

	if len(d1.Attachments()) != 0 {
		t.Fatal("original mutated")
	}
	if got := d2.Attachments(); len(got) != 1 || got[0] != "Unable to read foo.txt file" {
		t.Fatalf("Attachments() = %v", got)
	}
	// Attachments never leak into the rendered message.
	if strings.Contains(d2.Render(), "foo.txt") {
		t.Fatalf("Render() leaked attachment: %q", d2.Render())
	}
}

func TestDescriptor_Identity(t *testing.T) {
	set := fooErrors(t, WithGroup("encoder"))
	d := set.New("BazError", Pos("x"))

	if got := d.Identity(); got != "encoder.foo_errors.baz_error" {
		t.Fatalf("Identity() = %q", got)
	}
	if got := set.Identity(); got != "encoder.foo_errors" {
		t.Fatalf("set Identity() = %q", got)
	}

	plain := fooErrors(t)
	if got := plain.New("BarError").Identity(); got != "foo_errors.bar_error" {
		t.Fatalf("Identity() = %q", got)
	}
}

func TestDescriptor_AccessorViews(t *testing.T) {
	set := fooErrors(t, WithGroup("encoder"))
	d := set.New("QuxError", Named("start", 1), Named("end", 2))

	if d.SetName() != "FooErrors" || d.CaseName() != "QuxError" || d.Group() != "encoder" {
		t.Fatalf("accessors = %q/%q/%q", d.SetName(), d.CaseName(), d.Group())
	}

	fields := d.Fields()
	if len(fields) != 2 || fields[0].Name() != "start" || fields[1].Value() != 2 {
		t.Fatalf("Fields() = %v", fields)
	}
	// The returned slice is a copy.
	fields[0] = Named("tampered", 0)
	if _, ok := d.Lookup("tampered"); ok {
		t.Fatal("Fields() must return a copy")
	}
}
