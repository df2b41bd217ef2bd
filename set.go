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

	"github.com/sveri/errdesc/group"
	"github.com/sveri/errdesc/message"
	"github.com/sveri/errdesc/name"
)

var (
	// ErrDuplicateCase is returned by NewSet when the same case name is
	// declared twice.
	ErrDuplicateCase = errors.New("errdesc: duplicate case")

	// ErrNilMessage is returned by NewSet / NewRecord when a message option
	// carries a nil message.
	ErrNilMessage = errors.New("errdesc: nil message")
)

// caseSpec is the frozen declaration of one case inside a Set.
type caseSpec struct {
	name name.Name
	// msg is the case's dedicated message. Nil means "no override": the set
	// default (if any) or the generic fallback applies.
	msg message.Message
}

// Set is an immutable variant-set definition: a closed choice among named
// cases, each optionally carrying data.
//
// A Set is declared once (typically in a package-level var) and is safe for
// concurrent use afterwards — construction freezes all internal state, and
// nothing mutates it again.
type Set struct {
	// name is the set's own identifier, e.g. "FooErrors".
	name name.Name

	// group is the optional namespace, e.g. "encoder" or "storage.pg".
	group group.Group

	// def is the set-level default message applied to cases without a
	// dedicated one. Nil means "no default": such cases render the generic
	// composed fallback.
	def message.Message

	// redacted switches the generic fallback from a full debug dump of the
	// case contents to the bare case name, for sets whose field values must
	// not reach logs.
	redacted bool

	// cases holds the declared cases, keyed by name; order preserves the
	// declaration order for Cases().
	cases map[name.Name]caseSpec
	order []name.Name

	// ident is the precomputed identity prefix, e.g. "encoder.foo_errors".
	ident string
}

// NewSet builds an immutable Set from its declaration.
//
// Usage:
//
//	set, err := errdesc.NewSet("EncoderError",
//	    errdesc.WithGroup("encoder"),
//	    errdesc.WithDefault(message.Fixed("Default error message")),
//	    errdesc.WithCase("SerializeError",
//	        errdesc.WithMessage(message.MustTemplate("Couldn't serialize data: {unnamed0:?}"))),
//	    errdesc.WithCase("DeserializeError"),
//	)
//
// All declaration problems — invalid names, invalid group, duplicate cases,
// nil messages, bad templates — surface here, so a Set that builds
// successfully can always render every one of its cases.
func NewSet(setName string, opts ...SetOption) (*Set, error) {
	b := &setBuilder{}
	for _, opt := range opts {
		opt(b)
	}

	n, err := name.Parse(setName)
	if err != nil {
		return nil, fmt.Errorf("errdesc: set name %q: %w", setName, err)
	}
	g, err := group.Parse(b.group)
	if err != nil {
		return nil, fmt.Errorf("errdesc: set %q group %q: %w", setName, b.group, err)
	}
	if b.defSet && b.def == nil {
		return nil, fmt.Errorf("errdesc: set %q default: %w", setName, ErrNilMessage)
	}

	s := &Set{
		name:     n,
		group:    g,
		def:      b.def,
		redacted: b.redacted,
		cases:    make(map[name.Name]caseSpec, len(b.cases)),
		order:    make([]name.Name, 0, len(b.cases)),
		ident:    identity(g, n),
	}
	for _, cb := range b.cases {
		cn, err := name.Parse(cb.name)
		if err != nil {
			return nil, fmt.Errorf("errdesc: set %q case %q: %w", setName, cb.name, err)
		}
		if _, exists := s.cases[cn]; exists {
			return nil, fmt.Errorf("errdesc: set %q case %q: %w", setName, cb.name, ErrDuplicateCase)
		}
		if cb.msgSet && cb.msg == nil {
			return nil, fmt.Errorf("errdesc: set %q case %q message: %w", setName, cb.name, ErrNilMessage)
		}
		s.cases[cn] = caseSpec{name: cn, msg: cb.msg}
		s.order = append(s.order, cn)
	}
	return s, nil
}

// MustSet is the panic-on-error variant of NewSet, for package-level
// declarations where the shape is a compile-time constant.
func MustSet(setName string, opts ...SetOption) *Set {
	s, err := NewSet(setName, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the set's identifier.
func (s *Set) Name() name.Name { return s.name }

// Group returns the set's namespace; group.Empty when not namespaced.
func (s *Set) Group() group.Group { return s.group }

// Identity returns the dotted lowercase identity prefix of the set,
// e.g. "encoder.foo_errors" (or "foo_errors" without a group). Descriptor
// identities append the case segment to this prefix.
func (s *Set) Identity() string { return s.ident }

// Has reports whether the given case was declared.
func (s *Set) Has(caseName string) bool {
	n, err := name.Parse(caseName)
	if err != nil {
		return false
	}
	_, ok := s.cases[n]
	return ok
}

// Cases returns the declared case names in declaration order. The returned
// slice is a copy and safe to modify.
func (s *Set) Cases() []name.Name {
	out := make([]name.Name, len(s.order))
	copy(out, s.order)
	return out
}

// New constructs a Descriptor for the given case.
//
// New never fails: error creation sites must always be able to produce an
// error value. A case name that was not declared (or is not even a valid
// name) still yields a descriptor — it renders through the generic fallback,
// the same way an undeclared message would.
func (s *Set) New(caseName string, fields ...Field) *Descriptor {
	return &Descriptor{
		set:      s,
		caseName: name.Name(name.Normalize(caseName)),
		fields:   resolveFields(fields),
	}
}

// Wrap constructs a Descriptor for the given case with an underlying cause
// attached. This is the usual way to re-describe a lower-level failure:
//
//	if err := json.Unmarshal(raw, &v); err != nil {
//	    return EncoderError.Wrap("DeserializeError", err)
//	}
//
// A nil cause makes Wrap equivalent to New.
func (s *Set) Wrap(caseName string, cause error, fields ...Field) *Descriptor {
	d := s.New(caseName, fields...)
	d.cause = cause
	return d
}

// messageFor resolves the message for a case: dedicated override first, then
// the set default. A nil return means "use the generic fallback".
func (s *Set) messageFor(caseName name.Name) message.Message {
	if spec, ok := s.cases[caseName]; ok && spec.msg != nil {
		return spec.msg
	}
	return s.def
}

// identity joins an optional group and a name's snake form into a dotted
// identity prefix.
func identity(g group.Group, n name.Name) string {
	if g == group.Empty {
		return n.Snake()
	}
	return string(g) + "." + n.Snake()
}
