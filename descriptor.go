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
	"fmt"

	"github.com/sveri/errdesc/internal/debugfmt"
	"github.com/sveri/errdesc/message"
	"github.com/sveri/errdesc/name"
)

// Descriptor is one error instance produced from a Set case or a Record.
//
// It carries:
//   - the definition it was created from (which supplies the message);
//   - the case discriminant (for set-born descriptors);
//   - the field values captured at the failure site;
//   - an optional wrapped cause and free-form attachments.
//
// A Descriptor is immutable after construction. All mutation helpers (WithX)
// return a shallow copy, so instances can be safely shared across goroutines
// and extended in a functional style.
type Descriptor struct {
	// set is the variant-set definition; nil for record-born descriptors.
	set *Set

	// rec is the record definition; nil for set-born descriptors.
	rec *Record

	// caseName is the active discriminant. Zero for record-born descriptors.
	caseName name.Name

	// fields holds the captured field values with positional names resolved.
	fields Fields

	// cause holds the wrapped underlying error (if any). Used for
	// errors.Is / errors.As and for verbose formatting.
	cause error

	// attachments are free-form printable notes added on the way up the
	// stack. They do not affect Render(); %+v prints them.
	attachments []string
}

// Error implements the built-in error interface. It is an alias for Render.
func (d *Descriptor) Error() string {
	if d == nil {
		return "<nil>"
	}
	return d.Render()
}

// Render returns the descriptor's human-readable message.
//
// Resolution order:
//
//  1. the case's dedicated message (set-born) or the record's message;
//  2. the set-level default message;
//  3. the generic composed fallback:
//     [<Name>] An error occured; <debug dump of the contents>
//
// Render is deterministic and side-effect free, and it never fails: a
// computed message that returns an error or panics is absorbed into the
// generic fallback.
func (d *Descriptor) Render() string {
	var msg message.Message
	switch {
	case d.set != nil:
		msg = d.set.messageFor(d.caseName)
	case d.rec != nil:
		msg = d.rec.msg
	}

	if msg != nil {
		if s, ok := renderSafe(msg, d.fields); ok {
			return s
		}
	}
	return d.fallback()
}

// renderSafe evaluates a message, converting both error returns and panics
// into "not ok" so the caller can fall back.
func renderSafe(m message.Message, f message.Fields) (s string, ok bool) {
	defer func() {
		if recover() != nil {
			s, ok = "", false
		}
	}()
	s, err := m.Render(f)
	if err != nil {
		return "", false
	}
	return s, true
}

// fallback composes the generic message from the definition's name and the
// debug-printed contents of the instance.
func (d *Descriptor) fallback() string {
	return "[" + d.SetName() + "] An error occured; " + d.Debug()
}

// Debug returns the one-line debug dump of the instance's contents, e.g.
// `BazError("x")` or `FooError { bar: 0, baz: 1 }`. For sets declared with
// WithRedactedFallback (and records with the record variant), field values
// are omitted and only the head is printed.
func (d *Descriptor) Debug() string {
	head := d.debugHead()
	if d.redacted() {
		return head
	}
	return debugfmt.Dump(head, debugFields(d.fields))
}

// debugHead is the leading identifier of the debug dump: the case name for
// set-born descriptors, the record name otherwise.
func (d *Descriptor) debugHead() string {
	if d.set != nil {
		return string(d.caseName)
	}
	if d.rec != nil {
		return string(d.rec.name)
	}
	return ""
}

func (d *Descriptor) redacted() bool {
	if d.set != nil {
		return d.set.redacted
	}
	if d.rec != nil {
		return d.rec.redacted
	}
	return false
}

// SetName returns the name of the defining set, or the record's name for
// record-born descriptors.
func (d *Descriptor) SetName() string {
	if d.set != nil {
		return string(d.set.name)
	}
	if d.rec != nil {
		return string(d.rec.name)
	}
	return ""
}

// CaseName returns the active discriminant; empty for record-born
// descriptors.
func (d *Descriptor) CaseName() string { return string(d.caseName) }

// Group returns the defining declaration's namespace as a string; empty when
// not namespaced.
func (d *Descriptor) Group() string {
	if d.set != nil {
		return string(d.set.group)
	}
	if d.rec != nil {
		return string(d.rec.group)
	}
	return ""
}

// Identity returns the full dotted lowercase identity of the descriptor:
// "[group.]set.case" for set-born descriptors ("encoder.foo_errors.baz_error"),
// "[group.]record" for record-born ones. This is the key transport mappers
// resolve statuses against.
func (d *Descriptor) Identity() string {
	if d.set != nil {
		return d.set.ident + "." + d.caseName.Snake()
	}
	if d.rec != nil {
		return d.rec.ident
	}
	return ""
}

// Fields returns a copy of the captured fields in declaration order.
func (d *Descriptor) Fields() Fields {
	if len(d.fields) == 0 {
		return nil
	}
	out := make(Fields, len(d.fields))
	copy(out, d.fields)
	return out
}

// Lookup exposes the field values under the message package's contract.
func (d *Descriptor) Lookup(fieldName string) (any, bool) {
	return d.fields.Lookup(fieldName)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (d *Descriptor) Unwrap() error { return d.cause }

// Cause returns the underlying cause; nil when the descriptor wraps nothing.
func (d *Descriptor) Cause() error { return d.cause }

// Attachments returns a copy of the attached printable notes.
func (d *Descriptor) Attachments() []string {
	if len(d.attachments) == 0 {
		return nil
	}
	out := make([]string, len(d.attachments))
	copy(out, d.attachments)
	return out
}

// WithCause returns a shallow copy of d with the given underlying cause
// attached. If err is nil, the original descriptor is returned unchanged.
func (d *Descriptor) WithCause(err error) *Descriptor {
	if err == nil {
		return d
	}
	cp := *d
	cp.cause = err
	return &cp
}

// WithField returns a shallow copy of d with one extra field appended.
// Positional fields keep numbering from where the original left off.
//
// The fields slice is always copied to preserve immutability, preventing
// surprising modifications across goroutines or shared descriptor values.
func (d *Descriptor) WithField(f Field) *Descriptor {
	cp := *d
	fields := make(Fields, len(d.fields), len(d.fields)+1)
	copy(fields, d.fields)
	if f.positional {
		pos := 0
		for _, old := range fields {
			if old.positional {
				pos++
			}
		}
		f.name = fmt.Sprintf("unnamed%d", pos)
	}
	cp.fields = append(fields, f)
	return &cp
}

// WithAttachment returns a shallow copy of d with one printable note
// appended. Attachments surface in %+v output, not in Render().
func (d *Descriptor) WithAttachment(note string) *Descriptor {
	cp := *d
	atts := make([]string, len(d.attachments), len(d.attachments)+1)
	copy(atts, d.attachments)
	cp.attachments = append(atts, note)
	return &cp
}
