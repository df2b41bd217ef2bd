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

// ErrMessageRequired is returned by NewRecord when no message is provided.
// Unlike variant sets — where a case can lean on the set default or the
// generic fallback — a record has no sibling to inherit from, so its message
// is mandatory.
var ErrMessageRequired = errors.New("errdesc: record message required")

// Record is an immutable product-type definition: a single named shape with
// a fixed message specification.
//
// Like Set, a Record is declared once and safe for concurrent use:
//
//	var FooError = errdesc.MustRecord("FooError",
//	    message.MustTemplate("Error occured with foo ({bar}, {baz})"))
//
//	return FooError.New(errdesc.Named("bar", 0), errdesc.Named("baz", 1))
type Record struct {
	name     name.Name
	group    group.Group
	msg      message.Message
	redacted bool
	ident    string
}

// NewRecord builds an immutable Record. The message is mandatory; a nil
// message returns ErrMessageRequired.
func NewRecord(recName string, msg message.Message, opts ...RecordOption) (*Record, error) {
	b := &recordBuilder{}
	for _, opt := range opts {
		opt(b)
	}

	n, err := name.Parse(recName)
	if err != nil {
		return nil, fmt.Errorf("errdesc: record name %q: %w", recName, err)
	}
	g, err := group.Parse(b.group)
	if err != nil {
		return nil, fmt.Errorf("errdesc: record %q group %q: %w", recName, b.group, err)
	}
	if msg == nil {
		return nil, fmt.Errorf("errdesc: record %q: %w", recName, ErrMessageRequired)
	}

	return &Record{
		name:     n,
		group:    g,
		msg:      msg,
		redacted: b.redacted,
		ident:    identity(g, n),
	}, nil
}

// MustRecord is the panic-on-error variant of NewRecord, for package-level
// declarations.
func MustRecord(recName string, msg message.Message, opts ...RecordOption) *Record {
	r, err := NewRecord(recName, msg, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Name returns the record's identifier.
func (r *Record) Name() name.Name { return r.name }

// Group returns the record's namespace; group.Empty when not namespaced.
func (r *Record) Group() group.Group { return r.group }

// Identity returns the dotted lowercase identity of the record,
// e.g. "encoder.foo_error".
func (r *Record) Identity() string { return r.ident }

// New constructs a Descriptor carrying the given fields. Like Set.New it
// never fails; a template referencing a field the caller did not supply is
// absorbed into the generic fallback at render time.
func (r *Record) New(fields ...Field) *Descriptor {
	return &Descriptor{
		rec:    r,
		fields: resolveFields(fields),
	}
}

// Wrap constructs a Descriptor with an underlying cause attached.
// A nil cause makes Wrap equivalent to New.
func (r *Record) Wrap(cause error, fields ...Field) *Descriptor {
	d := r.New(fields...)
	d.cause = cause
	return d
}
