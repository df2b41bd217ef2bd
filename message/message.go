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

package message

import "errors"

// Fields is the read-only view of an error instance's field values that a
// Message renders against. The descriptor package provides the concrete
// implementation; tests may use any map-backed stand-in.
type Fields interface {
	// Lookup returns the value stored under the given field name.
	// Positional fields are reachable under their synthetic names
	// ("unnamed0", "unnamed1", ...).
	Lookup(name string) (any, bool)
}

// Message computes the human-readable text for one error instance.
//
// Implementations MUST be pure: two calls with the same Fields must return
// the same string, and rendering must not mutate anything. An error return
// means "this message cannot be produced for these fields" — the descriptor
// layer then falls back to the generic composed message.
type Message interface {
	Render(f Fields) (string, error)
}

// ErrFieldMissing is returned by Template messages when a placeholder names
// a field that the rendered instance does not carry.
var ErrFieldMissing = errors.New("errdesc: message field missing")

// fixed is the constant-string Message.
type fixed string

// Fixed returns a Message that always renders exactly s, for any field
// values. This is the right choice for cases that carry no data, and for
// set-level default messages.
func Fixed(s string) Message { return fixed(s) }

// Render implements Message. It never fails.
func (m fixed) Render(Fields) (string, error) { return string(m), nil }

// fn is the computed Message.
type fn func(f Fields) (string, error)

// Func returns a Message backed by an arbitrary computation over the field
// values. The function must be deterministic and side-effect free; if it
// cannot produce a message it should return an error rather than a partial
// string.
func Func(f func(fields Fields) (string, error)) Message { return fn(f) }

// Render implements Message.
func (m fn) Render(f Fields) (string, error) { return m(f) }

// MapFields adapts a plain map to the Fields interface. Convenient in tests
// and for rendering messages outside a descriptor.
type MapFields map[string]any

// Lookup implements Fields.
func (m MapFields) Lookup(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}
