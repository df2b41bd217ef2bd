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
)

// Field is one piece of data carried by an error instance.
//
// Fields are either named (record fields, struct-style case fields) or
// positional (tuple-style case fields). Positional fields receive synthetic
// names "unnamed0", "unnamed1", ... in declaration order, which is how
// message templates address them.
type Field struct {
	name       string
	value      any
	positional bool
}

// Named constructs a named field.
func Named(name string, value any) Field {
	return Field{name: name, value: value}
}

// Pos constructs a positional field. Its synthetic name is assigned when the
// descriptor is built, based on its position among the positional fields.
func Pos(value any) Field {
	return Field{positional: true, value: value}
}

// Name returns the field's name. For positional fields this is the synthetic
// "unnamedN" name once the field is part of a descriptor, and "" before that.
func (f Field) Name() string { return f.name }

// Value returns the field's value.
func (f Field) Value() any { return f.value }

// Positional reports whether the field was declared positionally.
func (f Field) Positional() bool { return f.positional }

// Fields is an ordered list of fields. The order is the declaration order at
// the error's creation site and is preserved through rendering and dumping.
type Fields []Field

// Ensure Fields satisfies the message package's lookup contract.
var _ message.Fields = (Fields)(nil)

// Lookup implements message.Fields. When two fields share a name, the first
// one wins; later duplicates are only visible in the debug dump.
func (fs Fields) Lookup(fieldName string) (any, bool) {
	for _, f := range fs {
		if f.name == fieldName {
			return f.value, true
		}
	}
	return nil, false
}

// resolveFields assigns synthetic names to positional fields and returns a
// fresh, descriptor-owned slice. The input is never mutated.
func resolveFields(in []Field) Fields {
	if len(in) == 0 {
		return nil
	}
	out := make(Fields, len(in))
	pos := 0
	for i, f := range in {
		if f.positional {
			f.name = fmt.Sprintf("unnamed%d", pos)
			pos++
		}
		out[i] = f
	}
	return out
}

// debugFields converts resolved fields into the dump representation.
func debugFields(fs Fields) []debugfmt.Field {
	if len(fs) == 0 {
		return nil
	}
	out := make([]debugfmt.Field, len(fs))
	for i, f := range fs {
		out[i] = debugfmt.Field{Name: f.name, Value: f.value, Positional: f.positional}
	}
	return out
}
