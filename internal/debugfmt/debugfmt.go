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

// Package debugfmt renders one-line debug dumps of descriptor values.
//
// The output shape follows the conventions of the declarations we mirror:
//
//   - a case without fields prints as the bare case name: BarError
//   - a case with positional fields prints them in parentheses: BazError("x")
//   - a case or record with named fields prints them in braces:
//     QuxError { start: 1, end: 2 }
//
// String values are quoted, everything else goes through %v. The dump is
// deterministic for a fixed value and is what the generic fallback message
// embeds after the set name.
package debugfmt

import (
	"fmt"
	"strings"
)

// Field is one name/value pair of the dumped value. Positional holds the
// original declaration style: positional fields carry synthetic names
// ("unnamed0", "unnamed1", ...) and are printed without them.
type Field struct {
	Name       string
	Value      any
	Positional bool
}

// Dump renders the value with the given head (case or record name) and
// fields. It never fails and never panics on ordinary values; fmt handles
// arbitrary types for us.
func Dump(head string, fields []Field) string {
	if len(fields) == 0 {
		return head
	}

	var b strings.Builder
	b.WriteString(head)

	// Mixed positional/named declarations do not exist at the source level;
	// if a caller produces one anyway, named formatting wins because it
	// preserves the most information.
	named := false
	for _, f := range fields {
		if !f.Positional {
			named = true
			break
		}
	}

	if named {
		b.WriteString(" { ")
		for i, f := range fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f.Name)
			b.WriteString(": ")
			b.WriteString(Value(f.Value))
		}
		b.WriteString(" }")
		return b.String()
	}

	b.WriteByte('(')
	for i, f := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(Value(f.Value))
	}
	b.WriteByte(')')
	return b.String()
}

// Value renders a single value in debug form: strings (and things that are
// just strings underneath, like validated identifier types) are quoted,
// errors dump their message quoted, everything else is %v.
func Value(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return fmt.Sprintf("%q", x)
	case error:
		return fmt.Sprintf("%q", x.Error())
	case fmt.Stringer:
		return fmt.Sprintf("%q", x.String())
	default:
		return fmt.Sprintf("%v", v)
	}
}
