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
	"io"
)

// Format implements fmt.Formatter.
//
//	%s, %v   → the rendered message (same as Error()).
//	%q       → the rendered message, quoted.
//	%+v      → verbose multi-line form:
//	             <rendered message>
//	             ident: encoder.foo_errors.baz_error
//	             fields: unnamed0="x"
//	             attachments:
//	               - Unable to read foo.txt file
//	             cause: <recursively formatted with %+v>
//
// The verbose form is for logs and debugging; the concise form is the
// contract the rest of the system relies on.
func (d *Descriptor) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			d.formatVerbose(s)
			return
		}
		_, _ = io.WriteString(s, d.Error())
	case 's':
		_, _ = io.WriteString(s, d.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", d.Error())
	default:
		_, _ = io.WriteString(s, d.Error())
	}
}

// formatVerbose writes the structured multi-line representation.
func (d *Descriptor) formatVerbose(w io.Writer) {
	_, _ = io.WriteString(w, d.Render())

	if ident := d.Identity(); ident != "" {
		_, _ = fmt.Fprintf(w, "\nident: %s", ident)
	}

	if len(d.fields) > 0 {
		_, _ = io.WriteString(w, "\nfields:")
		for _, f := range d.fields {
			// Values go through %v for generality; field order is the
			// declaration order at the creation site.
			_, _ = fmt.Fprintf(w, " %s=%v", f.name, f.value)
		}
	}

	if len(d.attachments) > 0 {
		_, _ = io.WriteString(w, "\nattachments:")
		for _, a := range d.attachments {
			_, _ = fmt.Fprintf(w, "\n  - %s", a)
		}
	}

	if d.cause != nil {
		// Recurse with %+v so nested descriptors (or any other error with a
		// Formatter) render their own verbose form.
		_, _ = fmt.Fprintf(w, "\ncause: %+v", d.cause)
	}
}
