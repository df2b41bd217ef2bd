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

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sveri/errdesc/internal/debugfmt"
)

// ErrTemplateInvalid is returned by Template when the template string cannot
// be parsed (unbalanced braces, empty or malformed placeholders).
var ErrTemplateInvalid = errors.New("errdesc: invalid message template")

// segment is one compiled piece of a template: either a literal run or a
// single placeholder.
type segment struct {
	lit   string // literal text; used when field == ""
	field string // placeholder field name
	debug bool   // render the field in quoted debug form ({field:?})
}

// template is the compiled Message. Parsing happens once at construction;
// rendering is a straight walk over the segments.
type template struct {
	src  string
	segs []segment
}

// Template compiles a message template into a Message.
//
// Placeholder syntax:
//
//	{field}    interpolate the field value with %v
//	{field:?}  interpolate the quoted debug form (strings become "x")
//	{{  }}     literal braces
//
// Positional fields are addressed by their synthetic names:
//
//	Template(`Error in baz ({unnamed0})`)
//	Template(`Error in qux ({start}, {end})`)
//
// Parse errors are reported here, at declaration time, so that a set that
// builds successfully can never fail on template syntax at render time.
// A placeholder naming a field that the rendered instance does not carry is
// a render-time error (ErrFieldMissing), absorbed by the descriptor layer.
func Template(tmpl string) (Message, error) {
	segs, err := parseTemplate(tmpl)
	if err != nil {
		return nil, err
	}
	return &template{src: tmpl, segs: segs}, nil
}

// MustTemplate is the panic-on-error variant of Template. It is useful for
// package-level set declarations where the template is a constant.
func MustTemplate(tmpl string) Message {
	m, err := Template(tmpl)
	if err != nil {
		panic(err)
	}
	return m
}

// Render implements Message.
func (t *template) Render(f Fields) (string, error) {
	var b strings.Builder
	b.Grow(len(t.src) + 16)
	for _, s := range t.segs {
		if s.field == "" {
			b.WriteString(s.lit)
			continue
		}
		v, ok := f.Lookup(s.field)
		if !ok {
			return "", fmt.Errorf("%w: %q in template %q", ErrFieldMissing, s.field, t.src)
		}
		if s.debug {
			b.WriteString(debugfmt.Value(v))
		} else {
			b.WriteString(fmt.Sprintf("%v", v))
		}
	}
	return b.String(), nil
}

// parseTemplate splits tmpl into literal and placeholder segments.
func parseTemplate(tmpl string) ([]segment, error) {
	var segs []segment
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			segs = append(segs, segment{lit: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(tmpl); {
		c := tmpl[i]
		switch c {
		case '{':
			// "{{" is an escaped literal brace.
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				lit.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(tmpl[i:], '}')
			if end < 0 {
				return nil, fmt.Errorf("%w: unclosed %q at offset %d", ErrTemplateInvalid, "{", i)
			}
			body := tmpl[i+1 : i+end]
			field, debug, err := parsePlaceholder(body)
			if err != nil {
				return nil, err
			}
			flush()
			segs = append(segs, segment{field: field, debug: debug})
			i += end + 1
		case '}':
			// Only "}}" is legal outside a placeholder.
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				lit.WriteByte('}')
				i += 2
				continue
			}
			return nil, fmt.Errorf("%w: unmatched %q at offset %d", ErrTemplateInvalid, "}", i)
		default:
			lit.WriteByte(c)
			i++
		}
	}
	flush()
	return segs, nil
}

// parsePlaceholder validates the inside of a "{...}" placeholder and splits
// off the optional ":?" debug marker.
func parsePlaceholder(body string) (field string, debug bool, err error) {
	if rest, ok := strings.CutSuffix(body, ":?"); ok {
		body = rest
		debug = true
	}
	if body == "" {
		return "", false, fmt.Errorf("%w: empty placeholder", ErrTemplateInvalid)
	}
	if !validFieldName(body) {
		return "", false, fmt.Errorf("%w: bad placeholder %q", ErrTemplateInvalid, body)
	}
	return body, debug, nil
}

// validFieldName reports whether s is a legal placeholder field name:
// [A-Za-z_][A-Za-z0-9_]* — the shape of a field identifier.
func validFieldName(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return len(s) > 0
}
