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

package adapter

import (
	"fmt"

	"github.com/sveri/errdesc"
	"github.com/sveri/errdesc/apis"
)

// ToDescriptor converts a described error together with its resolved
// transport status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries both the logical identity and the concrete
// transport statuses (HTTP and gRPC).
func ToDescriptor(d *errdesc.Descriptor, st apis.Status) apis.ErrorDescriptor {
	if d == nil {
		return apis.ErrorDescriptor{}
	}
	return apis.ErrorDescriptor{
		Set:        d.SetName(),
		Case:       d.CaseName(),
		Identity:   d.Identity(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    d.Render(),
	}
}

// ToView converts a described error into a public DescriptorView. This
// function performs no automatic redaction or filtering beyond what the
// declaration itself requested; it exposes exactly what the instance renders.
//
// Field values are stringified so the view survives JSON round-trips without
// type surprises.
func ToView(d *errdesc.Descriptor, st apis.Status) apis.DescriptorView {
	if d == nil {
		return apis.DescriptorView{}
	}
	return apis.DescriptorView{
		Set:      d.SetName(),
		Case:     d.CaseName(),
		Group:    d.Group(),
		Identity: d.Identity(),
		Message:  d.Render(),
		Fields:   FieldViews(d),
	}
}

// FieldViews renders the descriptor's captured fields into transport-friendly
// name/value pairs. Returns nil when the descriptor carries no fields.
//
// If the underlying error implements apis.FieldedError, its own view takes
// precedence — that lets user types control exactly what crosses the wire.
func FieldViews(d *errdesc.Descriptor) []apis.FieldView {
	if d == nil {
		return nil
	}
	if fe, ok := any(d).(apis.FieldedError); ok {
		if vs := fe.ErrorFields(); len(vs) > 0 {
			return vs
		}
	}
	fields := d.Fields()
	if len(fields) == 0 {
		return nil
	}
	out := make([]apis.FieldView, len(fields))
	for i, f := range fields {
		out[i] = apis.FieldView{
			Name:  f.Name(),
			Value: stringify(f.Value()),
		}
	}
	return out
}

// stringify renders a field value for transport. nil becomes the empty
// string so it drops out of JSON via omitempty.
func stringify(v any) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case error:
		return t.Error()
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprintf("%v", v)
}
