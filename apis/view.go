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

package apis

// FieldView is a single field value in transport-friendly form. Values are
// pre-rendered to strings so the view survives JSON round-trips without
// type surprises.
type FieldView struct {
	// Name is the field's name; positional fields carry their synthetic
	// "unnamedN" names.
	Name string `json:"name"`

	// Value is the field's rendered value.
	Value string `json:"value,omitempty"`
}

// DescriptorView is a minimal, serializable representation of a described
// error.
//
// This is *not* the concrete error type used internally — it is the shape
// that we are comfortable exposing over the wire or logging. Keeping it here
// (in apis) allows both HTTP and gRPC adapters to share the same struct.
type DescriptorView struct {
	// Set is the declaring set's (or record's) name, e.g. "FooErrors".
	Set string `json:"set"`

	// Case is the active case discriminant, e.g. "BazError".
	// It MAY be empty for record-born errors.
	Case string `json:"case,omitempty"`

	// Group is the optional namespace of the declaration, e.g. "encoder".
	Group string `json:"group,omitempty"`

	// Identity is the dotted lowercase transport identity,
	// e.g. "encoder.foo_errors.baz_error".
	Identity string `json:"identity"`

	// Message is the rendered, human-friendly message.
	Message string `json:"message"`

	// Fields is an optional list of the error's captured field values.
	Fields []FieldView `json:"fields,omitempty"`
}
