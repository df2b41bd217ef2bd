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

// DescribedError represents an error that can deterministically describe
// itself.
//
// The description is the error's own rendered message: a plain string, safe
// to hand to any formatter, free of control characters by convention, and
// identical across calls on the same immutable instance. For descriptor
// values it is the same string Error() returns; the separate method exists
// so adapters can state "I need a described failure" without accepting every
// error in the program.
type DescribedError interface {
	error

	// Render returns the rendered, human-readable message.
	//
	// Implementations MUST be deterministic and side-effect free, and MUST
	// NOT fail: a message that cannot be computed is replaced by a fallback
	// before it ever reaches the caller.
	Render() string
}

// VariantError represents an error that belongs to a declared variant set:
// it can name the set it comes from and the case that is active.
//
// Examples:
//
//	set:  "FooErrors"
//	case: "BazError"
//
// For record-born errors, the set name is the record's name and the case
// name is empty. Callers should be prepared to handle the empty case.
type VariantError interface {
	error

	// SetName returns the name of the declaring set (or record).
	// The returned value MUST be non-empty for any declared error.
	SetName() string

	// CaseName returns the active case discriminant. It MAY be empty for
	// record-born errors, which have no discriminant.
	CaseName() string
}

// IdentifiedError represents an error that carries a dotted, lowercase
// transport identity, e.g. "encoder.foo_errors.baz_error". The identity is
// what status mappers resolve rules against.
//
// Implementations SHOULD return a stable, normalized identity; adapters
// treat unknown or empty identities as internal errors at the boundary.
type IdentifiedError interface {
	error

	// Identity returns the dotted identity of the error.
	Identity() string
}

// FieldedError represents an error that exposes the data values captured at
// its creation site. This is especially useful for transports that want to
// surface structured data alongside the message.
//
// Implementations SHOULD return a slice that is safe to iterate over and
// that will not be modified by the callee. Returning nil is allowed and
// simply means "no fields".
type FieldedError interface {
	error

	// ErrorFields returns the error's field values. May return nil.
	ErrorFields() []FieldView
}

// CausedError represents an error that exposes its underlying cause.
//
// While Go 1.13 introduced errors.Unwrap, having this interface in apis lets
// us work with wrapped errors even in places where we don't want to depend
// on errors.As / errors.Is directly, or where we want to keep the contract
// explicit.
//
// Implementations SHOULD return the direct, immediate cause of the error.
// If there is no underlying cause, they SHOULD return nil.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this one, if any.
	// May return nil.
	Cause() error
}
