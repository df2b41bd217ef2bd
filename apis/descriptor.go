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

// ErrorDescriptor is a flat, transport-friendly description of a known
// descriptor identity.
//
// This type intentionally uses strings (not the internal name / group value
// types) so that it can live in the public "apis" layer and be used by
// adapters (HTTP, gRPC) and by user-defined registries.
//
// Implementations may choose to store a richer descriptor internally, but
// this shape is what the rest of the system can rely on.
type ErrorDescriptor struct {
	// Set is the declaring set's (or record's) name, e.g. "FooErrors".
	Set string `json:"set"`

	// Case is the case discriminant, e.g. "BazError".
	// It MAY be empty when the descriptor applies to a record.
	Case string `json:"case,omitempty"`

	// Identity is the dotted lowercase transport identity resolved from the
	// set, case and optional group.
	Identity string `json:"identity"`

	// HTTPStatus is an optional HTTP status that should be used when this
	// identity is exposed over HTTP. A value of 0 means "not specified".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is an optional gRPC status code (as integer) that should be
	// used when this identity is exposed over gRPC. A value of 0 means
	// "not specified".
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is an optional human-friendly default message that can be
	// used when the error instance itself did not provide one.
	Message string `json:"message,omitempty"`
}
