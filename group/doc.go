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

// Package group defines an optional, structured namespace for errdesc sets
// and records.
//
// Where a set name answers "which family of errors is this?" ("FooErrors",
// "EncoderError"), a group can answer "which module or component declared
// it?", e.g.:
//
//   - "encoder"
//   - "storage.pg"
//   - "auth.jwt"
//
// Groups become the leading segments of a descriptor identity, so transport
// mappers can apply one rule to everything a component declares
// ("storage.*" -> 503).
//
// Group is intentionally optional: the zero value ("") is allowed and
// indicates that the set is not namespaced. This lets callers attach a group
// only when they actually have a meaningful, stable one to report.
package group
