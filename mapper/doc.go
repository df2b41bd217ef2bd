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

// Package mapper resolves descriptor identities into transport statuses.
//
// A descriptor identity is the dotted lowercase key every errdesc error
// carries, e.g. "encoder.foo_errors.baz_error" (group, set, case) or
// "fs.foo_error" (group, record). The mapper answers the question every
// transport edge has to answer: "which HTTP status / gRPC code does this
// failure map to?"
//
// Rules are layered, from most to least specific:
//
//  1. exact identity overrides;
//  2. longest-prefix-match rules over the identity, with "*" matching one
//     segment ("storage.*" catches every set a storage component declares);
//  3. set-level defaults (the identity with its case segment removed);
//  4. a global fallback (500 / codes.Internal).
//
// A Mapper is built once from functional options — or from a YAML rules
// document via FromYAML — and is immutable afterwards: lookups are
// read-only, allocation-free on the hot path, and safe for concurrent use.
package mapper
