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

// Package name provides parsing and validation for errdesc identifiers.
//
// A "name" identifies a variant set, a record, or a single case inside a
// variant set — e.g. "FooErrors", "BazError", "QuxError". Names follow the
// shape of Go identifiers:
//
//   - start with an ASCII letter (either case);
//   - continue with ASCII letters, digits or underscore;
//   - stay within a sane length limit.
//
// Unlike transport-level identifiers, names are case-significant: "FooErrors"
// and "fooErrors" are two different names. For transport mapping and logging
// every name also has a canonical lowercase form, produced by Snake(), e.g.
// "FooErrors" -> "foo_errors". That snake form is what descriptor identities
// are built from.
//
// IMPORTANT: Empty names ("") are NOT allowed. Every set, record and case
// MUST have a non-empty name.
package name
