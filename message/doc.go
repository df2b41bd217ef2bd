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

// Package message defines how a descriptor produces its human-readable text.
//
// A Message is a pure specification: given the field values of an error
// instance it computes a string, deterministically and without side effects.
// Three kinds are provided:
//
//   - Fixed("...")      — a constant string, returned verbatim;
//   - Template("...")   — a string with {field} placeholders interpolated
//     from the instance's fields ("{unnamed0}" for positional fields,
//     "{field:?}" for the quoted debug form);
//   - Func(fn)          — an arbitrary computed message.
//
// Messages never absorb their own failures: a Template whose placeholder has
// no matching field, or a Func that returns an error, reports that to the
// caller. The descriptor layer is the one that guarantees "rendering never
// fails" by substituting the generic fallback.
package message
