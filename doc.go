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

// Package errdesc turns declared error shapes into renderable error values.
//
// A Set is a closed choice of named cases ("FooErrors" with "BarError",
// "BazError", ...), each optionally carrying data and optionally carrying its
// own message. A Record is a single named shape with a mandatory message.
// Both are declared once, usually at package level:
//
//	var FooErrors = errdesc.MustSet("FooErrors",
//		errdesc.WithCase("BarError",
//			errdesc.WithMessage(message.Fixed("An exception in bar"))),
//		errdesc.WithCase("BazError",
//			errdesc.WithMessage(message.MustTemplate("Error in baz ({unnamed0})"))),
//		errdesc.WithCase("QuxError",
//			errdesc.WithMessage(message.MustTemplate("Error in qux ({start}, {end})"))),
//	)
//
// Error instances — Descriptors — are created at the failure site and flow
// through ordinary Go error handling:
//
//	return FooErrors.New("BazError", errdesc.Pos("x"))
//
//	return FooErrors.Wrap("QuxError", err,
//		errdesc.Named("start", 3), errdesc.Named("end", 9))
//
// Rendering a Descriptor (its Error method) is deterministic, side-effect
// free, and never fails. When a case has no message of its own, the set-level
// default applies; when neither exists, a generic message is composed from
// the set name and a debug dump of the case contents:
//
//	[FooErrors] An error occured; BazError("x")
//
// A computed message that errors or panics is absorbed into the same generic
// fallback rather than propagated.
//
// Descriptors are immutable: all WithX helpers return a shallow copy, so
// instances can be safely shared and extended in a functional style.
package errdesc
