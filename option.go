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

package errdesc

import "github.com/sveri/errdesc/message"

// SetOption is a functional option for declaring a Set. Options collect raw
// declaration data into a builder; all validation happens in NewSet so that
// every problem is reported with the set's name attached.
type SetOption func(*setBuilder)

// CaseOption is a functional option for declaring one case inside a Set.
type CaseOption func(*caseBuilder)

// RecordOption is a functional option for declaring a Record.
type RecordOption func(*recordBuilder)

// setBuilder accumulates a Set declaration before validation.
type setBuilder struct {
	group    string
	def      message.Message
	defSet   bool
	redacted bool
	cases    []caseBuilder
}

// caseBuilder accumulates one case declaration.
type caseBuilder struct {
	name   string
	msg    message.Message
	msgSet bool
}

// recordBuilder accumulates a Record declaration.
type recordBuilder struct {
	group    string
	redacted bool
}

// WithGroup namespaces the set, e.g. WithGroup("encoder") or
// WithGroup("storage.pg"). The group becomes the leading segments of the
// set's identity.
func WithGroup(g string) SetOption {
	return func(b *setBuilder) { b.group = g }
}

// WithDefault sets the set-level default message, applied to every case that
// has no dedicated message of its own.
func WithDefault(m message.Message) SetOption {
	return func(b *setBuilder) { b.def = m; b.defSet = true }
}

// WithRedactedFallback makes the generic fallback message print only the
// case name instead of a full debug dump of the case contents. Use this for
// sets whose field values must not end up in logs.
func WithRedactedFallback() SetOption {
	return func(b *setBuilder) { b.redacted = true }
}

// WithCase declares one case of the set. Cases without a WithMessage option
// render the set default, or the generic fallback when no default exists.
func WithCase(caseName string, opts ...CaseOption) SetOption {
	return func(b *setBuilder) {
		cb := caseBuilder{name: caseName}
		for _, opt := range opts {
			opt(&cb)
		}
		b.cases = append(b.cases, cb)
	}
}

// WithMessage attaches a dedicated message to the case being declared.
func WithMessage(m message.Message) CaseOption {
	return func(b *caseBuilder) { b.msg = m; b.msgSet = true }
}

// WithRecordGroup namespaces the record, mirroring WithGroup for sets.
func WithRecordGroup(g string) RecordOption {
	return func(b *recordBuilder) { b.group = g }
}

// WithRecordRedactedFallback mirrors WithRedactedFallback for records.
func WithRecordRedactedFallback() RecordOption {
	return func(b *recordBuilder) { b.redacted = true }
}
