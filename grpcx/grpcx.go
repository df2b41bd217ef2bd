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

// Package grpcx maps described errors onto gRPC status errors with
// structured google.rpc details attached.
package grpcx

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"

	"github.com/sveri/errdesc"
	"github.com/sveri/errdesc/adapter"
	"github.com/sveri/errdesc/apis"
	"github.com/sveri/errdesc/name"
)

// defaultLocale is used for LocalizedMessage when the MetaFn provides none.
const defaultLocale = "en-US"

// Extras holds optional, rich metadata that can be embedded into the gRPC
// status details. All fields are optional.
type Extras struct {
	// CorrelationID is a client/server correlation token (request ID,
	// idempotency key).
	CorrelationID string

	// TraceID is the distributed trace identifier (W3C traceparent /
	// OpenTelemetry).
	TraceID string

	// SpanID is the span identifier within the trace.
	SpanID string

	// Locale overrides the locale reported on the LocalizedMessage detail.
	Locale string
}

// MetaFn extracts Extras from context and the described error.
// It can return an empty Extras if nothing is available.
type MetaFn func(ctx context.Context, d *errdesc.Descriptor) Extras

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// *errdesc.Descriptor errors into gRPC status errors carrying
// google.rpc.ErrorInfo and google.rpc.LocalizedMessage details.
//
// The provided apis.Mapper resolves descriptor identities into transport
// status codes.
//
// The optional MetaFn can be used to extract additional metadata from the
// context and the error. If nil, no extra metadata will be added.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.UnaryServerInterceptor {
	if metaFn == nil {
		metaFn = func(context.Context, *errdesc.Descriptor) Extras { return Extras{} }
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var de *errdesc.Descriptor
		if !errors.As(err, &de) {
			// Not ours — return as-is.
			return nil, err
		}

		st := m.Status(de.Identity())
		ex := metaFn(ctx, de)

		base := gstatus.New(st.GRPC, de.Render())

		// Try to attach structured details. If it fails — return base.
		if with, derr := base.WithDetails(ErrorInfo(de, ex), LocalizedMessage(de, ex)); derr == nil {
			return nil, with.Err()
		}
		return nil, base.Err()
	}
}

// ErrorInfo projects the descriptor's identity and captured fields into a
// google.rpc.ErrorInfo detail:
//
//   - Reason is the case discriminant in SCREAMING_SNAKE form (the set name
//     for record-born errors), e.g. "BAZ_ERROR";
//   - Domain is the declaration's group (empty for ungrouped declarations);
//   - Metadata carries the full dotted identity plus the stringified fields.
func ErrorInfo(d *errdesc.Descriptor, ex Extras) *errdetails.ErrorInfo {
	head := d.CaseName()
	if head == "" {
		head = d.SetName()
	}

	md := map[string]string{
		"identity": d.Identity(),
	}
	for _, fv := range adapter.FieldViews(d) {
		md[fv.Name] = fv.Value
	}
	if ex.CorrelationID != "" {
		md["correlation_id"] = ex.CorrelationID
	}
	if ex.TraceID != "" {
		md["trace_id"] = ex.TraceID
	}
	if ex.SpanID != "" {
		md["span_id"] = ex.SpanID
	}

	return &errdetails.ErrorInfo{
		Reason:   strings.ToUpper(name.Name(head).Snake()),
		Domain:   d.Group(),
		Metadata: md,
	}
}

// LocalizedMessage wraps the rendered message into a
// google.rpc.LocalizedMessage detail.
func LocalizedMessage(d *errdesc.Descriptor, ex Extras) *errdetails.LocalizedMessage {
	locale := ex.Locale
	if locale == "" {
		locale = defaultLocale
	}
	return &errdetails.LocalizedMessage{
		Locale:  locale,
		Message: d.Render(),
	}
}

// ExtractErrorInfo pulls google.rpc.ErrorInfo out of a gRPC error, if
// present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok {
			return ei, true
		}
	}
	return nil, false
}

// ExtractLocalizedMessage pulls google.rpc.LocalizedMessage out of a gRPC
// error, if present.
func ExtractLocalizedMessage(err error) (*errdetails.LocalizedMessage, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if lm, ok := d.(*errdetails.LocalizedMessage); ok {
			return lm, true
		}
	}
	return nil, false
}
