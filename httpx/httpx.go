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

// Package httpx writes described errors as JSON HTTP responses.
package httpx

import (
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/sveri/errdesc"
	"github.com/sveri/errdesc/adapter"
	"github.com/sveri/errdesc/apis"
)

// Meta carries extra context that the HTTP layer can add on top of the error.
// All fields are optional and typically come from request context, headers,
// rate-limiter output, or router-level logic.
type Meta struct {
	Correlation       string
	TraceID           string
	SpanID            string
	RetryAfterSeconds int
}

// Body is the JSON document written for an error response. It is the public
// DescriptorView plus the resolved HTTP status and request metadata.
type Body struct {
	apis.DescriptorView

	// Status is the HTTP status the response was written with, repeated in
	// the body for clients that only see the payload.
	Status int `json:"status"`

	Correlation       string `json:"correlation,omitempty"`
	TraceID           string `json:"trace_id,omitempty"`
	SpanID            string `json:"span_id,omitempty"`
	RetryAfterSeconds int    `json:"retry_after_seconds,omitempty"`
}

// Writer is a thin adapter that knows how to turn a described error into an
// HTTP response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write resolves the error's HTTP status via the Mapper and writes the JSON
// body. A nil error writes nothing.
//
// No automatic redaction or filtering is performed here: whatever the error
// renders and Meta carries is exposed as-is. Higher-level handlers should
// apply policies if needed.
func (w Writer) Write(rw http.ResponseWriter, d *errdesc.Descriptor, meta Meta) {
	if d == nil {
		return
	}

	st := w.Mapper.Status(d.Identity())

	body := Body{
		DescriptorView:    adapter.ToView(d, st),
		Status:            st.HTTP,
		Correlation:       meta.Correlation,
		TraceID:           meta.TraceID,
		SpanID:            meta.SpanID,
		RetryAfterSeconds: meta.RetryAfterSeconds,
	}

	rw.Header().Set("Content-Type", "application/json")
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(meta.RetryAfterSeconds))
	}
	rw.WriteHeader(st.HTTP)

	b, _ := json.Marshal(body)
	_, _ = rw.Write(b)
}
