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

// Package ginx provides a Gin middleware that turns described errors
// collected on the context into JSON error responses.
package ginx

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sveri/errdesc"
	"github.com/sveri/errdesc/apis"
	"github.com/sveri/errdesc/httpx"
)

// CorrelationHeader is the request header echoed back as the body's
// correlation token.
const CorrelationHeader = "X-Request-ID"

// ErrorHandler returns a middleware that inspects c.Errors after the handler
// chain ran. The last *errdesc.Descriptor found is written as a JSON body
// with its mapped HTTP status; if only foreign errors were collected, a
// plain 500 is written.
//
// Handlers report failures the usual Gin way:
//
//	if err := svc.Push(req); err != nil {
//	    _ = c.Error(err)
//	    return
//	}
//
// The middleware does nothing when the handler already wrote a response body
// status or when no errors were collected.
func ErrorHandler(m apis.Mapper) gin.HandlerFunc {
	w := httpx.Writer{Mapper: m}

	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		if d := lastDescriptor(c); d != nil {
			w.Write(c.Writer, d, httpx.Meta{
				Correlation: c.GetHeader(CorrelationHeader),
			})
			return
		}

		// Foreign errors only: no identity to map, so answer with a bare 500.
		c.JSON(500, gin.H{"message": "internal error"})
	}
}

// lastDescriptor walks the collected errors back to front and returns the
// most recent described error, unwrapping as needed.
func lastDescriptor(c *gin.Context) *errdesc.Descriptor {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		var d *errdesc.Descriptor
		if errors.As(c.Errors[i].Err, &d) {
			return d
		}
	}
	return nil
}
