package mapper

import (
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
)

const sampleRules = `
fallback:
  http: 500
  grpc: 13
overrides:
  - ident: encoder.foo_errors.baz_error
    http: 422
    grpc: 3
prefixes:
  - prefix: storage.*
    http: 503
    grpc: 14
defaults:
  - set: encoder.foo_errors
    http: 400
    grpc: 3
`

func TestFromYAML_BuildsWorkingMapper(t *testing.T) {
	opts, err := FromYAML([]byte(sampleRules))
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}
	m, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// override tier
	st := m.Status("encoder.foo_errors.baz_error")
	if st.HTTP != 422 || st.GRPC != codes.InvalidArgument {
		t.Fatalf("override from YAML not applied; got HTTP=%d GRPC=%v", st.HTTP, st.GRPC)
	}

	// prefix tier (wildcard segment)
	st = m.Status("storage.pg.conn_error")
	if st.HTTP != 503 || st.GRPC != codes.Unavailable {
		t.Fatalf("prefix from YAML not applied; got HTTP=%d GRPC=%v", st.HTTP, st.GRPC)
	}

	// defaults tier
	st = m.Status("encoder.foo_errors.other_error")
	if st.HTTP != 400 || st.GRPC != codes.InvalidArgument {
		t.Fatalf("set default from YAML not applied; got HTTP=%d GRPC=%v", st.HTTP, st.GRPC)
	}

	// fallback tier
	st = m.Status("never.registered")
	if st.HTTP != 500 || st.GRPC != codes.Internal {
		t.Fatalf("fallback from YAML not applied; got HTTP=%d GRPC=%v", st.HTTP, st.GRPC)
	}
}

func TestFromYAML_OneTransportOnly(t *testing.T) {
	doc := `
overrides:
  - ident: fs.foo_error
    http: 404
`
	opts, err := FromYAML([]byte(doc))
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}
	m, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus("fs.foo_error"); got != 404 {
		t.Fatalf("HTTP override missing; got %d", got)
	}
	// gRPC side was not configured, so it falls through to the fallback.
	if got := m.GRPCStatus("fs.foo_error"); got != codes.Internal {
		t.Fatalf("gRPC must fall back; got %v", got)
	}
}

func TestFromYAML_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "not yaml",
			doc:     "{overrides: [",
			wantErr: "cannot parse rules document",
		},
		{
			name: "override without ident",
			doc: `
overrides:
  - http: 400
`,
			wantErr: "missing ident",
		},
		{
			name: "override without status",
			doc: `
overrides:
  - ident: a.b
`,
			wantErr: "no status configured",
		},
		{
			name: "prefix without prefix",
			doc: `
prefixes:
  - http: 400
`,
			wantErr: "missing prefix",
		},
		{
			name: "default without set",
			doc: `
defaults:
  - grpc: 3
`,
			wantErr: "missing set",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromYAML([]byte(tc.doc))
			if err == nil {
				t.Fatalf("FromYAML must fail")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q must contain %q", err, tc.wantErr)
			}
		})
	}
}
