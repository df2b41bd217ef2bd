package adapter

import (
	"testing"

	"github.com/sveri/errdesc"
	"github.com/sveri/errdesc/apis"
	"github.com/sveri/errdesc/message"
	"google.golang.org/grpc/codes"
)

var codecErrors = errdesc.MustSet("CodecErrors",
	errdesc.WithGroup("encoder"),
	errdesc.WithCase("FrameError",
		errdesc.WithMessage(message.MustTemplate("bad frame at offset {offset}"))),
	errdesc.WithCase("ChecksumError"),
)

func TestToDescriptor(t *testing.T) {
	d := codecErrors.New("FrameError", errdesc.Named("offset", 42))
	st := apis.Status{HTTP: 422, GRPC: codes.InvalidArgument}

	got := ToDescriptor(d, st)
	want := apis.ErrorDescriptor{
		Set:        "CodecErrors",
		Case:       "FrameError",
		Identity:   "encoder.codec_errors.frame_error",
		HTTPStatus: 422,
		GRPCCode:   int(codes.InvalidArgument),
		Message:    "bad frame at offset 42",
	}
	if got != want {
		t.Fatalf("ToDescriptor mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestToDescriptor_Nil(t *testing.T) {
	if got := ToDescriptor(nil, apis.Status{HTTP: 500}); got != (apis.ErrorDescriptor{}) {
		t.Fatalf("nil must yield zero descriptor, got %+v", got)
	}
}

func TestToView_FieldsStringified(t *testing.T) {
	d := codecErrors.New("FrameError",
		errdesc.Named("offset", 42),
		errdesc.Named("stream", "stdin"),
		errdesc.Pos(nil),
	)
	v := ToView(d, apis.Status{HTTP: 422, GRPC: codes.InvalidArgument})

	if v.Set != "CodecErrors" || v.Case != "FrameError" || v.Group != "encoder" {
		t.Fatalf("view header mismatch: %+v", v)
	}
	if v.Identity != "encoder.codec_errors.frame_error" {
		t.Fatalf("identity mismatch: %q", v.Identity)
	}
	if v.Message != "bad frame at offset 42" {
		t.Fatalf("message mismatch: %q", v.Message)
	}
	wantFields := []apis.FieldView{
		{Name: "offset", Value: "42"},
		{Name: "stream", Value: "stdin"},
		{Name: "unnamed0", Value: ""},
	}
	if len(v.Fields) != len(wantFields) {
		t.Fatalf("fields length mismatch: %+v", v.Fields)
	}
	for i, f := range v.Fields {
		if f != wantFields[i] {
			t.Fatalf("field[%d] = %+v, want %+v", i, f, wantFields[i])
		}
	}
}

func TestToView_NoFields(t *testing.T) {
	d := codecErrors.New("ChecksumError")
	v := ToView(d, apis.Status{})
	if v.Fields != nil {
		t.Fatalf("no fields must stay nil, got %+v", v.Fields)
	}
	if v.Case != "ChecksumError" {
		t.Fatalf("case mismatch: %q", v.Case)
	}
}

func TestToView_Nil(t *testing.T) {
	if got := ToView(nil, apis.Status{}); got.Set != "" || got.Fields != nil {
		t.Fatalf("nil must yield zero view, got %+v", got)
	}
}

func TestStringify(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"x", "x"},
		{7, "7"},
		{true, "true"},
	}
	for _, tc := range cases {
		if got := stringify(tc.in); got != tc.want {
			t.Fatalf("stringify(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
