package wire

import (
	"errors"
	"strings"
	"testing"
)

func TestFieldError(t *testing.T) {
	tests := []struct {
		name         string
		buildError   func() error
		expectedPath string
		expectedMsg  string
	}{
		{
			name: "single field error",
			buildError: func() error {
				baseErr := newFieldError("expected string value, got int")
				return wrapWithField(baseErr, "principal")
			},
			expectedPath: "principal",
			expectedMsg:  "expected string value, got int",
		},
		{
			name: "nested field error",
			buildError: func() error {
				baseErr := newFieldError("expected string value, got int")
				err := wrapWithField(baseErr, "sql")
				err = wrapEncodingPath(err, "query", "[1]", "queries")
				return err
			},
			expectedPath: "queries.[1].query.sql",
			expectedMsg:  "expected string value, got int",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.buildError()

			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("expected FieldError, got %T", err)
			}

			actualPath := strings.Join(fieldErr.FieldPath, ".")
			if actualPath != tt.expectedPath {
				t.Errorf("expected path %q, got %q", tt.expectedPath, actualPath)
			}

			errMsg := err.Error()
			if !strings.Contains(errMsg, tt.expectedPath) {
				t.Errorf("error message should contain path %q, got: %s", tt.expectedPath, errMsg)
			}
			if !strings.Contains(errMsg, tt.expectedMsg) {
				t.Errorf("error message should contain %q, got: %s", tt.expectedMsg, errMsg)
			}
			if strings.Count(errMsg, "error at proto path") > 1 {
				t.Errorf("path prefix repeated: %s", errMsg)
			}

			if errors.Unwrap(err) == nil {
				t.Error("Unwrap should return the underlying error")
			}
		})
	}
}

func wrapEncodingPath(err error, names ...string) error {
	for _, n := range names {
		err = wrapWithField(err, n)
	}
	return err
}

func TestNewFieldError(t *testing.T) {
	err := newFieldError("test error: %s", "details")
	if err == nil {
		t.Fatal("expected non-nil error")
	}
	if err.Error() != "test error: details" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if wrapWithField(nil, "x") != nil {
		t.Error("wrapping nil should stay nil")
	}
}

func TestDecodeError(t *testing.T) {
	base := errors.New("boom")
	err := error(&DecodeError{Offset: 7, Field: 3, Message: "vtgate.Session", Reason: "field tag", Err: base})

	want := "wire: decode vtgate.Session at offset 7 field=3: field tag: boom"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, base) {
		t.Error("DecodeError should unwrap to its cause")
	}
	if !errors.Is(err, &DecodeError{}) {
		t.Error("errors.Is should match any DecodeError")
	}

	noField := &DecodeError{Offset: 0, Message: "x.Y", Reason: "invalid wire type 7"}
	if strings.Contains(noField.Error(), "field=") {
		t.Errorf("field number should be omitted: %s", noField.Error())
	}
}

func TestParseUnknownFieldPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    UnknownFieldPolicy
		wantErr bool
	}{
		{"", UnknownPreserve, false},
		{"preserve", UnknownPreserve, false},
		{" Discard ", UnknownDiscard, false},
		{"REJECT", UnknownReject, false},
		{"drop", "", true},
	}
	for _, tt := range tests {
		got, err := ParseUnknownFieldPolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseUnknownFieldPolicy(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseUnknownFieldPolicy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
