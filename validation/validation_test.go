package validation

import (
	"strings"
	"testing"

	"github.com/skillsenselab/enginekit/errors"
	"github.com/skillsenselab/enginekit/provider"
)

func TestValidatorRequired(t *testing.T) {
	t.Run("empty value fails", func(t *testing.T) {
		v := New().Required("provider", "")
		if !v.HasErrors() {
			t.Fatal("expected error for empty value")
		}
	})

	t.Run("whitespace fails", func(t *testing.T) {
		v := New().Required("provider", "   ")
		if !v.HasErrors() {
			t.Fatal("expected error for whitespace value")
		}
	})

	t.Run("non-empty passes", func(t *testing.T) {
		v := New().Required("provider", "postgresql")
		if v.HasErrors() {
			t.Fatalf("unexpected errors: %v", v.Errors())
		}
	})
}

func TestValidatorProvider(t *testing.T) {
	t.Run("supported family passes", func(t *testing.T) {
		v := New().Provider("provider", "postgresql")
		if v.HasErrors() {
			t.Fatalf("unexpected errors: %v", v.Errors())
		}
	})

	t.Run("alias passes", func(t *testing.T) {
		v := New().Provider("provider", "cockroachdb")
		if v.HasErrors() {
			t.Fatalf("unexpected errors: %v", v.Errors())
		}
	})

	t.Run("unknown name fails", func(t *testing.T) {
		v := New().Provider("provider", "oracle")
		if !v.HasErrors() {
			t.Fatal("expected error for unknown provider")
		}
	})

	t.Run("empty is skipped", func(t *testing.T) {
		v := New().Provider("provider", "")
		if v.HasErrors() {
			t.Fatal("empty value should be left to Required")
		}
	})
}

func TestValidatorAbsolutePath(t *testing.T) {
	if v := New().AbsolutePath("root", "/opt/engines"); v.HasErrors() {
		t.Fatalf("unexpected errors: %v", v.Errors())
	}
	if v := New().AbsolutePath("root", "engines"); !v.HasErrors() {
		t.Fatal("expected error for relative path")
	}
}

func TestValidatorRequiredUUID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", "4f9f4d1e-8d2a-4a0b-9c6e-0a1b2c3d4e5f", false},
		{"empty", "", true},
		{"malformed", "not-a-uuid", true},
		{"nil uuid", "00000000-0000-0000-0000-000000000000", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := New().RequiredUUID("instance_id", tc.value)
			if tc.wantErr != v.HasErrors() {
				t.Errorf("wantErr=%v, errors=%v", tc.wantErr, v.Errors())
			}
		})
	}
}

func TestValidatorChaining(t *testing.T) {
	v := New().
		Required("provider", "").
		AbsolutePath("root", "relative/path").
		Range("attempts", 10, 1, 5)

	if len(v.Errors()) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(v.Errors()), v.Errors())
	}

	appErr := v.Validate()
	if appErr == nil {
		t.Fatal("expected AppError")
	}
	if appErr.Code != errors.ErrCodeConfiguration {
		t.Errorf("expected CONFIGURATION code, got %s", appErr.Code)
	}
	if appErr.Retryable {
		t.Error("validation errors must not be retryable")
	}
	if !strings.Contains(appErr.Message, "provider: is required") {
		t.Errorf("expected field message in %q", appErr.Message)
	}
}

func TestValidateNoErrors(t *testing.T) {
	v := New().Required("provider", "mysql").Provider("provider", "mysql")
	if err := v.Validate(); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestValidateProviderHelper(t *testing.T) {
	id, err := ValidateProvider("provider", "postgres")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != provider.PostgreSQL {
		t.Errorf("expected postgresql, got %s", id)
	}

	if _, err := ValidateProvider("provider", ""); err == nil {
		t.Fatal("expected error for empty provider")
	}
	if _, err := ValidateProvider("provider", "oracle"); !errors.HasCode(err, errors.ErrCodeConfiguration) {
		t.Errorf("expected CONFIGURATION error, got %v", err)
	}
}

func TestStructValidate(t *testing.T) {
	type resolveRequest struct {
		Provider string `validate:"required" mapstructure:"provider"`
		TraceID  string `validate:"omitempty,uuid" mapstructure:"trace_id"`
	}

	t.Run("valid", func(t *testing.T) {
		req := resolveRequest{Provider: "postgresql"}
		if err := Validate(req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		err := Validate(resolveRequest{})
		if err == nil {
			t.Fatal("expected error")
		}
		appErr, ok := errors.AsAppError(err)
		if !ok {
			t.Fatalf("expected AppError, got %T", err)
		}
		if !strings.Contains(appErr.Message, "provider: is required") {
			t.Errorf("expected tag-derived field name in %q", appErr.Message)
		}
	})

	t.Run("bad uuid", func(t *testing.T) {
		err := Validate(resolveRequest{Provider: "mysql", TraceID: "nope"})
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "trace_id") {
			t.Errorf("expected trace_id field in %q", err.Error())
		}
	})
}

func TestToSnakeCase(t *testing.T) {
	cases := map[string]string{
		"Provider":     "provider",
		"ArtifactName": "artifact_name",
		"TraceID":      "trace_i_d",
	}
	for in, want := range cases {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
