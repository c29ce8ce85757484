package validation

import (
	"strings"
	"testing"

	"github.com/kynelab/regkit/errors"
)

type testConfig struct {
	Address  string `mapstructure:"address" validate:"required,hostname_port"`
	Scheme   string `mapstructure:"scheme" validate:"omitempty,oneof=http https"`
	Interval string `mapstructure:"interval" validate:"required"`
}

func TestValidate_OK(t *testing.T) {
	cfg := testConfig{Address: "localhost:8500", Scheme: "http", Interval: "1s"}
	if err := Validate(&cfg); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	cfg := testConfig{Scheme: "http"}
	err := Validate(&cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if errors.CodeOf(err) != errors.ErrCodeInvalidInput {
		t.Errorf("code = %q, want %q", errors.CodeOf(err), errors.ErrCodeInvalidInput)
	}
	if !strings.Contains(err.Error(), "address") {
		t.Errorf("error should mention the mapstructure key: %v", err)
	}
}

func TestValidate_OneOf(t *testing.T) {
	cfg := testConfig{Address: "localhost:8500", Scheme: "ftp", Interval: "1s"}
	err := Validate(&cfg)
	if err == nil {
		t.Fatal("expected validation error for bad scheme")
	}
	if !strings.Contains(err.Error(), "must be one of") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"ServiceName", "service_name"},
		{"BaseURI", "base_u_r_i"},
		{"port", "port"},
	}
	for _, tc := range tests {
		if got := toSnakeCase(tc.in); got != tc.want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
