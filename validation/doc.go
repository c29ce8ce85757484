// Package validation wraps go-playground/validator for struct-tag based
// validation of regkit configuration types.
//
//	type Config struct {
//	    Address string `mapstructure:"address" validate:"required,hostname_port"`
//	}
//
//	if err := validation.Validate(&cfg); err != nil { ... }
//
// Failures are returned as *errors.AppError with per-field details.
package validation
