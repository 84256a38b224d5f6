package config

import (
	"github.com/thoreinstein/tunedeck/internal/errors"
	"github.com/thoreinstein/tunedeck/internal/logging"
)

// Validation errors for configuration fields.
var (
	// ErrInvalidLogFormat indicates an unsupported log_format value.
	ErrInvalidLogFormat = errors.New("unsupported log format")

	// ErrInvalidDisplay indicates a non-positive display dimension.
	ErrInvalidDisplay = errors.New("display dimensions must be positive")

	// ErrInvalidRetention indicates a backup retention count below 1.
	ErrInvalidRetention = errors.New("backup retention must be at least 1")
)

// Validate checks Options for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(opts *Options) []error {
	if opts == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if !logging.Format(opts.LogFormat).Valid() {
		errs = append(errs, &FieldError{Field: "log_format", Value: opts.LogFormat, Err: ErrInvalidLogFormat})
	}

	if opts.BackupRetention < 1 {
		errs = append(errs, &FieldError{Field: "backup_retention", Value: opts.BackupRetention, Err: ErrInvalidRetention})
	}
	if opts.Display.Width <= 0 {
		errs = append(errs, &FieldError{Field: "display.width", Value: opts.Display.Width, Err: ErrInvalidDisplay})
	}
	if opts.Display.Height <= 0 {
		errs = append(errs, &FieldError{Field: "display.height", Value: opts.Display.Height, Err: ErrInvalidDisplay})
	}

	return errs
}

// FieldError represents an invalid value for one configuration field.
type FieldError struct {
	Field string
	Value any
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
