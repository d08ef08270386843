package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidRequest indicates malformed or out-of-bounds request fields.
	ErrInvalidRequest = errors.New("invalid calculation request")
	// ErrRejected indicates a physiological hard stop; no program is produced.
	ErrRejected = errors.New("calculation rejected")
	// ErrProgramNotFound indicates the stored program does not exist.
	ErrProgramNotFound = errors.New("program not found")
)

// FieldError describes a single rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries field-level detail for an input rejection.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidRequest, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidRequest }

// RejectionError reports which hard-blocker flags stopped the calculation.
type RejectionError struct {
	Flags FlagSet
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRejected, strings.Join(e.Flags.Blocking().Strings(), ", "))
}

func (e *RejectionError) Unwrap() error { return ErrRejected }
