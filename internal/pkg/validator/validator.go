package validator

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// Add appends a field error.
func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, ValidationError{Field: field, Message: message})
}

// Err returns nil when no error was collected.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse(DateLayout, dateStr)
	return date, err == nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	return slices.Contains(slice, value)
}

// OptionalString returns nil for blank input and a trimmed copy otherwise.
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// DateField parses an optional YYYY-MM-DD value, recording a field error when malformed.
func DateField(errs *ValidationErrors, field, value string) *time.Time {
	if IsEmpty(value) {
		return nil
	}
	d, ok := IsValidDate(strings.TrimSpace(value))
	if !ok {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return nil
	}
	return &d
}

// EnumField records a field error when a non-empty value is outside allowed.
func EnumField(errs *ValidationErrors, field, value string, allowed []string) *string {
	v := OptionalString(value)
	if v == nil {
		return nil
	}
	if !IsInSlice(*v, allowed) {
		errs.Add(field, field+" must be one of "+strings.Join(allowed, ", "))
		return nil
	}
	return v
}

// UUIDField records a field error when a non-empty value is not a UUID.
func UUIDField(errs *ValidationErrors, field, value string) *string {
	v := OptionalString(value)
	if v == nil {
		return nil
	}
	if _, err := uuid.Parse(*v); err != nil {
		errs.Add(field, field+" must be a valid UUID")
		return nil
	}
	return v
}
