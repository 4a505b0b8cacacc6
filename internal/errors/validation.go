package errors

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// ValidationError collects messages per field
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
}

// Error lists fields in name order so the message is stable
func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}

	names := make([]string, 0, len(v.Fields))
	for name := range v.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, strings.Join(v.Fields[name], ", "))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// ValidationBuilder accumulates field errors. Build returns nil when nothing was added,
// otherwise an InvalidArgument error with the fields under the "validation_errors" key.
type ValidationBuilder struct {
	err *ValidationError
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{err: &ValidationError{Fields: make(map[string][]string)}}
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.err.Fields[field] = append(vb.err.Fields[field], message)
	return vb
}

// Fieldf adds a formatted validation error for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...interface{}) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// HasErrors reports whether any field error was added
func (vb *ValidationBuilder) HasErrors() bool {
	return len(vb.err.Fields) > 0
}

// Build returns the error if there are validation errors, nil otherwise
func (vb *ValidationBuilder) Build() error {
	if !vb.HasErrors() {
		return nil
	}
	return InvalidArgument(vb.err.Error()).WithMeta("validation_errors", vb.err.Fields)
}

// ValidateRequired checks that a string field is not blank
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateRangeFloat checks that a value lies in [minValue, maxValue]. NaN is never in range.
func ValidateRangeFloat(field string, value, minValue, maxValue float64, vb *ValidationBuilder) {
	if math.IsNaN(value) || value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %g and %g", minValue, maxValue)
	}
}

// ValidateEnum checks that a value is one of the allowed values
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
}
