package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "taskNumber" -> "task number")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"taskNumber":  "task number",
		"projectName": "project name",
		"revisionID":  "revision ID",
		"description": "description",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateTaskNumber checks that a task number is a 1-based position.
func ValidateTaskNumber(fieldName string, n int) error {
	if n < 1 {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be 1 or greater, got: %d", formatFieldName(fieldName), n),
		}
	}
	return nil
}

// ValidateSingleLine rejects values that would break a one-line markdown entry.
func ValidateSingleLine(fieldName, value string) error {
	if strings.ContainsAny(value, "\r\n") {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be a single line", formatFieldName(fieldName)),
		}
	}
	return nil
}
