// Package validation collects field-level form errors.
package validation

import (
	"sort"
	"strings"
)

// FieldErrors maps a form field to its first failure message.
type FieldErrors map[string]string

// Add records msg for field unless the field already failed.
func (f FieldErrors) Add(field, msg string) {
	if _, exists := f[field]; !exists {
		f[field] = msg
	}
}

// Err returns the errors as an error, or nil when no field failed.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return f
}

// Error lists the failing fields in a stable order.
func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+f[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Required records msg when value is blank after trimming.
func (f FieldErrors) Required(field, value, msg string) bool {
	if strings.TrimSpace(value) == "" {
		f.Add(field, msg)
		return false
	}
	return true
}
