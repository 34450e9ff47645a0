package form

import (
	"fmt"
	"strconv"
	"strings"
)

// Fields holds raw form values as extracted from a multipart body.
// Multi-valued fields repeat the same name, mirroring formData semantics:
// First returns the first value (or "" when absent), All returns every value.
type Fields map[string][]string

// First returns the first value for the named field, trimmed of
// surrounding whitespace. An absent field reads as the empty string.
func (f Fields) First(name string) string {
	vs := f[name]
	if len(vs) == 0 {
		return ""
	}
	return strings.TrimSpace(vs[0])
}

// All returns every value submitted under the named field.
func (f Fields) All(name string) []string {
	return f[name]
}

// ValidationError reports the first form field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Validate checks the raw fields against the static question set and
// returns nil when every rule passes, or the first failure. It is a pure
// function of the question table and its input.
func Validate(fields Fields) *ValidationError {
	for _, q := range questions {
		if err := validateQuestion(q, fields); err != nil {
			return err
		}
	}
	return nil
}

func validateQuestion(q Question, fields Fields) *ValidationError {
	switch q.Kind {
	case KindText:
		if fields.First(q.Field) == "" {
			return &ValidationError{Field: q.Field, Reason: "is required"}
		}

	case KindUIN:
		v := fields.First(q.Field)
		if v == "" {
			return &ValidationError{Field: q.Field, Reason: "is required"}
		}
		if _, err := ParseUIN(v); err != nil {
			return &ValidationError{Field: q.Field, Reason: "must be exactly 9 digits"}
		}

	case KindChoice:
		v := fields.First(q.Field)
		if v == "" {
			return &ValidationError{Field: q.Field, Reason: "is required"}
		}
		if !isOption(q.Options, v) {
			return &ValidationError{Field: q.Field, Reason: fmt.Sprintf("%q is not a valid option", v)}
		}

	case KindOptionalChoice:
		if v := fields.First(q.Field); v != "" && !isOption(q.Options, v) {
			return &ValidationError{Field: q.Field, Reason: fmt.Sprintf("%q is not a valid option", v)}
		}

	case KindMultiChoice:
		for _, v := range fields.All(q.Field) {
			if !isOption(q.Options, strings.TrimSpace(v)) {
				return &ValidationError{Field: q.Field, Reason: fmt.Sprintf("%q is not a valid option", v)}
			}
		}

	case KindOptionalText:
		// Always valid.
	}
	return nil
}

// ParseUIN parses a 9-digit university ID number. Leading zeros are
// permitted, so the length check runs on the raw string, not the value.
func ParseUIN(s string) (int, error) {
	if len(s) != 9 {
		return 0, fmt.Errorf("uin must be 9 digits, got %d", len(s))
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("uin must be numeric")
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("uin must be numeric")
	}
	return n, nil
}

func isOption(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
