// internal/config/error.go
package config

import (
	"fmt"
	"strings"
)

// MissingVar is an environment reference that could not be resolved.
// Message is set for ${VAR:?message} references.
type MissingVar struct {
	Name    string
	Line    int
	Message string
}

func (m MissingVar) String() string {
	s := fmt.Sprintf("%s (line %d)", m.Name, m.Line)
	if m.Message != "" {
		s += ": " + m.Message
	}
	return s
}

// ConfigError aggregates configuration errors.
type ConfigError struct {
	Path    string
	Missing []MissingVar
	Errors  []string // Validation errors
}

// Unset returns plain ${VAR} references whose variable is not set.
func (e *ConfigError) Unset() []MissingVar {
	return e.filter(false)
}

// Required returns ${VAR:?message} references whose variable is unset or
// empty.
func (e *ConfigError) Required() []MissingVar {
	return e.filter(true)
}

func (e *ConfigError) filter(required bool) []MissingVar {
	var out []MissingVar
	for _, m := range e.Missing {
		if (m.Message != "") == required {
			out = append(out, m)
		}
	}
	return out
}

func (e *ConfigError) Error() string {
	if !e.HasErrors() {
		return ""
	}

	var parts []string
	if e.Path != "" {
		parts = append(parts, e.Path+":")
	}

	if unset := e.Unset(); len(unset) > 0 {
		names := make([]string, len(unset))
		for i, m := range unset {
			names[i] = m.Name
		}
		parts = append(parts, "missing environment variables: "+strings.Join(names, ", "))
	}

	if required := e.Required(); len(required) > 0 {
		parts = append(parts, "required environment variables not set:")
		for _, m := range required {
			parts = append(parts, fmt.Sprintf("  - %s: %s", m.Name, m.Message))
		}
	}

	if len(e.Errors) > 0 {
		parts = append(parts, "validation failed:")
		for _, err := range e.Errors {
			parts = append(parts, "  - "+err)
		}
	}

	return strings.Join(parts, "\n")
}

// HasErrors reports whether anything needs fixing.
func (e *ConfigError) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Errors) > 0
}
