package config

import "fmt"

// ConfigurationError is fatal: the run cannot proceed without a usable
// repository identity and credential.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return e.Reason
}

func ConfigurationErrorf(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}
