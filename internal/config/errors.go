package config

import (
	"fmt"
	"strings"
)

// ConfigurationError reports required environment variables that were missing
// or empty at load time. It is not retriable; the deployment configuration has
// to be fixed.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required environment variables: %s", strings.Join(e.Missing, ", "))
}
