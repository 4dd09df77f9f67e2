package llm

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAPIKey   = errors.New("API key not configured")
	ErrUnknownProvider = errors.New("unknown LLM provider")
	ErrEmptyResponse   = errors.New("empty response")
)

// ConfigurationError is returned before any network call when the gateway
// cannot be used as configured.
type ConfigurationError struct {
	Provider string
	Err      error
}

func (e *ConfigurationError) Error() string {
	if errors.Is(e.Err, ErrUnknownProvider) {
		return fmt.Sprintf("%v: %s", e.Err, e.Provider)
	}
	return e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// ProviderError covers everything that goes wrong once a backend has been
// contacted: transport, auth, quota, deadline and malformed responses.
type ProviderError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s provider error (status %d): %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s provider error: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// StatusError is a non-2xx response from a backend.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("status %d", e.StatusCode)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Body)
}

// Kind classifies an error for logs and audit rows.
func Kind(err error) string {
	var cfgErr *ConfigurationError
	var provErr *ProviderError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &cfgErr):
		return "configuration"
	case errors.As(err, &provErr):
		return "provider"
	default:
		return "internal"
	}
}
