// Package errors provides custom error types for apiwiki.
// These errors separate fatal run failures from per-service skips and
// transient HTTP failures, and support errors.Is / errors.As checks.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is, As and Join mirror the standard library so callers need a single import.
var (
	Is   = errors.Is
	As   = errors.As
	Join = errors.Join
)

// Common sentinel errors
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnavailable indicates that a remote server is temporarily unavailable
	ErrUnavailable = errors.New("service unavailable")

	// ErrRateLimited indicates that the remote rate limit has been exceeded
	ErrRateLimited = errors.New("rate limited")

	// ErrTimeout indicates that a request ran out of time
	ErrTimeout = errors.New("operation timed out")

	// ErrCanceled indicates that a request was abandoned because its context was canceled
	ErrCanceled = errors.New("operation canceled")

	// ErrMarkerNotFound indicates a sentinel marker is missing from the wiki page
	ErrMarkerNotFound = errors.New("marker not found")

	// ErrSkipped indicates a service was left out of the generated page
	ErrSkipped = errors.New("service skipped")

	// ErrUsage indicates the command line was malformed
	ErrUsage = errors.New("usage error")
)

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// APIError represents a failed call to a remote server. A non-zero
// StatusCode means the server answered with an HTTP error status.
type APIError struct {
	Server     string
	StatusCode int
	Message    string
	Endpoint   string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP Error %d from %s: %s", e.StatusCode, e.Server, e.Message)
	}
	return fmt.Sprintf("API error from %s: %s", e.Server, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *APIError) Is(target error) bool {
	if e.StatusCode == http.StatusTooManyRequests {
		return target == ErrRateLimited
	}
	if e.StatusCode == http.StatusNotFound {
		return target == ErrNotFound
	}
	if e.StatusCode >= 500 {
		return target == ErrUnavailable
	}
	return false
}

// NewAPIError creates a new APIError
func NewAPIError(server string, statusCode int, message string) *APIError {
	return &APIError{
		Server:     server,
		StatusCode: statusCode,
		Message:    message,
	}
}

// IsHTTPError reports whether err carries an HTTP error status from a server.
func IsHTTPError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode != 0
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// MarkerError reports a sentinel marker missing from a wiki page
type MarkerError struct {
	Marker string
	Path   string
}

// Error implements the error interface
func (e *MarkerError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("did not find marker %s in %s", e.Marker, e.Path)
	}
	return fmt.Sprintf("did not find marker %s", e.Marker)
}

// Is implements errors.Is support
func (e *MarkerError) Is(target error) bool {
	return target == ErrMarkerNotFound
}

// NewMarkerError creates a new MarkerError
func NewMarkerError(marker, path string) *MarkerError {
	return &MarkerError{Marker: marker, Path: path}
}

// SkipError explains why one service was left out of the page
type SkipError struct {
	Service string
	Version string
	Reason  string
	Err     error
}

// Error implements the error interface
func (e *SkipError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("skipping %s:%s: %s: %v", e.Service, e.Version, e.Reason, e.Err)
	}
	return fmt.Sprintf("skipping %s:%s: %s", e.Service, e.Version, e.Reason)
}

// Unwrap implements errors.Unwrap
func (e *SkipError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *SkipError) Is(target error) bool {
	return target == ErrSkipped
}

// NewSkipError creates a new SkipError
func NewSkipError(service, version, reason string, err error) *SkipError {
	return &SkipError{
		Service: service,
		Version: version,
		Reason:  reason,
		Err:     err,
	}
}

// UsageError reports a malformed command line
type UsageError struct {
	Message string
}

// Error implements the error interface
func (e *UsageError) Error() string {
	return e.Message
}

// Is implements errors.Is support
func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}

// Helper functions for error checking

// IsNotFound checks if an error reports a missing remote resource
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnavailable checks if an error indicates a remote outage
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// IsMarkerNotFound checks if an error is a missing marker error
func IsMarkerNotFound(err error) bool {
	return errors.Is(err, ErrMarkerNotFound)
}

// IsSkipped checks if an error is a per-service skip
func IsSkipped(err error) bool {
	return errors.Is(err, ErrSkipped)
}

// IsUsage checks if an error is a command line usage error
func IsUsage(err error) bool {
	return errors.Is(err, ErrUsage)
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml", "content-disposition", etc.
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "list", "open"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ResourceError represents an error during resource operations
type ResourceError struct {
	Operation string // "create", "load", "fetch", "render"
	Resource  string // "directory", "detail", "request", "page"
	ID        string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ResourceError{
		Operation: operation,
		Resource:  resource,
		ID:        id,
		Message:   message,
		Err:       err,
	}
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapResource wraps an error as a ResourceError
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
