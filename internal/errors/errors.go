// Package errors provides standardized error types for the drivertable CLI tool.
//
// The errors package defines domain-specific error types that enable
// structured error handling and consistent error messages throughout
// the application.
//
// # Error Types
//
// TableError is the primary error type, containing:
//   - Code: Categorizes the error (NOT_FOUND, CATALOG, etc.)
//   - Message: Human-readable error description
//   - Path: The filesystem path involved (if applicable)
//   - Err: The underlying wrapped error (if any)
//
// # Sentinel Errors
//
// Common error scenarios have pre-defined sentinel errors:
//
//	errors.ErrDirNotFound     // scanned directory doesn't exist
//	errors.ErrCatalogInvalid  // catalog failed validation
//	errors.ErrCatalogEmpty    // catalog has no entries
//	errors.ErrWriteFailed     // table could not be written
//
// # Usage
//
// Creating domain-specific errors:
//
//	// Directory not found
//	return errors.NotFound("/usr/src/devices")
//
//	// Validation error
//	return errors.Validation("driver name cannot be empty")
//
//	// Wrapping an underlying error
//	return errors.Wrap(errors.ErrCodeCatalog, "failed to load catalog", err)
//
// # Error Checking
//
// Use errors.Is for sentinel error comparison:
//
//	if errors.Is(err, errors.ErrDirNotFound) {
//	    // Handle not found case
//	}
//
// Use errors.As for type assertion:
//
//	var tableErr *errors.TableError
//	if errors.As(err, &tableErr) {
//	    fmt.Printf("Error code: %s, Path: %s\n", tableErr.Code, tableErr.Path)
//	}
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes errors for programmatic handling.
type ErrorCode string

// Error codes for different error categories.
const (
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"  // Directory or file not found
	ErrCodeValidation ErrorCode = "VALIDATION" // Input validation failed
	ErrCodeCatalog    ErrorCode = "CATALOG"    // Driver catalog error
	ErrCodeScan       ErrorCode = "SCAN"       // Directory scan error
	ErrCodeOutput     ErrorCode = "OUTPUT"     // Table rendering or write error
)

// TableError represents a structured error with context about the operation.
type TableError struct {
	Code    ErrorCode // Error category
	Message string    // Human-readable message
	Path    string    // Filesystem path involved (if applicable)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *TableError) Error() string {
	if e.Path != "" && e.Err != nil {
		if e.Message == "" {
			return fmt.Sprintf("%s: %v", e.Path, e.Err)
		}
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain traversal.
func (e *TableError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error.
// Comparison is based on error code.
func (e *TableError) Is(target error) bool {
	t, ok := target.(*TableError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors for common error scenarios.
// Use these with errors.Is() for error checking.
var (
	// ErrDirNotFound indicates a scanned directory does not exist.
	ErrDirNotFound = &TableError{Code: ErrCodeNotFound, Message: "directory not found"}

	// ErrCatalogInvalid indicates the driver catalog is invalid.
	ErrCatalogInvalid = &TableError{Code: ErrCodeCatalog, Message: "invalid catalog"}

	// ErrCatalogEmpty indicates the driver catalog has no entries.
	ErrCatalogEmpty = &TableError{Code: ErrCodeCatalog, Message: "catalog has no entries"}

	// ErrWriteFailed indicates the rendered table could not be written.
	ErrWriteFailed = &TableError{Code: ErrCodeOutput, Message: "write failed"}
)

// NotFound creates an error for a directory that doesn't exist.
func NotFound(path string) error {
	return &TableError{
		Code:    ErrCodeNotFound,
		Message: "directory not found",
		Path:    path,
	}
}

// Validation creates a validation error with a custom message.
func Validation(msg string) error {
	return &TableError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &TableError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// WrapPath creates an error with path context and underlying error.
func WrapPath(code ErrorCode, path string, err error) error {
	return &TableError{
		Code: code,
		Path: path,
		Err:  err,
	}
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
