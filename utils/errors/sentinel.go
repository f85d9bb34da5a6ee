package errors

import (
	"errors"
	"fmt"

	"blog-backend/domain"
)

// Base errors usable with errors.Is() and errors.As() across layers.
var (
	ErrDatabaseUnavailable  = errors.New("database unavailable")
	ErrBlobStoreUnavailable = errors.New("blob store unavailable")
	ErrInvalidInput         = errors.New("invalid input")
)

// IsArticleNotFound checks if an error represents an unknown article id
func IsArticleNotFound(err error) bool {
	return errors.Is(err, domain.ErrArticleNotFound)
}

// IsUnauthorized checks if an error represents a mutation attempted by a non-owner
// or an unauthenticated caller
func IsUnauthorized(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrNotArticleAuthor)
}

// IsDatabaseError checks if an error represents a database-related problem
func IsDatabaseError(err error) bool {
	return errors.Is(err, ErrDatabaseUnavailable)
}

// IsValidationError checks if an error represents invalid input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, domain.ErrTitleRequired) ||
		errors.Is(err, domain.ErrContentRequired)
}

// NewArticleNotFoundError creates an AppContextError that wraps domain.ErrArticleNotFound
func NewArticleNotFoundError(layer, component, operation string, context map[string]interface{}) *AppContextError {
	return NewAppContextError(
		"NOT_FOUND",
		"article not found",
		layer,
		component,
		operation,
		fmt.Errorf("%w", domain.ErrArticleNotFound),
		context,
	)
}

// NewUnauthorizedError creates an AppContextError that wraps domain.ErrUnauthorized
func NewUnauthorizedError(message, layer, component, operation string, context map[string]interface{}) *AppContextError {
	if message == "" {
		message = "unauthorized"
	}
	return NewAppContextError(
		"UNAUTHORIZED",
		message,
		layer,
		component,
		operation,
		fmt.Errorf("%w", domain.ErrUnauthorized),
		context,
	)
}

// NewDatabaseUnavailableError creates an AppContextError that wraps ErrDatabaseUnavailable
// while preserving the original cause in the chain.
func NewDatabaseUnavailableError(layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	var wrappedCause error
	if cause != nil {
		wrappedCause = fmt.Errorf("%w: %w", ErrDatabaseUnavailable, cause)
	} else {
		wrappedCause = fmt.Errorf("%w", ErrDatabaseUnavailable)
	}

	return NewAppContextError(
		"DATABASE_ERROR",
		"database unavailable",
		layer,
		component,
		operation,
		wrappedCause,
		context,
	)
}

// NewBlobStoreUnavailableError creates an AppContextError that wraps ErrBlobStoreUnavailable
func NewBlobStoreUnavailableError(layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	var wrappedCause error
	if cause != nil {
		wrappedCause = fmt.Errorf("%w: %w", ErrBlobStoreUnavailable, cause)
	} else {
		wrappedCause = fmt.Errorf("%w", ErrBlobStoreUnavailable)
	}

	return NewAppContextError(
		"STORAGE_ERROR",
		"blob store unavailable",
		layer,
		component,
		operation,
		wrappedCause,
		context,
	)
}
