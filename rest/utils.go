package rest

import (
	stderrors "errors"

	"blog-backend/domain"
	"blog-backend/utils/errors"
	"blog-backend/utils/logger"

	"github.com/labstack/echo/v4"
)

// handleError converts errors to HTTP responses. Domain sentinels are
// mapped to their status codes first so a not-found never leaks as a
// 500; everything else is enriched with REST layer context.
func handleError(c echo.Context, err error, operation string) error {
	var enrichedErr *errors.AppContextError

	requestContext := map[string]interface{}{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"remote_addr": c.Request().RemoteAddr,
		"user_agent":  c.Request().UserAgent(),
		"request_id":  c.Response().Header().Get("X-Request-ID"),
	}

	var appContextErr *errors.AppContextError
	switch {
	case stderrors.As(err, &appContextErr):
		enrichedErr = errors.EnrichWithContext(appContextErr, "rest", "RESTHandler", operation, requestContext)
	case stderrors.Is(err, domain.ErrArticleNotFound):
		enrichedErr = errors.NewArticleNotFoundError("rest", "RESTHandler", operation, requestContext)
	case stderrors.Is(err, domain.ErrNotArticleAuthor):
		enrichedErr = errors.NewUnauthorizedError("user not authorized", "rest", "RESTHandler", operation, requestContext)
	case stderrors.Is(err, domain.ErrUnauthorized), stderrors.Is(err, domain.ErrInvalidUserContext):
		enrichedErr = errors.NewUnauthorizedError("", "rest", "RESTHandler", operation, requestContext)
	case stderrors.Is(err, domain.ErrTitleRequired), stderrors.Is(err, domain.ErrContentRequired), stderrors.Is(err, errors.ErrInvalidInput):
		enrichedErr = errors.NewValidationContextError(err.Error(), "rest", "RESTHandler", operation, requestContext)
	case stderrors.Is(err, errors.ErrBlobStoreUnavailable):
		enrichedErr = errors.NewStorageContextError("blob store unavailable", "rest", "RESTHandler", operation, err, requestContext)
	default:
		enrichedErr = errors.NewUnknownContextError("internal server error", "rest", "RESTHandler", operation, err, requestContext)
	}

	logger.Logger.Error("REST handler error",
		"error", enrichedErr.Error(),
		"error_code", enrichedErr.Code,
		"layer", enrichedErr.Layer,
		"component", enrichedErr.Component,
		"operation", enrichedErr.Operation,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	return c.JSON(enrichedErr.HTTPStatusCode(), enrichedErr.ToHTTPResponse())
}

// handleValidationError creates a validation error response for bad input
func handleValidationError(c echo.Context, message string, field string, value interface{}) error {
	validationErr := errors.NewValidationContextError(
		message,
		"rest",
		"RESTHandler",
		"validateInput",
		map[string]interface{}{
			"field":       field,
			"value":       value,
			"path":        c.Request().URL.Path,
			"method":      c.Request().Method,
			"remote_addr": c.Request().RemoteAddr,
			"request_id":  c.Response().Header().Get("X-Request-ID"),
		},
	)

	logger.Logger.Error("REST validation error",
		"error", validationErr.Error(),
		"field", field,
		"path", c.Request().URL.Path,
	)
	return c.JSON(validationErr.HTTPStatusCode(), validationErr.ToHTTPResponse())
}
