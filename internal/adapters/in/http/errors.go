package http

import (
	"errors"
	"net/http"

	"github.com/DevonBastiansz/courier-manager/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// writeError maps a domain error to an HTTP response.
// Validation errors become 400, authentication failures 401, authorization
// failures 403, missing objects 404, and uniqueness conflicts 409. Anything
// unrecognized is logged and answered with a generic 500 so internal detail
// never leaks.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: userMessage(err)})
	case errors.Is(err, errs.ErrAuthenticationFailed):
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: userMessage(err)})
	case errors.Is(err, errs.ErrAccessDenied):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{Error: "You do not have permission to perform this action"})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: userMessage(err)})
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return ctx.JSON(http.StatusConflict, ErrorResponse{Error: userMessage(err)})
	default:
		log.Errorf("unhandled error: %v", err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected error occurred. Please try again later."})
	}
}

// userMessage extracts the user-facing part of a known domain error.
// Authentication errors carry a message written for the end user; the rest
// read fine as-is.
func userMessage(err error) string {
	var authErr *errs.AuthenticationError
	if errors.As(err, &authErr) {
		return authErr.Message
	}
	return err.Error()
}
