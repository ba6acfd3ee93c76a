package http

import (
	"errors"
	"net/http"

	"storefront/internal/pkg/errs"
)

// statusOf maps an application error onto an HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errs.IsInvalidInput(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func errorBody(status int, err error) Error {
	if status == http.StatusInternalServerError {
		return Error{Code: status, Message: "internal error"}
	}
	return Error{Code: status, Message: err.Error()}
}
