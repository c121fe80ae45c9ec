package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorBody is the uniform error payload of every endpoint.
type errorBody struct {
	Error string `json:"error"`
}

// badRequest reports a malformed or invalid request body.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorBody{Error: message})
}

// respondError maps application errors onto the HTTP contract:
// missing entities are 404, authorization failures are 403, invalid values
// and refused transitions are 400. Anything unclassified is a 500 so broken
// storage never masquerades as a client mistake.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, errs.ErrUnauthorized):
		return ctx.JSON(http.StatusForbidden, errorBody{Error: err.Error()})
	case errors.Is(err, ports.ErrPartnerAlreadyTaken),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, errorBody{Error: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}
