package http

import (
	"errors"
	"net/http"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps domain errors onto HTTP statuses. Anything unrecognised is
// logged and reported as a 500 without its message.
func (s *Server) writeError(c echo.Context, err error) error {
	var invalidStatus *delivery.InvalidStatusError
	switch {
	case errors.As(err, &invalidStatus):
		return c.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: invalidStatus.Error(),
			Value:   invalidStatus.Value,
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: err.Error()})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(c, err.Error())
	default:
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
