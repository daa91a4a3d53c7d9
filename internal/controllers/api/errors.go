package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/budget-tracker/backend/internal/auth"
	"github.com/budget-tracker/backend/internal/httputil"
	"github.com/budget-tracker/backend/internal/models"
	"github.com/budget-tracker/backend/internal/uuid"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var errMonthInvalid = errors.New("the month must be in the YYYY-MM format")

// status returns the HTTP status for an error.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound

	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrUnauthorized):
		return http.StatusUnauthorized

	case errors.Is(err, httputil.ErrValidation),
		errors.Is(err, auth.ErrEmailRequired),
		errors.Is(err, auth.ErrPasswordTooShort),
		errors.Is(err, auth.ErrPasswordTooLong),
		errors.Is(err, models.ErrNegativeAmount),
		errors.Is(err, models.ErrCategoryRequired),
		errors.Is(err, models.ErrSourceRequired),
		errors.Is(err, models.ErrMonthRequired):
		return http.StatusUnprocessableEntity

	case errors.Is(err, auth.ErrDuplicateAccount),
		errors.Is(err, httputil.ErrInvalidBody),
		errors.Is(err, httputil.ErrRequestBodyEmpty),
		errors.Is(err, httputil.ErrInvalidQueryString),
		errors.Is(err, uuid.ErrInvalid),
		errors.Is(err, errMonthInvalid):
		return http.StatusBadRequest

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}

	return http.StatusInternalServerError
}

// respondError writes the error response for err. Messages of server
// side errors are logged and replaced with a general one.
func respondError(c *gin.Context, err error) {
	s := status(err)
	if s >= http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())

		if s == http.StatusInternalServerError {
			err = models.ErrGeneral
		}
	}

	httputil.NewError(c, s, err)
}
