package v1

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/BelugaDiver/foreman/internal/controller/restapi/v1/response"
	"github.com/BelugaDiver/foreman/pkg/types/errs"
)

func errorResponse(ctx *fiber.Ctx, code int, msg string) error {
	return ctx.Status(code).JSON(response.Error{Error: msg})
}

// handleError maps domain errors to HTTP status codes. Validation and
// transition errors carry their own diagnostics and go back to the client;
// everything else is logged here and rendered generically.
func (r *V1) handleError(ctx *fiber.Ctx, err error, context string) error {
	var (
		validationErr *errs.ValidationError
		transitionErr *errs.InvalidTransitionError
	)

	switch {
	case errors.As(err, &validationErr):
		return errorResponse(ctx, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, errs.ErrRecordNotFound):
		return errorResponse(ctx, http.StatusNotFound, "request not found")
	case errors.As(err, &transitionErr):
		return errorResponse(ctx, http.StatusConflict, transitionErr.Error())
	case errors.Is(err, errs.ErrDatabaseUnavailable),
		errors.Is(err, errs.ErrPoolTimeout),
		errors.Is(err, errs.ErrPoolClosed):
		r.logger.Error(err, context)

		return errorResponse(ctx, http.StatusServiceUnavailable, "database unavailable")
	default:
		r.logger.Error(err, context)

		return errorResponse(ctx, http.StatusInternalServerError, "internal error")
	}
}
