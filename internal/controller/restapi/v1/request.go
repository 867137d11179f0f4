package v1

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/BelugaDiver/foreman/internal/controller/restapi/v1/response"
	"github.com/BelugaDiver/foreman/internal/dto"
	"github.com/BelugaDiver/foreman/internal/entity"
)

// @Summary  	Create image generation request
// @Description Registers a new request in the pending state
// @Tags 		requests
// @Accept 		json
// @Produce 	json
// @Param 		request body dto.CreateRequest true "Request parameters"
// @Success 	201 {object} response.Request
// @Failure 	400 {object} response.Error "Invalid payload"
// @Failure 	503 {object} response.Error "Database unavailable"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/requests [post]
func (r *V1) createRequest(ctx *fiber.Ctx) error {
	var payload dto.CreateRequest

	if err := ctx.BodyParser(&payload); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	request, err := r.requests.Create(ctx.UserContext(), payload)
	if err != nil {
		return r.handleError(ctx, err, "restapi - v1 - createRequest")
	}

	return ctx.Status(http.StatusCreated).JSON(response.NewRequest(request))
}

// @Summary 	List image generation requests
// @Description Returns all requests ordered by creation time
// @Tags 		requests
// @Produce 	json
// @Success 	200 {array}  response.Request
// @Failure 	503 {object} response.Error "Database unavailable"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/requests [get]
func (r *V1) listRequests(ctx *fiber.Ctx) error {
	requests, err := r.requests.List(ctx.UserContext())
	if err != nil {
		return r.handleError(ctx, err, "restapi - v1 - listRequests")
	}

	return ctx.JSON(response.NewRequestList(requests))
}

// @Summary 	Get image generation request
// @Tags 		requests
// @Produce 	json
// @Param 		id path string true "Request ID(uuid)"
// @Success 	200 {object} response.Request
// @Failure 	400 {object} response.Error "Invalid ID"
// @Failure 	404 {object} response.Error "Request not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/requests/{id} [get]
func (r *V1) getRequest(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	request, err := r.requests.Get(ctx.UserContext(), id)
	if err != nil {
		return r.handleError(ctx, err, "restapi - v1 - getRequest")
	}

	return ctx.JSON(response.NewRequest(request))
}

// @Summary 	Update request status
// @Description Applies a lifecycle transition to the request
// @Tags 		requests
// @Produce 	json
// @Param 		id 		   path  string true "Request ID(uuid)"
// @Param 		new_status query string true "Target status" Enums(pending, processing, completed, failed)
// @Success 	200 {object} response.Request
// @Failure 	400 {object} response.Error "Invalid ID or status"
// @Failure 	404 {object} response.Error "Request not found"
// @Failure 	409 {object} response.Error "Transition not allowed"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/requests/{id}/status [put]
func (r *V1) updateRequestStatus(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	newStatus := ctx.Query("new_status")
	if newStatus == "" {
		return errorResponse(ctx, http.StatusBadRequest, "new_status is required")
	}

	request, err := r.requests.UpdateStatus(ctx.UserContext(), id, entity.Status(newStatus))
	if err != nil {
		return r.handleError(ctx, err, "restapi - v1 - updateRequestStatus")
	}

	return ctx.JSON(response.NewRequest(request))
}

// @Summary 	Delete image generation request
// @Tags 		requests
// @Param		id 	path	 string true "Request ID(uuid)"
// @Success		204 "Deleted"
// @Failure 	400 {object} response.Error "Invalid ID"
// @Failure 	404 {object} response.Error "Request not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/requests/{id} [delete]
func (r *V1) deleteRequest(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	if err := r.requests.Delete(ctx.UserContext(), id); err != nil {
		return r.handleError(ctx, err, "restapi - v1 - deleteRequest")
	}

	return ctx.SendStatus(http.StatusNoContent)
}
