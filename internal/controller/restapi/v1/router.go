package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/BelugaDiver/foreman/internal/usecase"
	"github.com/BelugaDiver/foreman/pkg/logger"
)

func NewRequestRoutes(apiV1Group fiber.Router, requests usecase.Request, l logger.Interface) {
	r := &V1{requests: requests, logger: l}

	{
		apiV1Group.Post("/requests", r.createRequest)
		apiV1Group.Get("/requests", r.listRequests)
		apiV1Group.Get("/requests/:id", r.getRequest)
		apiV1Group.Put("/requests/:id/status", r.updateRequestStatus)
		apiV1Group.Delete("/requests/:id", r.deleteRequest)
	}
}
