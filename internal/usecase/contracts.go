package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/BelugaDiver/foreman/internal/dto"
	"github.com/BelugaDiver/foreman/internal/entity"
)

type (
	// Request manages the lifecycle of image generation requests.
	Request interface {
		Create(ctx context.Context, payload dto.CreateRequest) (*entity.Request, error)
		Get(ctx context.Context, id uuid.UUID) (*entity.Request, error)
		List(ctx context.Context) ([]*entity.Request, error)
		UpdateStatus(ctx context.Context, id uuid.UUID, newStatus entity.Status) (*entity.Request, error)
		Delete(ctx context.Context, id uuid.UUID) error
	}
)
