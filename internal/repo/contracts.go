package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/BelugaDiver/foreman/internal/entity"
)

type (
	// RequestRepo persists image generation requests. It is the only component
	// that touches storage.
	RequestRepo interface {
		Create(ctx context.Context, request *entity.Request) error
		GetByID(ctx context.Context, id uuid.UUID) (*entity.Request, error)
		List(ctx context.Context) ([]*entity.Request, error)
		UpdateStatus(ctx context.Context, request *entity.Request) error
		Delete(ctx context.Context, id uuid.UUID) error
	}

	// Transactor binds every repo call made inside f to a single transaction.
	Transactor interface {
		WithinTransaction(ctx context.Context, f func(ctx context.Context) error) error
	}
)
