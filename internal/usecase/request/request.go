package request

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/BelugaDiver/foreman/internal/dto"
	"github.com/BelugaDiver/foreman/internal/entity"
	"github.com/BelugaDiver/foreman/internal/repo"
	"github.com/BelugaDiver/foreman/pkg/logger"
	"github.com/BelugaDiver/foreman/pkg/types/errs"
)

type UseCase struct {
	requestRepo repo.RequestRepo
	transactor  repo.Transactor
	validate    *validator.Validate

	logger logger.Interface
}

func New(requestRepo repo.RequestRepo, transactor repo.Transactor, l logger.Interface) *UseCase {
	v := validator.New()

	// "required" alone accepts whitespace-only strings
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &UseCase{
		requestRepo: requestRepo,
		transactor:  transactor,
		validate:    v,
		logger:      l,
	}
}

// Create validates the payload and persists a new request in the pending
// state. Validation runs before any pool interaction, so bad input never
// consumes a connection.
func (uc *UseCase) Create(ctx context.Context, payload dto.CreateRequest) (*entity.Request, error) {
	if err := uc.validate.Struct(payload); err != nil {
		return nil, fmt.Errorf("RequestUseCase - Create: %w", toValidationError(err))
	}

	now := time.Now().UTC()

	request := &entity.Request{
		ID:        uuid.New(),
		Prompt:    payload.Prompt,
		Model:     payload.Model,
		Width:     payload.Width,
		Height:    payload.Height,
		NumImages: payload.NumImages,
		Status:    entity.Pending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.requestRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("RequestUseCase - Create - uc.requestRepo.Create: %w", err)
	}

	return request, nil
}

func (uc *UseCase) Get(ctx context.Context, id uuid.UUID) (*entity.Request, error) {
	request, err := uc.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("RequestUseCase - Get - uc.requestRepo.GetByID: %w", err)
	}

	return request, nil
}

func (uc *UseCase) List(ctx context.Context) ([]*entity.Request, error) {
	requests, err := uc.requestRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("RequestUseCase - List - uc.requestRepo.List: %w", err)
	}

	return requests, nil
}

// UpdateStatus applies a lifecycle transition. Read, pure transition check and
// write share one transaction but the row is not locked; concurrent updates to
// the same id may race at the storage layer.
func (uc *UseCase) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus entity.Status) (*entity.Request, error) {
	if !newStatus.Valid() {
		return nil, fmt.Errorf("RequestUseCase - UpdateStatus: %w", &errs.ValidationError{
			Field:  "status",
			Reason: fmt.Sprintf("must be one of pending, processing, completed, failed, got %q", newStatus),
		})
	}

	var updated *entity.Request

	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		request, err := uc.requestRepo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("uc.requestRepo.GetByID: %w", err)
		}

		next, err := entity.Transition(request.Status, newStatus)
		if err != nil {
			return fmt.Errorf("entity.Transition: %w", err)
		}

		request.Status = next
		request.UpdatedAt = time.Now().UTC()

		if err := uc.requestRepo.UpdateStatus(ctx, request); err != nil {
			return fmt.Errorf("uc.requestRepo.UpdateStatus: %w", err)
		}

		updated = request

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("RequestUseCase - UpdateStatus - uc.transactor.WithinTransaction: %w", err)
	}

	return updated, nil
}

func (uc *UseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.requestRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("RequestUseCase - Delete - uc.requestRepo.Delete: %w", err)
	}

	uc.logger.Info("request deleted, id = %s", id)

	return nil
}

func toValidationError(err error) error {
	var verrs validator.ValidationErrors

	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]

	return &errs.ValidationError{
		Field:  strings.ToLower(fe.Field()),
		Reason: fmt.Sprintf("failed on the %q rule", fe.Tag()),
		Err:    err,
	}
}
