package persistent

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/BelugaDiver/foreman/internal/entity"
	"github.com/BelugaDiver/foreman/pkg/postgres"
	"github.com/BelugaDiver/foreman/pkg/types/errs"
)

const (
	// Table
	requestsTable = "requests"

	// Columns
	idColumn        = "id"
	promptColumn    = "prompt"
	modelColumn     = "model"
	widthColumn     = "width"
	heightColumn    = "height"
	numImagesColumn = "num_images"
	statusColumn    = "status"
	createdAtColumn = "created_at"
	updatedAtColumn = "updated_at"
)

type RequestRepo struct {
	*postgres.Postgres
}

func NewRequestRepo(pg *postgres.Postgres) *RequestRepo {
	return &RequestRepo{pg}
}

func (r *RequestRepo) Create(ctx context.Context, request *entity.Request) error {
	sql, args, err := r.Builder.
		Insert(requestsTable).
		Columns(
			idColumn,
			promptColumn,
			modelColumn,
			widthColumn,
			heightColumn,
			numImagesColumn,
			statusColumn,
			createdAtColumn,
			updatedAtColumn,
		).
		Values(
			request.ID,
			request.Prompt,
			request.Model,
			request.Width,
			request.Height,
			request.NumImages,
			request.Status,
			request.CreatedAt,
			request.UpdatedAt,
		).ToSql()
	if err != nil {
		return fmt.Errorf("RequestRepo - Create - r.Builder.ToSql: %w", err)
	}

	// Pool / Tx
	executor, release, err := r.GetExecutor(ctx)
	if err != nil {
		return fmt.Errorf("RequestRepo - Create - r.GetExecutor: %w", err)
	}
	defer release()

	_, err = executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("RequestRepo - Create - executor.Exec: %w", err)
	}

	return nil
}

func (r *RequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Request, error) {
	sql, args, err := r.Builder.
		Select(
			idColumn,
			promptColumn,
			modelColumn,
			widthColumn,
			heightColumn,
			numImagesColumn,
			statusColumn,
			createdAtColumn,
			updatedAtColumn,
		).
		From(requestsTable).
		Where(squirrel.Eq{idColumn: id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("RequestRepo - GetByID - r.Builder.ToSql: %w", err)
	}

	executor, release, err := r.GetExecutor(ctx)
	if err != nil {
		return nil, fmt.Errorf("RequestRepo - GetByID - r.GetExecutor: %w", err)
	}
	defer release()

	var request entity.Request

	err = executor.QueryRow(ctx, sql, args...).Scan(
		&request.ID,
		&request.Prompt,
		&request.Model,
		&request.Width,
		&request.Height,
		&request.NumImages,
		&request.Status,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("RequestRepo - GetByID: %w", errs.ErrRecordNotFound)
		}

		return nil, fmt.Errorf("RequestRepo - GetByID - executor.QueryRow: %w", err)
	}

	return &request, nil
}

// List returns every request in insertion order.
func (r *RequestRepo) List(ctx context.Context) ([]*entity.Request, error) {
	sql, args, err := r.Builder.
		Select(
			idColumn,
			promptColumn,
			modelColumn,
			widthColumn,
			heightColumn,
			numImagesColumn,
			statusColumn,
			createdAtColumn,
			updatedAtColumn,
		).
		From(requestsTable).
		OrderBy(createdAtColumn + " ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("RequestRepo - List - r.Builder.ToSql: %w", err)
	}

	executor, release, err := r.GetExecutor(ctx)
	if err != nil {
		return nil, fmt.Errorf("RequestRepo - List - r.GetExecutor: %w", err)
	}
	defer release()

	rows, err := executor.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("RequestRepo - List - executor.Query: %w", err)
	}
	defer rows.Close()

	requests := make([]*entity.Request, 0)

	for rows.Next() {
		var request entity.Request

		err = rows.Scan(
			&request.ID,
			&request.Prompt,
			&request.Model,
			&request.Width,
			&request.Height,
			&request.NumImages,
			&request.Status,
			&request.CreatedAt,
			&request.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("RequestRepo - List - rows.Scan: %w", err)
		}

		requests = append(requests, &request)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("RequestRepo - List - rows.Err: %w", err)
	}

	return requests, nil
}

// UpdateStatus persists the request's status and refreshed updated_at. The
// legality of the transition is the use case's concern.
func (r *RequestRepo) UpdateStatus(ctx context.Context, request *entity.Request) error {
	sql, args, err := r.Builder.
		Update(requestsTable).
		Set(statusColumn, request.Status).
		Set(updatedAtColumn, request.UpdatedAt).
		Where(squirrel.Eq{idColumn: request.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("RequestRepo - UpdateStatus - r.Builder.ToSql: %w", err)
	}

	executor, release, err := r.GetExecutor(ctx)
	if err != nil {
		return fmt.Errorf("RequestRepo - UpdateStatus - r.GetExecutor: %w", err)
	}
	defer release()

	tag, err := executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("RequestRepo - UpdateStatus - executor.Exec: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("RequestRepo - UpdateStatus: %w", errs.ErrRecordNotFound)
	}

	return nil
}

func (r *RequestRepo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.Builder.
		Delete(requestsTable).
		Where(squirrel.Eq{idColumn: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("RequestRepo - Delete - r.Builder.ToSql: %w", err)
	}

	executor, release, err := r.GetExecutor(ctx)
	if err != nil {
		return fmt.Errorf("RequestRepo - Delete - r.GetExecutor: %w", err)
	}
	defer release()

	tag, err := executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("RequestRepo - Delete - executor.Exec: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("RequestRepo - Delete: %w", errs.ErrRecordNotFound)
	}

	return nil
}
