package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BelugaDiver/foreman/pkg/types/errs"
)

func TestNewWithoutDSN(t *testing.T) {
	pg, err := New("")
	if err != nil {
		t.Fatalf("constructing without a DSN should not fail: %v", err)
	}

	if pg.Available() {
		t.Error("a pool without a DSN should report unavailable")
	}
	if pg.Pool != nil {
		t.Error("no pgx pool should exist in disabled state")
	}
}

func TestDisabledPoolFailsFast(t *testing.T) {
	pg, err := New("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()

	if _, err := pg.Acquire(ctx); !errors.Is(err, errs.ErrDatabaseUnavailable) {
		t.Errorf("Acquire: got %v, want ErrDatabaseUnavailable", err)
	}

	if _, _, err := pg.GetExecutor(ctx); !errors.Is(err, errs.ErrDatabaseUnavailable) {
		t.Errorf("GetExecutor: got %v, want ErrDatabaseUnavailable", err)
	}

	err = pg.WithConn(ctx, func(conn *pgxpool.Conn) error { return nil })
	if !errors.Is(err, errs.ErrDatabaseUnavailable) {
		t.Errorf("WithConn: got %v, want ErrDatabaseUnavailable", err)
	}

	err = pg.WithinTransaction(ctx, func(ctx context.Context) error { return nil })
	if !errors.Is(err, errs.ErrDatabaseUnavailable) {
		t.Errorf("WithinTransaction: got %v, want ErrDatabaseUnavailable", err)
	}
}

func TestClosedPoolTakesPrecedence(t *testing.T) {
	pg, err := New("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pg.Close()
	pg.Close() // idempotent

	if pg.Available() {
		t.Error("a closed pool should report unavailable")
	}

	if _, err := pg.Acquire(context.Background()); !errors.Is(err, errs.ErrPoolClosed) {
		t.Errorf("Acquire after Close: got %v, want ErrPoolClosed", err)
	}
}

func TestOptions(t *testing.T) {
	pg, err := New("",
		MinPoolSize(2),
		MaxPoolSize(4),
		ConnAttempts(3),
		CommandTimeout(45*time.Second),
		AcquireTimeout(time.Second),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pg.minPoolSize != 2 || pg.maxPoolSize != 4 {
		t.Errorf("pool sizes = %d/%d, want 2/4", pg.minPoolSize, pg.maxPoolSize)
	}
	if pg.connAttempts != 3 {
		t.Errorf("connAttempts = %d, want 3", pg.connAttempts)
	}
	if pg.commandTimeout != 45*time.Second {
		t.Errorf("commandTimeout = %s, want 45s", pg.commandTimeout)
	}
	if pg.acquireTimeout != time.Second {
		t.Errorf("acquireTimeout = %s, want 1s", pg.acquireTimeout)
	}
}

func TestMaxBelowMinIsCoerced(t *testing.T) {
	pg, err := New("", MinPoolSize(8), MaxPoolSize(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pg.maxPoolSize != 8 {
		t.Errorf("maxPoolSize = %d, want coercion up to 8", pg.maxPoolSize)
	}
}

func TestBuilderUsesDollarPlaceholders(t *testing.T) {
	pg, err := New("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sql, args, err := pg.Builder.
		Select("id").
		From("requests").
		Where(squirrel.Eq{"status": "pending"}).
		ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}

	if !strings.Contains(sql, "$1") {
		t.Errorf("expected $1 placeholder, got %q", sql)
	}
	if len(args) != 1 || args[0] != "pending" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestNewRejectsBadDSN(t *testing.T) {
	if _, err := New("://not-a-dsn", ConnAttempts(1)); err == nil {
		t.Fatal("expected an error for an unparseable DSN")
	}
}
