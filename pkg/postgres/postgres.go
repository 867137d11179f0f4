package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BelugaDiver/foreman/pkg/types/errs"
)

const (
	_defaultMaxPoolSize    = 10
	_defaultMinPoolSize    = 1
	_defaultConnAttempts   = 10
	_defaultConnTimeout    = time.Second
	_defaultAcquireTimeout = 5 * time.Second
	_defaultCommandTimeout = 30 * time.Second
)

// Postgres owns the pgx connection pool. An instance constructed without a DSN
// is disabled: it never touches the network and every acquire fails with
// errs.ErrDatabaseUnavailable, so the service can start without a database.
type Postgres struct {
	maxPoolSize    int
	minPoolSize    int
	connAttempts   int
	connTimeout    time.Duration
	acquireTimeout time.Duration
	commandTimeout time.Duration

	closed atomic.Bool

	Builder squirrel.StatementBuilderType
	Pool    *pgxpool.Pool
}

func New(url string, opts ...Option) (*Postgres, error) {
	pg := &Postgres{
		maxPoolSize:    _defaultMaxPoolSize,
		minPoolSize:    _defaultMinPoolSize,
		connAttempts:   _defaultConnAttempts,
		connTimeout:    _defaultConnTimeout,
		acquireTimeout: _defaultAcquireTimeout,
		commandTimeout: _defaultCommandTimeout,
	}

	for _, opt := range opts {
		opt(pg)
	}

	// A max below min is coerced upward rather than rejected.
	if pg.maxPoolSize < pg.minPoolSize {
		pg.maxPoolSize = pg.minPoolSize
	}

	pg.Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	// No DSN, no pool. The instance stays usable in its disabled state.
	if url == "" {
		return pg, nil
	}

	poolConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("postgres - New - pgxpool.ParseConfig: %w", err)
	}

	poolConfig.MaxConns = int32(pg.maxPoolSize)
	poolConfig.MinConns = int32(pg.minPoolSize)

	if pg.commandTimeout > 0 {
		poolConfig.ConnConfig.RuntimeParams["statement_timeout"] =
			strconv.FormatInt(pg.commandTimeout.Milliseconds(), 10)
	}

	for pg.connAttempts > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), pg.connTimeout)

		pg.Pool, err = pgxpool.NewWithConfig(ctx, poolConfig)
		if err == nil {
			err = pg.Pool.Ping(ctx)
		}

		cancel()

		if err == nil {
			break
		}

		log.Printf("Postgres is trying to connect, attempts left: %d", pg.connAttempts)

		time.Sleep(pg.connTimeout)

		pg.connAttempts--
	}

	if err != nil {
		return nil, fmt.Errorf("postgres - New - connAttempts == 0: %w", err)
	}

	return pg, nil
}

// Available reports whether a configured, open pool is ready for use. The
// health boundary consults it.
func (p *Postgres) Available() bool {
	return p.Pool != nil && !p.closed.Load()
}

func (p *Postgres) state() error {
	if p.closed.Load() {
		return errs.ErrPoolClosed
	}

	if p.Pool == nil {
		return errs.ErrDatabaseUnavailable
	}

	return nil
}

// Acquire checks a connection out of the pool, waiting at most the configured
// acquire timeout for a free slot. The caller must Release the connection on
// every exit path. A cancelled wait does not consume pool capacity.
func (p *Postgres) Acquire(ctx context.Context) (*pgxpool.Conn, error) {
	if err := p.state(); err != nil {
		return nil, err
	}

	acquireCtx, cancel := context.WithTimeout(ctx, p.acquireTimeout)
	defer cancel()

	conn, err := p.Pool.Acquire(acquireCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, fmt.Errorf("postgres - Acquire: %w", errs.ErrPoolTimeout)
		}

		return nil, fmt.Errorf("postgres - Acquire - p.Pool.Acquire: %w", err)
	}

	return conn, nil
}

// WithConn runs f with a pooled connection, releasing it on every exit path.
func (p *Postgres) WithConn(ctx context.Context, f func(conn *pgxpool.Conn) error) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	return f(conn)
}

// Close drains and closes the pool. It is idempotent; acquires made after the
// first call fail with errs.ErrPoolClosed.
func (p *Postgres) Close() {
	if p.closed.Swap(true) {
		return
	}

	if p.Pool != nil {
		p.Pool.Close()
	}
}
