package postgres

import "time"

type Option func(*Postgres)

func MaxPoolSize(size int) Option {
	return func(c *Postgres) {
		if size > 0 {
			c.maxPoolSize = size
		}
	}
}

func MinPoolSize(size int) Option {
	return func(c *Postgres) {
		if size >= 0 {
			c.minPoolSize = size
		}
	}
}

func ConnAttempts(attempts int) Option {
	return func(c *Postgres) {
		if attempts > 0 {
			c.connAttempts = attempts
		}
	}
}

// CommandTimeout bounds every statement executed on a pooled connection.
func CommandTimeout(timeout time.Duration) Option {
	return func(c *Postgres) {
		c.commandTimeout = timeout
	}
}

// AcquireTimeout bounds how long an acquire may wait for a free connection
// before failing with errs.ErrPoolTimeout.
func AcquireTimeout(timeout time.Duration) Option {
	return func(c *Postgres) {
		if timeout > 0 {
			c.acquireTimeout = timeout
		}
	}
}
