package postgres

import (
	"context"
	"fmt"

	"github.com/gisung3253/kmu-back/internal/utils"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Storage reads the major and liberal course catalogs. It never writes.
type Storage struct {
	pool *pgxpool.Pool
}

// NewConnection returns *Storage so the pool is shared
func NewConnection(ctx context.Context, connString string) (*Storage, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrCatalogUnavailable, err)
	}

	return &Storage{
		pool: pool,
	}, nil
}

// Ping checks that the catalog database is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return unavailable(err)
	}
	return nil
}

// Close closes the database connection pool
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", utils.ErrCatalogUnavailable, err)
}
