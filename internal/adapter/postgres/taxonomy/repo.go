// Package taxonomy implements sector/subsector lookups using PostgreSQL.
// Resolution is advisory: a miss is a nil id, never an error.
package taxonomy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/riskframe/secreview-backend/internal/adapter/postgres"
)

// Repo provides taxonomy lookups backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new taxonomy repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// findSectorSQL matches case-insensitively on a substring of the sector name,
// preferring the shortest (most specific) match for deterministic results.
const findSectorSQL = `
SELECT id FROM sectors
WHERE name ILIKE '%' || $1 || '%'
ORDER BY length(name), name
LIMIT 1`

const findSubsectorSQL = `
SELECT id FROM subsectors
WHERE name ILIKE '%' || $1 || '%'
ORDER BY length(name), name
LIMIT 1`

// FindSectorID resolves a free-text sector name to a taxonomy id.
// Returns (nil, nil) when the name is blank or nothing matches.
func (r *Repo) FindSectorID(ctx context.Context, name string) (*uuid.UUID, error) {
	return r.findID(ctx, findSectorSQL, name)
}

// FindSubsectorID resolves a free-text subsector name to a taxonomy id.
// Returns (nil, nil) when the name is blank or nothing matches.
func (r *Repo) FindSubsectorID(ctx context.Context, name string) (*uuid.UUID, error) {
	return r.findID(ctx, findSubsectorSQL, name)
}

func (r *Repo) findID(ctx context.Context, sql, name string) (*uuid.UUID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var id uuid.UUID
	if err := q.QueryRow(ctx, sql, name).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find taxonomy id for %q: %w", name, err)
	}

	return &id, nil
}
