// Package learning implements the learning event repository using PostgreSQL.
// Events are append-only feedback records consumed by an external
// model-retraining process; this service only writes them.
package learning

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/riskframe/secreview-backend/internal/adapter/postgres"
	"github.com/riskframe/secreview-backend/internal/domain"
)

// Repo provides learning event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new learning event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create appends a learning event.
func (r *Repo) Create(ctx context.Context, event domain.LearningEvent) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	metadata, err := json.Marshal(event.Metadata)
	if err != nil {
		return fmt.Errorf("learning_event marshal metadata: %w", err)
	}

	sql, args, err := postgres.Builder.
		Insert("learning_events").
		Columns("id", "submission_id", "event_type", "approved", "model_version", "confidence", "metadata", "created_at").
		Values(event.ID, event.SubmissionID, event.EventType, event.Approved, event.ModelVersion, event.Confidence, metadata, event.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert learning event: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "learning_event", event.ID)
	}

	return nil
}
