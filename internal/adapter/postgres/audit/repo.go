// Package audit implements the review audit log repository using PostgreSQL.
// The log is append-only: the pipeline inserts and reads, never mutates.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/riskframe/secreview-backend/internal/adapter/postgres"
	"github.com/riskframe/secreview-backend/internal/domain"
)

// Repo provides review audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create appends a review audit entry and returns the persisted record.
func (r *Repo) Create(ctx context.Context, entry domain.ReviewAuditEntry) (domain.ReviewAuditEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("review_audit_log").
		Columns("id", "submission_id", "reviewer_id", "action", "vulnerability_ids", "ofc_ids", "notes", "created_at").
		Values(entry.ID, entry.SubmissionID, entry.ReviewerID, entry.Action, entry.VulnerabilityIDs, entry.OFCIDs, entry.Notes, entry.CreatedAt).
		ToSql()
	if err != nil {
		return domain.ReviewAuditEntry{}, fmt.Errorf("build insert audit entry: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return domain.ReviewAuditEntry{}, postgres.MapError(err, "audit_entry", entry.ID)
	}

	return entry, nil
}

// auditRow is the scan target for review_audit_log rows.
type auditRow struct {
	ID               uuid.UUID   `db:"id"`
	SubmissionID     uuid.UUID   `db:"submission_id"`
	ReviewerID       *uuid.UUID  `db:"reviewer_id"`
	Action           string      `db:"action"`
	VulnerabilityIDs []uuid.UUID `db:"vulnerability_ids"`
	OFCIDs           []uuid.UUID `db:"ofc_ids"`
	Notes            *string     `db:"notes"`
	CreatedAt        time.Time   `db:"created_at"`
}

// ListBySubmission returns the audit trail for a submission, newest first.
func (r *Repo) ListBySubmission(ctx context.Context, submissionID uuid.UUID, limit int) ([]domain.ReviewAuditEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select("id", "submission_id", "reviewer_id", "action", "vulnerability_ids", "ofc_ids", "notes", "created_at").
		From("review_audit_log").
		Where(squirrel.Eq{"submission_id": submissionID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select audit entries: %w", err)
	}

	var rows []auditRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list audit entries for %s: %w", submissionID, err)
	}

	entries := make([]domain.ReviewAuditEntry, len(rows))
	for i, row := range rows {
		entries[i] = domain.ReviewAuditEntry{
			ID:               row.ID,
			SubmissionID:     row.SubmissionID,
			ReviewerID:       row.ReviewerID,
			Action:           domain.ReviewAction(row.Action),
			VulnerabilityIDs: row.VulnerabilityIDs,
			OFCIDs:           row.OFCIDs,
			Notes:            row.Notes,
			CreatedAt:        row.CreatedAt,
		}
	}

	return entries, nil
}
