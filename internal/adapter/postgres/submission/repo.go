// Package submission implements the Submission repository using PostgreSQL.
// It covers the submission row itself plus the four submission-scoped draft
// tables removed by the reject cascade.
package submission

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/riskframe/secreview-backend/internal/adapter/postgres"
	"github.com/riskframe/secreview-backend/internal/domain"
)

// Repo provides submission persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new submission repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a submission by primary key.
// Returns domain.ErrNotFound if the submission does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select("id", "status", "payload", "reviewed_by", "review_comments", "created_at", "reviewed_at").
		From("submissions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select submission: %w", err)
	}

	var s domain.Submission
	row := q.QueryRow(ctx, sql, args...)
	if err := row.Scan(&s.ID, &s.Status, &s.Payload, &s.ReviewedBy, &s.ReviewComments, &s.CreatedAt, &s.ReviewedAt); err != nil {
		return nil, postgres.MapError(err, "submission", id)
	}

	return &s, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// markReviewedSQL flips the status only while the submission is still
// pending. Zero affected rows means another reviewer got there first.
const markReviewedSQL = `
UPDATE submissions
SET status = $2, reviewed_by = $3, review_comments = $4, reviewed_at = now()
WHERE id = $1 AND status = 'pending_review'`

// MarkReviewed performs the authoritative status write. The WHERE clause on
// the current status makes the pending-review precondition and the mutation a
// single atomic statement; domain.ErrAlreadyProcessed is returned when the
// submission was no longer pending.
func (r *Repo) MarkReviewed(ctx context.Context, id uuid.UUID, status domain.SubmissionStatus, reviewerID *uuid.UUID, comments *string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, markReviewedSQL, id, status, reviewerID, comments)
	if err != nil {
		return postgres.MapError(err, "submission", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("submission %s: %w", id, domain.ErrAlreadyProcessed)
	}

	return nil
}

// Delete removes the submission row. Returns domain.ErrNotFound if it does
// not exist. Draft children must be deleted first; a remaining child row
// surfaces as a foreign-key failure here.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Delete("submissions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete submission: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "submission", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("submission %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Draft cascade (child-before-parent order)
// ---------------------------------------------------------------------------

// DeleteDraftOFCSources removes the draft OFC↔source junction rows for a
// submission. Returns the number of deleted rows.
func (r *Repo) DeleteDraftOFCSources(ctx context.Context, submissionID uuid.UUID) (int, error) {
	return r.deleteBySubmission(ctx, "submission_ofc_sources", submissionID)
}

// DeleteDraftOFCs removes the draft OFC rows for a submission.
func (r *Repo) DeleteDraftOFCs(ctx context.Context, submissionID uuid.UUID) (int, error) {
	return r.deleteBySubmission(ctx, "submission_ofcs", submissionID)
}

// DeleteDraftVulnerabilities removes the draft vulnerability rows for a submission.
func (r *Repo) DeleteDraftVulnerabilities(ctx context.Context, submissionID uuid.UUID) (int, error) {
	return r.deleteBySubmission(ctx, "submission_vulnerabilities", submissionID)
}

// DeleteDraftSources removes the draft source rows for a submission.
func (r *Repo) DeleteDraftSources(ctx context.Context, submissionID uuid.UUID) (int, error) {
	return r.deleteBySubmission(ctx, "submission_sources", submissionID)
}

func (r *Repo) deleteBySubmission(ctx context.Context, table string, submissionID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.Eq{"submission_id": submissionID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete %s: %w", table, err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, table, submissionID)
	}

	return int(tag.RowsAffected()), nil
}
