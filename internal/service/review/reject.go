package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/riskframe/secreview-backend/internal/domain"
)

// Reject marks a pending submission as rejected, records the decision, and
// removes the submission and its draft records entirely.
//
// The status flip uses the same conditional update as Approve, so a terminal
// submission fails with domain.ErrAlreadyProcessed. The audit entry is
// written before the cascade: the decision must be on record even if cleanup
// then fails. Draft children are deleted before the submission row; a failed
// child delete is logged and the remaining steps still run, but a failed
// submission delete surfaces as domain.ErrDeleteFailed.
func (s *Service) Reject(ctx context.Context, input ReviewInput) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.submissions.GetByID(ctx, input.SubmissionID); err != nil {
			return err
		}
		return s.submissions.MarkReviewed(ctx, input.SubmissionID, domain.SubmissionStatusRejected, input.ReviewerID, input.comments())
	})
	if err != nil {
		return nil, fmt.Errorf("reject submission: %w", err)
	}

	_, _ = s.logReview(ctx, input.SubmissionID, input.ReviewerID, domain.ReviewActionRejected, nil, nil, input.comments())

	s.deleteDraftRecords(ctx, input.SubmissionID)

	if err := s.submissions.Delete(ctx, input.SubmissionID); err != nil {
		return nil, fmt.Errorf("delete rejected submission %s: %w: %w", input.SubmissionID, domain.ErrDeleteFailed, err)
	}

	s.log.InfoContext(ctx, "submission rejected and deleted",
		slog.String("submission_id", input.SubmissionID.String()),
	)

	return &Result{
		SubmissionID: input.SubmissionID,
		Status:       domain.SubmissionStatusRejected,
		Deleted:      true,
	}, nil
}

// deleteDraftRecords removes the submission's draft rows, children before
// parents so foreign keys never block. Junction rows go first, then the
// records they reference.
func (s *Service) deleteDraftRecords(ctx context.Context, submissionID uuid.UUID) {
	steps := []struct {
		name string
		fn   func(ctx context.Context, submissionID uuid.UUID) (int, error)
	}{
		{"draft ofc-source links", s.submissions.DeleteDraftOFCSources},
		{"draft ofcs", s.submissions.DeleteDraftOFCs},
		{"draft vulnerabilities", s.submissions.DeleteDraftVulnerabilities},
		{"draft sources", s.submissions.DeleteDraftSources},
	}

	for _, step := range steps {
		n, err := step.fn(ctx, submissionID)
		if err != nil {
			s.log.WarnContext(ctx, "draft cleanup step failed",
				slog.String("submission_id", submissionID.String()),
				slog.String("step", step.name),
				slog.String("error", err.Error()),
			)
			continue
		}
		if n > 0 {
			s.log.DebugContext(ctx, "draft records deleted",
				slog.String("submission_id", submissionID.String()),
				slog.String("step", step.name),
				slog.Int("rows", n),
			)
		}
	}
}
