package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/riskframe/secreview-backend/internal/domain"
)

// Approve marks a pending submission as approved and promotes its draft
// records into the production tables.
//
// The status flip is the gate: it runs in its own transaction with a
// conditional update, so a submission already in a terminal state fails with
// domain.ErrAlreadyProcessed and nothing is written. Every promotion step
// after the flip is best-effort: a failed item is logged and skipped, and
// the caller still sees the approval succeed.
func (s *Service) Approve(ctx context.Context, input ReviewInput) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var sub *domain.Submission
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		sub, err = s.submissions.GetByID(ctx, input.SubmissionID)
		if err != nil {
			return err
		}
		return s.submissions.MarkReviewed(ctx, input.SubmissionID, domain.SubmissionStatusApproved, input.ReviewerID, input.comments())
	})
	if err != nil {
		return nil, fmt.Errorf("approve submission: %w", err)
	}

	payload, err := domain.ParsePayload(sub.Payload)
	if err != nil {
		// The status write is already durable; an unreadable payload means
		// nothing can be promoted, which is the empty-payload path.
		s.log.WarnContext(ctx, "submission payload unreadable, nothing promoted",
			slog.String("submission_id", sub.ID.String()),
			slog.String("error", err.Error()),
		)
		payload = domain.SubmissionPayload{}
	}

	result := &Result{
		SubmissionID: sub.ID,
		Status:       domain.SubmissionStatusApproved,
	}

	if payload.IsEmpty() {
		s.log.WarnContext(ctx, "approved submission has empty payload",
			slog.String("submission_id", sub.ID.String()),
		)
		s.logAuditApproved(ctx, input, nil, nil)
		return result, nil
	}

	summary := s.promote(ctx, sub.ID, payload)
	result.Promotion = summary

	s.emitLearningEvents(ctx, sub.ID, payload)
	s.logAuditApproved(ctx, input, summary.VulnerabilityIDs, summary.OFCIDs)

	s.log.InfoContext(ctx, "submission approved",
		slog.String("submission_id", sub.ID.String()),
		slog.Int("vulnerabilities", len(summary.VulnerabilityIDs)),
		slog.Int("ofcs", len(summary.OFCIDs)),
		slog.Int("sources", len(summary.SourceIDs)),
		slog.Int("vuln_ofc_links", summary.VulnOFCLinks),
		slog.Int("ofc_source_links", summary.OFCSourceLinks),
		slog.Int("skipped_items", summary.SkippedItems),
	)

	return result, nil
}

func (s *Service) logAuditApproved(ctx context.Context, input ReviewInput, vulnIDs, ofcIDs []uuid.UUID) {
	// The action constant is always valid here; errors cannot surface.
	_, _ = s.logReview(ctx, input.SubmissionID, input.ReviewerID, domain.ReviewActionApproved, vulnIDs, ofcIDs, input.comments())
}
