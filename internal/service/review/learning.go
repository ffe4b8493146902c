package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/riskframe/secreview-backend/internal/domain"
)

// emitLearningEvents records one approval event per draft vulnerability for
// the retraining pipeline. Failures are logged and swallowed: feedback is
// advisory and never blocks or fails an approval.
func (s *Service) emitLearningEvents(ctx context.Context, submissionID uuid.UUID, payload domain.SubmissionPayload) {
	for _, draft := range payload.Vulnerabilities {
		event := domain.LearningEvent{
			ID:           uuid.New(),
			SubmissionID: submissionID,
			EventType:    domain.LearningEventApproval,
			Approved:     true,
			ModelVersion: s.cfg.ModelVersion,
			Confidence:   1.0,
			Metadata: domain.LearningEventMetadata{
				VulnerabilityTitle: draft.Title,
				Category:           draft.Category,
				Severity:           draft.Severity,
				LinkedOFCCount:     countLinkedOFCs(draft, payload.OFCs),
				SourceDocument:     draft.SourceDocument,
			},
			CreatedAt: time.Now().UTC(),
		}
		if err := s.learning.Create(ctx, event); err != nil {
			s.log.WarnContext(ctx, "learning event write failed",
				slog.String("submission_id", submissionID.String()),
				slog.String("vulnerability_title", draft.Title),
				slog.String("error", err.Error()),
			)
		}
	}
}

// countLinkedOFCs counts the payload's OFCs whose linked-vulnerability
// reference names this draft: by explicit key, or by the normalized statement
// or title, mirroring how the promotion key map resolves references.
func countLinkedOFCs(v domain.DraftVulnerability, ofcs []domain.DraftOFC) int {
	statement := domain.NormalizeText(v.Statement)
	title := domain.NormalizeText(v.Title)

	n := 0
	for _, o := range ofcs {
		ref := o.LinkedVulnerability
		if ref == "" {
			continue
		}
		norm := domain.NormalizeText(ref)
		switch {
		case v.Key != "" && ref == v.Key:
			n++
		case statement != "" && norm == statement:
			n++
		case title != "" && norm == title:
			n++
		}
	}
	return n
}
