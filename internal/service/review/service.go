// Package review implements the submission promotion and audit pipeline:
// approving a submission migrates its draft records into the production
// tables with resolved taxonomy references and cross-links; rejecting it
// records the decision and cascades deletion of the draft records.
package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/riskframe/secreview-backend/internal/config"
	"github.com/riskframe/secreview-backend/internal/domain"
)

type submissionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	MarkReviewed(ctx context.Context, id uuid.UUID, status domain.SubmissionStatus, reviewerID *uuid.UUID, comments *string) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteDraftOFCSources(ctx context.Context, submissionID uuid.UUID) (int, error)
	DeleteDraftOFCs(ctx context.Context, submissionID uuid.UUID) (int, error)
	DeleteDraftVulnerabilities(ctx context.Context, submissionID uuid.UUID) (int, error)
	DeleteDraftSources(ctx context.Context, submissionID uuid.UUID) (int, error)
}

type taxonomyRepo interface {
	FindSectorID(ctx context.Context, name string) (*uuid.UUID, error)
	FindSubsectorID(ctx context.Context, name string) (*uuid.UUID, error)
}

type productionRepo interface {
	InsertVulnerability(ctx context.Context, v domain.Vulnerability) (domain.Vulnerability, error)
	InsertOFC(ctx context.Context, o domain.OptionForConsideration) (domain.OptionForConsideration, error)
	InsertSource(ctx context.Context, s domain.Source) (domain.Source, error)
	FindSourceByTitle(ctx context.Context, title string) (*domain.Source, error)
	FirstSourceID(ctx context.Context) (*uuid.UUID, error)
	InsertVulnOFCLink(ctx context.Context, link domain.VulnOFCLink) error
	InsertOFCSourceLink(ctx context.Context, link domain.OFCSourceLink) error
}

type auditRepo interface {
	Create(ctx context.Context, entry domain.ReviewAuditEntry) (domain.ReviewAuditEntry, error)
	ListBySubmission(ctx context.Context, submissionID uuid.UUID, limit int) ([]domain.ReviewAuditEntry, error)
}

type learningRepo interface {
	Create(ctx context.Context, event domain.LearningEvent) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service orchestrates the review pipeline. It is the only component that
// performs the authoritative status write; every promotion side effect runs
// after that write is durable.
type Service struct {
	log         *slog.Logger
	tx          txManager
	submissions submissionRepo
	taxonomy    taxonomyRepo
	production  productionRepo
	audit       auditRepo
	learning    learningRepo
	cfg         config.ReviewConfig
}

// NewService creates a new review service.
func NewService(
	log *slog.Logger,
	tx txManager,
	submissions submissionRepo,
	taxonomy taxonomyRepo,
	production productionRepo,
	audit auditRepo,
	learning learningRepo,
	cfg config.ReviewConfig,
) *Service {
	return &Service{
		log:         log.With("service", "review"),
		tx:          tx,
		submissions: submissions,
		taxonomy:    taxonomy,
		production:  production,
		audit:       audit,
		learning:    learning,
		cfg:         cfg,
	}
}

// Result describes the outcome of a review action.
type Result struct {
	SubmissionID uuid.UUID
	Status       domain.SubmissionStatus
	Deleted      bool
	Promotion    *PromotionSummary
}

// PromotionSummary reports what a successful approve promoted. Partial
// failures are reflected here but are invisible to the HTTP caller.
type PromotionSummary struct {
	VulnerabilityIDs []uuid.UUID
	OFCIDs           []uuid.UUID
	SourceIDs        []uuid.UUID
	VulnOFCLinks     int
	OFCSourceLinks   int
	SkippedItems     int
}

// AuditTrail returns the audit entries recorded for a submission, newest first.
func (s *Service) AuditTrail(ctx context.Context, submissionID uuid.UUID) ([]domain.ReviewAuditEntry, error) {
	return s.audit.ListBySubmission(ctx, submissionID, s.cfg.AuditListLimit)
}

// logReview appends a review audit entry. The action is the one hard
// validation; every storage failure is logged and swallowed because the
// reviewing action must never fail on account of its safety net.
// The timestamp is assigned here, not by the caller.
func (s *Service) logReview(
	ctx context.Context,
	submissionID uuid.UUID,
	reviewerID *uuid.UUID,
	action domain.ReviewAction,
	vulnIDs, ofcIDs []uuid.UUID,
	notes *string,
) (*domain.ReviewAuditEntry, error) {
	if !action.IsValid() {
		return nil, domain.ErrInvalidAction
	}

	entry := domain.ReviewAuditEntry{
		ID:               uuid.New(),
		SubmissionID:     submissionID,
		ReviewerID:       reviewerID,
		Action:           action,
		VulnerabilityIDs: vulnIDs,
		OFCIDs:           ofcIDs,
		Notes:            notes,
		CreatedAt:        time.Now().UTC(),
	}

	created, err := s.audit.Create(ctx, entry)
	if err != nil {
		s.log.WarnContext(ctx, "audit entry write failed",
			slog.String("submission_id", submissionID.String()),
			slog.String("action", action.String()),
			slog.String("error", err.Error()),
		)
		return nil, nil
	}

	return &created, nil
}
