package review

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/riskframe/secreview-backend/internal/domain"
)

// promote migrates the parsed payload into the production tables. Every step
// is best-effort: a failed item is logged, counted as skipped, and the rest
// of the payload still lands. The returned summary reflects what actually
// made it.
func (s *Service) promote(ctx context.Context, submissionID uuid.UUID, payload domain.SubmissionPayload) *PromotionSummary {
	summary := &PromotionSummary{}
	tax := newTaxonomyCache(s.taxonomy)

	vulnKeys := newKeyMap()
	ofcKeys := newKeyMap()
	sourceKeys := newKeyMap()

	s.writeVulnerabilities(ctx, submissionID, payload.Vulnerabilities, tax, vulnKeys, summary)
	s.writeOFCs(ctx, submissionID, payload.OFCs, tax, ofcKeys, summary)
	s.writeSources(ctx, payload.Sources, sourceKeys, summary)

	s.linkVulnerabilitiesToOFCs(ctx, payload.OFCs, vulnKeys, ofcKeys, summary)
	s.linkOFCsToSources(ctx, payload, ofcKeys, sourceKeys, summary)

	return summary
}

func (s *Service) writeVulnerabilities(
	ctx context.Context,
	submissionID uuid.UUID,
	drafts []domain.DraftVulnerability,
	tax *taxonomyCache,
	keys *keyMap,
	summary *PromotionSummary,
) {
	for _, draft := range drafts {
		title := strings.TrimSpace(draft.Title)
		if title == "" {
			title = strings.TrimSpace(draft.Statement)
		}
		if title == "" {
			s.log.WarnContext(ctx, "draft vulnerability has no title, skipped",
				slog.String("submission_id", submissionID.String()),
				slog.String("key", draft.Key),
			)
			summary.SkippedItems++
			continue
		}

		sectorID, subsectorID := tax.resolve(ctx, draft.Sector, draft.Subsector)

		v := domain.Vulnerability{
			ID:           uuid.New(),
			SectorID:     sectorID,
			SubsectorID:  subsectorID,
			Discipline:   optional(draft.Discipline),
			Title:        title,
			Description:  composeVulnDescription(draft),
			Category:     optional(draft.Category),
			Severity:     optional(draft.Severity),
			SubmissionID: &submissionID,
		}

		created, err := s.production.InsertVulnerability(ctx, v)
		if err != nil {
			s.log.WarnContext(ctx, "vulnerability promotion failed, skipped",
				slog.String("submission_id", submissionID.String()),
				slog.String("title", title),
				slog.String("error", err.Error()),
			)
			summary.SkippedItems++
			continue
		}

		summary.VulnerabilityIDs = append(summary.VulnerabilityIDs, created.ID)
		keys.register(created.ID, draft.Key, domain.NormalizeText(draft.Statement), domain.NormalizeText(draft.Title))
	}
}

func (s *Service) writeOFCs(
	ctx context.Context,
	submissionID uuid.UUID,
	drafts []domain.DraftOFC,
	tax *taxonomyCache,
	keys *keyMap,
	summary *PromotionSummary,
) {
	for _, draft := range drafts {
		title := strings.TrimSpace(draft.Title)
		if title == "" {
			s.log.WarnContext(ctx, "draft ofc has no title, skipped",
				slog.String("submission_id", submissionID.String()),
				slog.String("key", draft.Key),
			)
			summary.SkippedItems++
			continue
		}

		sectorID, subsectorID := tax.resolve(ctx, draft.Sector, draft.Subsector)

		o := domain.OptionForConsideration{
			ID:           uuid.New(),
			SectorID:     sectorID,
			SubsectorID:  subsectorID,
			Discipline:   optional(draft.Discipline),
			Title:        title,
			Description:  strings.TrimSpace(draft.Description),
			SubmissionID: &submissionID,
		}

		created, err := s.production.InsertOFC(ctx, o)
		if err != nil {
			s.log.WarnContext(ctx, "ofc promotion failed, skipped",
				slog.String("submission_id", submissionID.String()),
				slog.String("title", title),
				slog.String("error", err.Error()),
			)
			summary.SkippedItems++
			continue
		}

		summary.OFCIDs = append(summary.OFCIDs, created.ID)
		keys.register(created.ID, draft.Key, domain.NormalizeText(draft.Title))
	}
}

// writeSources deduplicates by title: a unique violation on insert resolves
// to the existing production row, so repeated approvals of the same source
// converge on one record.
func (s *Service) writeSources(
	ctx context.Context,
	drafts []domain.DraftSource,
	keys *keyMap,
	summary *PromotionSummary,
) {
	for _, draft := range drafts {
		title := strings.TrimSpace(draft.Title)
		if title == "" {
			summary.SkippedItems++
			continue
		}

		src := domain.Source{
			ID:           uuid.New(),
			Title:        title,
			URL:          optional(draft.URL),
			Organization: optional(draft.Organization),
			Year:         draft.Year,
			Restricted:   draft.Restricted,
		}

		created, err := s.production.InsertSource(ctx, src)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				existing, lookupErr := s.production.FindSourceByTitle(ctx, title)
				if lookupErr == nil {
					summary.SourceIDs = append(summary.SourceIDs, existing.ID)
					keys.register(existing.ID, draft.Key, domain.NormalizeText(draft.Title))
					continue
				}
				err = lookupErr
			}
			s.log.WarnContext(ctx, "source promotion failed, skipped",
				slog.String("title", title),
				slog.String("error", err.Error()),
			)
			summary.SkippedItems++
			continue
		}

		summary.SourceIDs = append(summary.SourceIDs, created.ID)
		keys.register(created.ID, draft.Key, domain.NormalizeText(draft.Title))
	}
}

// composeVulnDescription assembles the production description from the
// structured assessment fields, falling back to the free-form description
// when none are present.
func composeVulnDescription(draft domain.DraftVulnerability) string {
	var parts []string
	if q := strings.TrimSpace(draft.AssessmentQuestion); q != "" {
		parts = append(parts, "Assessment Question: "+q)
	}
	if st := strings.TrimSpace(draft.Statement); st != "" {
		parts = append(parts, "Vulnerability: "+st)
	}
	if w := strings.TrimSpace(draft.What); w != "" {
		parts = append(parts, "What: "+w)
	}
	if sw := strings.TrimSpace(draft.SoWhat); sw != "" {
		parts = append(parts, "So What: "+sw)
	}
	if len(parts) == 0 {
		return strings.TrimSpace(draft.Description)
	}
	return strings.Join(parts, "\n\n")
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// taxonomyCache memoizes sector/subsector lookups for the duration of a
// single approve, so repeated names in a payload hit the database once.
type taxonomyCache struct {
	repo       taxonomyRepo
	sectors    map[string]*uuid.UUID
	subsectors map[string]*uuid.UUID
}

func newTaxonomyCache(repo taxonomyRepo) *taxonomyCache {
	return &taxonomyCache{
		repo:       repo,
		sectors:    make(map[string]*uuid.UUID),
		subsectors: make(map[string]*uuid.UUID),
	}
}

// resolve maps free-text sector/subsector names to taxonomy ids. A miss or a
// lookup error yields nil; promotion proceeds without the reference.
func (c *taxonomyCache) resolve(ctx context.Context, sector, subsector string) (*uuid.UUID, *uuid.UUID) {
	return c.lookup(ctx, sector, c.sectors, c.repo.FindSectorID),
		c.lookup(ctx, subsector, c.subsectors, c.repo.FindSubsectorID)
}

func (c *taxonomyCache) lookup(
	ctx context.Context,
	name string,
	cache map[string]*uuid.UUID,
	find func(ctx context.Context, name string) (*uuid.UUID, error),
) *uuid.UUID {
	key := domain.NormalizeText(name)
	if key == "" {
		return nil
	}
	if id, ok := cache[key]; ok {
		return id
	}
	id, err := find(ctx, name)
	if err != nil {
		id = nil
	}
	cache[key] = id
	return id
}
