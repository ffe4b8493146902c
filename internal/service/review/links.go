package review

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/riskframe/secreview-backend/internal/domain"
)

// linkVulnerabilitiesToOFCs creates a direct link for every OFC that names a
// promoted vulnerability. A duplicate link already in place counts as
// satisfied; an unresolvable reference is skipped with a warning.
func (s *Service) linkVulnerabilitiesToOFCs(
	ctx context.Context,
	drafts []domain.DraftOFC,
	vulnKeys, ofcKeys *keyMap,
	summary *PromotionSummary,
) {
	for _, draft := range drafts {
		if draft.LinkedVulnerability == "" {
			continue
		}

		ofcID, ok := ofcKeys.resolve(draft.LogicalKey())
		if !ok {
			continue
		}
		vulnID, ok := vulnKeys.resolve(draft.LinkedVulnerability)
		if !ok {
			s.log.WarnContext(ctx, "ofc references unknown vulnerability, link skipped",
				slog.String("ofc_key", draft.LogicalKey()),
				slog.String("reference", draft.LinkedVulnerability),
			)
			summary.SkippedItems++
			continue
		}

		link := domain.VulnOFCLink{
			VulnerabilityID: vulnID,
			OFCID:           ofcID,
			LinkType:        domain.LinkTypeDirect,
			Confidence:      1.0,
		}
		if err := s.production.InsertVulnOFCLink(ctx, link); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				summary.VulnOFCLinks++
				continue
			}
			s.log.WarnContext(ctx, "vulnerability-ofc link failed, skipped",
				slog.String("vulnerability_id", vulnID.String()),
				slog.String("ofc_id", ofcID.String()),
				slog.String("error", err.Error()),
			)
			summary.SkippedItems++
			continue
		}
		summary.VulnOFCLinks++
	}
}

// linkOFCsToSources translates the payload's OFC↔source associations into
// production links, deduplicated on the (ofc, source) pair. When the payload
// carries no associations at all and the fallback is enabled, every promoted
// OFC is tied to the first production source so none is left unsourced.
func (s *Service) linkOFCsToSources(
	ctx context.Context,
	payload domain.SubmissionPayload,
	ofcKeys, sourceKeys *keyMap,
	summary *PromotionSummary,
) {
	type pair struct{ ofc, source uuid.UUID }
	seen := make(map[pair]struct{})

	for _, assoc := range payload.OFCSources {
		ofcID, ok := ofcKeys.resolve(assoc.OFCKey)
		if !ok {
			s.log.WarnContext(ctx, "ofc-source association references unknown ofc, skipped",
				slog.String("ofc_key", assoc.OFCKey),
			)
			summary.SkippedItems++
			continue
		}
		sourceID, ok := sourceKeys.resolve(assoc.SourceKey)
		if !ok {
			s.log.WarnContext(ctx, "ofc-source association references unknown source, skipped",
				slog.String("source_key", assoc.SourceKey),
			)
			summary.SkippedItems++
			continue
		}

		p := pair{ofc: ofcID, source: sourceID}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}

		if s.insertOFCSourceLink(ctx, ofcID, sourceID, summary) {
			summary.OFCSourceLinks++
		}
	}

	if summary.OFCSourceLinks > 0 || len(summary.OFCIDs) == 0 || !s.cfg.FallbackSourceLink {
		return
	}

	fallbackID, err := s.production.FirstSourceID(ctx)
	if err != nil || fallbackID == nil {
		return
	}
	s.log.WarnContext(ctx, "no ofc-source associations resolved, linking ofcs to fallback source",
		slog.String("source_id", fallbackID.String()),
		slog.Int("ofcs", len(summary.OFCIDs)),
	)
	for _, ofcID := range summary.OFCIDs {
		if s.insertOFCSourceLink(ctx, ofcID, *fallbackID, summary) {
			summary.OFCSourceLinks++
		}
	}
}

// insertOFCSourceLink reports whether the link exists after the call,
// treating an existing duplicate as success.
func (s *Service) insertOFCSourceLink(ctx context.Context, ofcID, sourceID uuid.UUID, summary *PromotionSummary) bool {
	link := domain.OFCSourceLink{OFCID: ofcID, SourceID: sourceID}
	if err := s.production.InsertOFCSourceLink(ctx, link); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return true
		}
		s.log.WarnContext(ctx, "ofc-source link failed, skipped",
			slog.String("ofc_id", ofcID.String()),
			slog.String("source_id", sourceID.String()),
			slog.String("error", err.Error()),
		)
		summary.SkippedItems++
		return false
	}
	return true
}
