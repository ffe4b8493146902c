// Package production implements the production-table repository using
// PostgreSQL: durable vulnerabilities, options for consideration, sources,
// and the two link tables populated during promotion.
package production

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/riskframe/secreview-backend/internal/adapter/postgres"
	"github.com/riskframe/secreview-backend/internal/domain"
)

// Repo provides production-table persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new production repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Entity inserts
// ---------------------------------------------------------------------------

// InsertVulnerability inserts a production vulnerability and returns it with
// storage-assigned timestamps.
func (r *Repo) InsertVulnerability(ctx context.Context, v domain.Vulnerability) (domain.Vulnerability, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("vulnerabilities").
		Columns("id", "sector_id", "subsector_id", "discipline", "title", "description", "category", "severity", "submission_id").
		Values(v.ID, v.SectorID, v.SubsectorID, v.Discipline, v.Title, v.Description, v.Category, v.Severity, v.SubmissionID).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return domain.Vulnerability{}, fmt.Errorf("build insert vulnerability: %w", err)
	}

	if err := q.QueryRow(ctx, sql, args...).Scan(&v.CreatedAt); err != nil {
		return domain.Vulnerability{}, postgres.MapError(err, "vulnerability", v.ID)
	}

	return v, nil
}

// InsertOFC inserts a production option for consideration.
func (r *Repo) InsertOFC(ctx context.Context, o domain.OptionForConsideration) (domain.OptionForConsideration, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("options_for_consideration").
		Columns("id", "sector_id", "subsector_id", "discipline", "title", "description", "submission_id").
		Values(o.ID, o.SectorID, o.SubsectorID, o.Discipline, o.Title, o.Description, o.SubmissionID).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return domain.OptionForConsideration{}, fmt.Errorf("build insert ofc: %w", err)
	}

	if err := q.QueryRow(ctx, sql, args...).Scan(&o.CreatedAt); err != nil {
		return domain.OptionForConsideration{}, postgres.MapError(err, "ofc", o.ID)
	}

	return o, nil
}

// InsertSource inserts a production source. Titles are unique; a duplicate
// maps to domain.ErrAlreadyExists so the caller can fall back to a lookup.
func (r *Repo) InsertSource(ctx context.Context, s domain.Source) (domain.Source, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("sources").
		Columns("id", "title", "url", "organization", "year", "restricted").
		Values(s.ID, s.Title, s.URL, s.Organization, s.Year, s.Restricted).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return domain.Source{}, fmt.Errorf("build insert source: %w", err)
	}

	if err := q.QueryRow(ctx, sql, args...).Scan(&s.CreatedAt); err != nil {
		return domain.Source{}, postgres.MapError(err, "source", s.ID)
	}

	return s, nil
}

// ---------------------------------------------------------------------------
// Source lookups
// ---------------------------------------------------------------------------

// FindSourceByTitle returns the production source with an exact title match.
// Returns domain.ErrNotFound when no source carries that title.
func (r *Repo) FindSourceByTitle(ctx context.Context, title string) (*domain.Source, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select("id", "title", "url", "organization", "year", "restricted", "created_at").
		From("sources").
		Where(squirrel.Eq{"title": title}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select source by title: %w", err)
	}

	var s domain.Source
	row := q.QueryRow(ctx, sql, args...)
	if err := row.Scan(&s.ID, &s.Title, &s.URL, &s.Organization, &s.Year, &s.Restricted, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("source %q: %w", title, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("find source by title %q: %w", title, err)
	}

	return &s, nil
}

// FirstSourceID returns the oldest production source id, or nil when the
// sources table is empty. Used by the link builder's provenance fallback.
func (r *Repo) FirstSourceID(ctx context.Context) (*uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var id uuid.UUID
	err := q.QueryRow(ctx, `SELECT id FROM sources ORDER BY created_at, id LIMIT 1`).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("first source id: %w", err)
	}

	return &id, nil
}

// ---------------------------------------------------------------------------
// Links
// ---------------------------------------------------------------------------

// InsertVulnOFCLink inserts a vulnerability↔OFC association. A duplicate pair
// maps to domain.ErrAlreadyExists; callers treat that as already satisfied.
func (r *Repo) InsertVulnOFCLink(ctx context.Context, link domain.VulnOFCLink) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("vulnerability_ofc_links").
		Columns("vulnerability_id", "ofc_id", "link_type", "confidence").
		Values(link.VulnerabilityID, link.OFCID, link.LinkType, link.Confidence).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert vuln-ofc link: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "vuln_ofc_link", link.VulnerabilityID)
	}

	return nil
}

// InsertOFCSourceLink inserts an OFC↔source association. A duplicate pair
// maps to domain.ErrAlreadyExists.
func (r *Repo) InsertOFCSourceLink(ctx context.Context, link domain.OFCSourceLink) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("ofc_source_links").
		Columns("ofc_id", "source_id").
		Values(link.OFCID, link.SourceID).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert ofc-source link: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "ofc_source_link", link.OFCID)
	}

	return nil
}
