// Package testhelper provides a shared PostgreSQL test database for
// repository integration tests, plus seed helpers for the review schema.
package testhelper

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/riskframe/secreview-backend/internal/domain"
)

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// SetupTestDB starts a shared PostgreSQL container (once for the entire test run),
// applies goose migrations, and returns a new pgxpool.Pool connected to it.
// The pool is closed via t.Cleanup; the container lives until the process exits.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	once.Do(func() {
		sharedDSN, initErr = startContainerAndMigrate()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, sharedDSN)
	if err != nil {
		t.Fatalf("testhelper: failed to create pgxpool: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
	})

	return pool
}

func startContainerAndMigrate() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	dsn := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())

	// Apply goose migrations using database/sql (goose requires *sql.DB).
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return "", fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return "", fmt.Errorf("db ping: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(migrationsPath()))
	if err != nil {
		return "", fmt.Errorf("goose new provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return "", fmt.Errorf("goose up: %w", err)
	}

	return dsn, nil
}

// migrationsPath resolves the absolute path to migrations/ relative to the
// current source file using runtime.Caller.
func migrationsPath() string {
	_, currentFile, _, _ := runtime.Caller(0)
	// currentFile is .../internal/adapter/postgres/testhelper/db.go
	return filepath.Join(filepath.Dir(currentFile), "..", "..", "..", "..", "migrations")
}

// ---------------------------------------------------------------------------
// Seed helpers
// ---------------------------------------------------------------------------

// SeedSubmission inserts a pending submission with the given payload and
// returns it. Pass nil payload for an empty submission.
func SeedSubmission(t *testing.T, pool *pgxpool.Pool, payload *domain.SubmissionPayload) domain.Submission {
	t.Helper()

	var raw []byte
	if payload != nil {
		var err error
		raw, err = json.Marshal(payload)
		if err != nil {
			t.Fatalf("testhelper: marshal payload: %v", err)
		}
	}

	sub := domain.Submission{
		ID:      uuid.New(),
		Status:  domain.SubmissionStatusPending,
		Payload: raw,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO submissions (id, status, payload) VALUES ($1, $2, $3)`,
		sub.ID, sub.Status, raw,
	)
	if err != nil {
		t.Fatalf("testhelper: seed submission: %v", err)
	}

	return sub
}

// SeedSector inserts a sector and returns its id.
func SeedSector(t *testing.T, pool *pgxpool.Pool, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO sectors (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
		id, name,
	)
	if err != nil {
		t.Fatalf("testhelper: seed sector %q: %v", name, err)
	}

	// ON CONFLICT may have skipped the insert; read the authoritative id.
	if err := pool.QueryRow(context.Background(),
		`SELECT id FROM sectors WHERE name = $1`, name,
	).Scan(&id); err != nil {
		t.Fatalf("testhelper: read sector %q: %v", name, err)
	}

	return id
}

// SeedSubsector inserts a subsector under a sector and returns its id.
func SeedSubsector(t *testing.T, pool *pgxpool.Pool, sectorID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO subsectors (id, sector_id, name) VALUES ($1, $2, $3)
		 ON CONFLICT (sector_id, name) DO NOTHING`,
		id, sectorID, name,
	)
	if err != nil {
		t.Fatalf("testhelper: seed subsector %q: %v", name, err)
	}

	if err := pool.QueryRow(context.Background(),
		`SELECT id FROM subsectors WHERE sector_id = $1 AND name = $2`, sectorID, name,
	).Scan(&id); err != nil {
		t.Fatalf("testhelper: read subsector %q: %v", name, err)
	}

	return id
}

// SeedDraftRows mirrors a submission payload into the four draft tables,
// the way the ingestion process would. Returns nothing; rows are keyed by
// the submission id.
func SeedDraftRows(t *testing.T, pool *pgxpool.Pool, submissionID uuid.UUID, p domain.SubmissionPayload) {
	t.Helper()
	ctx := context.Background()

	ofcIDs := make(map[string]uuid.UUID, len(p.OFCs))
	sourceIDs := make(map[string]uuid.UUID, len(p.Sources))

	for _, v := range p.Vulnerabilities {
		_, err := pool.Exec(ctx,
			`INSERT INTO submission_vulnerabilities
			 (id, submission_id, draft_key, title, statement, description, sector, subsector, category, severity)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			uuid.New(), submissionID, v.Key, v.Title, v.Statement, v.Description, v.Sector, v.Subsector, v.Category, v.Severity,
		)
		if err != nil {
			t.Fatalf("testhelper: seed draft vulnerability: %v", err)
		}
	}

	for _, o := range p.OFCs {
		id := uuid.New()
		ofcIDs[o.LogicalKey()] = id
		_, err := pool.Exec(ctx,
			`INSERT INTO submission_ofcs
			 (id, submission_id, draft_key, title, description, linked_vulnerability)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			id, submissionID, o.Key, o.Title, o.Description, o.LinkedVulnerability,
		)
		if err != nil {
			t.Fatalf("testhelper: seed draft ofc: %v", err)
		}
	}

	for _, s := range p.Sources {
		id := uuid.New()
		sourceIDs[s.LogicalKey()] = id
		_, err := pool.Exec(ctx,
			`INSERT INTO submission_sources
			 (id, submission_id, draft_key, title, url, organization, year, restricted)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			id, submissionID, s.Key, s.Title, s.URL, s.Organization, s.Year, s.Restricted,
		)
		if err != nil {
			t.Fatalf("testhelper: seed draft source: %v", err)
		}
	}

	for _, link := range p.OFCSources {
		ofcID, ok := ofcIDs[link.OFCKey]
		if !ok {
			continue
		}
		sourceID, ok := sourceIDs[link.SourceKey]
		if !ok {
			continue
		}
		_, err := pool.Exec(ctx,
			`INSERT INTO submission_ofc_sources (id, submission_id, ofc_id, source_id)
			 VALUES ($1, $2, $3, $4)`,
			uuid.New(), submissionID, ofcID, sourceID,
		)
		if err != nil {
			t.Fatalf("testhelper: seed draft ofc-source link: %v", err)
		}
	}
}

// CountRows returns the number of rows in table matching submission_id.
func CountRows(t *testing.T, pool *pgxpool.Pool, table string, submissionID uuid.UUID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		fmt.Sprintf(`SELECT count(*) FROM %s WHERE submission_id = $1`, table),
		submissionID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: count %s: %v", table, err)
	}

	return n
}
