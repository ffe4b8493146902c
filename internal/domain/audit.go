package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewAuditEntry is an immutable record of a reviewer's decision.
// ReviewerID is nil for system-initiated actions. VulnerabilityIDs and OFCIDs
// list the production rows affected by the action. Entries are append-only:
// the pipeline never mutates or deletes them.
type ReviewAuditEntry struct {
	ID               uuid.UUID
	SubmissionID     uuid.UUID
	ReviewerID       *uuid.UUID
	Action           ReviewAction
	VulnerabilityIDs []uuid.UUID
	OFCIDs           []uuid.UUID
	Notes            *string
	CreatedAt        time.Time
}
