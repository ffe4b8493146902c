package domain

import (
	"time"

	"github.com/google/uuid"
)

// LearningEvent is an append-only feedback record for the external
// model-retraining process, one per promoted vulnerability.
type LearningEvent struct {
	ID           uuid.UUID
	SubmissionID uuid.UUID
	EventType    LearningEventType
	Approved     bool
	ModelVersion string
	Confidence   float64
	Metadata     LearningEventMetadata
	CreatedAt    time.Time
}

// LearningEventMetadata captures the identity and context of the
// vulnerability the event describes.
type LearningEventMetadata struct {
	VulnerabilityTitle string `json:"vulnerability_title"`
	Category           string `json:"category,omitempty"`
	Severity           string `json:"severity,omitempty"`
	LinkedOFCCount     int    `json:"linked_ofc_count"`
	SourceDocument     string `json:"source_document,omitempty"`
}
