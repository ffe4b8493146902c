package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vulnerability is a durable, submission-independent security vulnerability.
// SectorID and SubsectorID are nil when taxonomy resolution failed; resolution
// is advisory and never blocks promotion.
type Vulnerability struct {
	ID           uuid.UUID
	SectorID     *uuid.UUID
	SubsectorID  *uuid.UUID
	Discipline   *string
	Title        string
	Description  string
	Category     *string
	Severity     *string
	SubmissionID *uuid.UUID
	CreatedAt    time.Time
}

// OptionForConsideration is a durable recommended mitigation or action.
type OptionForConsideration struct {
	ID           uuid.UUID
	SectorID     *uuid.UUID
	SubsectorID  *uuid.UUID
	Discipline   *string
	Title        string
	Description  string
	SubmissionID *uuid.UUID
	CreatedAt    time.Time
}

// Source is a durable supporting source document.
type Source struct {
	ID           uuid.UUID
	Title        string
	URL          *string
	Organization *string
	Year         *int
	Restricted   bool
	CreatedAt    time.Time
}

// VulnOFCLink associates a vulnerability with an option for consideration.
// Admin-approved links carry LinkTypeDirect and confidence 1.0.
type VulnOFCLink struct {
	VulnerabilityID uuid.UUID
	OFCID           uuid.UUID
	LinkType        LinkType
	Confidence      float64
	CreatedAt       time.Time
}

// OFCSourceLink associates an option for consideration with a source,
// deduplicated on the (OFCID, SourceID) pair.
type OFCSourceLink struct {
	OFCID     uuid.UUID
	SourceID  uuid.UUID
	CreatedAt time.Time
}
