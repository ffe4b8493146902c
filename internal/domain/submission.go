package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Submission is a reviewable unit of draft records awaiting approve/reject.
// It is created by the ingestion process and mutated exactly once by the
// review pipeline; on rejection it is deleted entirely, not archived.
type Submission struct {
	ID             uuid.UUID
	Status         SubmissionStatus
	Payload        []byte
	ReviewedBy     *uuid.UUID
	ReviewComments *string
	CreatedAt      time.Time
	ReviewedAt     *time.Time
}

// SubmissionPayload is the parsed form of a submission's raw payload:
// extracted draft records plus their OFC↔source associations.
type SubmissionPayload struct {
	Vulnerabilities []DraftVulnerability `json:"vulnerabilities"`
	OFCs            []DraftOFC           `json:"options_for_consideration"`
	Sources         []DraftSource        `json:"sources"`
	OFCSources      []DraftOFCSource     `json:"ofc_sources"`
}

// IsEmpty reports whether the payload carries nothing to promote.
func (p SubmissionPayload) IsEmpty() bool {
	return len(p.Vulnerabilities) == 0 && len(p.OFCs) == 0 && len(p.Sources) == 0
}

// ParsePayload decodes a raw submission payload. A nil or empty payload is
// valid and yields an empty SubmissionPayload.
func ParsePayload(raw []byte) (SubmissionPayload, error) {
	var p SubmissionPayload
	if len(raw) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return SubmissionPayload{}, fmt.Errorf("parse submission payload: %w", err)
	}
	return p, nil
}

// DraftVulnerability is a submission-scoped extracted vulnerability.
// Key is the analyst-assigned identifier within the submission ("v1", "v2");
// it may be absent, in which case the vulnerability statement (or title)
// serves as the logical key.
type DraftVulnerability struct {
	Key                string `json:"id"`
	Title              string `json:"title"`
	AssessmentQuestion string `json:"assessment_question"`
	Statement          string `json:"vulnerability_statement"`
	What               string `json:"what"`
	SoWhat             string `json:"so_what"`
	Description        string `json:"description"`
	Discipline         string `json:"discipline"`
	Sector             string `json:"sector"`
	Subsector          string `json:"subsector"`
	Category           string `json:"category"`
	Severity           string `json:"severity"`
	SourceDocument     string `json:"source_document"`
}

// LogicalKey returns the stable identifier used to correlate this draft with
// its promoted production counterpart: the explicit key if present, else the
// normalized statement, else the normalized title.
func (v DraftVulnerability) LogicalKey() string {
	if v.Key != "" {
		return v.Key
	}
	if k := NormalizeText(v.Statement); k != "" {
		return k
	}
	return NormalizeText(v.Title)
}

// DraftOFC is a submission-scoped option for consideration. LinkedVulnerability
// optionally names the logical key of the vulnerability it mitigates.
type DraftOFC struct {
	Key                 string `json:"id"`
	Title               string `json:"title"`
	Description         string `json:"description"`
	Discipline          string `json:"discipline"`
	Sector              string `json:"sector"`
	Subsector           string `json:"subsector"`
	LinkedVulnerability string `json:"linked_vulnerability"`
}

// LogicalKey returns the explicit key if present, else the normalized title.
func (o DraftOFC) LogicalKey() string {
	if o.Key != "" {
		return o.Key
	}
	return NormalizeText(o.Title)
}

// DraftSource is a submission-scoped supporting source.
type DraftSource struct {
	Key          string `json:"id"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	Organization string `json:"organization"`
	Year         *int   `json:"year"`
	Restricted   bool   `json:"restricted"`
}

// LogicalKey returns the explicit key if present, else the normalized title.
func (s DraftSource) LogicalKey() string {
	if s.Key != "" {
		return s.Key
	}
	return NormalizeText(s.Title)
}

// DraftOFCSource associates a draft OFC with a draft source by logical key.
type DraftOFCSource struct {
	OFCKey    string `json:"ofc_id"`
	SourceKey string `json:"source_id"`
}
