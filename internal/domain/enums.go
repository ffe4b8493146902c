package domain

// SubmissionStatus represents the review state of a submission.
// A submission moves from pending_review to exactly one terminal state.
type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending_review"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

func (s SubmissionStatus) String() string { return string(s) }

func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionStatusPending, SubmissionStatusApproved, SubmissionStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the status forbids further review actions.
func (s SubmissionStatus) IsTerminal() bool {
	return s == SubmissionStatusApproved || s == SubmissionStatusRejected
}

// ReviewAction represents a reviewer decision recorded in the audit log.
type ReviewAction string

const (
	ReviewActionApproved ReviewAction = "approved"
	ReviewActionRejected ReviewAction = "rejected"
	ReviewActionEdited   ReviewAction = "edited"
)

func (a ReviewAction) String() string { return string(a) }

func (a ReviewAction) IsValid() bool {
	switch a {
	case ReviewActionApproved, ReviewActionRejected, ReviewActionEdited:
		return true
	}
	return false
}

// LinkType classifies a vulnerability↔OFC association.
type LinkType string

const (
	LinkTypeDirect   LinkType = "direct"
	LinkTypeInferred LinkType = "inferred"
)

func (t LinkType) String() string { return string(t) }

func (t LinkType) IsValid() bool {
	switch t {
	case LinkTypeDirect, LinkTypeInferred:
		return true
	}
	return false
}

// LearningEventType classifies feedback records emitted for the
// model-retraining process.
type LearningEventType string

const (
	LearningEventApproval LearningEventType = "approval"
)

func (t LearningEventType) String() string { return string(t) }
