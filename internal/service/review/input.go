package review

import (
	"strings"

	"github.com/google/uuid"

	"github.com/riskframe/secreview-backend/internal/domain"
)

const maxCommentLength = 4000

// ReviewInput holds the parameters shared by both review actions. The
// reviewer identity has already been resolved by the caller; a nil ReviewerID
// marks a system action.
type ReviewInput struct {
	SubmissionID uuid.UUID
	ReviewerID   *uuid.UUID
	Comments     *string
}

// Validate checks all fields and collects all errors.
func (i ReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.SubmissionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "submission_id", Message: "required"})
	}

	if i.Comments != nil {
		c := strings.TrimSpace(*i.Comments)
		if len(c) > maxCommentLength {
			errs = append(errs, domain.FieldError{Field: "comments", Message: "max 4000 characters"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// comments returns the trimmed comment text, or nil when blank.
func (i ReviewInput) comments() *string {
	if i.Comments == nil {
		return nil
	}
	c := strings.TrimSpace(*i.Comments)
	if c == "" {
		return nil
	}
	return &c
}
