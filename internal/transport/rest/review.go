package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/riskframe/secreview-backend/internal/domain"
	"github.com/riskframe/secreview-backend/internal/service/review"
	"github.com/riskframe/secreview-backend/pkg/ctxutil"
)

type reviewService interface {
	Approve(ctx context.Context, input review.ReviewInput) (*review.Result, error)
	Reject(ctx context.Context, input review.ReviewInput) (*review.Result, error)
	AuditTrail(ctx context.Context, submissionID uuid.UUID) ([]domain.ReviewAuditEntry, error)
}

// ReviewHandler serves the submission review endpoints.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		svc: svc,
		log: logger.With("handler", "review"),
	}
}

type reviewRequest struct {
	Comments   *string `json:"comments"`
	ReviewedBy *string `json:"reviewed_by"`
}

type reviewResponse struct {
	Success   bool               `json:"success"`
	ID        string             `json:"id"`
	Status    string             `json:"status"`
	Deleted   bool               `json:"deleted,omitempty"`
	Promotion *promotionResponse `json:"promotion,omitempty"`
}

type promotionResponse struct {
	VulnerabilityIDs []string `json:"vulnerability_ids"`
	OFCIDs           []string `json:"ofc_ids"`
	SourceIDs        []string `json:"source_ids"`
	VulnOFCLinks     int      `json:"vulnerability_ofc_links"`
	OFCSourceLinks   int      `json:"ofc_source_links"`
	SkippedItems     int      `json:"skipped_items"`
}

type auditEntryResponse struct {
	ID               string    `json:"id"`
	SubmissionID     string    `json:"submission_id"`
	ReviewerID       *string   `json:"reviewer_id,omitempty"`
	Action           string    `json:"action"`
	VulnerabilityIDs []string  `json:"vulnerability_ids"`
	OFCIDs           []string  `json:"ofc_ids"`
	Notes            *string   `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// Approve handles POST /submissions/{id}/approve.
func (h *ReviewHandler) Approve(w http.ResponseWriter, r *http.Request) {
	input, ok := h.parseInput(w, r)
	if !ok {
		return
	}

	result, err := h.svc.Approve(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewResponse(result))
}

// Reject handles POST /submissions/{id}/reject.
func (h *ReviewHandler) Reject(w http.ResponseWriter, r *http.Request) {
	input, ok := h.parseInput(w, r)
	if !ok {
		return
	}

	result, err := h.svc.Reject(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewResponse(result))
}

// AuditTrail handles GET /submissions/{id}/audit.
func (h *ReviewHandler) AuditTrail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid submission id")
		return
	}

	entries, err := h.svc.AuditTrail(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]auditEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, toAuditEntryResponse(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

// parseInput extracts the submission id from the path and the optional
// request body. The reviewer identity comes from the request context when the
// auth middleware resolved one; an explicit reviewed_by in the body wins.
func (h *ReviewHandler) parseInput(w http.ResponseWriter, r *http.Request) (review.ReviewInput, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid submission id")
		return review.ReviewInput{}, false
	}

	input := review.ReviewInput{SubmissionID: id}
	if reviewerID, ok := ctxutil.ReviewerIDFromCtx(r.Context()); ok {
		input.ReviewerID = &reviewerID
	}

	if r.Body == nil || r.ContentLength == 0 {
		return input, true
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return review.ReviewInput{}, false
	}

	input.Comments = req.Comments
	if req.ReviewedBy != nil {
		reviewerID, err := uuid.Parse(*req.ReviewedBy)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid reviewed_by")
			return review.ReviewInput{}, false
		}
		input.ReviewerID = &reviewerID
	}

	return input, true
}

func (h *ReviewHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "submission not found")
	case errors.Is(err, domain.ErrAlreadyProcessed):
		writeError(w, http.StatusConflict, "submission already processed")
	case errors.Is(err, domain.ErrDeleteFailed):
		h.log.ErrorContext(r.Context(), "submission delete failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "submission could not be deleted")
	default:
		h.log.ErrorContext(r.Context(), "review request failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toReviewResponse(result *review.Result) reviewResponse {
	resp := reviewResponse{
		Success: true,
		ID:      result.SubmissionID.String(),
		Status:  result.Status.String(),
		Deleted: result.Deleted,
	}
	if result.Promotion != nil {
		resp.Promotion = &promotionResponse{
			VulnerabilityIDs: uuidStrings(result.Promotion.VulnerabilityIDs),
			OFCIDs:           uuidStrings(result.Promotion.OFCIDs),
			SourceIDs:        uuidStrings(result.Promotion.SourceIDs),
			VulnOFCLinks:     result.Promotion.VulnOFCLinks,
			OFCSourceLinks:   result.Promotion.OFCSourceLinks,
			SkippedItems:     result.Promotion.SkippedItems,
		}
	}
	return resp
}

func toAuditEntryResponse(e domain.ReviewAuditEntry) auditEntryResponse {
	resp := auditEntryResponse{
		ID:               e.ID.String(),
		SubmissionID:     e.SubmissionID.String(),
		Action:           e.Action.String(),
		VulnerabilityIDs: uuidStrings(e.VulnerabilityIDs),
		OFCIDs:           uuidStrings(e.OFCIDs),
		Notes:            e.Notes,
		CreatedAt:        e.CreatedAt,
	}
	if e.ReviewerID != nil {
		s := e.ReviewerID.String()
		resp.ReviewerID = &s
	}
	return resp
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
