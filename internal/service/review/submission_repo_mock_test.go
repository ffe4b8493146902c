package review

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/riskframe/secreview-backend/internal/domain"
)

var _ submissionRepo = &submissionRepoMock{}

type submissionRepoMock struct {
	GetByIDFunc                    func(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	MarkReviewedFunc               func(ctx context.Context, id uuid.UUID, status domain.SubmissionStatus, reviewerID *uuid.UUID, comments *string) error
	DeleteFunc                     func(ctx context.Context, id uuid.UUID) error
	DeleteDraftOFCSourcesFunc      func(ctx context.Context, submissionID uuid.UUID) (int, error)
	DeleteDraftOFCsFunc            func(ctx context.Context, submissionID uuid.UUID) (int, error)
	DeleteDraftVulnerabilitiesFunc func(ctx context.Context, submissionID uuid.UUID) (int, error)
	DeleteDraftSourcesFunc         func(ctx context.Context, submissionID uuid.UUID) (int, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		MarkReviewed []struct {
			ID         uuid.UUID
			Status     domain.SubmissionStatus
			ReviewerID *uuid.UUID
			Comments   *string
		}
		Delete []struct {
			ID uuid.UUID
		}
		DeleteDraftOFCSources []struct {
			SubmissionID uuid.UUID
		}
		DeleteDraftOFCs []struct {
			SubmissionID uuid.UUID
		}
		DeleteDraftVulnerabilities []struct {
			SubmissionID uuid.UUID
		}
		DeleteDraftSources []struct {
			SubmissionID uuid.UUID
		}
	}
	lockGetByID                    sync.RWMutex
	lockMarkReviewed               sync.RWMutex
	lockDelete                     sync.RWMutex
	lockDeleteDraftOFCSources      sync.RWMutex
	lockDeleteDraftOFCs            sync.RWMutex
	lockDeleteDraftVulnerabilities sync.RWMutex
	lockDeleteDraftSources         sync.RWMutex
}

func (mock *submissionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	if mock.GetByIDFunc == nil {
		panic("submissionRepoMock.GetByIDFunc: method is nil but submissionRepo.GetByID was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *submissionRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *submissionRepoMock) MarkReviewed(ctx context.Context, id uuid.UUID, status domain.SubmissionStatus, reviewerID *uuid.UUID, comments *string) error {
	if mock.MarkReviewedFunc == nil {
		panic("submissionRepoMock.MarkReviewedFunc: method is nil but submissionRepo.MarkReviewed was just called")
	}
	callInfo := struct {
		ID         uuid.UUID
		Status     domain.SubmissionStatus
		ReviewerID *uuid.UUID
		Comments   *string
	}{ID: id, Status: status, ReviewerID: reviewerID, Comments: comments}
	mock.lockMarkReviewed.Lock()
	mock.calls.MarkReviewed = append(mock.calls.MarkReviewed, callInfo)
	mock.lockMarkReviewed.Unlock()
	return mock.MarkReviewedFunc(ctx, id, status, reviewerID, comments)
}

func (mock *submissionRepoMock) MarkReviewedCalls() []struct {
	ID         uuid.UUID
	Status     domain.SubmissionStatus
	ReviewerID *uuid.UUID
	Comments   *string
} {
	mock.lockMarkReviewed.RLock()
	calls := mock.calls.MarkReviewed
	mock.lockMarkReviewed.RUnlock()
	return calls
}

func (mock *submissionRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("submissionRepoMock.DeleteFunc: method is nil but submissionRepo.Delete was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *submissionRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *submissionRepoMock) DeleteDraftOFCSources(ctx context.Context, submissionID uuid.UUID) (int, error) {
	if mock.DeleteDraftOFCSourcesFunc == nil {
		panic("submissionRepoMock.DeleteDraftOFCSourcesFunc: method is nil but submissionRepo.DeleteDraftOFCSources was just called")
	}
	callInfo := struct{ SubmissionID uuid.UUID }{SubmissionID: submissionID}
	mock.lockDeleteDraftOFCSources.Lock()
	mock.calls.DeleteDraftOFCSources = append(mock.calls.DeleteDraftOFCSources, callInfo)
	mock.lockDeleteDraftOFCSources.Unlock()
	return mock.DeleteDraftOFCSourcesFunc(ctx, submissionID)
}

func (mock *submissionRepoMock) DeleteDraftOFCSourcesCalls() []struct{ SubmissionID uuid.UUID } {
	mock.lockDeleteDraftOFCSources.RLock()
	calls := mock.calls.DeleteDraftOFCSources
	mock.lockDeleteDraftOFCSources.RUnlock()
	return calls
}

func (mock *submissionRepoMock) DeleteDraftOFCs(ctx context.Context, submissionID uuid.UUID) (int, error) {
	if mock.DeleteDraftOFCsFunc == nil {
		panic("submissionRepoMock.DeleteDraftOFCsFunc: method is nil but submissionRepo.DeleteDraftOFCs was just called")
	}
	callInfo := struct{ SubmissionID uuid.UUID }{SubmissionID: submissionID}
	mock.lockDeleteDraftOFCs.Lock()
	mock.calls.DeleteDraftOFCs = append(mock.calls.DeleteDraftOFCs, callInfo)
	mock.lockDeleteDraftOFCs.Unlock()
	return mock.DeleteDraftOFCsFunc(ctx, submissionID)
}

func (mock *submissionRepoMock) DeleteDraftOFCsCalls() []struct{ SubmissionID uuid.UUID } {
	mock.lockDeleteDraftOFCs.RLock()
	calls := mock.calls.DeleteDraftOFCs
	mock.lockDeleteDraftOFCs.RUnlock()
	return calls
}

func (mock *submissionRepoMock) DeleteDraftVulnerabilities(ctx context.Context, submissionID uuid.UUID) (int, error) {
	if mock.DeleteDraftVulnerabilitiesFunc == nil {
		panic("submissionRepoMock.DeleteDraftVulnerabilitiesFunc: method is nil but submissionRepo.DeleteDraftVulnerabilities was just called")
	}
	callInfo := struct{ SubmissionID uuid.UUID }{SubmissionID: submissionID}
	mock.lockDeleteDraftVulnerabilities.Lock()
	mock.calls.DeleteDraftVulnerabilities = append(mock.calls.DeleteDraftVulnerabilities, callInfo)
	mock.lockDeleteDraftVulnerabilities.Unlock()
	return mock.DeleteDraftVulnerabilitiesFunc(ctx, submissionID)
}

func (mock *submissionRepoMock) DeleteDraftVulnerabilitiesCalls() []struct{ SubmissionID uuid.UUID } {
	mock.lockDeleteDraftVulnerabilities.RLock()
	calls := mock.calls.DeleteDraftVulnerabilities
	mock.lockDeleteDraftVulnerabilities.RUnlock()
	return calls
}

func (mock *submissionRepoMock) DeleteDraftSources(ctx context.Context, submissionID uuid.UUID) (int, error) {
	if mock.DeleteDraftSourcesFunc == nil {
		panic("submissionRepoMock.DeleteDraftSourcesFunc: method is nil but submissionRepo.DeleteDraftSources was just called")
	}
	callInfo := struct{ SubmissionID uuid.UUID }{SubmissionID: submissionID}
	mock.lockDeleteDraftSources.Lock()
	mock.calls.DeleteDraftSources = append(mock.calls.DeleteDraftSources, callInfo)
	mock.lockDeleteDraftSources.Unlock()
	return mock.DeleteDraftSourcesFunc(ctx, submissionID)
}

func (mock *submissionRepoMock) DeleteDraftSourcesCalls() []struct{ SubmissionID uuid.UUID } {
	mock.lockDeleteDraftSources.RLock()
	calls := mock.calls.DeleteDraftSources
	mock.lockDeleteDraftSources.RUnlock()
	return calls
}
