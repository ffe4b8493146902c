package review

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/riskframe/secreview-backend/internal/domain"
)

var _ taxonomyRepo = &taxonomyRepoMock{}

type taxonomyRepoMock struct {
	FindSectorIDFunc    func(ctx context.Context, name string) (*uuid.UUID, error)
	FindSubsectorIDFunc func(ctx context.Context, name string) (*uuid.UUID, error)

	calls struct {
		FindSectorID []struct {
			Name string
		}
		FindSubsectorID []struct {
			Name string
		}
	}
	lockFindSectorID    sync.RWMutex
	lockFindSubsectorID sync.RWMutex
}

func (mock *taxonomyRepoMock) FindSectorID(ctx context.Context, name string) (*uuid.UUID, error) {
	if mock.FindSectorIDFunc == nil {
		panic("taxonomyRepoMock.FindSectorIDFunc: method is nil but taxonomyRepo.FindSectorID was just called")
	}
	callInfo := struct{ Name string }{Name: name}
	mock.lockFindSectorID.Lock()
	mock.calls.FindSectorID = append(mock.calls.FindSectorID, callInfo)
	mock.lockFindSectorID.Unlock()
	return mock.FindSectorIDFunc(ctx, name)
}

func (mock *taxonomyRepoMock) FindSectorIDCalls() []struct{ Name string } {
	mock.lockFindSectorID.RLock()
	calls := mock.calls.FindSectorID
	mock.lockFindSectorID.RUnlock()
	return calls
}

func (mock *taxonomyRepoMock) FindSubsectorID(ctx context.Context, name string) (*uuid.UUID, error) {
	if mock.FindSubsectorIDFunc == nil {
		panic("taxonomyRepoMock.FindSubsectorIDFunc: method is nil but taxonomyRepo.FindSubsectorID was just called")
	}
	callInfo := struct{ Name string }{Name: name}
	mock.lockFindSubsectorID.Lock()
	mock.calls.FindSubsectorID = append(mock.calls.FindSubsectorID, callInfo)
	mock.lockFindSubsectorID.Unlock()
	return mock.FindSubsectorIDFunc(ctx, name)
}

func (mock *taxonomyRepoMock) FindSubsectorIDCalls() []struct{ Name string } {
	mock.lockFindSubsectorID.RLock()
	calls := mock.calls.FindSubsectorID
	mock.lockFindSubsectorID.RUnlock()
	return calls
}

var _ auditRepo = &auditRepoMock{}

type auditRepoMock struct {
	CreateFunc           func(ctx context.Context, entry domain.ReviewAuditEntry) (domain.ReviewAuditEntry, error)
	ListBySubmissionFunc func(ctx context.Context, submissionID uuid.UUID, limit int) ([]domain.ReviewAuditEntry, error)

	calls struct {
		Create []struct {
			Entry domain.ReviewAuditEntry
		}
		ListBySubmission []struct {
			SubmissionID uuid.UUID
			Limit        int
		}
	}
	lockCreate           sync.RWMutex
	lockListBySubmission sync.RWMutex
}

func (mock *auditRepoMock) Create(ctx context.Context, entry domain.ReviewAuditEntry) (domain.ReviewAuditEntry, error) {
	if mock.CreateFunc == nil {
		panic("auditRepoMock.CreateFunc: method is nil but auditRepo.Create was just called")
	}
	callInfo := struct{ Entry domain.ReviewAuditEntry }{Entry: entry}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, entry)
}

func (mock *auditRepoMock) CreateCalls() []struct{ Entry domain.ReviewAuditEntry } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *auditRepoMock) ListBySubmission(ctx context.Context, submissionID uuid.UUID, limit int) ([]domain.ReviewAuditEntry, error) {
	if mock.ListBySubmissionFunc == nil {
		panic("auditRepoMock.ListBySubmissionFunc: method is nil but auditRepo.ListBySubmission was just called")
	}
	callInfo := struct {
		SubmissionID uuid.UUID
		Limit        int
	}{SubmissionID: submissionID, Limit: limit}
	mock.lockListBySubmission.Lock()
	mock.calls.ListBySubmission = append(mock.calls.ListBySubmission, callInfo)
	mock.lockListBySubmission.Unlock()
	return mock.ListBySubmissionFunc(ctx, submissionID, limit)
}

func (mock *auditRepoMock) ListBySubmissionCalls() []struct {
	SubmissionID uuid.UUID
	Limit        int
} {
	mock.lockListBySubmission.RLock()
	calls := mock.calls.ListBySubmission
	mock.lockListBySubmission.RUnlock()
	return calls
}

var _ learningRepo = &learningRepoMock{}

type learningRepoMock struct {
	CreateFunc func(ctx context.Context, event domain.LearningEvent) error

	calls struct {
		Create []struct {
			Event domain.LearningEvent
		}
	}
	lockCreate sync.RWMutex
}

func (mock *learningRepoMock) Create(ctx context.Context, event domain.LearningEvent) error {
	if mock.CreateFunc == nil {
		panic("learningRepoMock.CreateFunc: method is nil but learningRepo.Create was just called")
	}
	callInfo := struct{ Event domain.LearningEvent }{Event: event}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, event)
}

func (mock *learningRepoMock) CreateCalls() []struct{ Event domain.LearningEvent } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
