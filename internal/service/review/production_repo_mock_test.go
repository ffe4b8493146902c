package review

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/riskframe/secreview-backend/internal/domain"
)

var _ productionRepo = &productionRepoMock{}

type productionRepoMock struct {
	InsertVulnerabilityFunc func(ctx context.Context, v domain.Vulnerability) (domain.Vulnerability, error)
	InsertOFCFunc           func(ctx context.Context, o domain.OptionForConsideration) (domain.OptionForConsideration, error)
	InsertSourceFunc        func(ctx context.Context, s domain.Source) (domain.Source, error)
	FindSourceByTitleFunc   func(ctx context.Context, title string) (*domain.Source, error)
	FirstSourceIDFunc       func(ctx context.Context) (*uuid.UUID, error)
	InsertVulnOFCLinkFunc   func(ctx context.Context, link domain.VulnOFCLink) error
	InsertOFCSourceLinkFunc func(ctx context.Context, link domain.OFCSourceLink) error

	calls struct {
		InsertVulnerability []struct {
			V domain.Vulnerability
		}
		InsertOFC []struct {
			O domain.OptionForConsideration
		}
		InsertSource []struct {
			S domain.Source
		}
		FindSourceByTitle []struct {
			Title string
		}
		FirstSourceID []struct{}
		InsertVulnOFCLink []struct {
			Link domain.VulnOFCLink
		}
		InsertOFCSourceLink []struct {
			Link domain.OFCSourceLink
		}
	}
	lockInsertVulnerability sync.RWMutex
	lockInsertOFC           sync.RWMutex
	lockInsertSource        sync.RWMutex
	lockFindSourceByTitle   sync.RWMutex
	lockFirstSourceID       sync.RWMutex
	lockInsertVulnOFCLink   sync.RWMutex
	lockInsertOFCSourceLink sync.RWMutex
}

func (mock *productionRepoMock) InsertVulnerability(ctx context.Context, v domain.Vulnerability) (domain.Vulnerability, error) {
	if mock.InsertVulnerabilityFunc == nil {
		panic("productionRepoMock.InsertVulnerabilityFunc: method is nil but productionRepo.InsertVulnerability was just called")
	}
	callInfo := struct{ V domain.Vulnerability }{V: v}
	mock.lockInsertVulnerability.Lock()
	mock.calls.InsertVulnerability = append(mock.calls.InsertVulnerability, callInfo)
	mock.lockInsertVulnerability.Unlock()
	return mock.InsertVulnerabilityFunc(ctx, v)
}

func (mock *productionRepoMock) InsertVulnerabilityCalls() []struct{ V domain.Vulnerability } {
	mock.lockInsertVulnerability.RLock()
	calls := mock.calls.InsertVulnerability
	mock.lockInsertVulnerability.RUnlock()
	return calls
}

func (mock *productionRepoMock) InsertOFC(ctx context.Context, o domain.OptionForConsideration) (domain.OptionForConsideration, error) {
	if mock.InsertOFCFunc == nil {
		panic("productionRepoMock.InsertOFCFunc: method is nil but productionRepo.InsertOFC was just called")
	}
	callInfo := struct{ O domain.OptionForConsideration }{O: o}
	mock.lockInsertOFC.Lock()
	mock.calls.InsertOFC = append(mock.calls.InsertOFC, callInfo)
	mock.lockInsertOFC.Unlock()
	return mock.InsertOFCFunc(ctx, o)
}

func (mock *productionRepoMock) InsertOFCCalls() []struct{ O domain.OptionForConsideration } {
	mock.lockInsertOFC.RLock()
	calls := mock.calls.InsertOFC
	mock.lockInsertOFC.RUnlock()
	return calls
}

func (mock *productionRepoMock) InsertSource(ctx context.Context, s domain.Source) (domain.Source, error) {
	if mock.InsertSourceFunc == nil {
		panic("productionRepoMock.InsertSourceFunc: method is nil but productionRepo.InsertSource was just called")
	}
	callInfo := struct{ S domain.Source }{S: s}
	mock.lockInsertSource.Lock()
	mock.calls.InsertSource = append(mock.calls.InsertSource, callInfo)
	mock.lockInsertSource.Unlock()
	return mock.InsertSourceFunc(ctx, s)
}

func (mock *productionRepoMock) InsertSourceCalls() []struct{ S domain.Source } {
	mock.lockInsertSource.RLock()
	calls := mock.calls.InsertSource
	mock.lockInsertSource.RUnlock()
	return calls
}

func (mock *productionRepoMock) FindSourceByTitle(ctx context.Context, title string) (*domain.Source, error) {
	if mock.FindSourceByTitleFunc == nil {
		panic("productionRepoMock.FindSourceByTitleFunc: method is nil but productionRepo.FindSourceByTitle was just called")
	}
	callInfo := struct{ Title string }{Title: title}
	mock.lockFindSourceByTitle.Lock()
	mock.calls.FindSourceByTitle = append(mock.calls.FindSourceByTitle, callInfo)
	mock.lockFindSourceByTitle.Unlock()
	return mock.FindSourceByTitleFunc(ctx, title)
}

func (mock *productionRepoMock) FindSourceByTitleCalls() []struct{ Title string } {
	mock.lockFindSourceByTitle.RLock()
	calls := mock.calls.FindSourceByTitle
	mock.lockFindSourceByTitle.RUnlock()
	return calls
}

func (mock *productionRepoMock) FirstSourceID(ctx context.Context) (*uuid.UUID, error) {
	if mock.FirstSourceIDFunc == nil {
		panic("productionRepoMock.FirstSourceIDFunc: method is nil but productionRepo.FirstSourceID was just called")
	}
	mock.lockFirstSourceID.Lock()
	mock.calls.FirstSourceID = append(mock.calls.FirstSourceID, struct{}{})
	mock.lockFirstSourceID.Unlock()
	return mock.FirstSourceIDFunc(ctx)
}

func (mock *productionRepoMock) FirstSourceIDCalls() []struct{} {
	mock.lockFirstSourceID.RLock()
	calls := mock.calls.FirstSourceID
	mock.lockFirstSourceID.RUnlock()
	return calls
}

func (mock *productionRepoMock) InsertVulnOFCLink(ctx context.Context, link domain.VulnOFCLink) error {
	if mock.InsertVulnOFCLinkFunc == nil {
		panic("productionRepoMock.InsertVulnOFCLinkFunc: method is nil but productionRepo.InsertVulnOFCLink was just called")
	}
	callInfo := struct{ Link domain.VulnOFCLink }{Link: link}
	mock.lockInsertVulnOFCLink.Lock()
	mock.calls.InsertVulnOFCLink = append(mock.calls.InsertVulnOFCLink, callInfo)
	mock.lockInsertVulnOFCLink.Unlock()
	return mock.InsertVulnOFCLinkFunc(ctx, link)
}

func (mock *productionRepoMock) InsertVulnOFCLinkCalls() []struct{ Link domain.VulnOFCLink } {
	mock.lockInsertVulnOFCLink.RLock()
	calls := mock.calls.InsertVulnOFCLink
	mock.lockInsertVulnOFCLink.RUnlock()
	return calls
}

func (mock *productionRepoMock) InsertOFCSourceLink(ctx context.Context, link domain.OFCSourceLink) error {
	if mock.InsertOFCSourceLinkFunc == nil {
		panic("productionRepoMock.InsertOFCSourceLinkFunc: method is nil but productionRepo.InsertOFCSourceLink was just called")
	}
	callInfo := struct{ Link domain.OFCSourceLink }{Link: link}
	mock.lockInsertOFCSourceLink.Lock()
	mock.calls.InsertOFCSourceLink = append(mock.calls.InsertOFCSourceLink, callInfo)
	mock.lockInsertOFCSourceLink.Unlock()
	return mock.InsertOFCSourceLinkFunc(ctx, link)
}

func (mock *productionRepoMock) InsertOFCSourceLinkCalls() []struct{ Link domain.OFCSourceLink } {
	mock.lockInsertOFCSourceLink.RLock()
	calls := mock.calls.InsertOFCSourceLink
	mock.lockInsertOFCSourceLink.RUnlock()
	return calls
}
