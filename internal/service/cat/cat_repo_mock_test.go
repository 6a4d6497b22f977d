package cat

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/catgateway/internal/domain"
)

var _ catRepo = &catRepoMock{}

type catRepoMock struct {
	ListFunc           func(ctx context.Context) ([]domain.Cat, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Cat, error)
	ListByOwnerFunc    func(ctx context.Context, ownerID string) ([]domain.Cat, error)
	ListInRegionFunc   func(ctx context.Context, region domain.GeoRegion) ([]domain.Cat, error)
	CreateFunc         func(ctx context.Context, c domain.Cat) (*domain.Cat, error)
	UpdateMatchingFunc func(ctx context.Context, filter domain.CatFilter, patch domain.CatPatch) (*domain.Cat, error)
	DeleteMatchingFunc func(ctx context.Context, filter domain.CatFilter) (*domain.Cat, error)

	calls struct {
		List    []struct{ Ctx context.Context }
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByOwner []struct {
			Ctx     context.Context
			OwnerID string
		}
		ListInRegion []struct {
			Ctx    context.Context
			Region domain.GeoRegion
		}
		Create []struct {
			Ctx context.Context
			C   domain.Cat
		}
		UpdateMatching []struct {
			Ctx    context.Context
			Filter domain.CatFilter
			Patch  domain.CatPatch
		}
		DeleteMatching []struct {
			Ctx    context.Context
			Filter domain.CatFilter
		}
	}
	lockList           sync.RWMutex
	lockGetByID        sync.RWMutex
	lockListByOwner    sync.RWMutex
	lockListInRegion   sync.RWMutex
	lockCreate         sync.RWMutex
	lockUpdateMatching sync.RWMutex
	lockDeleteMatching sync.RWMutex
}

func (mock *catRepoMock) List(ctx context.Context) ([]domain.Cat, error) {
	if mock.ListFunc == nil {
		panic("catRepoMock.ListFunc: method is nil but catRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *catRepoMock) ListCalls() []struct{ Ctx context.Context } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *catRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Cat, error) {
	if mock.GetByIDFunc == nil {
		panic("catRepoMock.GetByIDFunc: method is nil but catRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *catRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *catRepoMock) ListByOwner(ctx context.Context, ownerID string) ([]domain.Cat, error) {
	if mock.ListByOwnerFunc == nil {
		panic("catRepoMock.ListByOwnerFunc: method is nil but catRepo.ListByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID string
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, callInfo)
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, ownerID)
}

func (mock *catRepoMock) ListByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID string
} {
	mock.lockListByOwner.RLock()
	calls := mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}

func (mock *catRepoMock) ListInRegion(ctx context.Context, region domain.GeoRegion) ([]domain.Cat, error) {
	if mock.ListInRegionFunc == nil {
		panic("catRepoMock.ListInRegionFunc: method is nil but catRepo.ListInRegion was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Region domain.GeoRegion
	}{Ctx: ctx, Region: region}
	mock.lockListInRegion.Lock()
	mock.calls.ListInRegion = append(mock.calls.ListInRegion, callInfo)
	mock.lockListInRegion.Unlock()
	return mock.ListInRegionFunc(ctx, region)
}

func (mock *catRepoMock) ListInRegionCalls() []struct {
	Ctx    context.Context
	Region domain.GeoRegion
} {
	mock.lockListInRegion.RLock()
	calls := mock.calls.ListInRegion
	mock.lockListInRegion.RUnlock()
	return calls
}

func (mock *catRepoMock) Create(ctx context.Context, c domain.Cat) (*domain.Cat, error) {
	if mock.CreateFunc == nil {
		panic("catRepoMock.CreateFunc: method is nil but catRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Cat
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *catRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   domain.Cat
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *catRepoMock) UpdateMatching(ctx context.Context, filter domain.CatFilter, patch domain.CatPatch) (*domain.Cat, error) {
	if mock.UpdateMatchingFunc == nil {
		panic("catRepoMock.UpdateMatchingFunc: method is nil but catRepo.UpdateMatching was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.CatFilter
		Patch  domain.CatPatch
	}{Ctx: ctx, Filter: filter, Patch: patch}
	mock.lockUpdateMatching.Lock()
	mock.calls.UpdateMatching = append(mock.calls.UpdateMatching, callInfo)
	mock.lockUpdateMatching.Unlock()
	return mock.UpdateMatchingFunc(ctx, filter, patch)
}

func (mock *catRepoMock) UpdateMatchingCalls() []struct {
	Ctx    context.Context
	Filter domain.CatFilter
	Patch  domain.CatPatch
} {
	mock.lockUpdateMatching.RLock()
	calls := mock.calls.UpdateMatching
	mock.lockUpdateMatching.RUnlock()
	return calls
}

func (mock *catRepoMock) DeleteMatching(ctx context.Context, filter domain.CatFilter) (*domain.Cat, error) {
	if mock.DeleteMatchingFunc == nil {
		panic("catRepoMock.DeleteMatchingFunc: method is nil but catRepo.DeleteMatching was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.CatFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockDeleteMatching.Lock()
	mock.calls.DeleteMatching = append(mock.calls.DeleteMatching, callInfo)
	mock.lockDeleteMatching.Unlock()
	return mock.DeleteMatchingFunc(ctx, filter)
}

func (mock *catRepoMock) DeleteMatchingCalls() []struct {
	Ctx    context.Context
	Filter domain.CatFilter
} {
	mock.lockDeleteMatching.RLock()
	calls := mock.calls.DeleteMatching
	mock.lockDeleteMatching.RUnlock()
	return calls
}
