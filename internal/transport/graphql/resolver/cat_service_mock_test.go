package resolver

import (
	"context"
	"sync"

	"github.com/heartmarshall/catgateway/internal/domain"
	"github.com/heartmarshall/catgateway/internal/service/cat"
)

var _ catService = &catServiceMock{}

type catServiceMock struct {
	ListFunc        func(ctx context.Context) ([]domain.Cat, error)
	GetByIDFunc     func(ctx context.Context, rawID string) (*domain.Cat, error)
	ListByOwnerFunc func(ctx context.Context, ownerID string) ([]domain.Cat, error)
	ListInAreaFunc  func(ctx context.Context, input cat.AreaInput) ([]domain.Cat, error)
	CreateFunc      func(ctx context.Context, input cat.CreateCatInput) (*domain.Cat, error)
	UpdateFunc      func(ctx context.Context, input cat.UpdateCatInput) (*domain.Cat, error)
	DeleteFunc      func(ctx context.Context, rawID string) (*domain.Cat, error)

	calls struct {
		List    []struct{ Ctx context.Context }
		GetByID []struct {
			Ctx   context.Context
			RawID string
		}
		ListByOwner []struct {
			Ctx     context.Context
			OwnerID string
		}
		ListInArea []struct {
			Ctx   context.Context
			Input cat.AreaInput
		}
		Create []struct {
			Ctx   context.Context
			Input cat.CreateCatInput
		}
		Update []struct {
			Ctx   context.Context
			Input cat.UpdateCatInput
		}
		Delete []struct {
			Ctx   context.Context
			RawID string
		}
	}
	lockList        sync.RWMutex
	lockGetByID     sync.RWMutex
	lockListByOwner sync.RWMutex
	lockListInArea  sync.RWMutex
	lockCreate      sync.RWMutex
	lockUpdate      sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *catServiceMock) List(ctx context.Context) ([]domain.Cat, error) {
	if mock.ListFunc == nil {
		panic("catServiceMock.ListFunc: method is nil but catService.List was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *catServiceMock) ListCalls() []struct{ Ctx context.Context } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *catServiceMock) GetByID(ctx context.Context, rawID string) (*domain.Cat, error) {
	if mock.GetByIDFunc == nil {
		panic("catServiceMock.GetByIDFunc: method is nil but catService.GetByID was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		RawID string
	}{Ctx: ctx, RawID: rawID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, rawID)
}

func (mock *catServiceMock) GetByIDCalls() []struct {
	Ctx   context.Context
	RawID string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *catServiceMock) ListByOwner(ctx context.Context, ownerID string) ([]domain.Cat, error) {
	if mock.ListByOwnerFunc == nil {
		panic("catServiceMock.ListByOwnerFunc: method is nil but catService.ListByOwner was just called")
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

func (mock *catServiceMock) ListByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID string
} {
	mock.lockListByOwner.RLock()
	calls := mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}

func (mock *catServiceMock) ListInArea(ctx context.Context, input cat.AreaInput) ([]domain.Cat, error) {
	if mock.ListInAreaFunc == nil {
		panic("catServiceMock.ListInAreaFunc: method is nil but catService.ListInArea was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input cat.AreaInput
	}{Ctx: ctx, Input: input}
	mock.lockListInArea.Lock()
	mock.calls.ListInArea = append(mock.calls.ListInArea, callInfo)
	mock.lockListInArea.Unlock()
	return mock.ListInAreaFunc(ctx, input)
}

func (mock *catServiceMock) ListInAreaCalls() []struct {
	Ctx   context.Context
	Input cat.AreaInput
} {
	mock.lockListInArea.RLock()
	calls := mock.calls.ListInArea
	mock.lockListInArea.RUnlock()
	return calls
}

func (mock *catServiceMock) Create(ctx context.Context, input cat.CreateCatInput) (*domain.Cat, error) {
	if mock.CreateFunc == nil {
		panic("catServiceMock.CreateFunc: method is nil but catService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input cat.CreateCatInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *catServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input cat.CreateCatInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *catServiceMock) Update(ctx context.Context, input cat.UpdateCatInput) (*domain.Cat, error) {
	if mock.UpdateFunc == nil {
		panic("catServiceMock.UpdateFunc: method is nil but catService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input cat.UpdateCatInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *catServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input cat.UpdateCatInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *catServiceMock) Delete(ctx context.Context, rawID string) (*domain.Cat, error) {
	if mock.DeleteFunc == nil {
		panic("catServiceMock.DeleteFunc: method is nil but catService.Delete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		RawID string
	}{Ctx: ctx, RawID: rawID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, rawID)
}

func (mock *catServiceMock) DeleteCalls() []struct {
	Ctx   context.Context
	RawID string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
