package resolver

import (
	"context"
	"sync"

	"github.com/heartmarshall/catgateway/internal/domain"
)

var _ userService = &userServiceMock{}

type userServiceMock struct {
	ListFunc       func(ctx context.Context) ([]domain.User, error)
	GetByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	CheckTokenFunc func(ctx context.Context) (*domain.UserResult, error)
	RegisterFunc   func(ctx context.Context, input domain.RegisterInput) (*domain.UserResult, error)
	LoginFunc      func(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error)
	UpdateSelfFunc func(ctx context.Context, input domain.UserModify) (*domain.UserResult, error)
	DeleteSelfFunc func(ctx context.Context) (*domain.UserResult, error)
	DeleteByIDFunc func(ctx context.Context, id string) (*domain.UserResult, error)

	calls struct {
		List    []struct{ Ctx context.Context }
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
		CheckToken []struct{ Ctx context.Context }
		Register   []struct {
			Ctx   context.Context
			Input domain.RegisterInput
		}
		Login []struct {
			Ctx   context.Context
			Creds domain.Credentials
		}
		UpdateSelf []struct {
			Ctx   context.Context
			Input domain.UserModify
		}
		DeleteSelf []struct{ Ctx context.Context }
		DeleteByID []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockList       sync.RWMutex
	lockGetByID    sync.RWMutex
	lockCheckToken sync.RWMutex
	lockRegister   sync.RWMutex
	lockLogin      sync.RWMutex
	lockUpdateSelf sync.RWMutex
	lockDeleteSelf sync.RWMutex
	lockDeleteByID sync.RWMutex
}

func (mock *userServiceMock) List(ctx context.Context) ([]domain.User, error) {
	if mock.ListFunc == nil {
		panic("userServiceMock.ListFunc: method is nil but userService.List was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *userServiceMock) ListCalls() []struct{ Ctx context.Context } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *userServiceMock) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userServiceMock.GetByIDFunc: method is nil but userService.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userServiceMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userServiceMock) CheckToken(ctx context.Context) (*domain.UserResult, error) {
	if mock.CheckTokenFunc == nil {
		panic("userServiceMock.CheckTokenFunc: method is nil but userService.CheckToken was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockCheckToken.Lock()
	mock.calls.CheckToken = append(mock.calls.CheckToken, callInfo)
	mock.lockCheckToken.Unlock()
	return mock.CheckTokenFunc(ctx)
}

func (mock *userServiceMock) CheckTokenCalls() []struct{ Ctx context.Context } {
	mock.lockCheckToken.RLock()
	calls := mock.calls.CheckToken
	mock.lockCheckToken.RUnlock()
	return calls
}

func (mock *userServiceMock) Register(ctx context.Context, input domain.RegisterInput) (*domain.UserResult, error) {
	if mock.RegisterFunc == nil {
		panic("userServiceMock.RegisterFunc: method is nil but userService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input domain.RegisterInput
	}{Ctx: ctx, Input: input}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *userServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input domain.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *userServiceMock) Login(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error) {
	if mock.LoginFunc == nil {
		panic("userServiceMock.LoginFunc: method is nil but userService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Creds domain.Credentials
	}{Ctx: ctx, Creds: creds}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, creds)
}

func (mock *userServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Creds domain.Credentials
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *userServiceMock) UpdateSelf(ctx context.Context, input domain.UserModify) (*domain.UserResult, error) {
	if mock.UpdateSelfFunc == nil {
		panic("userServiceMock.UpdateSelfFunc: method is nil but userService.UpdateSelf was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input domain.UserModify
	}{Ctx: ctx, Input: input}
	mock.lockUpdateSelf.Lock()
	mock.calls.UpdateSelf = append(mock.calls.UpdateSelf, callInfo)
	mock.lockUpdateSelf.Unlock()
	return mock.UpdateSelfFunc(ctx, input)
}

func (mock *userServiceMock) UpdateSelfCalls() []struct {
	Ctx   context.Context
	Input domain.UserModify
} {
	mock.lockUpdateSelf.RLock()
	calls := mock.calls.UpdateSelf
	mock.lockUpdateSelf.RUnlock()
	return calls
}

func (mock *userServiceMock) DeleteSelf(ctx context.Context) (*domain.UserResult, error) {
	if mock.DeleteSelfFunc == nil {
		panic("userServiceMock.DeleteSelfFunc: method is nil but userService.DeleteSelf was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockDeleteSelf.Lock()
	mock.calls.DeleteSelf = append(mock.calls.DeleteSelf, callInfo)
	mock.lockDeleteSelf.Unlock()
	return mock.DeleteSelfFunc(ctx)
}

func (mock *userServiceMock) DeleteSelfCalls() []struct{ Ctx context.Context } {
	mock.lockDeleteSelf.RLock()
	calls := mock.calls.DeleteSelf
	mock.lockDeleteSelf.RUnlock()
	return calls
}

func (mock *userServiceMock) DeleteByID(ctx context.Context, id string) (*domain.UserResult, error) {
	if mock.DeleteByIDFunc == nil {
		panic("userServiceMock.DeleteByIDFunc: method is nil but userService.DeleteByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockDeleteByID.Lock()
	mock.calls.DeleteByID = append(mock.calls.DeleteByID, callInfo)
	mock.lockDeleteByID.Unlock()
	return mock.DeleteByIDFunc(ctx, id)
}

func (mock *userServiceMock) DeleteByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDeleteByID.RLock()
	calls := mock.calls.DeleteByID
	mock.lockDeleteByID.RUnlock()
	return calls
}
