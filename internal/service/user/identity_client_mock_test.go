package user

import (
	"context"
	"sync"

	"github.com/heartmarshall/catgateway/internal/domain"
)

var _ identityClient = &identityClientMock{}

type identityClientMock struct {
	ListUsersFunc  func(ctx context.Context) ([]domain.User, error)
	GetUserFunc    func(ctx context.Context, id string) (*domain.User, error)
	RegisterFunc   func(ctx context.Context, input domain.RegisterInput) (*domain.UserResult, error)
	LoginFunc      func(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error)
	UpdateSelfFunc func(ctx context.Context, token string, input domain.UserModify) (*domain.UserResult, error)
	DeleteSelfFunc func(ctx context.Context, token string) (*domain.UserResult, error)
	DeleteByIDFunc func(ctx context.Context, token string, id string) (*domain.UserResult, error)

	calls struct {
		ListUsers []struct{ Ctx context.Context }
		GetUser   []struct {
			Ctx context.Context
			ID  string
		}
		Register []struct {
			Ctx   context.Context
			Input domain.RegisterInput
		}
		Login []struct {
			Ctx   context.Context
			Creds domain.Credentials
		}
		UpdateSelf []struct {
			Ctx   context.Context
			Token string
			Input domain.UserModify
		}
		DeleteSelf []struct {
			Ctx   context.Context
			Token string
		}
		DeleteByID []struct {
			Ctx   context.Context
			Token string
			ID    string
		}
	}
	lockListUsers  sync.RWMutex
	lockGetUser    sync.RWMutex
	lockRegister   sync.RWMutex
	lockLogin      sync.RWMutex
	lockUpdateSelf sync.RWMutex
	lockDeleteSelf sync.RWMutex
	lockDeleteByID sync.RWMutex
}

func (mock *identityClientMock) ListUsers(ctx context.Context) ([]domain.User, error) {
	if mock.ListUsersFunc == nil {
		panic("identityClientMock.ListUsersFunc: method is nil but identityClient.ListUsers was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListUsers.Lock()
	mock.calls.ListUsers = append(mock.calls.ListUsers, callInfo)
	mock.lockListUsers.Unlock()
	return mock.ListUsersFunc(ctx)
}

func (mock *identityClientMock) ListUsersCalls() []struct{ Ctx context.Context } {
	mock.lockListUsers.RLock()
	calls := mock.calls.ListUsers
	mock.lockListUsers.RUnlock()
	return calls
}

func (mock *identityClientMock) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if mock.GetUserFunc == nil {
		panic("identityClientMock.GetUserFunc: method is nil but identityClient.GetUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGetUser.Lock()
	mock.calls.GetUser = append(mock.calls.GetUser, callInfo)
	mock.lockGetUser.Unlock()
	return mock.GetUserFunc(ctx, id)
}

func (mock *identityClientMock) GetUserCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetUser.RLock()
	calls := mock.calls.GetUser
	mock.lockGetUser.RUnlock()
	return calls
}

func (mock *identityClientMock) Register(ctx context.Context, input domain.RegisterInput) (*domain.UserResult, error) {
	if mock.RegisterFunc == nil {
		panic("identityClientMock.RegisterFunc: method is nil but identityClient.Register was just called")
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

func (mock *identityClientMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input domain.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *identityClientMock) Login(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error) {
	if mock.LoginFunc == nil {
		panic("identityClientMock.LoginFunc: method is nil but identityClient.Login was just called")
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

func (mock *identityClientMock) LoginCalls() []struct {
	Ctx   context.Context
	Creds domain.Credentials
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *identityClientMock) UpdateSelf(ctx context.Context, token string, input domain.UserModify) (*domain.UserResult, error) {
	if mock.UpdateSelfFunc == nil {
		panic("identityClientMock.UpdateSelfFunc: method is nil but identityClient.UpdateSelf was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
		Input domain.UserModify
	}{Ctx: ctx, Token: token, Input: input}
	mock.lockUpdateSelf.Lock()
	mock.calls.UpdateSelf = append(mock.calls.UpdateSelf, callInfo)
	mock.lockUpdateSelf.Unlock()
	return mock.UpdateSelfFunc(ctx, token, input)
}

func (mock *identityClientMock) UpdateSelfCalls() []struct {
	Ctx   context.Context
	Token string
	Input domain.UserModify
} {
	mock.lockUpdateSelf.RLock()
	calls := mock.calls.UpdateSelf
	mock.lockUpdateSelf.RUnlock()
	return calls
}

func (mock *identityClientMock) DeleteSelf(ctx context.Context, token string) (*domain.UserResult, error) {
	if mock.DeleteSelfFunc == nil {
		panic("identityClientMock.DeleteSelfFunc: method is nil but identityClient.DeleteSelf was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockDeleteSelf.Lock()
	mock.calls.DeleteSelf = append(mock.calls.DeleteSelf, callInfo)
	mock.lockDeleteSelf.Unlock()
	return mock.DeleteSelfFunc(ctx, token)
}

func (mock *identityClientMock) DeleteSelfCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockDeleteSelf.RLock()
	calls := mock.calls.DeleteSelf
	mock.lockDeleteSelf.RUnlock()
	return calls
}

func (mock *identityClientMock) DeleteByID(ctx context.Context, token string, id string) (*domain.UserResult, error) {
	if mock.DeleteByIDFunc == nil {
		panic("identityClientMock.DeleteByIDFunc: method is nil but identityClient.DeleteByID was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
		ID    string
	}{Ctx: ctx, Token: token, ID: id}
	mock.lockDeleteByID.Lock()
	mock.calls.DeleteByID = append(mock.calls.DeleteByID, callInfo)
	mock.lockDeleteByID.Unlock()
	return mock.DeleteByIDFunc(ctx, token, id)
}

func (mock *identityClientMock) DeleteByIDCalls() []struct {
	Ctx   context.Context
	Token string
	ID    string
} {
	mock.lockDeleteByID.RLock()
	calls := mock.calls.DeleteByID
	mock.lockDeleteByID.RUnlock()
	return calls
}
