package resolver

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/catgateway/internal/domain"
	"github.com/heartmarshall/catgateway/internal/service/cat"
)

// catService defines what resolver needs from Cat service.
type catService interface {
	List(ctx context.Context) ([]domain.Cat, error)
	GetByID(ctx context.Context, rawID string) (*domain.Cat, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Cat, error)
	ListInArea(ctx context.Context, input cat.AreaInput) ([]domain.Cat, error)
	Create(ctx context.Context, input cat.CreateCatInput) (*domain.Cat, error)
	Update(ctx context.Context, input cat.UpdateCatInput) (*domain.Cat, error)
	Delete(ctx context.Context, rawID string) (*domain.Cat, error)
}

// userService defines what resolver needs from User service.
type userService interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	CheckToken(ctx context.Context) (*domain.UserResult, error)
	Register(ctx context.Context, input domain.RegisterInput) (*domain.UserResult, error)
	Login(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error)
	UpdateSelf(ctx context.Context, input domain.UserModify) (*domain.UserResult, error)
	DeleteSelf(ctx context.Context) (*domain.UserResult, error)
	DeleteByID(ctx context.Context, id string) (*domain.UserResult, error)
}

// Resolver is the root resolver of both Query and Mutation. Its methods are
// bound to schema fields by name.
type Resolver struct {
	cats  catService
	users userService
	log   *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
func NewResolver(
	log *slog.Logger,
	cats catService,
	users userService,
) *Resolver {
	return &Resolver{
		cats:  cats,
		users: users,
		log:   log.With("component", "resolver"),
	}
}
