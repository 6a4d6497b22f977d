package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/catgateway/internal/domain"
)

type identityClient interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	Register(ctx context.Context, input domain.RegisterInput) (*domain.UserResult, error)
	Login(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error)
	UpdateSelf(ctx context.Context, token string, input domain.UserModify) (*domain.UserResult, error)
	DeleteSelf(ctx context.Context, token string) (*domain.UserResult, error)
	DeleteByID(ctx context.Context, token, id string) (*domain.UserResult, error)
}

type rateLimiter interface {
	Allow(key string) bool
	RetryAfter(key string) time.Duration
}

// TokenValidMessage is the message checkToken answers with.
const TokenValidMessage = "Token is valid"

// Service proxies user operations to the identity service after applying
// the gateway's own authorization and rate limits.
type Service struct {
	identity identityClient
	logins   rateLimiter
	log      *slog.Logger
}

// NewService creates a new User service. logins limits login attempts per
// caller or client address.
func NewService(
	log *slog.Logger,
	identity identityClient,
	logins rateLimiter,
) *Service {
	return &Service{
		identity: identity,
		logins:   logins,
		log:      log.With("service", "user"),
	}
}
