package user

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/heartmarshall/catgateway/internal/domain"
	"github.com/heartmarshall/catgateway/pkg/ctxutil"
)

// List returns every user known to the identity service.
func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.identity.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.List: %w", err)
	}
	return users, nil
}

// GetByID returns one user. An identity service 404 is reported as not found.
func (s *Service) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.identity.GetUser(ctx, id)
	if err != nil {
		var upErr *domain.UpstreamError
		if errors.As(err, &upErr) && upErr.Status == http.StatusNotFound {
			return nil, fmt.Errorf("user.GetByID %q: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("user.GetByID: %w", err)
	}
	return u, nil
}

// CheckToken echoes the caller identified by the request token. It never
// calls the identity service.
func (s *Service) CheckToken(ctx context.Context) (*domain.UserResult, error) {
	caller, ok := ctxutil.CallerFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return &domain.UserResult{Message: TokenValidMessage, User: caller.AsUser()}, nil
}
