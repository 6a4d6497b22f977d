package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/catgateway/internal/domain"
	"github.com/heartmarshall/catgateway/internal/guard"
	"github.com/heartmarshall/catgateway/internal/metrics"
	"github.com/heartmarshall/catgateway/pkg/ctxutil"
)

// Register creates a user in the identity service.
func (s *Service) Register(ctx context.Context, input domain.RegisterInput) (*domain.UserResult, error) {
	input.UserName = strings.TrimSpace(input.UserName)
	input.Email = strings.TrimSpace(input.Email)

	if err := domain.ValidateStruct(input); err != nil {
		return nil, err
	}

	res, err := s.identity.Register(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("user.Register: %w", err)
	}

	if res.User != nil {
		s.log.InfoContext(ctx, "user registered", slog.String("user_id", res.User.ID))
	}
	return res, nil
}

// Login forwards credentials to the identity service. Attempts are counted
// per caller, or per client address for anonymous callers, and rejected
// before any credential check once the window is full.
func (s *Service) Login(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error) {
	key := loginKey(ctx)
	if !s.logins.Allow(key) {
		metrics.RecordRateLimited("login")
		retry := s.logins.RetryAfter(key)
		s.log.WarnContext(ctx, "login rate limited",
			slog.String("key", key),
			slog.Duration("retry_after", retry),
		)
		return nil, &domain.RateLimitError{RetryAfter: retry}
	}

	if err := domain.ValidateStruct(creds); err != nil {
		return nil, err
	}

	res, err := s.identity.Login(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("user.Login: %w", err)
	}

	if res.User != nil {
		s.log.InfoContext(ctx, "user logged in", slog.String("user_id", res.User.ID))
	}
	return res, nil
}

func loginKey(ctx context.Context) string {
	if id := ctxutil.UserIDFromCtx(ctx); id != "" {
		return "user:" + id
	}
	return "client:" + ctxutil.ClientKeyFromCtx(ctx)
}

// UpdateSelf changes the caller's own identity record. The caller's token is
// forwarded so the identity service resolves which user to update.
func (s *Service) UpdateSelf(ctx context.Context, input domain.UserModify) (*domain.UserResult, error) {
	caller, _ := ctxutil.CallerFromCtx(ctx)
	if d := guard.Decide(caller, guard.ActionSelf); !d.Allowed {
		return nil, d.Err
	}

	if err := domain.ValidateStruct(input); err != nil {
		return nil, err
	}

	res, err := s.identity.UpdateSelf(ctx, caller.Token, input)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateSelf: %w", err)
	}

	s.log.InfoContext(ctx, "user updated", slog.String("user_id", caller.ID))
	return res, nil
}

// DeleteSelf removes the caller's own identity record.
func (s *Service) DeleteSelf(ctx context.Context) (*domain.UserResult, error) {
	caller, _ := ctxutil.CallerFromCtx(ctx)
	if d := guard.Decide(caller, guard.ActionSelf); !d.Allowed {
		return nil, d.Err
	}

	res, err := s.identity.DeleteSelf(ctx, caller.Token)
	if err != nil {
		return nil, fmt.Errorf("user.DeleteSelf: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted", slog.String("user_id", caller.ID))
	return res, nil
}

// DeleteByID removes any user. Only admins may call it.
func (s *Service) DeleteByID(ctx context.Context, id string) (*domain.UserResult, error) {
	caller, _ := ctxutil.CallerFromCtx(ctx)
	if d := guard.Decide(caller, guard.ActionAdmin); !d.Allowed {
		return nil, d.Err
	}

	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("id", "is required")
	}

	res, err := s.identity.DeleteByID(ctx, caller.Token, id)
	if err != nil {
		return nil, fmt.Errorf("user.DeleteByID: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted by admin",
		slog.String("user_id", id),
		slog.String("admin_id", caller.ID),
	)
	return res, nil
}
