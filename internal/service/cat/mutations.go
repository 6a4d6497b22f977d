package cat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/catgateway/internal/domain"
	"github.com/heartmarshall/catgateway/internal/guard"
	"github.com/heartmarshall/catgateway/pkg/ctxutil"
)

func callerFrom(ctx context.Context) *domain.Caller {
	caller, _ := ctxutil.CallerFromCtx(ctx)
	return caller
}

// Create stores a new cat owned by the caller.
func (s *Service) Create(ctx context.Context, input CreateCatInput) (*domain.Cat, error) {
	decision := guard.Decide(callerFrom(ctx), guard.ActionCreate)
	if !decision.Allowed {
		return nil, decision.Err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.cats.Create(ctx, domain.Cat{
		ID:        uuid.New(),
		Name:      input.Name,
		Weight:    input.Weight,
		Birthdate: input.Birthdate,
		OwnerID:   decision.Owner,
		Location:  input.Location.toDomain(),
		Filename:  input.Filename,
	})
	if err != nil {
		return nil, fmt.Errorf("cat.Create: %w", err)
	}

	s.log.InfoContext(ctx, "cat created",
		slog.String("cat_id", created.ID.String()),
		slog.String("owner_id", created.OwnerID),
	)

	return created, nil
}

// Update changes a cat the caller owns, or any cat for an admin. A cat the
// caller may not touch is indistinguishable from a missing one.
func (s *Service) Update(ctx context.Context, input UpdateCatInput) (*domain.Cat, error) {
	caller := callerFrom(ctx)
	if d := guard.Decide(caller, guard.ActionUpdate); !d.Allowed {
		return nil, d.Err
	}

	id, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, fmt.Errorf("cat.Update %q: %w", input.ID, domain.ErrNotFound)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	decision := guard.DecideOn(caller, guard.ActionUpdate, id)

	updated, err := s.cats.UpdateMatching(ctx, decision.Filter, input.patch())
	if err != nil {
		return nil, fmt.Errorf("cat.Update: %w", err)
	}

	s.log.InfoContext(ctx, "cat updated",
		slog.String("cat_id", updated.ID.String()),
		slog.String("user_id", caller.ID),
	)

	return updated, nil
}

// Delete removes a cat the caller owns, or any cat for an admin, and returns
// the removed record.
func (s *Service) Delete(ctx context.Context, rawID string) (*domain.Cat, error) {
	caller := callerFrom(ctx)
	if d := guard.Decide(caller, guard.ActionDelete); !d.Allowed {
		return nil, d.Err
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("cat.Delete %q: %w", rawID, domain.ErrNotFound)
	}

	decision := guard.DecideOn(caller, guard.ActionDelete, id)

	deleted, err := s.cats.DeleteMatching(ctx, decision.Filter)
	if err != nil {
		return nil, fmt.Errorf("cat.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "cat deleted",
		slog.String("cat_id", deleted.ID.String()),
		slog.String("user_id", caller.ID),
	)

	return deleted, nil
}
