package cat

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/catgateway/internal/domain"
)

// List returns every cat.
func (s *Service) List(ctx context.Context) ([]domain.Cat, error) {
	cats, err := s.cats.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("cat.List: %w", err)
	}
	return cats, nil
}

// GetByID returns one cat. A malformed id is reported as not found.
func (s *Service) GetByID(ctx context.Context, rawID string) (*domain.Cat, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("cat.GetByID %q: %w", rawID, domain.ErrNotFound)
	}

	c, err := s.cats.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cat.GetByID: %w", err)
	}
	return c, nil
}

// ListByOwner returns the cats of one owner. An owner with no cats is
// reported as not found.
func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]domain.Cat, error) {
	cats, err := s.cats.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("cat.ListByOwner: %w", err)
	}
	if len(cats) == 0 {
		return nil, fmt.Errorf("cat.ListByOwner %q: %w", ownerID, domain.ErrNotFound)
	}
	return cats, nil
}

// ListInArea returns the cats inside the box. Corners are used as given, so
// swapped corners find nothing and the call fails as not found.
func (s *Service) ListInArea(ctx context.Context, input AreaInput) ([]domain.Cat, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cats, err := s.cats.ListInRegion(ctx, input.region())
	if err != nil {
		return nil, fmt.Errorf("cat.ListInArea: %w", err)
	}
	if len(cats) == 0 {
		return nil, fmt.Errorf("cat.ListInArea: %w", domain.ErrNotFound)
	}
	return cats, nil
}
