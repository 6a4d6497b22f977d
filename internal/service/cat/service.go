package cat

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/catgateway/internal/domain"
)

type catRepo interface {
	List(ctx context.Context) ([]domain.Cat, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Cat, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Cat, error)
	ListInRegion(ctx context.Context, region domain.GeoRegion) ([]domain.Cat, error)
	Create(ctx context.Context, c domain.Cat) (*domain.Cat, error)
	UpdateMatching(ctx context.Context, filter domain.CatFilter, patch domain.CatPatch) (*domain.Cat, error)
	DeleteMatching(ctx context.Context, filter domain.CatFilter) (*domain.Cat, error)
}

// Service provides cat queries and ownership-checked mutations.
type Service struct {
	cats catRepo
	log  *slog.Logger
}

// NewService creates a new Cat service.
func NewService(
	log *slog.Logger,
	cats catRepo,
) *Service {
	return &Service{
		cats: cats,
		log:  log.With("service", "cat"),
	}
}
