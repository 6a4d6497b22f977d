package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/catgateway/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCat inserts a cat owned by ownerID at the given location.
// Returns the persisted domain.Cat.
func SeedCat(t *testing.T, pool *pgxpool.Pool, ownerID string, loc domain.Location) domain.Cat {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Cat{
		ID:        uuid.New(),
		Name:      "Cat " + suffix,
		Weight:    3.5,
		Birthdate: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		OwnerID:   ownerID,
		Location:  loc,
		Filename:  "cat-" + suffix + ".jpg",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO cats (id, name, weight, birthdate, owner_id, lat, lng, filename, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.Name, c.Weight, c.Birthdate, c.OwnerID, c.Location.Lat, c.Location.Lng, c.Filename, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCat insert: %v", err)
	}

	return c
}

// UniqueOwner returns an owner id that no other test uses, so list queries
// filtered by owner see only the rows the calling test seeded.
func UniqueOwner() string {
	return "owner-" + uniqueSuffix()
}
