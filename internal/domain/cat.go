package domain

import (
	"time"

	"github.com/google/uuid"
)

// Cat is the domain record stored in the local database.
type Cat struct {
	ID        uuid.UUID
	Name      string
	Weight    float64
	Birthdate time.Time
	OwnerID   string
	Location  Location
	Filename  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CatFilter narrows an update or delete to a single row. OwnerID, when set,
// is applied in the same statement as the mutation.
type CatFilter struct {
	ID      uuid.UUID
	OwnerID *string
}

// CatPatch carries the optional fields of an update. Nil means unchanged.
// The owner is intentionally not patchable.
type CatPatch struct {
	Name      *string
	Weight    *float64
	Birthdate *time.Time
	Location  *Location
	Filename  *string
}

// IsEmpty reports whether the patch changes nothing.
func (p CatPatch) IsEmpty() bool {
	return p.Name == nil && p.Weight == nil && p.Birthdate == nil && p.Location == nil && p.Filename == nil
}
