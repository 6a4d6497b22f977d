package cat

import (
	"time"

	"github.com/heartmarshall/catgateway/internal/domain"
)

// LocationInput is a point as supplied by a client.
type LocationInput struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

func (l LocationInput) toDomain() domain.Location {
	return domain.Location{Lat: l.Lat, Lng: l.Lng}
}

// CreateCatInput holds the parameters for creating a cat. There is no owner
// field: the owner is always the caller.
type CreateCatInput struct {
	Name      string        `json:"cat_name"  validate:"required"`
	Weight    float64       `json:"weight"    validate:"gt=0"`
	Birthdate time.Time     `json:"birthdate" validate:"required"`
	Location  LocationInput `json:"location"`
	Filename  string        `json:"filename"  validate:"required"`
}

// Validate checks all fields and collects all errors.
func (i CreateCatInput) Validate() error {
	return domain.ValidateStruct(i)
}

// UpdateCatInput holds the parameters for updating a cat. Nil fields are left
// unchanged.
type UpdateCatInput struct {
	ID        string         `json:"id"`
	Name      *string        `json:"cat_name"  validate:"omitempty,min=1"`
	Weight    *float64       `json:"weight"    validate:"omitempty,gt=0"`
	Birthdate *time.Time     `json:"birthdate"`
	Location  *LocationInput `json:"location"`
	Filename  *string        `json:"filename"  validate:"omitempty,min=1"`
}

// Validate checks all fields and collects all errors.
func (i UpdateCatInput) Validate() error {
	return domain.ValidateStruct(i)
}

func (i UpdateCatInput) patch() domain.CatPatch {
	p := domain.CatPatch{
		Name:      i.Name,
		Weight:    i.Weight,
		Birthdate: i.Birthdate,
		Filename:  i.Filename,
	}
	if i.Location != nil {
		loc := i.Location.toDomain()
		p.Location = &loc
	}
	return p
}

// AreaInput is a bounding box query.
type AreaInput struct {
	TopRight   LocationInput `json:"topRight"`
	BottomLeft LocationInput `json:"bottomLeft"`
}

// Validate checks all fields and collects all errors.
func (i AreaInput) Validate() error {
	return domain.ValidateStruct(i)
}

func (i AreaInput) region() domain.GeoRegion {
	return domain.GeoRegion{
		TopRight:   i.TopRight.toDomain(),
		BottomLeft: i.BottomLeft.toDomain(),
	}
}
