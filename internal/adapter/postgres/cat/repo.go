// Package cat implements the Cat repository using PostgreSQL.
package cat

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/catgateway/internal/adapter/postgres"
	"github.com/heartmarshall/catgateway/internal/domain"
)

const (
	tableCats = "cats"
	entity    = "cat"
)

var columns = []string{
	"id", "name", "weight", "birthdate", "owner_id",
	"lat", "lng", "filename", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// builder produces PostgreSQL-style placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides cat persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new cat repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// catRow is the scan target for a cats row.
type catRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Weight    float64   `db:"weight"`
	Birthdate time.Time `db:"birthdate"`
	OwnerID   string    `db:"owner_id"`
	Lat       float64   `db:"lat"`
	Lng       float64   `db:"lng"`
	Filename  string    `db:"filename"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r catRow) toDomain() domain.Cat {
	return domain.Cat{
		ID:        r.ID,
		Name:      r.Name,
		Weight:    r.Weight,
		Birthdate: r.Birthdate,
		OwnerID:   r.OwnerID,
		Location:  domain.Location{Lat: r.Lat, Lng: r.Lng},
		Filename:  r.Filename,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// List returns every cat ordered by creation time.
func (r *Repo) List(ctx context.Context) ([]domain.Cat, error) {
	return r.selectMany(ctx, selectCats(), "")
}

// GetByID returns a cat by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Cat, error) {
	query := selectCats().Where(sq.Eq{"id": id})
	return r.getOne(ctx, query, id.String())
}

// ListByOwner returns the cats owned by ownerID. The result may be empty.
func (r *Repo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Cat, error) {
	query := selectCats().Where(sq.Eq{"owner_id": ownerID})
	return r.selectMany(ctx, query, ownerID)
}

// ListInRegion returns the cats whose location lies inside the box, edges
// included. Corners are used exactly as given.
func (r *Repo) ListInRegion(ctx context.Context, region domain.GeoRegion) ([]domain.Cat, error) {
	query := selectCats().Where(sq.And{
		sq.GtOrEq{"lat": region.BottomLeft.Lat},
		sq.LtOrEq{"lat": region.TopRight.Lat},
		sq.GtOrEq{"lng": region.BottomLeft.Lng},
		sq.LtOrEq{"lng": region.TopRight.Lng},
	})
	return r.selectMany(ctx, query, "")
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new cat and returns the persisted row. A zero ID is
// replaced with a fresh UUID.
func (r *Repo) Create(ctx context.Context, c domain.Cat) (*domain.Cat, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	query := builder.Insert(tableCats).
		Columns("id", "name", "weight", "birthdate", "owner_id", "lat", "lng", "filename").
		Values(c.ID, c.Name, c.Weight, c.Birthdate, c.OwnerID, c.Location.Lat, c.Location.Lng, c.Filename).
		Suffix(returning)

	return r.getOne(ctx, query, c.ID.String())
}

// UpdateMatching applies patch to the row matched by filter in one statement.
// A filter that matches nothing (missing id or foreign owner) yields ErrNotFound.
func (r *Repo) UpdateMatching(ctx context.Context, filter domain.CatFilter, patch domain.CatPatch) (*domain.Cat, error) {
	// Nothing to write: return the matched row untouched.
	if patch.IsEmpty() {
		return r.getOne(ctx, selectCats().Where(filterPredicate(filter)), filter.ID.String())
	}

	query := builder.Update(tableCats).
		Set("updated_at", sq.Expr("now()"))

	if patch.Name != nil {
		query = query.Set("name", *patch.Name)
	}
	if patch.Weight != nil {
		query = query.Set("weight", *patch.Weight)
	}
	if patch.Birthdate != nil {
		query = query.Set("birthdate", *patch.Birthdate)
	}
	if patch.Location != nil {
		query = query.Set("lat", patch.Location.Lat).Set("lng", patch.Location.Lng)
	}
	if patch.Filename != nil {
		query = query.Set("filename", *patch.Filename)
	}

	query = query.Where(filterPredicate(filter)).Suffix(returning)

	return r.getOne(ctx, query, filter.ID.String())
}

// DeleteMatching removes the row matched by filter and returns it.
func (r *Repo) DeleteMatching(ctx context.Context, filter domain.CatFilter) (*domain.Cat, error) {
	query := builder.Delete(tableCats).
		Where(filterPredicate(filter)).
		Suffix(returning)

	return r.getOne(ctx, query, filter.ID.String())
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func selectCats() sq.SelectBuilder {
	return builder.Select(columns...).From(tableCats).OrderBy("created_at ASC", "id ASC")
}

func filterPredicate(f domain.CatFilter) sq.Eq {
	pred := sq.Eq{"id": f.ID}
	if f.OwnerID != nil {
		pred["owner_id"] = *f.OwnerID
	}
	return pred
}

func (r *Repo) getOne(ctx context.Context, query sq.Sqlizer, id string) (*domain.Cat, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	var row catRow
	if err := pgxscan.Get(ctx, r.q, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, entity, id)
	}

	c := row.toDomain()
	return &c, nil
}

func (r *Repo) selectMany(ctx context.Context, query sq.SelectBuilder, id string) ([]domain.Cat, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	var rows []catRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	cats := make([]domain.Cat, len(rows))
	for i, row := range rows {
		cats[i] = row.toDomain()
	}
	return cats, nil
}
