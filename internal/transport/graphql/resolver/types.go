package resolver

import (
	"context"
	"fmt"

	gqlgo "github.com/graph-gophers/graphql-go"

	"github.com/heartmarshall/catgateway/internal/domain"
	"github.com/heartmarshall/catgateway/internal/transport/graphql"
	"github.com/heartmarshall/catgateway/internal/transport/graphql/dataloader"
)

type catResolver struct {
	cat *domain.Cat
}

func newCat(c *domain.Cat) *catResolver {
	if c == nil {
		return nil
	}
	return &catResolver{cat: c}
}

func wrapCats(cats []domain.Cat) []*catResolver {
	out := make([]*catResolver, 0, len(cats))
	for i := range cats {
		out = append(out, &catResolver{cat: &cats[i]})
	}
	return out
}

func (c *catResolver) ID() gqlgo.ID { return gqlgo.ID(c.cat.ID.String()) }

func (c *catResolver) CatName() string { return c.cat.Name }

func (c *catResolver) Weight() float64 { return c.cat.Weight }

func (c *catResolver) Birthdate() graphql.DateTime { return graphql.NewDateTime(c.cat.Birthdate) }

func (c *catResolver) Location() *locationResolver { return &locationResolver{loc: c.cat.Location} }

func (c *catResolver) Filename() string { return c.cat.Filename }

// Owner stitches the owning user from the identity service. Lookups are
// batched per request; a failure nulls only this field.
func (c *catResolver) Owner(ctx context.Context) (*userResolver, error) {
	if c.cat.OwnerID == "" {
		return nil, nil
	}

	u, err := dataloader.FromContext(ctx).OwnerByID.Load(ctx, c.cat.OwnerID)()
	if err != nil {
		return nil, fmt.Errorf("resolve owner %s: %w", c.cat.OwnerID, err)
	}
	return newUser(u), nil
}

type locationResolver struct {
	loc domain.Location
}

func (l *locationResolver) Lat() float64 { return l.loc.Lat }

func (l *locationResolver) Lng() float64 { return l.loc.Lng }

type userResolver struct {
	user *domain.User
}

func newUser(u *domain.User) *userResolver {
	if u == nil {
		return nil
	}
	return &userResolver{user: u}
}

func (u *userResolver) ID() gqlgo.ID { return gqlgo.ID(u.user.ID) }

func (u *userResolver) UserName() *string { return &u.user.UserName }

func (u *userResolver) Email() *string { return &u.user.Email }

func (u *userResolver) Role() *string {
	if u.user.Role == "" {
		return nil
	}
	role := string(u.user.Role)
	return &role
}

type userResponseResolver struct {
	res *domain.UserResult
}

func newUserResponse(res *domain.UserResult) *userResponseResolver {
	if res == nil {
		return nil
	}
	return &userResponseResolver{res: res}
}

func (r *userResponseResolver) Message() string { return r.res.Message }

func (r *userResponseResolver) User() *userResolver { return newUser(r.res.User) }

type loginResponseResolver struct {
	res *domain.LoginResult
}

func newLoginResponse(res *domain.LoginResult) *loginResponseResolver {
	if res == nil {
		return nil
	}
	return &loginResponseResolver{res: res}
}

func (r *loginResponseResolver) Message() string { return r.res.Message }

func (r *loginResponseResolver) Token() *string {
	if r.res.Token == "" {
		return nil
	}
	return &r.res.Token
}

func (r *loginResponseResolver) User() *userResolver { return newUser(r.res.User) }
