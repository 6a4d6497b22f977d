package resolver

import (
	"context"

	gqlgo "github.com/graph-gophers/graphql-go"

	"github.com/heartmarshall/catgateway/internal/service/cat"
)

type idArgs struct {
	ID gqlgo.ID
}

func (r *Resolver) Cats(ctx context.Context) ([]*catResolver, error) {
	cats, err := r.cats.List(ctx)
	if err != nil {
		return nil, err
	}
	return wrapCats(cats), nil
}

func (r *Resolver) CatByID(ctx context.Context, args idArgs) (*catResolver, error) {
	c, err := r.cats.GetByID(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	return newCat(c), nil
}

func (r *Resolver) CatsByOwner(ctx context.Context, args struct{ OwnerID gqlgo.ID }) (*[]*catResolver, error) {
	cats, err := r.cats.ListByOwner(ctx, string(args.OwnerID))
	if err != nil {
		return nil, err
	}
	out := wrapCats(cats)
	return &out, nil
}

func (r *Resolver) CatsByArea(ctx context.Context, args struct {
	TopRight   locationInput
	BottomLeft locationInput
}) (*[]*catResolver, error) {
	cats, err := r.cats.ListInArea(ctx, cat.AreaInput{
		TopRight:   args.TopRight.toService(),
		BottomLeft: args.BottomLeft.toService(),
	})
	if err != nil {
		return nil, err
	}
	out := wrapCats(cats)
	return &out, nil
}

func (r *Resolver) Users(ctx context.Context) (*[]*userResolver, error) {
	users, err := r.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*userResolver, 0, len(users))
	for i := range users {
		out = append(out, newUser(&users[i]))
	}
	return &out, nil
}

func (r *Resolver) UserByID(ctx context.Context, args idArgs) (*userResolver, error) {
	u, err := r.users.GetByID(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	return newUser(u), nil
}

func (r *Resolver) CheckToken(ctx context.Context) (*userResponseResolver, error) {
	res, err := r.users.CheckToken(ctx)
	if err != nil {
		return nil, err
	}
	return newUserResponse(res), nil
}
