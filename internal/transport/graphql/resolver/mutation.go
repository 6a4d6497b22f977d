package resolver

import (
	"context"

	gqlgo "github.com/graph-gophers/graphql-go"

	"github.com/heartmarshall/catgateway/internal/domain"
	"github.com/heartmarshall/catgateway/internal/service/cat"
	"github.com/heartmarshall/catgateway/internal/transport/graphql"
)

type locationInput struct {
	Lat float64
	Lng float64
}

func (l locationInput) toService() cat.LocationInput {
	return cat.LocationInput{Lat: l.Lat, Lng: l.Lng}
}

type createCatArgs struct {
	CatName   string
	Weight    float64
	Birthdate graphql.DateTime
	// Owner is accepted for compatibility and ignored: the service assigns
	// the caller.
	Owner    *gqlgo.ID
	Location locationInput
	Filename string
}

type updateCatArgs struct {
	ID        gqlgo.ID
	CatName   *string
	Weight    *float64
	Birthdate *graphql.DateTime
	Location  *locationInput
	Filename  *string
}

type userInput struct {
	UserName string
	Email    string
	Password string
}

type userModify struct {
	UserName *string
	Email    *string
	Password *string
}

type credentials struct {
	Username string
	Password string
}

func (r *Resolver) CreateCat(ctx context.Context, args createCatArgs) (*catResolver, error) {
	c, err := r.cats.Create(ctx, cat.CreateCatInput{
		Name:      args.CatName,
		Weight:    args.Weight,
		Birthdate: args.Birthdate.Time,
		Location:  args.Location.toService(),
		Filename:  args.Filename,
	})
	if err != nil {
		return nil, err
	}
	return newCat(c), nil
}

func (r *Resolver) UpdateCat(ctx context.Context, args updateCatArgs) (*catResolver, error) {
	in := cat.UpdateCatInput{
		ID:       string(args.ID),
		Name:     args.CatName,
		Weight:   args.Weight,
		Filename: args.Filename,
	}
	if args.Birthdate != nil {
		t := args.Birthdate.Time
		in.Birthdate = &t
	}
	if args.Location != nil {
		loc := args.Location.toService()
		in.Location = &loc
	}

	c, err := r.cats.Update(ctx, in)
	if err != nil {
		return nil, err
	}
	return newCat(c), nil
}

func (r *Resolver) DeleteCat(ctx context.Context, args idArgs) (*catResolver, error) {
	c, err := r.cats.Delete(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	return newCat(c), nil
}

func (r *Resolver) Register(ctx context.Context, args struct{ User userInput }) (*userResponseResolver, error) {
	res, err := r.users.Register(ctx, domain.RegisterInput{
		UserName: args.User.UserName,
		Email:    args.User.Email,
		Password: args.User.Password,
	})
	if err != nil {
		return nil, err
	}
	return newUserResponse(res), nil
}

func (r *Resolver) Login(ctx context.Context, args struct{ Credentials credentials }) (*loginResponseResolver, error) {
	res, err := r.users.Login(ctx, domain.Credentials{
		Username: args.Credentials.Username,
		Password: args.Credentials.Password,
	})
	if err != nil {
		return nil, err
	}
	return newLoginResponse(res), nil
}

func (r *Resolver) UpdateUser(ctx context.Context, args struct{ User userModify }) (*userResponseResolver, error) {
	res, err := r.users.UpdateSelf(ctx, domain.UserModify{
		UserName: args.User.UserName,
		Email:    args.User.Email,
		Password: args.User.Password,
	})
	if err != nil {
		return nil, err
	}
	return newUserResponse(res), nil
}

func (r *Resolver) DeleteUser(ctx context.Context) (*userResponseResolver, error) {
	res, err := r.users.DeleteSelf(ctx)
	if err != nil {
		return nil, err
	}
	return newUserResponse(res), nil
}

func (r *Resolver) DeleteUserAsAdmin(ctx context.Context, args idArgs) (*userResponseResolver, error) {
	res, err := r.users.DeleteByID(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	return newUserResponse(res), nil
}
