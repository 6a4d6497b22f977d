package identity

import (
	"context"
	"net/http"
	"net/url"

	"github.com/heartmarshall/catgateway/internal/domain"
)

// apiUser is a user document as the identity service returns it. Older
// payloads only carry _id.
type apiUser struct {
	ID       string `json:"id"`
	MongoID  string `json:"_id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// toDomain normalizes the id: _id, when present, replaces any id field.
func (u *apiUser) toDomain() *domain.User {
	if u == nil {
		return nil
	}
	id := u.MongoID
	if id == "" {
		id = u.ID
	}
	return &domain.User{
		ID:       id,
		UserName: u.UserName,
		Email:    u.Email,
		Role:     domain.ParseUserRole(u.Role),
	}
}

type userEnvelope struct {
	Message string   `json:"message"`
	Data    *apiUser `json:"data"`
}

func (e userEnvelope) toResult() *domain.UserResult {
	return &domain.UserResult{Message: e.Message, User: e.Data.toDomain()}
}

type loginEnvelope struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    *apiUser `json:"user"`
}

// ListUsers returns every user.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var raw []apiUser
	if err := c.do(ctx, "list_users", http.MethodGet, "/users", "", nil, &raw); err != nil {
		return nil, err
	}

	users := make([]domain.User, len(raw))
	for i := range raw {
		users[i] = *raw[i].toDomain()
	}
	return users, nil
}

// GetUser returns one user by id.
func (c *Client) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var raw apiUser
	if err := c.do(ctx, "get_user", http.MethodGet, "/users/"+url.PathEscape(id), "", nil, &raw); err != nil {
		return nil, err
	}
	return raw.toDomain(), nil
}

// Register creates a user.
func (c *Client) Register(ctx context.Context, input domain.RegisterInput) (*domain.UserResult, error) {
	var env userEnvelope
	if err := c.do(ctx, "register", http.MethodPost, "/users", "", input, &env); err != nil {
		return nil, err
	}
	return env.toResult(), nil
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error) {
	var env loginEnvelope
	if err := c.do(ctx, "login", http.MethodPost, "/auth/login", "", creds, &env); err != nil {
		return nil, err
	}
	return &domain.LoginResult{
		Message: env.Message,
		Token:   env.Token,
		User:    env.User.toDomain(),
	}, nil
}

// UpdateSelf updates the user the token belongs to.
func (c *Client) UpdateSelf(ctx context.Context, token string, input domain.UserModify) (*domain.UserResult, error) {
	var env userEnvelope
	if err := c.do(ctx, "update_self", http.MethodPut, "/users", token, input, &env); err != nil {
		return nil, err
	}
	return env.toResult(), nil
}

// DeleteSelf deletes the user the token belongs to.
func (c *Client) DeleteSelf(ctx context.Context, token string) (*domain.UserResult, error) {
	var env userEnvelope
	if err := c.do(ctx, "delete_self", http.MethodDelete, "/users", token, nil, &env); err != nil {
		return nil, err
	}
	return env.toResult(), nil
}

// DeleteByID deletes any user. The identity service checks that the token
// belongs to an admin.
func (c *Client) DeleteByID(ctx context.Context, token, id string) (*domain.UserResult, error) {
	var env userEnvelope
	if err := c.do(ctx, "delete_by_id", http.MethodDelete, "/users/"+url.PathEscape(id), token, nil, &env); err != nil {
		return nil, err
	}
	return env.toResult(), nil
}
