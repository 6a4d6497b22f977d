package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/catgateway/internal/domain"
)

// JWTManager verifies access tokens issued by the identity service. The
// gateway never signs tokens itself.
type JWTManager struct {
	secret []byte
	issuer string
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
// An empty issuer disables the issuer check.
func NewJWTManager(secret string, issuer string) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// accessClaims mirrors the payload the identity service signs: the user
// document itself, keyed by _id, with the standard claims optional.
type accessClaims struct {
	jwt.RegisteredClaims
	MongoID  string `json:"_id,omitempty"`
	UserID   string `json:"id,omitempty"`
	Role     string `json:"role,omitempty"`
	Email    string `json:"email,omitempty"`
	UserName string `json:"user_name,omitempty"`
}

func (c *accessClaims) subject() string {
	switch {
	case c.Subject != "":
		return c.Subject
	case c.MongoID != "":
		return c.MongoID
	default:
		return c.UserID
	}
}

// ValidateAccessToken parses and validates a JWT access token and returns the
// caller it identifies. The raw token is kept on the caller so it can be
// forwarded to the identity service.
func (m *JWTManager) ValidateAccessToken(tokenString string) (*domain.Caller, error) {
	if tokenString == "" {
		return nil, errors.New("token is empty")
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(_ *jwt.Token) (any, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	id := claims.subject()
	if id == "" {
		return nil, errors.New("token has no subject")
	}

	return &domain.Caller{
		ID:       id,
		Role:     domain.ParseUserRole(claims.Role),
		Email:    claims.Email,
		UserName: claims.UserName,
		Token:    tokenString,
	}, nil
}
