package middleware

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/catgateway/internal/config"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Stack is an ordered middleware list. The first entry sees the request
// first.
type Stack []Middleware

// Then wraps h in every middleware of s.
func (s Stack) Then(h http.Handler) http.Handler {
	for i := len(s) - 1; i >= 0; i-- {
		h = s[i](h)
	}
	return h
}

// Edge is the stack every endpoint runs behind. The request id is assigned
// before Recovery so a recovered panic is logged and answered with it.
func Edge(logger *slog.Logger) Stack {
	return Stack{RequestID(), Recovery(logger)}
}

// GraphQLOptions configures the stack in front of /graphql.
type GraphQLOptions struct {
	CORS   config.CORSConfig
	Tokens TokenValidator
	Logger *slog.Logger
}

// GraphQL is the stack in front of /graphql, inside Edge. CORS answers
// preflights before any token is parsed, and the client key is set before
// Auth so callers with a rejected token are still keyed. extra runs last,
// closest to the handler.
func GraphQL(opts GraphQLOptions, extra ...Middleware) Stack {
	s := Stack{
		CORS(opts.CORS),
		ClientKey,
		Auth(opts.Tokens, opts.Logger),
		Logger(opts.Logger),
	}
	return append(s, extra...)
}
