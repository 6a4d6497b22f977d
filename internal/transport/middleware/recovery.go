package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/catgateway/pkg/ctxutil"
)

// internalErrorBody is shaped like a GraphQL error response so clients parse
// it the same way as resolver failures.
const internalErrorBody = `{"errors":[{"message":"internal error","extensions":{"code":"INTERNAL"}}]}`

// Recovery returns middleware that recovers from panics outside the GraphQL
// executor, logs them with a stack trace and responds with 500.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					logger.ErrorContext(r.Context(), "panic recovered",
						slog.Any("error", err),
						slog.String("stack", string(debug.Stack())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(internalErrorBody)) //nolint:errcheck
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
