package graphql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	gqlerrors "github.com/graph-gophers/graphql-go/errors"

	"github.com/heartmarshall/catgateway/internal/domain"
	"github.com/heartmarshall/catgateway/internal/metrics"
	"github.com/heartmarshall/catgateway/pkg/ctxutil"
)

// Error codes reported in errors[].extensions.code.
const (
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeNotFound        = "NOT_FOUND"
	CodeValidation      = "VALIDATION"
	CodeRateLimited     = "RATE_LIMITED"
	CodeUpstream        = "UPSTREAM_ERROR"
	CodeInternal        = "INTERNAL"

	codeValidationFailed = "GRAPHQL_VALIDATION_FAILED"
)

// ErrorPresenterFunc turns a resolver error into a client-facing GraphQL error.
type ErrorPresenterFunc func(ctx context.Context, err error) *gqlerrors.QueryError

// NewErrorPresenter returns an error presenter that maps domain errors
// to GraphQL error codes.
func NewErrorPresenter(log *slog.Logger) ErrorPresenterFunc {
	return func(ctx context.Context, err error) *gqlerrors.QueryError {
		gqlErr := &gqlerrors.QueryError{Err: err, Message: err.Error()}

		var (
			ve    *domain.ValidationError
			rlErr *domain.RateLimitError
			upErr *domain.UpstreamError
		)

		switch {
		case errors.Is(err, domain.ErrNotFound):
			gqlErr.Message = "not found"
			gqlErr.Extensions = map[string]interface{}{"code": CodeNotFound}

		case errors.As(err, &ve):
			gqlErr.Message = ve.Error()
			gqlErr.Extensions = map[string]interface{}{
				"code":   CodeValidation,
				"fields": fieldList(ve.Errors),
			}

		case errors.Is(err, domain.ErrValidation):
			gqlErr.Extensions = map[string]interface{}{"code": CodeValidation}

		case errors.Is(err, domain.ErrUnauthenticated):
			gqlErr.Message = "not authenticated"
			gqlErr.Extensions = map[string]interface{}{"code": CodeUnauthenticated}

		case errors.Is(err, domain.ErrUnauthorized):
			gqlErr.Message = "not authorized"
			gqlErr.Extensions = map[string]interface{}{"code": CodeUnauthorized}

		case errors.As(err, &rlErr):
			gqlErr.Message = "too many requests, try again later"
			gqlErr.Extensions = map[string]interface{}{
				"code":       CodeRateLimited,
				"retryAfter": rlErr.RetryAfterSeconds(),
			}

		case errors.Is(err, domain.ErrRateLimited):
			gqlErr.Message = "too many requests, try again later"
			gqlErr.Extensions = map[string]interface{}{"code": CodeRateLimited}

		case errors.As(err, &upErr):
			gqlErr.Message = upErr.Message
			gqlErr.Extensions = map[string]interface{}{
				"code":   CodeUpstream,
				"status": upErr.Status,
			}

		default:
			// Unexpected error (including misconfiguration): log it, return
			// a generic message to the client.
			requestID := ctxutil.RequestIDFromCtx(ctx)
			log.ErrorContext(ctx, "unexpected GraphQL error",
				slog.String("error", err.Error()),
				slog.String("request_id", requestID),
			)
			gqlErr.Message = "internal error"
			gqlErr.Extensions = map[string]interface{}{"code": CodeInternal}
		}

		metrics.RecordGraphQLError(gqlErr.Extensions["code"].(string))
		return gqlErr
	}
}

func fieldList(errs []domain.FieldError) []map[string]string {
	out := make([]map[string]string, 0, len(errs))
	for _, fe := range errs {
		out = append(out, map[string]string{"field": fe.Field, "message": fe.Message})
	}
	return out
}

// panicHandler turns a resolver panic into an INTERNAL error. The panic value
// is logged by panicLogger and never reaches the client.
type panicHandler struct{}

func (panicHandler) MakePanicError(_ context.Context, _ interface{}) *gqlerrors.QueryError {
	metrics.RecordGraphQLError(CodeInternal)
	return &gqlerrors.QueryError{
		Message:    "internal error",
		Extensions: map[string]interface{}{"code": CodeInternal},
	}
}

// panicLogger routes resolver panics to the application logger.
type panicLogger struct {
	log *slog.Logger
}

func (l panicLogger) LogPanic(ctx context.Context, value interface{}) {
	l.log.ErrorContext(ctx, "panic in resolver",
		slog.String("panic", fmt.Sprint(value)),
		slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
		slog.String("stack", string(debug.Stack())),
	)
}
