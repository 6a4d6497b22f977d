// Package graphql provides the GraphQL transport layer for the cat gateway.
// Queries are validated and executed by graph-gophers/graphql-go against the
// embedded schema; this package adds the error presenter, the DateTime scalar
// and the HTTP handler.
package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	gqlgo "github.com/graph-gophers/graphql-go"
	gqlerrors "github.com/graph-gophers/graphql-go/errors"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/heartmarshall/catgateway/internal/domain"
	"github.com/heartmarshall/catgateway/internal/metrics"
)

// Request is a GraphQL request as sent over HTTP.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// Response is a GraphQL response. Data is absent when the request failed
// before execution started and null when a non-null root field failed.
type Response struct {
	Errors []*gqlerrors.QueryError `json:"errors,omitempty"`
	Data   json.RawMessage         `json:"data,omitempty"`

	invalid bool
}

// Invalid reports whether the request was rejected during parsing,
// validation or variable coercion.
func (r *Response) Invalid() bool { return r.invalid }

// Limits bound the cost of a single request. Zero values keep the library
// defaults: no depth limit and ten parallel resolvers.
type Limits struct {
	MaxDepth       int
	MaxParallelism int
}

// Executor runs operations against the schema and its root resolver.
type Executor struct {
	schema  *gqlgo.Schema
	present ErrorPresenterFunc
}

// NewExecutor parses sdl and binds root to it. It fails when the resolver
// methods do not match the schema.
func NewExecutor(
	log *slog.Logger,
	sdl string,
	root any,
	present ErrorPresenterFunc,
	limits Limits,
) (*Executor, error) {
	opts := []gqlgo.SchemaOpt{
		gqlgo.Logger(panicLogger{log: log.With("component", "graphql")}),
		gqlgo.PanicHandler(panicHandler{}),
	}
	if limits.MaxDepth > 0 {
		opts = append(opts, gqlgo.MaxDepth(limits.MaxDepth))
	}
	if limits.MaxParallelism > 0 {
		opts = append(opts, gqlgo.MaxParallelism(limits.MaxParallelism))
	}

	schema, err := gqlgo.ParseSchema(sdl, root, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse graphql schema: %w", err)
	}

	return &Executor{schema: schema, present: present}, nil
}

// Execute runs req. It never returns a Go error: every failure is reported in
// Response.Errors.
func (e *Executor) Execute(ctx context.Context, req Request) *Response {
	res := e.schema.Exec(ctx, req.Query, req.OperationName, req.Variables)

	resp := &Response{Data: res.Data, Errors: res.Errors}

	executed := res.Data != nil
	for _, qe := range resp.Errors {
		if e.presentError(ctx, qe) {
			executed = true
		}
	}
	resp.invalid = !executed
	sortErrors(resp.Errors)

	opType := OperationType(req)
	switch {
	case resp.invalid:
		metrics.RecordGraphQLRequest("unknown", "rejected")
	case len(resp.Errors) > 0:
		metrics.RecordGraphQLRequest(opType, "error")
	default:
		metrics.RecordGraphQLRequest(opType, "ok")
	}

	return resp
}

// presentError rewrites qe in place and reports whether it came from
// execution rather than from parsing or validation.
func (e *Executor) presentError(ctx context.Context, qe *gqlerrors.QueryError) bool {
	// Set by panicHandler.
	if _, ok := qe.Extensions["code"]; ok {
		return true
	}

	var cause error
	switch {
	case qe.ResolverError != nil:
		cause = qe.ResolverError
	case isExecutionCause(qe.Err):
		cause = qe.Err
	case len(qe.Path) > 0:
		// Raised by the runtime mid-execution, e.g. nil for a non-null field.
		cause = qe
	}
	if cause == nil {
		qe.Extensions = map[string]interface{}{"code": codeValidationFailed}
		metrics.RecordGraphQLError(codeValidationFailed)
		return false
	}

	presented := e.present(ctx, cause)
	qe.Message = presented.Message
	qe.Extensions = presented.Extensions
	return true
}

// isExecutionCause picks out the non-resolver errors that still deserve a
// domain code: scalar input errors and request cancellation.
func isExecutionCause(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// sortErrors orders errors by path so concurrent resolution yields a stable
// response. Errors without a path keep their place at the front.
func sortErrors(errs []*gqlerrors.QueryError) {
	sort.SliceStable(errs, func(i, j int) bool {
		return comparePaths(errs[i].Path, errs[j].Path) < 0
	})
}

func comparePaths(a, b []interface{}) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		switch x := a[i].(type) {
		case int:
			y, ok := b[i].(int)
			if !ok {
				return -1
			}
			if x != y {
				return x - y
			}
		case string:
			y, ok := b[i].(string)
			if !ok {
				return 1
			}
			if x != y {
				if x < y {
					return -1
				}
				return 1
			}
		}
	}
	return len(a) - len(b)
}

// OperationType returns "query", "mutation" or "subscription" for the
// operation req selects, or "" when the document does not parse or names no
// such operation.
func OperationType(req Request) string {
	doc, err := parser.ParseQuery(&ast.Source{Input: req.Query})
	if err != nil {
		return ""
	}
	op := doc.Operations.ForName(req.OperationName)
	if op == nil {
		return ""
	}
	return string(op.Operation)
}
