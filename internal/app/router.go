package app

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/catgateway/internal/config"
	"github.com/heartmarshall/catgateway/internal/transport/graphql"
	"github.com/heartmarshall/catgateway/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/catgateway/internal/transport/middleware"
	"github.com/heartmarshall/catgateway/internal/transport/rest"
)

// routerDeps are the already-built handlers and sources the router mounts.
type routerDeps struct {
	graphql *graphql.Handler
	health  *rest.HealthHandler
	tokens  middleware.TokenValidator
	loaders *dataloader.Sources
}

// newRouter mounts every endpoint. Only /graphql runs the caller and loader
// middleware; health and metrics endpoints stay cheap.
func newRouter(cfg *config.Config, logger *slog.Logger, deps routerDeps) http.Handler {
	mux := http.NewServeMux()

	gql := middleware.GraphQL(middleware.GraphQLOptions{
		CORS:   cfg.CORS,
		Tokens: deps.tokens,
		Logger: logger,
	}, dataloader.Middleware(deps.loaders)).Then(deps.graphql)

	mux.Handle("/graphql", gql)
	mux.HandleFunc("GET /live", deps.health.Live)
	mux.HandleFunc("GET /ready", deps.health.Ready)
	mux.HandleFunc("GET /health", deps.health.Health)
	if cfg.Metrics.Enabled {
		mux.Handle("GET "+cfg.Metrics.Path, promhttp.Handler())
	}

	return middleware.Edge(logger).Then(mux)
}
