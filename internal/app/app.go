package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/catgateway/internal/adapter/identity"
	"github.com/heartmarshall/catgateway/internal/adapter/postgres"
	catrepo "github.com/heartmarshall/catgateway/internal/adapter/postgres/cat"
	"github.com/heartmarshall/catgateway/internal/auth"
	"github.com/heartmarshall/catgateway/internal/config"
	"github.com/heartmarshall/catgateway/internal/ratelimit"
	"github.com/heartmarshall/catgateway/internal/service/cat"
	"github.com/heartmarshall/catgateway/internal/service/user"
	"github.com/heartmarshall/catgateway/internal/transport/graphql"
	"github.com/heartmarshall/catgateway/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/catgateway/internal/transport/graphql/resolver"
	"github.com/heartmarshall/catgateway/internal/transport/graphql/schema"
	"github.com/heartmarshall/catgateway/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires the services and serves HTTP until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		migrator, err := postgres.NewMigrator(pool, logger)
		if err != nil {
			return err
		}
		if err := migrator.Up(ctx); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
	}

	identityClient := identity.NewClient(cfg.Identity, logger, identity.WithUserAgent(UserAgent()))

	logins := ratelimit.New(cfg.RateLimit.LoginMax, cfg.RateLimit.LoginWindow, cfg.RateLimit.CleanupInterval)
	defer logins.Stop()

	cats := cat.NewService(logger, catrepo.New(pool))
	users := user.NewService(logger, identityClient, logins)

	res := resolver.NewResolver(logger, cats, users)
	exec, err := graphql.NewExecutor(logger, schema.SDL(), res, graphql.NewErrorPresenter(logger), graphql.Limits{
		MaxDepth:       cfg.GraphQL.MaxDepth,
		MaxParallelism: cfg.GraphQL.MaxParallelism,
	})
	if err != nil {
		return err
	}

	handler := newRouter(cfg, logger, routerDeps{
		graphql: graphql.NewHandler(exec, logger),
		health:  rest.NewHealthHandler(pool, identityClient, BuildVersion()),
		tokens:  auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer),
		loaders: &dataloader.Sources{
			Users:         identityClient,
			MaxConcurrent: cfg.Identity.MaxConcurrentLookups,
		},
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, logger, srv, cfg.Server.ShutdownTimeout)
}

// serve runs srv until ctx is canceled, then drains in-flight requests for
// at most shutdownTimeout.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, shutdownTimeout time.Duration) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server exited properly")
	return nil
}

// Migrate runs one goose command (up, down or status) against the configured
// database.
func Migrate(ctx context.Context, command string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	migrator, err := postgres.NewMigrator(pool, logger)
	if err != nil {
		return err
	}

	switch command {
	case "up":
		return migrator.Up(ctx)
	case "down":
		return migrator.Down(ctx)
	case "status":
		return migrator.Status(ctx)
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}
}
