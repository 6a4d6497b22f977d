package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	if c.Identity.Timeout <= 0 {
		return fmt.Errorf("identity.timeout must be > 0 (got %v)", c.Identity.Timeout)
	}
	if c.Identity.MaxConcurrentLookups <= 0 {
		return fmt.Errorf("identity.max_concurrent_lookups must be > 0 (got %d)", c.Identity.MaxConcurrentLookups)
	}

	if c.GraphQL.MaxDepth <= 0 {
		return fmt.Errorf("graphql.max_depth must be > 0 (got %d)", c.GraphQL.MaxDepth)
	}
	if c.GraphQL.MaxParallelism <= 0 {
		return fmt.Errorf("graphql.max_parallelism must be > 0 (got %d)", c.GraphQL.MaxParallelism)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (r *RateLimitConfig) validate() error {
	if r.LoginMax <= 0 {
		return fmt.Errorf("login_max must be > 0 (got %d)", r.LoginMax)
	}
	if r.LoginWindow <= 0 {
		return fmt.Errorf("login_window must be > 0 (got %v)", r.LoginWindow)
	}
	if r.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup_interval must be > 0 (got %v)", r.CleanupInterval)
	}
	return nil
}

func (d *DatabaseConfig) validate() error {
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be between 0 and max_conns (got %d)", d.MinConns)
	}
	if d.StatementTimeout < 0 {
		return fmt.Errorf("statement_timeout must not be negative (got %v)", d.StatementTimeout)
	}
	return nil
}
