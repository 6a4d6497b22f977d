// Package metrics provides Prometheus metrics for the gateway.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catgateway"

var (
	// IdentityRequestsTotal counts outbound identity service calls.
	IdentityRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "identity_requests_total",
			Help:      "Total number of identity service calls",
		},
		[]string{"operation", "status"},
	)

	// IdentityRequestDuration measures identity service call duration.
	IdentityRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "identity_request_duration_seconds",
			Help:      "Duration of identity service calls in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// OwnerBatchSize observes how many distinct owners one loader batch fetched.
	OwnerBatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "owner_batch_size",
			Help:      "Distribution of owner loader batch sizes",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100},
		},
	)

	// RateLimitRejectionsTotal counts requests rejected by the rate limiter.
	RateLimitRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_rejections_total",
			Help:      "Total number of rate limited operations",
		},
		[]string{"operation"},
	)

	// GraphQLRequestsTotal counts GraphQL operations by outcome.
	GraphQLRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graphql_requests_total",
			Help:      "Total number of GraphQL operations",
		},
		[]string{"operation_type", "status"},
	)

	// GraphQLErrorsTotal counts errors returned to clients by code.
	GraphQLErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graphql_errors_total",
			Help:      "Total number of GraphQL errors by code",
		},
		[]string{"code"},
	)
)

// RecordIdentityCall records one identity service call.
func RecordIdentityCall(operation, status string, seconds float64) {
	IdentityRequestsTotal.WithLabelValues(operation, status).Inc()
	IdentityRequestDuration.WithLabelValues(operation).Observe(seconds)
}

// RecordOwnerBatch records the size of one owner loader batch.
func RecordOwnerBatch(size int) {
	OwnerBatchSize.Observe(float64(size))
}

// RecordRateLimited records a rate limit rejection.
func RecordRateLimited(operation string) {
	RateLimitRejectionsTotal.WithLabelValues(operation).Inc()
}

// RecordGraphQLRequest records a finished GraphQL operation.
func RecordGraphQLRequest(operationType, status string) {
	GraphQLRequestsTotal.WithLabelValues(operationType, status).Inc()
}

// RecordGraphQLError records an error surfaced to a client.
func RecordGraphQLError(code string) {
	GraphQLErrorsTotal.WithLabelValues(code).Inc()
}
