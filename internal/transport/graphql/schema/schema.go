// Package schema holds the gateway's GraphQL schema definition.
package schema

import (
	_ "embed"
)

//go:embed schema.graphql
var source string

// SDL returns the schema in GraphQL schema definition language.
func SDL() string {
	return source
}
