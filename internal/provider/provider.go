// Package provider defines the search provider abstraction shared by the
// deep-link feed and the search API pipelines.
package provider

import (
	"context"

	"github.com/law-makers/profilehunt/pkg/models"
)

// Provider runs one complete search for a term and returns every unique candidate found.
//
// A Provider only returns an error for fatal preconditions. Failures of individual
// requests end the affected pagination chain and are logged instead.
type Provider interface {
	// Name returns the provider identifier used in logs
	Name() string

	// Search runs all queries for term and accumulates the results
	Search(ctx context.Context, term string) (*models.ResultSet, error)
}
