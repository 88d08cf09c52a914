package workerRepo

import (
	"context"
	"errors"

	"fixmate/models"
)

// ErrWorkerNotFound is returned by GetByID when no profile has the given id.
var ErrWorkerNotFound = errors.New("worker not found")

// CandidateFilter carries the optional match signals for a candidate query.
// The availability/verification base filter is always applied.
type CandidateFilter struct {
	Keywords         []string
	DescriptionTerms []string
	Location         string
	Limit            int
}

// WorkerRepository is the read-only view of the worker pool.
type WorkerRepository interface {
	// QueryCandidates returns bookable workers matching any of the filter's signals,
	// ordered by rating then review count and capped at filter.Limit.
	QueryCandidates(ctx context.Context, filter CandidateFilter) ([]models.WorkerCandidate, error)
	// GetByID reads a single worker profile.
	GetByID(ctx context.Context, id string) (*models.WorkerCandidate, error)
}
