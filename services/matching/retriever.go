package matching

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	workerRepo "fixmate/database/repository/worker"
	"fixmate/models"

	"go.uber.org/zap"
)

type CandidateRetriever struct {
	Workers workerRepo.WorkerRepository
	Limit   int
	Logger  *zap.Logger
}

// FindCandidates returns at most Limit bookable workers for the intent, best rated first.
// No matches is an empty slice, not an error.
func (r *CandidateRetriever) FindCandidates(ctx context.Context, intent models.BookingIntent, location string) ([]models.WorkerCandidate, error) {
	filter := workerRepo.CandidateFilter{
		Keywords:         intent.Keywords,
		DescriptionTerms: descriptionTerms(intent.ProblemDescription),
		Location:         strings.TrimSpace(location),
		Limit:            r.Limit,
	}

	candidates, err := r.Workers.QueryCandidates(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	if candidates == nil {
		candidates = []models.WorkerCandidate{}
	}

	if r.Logger != nil {
		r.Logger.Debug("FindCandidates: candidates retrieved",
			zap.Int("count", len(candidates)),
			zap.Strings("keywords", filter.Keywords),
			zap.String("location", filter.Location))
	}
	return candidates, nil
}

// descriptionTerms keeps the lowercase words of desc longer than three characters,
// first occurrence order, without duplicates.
func descriptionTerms(desc string) []string {
	words := strings.FieldsFunc(strings.ToLower(desc), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]struct{}, len(words))
	terms := make([]string, 0, len(words))
	for _, w := range words {
		if utf8.RuneCountInString(w) <= 3 {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		terms = append(terms, w)
	}
	return terms
}
