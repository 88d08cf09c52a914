package matching

import (
	"math"
	"sort"

	"fixmate/models"
)

// missingRate sorts workers without an hourly rate after every priced worker.
const missingRate = math.MaxFloat64

// bandEpsilon absorbs float noise so that a gap of exactly the band is a tie.
const bandEpsilon = 1e-9

type Ranker struct {
	RatingBand float64
	ReviewBand int
}

// SelectBest orders candidates by the ranking chain and returns the winner with the
// full ordering. It returns nil when there are no candidates. The input is not modified.
func (r *Ranker) SelectBest(candidates []models.WorkerCandidate, intent models.BookingIntent) (*models.WorkerCandidate, []models.WorkerCandidate) {
	if len(candidates) == 0 {
		return nil, []models.WorkerCandidate{}
	}

	ordered := append([]models.WorkerCandidate(nil), candidates...)
	urgent := intent.IsUrgent()
	sort.SliceStable(ordered, func(i, j int) bool {
		return r.less(ordered[i], ordered[j], urgent)
	})

	best := ordered[0]
	return &best, ordered
}

// less reports whether a ranks ahead of b. Each criterion only decides when the
// previous ones tie within their band.
func (r *Ranker) less(a, b models.WorkerCandidate, urgent bool) bool {
	if urgent && a.TotalCompletedJobs != b.TotalCompletedJobs {
		return a.TotalCompletedJobs > b.TotalCompletedJobs
	}
	if math.Abs(a.AverageRating-b.AverageRating) > r.RatingBand+bandEpsilon {
		return a.AverageRating > b.AverageRating
	}
	if abs(a.TotalReviews-b.TotalReviews) > r.ReviewBand {
		return a.TotalReviews > b.TotalReviews
	}
	if a.ExperienceYears != b.ExperienceYears {
		return a.ExperienceYears > b.ExperienceYears
	}
	return rateOrSentinel(a) < rateOrSentinel(b)
}

// Alternatives returns up to n workers following the winner in an ordering from SelectBest.
func Alternatives(ordered []models.WorkerCandidate, n int) []models.WorkerCandidate {
	if len(ordered) <= 1 || n <= 0 {
		return []models.WorkerCandidate{}
	}
	rest := ordered[1:]
	if len(rest) > n {
		rest = rest[:n]
	}
	return append([]models.WorkerCandidate(nil), rest...)
}

func rateOrSentinel(w models.WorkerCandidate) float64 {
	if rate, ok := w.Rate(); ok {
		return rate
	}
	return missingRate
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
