package matching

import (
	"strconv"
	"strings"

	"fixmate/models"
)

const defaultEstimatedHours = 2

type CostEstimator struct {
	Currency string
}

// Estimate derives the price band shown before confirmation:
// min = rate * max(1, hours-1), max = rate * (hours+1). A worker without a rate gets a zero band.
func (e *CostEstimator) Estimate(worker models.WorkerCandidate, intent models.BookingIntent) models.CostEstimate {
	rate, _ := worker.Rate()
	if rate < 0 {
		rate = 0
	}
	hours := estimatedHours(intent.EstimatedDurationHours)

	return models.CostEstimate{
		HourlyRate:     rate,
		EstimatedHours: hours,
		MinCost:        rate * float64(max(1, hours-1)),
		MaxCost:        rate * float64(hours+1),
		Currency:       e.Currency,
	}
}

// estimatedHours parses the first integer in s ("2-4" -> 2), defaulting to 2 and
// never returning less than 1.
func estimatedHours(s string) int {
	start := strings.IndexFunc(s, isDigit)
	if start < 0 {
		return defaultEstimatedHours
	}
	end := start
	for end < len(s) && isDigit(rune(s[end])) {
		end++
	}

	hours, err := strconv.Atoi(s[start:end])
	if err != nil {
		return defaultEstimatedHours
	}
	return max(1, hours)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
