package matching

// Settings carries the business thresholds of the intake flow.
type Settings struct {
	// MinConfidence gates retrieval; intents below it go to clarification.
	MinConfidence  float64
	CandidateLimit int
	// RatingBand and ReviewBand are the ranking tie tolerances.
	RatingBand float64
	ReviewBand int
	Currency   string
}

func DefaultSettings() Settings {
	return Settings{
		MinConfidence:  0.6,
		CandidateLimit: 10,
		RatingBand:     0.2,
		ReviewBand:     5,
		Currency:       "INR",
	}
}

func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.MinConfidence <= 0 {
		s.MinConfidence = d.MinConfidence
	}
	if s.CandidateLimit <= 0 {
		s.CandidateLimit = d.CandidateLimit
	}
	if s.RatingBand < 0 {
		s.RatingBand = d.RatingBand
	}
	if s.ReviewBand < 0 {
		s.ReviewBand = d.ReviewBand
	}
	if s.Currency == "" {
		s.Currency = d.Currency
	}
	return s
}
