package ai

import "time"

type Settings struct {
	// Timeout bounds every generation call.
	Timeout time.Duration
	// ClarifySkipConfidence is the confidence above which no questions are asked.
	ClarifySkipConfidence float64
	MaxQuestions          int
}

func DefaultSettings() Settings {
	return Settings{
		Timeout:               20 * time.Second,
		ClarifySkipConfidence: 0.7,
		MaxQuestions:          3,
	}
}

func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.Timeout <= 0 {
		s.Timeout = d.Timeout
	}
	if s.ClarifySkipConfidence <= 0 {
		s.ClarifySkipConfidence = d.ClarifySkipConfidence
	}
	if s.MaxQuestions <= 0 {
		s.MaxQuestions = d.MaxQuestions
	}
	return s
}
