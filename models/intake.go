package models

import "time"

// Intake stages. CLARIFYING and NO_MATCH end the request; the customer resubmits to start over.
const (
	StageIntake     = "INTAKE"
	StageClarifying = "CLARIFYING"
	StageNoMatch    = "NO_MATCH"
	StageMatched    = "MATCHED"
	StageConfirmed  = "CONFIRMED"
)

// IntakeRequest is the payload for POST /api/intake.
type IntakeRequest struct {
	Message  string `json:"message" binding:"required,min=10"`
	Location string `json:"location"`
}

// IntakeResponse carries exactly one of the three intake outcomes.
type IntakeResponse struct {
	Stage string `json:"stage"`

	// CLARIFYING
	NeedsClarification bool     `json:"needsClarification,omitempty"`
	Questions          []string `json:"questions,omitempty"`

	// NO_MATCH
	NoWorkersFound      bool       `json:"noWorkersFound,omitempty"`
	SuggestedCategories []Category `json:"suggestedCategories,omitempty"`

	// MATCHED
	Intent             *BookingIntent    `json:"intent,omitempty"`
	RecommendedWorker  *WorkerCandidate  `json:"recommendedWorker,omitempty"`
	AlternativeWorkers []WorkerCandidate `json:"alternativeWorkers"`
	CostEstimate       *CostEstimate     `json:"costEstimate,omitempty"`
	SummaryText        string            `json:"summaryText,omitempty"`
}

// ConfirmRequest is the payload for POST /api/intake/confirm.
type ConfirmRequest struct {
	CustomerID    string        `json:"customerId" binding:"required"`
	WorkerID      string        `json:"workerId" binding:"required"`
	Intent        BookingIntent `json:"intent"`
	ScheduledDate *time.Time    `json:"scheduledDate"`
	Notes         string        `json:"notes"`
}
