package models

import "time"

// Booking statuses.
const (
	BookingStatusPending = "PENDING"
)

// Booking is the record created once a customer confirms a matched worker.
// ID and CreatedAt are assigned by the booking store.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	CustomerID      string    `bson:"customerId" json:"customerId"`
	WorkerID        string    `bson:"workerId" json:"workerId"`
	ServiceCategory string    `bson:"serviceCategory" json:"serviceCategory"`
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description" json:"description"`
	ScheduledDate   time.Time `bson:"scheduledDate" json:"scheduledDate"`
	Budget          float64   `bson:"budget" json:"budget"`
	Status          string    `bson:"status" json:"status"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

// CostEstimate is the price band shown to the customer before confirmation.
type CostEstimate struct {
	HourlyRate     float64 `json:"hourlyRate"`
	EstimatedHours int     `json:"estimatedHours"`
	MinCost        float64 `json:"minCost"`
	MaxCost        float64 `json:"maxCost"`
	Currency       string  `json:"currency"`
}
