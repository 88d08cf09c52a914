package models

import (
	"math"
	"slices"
	"strings"
)

// Service types understood by the intake pipeline. Anything else is folded into ServiceOther.
const (
	ServicePlumber         = "plumber"
	ServiceElectrician     = "electrician"
	ServiceCarpenter       = "carpenter"
	ServicePainter         = "painter"
	ServiceCleaner         = "cleaner"
	ServiceACRepair        = "ac-repair"
	ServiceApplianceRepair = "appliance-repair"
	ServicePestControl     = "pest-control"
	ServiceGardener        = "gardener"
	ServiceHandyman        = "handyman"
	ServiceOther           = "other"
)

// Urgency levels.
const (
	UrgencyLow       = "low"
	UrgencyMedium    = "medium"
	UrgencyHigh      = "high"
	UrgencyEmergency = "emergency"
)

// Preferred timeframes.
const (
	TimeframeToday    = "today"
	TimeframeTomorrow = "tomorrow"
	TimeframeThisWeek = "this-week"
	TimeframeFlexible = "flexible"
)

// ServiceTypes lists the closed vocabulary in the order it is presented to the model.
var ServiceTypes = []string{
	ServicePlumber, ServiceElectrician, ServiceCarpenter, ServicePainter, ServiceCleaner,
	ServiceACRepair, ServiceApplianceRepair, ServicePestControl, ServiceGardener,
	ServiceHandyman, ServiceOther,
}

// UrgencyLevels lists the closed urgency vocabulary.
var UrgencyLevels = []string{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyEmergency}

// Timeframes lists the closed timeframe vocabulary.
var Timeframes = []string{TimeframeToday, TimeframeTomorrow, TimeframeThisWeek, TimeframeFlexible}

// BookingIntent is the structured reading of a customer's free-text request.
// It is derived per request and never persisted on its own.
type BookingIntent struct {
	ServiceType            string   `json:"serviceType"`
	ProblemDescription     string   `json:"problemDescription"`
	Urgency                string   `json:"urgency"`
	HasSafetyRisk          bool     `json:"hasSafetyRisk"`
	EstimatedDurationHours string   `json:"estimatedDurationHours"`
	PreferredTimeframe     string   `json:"preferredTimeframe"`
	SpecialRequirements    []string `json:"specialRequirements"`
	Keywords               []string `json:"keywords"`
	Confidence             float64  `json:"confidence"`
}

// IsUrgent reports whether the intent should favour workers with more completed jobs.
func (i BookingIntent) IsUrgent() bool {
	return i.Urgency == UrgencyHigh || i.Urgency == UrgencyEmergency
}

// Normalized returns a copy with every enum folded into its closed vocabulary and the
// confidence clamped to [0,1]. Intents that arrive from clients go through this before
// they reach storage.
func (i BookingIntent) Normalized() BookingIntent {
	i.ServiceType = NormalizeEnum(i.ServiceType, ServiceTypes, ServiceOther)
	i.Urgency = NormalizeEnum(i.Urgency, UrgencyLevels, UrgencyLow)
	i.PreferredTimeframe = NormalizeEnum(i.PreferredTimeframe, Timeframes, TimeframeFlexible)
	i.ProblemDescription = strings.TrimSpace(i.ProblemDescription)
	i.Confidence = ClampConfidence(i.Confidence)
	return i
}

// NormalizeEnum folds case and separators ("This week" -> "this-week") before checking
// membership; unknown values map to fallback.
func NormalizeEnum(v string, allowed []string, fallback string) string {
	s := strings.ToLower(strings.TrimSpace(v))
	s = strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	}), "-")
	if slices.Contains(allowed, s) {
		return s
	}
	return fallback
}

func ClampConfidence(c float64) float64 {
	switch {
	case math.IsNaN(c), c < 0:
		return 0
	case c > 1:
		return 1
	default:
		return c
	}
}
