package models

// Verification statuses stored on worker profiles.
const (
	VerificationPending  = "PENDING"
	VerificationVerified = "VERIFIED"
	VerificationRejected = "REJECTED"
)

// WorkerCandidate is the read projection of a worker profile used for matching.
// Profiles are owned by the worker-profile subsystem; this service only reads them.
type WorkerCandidate struct {
	ID                 string   `bson:"id" json:"id"`
	Name               string   `bson:"name" json:"name"`
	Skills             []string `bson:"skills" json:"skills"`
	Bio                string   `bson:"bio" json:"bio,omitempty"`
	Location           string   `bson:"location" json:"location,omitempty"`
	HourlyRate         *float64 `bson:"hourlyRate,omitempty" json:"hourlyRate,omitempty"`
	AverageRating      float64  `bson:"averageRating" json:"averageRating"`
	TotalReviews       int      `bson:"totalReviews" json:"totalReviews"`
	ExperienceYears    int      `bson:"experienceYears" json:"experienceYears"`
	TotalCompletedJobs int      `bson:"totalCompletedJobs" json:"totalCompletedJobs"`
	IsAvailable        bool     `bson:"isAvailable" json:"isAvailable"`
	VerificationStatus string   `bson:"verificationStatus" json:"verificationStatus"`
}

// Bookable reports whether the worker may currently receive a booking.
func (w WorkerCandidate) Bookable() bool {
	return w.IsAvailable && w.VerificationStatus == VerificationVerified
}

// Rate returns the hourly rate and whether one is set.
func (w WorkerCandidate) Rate() (float64, bool) {
	if w.HourlyRate == nil {
		return 0, false
	}
	return *w.HourlyRate, true
}
