package matching

import (
	"context"
	"fmt"
	"strings"
	"time"

	bookingRepo "fixmate/database/repository/booking"
	categoryRepo "fixmate/database/repository/category"
	workerRepo "fixmate/database/repository/worker"
	"fixmate/metrics"
	"fixmate/models"

	"go.uber.org/zap"
)

const (
	alternativesLimit = 3
	settleTimeout     = 5 * time.Second
)

// IntentExtractor and Clarifier are the text-generation collaborators of the pipeline.
type IntentExtractor interface {
	ExtractIntent(ctx context.Context, message, location string) (*models.BookingIntent, error)
}

type Clarifier interface {
	GenerateClarifications(ctx context.Context, intent models.BookingIntent) []string
}

// IntakeService runs the intake flow and the confirmation step.
type IntakeService interface {
	Intake(ctx context.Context, req models.IntakeRequest) (*models.IntakeResponse, error)
	Confirm(ctx context.Context, req models.ConfirmRequest, idempotencyKey string) (*ConfirmResult, error)
}

type ConfirmResult struct {
	Booking *models.Booking
	// Replayed is set when the booking was returned from a previous confirmation.
	Replayed bool
}

var _ IntakeService = (*DefaultIntakeService)(nil)

type DefaultIntakeService struct {
	extractor    IntentExtractor
	clarifier    Clarifier
	retriever    *CandidateRetriever
	ranker       *Ranker
	estimator    *CostEstimator
	materializer *BookingMaterializer
	workers      workerRepo.WorkerRepository
	categories   categoryRepo.CategoryRepository
	idempotency  IdempotencyStore
	settings     Settings
	logger       *zap.Logger
}

// Deps are the collaborators of DefaultIntakeService. Notifier and Idempotency may be nil.
type Deps struct {
	Extractor   IntentExtractor
	Clarifier   Clarifier
	Workers     workerRepo.WorkerRepository
	Bookings    bookingRepo.BookingRepository
	Categories  categoryRepo.CategoryRepository
	Notifier    BookingNotifier
	Idempotency IdempotencyStore
	Now         func() time.Time
}

func NewDefaultIntakeService(deps Deps, settings Settings, logger *zap.Logger) *DefaultIntakeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	settings = settings.withDefaults()
	estimator := &CostEstimator{Currency: settings.Currency}

	return &DefaultIntakeService{
		extractor: deps.Extractor,
		clarifier: deps.Clarifier,
		retriever: &CandidateRetriever{Workers: deps.Workers, Limit: settings.CandidateLimit, Logger: logger},
		ranker:    &Ranker{RatingBand: settings.RatingBand, ReviewBand: settings.ReviewBand},
		estimator: estimator,
		materializer: &BookingMaterializer{
			Bookings:  deps.Bookings,
			Estimator: estimator,
			Notifier:  deps.Notifier,
			Logger:    logger,
			Now:       deps.Now,
		},
		workers:     deps.Workers,
		categories:  deps.Categories,
		idempotency: deps.Idempotency,
		settings:    settings,
		logger:      logger,
	}
}

// Intake moves a request from INTAKE to CLARIFYING, NO_MATCH or MATCHED.
func (s *DefaultIntakeService) Intake(ctx context.Context, req models.IntakeRequest) (*models.IntakeResponse, error) {
	intent, err := s.extractor.ExtractIntent(ctx, req.Message, req.Location)
	if err != nil {
		metrics.IntakeFailures.WithLabelValues("extraction").Inc()
		return nil, fmt.Errorf("failed to extract intent: %w", err)
	}

	if intent.Confidence < s.settings.MinConfidence {
		s.logger.Info("Intake: low confidence, asking for clarification", zap.Float64("confidence", intent.Confidence))
		metrics.IntakeOutcomes.WithLabelValues(models.StageClarifying).Inc()
		return &models.IntakeResponse{
			Stage:              models.StageClarifying,
			NeedsClarification: true,
			Questions:          s.clarifier.GenerateClarifications(ctx, *intent),
		}, nil
	}

	candidates, err := s.retriever.FindCandidates(ctx, *intent, req.Location)
	if err != nil {
		metrics.IntakeFailures.WithLabelValues("retrieval").Inc()
		return nil, err
	}

	if len(candidates) == 0 {
		s.logger.Info("Intake: no workers found", zap.String("serviceType", intent.ServiceType))
		metrics.IntakeOutcomes.WithLabelValues(models.StageNoMatch).Inc()
		return &models.IntakeResponse{
			Stage:               models.StageNoMatch,
			NoWorkersFound:      true,
			SuggestedCategories: s.suggestCategories(ctx),
		}, nil
	}

	best, ordered := s.ranker.SelectBest(candidates, *intent)
	estimate := s.estimator.Estimate(*best, *intent)

	metrics.IntakeOutcomes.WithLabelValues(models.StageMatched).Inc()
	return &models.IntakeResponse{
		Stage:              models.StageMatched,
		Intent:             intent,
		RecommendedWorker:  best,
		AlternativeWorkers: Alternatives(ordered, alternativesLimit),
		CostEstimate:       &estimate,
		SummaryText:        summaryText(*intent, *best, estimate),
	}, nil
}

// suggestCategories never fails the request; a catalog error yields no suggestions.
func (s *DefaultIntakeService) suggestCategories(ctx context.Context) []models.Category {
	if s.categories == nil {
		return []models.Category{}
	}
	categories, err := s.categories.ListActiveCategories(ctx)
	if err != nil {
		s.logger.Warn("Intake: failed to load category suggestions", zap.Error(err))
		return []models.Category{}
	}
	return categories
}

// Confirm moves a MATCHED request to CONFIRMED by creating the booking. The worker is
// re-read so that a stale match cannot be booked.
func (s *DefaultIntakeService) Confirm(ctx context.Context, req models.ConfirmRequest, idempotencyKey string) (*ConfirmResult, error) {
	req.Intent = req.Intent.Normalized()
	if err := s.validateIntent(req.Intent); err != nil {
		return nil, err
	}

	reserved := false
	if idempotencyKey != "" && s.idempotency != nil {
		ok, previous, err := s.idempotency.Reserve(ctx, idempotencyKey)
		switch {
		case err != nil:
			s.logger.Warn("Confirm: idempotency store unavailable, continuing without it", zap.Error(err))
		case previous != nil:
			metrics.IdempotentReplays.Inc()
			return &ConfirmResult{Booking: previous, Replayed: true}, nil
		case !ok:
			return nil, ErrConfirmationInFlight
		default:
			reserved = true
		}
	}

	booking, err := s.confirm(ctx, req)
	if reserved {
		s.settleReservation(ctx, idempotencyKey, booking, err)
	}
	if err != nil {
		return nil, err
	}
	return &ConfirmResult{Booking: booking}, nil
}

func (s *DefaultIntakeService) confirm(ctx context.Context, req models.ConfirmRequest) (*models.Booking, error) {
	worker, err := s.workers.GetByID(ctx, req.WorkerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load worker %s: %w", req.WorkerID, err)
	}
	if !worker.Bookable() {
		return nil, NewWorkerUnavailableError(worker.ID)
	}

	return s.materializer.CreateBooking(ctx, req.CustomerID, *worker, req.Intent, req.ScheduledDate, req.Notes)
}

// validateIntent holds a client-supplied intent to the same bar Intake applies before
// it would ever return MATCHED.
func (s *DefaultIntakeService) validateIntent(intent models.BookingIntent) error {
	if intent.ProblemDescription == "" {
		return NewInvalidIntentError("intent has no problem description")
	}
	if intent.Confidence < s.settings.MinConfidence {
		return NewInvalidIntentError(fmt.Sprintf("intent confidence %.2f is below %.2f", intent.Confidence, s.settings.MinConfidence))
	}
	return nil
}

// settleReservation outlives the request: a client that disconnects after the insert
// must still find its booking on retry.
func (s *DefaultIntakeService) settleReservation(ctx context.Context, key string, booking *models.Booking, confirmErr error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), settleTimeout)
	defer cancel()

	var err error
	if confirmErr != nil {
		err = s.idempotency.Release(ctx, key)
	} else {
		err = s.idempotency.Complete(ctx, key, booking)
	}
	if err != nil {
		s.logger.Warn("Confirm: failed to update idempotency record", zap.String("key", key), zap.Error(err))
	}
}

func summaryText(intent models.BookingIntent, worker models.WorkerCandidate, estimate models.CostEstimate) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s is our recommended %s", worker.Name, intent.ServiceType)
	fmt.Fprintf(&sb, " (rated %.1f from %d reviews, %d years of experience).", worker.AverageRating, worker.TotalReviews, worker.ExperienceYears)
	if estimate.HourlyRate > 0 {
		fmt.Fprintf(&sb, " Estimated cost: %s %.0f - %.0f for about %d hour(s).",
			estimate.Currency, estimate.MinCost, estimate.MaxCost, estimate.EstimatedHours)
	} else {
		fmt.Fprintf(&sb, " Estimated duration: about %d hour(s); the worker will quote on site.", estimate.EstimatedHours)
	}
	if intent.HasSafetyRisk {
		sb.WriteString(" This may be a safety hazard: keep clear of the affected area until help arrives.")
	}
	return sb.String()
}
