package matching

import (
	"context"
	"errors"
	"sync"

	workerRepo "fixmate/database/repository/worker"
	"fixmate/models"
)

type stubWorkers struct {
	mu         sync.Mutex
	candidates []models.WorkerCandidate
	byID       map[string]models.WorkerCandidate
	err        error
	filters    []workerRepo.CandidateFilter
}

func (s *stubWorkers) QueryCandidates(_ context.Context, filter workerRepo.CandidateFilter) ([]models.WorkerCandidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = append(s.filters, filter)
	if s.err != nil {
		return nil, s.err
	}
	return s.candidates, nil
}

func (s *stubWorkers) GetByID(_ context.Context, id string) (*models.WorkerCandidate, error) {
	w, ok := s.byID[id]
	if !ok {
		return nil, workerRepo.ErrWorkerNotFound
	}
	return &w, nil
}

func (s *stubWorkers) queries() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.filters)
}

type stubBookings struct {
	inserted    []models.Booking
	err         error
	afterInsert func()
}

func (s *stubBookings) InsertBooking(_ context.Context, payload *models.Booking) (*models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	b := *payload
	b.ID = "booking-" + b.WorkerID
	s.inserted = append(s.inserted, b)
	if s.afterInsert != nil {
		s.afterInsert()
	}
	return &b, nil
}

type stubCategories struct {
	categories []models.Category
	err        error
}

func (s *stubCategories) ListActiveCategories(context.Context) ([]models.Category, error) {
	return s.categories, s.err
}

type stubExtractor struct {
	intent *models.BookingIntent
	err    error
}

func (s *stubExtractor) ExtractIntent(context.Context, string, string) (*models.BookingIntent, error) {
	if s.err != nil {
		return nil, s.err
	}
	intent := *s.intent
	return &intent, nil
}

type stubClarifier struct {
	questions []string
	calls     int
}

func (s *stubClarifier) GenerateClarifications(context.Context, models.BookingIntent) []string {
	s.calls++
	return s.questions
}

type stubNotifier struct {
	notified []string
	err      error
}

func (s *stubNotifier) NotifyBookingPending(_ context.Context, booking *models.Booking) error {
	s.notified = append(s.notified, booking.ID)
	return s.err
}

var errStore = errors.New("store unavailable")

func rate(v float64) *float64 {
	return &v
}
