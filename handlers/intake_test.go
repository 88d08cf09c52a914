package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	workerRepo "fixmate/database/repository/worker"
	"fixmate/models"
	ai "fixmate/services/intelligence"
	"fixmate/services/matching"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubIntakeService struct {
	intakeResp *models.IntakeResponse
	intakeErr  error
	confirm    *matching.ConfirmResult
	confirmErr error
	intakeReqs []models.IntakeRequest
	keys       []string
}

func (s *stubIntakeService) Intake(_ context.Context, req models.IntakeRequest) (*models.IntakeResponse, error) {
	s.intakeReqs = append(s.intakeReqs, req)
	return s.intakeResp, s.intakeErr
}

func (s *stubIntakeService) Confirm(_ context.Context, _ models.ConfirmRequest, key string) (*matching.ConfirmResult, error) {
	s.keys = append(s.keys, key)
	return s.confirm, s.confirmErr
}

func newTestRouter(t *testing.T, svc matching.IntakeService) *gin.Engine {
	h := NewIntakeHandler(svc, zaptest.NewLogger(t))
	r := gin.New()
	r.POST("/api/intake", h.IntakeHandler)
	r.POST("/api/intake/confirm", h.ConfirmHandler)
	return r
}

func doJSON(r *gin.Engine, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIntakeHandler_ShortMessageRejected(t *testing.T) {
	svc := &stubIntakeService{}
	r := newTestRouter(t, svc)

	w := doJSON(r, "/api/intake", gin.H{"message": "leak"}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.intakeReqs)
}

func TestIntakeHandler_Outcomes(t *testing.T) {
	svc := &stubIntakeService{intakeResp: &models.IntakeResponse{
		Stage:               models.StageNoMatch,
		NoWorkersFound:      true,
		SuggestedCategories: []models.Category{{Name: "plumber"}},
	}}
	r := newTestRouter(t, svc)

	w := doJSON(r, "/api/intake", gin.H{"message": "My kitchen sink is leaking badly", "location": "Pune"}, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, models.StageNoMatch, body["stage"])
	assert.Equal(t, true, body["noWorkersFound"])
	assert.NotContains(t, body, "recommendedWorker")
	assert.Equal(t, "Pune", svc.intakeReqs[0].Location)
}

func TestIntakeHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "extraction", err: &ai.ExtractionError{Code: ai.CodeNoJSON, Message: "no json"}, status: http.StatusUnprocessableEntity},
		{name: "store", err: errors.New("mongo down"), status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t, &stubIntakeService{intakeErr: tt.err})

			w := doJSON(r, "/api/intake", gin.H{"message": "My kitchen sink is leaking badly"}, nil)

			assert.Equal(t, tt.status, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestConfirmHandler_Created(t *testing.T) {
	svc := &stubIntakeService{confirm: &matching.ConfirmResult{Booking: &models.Booking{ID: "b1", Status: models.BookingStatusPending}}}
	r := newTestRouter(t, svc)

	w := doJSON(r, "/api/intake/confirm", gin.H{"customerId": "c1", "workerId": "w1"}, map[string]string{IdempotencyKeyHeader: "k1"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"PENDING"`)
	assert.Equal(t, []string{"k1"}, svc.keys)
}

func TestConfirmHandler_Replay(t *testing.T) {
	svc := &stubIntakeService{confirm: &matching.ConfirmResult{Booking: &models.Booking{ID: "b1"}, Replayed: true}}
	r := newTestRouter(t, svc)

	w := doJSON(r, "/api/intake/confirm", gin.H{"customerId": "c1", "workerId": "w1"}, map[string]string{IdempotencyKeyHeader: "k1"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
}

func TestConfirmHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "invalid intent", err: matching.NewInvalidIntentError("intent has no problem description"), status: http.StatusBadRequest},
		{name: "not found", err: fmt.Errorf("failed to load worker w1: %w", workerRepo.ErrWorkerNotFound), status: http.StatusNotFound},
		{name: "unavailable", err: matching.NewWorkerUnavailableError("w1"), status: http.StatusConflict},
		{name: "in flight", err: matching.ErrConfirmationInFlight, status: http.StatusConflict},
		{name: "creation", err: &matching.BookingCreationError{Code: "x", Message: "y", Err: errors.New("z")}, status: http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t, &stubIntakeService{confirmErr: tt.err})

			w := doJSON(r, "/api/intake/confirm", gin.H{"customerId": "c1", "workerId": "w1"}, nil)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestConfirmHandler_MissingIDs(t *testing.T) {
	svc := &stubIntakeService{}
	r := newTestRouter(t, svc)

	w := doJSON(r, "/api/intake/confirm", gin.H{"workerId": "w1"}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.keys)
}

func TestHealthHandler(t *testing.T) {
	r := gin.New()
	r.GET("/health", HealthHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
}
