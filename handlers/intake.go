package handlers

import (
	"errors"
	"net/http"

	workerRepo "fixmate/database/repository/worker"
	"fixmate/models"
	ai "fixmate/services/intelligence"
	"fixmate/services/matching"
	"fixmate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const IdempotencyKeyHeader = "Idempotency-Key"

type IntakeHandler struct {
	Service matching.IntakeService
	Logger  *zap.Logger
}

func NewIntakeHandler(svc matching.IntakeService, logger *zap.Logger) *IntakeHandler {
	return &IntakeHandler{Service: svc, Logger: logger}
}

// IntakeHandler handles POST /api/intake.
func (h *IntakeHandler) IntakeHandler(c *gin.Context) {
	var req models.IntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "Please describe the problem in at least 10 characters.")
		return
	}

	logger := getLogger(c, h.Logger)
	resp, err := h.Service.Intake(c.Request.Context(), req)
	if err != nil {
		var extractionErr *ai.ExtractionError
		if errors.As(err, &extractionErr) {
			logger.Warn("IntakeHandler: intent extraction failed", zap.String("code", extractionErr.Code), zap.Error(err))
			utils.JSONError(c, http.StatusUnprocessableEntity, "could not understand request",
				"We could not understand your request. Please try again with more detail.")
			return
		}
		logger.Error("IntakeHandler: intake failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "intake failed", "Something went wrong. Please try again.")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ConfirmHandler handles POST /api/intake/confirm.
func (h *IntakeHandler) ConfirmHandler(c *gin.Context) {
	var req models.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	logger := getLogger(c, h.Logger)
	result, err := h.Service.Confirm(c.Request.Context(), req, c.GetHeader(IdempotencyKeyHeader))
	if err != nil {
		status, errMsg, message := confirmErrorStatus(err)
		if status >= http.StatusInternalServerError {
			logger.Error("ConfirmHandler: booking failed", zap.String("workerId", req.WorkerID), zap.Error(err))
		} else {
			logger.Warn("ConfirmHandler: booking rejected", zap.String("workerId", req.WorkerID), zap.Error(err))
		}
		utils.JSONError(c, status, errMsg, message)
		return
	}

	if result.Replayed {
		c.Header("Idempotent-Replayed", "true")
		c.JSON(http.StatusOK, result.Booking)
		return
	}
	c.JSON(http.StatusCreated, result.Booking)
}

func confirmErrorStatus(err error) (int, string, string) {
	var unavailableErr *matching.WorkerUnavailableError
	var creationErr *matching.BookingCreationError
	var invalidErr *matching.InvalidIntentError
	switch {
	case errors.As(err, &invalidErr):
		return http.StatusBadRequest, "invalid intent", "The request details are incomplete. Please describe the problem again."
	case errors.Is(err, workerRepo.ErrWorkerNotFound):
		return http.StatusNotFound, "worker not found", "The selected worker does not exist."
	case errors.As(err, &unavailableErr):
		return http.StatusConflict, "worker unavailable", "The selected worker is no longer available. Please start a new request."
	case errors.Is(err, matching.ErrConfirmationInFlight):
		return http.StatusConflict, "confirmation in progress", "This booking is already being created."
	case errors.As(err, &creationErr):
		return http.StatusBadGateway, "booking creation failed", "We could not create the booking. Please try again."
	default:
		return http.StatusInternalServerError, "booking failed", "Something went wrong. Please try again."
	}
}
