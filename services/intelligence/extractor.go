package ai

import (
	"context"
	"errors"
	"strings"
	"time"

	"fixmate/metrics"
	"fixmate/models"
	"fixmate/utils"

	"go.uber.org/zap"
)

const previewLimit = 300

type IntentExtractor struct {
	generator TextGenerator
	settings  Settings
	logger    *zap.Logger
}

func NewIntentExtractor(generator TextGenerator, settings Settings, logger *zap.Logger) *IntentExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IntentExtractor{generator: generator, settings: settings.withDefaults(), logger: logger}
}

// ExtractIntent turns a free-text request into a validated BookingIntent. Any upstream or
// parse failure is reported as *ExtractionError; a partial intent is never returned.
func (e *IntentExtractor) ExtractIntent(ctx context.Context, message, location string) (*models.BookingIntent, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, &ExtractionError{Code: CodeEmptyMessage, Message: "message is empty"}
	}

	raw, err := generate(ctx, e.generator, e.settings.Timeout, "extract_intent", buildIntentPrompt(message, location))
	if err != nil {
		e.logger.Error("ExtractIntent: generation failed", zap.Error(err))
		return nil, &ExtractionError{Code: CodeGenerationFailed, Message: "intent generation failed", Err: err}
	}

	candidates := jsonObjects(raw)
	if len(candidates) == 0 {
		metrics.GenerationFailures.WithLabelValues("extract_intent").Inc()
		e.logger.Warn("ExtractIntent: no JSON object in response",
			zap.String("response", utils.TruncateForLog(raw, previewLimit)))
		return nil, &ExtractionError{Code: CodeNoJSON, Message: "response did not contain a JSON object"}
	}

	fields, err := decodeFirstObject(candidates)
	if err != nil {
		metrics.GenerationFailures.WithLabelValues("extract_intent").Inc()
		e.logger.Warn("ExtractIntent: malformed JSON in response",
			zap.String("response", utils.TruncateForLog(raw, previewLimit)), zap.Error(err))
		return nil, &ExtractionError{Code: CodeMalformedJSON, Message: "response JSON could not be decoded", Err: err}
	}

	if err := validateIntentShape(fields); err != nil {
		metrics.GenerationFailures.WithLabelValues("extract_intent").Inc()
		e.logger.Warn("ExtractIntent: response does not match intent shape", zap.Error(err))
		return nil, &ExtractionError{Code: CodeSchemaViolation, Message: "response JSON has the wrong shape", Err: err}
	}

	intent := intentFromFields(fields, message)
	e.logger.Debug("ExtractIntent: intent extracted",
		zap.String("serviceType", intent.ServiceType),
		zap.String("urgency", intent.Urgency),
		zap.Float64("confidence", intent.Confidence))
	return intent, nil
}

func intentFromFields(fields map[string]any, message string) *models.BookingIntent {
	intent := &models.BookingIntent{
		ServiceType:            normalizeEnum(fields["serviceType"], models.ServiceTypes, models.ServiceOther),
		ProblemDescription:     coerceString(fields["problemDescription"]),
		Urgency:                normalizeEnum(fields["urgency"], models.UrgencyLevels, models.UrgencyLow),
		HasSafetyRisk:          coerceBool(fields["hasSafetyRisk"]),
		EstimatedDurationHours: coerceString(fields["estimatedDurationHours"]),
		PreferredTimeframe:     normalizeEnum(fields["preferredTimeframe"], models.Timeframes, models.TimeframeFlexible),
		SpecialRequirements:    coerceStrings(fields["specialRequirements"]),
		Keywords:               lowerAll(coerceStrings(fields["keywords"])),
		Confidence:             models.ClampConfidence(coerceFloat(fields["confidence"])),
	}
	if intent.ProblemDescription == "" {
		intent.ProblemDescription = message
	}
	return intent
}

func normalizeEnum(v any, allowed []string, fallback string) string {
	return models.NormalizeEnum(coerceString(v), allowed, fallback)
}

func lowerAll(values []string) []string {
	for i, v := range values {
		values[i] = strings.ToLower(v)
	}
	return values
}

// generate runs one bounded generation call and records its latency.
func generate(ctx context.Context, generator TextGenerator, timeout time.Duration, operation, prompt string) (string, error) {
	if generator == nil {
		return "", errors.New("no text generator configured")
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	out, err := generator.GenerateContent(ctx, prompt)
	metrics.GenerationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.GenerationFailures.WithLabelValues(operation).Inc()
		return "", err
	}
	return out, nil
}
