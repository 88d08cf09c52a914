package ai

import (
	"context"
	"strings"

	"fixmate/models"
	"fixmate/utils"

	"go.uber.org/zap"
)

// FallbackQuestions are asked whenever the model cannot produce usable questions.
var FallbackQuestions = []string{
	"Could you describe the problem in more detail, including what is broken and where?",
	"When would you like a professional to visit?",
}

type ClarificationGenerator struct {
	generator TextGenerator
	settings  Settings
	logger    *zap.Logger
}

func NewClarificationGenerator(generator TextGenerator, settings Settings, logger *zap.Logger) *ClarificationGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClarificationGenerator{generator: generator, settings: settings.withDefaults(), logger: logger}
}

// GenerateClarifications returns up to MaxQuestions follow-up questions. It never fails:
// upstream problems yield FallbackQuestions.
func (c *ClarificationGenerator) GenerateClarifications(ctx context.Context, intent models.BookingIntent) []string {
	if intent.Confidence > c.settings.ClarifySkipConfidence {
		return []string{}
	}

	raw, err := generate(ctx, c.generator, c.settings.Timeout, "clarify", buildClarifyPrompt(intent))
	if err != nil {
		c.logger.Warn("GenerateClarifications: generation failed, using fallback questions", zap.Error(err))
		return fallbackQuestions()
	}

	questions := parseQuestions(raw, c.settings.MaxQuestions)
	if len(questions) == 0 {
		c.logger.Warn("GenerateClarifications: no questions in response, using fallback questions",
			zap.String("response", utils.TruncateForLog(raw, previewLimit)))
		return fallbackQuestions()
	}
	return questions
}

func parseQuestions(raw string, limit int) []string {
	questions := make([]string, 0, limit)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "-") {
			continue
		}
		q := strings.TrimSpace(strings.TrimLeft(line, "- "))
		if q == "" {
			continue
		}
		questions = append(questions, q)
		if len(questions) == limit {
			break
		}
	}
	return questions
}

func fallbackQuestions() []string {
	return append([]string(nil), FallbackQuestions...)
}
