package ai

import (
	_ "embed"
	"strings"

	"fixmate/models"
)

//go:embed prompts/intent.md
var intentPromptTemplate string

//go:embed prompts/clarify.md
var clarifyPromptTemplate string

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + v + `"`
	}
	return strings.Join(quoted, ", ")
}

func buildIntentPrompt(message, location string) string {
	if strings.TrimSpace(location) == "" {
		location = "not provided"
	}
	return strings.NewReplacer(
		"{{MESSAGE}}", message,
		"{{LOCATION}}", location,
		"{{SERVICE_TYPES}}", quoteList(models.ServiceTypes),
		"{{URGENCY_LEVELS}}", quoteList(models.UrgencyLevels),
		"{{TIMEFRAMES}}", quoteList(models.Timeframes),
	).Replace(intentPromptTemplate)
}

func buildClarifyPrompt(intent models.BookingIntent) string {
	return strings.NewReplacer(
		"{{SERVICE_TYPE}}", intent.ServiceType,
		"{{PROBLEM}}", intent.ProblemDescription,
		"{{URGENCY}}", intent.Urgency,
	).Replace(clarifyPromptTemplate)
}
