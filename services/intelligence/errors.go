package ai

import "fmt"

const (
	CodeEmptyMessage     = "EMPTY_MESSAGE"
	CodeGenerationFailed = "GENERATION_FAILED"
	CodeNoJSON           = "NO_JSON_OBJECT"
	CodeMalformedJSON    = "MALFORMED_JSON"
	CodeSchemaViolation  = "SCHEMA_VIOLATION"
)

// ExtractionError reports that a message could not be turned into a BookingIntent.
type ExtractionError struct {
	Code    string
	Message string
	Err     error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ExtractionError [%s]: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("ExtractionError [%s]: %s", e.Code, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
