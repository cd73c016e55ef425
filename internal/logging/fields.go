package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldError      = "error"
	FieldVersion    = "version"
	FieldTopic      = "topic"
	FieldSubject    = "subject"
	FieldStatusCode = "status_code"
	FieldRows       = "rows"
	FieldDurationMS = "duration_ms"
)
