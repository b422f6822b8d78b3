package validation

// Code is the machine-readable kind of a validation failure.
type Code string

const (
	CodeMalformedJSON          Code = "MALFORMED_JSON"
	CodeMissingRequiredField   Code = "MISSING_REQUIRED_FIELD"
	CodeInvalidEmail           Code = "INVALID_EMAIL"
	CodeInvalidNumber          Code = "INVALID_NUMBER"
	CodeInvalidEfficiencyRange Code = "INVALID_EFFICIENCY_RANGE"
)

// Error is a client-facing validation failure. Message is safe to return to
// the visitor verbatim.
type Error struct {
	Code    Code
	Field   string
	Message string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

func fail(code Code, field, message string) *Error {
	return &Error{Code: code, Field: field, Message: message}
}

func missing(field, label string) *Error {
	return fail(CodeMissingRequiredField, field, label+" is required")
}
