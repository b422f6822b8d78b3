package validation

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// decode parses a request body into dst. Anything that is not a single JSON
// object matching dst's shape is MALFORMED_JSON. Unknown fields are ignored.
func decode(body []byte, dst any) *Error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fail(CodeMalformedJSON, "", "Request body must be a JSON object")
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if err := dec.Decode(dst); err != nil {
		return fail(CodeMalformedJSON, "", "Invalid JSON payload")
	}
	if dec.More() {
		return fail(CodeMalformedJSON, "", "Invalid JSON payload")
	}
	return nil
}

// normalizeEmail trims and lowercases. An address is recognized when it
// contains both "@" and "."; nothing stricter is checked.
func normalizeEmail(raw string) (string, *Error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", missing("email", "Email")
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return "", fail(CodeInvalidEmail, "email", "Please provide a valid email address")
	}
	return email, nil
}

// requireText trims a required free-text field.
func requireText(raw, field, label string) (string, *Error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", missing(field, label)
	}
	return v, nil
}

// parseNumber reads a JSON number or numeric string. present is false for an
// absent, null or blank value. NaN and ±Inf are rejected.
func parseNumber(raw json.RawMessage, field string) (value float64, present bool, verr *Error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return 0, false, nil
	}

	var text string
	if trimmed[0] == '"' {
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return 0, true, invalidNumber(field)
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return 0, false, nil
		}
	} else {
		text = string(trimmed)
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, true, invalidNumber(field)
	}
	return v, true, nil
}

func invalidNumber(field string) *Error {
	return fail(CodeInvalidNumber, field, field+" must be a valid number")
}
