package logger

import "strings"

// RedactEmail masks an email address for safe logging.
// "ada.lovelace@example.com" → "ad***@example.com"
// Short local parts (≤2 chars) are fully masked: "ab@example.com" → "***@example.com".
// Values without exactly one "@" (phone numbers, names) are masked entirely.
func RedactEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "***@***"
	}
	name := parts[0]
	if len(name) > 2 {
		return name[:2] + "***@" + parts[1]
	}
	return "***@" + parts[1]
}
