package errors

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxTextLength is the maximum accepted length for an input passage.
// The discourse parser degrades badly beyond a few thousand characters, and
// a bound keeps a hostile caller from shipping megabytes through the API.
const MaxTextLength = 20_000

// ValidateText validates an input passage before it is sent to the parsing
// service. The field name is used in the error message ("reference",
// "compared").
//
// The rules are intentionally conservative:
//   - No empty or whitespace-only passages
//   - Valid UTF-8
//   - No null bytes or other control characters (newlines and tabs allowed)
//   - Maximum length of MaxTextLength characters
func ValidateText(field, text string) error {
	if strings.TrimSpace(text) == "" {
		return New(ErrCodeEmptyText, "%s text cannot be empty", field)
	}
	if !utf8.ValidString(text) {
		return New(ErrCodeInvalidInput, "%s text is not valid UTF-8", field)
	}
	if len(text) > MaxTextLength {
		return New(ErrCodeInvalidInput, "%s text too long (max %d characters)", field, MaxTextLength)
	}
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return New(ErrCodeInvalidInput, "%s text contains control characters", field)
		}
	}
	return nil
}

// ValidateServerURL validates the parsing-service base URL.
// Only absolute http(s) URLs are accepted.
func ValidateServerURL(raw string) error {
	if raw == "" {
		return New(ErrCodeInvalidServer, "parser URL cannot be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return Wrap(ErrCodeInvalidServer, err, "invalid parser URL %q", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return New(ErrCodeInvalidServer, "parser URL must be http or https, got %q", raw)
	}
	if u.Host == "" {
		return New(ErrCodeInvalidServer, "parser URL missing host: %q", raw)
	}
	return nil
}
