// Package dateutil resolves the document date setting.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when "auto" is specified without a format.
const DefaultDateFormat = "YYYY-MM-DD"

// Today is the LaTeX macro printing the compilation date.
const Today = `\today`

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// dateTokens is ordered longest first for greedy matching.
var dateTokens = []struct {
	token  string
	render func(t time.Time) string
}{
	{"YYYY", func(t time.Time) string { return strconv.Itoa(t.Year()) }},
	{"MMMM", func(t time.Time) string { return t.Month().String() }},
	{"MMM", func(t time.Time) string { return t.Month().String()[:3] }},
	{"YY", func(t time.Time) string { return fmt.Sprintf("%02d", t.Year()%100) }},
	{"MM", func(t time.Time) string { return fmt.Sprintf("%02d", int(t.Month())) }},
	{"DD", func(t time.Time) string { return fmt.Sprintf("%02d", t.Day()) }},
	{"M", func(t time.Time) string { return strconv.Itoa(int(t.Month())) }},
	{"D", func(t time.Time) string { return strconv.Itoa(t.Day()) }},
}

// Format renders t with a token format: YYYY, YY, MMMM, MMM, MM, M, DD, D.
// Text in brackets is copied literally; other characters are kept as is.
func Format(format string, t time.Time) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var b strings.Builder
	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			b.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}
		matched := false
		for _, tok := range dateTokens {
			if strings.HasPrefix(format[i:], tok.token) {
				b.WriteString(tok.render(t))
				i += len(tok.token)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(format[i])
			i++
		}
	}
	return b.String(), nil
}

// Resolve turns a configured date into the \date argument:
//   - "today" becomes \today, evaluated when the document compiles
//   - "auto" becomes now in YYYY-MM-DD
//   - "auto:FORMAT" or "auto:preset" uses a custom format
//   - any other value is returned unchanged
func Resolve(value string, now time.Time) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(value))
	switch {
	case lower == "today":
		return Today, nil
	case lower == "auto":
		return Format(DefaultDateFormat, now)
	case strings.HasPrefix(lower, "auto:"):
		format := strings.TrimSpace(value)[len("auto:"):]
		if preset, ok := DatePresets[strings.ToLower(format)]; ok {
			format = preset
		}
		return Format(format, now)
	case strings.HasPrefix(lower, "auto"):
		return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	default:
		return value, nil
	}
}
