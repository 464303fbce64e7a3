package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// WordCount returns the number of whitespace-separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// TruncateWords returns s unchanged when it holds at most max words,
// otherwise the first max words joined by single spaces. Truncating an
// already-truncated string is a no-op.
func TruncateWords(s string, max int) string {
	fields := strings.Fields(s)
	if len(fields) <= max {
		return s
	}
	return strings.Join(fields[:max], " ")
}

const (
	dayFirstLayout  = "02-01-2006"
	yearFirstLayout = "2006-01-02"
)

// ParseFlexibleDate parses a date that may arrive as either DD-MM-YYYY or
// YYYY-MM-DD. A first segment above 31 cannot be a day, so it is read as a
// year; everything else is read day-first.
func ParseFlexibleDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	first, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}

	layout := dayFirstLayout
	if first > 31 {
		layout = yearFirstLayout
	}
	t, err := time.Parse(layout, s)
	return t, err == nil
}

// FormatDayFirst renders t as DD-MM-YYYY, the format the upstream HR API
// requires on decision payloads.
func FormatDayFirst(t time.Time) string {
	return t.Format(dayFirstLayout)
}

// NormalizeDayFirst reparses an ambiguous date string and renders it
// DD-MM-YYYY. Strings that do not parse are returned unchanged.
func NormalizeDayFirst(s string) string {
	t, ok := ParseFlexibleDate(s)
	if !ok {
		return s
	}
	return FormatDayFirst(t)
}

// Itoa converts an integer to a string.
func Itoa(i int) string {
	return strconv.Itoa(i)
}
