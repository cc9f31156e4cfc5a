// Package normalize converts raw spreadsheet cell values into the normalized
// representations stored in the delivery_data table. Upload cell types are
// unreliable: a numeric column may arrive as a native number, a string with
// currency noise, or an empty cell, so every function here is total over
// {number, string, nil} and never fails.
package normalize

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Excel stores dates as a day count where serial 1 maps to 1899-12-31 (the
// format counts 1900 as a leap year, so the effective epoch is 1899-12-30).
var serialDateEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var (
	isoDateRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeOfDayRe = regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2})?$`)
)

// Layouts tried for free-form date strings, most common first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006",
	"2006/01/02",
}

// Date converts a cell value to YYYY-MM-DD. Numeric values are Excel day
// serials; strings already in YYYY-MM-DD pass through; other strings get
// generic parsing. When nothing works the result falls back to today and the
// second return is false so the caller can choose between keeping the
// fallback and rejecting the row.
func Date(value any, today time.Time) (string, bool) {
	fallback := today.Format(time.DateOnly)

	if f, ok := asNumber(value); ok {
		days := int(math.Floor(f))
		return serialDateEpoch.AddDate(0, 0, days).Format(time.DateOnly), true
	}

	s := strings.TrimSpace(String(value))
	if s == "" {
		return fallback, false
	}
	if isoDateRe.MatchString(s) {
		return s, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(time.DateOnly), true
		}
	}
	return fallback, false
}

// TimeOfDay converts a cell value to HH:MM:SS. Numeric values are fractions
// of a 24-hour day (Excel's time representation); strings must look like
// H:MM or H:MM:SS, with :00 appended in the short form. Anything else
// normalizes to 00:00:00 with ok=false.
func TimeOfDay(value any) (string, bool) {
	if f, ok := asNumber(value); ok {
		if f == 0 {
			return "00:00:00", true
		}
		total := int(math.Round(f * 24 * 60 * 60))
		hours := total / 3600
		minutes := (total % 3600) / 60
		seconds := total % 60
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds), true
	}

	s := strings.TrimSpace(String(value))
	if s == "" {
		return "00:00:00", false
	}
	if timeOfDayRe.MatchString(s) {
		if strings.Count(s, ":") == 1 {
			return s + ":00", true
		}
		return s, true
	}
	return "00:00:00", false
}

// Int parses a cell value as an integer, stripping everything except digits
// and a leading minus sign. Blank or garbage input coerces to 0.
func Int(value any) int {
	if f, ok := asNumber(value); ok {
		return int(f)
	}
	s := digitsOnly(String(value), "")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// Float parses a cell value as a float, stripping everything except digits,
// the decimal point and a leading minus sign. Blank or garbage input coerces
// to 0.
func Float(value any) float64 {
	if f, ok := asNumber(value); ok {
		return f
	}
	s := digitsOnly(String(value), ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// String stringifies and trims a cell value. Nil coerces to the empty string.
// Whole floats print without a decimal part so numeric id columns survive the
// float64 round-trip intact.
func String(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// digitsOnly keeps digits, any runes in extra, and a minus sign only when it
// is the first kept character.
func digitsOnly(s, extra string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case strings.ContainsRune(extra, r):
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
