package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var dateFormatPattern = regexp.MustCompile(`(?i)(^(y{4}|y{2})[./-](m{1,2})[./-](d{1,2})$)|(^(m{1,2})[./-](d{1,2})[./-]((y{4}|y{2})$))|(^(d{1,2})[./-](m{1,2})[./-]((y{4}|y{2})$))`)

// Date checks a calendar date written in opts' format, then its bounds.
// A malformed format panics with ErrMalformedFormat.
func (v *Validator) Date(field, value string, opts Bag) *Validator {
	o := resolve[DateOptions](v, "date", opts, DefaultDateOptions())
	if err := checkDateFormat(o); err != nil {
		panic(err)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		if o.RequiredInput {
			v.record(field, required(field))
		}
		return v
	}

	date, e, ok := parseDate(field, value, o, v.now())
	if !ok {
		v.record(field, e)
		return v
	}

	today := truncateDay(v.now())
	v.first(field,
		Rule{
			Check: func() bool { return o.MinDate == nil || !date.Before(truncateDay(*o.MinDate)) },
			Error: fail(field, "validation.date.min", "date too early", map[string]any{"min": formatBound(o.MinDate)}),
		},
		Rule{
			Check: func() bool { return o.MaxDate == nil || !date.After(truncateDay(*o.MaxDate)) },
			Error: fail(field, "validation.date.max", "date too late", map[string]any{"max": formatBound(o.MaxDate)}),
		},
		Rule{
			Check: func() bool { return o.AllowFuture || !date.After(today) },
			Error: fail(field, "validation.date.future", "future date", nil),
		},
		Rule{
			Check: func() bool { return o.AllowPast || !date.Before(today) },
			Error: fail(field, "validation.date.past", "past date", nil),
		},
	)
	return v
}

// parseDate splits value and format on their delimiters and assembles a UTC date.
func parseDate(field, value string, o DateOptions, now time.Time) (time.Time, ValidationError, bool) {
	formatErr := fail(field, "validation.date.format", "invalid date format", map[string]any{"format": o.Format})
	invalid := fail(field, "validation.date.invalid", "date does not exist", nil)

	if o.StrictMode && len(value) != len(o.Format) {
		return time.Time{}, formatErr, false
	}

	formatDelim := findDelimiter(o.Format, o.Delimiters)
	dateDelim := formatDelim
	if !o.StrictMode {
		dateDelim = findDelimiter(value, o.Delimiters)
	}
	if dateDelim == "" {
		return time.Time{}, formatErr, false
	}

	words := strings.Split(value, dateDelim)
	layout := strings.Split(strings.ToLower(o.Format), formatDelim)
	if len(words) != len(layout) {
		return time.Time{}, formatErr, false
	}

	parts := make(map[byte]string, 3)
	for _, pair := range zip(words, layout) {
		word, unit := pair[0], pair[1]
		if word == "" || len(word) != len(unit) || !digitsPattern.MatchString(word) {
			return time.Time{}, formatErr, false
		}
		parts[unit[0]] = word
	}

	year, errY := strconv.Atoi(parts['y'])
	month, errM := strconv.Atoi(parts['m'])
	day, errD := strconv.Atoi(parts['d'])
	if errY != nil || errM != nil || errD != nil {
		return time.Time{}, formatErr, false
	}
	if len(parts['y']) == 2 {
		year = expandYear(year, now.Year())
	}
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, invalid, false
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day {
		return time.Time{}, invalid, false
	}
	return date, ValidationError{}, true
}

// expandYear maps a two-digit year below the current two-digit year to the
// 2000s and every other value to the 1900s.
func expandYear(yy, currentYear int) int {
	if yy < currentYear%100 {
		return 2000 + yy
	}
	return 1900 + yy
}

func findDelimiter(s string, delimiters []string) string {
	for _, d := range delimiters {
		if d != "" && strings.Contains(s, d) {
			return d
		}
	}
	return ""
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func formatBound(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}
