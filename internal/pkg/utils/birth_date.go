package utils

import (
	"fmt"
	"patient-intake-service/internal/pkg/dto/requests"
	"patient-intake-service/internal/pkg/exceptions"
	"strings"
	"time"
)

// Layouts the date picker and API clients are known to send.
var birthDateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
	time.RFC3339Nano,
}

// NormalizeBirthDate reduces the picker input to a calendar date at
// midnight UTC. Timestamps keep the calendar day of their own offset, so
// "1990-01-15T00:00:00+07:00" stays January 15th.
func NormalizeBirthDate(input requests.BirthDateInput) (time.Time, error) {
	if input.Time != nil && !input.Time.IsZero() {
		return checkBirthDate(calendarDate(*input.Time), input.Time.String())
	}

	raw := strings.TrimSpace(input.Text)
	if raw == "" {
		return time.Time{}, exceptions.ErrMissingBirthDate(nil)
	}

	var lastErr error
	for _, layout := range birthDateLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			return checkBirthDate(calendarDate(parsed), raw)
		}
		lastErr = err
	}
	return time.Time{}, exceptions.ErrInvalidBirthDate(lastErr, raw)
}

func checkBirthDate(date time.Time, raw string) (time.Time, error) {
	if date.After(calendarDate(time.Now())) {
		return time.Time{}, exceptions.ErrInvalidBirthDate(fmt.Errorf("date is in the future"), raw)
	}
	return date, nil
}

func calendarDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
