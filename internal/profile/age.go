package profile

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format used by the dob field.
const DateLayout = "2006-01-02"

// ParseDate parses a dob value as a calendar date in UTC.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return parsed, nil
}

// Age returns the number of birthdays reached between dob and today. Only
// the calendar components of both values are read, so callers should pass
// today in the location whose calendar should decide. A dob after today
// yields a negative age.
func Age(dob time.Time, today time.Time) int {
	age := today.Year() - dob.Year()
	if today.Month() < dob.Month() || (today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}
	return age
}

// AgeOn parses dob and computes Age against today. The bool is false when
// dob is not a calendar date.
func AgeOn(dob string, today time.Time) (int, bool) {
	parsed, err := ParseDate(dob)
	if err != nil {
		return 0, false
	}
	return Age(parsed, today), true
}
