// Package epoch converts between the feed's "YYYY-DDDTHH:MM:SS.mmmZ" epoch
// strings, civil wall-clock times, and the structured minute-resolution form
// used to compare them.
package epoch

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/randytsao24/iss-tracker/internal/models"
)

// ErrFormat reports a malformed epoch string
var ErrFormat = errors.New("malformed epoch")

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

// cumulative days before the first of each month in a common year
var daysBeforeMonth = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// Structured is an epoch reduced to year, day-of-year, hour and minute
type Structured struct {
	Year      int `json:"year"`
	DayOfYear int `json:"day_of_year"`
	Hour      int `json:"hour"`
	Minute    int `json:"minute"`
}

// Minutes returns the minute count since the start of day zero of the year.
// The year itself is not part of the count.
func (s Structured) Minutes() int {
	return s.DayOfYear*minutesPerDay + s.Hour*minutesPerHour + s.Minute
}

// Parse splits an epoch string into its structured fields. The day-of-year is
// taken as written; seconds and milliseconds are dropped.
func Parse(s string) (Structured, error) {
	date, clock, ok := strings.Cut(s, "T")
	if !ok || strings.Contains(clock, "T") {
		return Structured{}, fmt.Errorf("%w: %q: expected one 'T' separator", ErrFormat, s)
	}

	dateParts := strings.Split(date, "-")
	if len(dateParts) != 2 {
		return Structured{}, fmt.Errorf("%w: %q: expected YYYY-DDD date", ErrFormat, s)
	}
	clockParts := strings.Split(clock, ":")
	if len(clockParts) != 3 || clockParts[2] == "" {
		return Structured{}, fmt.Errorf("%w: %q: expected HH:MM:SS time", ErrFormat, s)
	}

	fields := []string{dateParts[0], dateParts[1], clockParts[0], clockParts[1]}
	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Structured{}, fmt.Errorf("%w: %q: field %q is not an integer", ErrFormat, s, f)
		}
		values[i] = v
	}

	return Structured{
		Year:      values[0],
		DayOfYear: values[1],
		Hour:      values[2],
		Minute:    values[3],
	}, nil
}

// Format renders s in the feed's epoch layout with zero seconds
func Format(s Structured) string {
	return fmt.Sprintf("%04d-%03dT%02d:%02d:00.000Z", s.Year, s.DayOfYear, s.Hour, s.Minute)
}

// IsLeapYear reports whether year is a Gregorian leap year
func IsLeapYear(year int) bool {
	if year%4 != 0 {
		return false
	}
	if year%100 == 0 {
		return year%400 == 0
	}
	return true
}

// FromWallClock converts a civil date and time into structured form, rounding
// to the nearest minute. Carries propagate minute to hour to day; a day past
// the end of the year wraps to day 1 of the same year.
func FromWallClock(wc models.WallClock) Structured {
	day := wc.Day + daysBeforeMonth[wc.Month-1]
	if IsLeapYear(wc.Year) && wc.Month > 2 {
		day++
	}

	hour, minute := wc.Hour, wc.Minute
	if wc.Second >= 30 {
		minute++
	}
	if minute == 60 {
		hour++
		minute = 0
	}
	if hour == 24 {
		hour = 0
		day++
	}

	daysInYear := 365
	if IsLeapYear(wc.Year) {
		daysInYear = 366
	}
	// The year stays as given when the day wraps.
	if day > daysInYear {
		day = 1
	}

	return Structured{
		Year:      wc.Year,
		DayOfYear: day,
		Hour:      hour,
		Minute:    minute,
	}
}

// Time parses an epoch string into an instant in UTC, keeping seconds and
// fractional seconds
func Time(s string) (time.Time, error) {
	st, err := Parse(s)
	if err != nil {
		return time.Time{}, err
	}

	_, clock, _ := strings.Cut(s, "T")
	secField := strings.TrimSuffix(strings.Split(clock, ":")[2], "Z")
	secs, err := strconv.ParseFloat(secField, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: seconds %q are not numeric", ErrFormat, s, secField)
	}

	whole := int(secs)
	nanos := int(math.Round((secs - float64(whole)) * float64(time.Second)))

	// time.Date normalises a day-of-year passed as the day of January
	return time.Date(st.Year, time.January, st.DayOfYear, st.Hour, st.Minute, whole, nanos, time.UTC), nil
}
