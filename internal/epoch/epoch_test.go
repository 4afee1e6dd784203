package epoch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randytsao24/iss-tracker/internal/models"
)

func TestParse(t *testing.T) {
	got, err := Parse("2024-047T23:59:00.000Z")
	require.NoError(t, err)
	assert.Equal(t, Structured{Year: 2024, DayOfYear: 47, Hour: 23, Minute: 59}, got)

	got, err = Parse("2025-002T01:01:00.000Z")
	require.NoError(t, err)
	assert.Equal(t, Structured{Year: 2025, DayOfYear: 2, Hour: 1, Minute: 1}, got)
}

func TestParseKeepsDayOfYearLiteral(t *testing.T) {
	got, err := Parse("2023-400T00:00:00.000Z")
	require.NoError(t, err)
	assert.Equal(t, 400, got.DayOfYear)
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no T", "2024-047 23:59:00.000Z"},
		{"two T", "2024-047T23:59T00.000Z"},
		{"missing day", "2024T23:59:00.000Z"},
		{"extra dash", "2024-02-16T23:59:00.000Z"},
		{"missing seconds", "2024-047T23:59"},
		{"empty seconds", "2024-047T23:59:"},
		{"letters in year", "20x4-047T23:59:00.000Z"},
		{"letters in minute", "2024-047T23:mm:00.000Z"},
		{"fractional hour", "2024-047T23.5:59:00.000Z"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			require.ErrorIs(t, err, ErrFormat)
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, s := range []Structured{
		{Year: 2024, DayOfYear: 1, Hour: 0, Minute: 0},
		{Year: 2024, DayOfYear: 47, Hour: 23, Minute: 59},
		{Year: 2023, DayOfYear: 365, Hour: 12, Minute: 4},
		{Year: 2024, DayOfYear: 366, Hour: 9, Minute: 30},
	} {
		got, err := Parse(Format(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2024))
	assert.True(t, IsLeapYear(2000))
	assert.False(t, IsLeapYear(1900))
	assert.False(t, IsLeapYear(2023))
}

func TestFromWallClock(t *testing.T) {
	tests := []struct {
		name string
		wc   models.WallClock
		want Structured
	}{
		{
			name: "mid february",
			wc:   models.WallClock{Year: 2024, Month: 2, Day: 17, Hour: 0, Minute: 9, Second: 0},
			want: Structured{Year: 2024, DayOfYear: 48, Hour: 0, Minute: 9},
		},
		{
			name: "march in a leap year",
			wc:   models.WallClock{Year: 2024, Month: 3, Day: 1, Hour: 6, Minute: 0, Second: 0},
			want: Structured{Year: 2024, DayOfYear: 61, Hour: 6, Minute: 0},
		},
		{
			name: "march in a common year",
			wc:   models.WallClock{Year: 2023, Month: 3, Day: 1, Hour: 6, Minute: 0, Second: 0},
			want: Structured{Year: 2023, DayOfYear: 60, Hour: 6, Minute: 0},
		},
		{
			name: "century year is not leap",
			wc:   models.WallClock{Year: 1900, Month: 12, Day: 31, Hour: 0, Minute: 0, Second: 0},
			want: Structured{Year: 1900, DayOfYear: 365, Hour: 0, Minute: 0},
		},
		{
			name: "seconds below 30 round down",
			wc:   models.WallClock{Year: 2024, Month: 1, Day: 10, Hour: 3, Minute: 15, Second: 29},
			want: Structured{Year: 2024, DayOfYear: 10, Hour: 3, Minute: 15},
		},
		{
			name: "seconds at 30 round up",
			wc:   models.WallClock{Year: 2024, Month: 1, Day: 10, Hour: 3, Minute: 15, Second: 30},
			want: Structured{Year: 2024, DayOfYear: 10, Hour: 3, Minute: 16},
		},
		{
			name: "minute carries into hour",
			wc:   models.WallClock{Year: 2024, Month: 1, Day: 10, Hour: 3, Minute: 59, Second: 45},
			want: Structured{Year: 2024, DayOfYear: 10, Hour: 4, Minute: 0},
		},
		{
			name: "hour carries into day",
			wc:   models.WallClock{Year: 2024, Month: 2, Day: 16, Hour: 23, Minute: 59, Second: 30},
			want: Structured{Year: 2024, DayOfYear: 48, Hour: 0, Minute: 0},
		},
		{
			name: "common year wraps to day 1 without changing year",
			wc:   models.WallClock{Year: 2023, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59},
			want: Structured{Year: 2023, DayOfYear: 1, Hour: 0, Minute: 0},
		},
		{
			name: "leap year wraps after day 366",
			wc:   models.WallClock{Year: 2024, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 30},
			want: Structured{Year: 2024, DayOfYear: 1, Hour: 0, Minute: 0},
		},
		{
			name: "leap year keeps day 366",
			wc:   models.WallClock{Year: 2024, Month: 12, Day: 31, Hour: 12, Minute: 0, Second: 0},
			want: Structured{Year: 2024, DayOfYear: 366, Hour: 12, Minute: 0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FromWallClock(tc.wc))
		})
	}
}

func TestFromWallClockMatchesTimeYearDay(t *testing.T) {
	start := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	for d := 0; d < 366; d++ {
		ts := start.AddDate(0, 0, d)
		got := FromWallClock(models.WallClockFrom(ts))
		require.Equal(t, ts.YearDay(), got.DayOfYear, "date %s", ts.Format(time.DateOnly))
	}
}

func TestMinutes(t *testing.T) {
	s := Structured{Year: 2024, DayOfYear: 48, Hour: 0, Minute: 9}
	assert.Equal(t, 48*1440+9, s.Minutes())

	other := Structured{Year: 1999, DayOfYear: 48, Hour: 0, Minute: 9}
	assert.Equal(t, s.Minutes(), other.Minutes())
}

func TestTime(t *testing.T) {
	got, err := Time("2024-048T00:07:12.500Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 17, 0, 7, 12, 500_000_000, time.UTC), got)

	got, err = Time("2024-048T00:07:12.100Z")
	require.NoError(t, err)
	assert.Equal(t, 100_000_000, got.Nanosecond())

	got, err = Time("2024-048T00:07:59.999Z")
	require.NoError(t, err)
	assert.Equal(t, 999_000_000, got.Nanosecond())
	assert.Equal(t, 59, got.Second())

	_, err = Time("2024-048T00:07:xx.000Z")
	require.ErrorIs(t, err, ErrFormat)

	_, err = Time("garbage")
	require.ErrorIs(t, err, ErrFormat)
}
