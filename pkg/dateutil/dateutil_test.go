package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate(" 2024-02-29 ")
	require.NoError(t, err)
	assert.Equal(t, date(2024, 2, 29), got)

	for _, bad := range []string{"", "2023-02-29", "02/01/2024", "2024-1-5"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestAge(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		at    time.Time
		want  int
	}{
		{"birthday today", date(1990, 6, 15), date(2020, 6, 15), 30},
		{"day before birthday", date(1990, 6, 15), date(2020, 6, 14), 29},
		{"earlier month", date(1990, 6, 15), date(2020, 5, 30), 29},
		{"later month", date(1990, 6, 15), date(2020, 7, 1), 30},
		{"leap day birth", date(2000, 2, 29), date(2021, 2, 28), 20},
		{"leap day birth after", date(2000, 2, 29), date(2021, 3, 1), 21},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Age(tt.birth, tt.at))
		})
	}
}

func TestHoldingDays(t *testing.T) {
	tests := []struct {
		name string
		buy  time.Time
		sell time.Time
		want int
	}{
		{"same day", date(2024, 1, 10), date(2024, 1, 10), 0},
		{"one day", date(2024, 1, 10), date(2024, 1, 11), 1},
		{"across leap day", date(2024, 2, 28), date(2024, 3, 1), 2},
		{"full leap year", date(2024, 1, 1), date(2025, 1, 1), 366},
		{"ignores time of day", time.Date(2024, 1, 10, 23, 0, 0, 0, time.UTC), time.Date(2024, 1, 11, 1, 0, 0, 0, time.UTC), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HoldingDays(tt.buy, tt.sell)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := HoldingDays(date(2024, 1, 11), date(2024, 1, 10))
	assert.ErrorContains(t, err, "before buy date")
}

func TestYearsUntilDate(t *testing.T) {
	assert.InDelta(t, 1.0, YearsUntilDate(date(2020, 1, 1), date(2021, 1, 1)), 0.01)
	assert.InDelta(t, 2.5, YearsUntilDate(date(2020, 1, 1), date(2022, 7, 1)), 0.05)
	assert.Less(t, YearsUntilDate(date(2021, 1, 1), date(2020, 1, 1)), 0.0)
}
