package timewindow_test

import (
	"testing"
	"time"

	"github.com/moneytrack/money_tracker_app/internal/utils/timewindow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shanghai = time.FixedZone("CST", 8*60*60)

func TestDateOf(t *testing.T) {
	// 2025-06-11 23:30 UTC is already 2025-06-12 07:30 in UTC+8.
	ref := time.Date(2025, 6, 11, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), timewindow.DateOf(ref, time.UTC))
	assert.Equal(t, time.Date(2025, 6, 12, 0, 0, 0, 0, shanghai), timewindow.DateOf(ref, shanghai))
}

func TestDayWindow(t *testing.T) {
	ref := time.Date(2025, 6, 11, 15, 4, 5, 0, time.UTC)
	w := timewindow.Day(ref, time.UTC)

	assert.Equal(t, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), w.End)
	assert.True(t, w.Contains(ref))
	assert.True(t, w.Contains(w.Start))
	assert.False(t, w.Contains(w.End))
}

func TestWeekWindowStartsMonday(t *testing.T) {
	monday := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ref  time.Time
	}{
		{"monday itself", time.Date(2025, 6, 9, 8, 0, 0, 0, time.UTC)},
		{"midweek wednesday", time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)},
		{"sunday belongs to the same week", time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := timewindow.Week(tt.ref, time.UTC)
			assert.Equal(t, monday, w.Start)
			assert.Equal(t, monday.AddDate(0, 0, 7), w.End)
		})
	}
}

func TestMonthWindow(t *testing.T) {
	w := timewindow.Month(time.Date(2025, 1, 31, 10, 0, 0, 0, time.UTC), time.UTC)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), w.End)
}

func TestPreviousWindowsAbutCurrent(t *testing.T) {
	ref := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)

	day := timewindow.Day(ref, time.UTC)
	prevDay := timewindow.PreviousDay(ref, time.UTC)
	assert.Equal(t, day.Start, prevDay.End)
	assert.Equal(t, day.Start.AddDate(0, 0, -1), prevDay.Start)

	week := timewindow.Week(ref, time.UTC)
	prevWeek := timewindow.PreviousWeek(ref, time.UTC)
	assert.Equal(t, week.Start, prevWeek.End)
	assert.Equal(t, week.Start.AddDate(0, 0, -7), prevWeek.Start)

	month := timewindow.Month(ref, time.UTC)
	prevMonth := timewindow.PreviousMonth(ref, time.UTC)
	assert.Equal(t, month.Start, prevMonth.End)
	assert.Equal(t, month.Start.AddDate(0, -1, 0), prevMonth.Start)
}

func TestPreviousMonthAcrossYearBoundary(t *testing.T) {
	w := timewindow.PreviousMonth(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), time.UTC)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), w.End)
}

func TestTrailingDays(t *testing.T) {
	ref := time.Date(2025, 6, 11, 18, 0, 0, 0, time.UTC)
	windows := timewindow.TrailingDays(ref, 3, time.UTC)

	require.Len(t, windows, 3)
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), windows[0].Start)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), windows[1].Start)
	assert.Equal(t, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), windows[2].Start)
	for _, w := range windows {
		assert.Equal(t, w.Start.AddDate(0, 0, 1), w.End)
	}
	assert.True(t, windows[2].Contains(ref))
}

func TestTrailingDaysNonPositive(t *testing.T) {
	assert.Nil(t, timewindow.TrailingDays(time.Now(), 0, time.UTC))
	assert.Nil(t, timewindow.TrailingDays(time.Now(), -3, time.UTC))
}
