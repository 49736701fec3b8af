package rrule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2024, 2, 29}, // leap year
		{2023, 2, 28},
		{2000, 2, 29}, // divisible by 400
		{1900, 2, 28}, // divisible by 100 but not 400
		{2023, 4, 30},
		{2023, 12, 31},
	}
	for _, c := range cases {
		require.Equal(t, c.want, daysInMonth(c.year, c.month))
	}
}

func TestWeekdayOf(t *testing.T) {
	// 1997-09-02 is a Tuesday.
	require.Equal(t, TU, weekdayOf(1997, 9, 2))
	// 1997-01-01 is a Wednesday.
	require.Equal(t, WE, weekdayOf(1997, 1, 1))
}

func TestDayOfYearRoundTrip(t *testing.T) {
	yday := dayOfYear(1997, 9, 2)
	m, d := dateFromYearDay(1997, yday)
	require.Equal(t, 9, m)
	require.Equal(t, 2, d)
}

func TestWeekdaysInMonth(t *testing.T) {
	// Tuesdays in September 1997: 2, 9, 16, 23, 30.
	got := weekdaysInMonth(1997, 9, TU)
	require.Equal(t, []int{2, 9, 16, 23, 30}, got)
}

func TestNthWeekdayOfMonth(t *testing.T) {
	// Last Friday of September 1997 is the 26th.
	got := nthWeekdayOfMonth(1997, 9, WeekdayNum{Ordinal: -1, Day: FR})
	require.Equal(t, []int{26}, got)

	// Out-of-range ordinal yields nothing.
	none := nthWeekdayOfMonth(1997, 9, WeekdayNum{Ordinal: 10, Day: FR})
	require.Nil(t, none)

	// Ordinal 0 means "every".
	all := nthWeekdayOfMonth(1997, 9, WeekdayNum{Ordinal: 0, Day: TU})
	require.Equal(t, []int{2, 9, 16, 23, 30}, all)
}

func TestIsoWeekStartAndWeeksInISOYear(t *testing.T) {
	y, m, d := isoWeekStart(1997, MO)
	require.Equal(t, 1996, y)
	require.Equal(t, 12, m)
	require.Equal(t, 30, d)

	weeks := weeksInISOYear(1997, MO)
	require.True(t, weeks == 52 || weeks == 53)
}

func TestAddDays(t *testing.T) {
	y, m, d := addDays(1997, 9, 30, 1)
	require.Equal(t, 1997, y)
	require.Equal(t, 10, m)
	require.Equal(t, 1, d)

	y, m, d = addDays(1997, 1, 1, -1)
	require.Equal(t, 1996, y)
	require.Equal(t, 12, m)
	require.Equal(t, 31, d)
}
