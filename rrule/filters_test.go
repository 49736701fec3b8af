package rrule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAndFilter_EmptyMatchesEverything(t *testing.T) {
	f := newAndFilter(nil)
	require.True(t, f.Matches(NewDate(1997, 1, 1)))
}

func TestAndFilter_RequiresAll(t *testing.T) {
	alwaysTrue := FilterFunc(func(DateValue) bool { return true })
	alwaysFalse := FilterFunc(func(DateValue) bool { return false })

	require.True(t, newAndFilter([]Filter{alwaysTrue}).Matches(DateValue{}))
	require.False(t, newAndFilter([]Filter{alwaysTrue, alwaysFalse}).Matches(DateValue{}))
}

func TestByDayFilter_MatchesOnlyListedOrdinal(t *testing.T) {
	f := byDayFilter([]WeekdayNum{{Ordinal: -1, Day: FR}}, false, MO)

	require.True(t, f.Matches(NewDate(1997, 9, 26)))  // last Friday of Sept 1997
	require.False(t, f.Matches(NewDate(1997, 9, 19))) // a Friday, but not the last
}

func TestByMonthDayFilter_NegativeIndex(t *testing.T) {
	f := byMonthDayFilter([]int{-1})

	require.True(t, f.Matches(NewDate(1997, 2, 28)))
	require.False(t, f.Matches(NewDate(1997, 2, 27)))
}

func TestWeekIntervalFilter_SelectsEveryNthWeek(t *testing.T) {
	dtStart := NewDate(1997, 9, 2) // a Tuesday
	f := weekIntervalFilter(2, MO, dtStart)

	require.True(t, f.Matches(NewDate(1997, 9, 2)))
	require.False(t, f.Matches(NewDate(1997, 9, 9)), "one week later falls in the skipped week")
	require.True(t, f.Matches(NewDate(1997, 9, 16)), "two weeks later is back in phase")
}
