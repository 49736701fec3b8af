package rrule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerialInstanceGenerator_DailyInterval(t *testing.T) {
	dtStart := NewDate(1997, 9, 2)
	year := newSerialYearGenerator(1, dtStart)
	month := newSerialMonthGenerator(1, dtStart)
	day := newSerialDayGenerator(3, dtStart)
	filter := newAndFilter(nil)

	gen := NewSerialInstanceGenerator(filter, year, month, day, dtStart)

	want := []int{2, 5, 8, 11}
	for _, w := range want {
		d, ok := gen.Next()
		require.True(t, ok)
		require.Equal(t, w, d.Day)
	}
}

func TestSerialInstanceGenerator_NonProductiveGuardExhausts(t *testing.T) {
	// BYMONTHDAY=30 in February never matches; the generator chain must
	// give up instead of looping forever.
	dtStart := NewDate(1997, 2, 1)
	year := newSerialYearGenerator(1, dtStart)
	month := newByMonthGenerator([]int{2}, dtStart)
	day := newByMonthDayGenerator([]int{30}, dtStart)
	filter := newAndFilter(nil)

	gen := NewSerialInstanceGenerator(filter, year, month, day, dtStart)

	_, ok := gen.Next()
	require.False(t, ok)
}

func TestBySetPosInstanceGenerator_SelectsLastWeekdayOfMonth(t *testing.T) {
	dtStart := NewDate(1997, 9, 29)
	year := newSerialYearGenerator(1, dtStart)
	month := newSerialMonthGenerator(1, dtStart)
	weekdays := []WeekdayNum{{Day: MO}, {Day: TU}, {Day: WE}, {Day: TH}, {Day: FR}}
	day := newByDayGenerator(weekdays, false, dtStart)
	filter := newAndFilter(nil)

	gen := NewBySetPosInstanceGenerator([]int{-1}, MONTHLY, MO, filter, year, month, day, dtStart)

	want := []struct{ month, day int }{
		{9, 30},
		{10, 31},
		{11, 28},
	}
	for _, w := range want {
		d, ok := gen.Next()
		require.True(t, ok)
		require.Equal(t, w.month, d.Month)
		require.Equal(t, w.day, d.Day)
	}
}

func TestSelectBySetPos_PositiveNegativeAndDedup(t *testing.T) {
	bucket := []DateValue{
		NewDate(1997, 9, 1),
		NewDate(1997, 9, 8),
		NewDate(1997, 9, 15),
		NewDate(1997, 9, 22),
	}
	got := selectBySetPos(bucket, []int{1, -1, -1})
	require.Equal(t, []DateValue{NewDate(1997, 9, 1), NewDate(1997, 9, 22)}, got)
}
