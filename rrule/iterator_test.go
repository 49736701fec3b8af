package rrule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pnreddysvu/google-rfc-2445/rrule"
)

func TestRRuleIterator_Monotonicity(t *testing.T) {
	dtStart := rrule.NewDate(1997, 9, 2)
	rule := mustRule(t, "FREQ=DAILY;INTERVAL=3")

	it, err := rrule.NewRuleIterator(rule, dtStart, time.UTC, nil)
	require.NoError(t, err)

	got := collect(t, it, 50)
	for i := 1; i < len(got); i++ {
		require.True(t, got[i-1].Before(got[i]), "emission %d did not strictly increase", i)
	}
}

func TestRRuleIterator_CountBound(t *testing.T) {
	dtStart := rrule.NewDate(1997, 9, 2)
	rule := mustRule(t, "FREQ=DAILY;COUNT=7")

	it, err := rrule.NewRuleIterator(rule, dtStart, time.UTC, nil)
	require.NoError(t, err)

	got := collect(t, it, 7)
	require.Len(t, got, 7)
	require.False(t, it.HasNext())
}

func TestRRuleIterator_UntilBound(t *testing.T) {
	dtStart := rrule.NewDate(1997, 9, 2)
	rule := mustRule(t, "FREQ=DAILY;UNTIL=19970908")

	it, err := rrule.NewRuleIterator(rule, dtStart, time.UTC, nil)
	require.NoError(t, err)

	until := rrule.NewDate(1997, 9, 8)
	count := 0
	for it.HasNext() {
		d, ok := it.Next()
		require.True(t, ok)
		require.False(t, until.Before(d), "emission %v exceeded until %v", d, until)
		count++
	}
	require.Equal(t, 7, count)
}

func TestRRuleIterator_AdvanceToIdempotence(t *testing.T) {
	dtStart := rrule.NewDate(1997, 9, 2)
	rule := mustRule(t, "FREQ=DAILY;COUNT=30")

	itA, err := rrule.NewRuleIterator(rule, dtStart, time.UTC, nil)
	require.NoError(t, err)
	itB, err := rrule.NewRuleIterator(rule, dtStart, time.UTC, nil)
	require.NoError(t, err)

	target := rrule.NewDate(1997, 9, 20)

	// itA: skip forward one at a time until reaching target.
	var viaNext rrule.DateValue
	for itA.HasNext() {
		d, _ := itA.Next()
		if !d.Before(target) {
			viaNext = d
			break
		}
	}

	// itB: jump straight there.
	itB.AdvanceTo(target)
	viaAdvance, ok := itB.Next()
	require.True(t, ok)

	require.Equal(t, viaNext, viaAdvance)

	// Calling AdvanceTo again with the same or an earlier target must
	// not change what Next returns next.
	itB.AdvanceTo(target)
	again, ok := itB.Next()
	require.True(t, ok)
	require.True(t, viaAdvance.Before(again))
}

func TestDateListIterator_SortsAndDedupes(t *testing.T) {
	it := rrule.NewDateListIterator([]rrule.DateValue{
		rrule.NewDate(1997, 9, 10),
		rrule.NewDate(1997, 9, 2),
		rrule.NewDate(1997, 9, 10),
		rrule.NewDate(1997, 9, 5),
	})

	got := collect(t, it, 3)
	want := []rrule.DateValue{
		rrule.NewDate(1997, 9, 2),
		rrule.NewDate(1997, 9, 5),
		rrule.NewDate(1997, 9, 10),
	}
	require.Equal(t, want, got)
	require.False(t, it.HasNext())
}
