package icalrecur_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pnreddysvu/google-rfc-2445/icalrecur"
	"github.com/pnreddysvu/google-rfc-2445/rrule"
)

func TestEngine_ExpandDailyWithinRange(t *testing.T) {
	e := icalrecur.NewEngineWithConfig(icalrecur.DisabledCacheConfig, nil)
	defer e.Close()

	master := time.Date(1997, 9, 2, 9, 0, 0, 0, time.UTC)
	info := icalrecur.RecurrenceInfo{RRULE: "FREQ=DAILY;COUNT=10"}

	rangeStart := time.Date(1997, 9, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(1997, 9, 5, 0, 0, 0, 0, time.UTC)

	occs, err := e.Expand(master, master.Add(time.Hour), false, info, rangeStart, rangeEnd, icalrecur.DefaultExpansionOptions)
	require.NoError(t, err)
	require.Len(t, occs, 3) // Sept 2, 3, 4 at 09:00; Sept 5 09:00 starts after rangeEnd
	require.Equal(t, 1997, occs[0].Start.Year)
	require.Equal(t, 2, occs[0].Start.Day)
}

func TestEngine_HasOccurrenceInRangeTrue(t *testing.T) {
	e := icalrecur.NewEngineWithConfig(icalrecur.DisabledCacheConfig, nil)
	defer e.Close()

	master := time.Date(1997, 9, 2, 9, 0, 0, 0, time.UTC)
	info := icalrecur.RecurrenceInfo{RRULE: "FREQ=WEEKLY;COUNT=5;BYDAY=TU"}

	rangeStart := time.Date(1997, 9, 20, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(1997, 9, 25, 0, 0, 0, 0, time.UTC)

	found, err := e.HasOccurrenceInRange(master, master.Add(time.Hour), false, info, rangeStart, rangeEnd)
	require.NoError(t, err)
	require.True(t, found)
}

func TestEngine_HasOccurrenceInRangeFalse(t *testing.T) {
	e := icalrecur.NewEngineWithConfig(icalrecur.DisabledCacheConfig, nil)
	defer e.Close()

	master := time.Date(1997, 9, 2, 9, 0, 0, 0, time.UTC)
	info := icalrecur.RecurrenceInfo{RRULE: "FREQ=WEEKLY;COUNT=3;BYDAY=TU"}

	rangeStart := time.Date(1998, 1, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(1998, 2, 1, 0, 0, 0, 0, time.UTC)

	found, err := e.HasOccurrenceInRange(master, master.Add(time.Hour), false, info, rangeStart, rangeEnd)
	require.NoError(t, err)
	require.False(t, found)
}

func TestEngine_ExclusionIsHonored(t *testing.T) {
	e := icalrecur.NewEngineWithConfig(icalrecur.DisabledCacheConfig, nil)
	defer e.Close()

	master := time.Date(1997, 9, 2, 9, 0, 0, 0, time.UTC)
	info := icalrecur.RecurrenceInfo{RRULE: "FREQ=DAILY;COUNT=5"}
	// The occurrences are DATE-TIMEs, so the exclusion must be one too:
	// a DATE never excludes a DATE-TIME.
	info.EXDATE = append(info.EXDATE, rrule.NewDateTime(1997, 9, 3, 9, 0, 0))

	rangeStart := time.Date(1997, 9, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(1997, 9, 10, 0, 0, 0, 0, time.UTC)

	occs, err := e.Expand(master, master.Add(time.Hour), false, info, rangeStart, rangeEnd, icalrecur.DefaultExpansionOptions)
	require.NoError(t, err)
	for _, occ := range occs {
		require.False(t, occ.Start.Year == 1997 && occ.Start.Month == 9 && occ.Start.Day == 3)
	}
}

func TestEngine_CachingReturnsConsistentResult(t *testing.T) {
	e := icalrecur.NewEngineWithConfig(icalrecur.DefaultEngineConfig, nil)
	defer e.Close()

	master := time.Date(1997, 9, 2, 9, 0, 0, 0, time.UTC)
	info := icalrecur.RecurrenceInfo{RRULE: "FREQ=DAILY;COUNT=5"}
	rangeStart := time.Date(1997, 9, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(1997, 9, 10, 0, 0, 0, 0, time.UTC)

	first, err := e.Expand(master, master.Add(time.Hour), false, info, rangeStart, rangeEnd, icalrecur.DefaultExpansionOptions)
	require.NoError(t, err)
	second, err := e.Expand(master, master.Add(time.Hour), false, info, rangeStart, rangeEnd, icalrecur.DefaultExpansionOptions)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
