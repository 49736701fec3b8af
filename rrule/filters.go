package rrule

import "time"

// Filter is a stateless predicate over a fully formed candidate date.
// Multiple filters compose by logical AND.
type Filter interface {
	Matches(d DateValue) bool
}

// FilterFunc adapts a plain function to Filter.
type FilterFunc func(d DateValue) bool

func (f FilterFunc) Matches(d DateValue) bool { return f(d) }

// andFilter is the logical AND of zero or more filters; zero filters
// matches everything.
type andFilter struct{ filters []Filter }

func (a andFilter) Matches(d DateValue) bool {
	for _, f := range a.filters {
		if !f.Matches(d) {
			return false
		}
	}
	return true
}

func newAndFilter(filters []Filter) Filter {
	switch len(filters) {
	case 0:
		return FilterFunc(func(DateValue) bool { return true })
	case 1:
		return filters[0]
	default:
		return andFilter{filters: filters}
	}
}

// byDayFilter mirrors byDayGenerator's ordinal semantics but as a
// predicate: true iff d falls on one of the WeekdayNum entries within
// its enclosing period (month, or year when weeksInYear).
func byDayFilter(byDay []WeekdayNum, weeksInYear bool, wkst Weekday) Filter {
	_ = wkst // ordinal matching doesn't depend on week-start; parameter kept so every BYDAY filter constructor shares the same signature
	return FilterFunc(func(d DateValue) bool {
		if weeksInYear {
			yday := dayOfYear(d.Year, d.Month, d.Day)
			for _, wn := range byDay {
				for _, cand := range nthWeekdayOfYear(d.Year, wn) {
					if cand == yday {
						return true
					}
				}
			}
			return false
		}
		for _, wn := range byDay {
			for _, cand := range nthWeekdayOfMonth(d.Year, d.Month, wn) {
				if cand == d.Day {
					return true
				}
			}
		}
		return false
	})
}

// byMonthDayFilter reports whether d's day-of-month is one of
// byMonthDay's entries, honoring negative (from-end) indices against
// d's own month length.
func byMonthDayFilter(byMonthDay []int) Filter {
	return FilterFunc(func(d DateValue) bool {
		n := daysInMonth(d.Year, d.Month)
		for _, v := range byMonthDay {
			var day int
			switch {
			case v > 0:
				day = v
			case v < 0:
				day = n + v + 1
			default:
				continue
			}
			if day == d.Day {
				return true
			}
		}
		return false
	})
}

// weekIntervalFilter is true iff d falls within a wkst-anchored week
// whose offset from dtStart's own week is a multiple of interval.
// Used only for WEEKLY;INTERVAL>1 with BYDAY also present, since the
// day generator in that combination (byDayGenerator) has no notion of
// the WEEKLY interval itself.
func weekIntervalFilter(interval int, wkst Weekday, dtStart DateValue) Filter {
	startWeek := weekStart(dtStart, wkst)
	return FilterFunc(func(d DateValue) bool {
		thisWeek := weekStart(d, wkst)
		days := int(thisWeek.Sub(startWeek).Hours() / 24)
		weeks := days / 7
		if days < 0 {
			// floor division for negative offsets (shouldn't occur in
			// practice since generators never emit before dtStart, but
			// keep the predicate correct regardless).
			if weeks*7 != days {
				weeks--
			}
		}
		return ((weeks % interval) + interval) % interval == 0
	})
}

// weekStart returns the UTC midnight of the wkst-anchored week
// containing d.
func weekStart(d DateValue, wkst Weekday) time.Time {
	wd := weekdayOf(d.Year, d.Month, d.Day)
	back := (int(wd) - int(wkst) + 7) % 7
	y, m, dd := addDays(d.Year, d.Month, d.Day, -back)
	return time.Date(y, time.Month(m), dd, 0, 0, 0, 0, time.UTC)
}
