package rrule

import "time"

// This file holds the proleptic-Gregorian calendar arithmetic
// primitives the generators treat as external collaborators: days in
// a month, day-of-week for a date, ISO-style week numbering. They're
// implemented directly on top of time.Date, which already normalizes
// out-of-range month/day values the way the helpers below rely on
// (e.g. day 0 of the next month is the last day of this one, and day
// 40 of January is February 9).

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInMonth(year, month int) int {
	// day 0 of the following month is the last day of this one.
	t := time.Date(year, time.Month(month+1), 0, 0, 0, 0, 0, time.UTC)
	return t.Day()
}

func daysInYear(year int) int {
	if isLeapYear(year) {
		return 366
	}
	return 365
}

func weekdayOf(year, month, day int) Weekday {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return fromTimeWeekday(t.Weekday())
}

// dayOfYear returns the 1-based ordinal of (month, day) within year.
func dayOfYear(year, month, day int) int {
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return int(d.Sub(start).Hours()/24) + 1
}

// dateFromYearDay converts a 1-based day-of-year back to (month, day).
func dateFromYearDay(year, yday int) (month, day int) {
	t := time.Date(year, 1, yday, 0, 0, 0, 0, time.UTC)
	return int(t.Month()), t.Day()
}

// addDays returns the (year, month, day) that is n days after the
// given date; n may be negative.
func addDays(year, month, day, n int) (int, int, int) {
	t := time.Date(year, time.Month(month), day+n, 0, 0, 0, 0, time.UTC)
	return t.Year(), int(t.Month()), t.Day()
}

// weekdaysInMonth returns the sorted days-of-month on which the given
// weekday falls within (year, month).
func weekdaysInMonth(year, month int, wd Weekday) []int {
	var out []int
	n := daysInMonth(year, month)
	first := weekdayOf(year, month, 1)
	// offset from day 1 to the first occurrence of wd
	offset := (int(wd) - int(first) + 7) % 7
	for d := 1 + offset; d <= n; d += 7 {
		out = append(out, d)
	}
	return out
}

// nthWeekdayOfMonth resolves a WeekdayNum ordinal within one month to
// the matching days-of-month: a single day for a non-zero ordinal,
// every such weekday for ordinal 0, or nil if the ordinal is out of
// range for that month's occurrences of the weekday.
func nthWeekdayOfMonth(year, month int, wn WeekdayNum) []int {
	days := weekdaysInMonth(year, month, wn.Day)
	if wn.Ordinal == 0 {
		return days
	}
	idx := wn.Ordinal
	if idx < 0 {
		idx = len(days) + idx
	} else {
		idx = idx - 1
	}
	if idx < 0 || idx >= len(days) {
		return nil
	}
	return []int{days[idx]}
}

// weekdaysInYear returns the sorted day-of-year values on which wd
// falls within year.
func weekdaysInYear(year int, wd Weekday) []int {
	var out []int
	n := daysInYear(year)
	first := weekdayOf(year, 1, 1)
	offset := (int(wd) - int(first) + 7) % 7
	for d := 1 + offset; d <= n; d += 7 {
		out = append(out, d)
	}
	return out
}

// nthWeekdayOfYear resolves a WeekdayNum ordinal across a whole year
// to a set of day-of-year values (normally a single one, 0 meaning
// "every", matching nthWeekdayOfMonth's contract at year scope).
func nthWeekdayOfYear(year int, wn WeekdayNum) []int {
	days := weekdaysInYear(year, wn.Day)
	if wn.Ordinal == 0 {
		return days
	}
	idx := wn.Ordinal
	if idx < 0 {
		idx = len(days) + idx
	} else {
		idx = idx - 1
	}
	if idx < 0 || idx >= len(days) {
		return nil
	}
	return []int{days[idx]}
}

// isoWeekStart returns the (year, month, day) of the first day (wkst)
// of ISO-style week 1 of year: the week containing the first Thursday
// equivalent, generalized to an arbitrary week-start weekday the way
// libical shifts the ISO-8601 rule.
func isoWeekStart(year int, wkst Weekday) (int, int, int) {
	jan1 := weekdayOf(year, 1, 1)
	// Days from jan1 back to the most recent wkst-aligned week boundary.
	back := (int(jan1) - int(wkst) + 7) % 7
	y, m, d := addDays(year, 1, 1, -back)
	// If fewer than 4 days of `year` fall in that first week, week 1
	// starts one week later (the shifted ISO-8601 rule).
	daysOfYearInFirstWeek := 7 - back
	if daysOfYearInFirstWeek < 4 {
		y, m, d = addDays(y, m, d, 7)
	}
	return y, m, d
}

// weeksInISOYear returns how many wkst-anchored weeks are numbered in
// year (from its week 1 up to the next year's week 1), for resolving
// negative BYWEEKNO values.
func weeksInISOYear(year int, wkst Weekday) int {
	y1, m1, d1 := isoWeekStart(year, wkst)
	y2, m2, d2 := isoWeekStart(year+1, wkst)
	start := time.Date(y1, time.Month(m1), d1, 0, 0, 0, 0, time.UTC)
	end := time.Date(y2, time.Month(m2), d2, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours()/24) / 7
}
