package rrule

import "sort"

// genResult is the two-valued status a Generator reports: either it
// advanced its owned field on the working date, or the enclosing
// period has no further values ("rolled over" — ), in
// which case the caller must advance the next-larger period first.
type genResult int

const (
	advanced genResult = iota
	rolledOver
)

// Generator advances one field of a shared working date forward
// within its enclosing period. Implementations are stateful: they
// remember what period they last computed candidates for and
// recompute only when the enclosing fields (set by a larger-period
// generator) change.
type Generator interface {
	Generate(wd *DateValue) genResult
}

func sortedUnique(xs []int) []int {
	if len(xs) == 0 {
		return nil
	}
	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	out := cp[:1]
	for _, v := range cp[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

func nextYearMonth(year, month int) (int, int) {
	month++
	if month > 12 {
		month = 1
		year++
	}
	return year, month
}

// --- year ---

// serialYearGenerator yields dtStart.Year, then dtStart.Year+interval,
// dtStart.Year+2*interval, ... forever; years are unbounded here and
// termination is a Condition's job.
type serialYearGenerator struct {
	interval int
	next     int
	started  bool
}

func newSerialYearGenerator(interval int, dtStart DateValue) Generator {
	return &serialYearGenerator{interval: interval, next: dtStart.Year}
}

func (g *serialYearGenerator) Generate(wd *DateValue) genResult {
	wd.Year = g.next
	g.next += g.interval
	g.started = true
	return advanced
}

// --- month ---

// byMonthGenerator yields the sorted, de-duplicated months in months
// that fall on or after dtStart's own month in dtStart's own year;
// every month in the list in subsequent years.
type byMonthGenerator struct {
	months      []int
	dtStart     DateValue
	curYear     int
	haveCur     bool
	candidates  []int
	idx         int
}

func newByMonthGenerator(months []int, dtStart DateValue) Generator {
	return &byMonthGenerator{months: sortedUnique(months), dtStart: dtStart}
}

func (g *byMonthGenerator) recompute(year int) {
	g.curYear = year
	g.haveCur = true
	g.idx = 0
	g.candidates = g.candidates[:0]
	for _, m := range g.months {
		if year == g.dtStart.Year && m < g.dtStart.Month {
			continue
		}
		g.candidates = append(g.candidates, m)
	}
}

func (g *byMonthGenerator) Generate(wd *DateValue) genResult {
	if !g.haveCur || wd.Year != g.curYear {
		g.recompute(wd.Year)
	}
	if g.idx >= len(g.candidates) {
		return rolledOver
	}
	wd.Month = g.candidates[g.idx]
	g.idx++
	return advanced
}

// anchoredMonthGenerator is the serial month generator for interval>1
// (newSerialMonthGenerator returns a byMonthGenerator over 1..12 for
// interval 1). It forms an arithmetic progression anchored at dtStart's
// month, carrying the remainder across year boundaries so the
// sequence stays continuous regardless of how many calendar years a
// single step spans.
type anchoredMonthGenerator struct {
	interval         int
	dtStartYear      int
	nextMonth        int
	nextYearOffset   int
}

func newSerialMonthGenerator(interval int, dtStart DateValue) Generator {
	if interval <= 1 {
		all := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
		return newByMonthGenerator(all, dtStart)
	}
	return &anchoredMonthGenerator{
		interval:    interval,
		dtStartYear: dtStart.Year,
		nextMonth:   dtStart.Month,
	}
}

func (g *anchoredMonthGenerator) Generate(wd *DateValue) genResult {
	targetYear := g.dtStartYear + g.nextYearOffset
	if wd.Year != targetYear {
		return rolledOver
	}
	wd.Month = g.nextMonth
	total := g.nextMonth - 1 + g.interval
	g.nextMonth = total%12 + 1
	g.nextYearOffset += total / 12
	return advanced
}

// --- day ---

// serialDayGenerator yields successive days with a fixed stride,
// folding the overflow across month boundaries so the stride stays
// continuous however many months a single step spans (used for
// DAILY;INTERVAL and WEEKLY's serial fallback with step=interval*7).
type serialDayGenerator struct {
	step                  int
	pending               int
	trackYear, trackMonth int
}

func newSerialDayGenerator(step int, dtStart DateValue) Generator {
	return &serialDayGenerator{step: step, pending: dtStart.Day, trackYear: dtStart.Year, trackMonth: dtStart.Month}
}

func (g *serialDayGenerator) Generate(wd *DateValue) genResult {
	for wd.Year != g.trackYear || wd.Month != g.trackMonth {
		g.pending -= daysInMonth(g.trackYear, g.trackMonth)
		g.trackYear, g.trackMonth = nextYearMonth(g.trackYear, g.trackMonth)
	}
	if g.pending > daysInMonth(wd.Year, wd.Month) {
		return rolledOver
	}
	wd.Day = g.pending
	g.pending += g.step
	return advanced
}

// byMonthDayGenerator expands BYMONTHDAY (with negative-from-end
// indices) against each enclosing month's length, dropping entries
// before dtStart in dtStart's own month.
type byMonthDayGenerator struct {
	byMonthDay            []int
	dtStart                DateValue
	curYear, curMonth     int
	haveCur               bool
	candidates            []int
	idx                   int
}

func newByMonthDayGenerator(byMonthDay []int, dtStart DateValue) Generator {
	return &byMonthDayGenerator{byMonthDay: byMonthDay, dtStart: dtStart}
}

func (g *byMonthDayGenerator) recompute(year, month int) {
	g.curYear, g.curMonth, g.haveCur = year, month, true
	g.idx = 0
	n := daysInMonth(year, month)
	var days []int
	for _, v := range g.byMonthDay {
		var d int
		if v > 0 {
			d = v
		} else if v < 0 {
			d = n + v + 1
		} else {
			continue
		}
		if d < 1 || d > n {
			continue
		}
		if year == g.dtStart.Year && month == g.dtStart.Month && d < g.dtStart.Day {
			continue
		}
		days = append(days, d)
	}
	g.candidates = sortedUnique(days)
}

func (g *byMonthDayGenerator) Generate(wd *DateValue) genResult {
	if !g.haveCur || wd.Year != g.curYear || wd.Month != g.curMonth {
		g.recompute(wd.Year, wd.Month)
	}
	if g.idx >= len(g.candidates) {
		return rolledOver
	}
	wd.Day = g.candidates[g.idx]
	g.idx++
	return advanced
}

// byDayGenerator expands BYDAY WeekdayNum entries (e.g. -1FR, every
// MO) either within each enclosing month (weeksInYear=false) or
// within each enclosing year (weeksInYear=true).
type byDayGenerator struct {
	byDay       []WeekdayNum
	weeksInYear bool
	dtStart     DateValue
	curYear     int
	curMonth    int
	haveCur     bool
	candidates  []int // day-of-month, or day-of-year when weeksInYear
	idx         int
}

func newByDayGenerator(byDay []WeekdayNum, weeksInYear bool, dtStart DateValue) Generator {
	return &byDayGenerator{byDay: byDay, weeksInYear: weeksInYear, dtStart: dtStart}
}

func (g *byDayGenerator) recomputeMonth(year, month int) {
	g.curYear, g.curMonth, g.haveCur = year, month, true
	g.idx = 0
	var days []int
	for _, wn := range g.byDay {
		for _, d := range nthWeekdayOfMonth(year, month, wn) {
			if year == g.dtStart.Year && month == g.dtStart.Month && d < g.dtStart.Day {
				continue
			}
			days = append(days, d)
		}
	}
	g.candidates = sortedUnique(days)
}

func (g *byDayGenerator) recomputeYear(year int) {
	g.curYear, g.haveCur = year, true
	g.idx = 0
	dtYday := dayOfYear(g.dtStart.Year, g.dtStart.Month, g.dtStart.Day)
	var ydays []int
	for _, wn := range g.byDay {
		for _, d := range nthWeekdayOfYear(year, wn) {
			if year == g.dtStart.Year && d < dtYday {
				continue
			}
			ydays = append(ydays, d)
		}
	}
	g.candidates = sortedUnique(ydays)
}

func (g *byDayGenerator) Generate(wd *DateValue) genResult {
	if g.weeksInYear {
		if !g.haveCur || wd.Year != g.curYear {
			g.recomputeYear(wd.Year)
		}
		if g.idx >= len(g.candidates) {
			return rolledOver
		}
		m, d := dateFromYearDay(wd.Year, g.candidates[g.idx])
		wd.Month, wd.Day = m, d
		g.idx++
		return advanced
	}
	if !g.haveCur || wd.Year != g.curYear || wd.Month != g.curMonth {
		g.recomputeMonth(wd.Year, wd.Month)
	}
	if g.idx >= len(g.candidates) {
		return rolledOver
	}
	wd.Day = g.candidates[g.idx]
	g.idx++
	return advanced
}

// byWeekNoGenerator expands BYWEEKNO: only valid for YEARLY rules. For
// each listed ISO-style week (anchored at wkst, negative counting from
// the last week of the year), emits all seven days, clipped to the
// enclosing year.
type byWeekNoGenerator struct {
	byWeekNo   []int
	wkst       Weekday
	dtStart    DateValue
	curYear    int
	haveCur    bool
	candidates []int // day-of-year within curYear
	idx        int
}

func newByWeekNoGenerator(byWeekNo []int, wkst Weekday, dtStart DateValue) Generator {
	return &byWeekNoGenerator{byWeekNo: byWeekNo, wkst: wkst, dtStart: dtStart}
}

func (g *byWeekNoGenerator) recompute(year int) {
	g.curYear, g.haveCur = year, true
	g.idx = 0
	total := weeksInISOYear(year, g.wkst)
	dtYday := dayOfYear(g.dtStart.Year, g.dtStart.Month, g.dtStart.Day)

	var ydays []int
	for _, wn := range g.byWeekNo {
		n := wn
		if n < 0 {
			n = total + n + 1
		}
		if n < 1 || n > total {
			continue
		}
		wy, wm, wd := isoWeekStart(year, g.wkst)
		wy, wm, wd = addDays(wy, wm, wd, (n-1)*7)
		for i := 0; i < 7; i++ {
			dy, dm, dd := addDays(wy, wm, wd, i)
			if dy != year {
				continue
			}
			yday := dayOfYear(dy, dm, dd)
			if year == g.dtStart.Year && yday < dtYday {
				continue
			}
			ydays = append(ydays, yday)
		}
	}
	g.candidates = sortedUnique(ydays)
}

func (g *byWeekNoGenerator) Generate(wd *DateValue) genResult {
	if !g.haveCur || wd.Year != g.curYear {
		g.recompute(wd.Year)
	}
	if g.idx >= len(g.candidates) {
		return rolledOver
	}
	m, d := dateFromYearDay(wd.Year, g.candidates[g.idx])
	wd.Month, wd.Day = m, d
	g.idx++
	return advanced
}

// byYearDayGenerator expands BYYEARDAY (with negative-from-end
// indices against 365/366) for each enclosing year.
type byYearDayGenerator struct {
	byYearDay  []int
	dtStart    DateValue
	curYear    int
	haveCur    bool
	candidates []int
	idx        int
}

func newByYearDayGenerator(byYearDay []int, dtStart DateValue) Generator {
	return &byYearDayGenerator{byYearDay: byYearDay, dtStart: dtStart}
}

func (g *byYearDayGenerator) recompute(year int) {
	g.curYear, g.haveCur = year, true
	g.idx = 0
	n := daysInYear(year)
	dtYday := dayOfYear(g.dtStart.Year, g.dtStart.Month, g.dtStart.Day)
	var ydays []int
	for _, v := range g.byYearDay {
		var d int
		if v > 0 {
			d = v
		} else if v < 0 {
			d = n + v + 1
		} else {
			continue
		}
		if d < 1 || d > n {
			continue
		}
		if year == g.dtStart.Year && d < dtYday {
			continue
		}
		ydays = append(ydays, d)
	}
	g.candidates = sortedUnique(ydays)
}

func (g *byYearDayGenerator) Generate(wd *DateValue) genResult {
	if !g.haveCur || wd.Year != g.curYear {
		g.recompute(wd.Year)
	}
	if g.idx >= len(g.candidates) {
		return rolledOver
	}
	m, d := dateFromYearDay(wd.Year, g.candidates[g.idx])
	wd.Month, wd.Day = m, d
	g.idx++
	return advanced
}
