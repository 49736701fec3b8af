package rrule

import "sort"

// maxEmptyPeriods bounds how many consecutive years may pass without a
// single filter-passing candidate before rawDriver (and so every
// instance generator, BYSETPOS included) gives up (e.g.
// BYMONTHDAY=30;BYMONTH=2 never matches). 100 mirrors
// RecurrenceIteratorFactory.java's MAX_YEAR_INCREMENTS_BEFORE_EXHAUSTION.
const maxEmptyPeriods = 100

// InstanceGenerator is the composition of year/month/day Generators
// and a Filter that yields the next surviving date.
type InstanceGenerator interface {
	// Next returns the next candidate date, or ok=false once the rule
	// is structurally exhausted (not to be confused with a Condition
	// terminating the iterator — that's a separate, outer concern).
	Next() (DateValue, bool)
}

// rawDriver runs the generator chain day→month→year, retrying on
// filter rejection, and is the shared engine behind both
// serialInstanceGenerator and bySetPosInstanceGenerator:
// RecurrenceIteratorFactory.java's serial instance generator IS this
// loop; the set-pos variant just buffers this loop's output per
// enclosing period instead of returning the first hit.
type rawDriver struct {
	wd                  DateValue
	year, month, day    Generator
	filter              Filter
	foundThisYear       bool
	emptyYears          int
	exhausted           bool
}

func newRawDriver(dtStart DateValue, filter Filter, year, month, day Generator) *rawDriver {
	return &rawDriver{wd: dtStart, year: year, month: month, day: day, filter: filter}
}

func (r *rawDriver) next() (DateValue, bool) {
	if r.exhausted {
		return DateValue{}, false
	}
	for {
		switch r.day.Generate(&r.wd) {
		case advanced:
			if r.filter.Matches(r.wd) {
				r.foundThisYear = true
				return r.wd, true
			}
		case rolledOver:
			switch r.month.Generate(&r.wd) {
			case advanced:
				// retry day generation within the new month
			case rolledOver:
				if r.foundThisYear {
					r.emptyYears = 0
				} else {
					r.emptyYears++
					if r.emptyYears > maxEmptyPeriods {
						r.exhausted = true
						return DateValue{}, false
					}
				}
				r.foundThisYear = false
				r.year.Generate(&r.wd)
			}
		}
	}
}

// serialInstanceGenerator is plain instance generator:
// starting from dtStart, repeatedly advance day, then month on day
// rollover, then year on month rollover; the first filter-passing
// date is emitted.
type serialInstanceGenerator struct {
	raw *rawDriver
}

// NewSerialInstanceGenerator builds the non-buffered instance
// generator used whenever BYSETPOS isn't present (or the frequency
// doesn't support it — see bySetPosInstanceGenerator's doc comment).
func NewSerialInstanceGenerator(filter Filter, year, month, day Generator, dtStart DateValue) InstanceGenerator {
	return &serialInstanceGenerator{raw: newRawDriver(dtStart, filter, year, month, day)}
}

func (s *serialInstanceGenerator) Next() (DateValue, bool) {
	return s.raw.next()
}

// periodKind selects which enclosing span BYSETPOS ordinals are
// resolved against.
type periodKind int

const (
	periodYear periodKind = iota
	periodMonth
	periodWeek
)

// bySetPosInstanceGenerator buffers every filter-passing date within
// one enclosing set period (year/month/week), selects the requested
// ordinal positions, and emits them ascending before moving to the
// next period.
type bySetPosInstanceGenerator struct {
	raw       *rawDriver
	bySetPos  []int
	kind      periodKind
	wkst      Weekday
	queue     []DateValue
	pending   *DateValue
	rawDone   bool
}

// NewBySetPosInstanceGenerator builds the buffered instance generator
// used when BYSETPOS is present and freq is WEEKLY, MONTHLY, or
// YEARLY. For any other frequency (only DAILY remains, since this
// core rejects anything finer) BYSETPOS has no buffering benefit — a
// DAILY period has exactly one generator-produced candidate, so
// callers fall back to NewSerialInstanceGenerator instead, matching
// RecurrenceIteratorFactory.java's switch in createRecurrenceIterator.
func NewBySetPosInstanceGenerator(bySetPos []int, freq Frequency, wkst Weekday, filter Filter, year, month, day Generator, dtStart DateValue) InstanceGenerator {
	kind := periodYear
	switch freq {
	case MONTHLY:
		kind = periodMonth
	case WEEKLY:
		kind = periodWeek
	case YEARLY:
		kind = periodYear
	}
	return &bySetPosInstanceGenerator{
		raw:      newRawDriver(dtStart, filter, year, month, day),
		bySetPos: bySetPos,
		kind:     kind,
		wkst:     wkst,
	}
}

func (g *bySetPosInstanceGenerator) periodKey(d DateValue) int64 {
	switch g.kind {
	case periodMonth:
		return int64(d.Year)*12 + int64(d.Month)
	case periodWeek:
		return weekStart(d, g.wkst).Unix() / 86400
	default: // periodYear
		return int64(d.Year)
	}
}

func (g *bySetPosInstanceGenerator) fillBucket() []DateValue {
	var bucket []DateValue
	var curKey int64
	haveKey := false

	for {
		var cand DateValue
		ok := true
		if g.pending != nil {
			cand = *g.pending
			g.pending = nil
		} else if !g.rawDone {
			cand, ok = g.raw.next()
			if !ok {
				g.rawDone = true
				break
			}
		} else {
			break
		}

		key := g.periodKey(cand)
		if !haveKey {
			curKey, haveKey = key, true
		}
		if key != curKey {
			g.pending = &cand
			break
		}
		bucket = append(bucket, cand)
	}
	return bucket
}

func selectBySetPos(bucket []DateValue, bySetPos []int) []DateValue {
	sort.Slice(bucket, func(i, j int) bool { return bucket[i].Before(bucket[j]) })
	n := len(bucket)
	seen := make(map[int]bool, len(bySetPos))
	var idxs []int
	for _, pos := range bySetPos {
		var idx int
		switch {
		case pos > 0:
			idx = pos - 1
		case pos < 0:
			idx = n + pos
		default:
			continue
		}
		if idx < 0 || idx >= n || seen[idx] {
			continue
		}
		seen[idx] = true
		idxs = append(idxs, idx)
	}
	sort.Ints(idxs)
	out := make([]DateValue, 0, len(idxs))
	for _, idx := range idxs {
		out = append(out, bucket[idx])
	}
	return out
}

func (g *bySetPosInstanceGenerator) Next() (DateValue, bool) {
	for {
		if len(g.queue) > 0 {
			d := g.queue[0]
			g.queue = g.queue[1:]
			return d, true
		}
		if g.rawDone && g.pending == nil {
			return DateValue{}, false
		}
		bucket := g.fillBucket()
		if len(bucket) == 0 {
			if g.rawDone && g.pending == nil {
				return DateValue{}, false
			}
			continue
		}
		g.queue = selectBySetPos(bucket, g.bySetPos)
	}
}
