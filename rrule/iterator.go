package rrule

import (
	"sort"
	"time"
)

// RecurrenceIterator is the common peek/advance surface shared by rule
// iterators, date-list iterators, and the compound iterator. It is
// pull-based and single-threaded: no method is safe for concurrent use
// by multiple goroutines.
type RecurrenceIterator interface {
	// HasNext reports whether a further value is available, computing
	// it if necessary.
	HasNext() bool
	// Next emits the pending value and advances past it. ok is false
	// once the iterator is exhausted.
	Next() (DateValue, bool)
	// AdvanceTo fast-forwards so the next call to Next returns the
	// first value >= t (or exhausts if none remains).
	AdvanceTo(t DateValue)
}

// RRuleIterator is the front of a single RRULE: an instance generator
// plus a termination condition, an optional forced time-of-day, and a
// wall-clock-to-UTC conversion step.
type RRuleIterator struct {
	gen          InstanceGenerator
	condition    Condition
	hasForced    bool
	forced       DateValue
	loc          *time.Location
	nextVal      *DateValue
	done         bool
	emittedCount int
}

// NewRRuleIterator builds the RRule iterator. loc is the time zone the
// rule's wall-clock arithmetic is interpreted in before conversion to
// UTC on emission; pass time.UTC for a floating/UTC rule.
func NewRRuleIterator(gen InstanceGenerator, condition Condition, loc *time.Location, forced DateValue, hasForced bool) *RRuleIterator {
	if loc == nil {
		loc = time.UTC
	}
	return &RRuleIterator{gen: gen, condition: condition, loc: loc, forced: forced, hasForced: hasForced}
}

// toUTC converts a wall-clock candidate produced by the generator
// chain (interpreted in it's time zone) into its UTC instant. All-day
// values carry no time zone and pass through unchanged.
func (r *RRuleIterator) toUTC(d DateValue) DateValue {
	if !d.HasTime {
		return d
	}
	t := time.Date(d.Year, time.Month(d.Month), d.Day, d.Hour, d.Minute, d.Second, 0, r.loc)
	return FromTime(t.UTC(), true)
}

func (r *RRuleIterator) computeNext() {
	if r.done || r.nextVal != nil {
		return
	}
	raw, ok := r.gen.Next()
	if !ok {
		r.done = true
		return
	}
	if r.hasForced {
		raw = raw.WithTime(r.forced.Hour, r.forced.Minute, r.forced.Second)
	}
	candidate := r.toUTC(raw)
	if !r.condition.Permits(candidate) {
		r.done = true
		return
	}
	r.nextVal = &candidate
}

func (r *RRuleIterator) HasNext() bool {
	r.computeNext()
	return r.nextVal != nil
}

func (r *RRuleIterator) Next() (DateValue, bool) {
	if !r.HasNext() {
		return DateValue{}, false
	}
	d := *r.nextVal
	r.nextVal = nil
	r.emittedCount++
	return d, true
}

// AdvanceTo discards emissions strictly less than t. The generator
// chain has no direct seek operation, so this always produces every
// intermediate candidate rather than bypassing the enclosing period,
// unlike RecurrenceIteratorFactory.java's canShortcutAdvance fast
// path: emitted values and emittedCount end up the same either way,
// just without its performance benefit.
func (r *RRuleIterator) AdvanceTo(t DateValue) {
	for r.HasNext() && r.nextVal.Before(t) {
		r.Next()
	}
}

// listIterator is the RDateIterator/EXDATE-list iterator: a sorted,
// deduplicated sequence of explicit dates.
type listIterator struct {
	dates []DateValue
	idx   int
}

// NewDateListIterator builds an iterator over an explicit date list
// (RDATE/EXDATE values, or the singleton dtStart inclusion). Dates are
// sorted and adjacent duplicates collapsed via a sort-then-compact
// pass, mirroring RecurrenceIteratorFactory.java's makeDateValueIterator
// rather than de-duplicating through a set.
func NewDateListIterator(dates []DateValue) RecurrenceIterator {
	cp := make([]DateValue, len(dates))
	copy(cp, dates)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Before(cp[j]) })
	write := 0
	for read, d := range cp {
		if read == 0 || !d.Equal(cp[write-1]) {
			cp[write] = d
			write++
		}
	}
	return &listIterator{dates: cp[:write]}
}

func (l *listIterator) HasNext() bool { return l.idx < len(l.dates) }

func (l *listIterator) Next() (DateValue, bool) {
	if !l.HasNext() {
		return DateValue{}, false
	}
	d := l.dates[l.idx]
	l.idx++
	return d, true
}

func (l *listIterator) AdvanceTo(t DateValue) {
	for l.idx < len(l.dates) && l.dates[l.idx].Before(t) {
		l.idx++
	}
}
