package rrule

import "github.com/samber/mo"

// Rule is the input contract for a single RRULE or EXRULE: frequency,
// interval, the by-part lists, and a termination (Count or Until, at
// most one of which is meaningful — Count takes precedence if both
// are set, matching the Java factory's if/else-if ordering).
//
// Until uses mo.Option because it has no natural "unset" sentinel
// distinct from the zero DateValue. The slice-valued by-parts need no
// such wrapper: nil already means "not specified".
type Rule struct {
	Freq     Frequency
	Interval int
	WkSt     Weekday
	Until    mo.Option[DateValue]
	Count    int

	ByDay      []WeekdayNum
	ByMonth    []int
	ByMonthDay []int
	ByWeekNo   []int
	ByYearDay  []int
	BySetPos   []int
	ByHour     []int
	ByMinute   []int
	BySecond   []int
}

// Normalized returns a copy of r with interval/wkst defaults applied:
// interval<=0 becomes 1, unset wkst becomes MO.
func (r Rule) Normalized() Rule {
	if r.Interval <= 0 {
		r.Interval = 1
	}
	return r
}

// Validate rejects rules this core cannot express: anything finer
// than DAILY. Individual by-part range checks are performed lazily by
// the generators, which silently drop out-of-range entries rather
// than failing construction — only the frequency itself is a hard
// error.
func (r Rule) Validate() error {
	switch r.Freq {
	case YEARLY, MONTHLY, WEEKLY, DAILY:
		return nil
	default:
		return ruleError("cannot iterate more frequently than daily")
	}
}

// forcedTime computes the time-of-day to force onto every emission
// when exactly one of ByHour/ByMinute/BySecond is a singleton list,
// matching RecurrenceIteratorFactory.java lines 180-191. The two
// fields that are NOT the singleton one inherit dtStart's own
// time-of-day rather than defaulting to zero.
func (r Rule) forcedTime(dtStart DateValue) (DateValue, bool) {
	singletons := 0
	if len(r.ByHour) == 1 {
		singletons++
	}
	if len(r.ByMinute) == 1 {
		singletons++
	}
	if len(r.BySecond) == 1 {
		singletons++
	}
	if singletons != 1 || !dtStart.HasTime {
		return DateValue{}, false
	}

	hour, minute, second := dtStart.Hour, dtStart.Minute, dtStart.Second
	if len(r.ByHour) == 1 {
		hour = r.ByHour[0]
	}
	if len(r.ByMinute) == 1 {
		minute = r.ByMinute[0]
	}
	if len(r.BySecond) == 1 {
		second = r.BySecond[0]
	}
	return NewDateTime(0, 0, 0, hour, minute, second), true
}
