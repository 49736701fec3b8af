package rrule

// Condition is a termination predicate: given the next candidate, it
// reports whether that candidate may still be emitted. It is
// exclusive: the candidate that trips it is not emitted. Conditions
// also track any state needed to answer that (countCondition counts
// emissions as they're permitted).
type Condition interface {
	// Permits reports whether candidate may be emitted. Once it
	// returns false, it must keep returning false (conditions are
	// monotonic: once done, always done).
	Permits(candidate DateValue) bool
}

type alwaysTrueCondition struct{}

func (alwaysTrueCondition) Permits(DateValue) bool { return true }

// AlwaysTrue is the condition used when a rule has neither COUNT nor
// UNTIL: the sequence is bounded only by the non-productive-years
// guard.
func AlwaysTrue() Condition { return alwaysTrueCondition{} }

// countCondition permits exactly the first N emissions.
type countCondition struct {
	remaining int
}

// CountCondition permits the first n emissions.
func CountCondition(n int) Condition { return &countCondition{remaining: n} }

func (c *countCondition) Permits(DateValue) bool {
	if c.remaining <= 0 {
		return false
	}
	c.remaining--
	return true
}

// untilCondition permits candidates up to and including until, in UTC.
type untilCondition struct {
	until DateValue
}

// UntilCondition permits candidates while candidate <= until (inclusive,
// UTC). The factory is responsible for coercing until's DATE/DATE-TIME
// type to match dtStart's before installing this condition.
func UntilCondition(until DateValue) Condition { return &untilCondition{until: until} }

func (c *untilCondition) Permits(candidate DateValue) bool {
	return !candidate.ToTime().After(c.until.ToTime())
}
