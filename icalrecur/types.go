// Package icalrecur adapts parsed iCalendar VEVENT/VTODO components
// into the rrule engine's inputs, caches expansion results, and
// exposes the range-query operations a CalDAV-style consumer needs,
// driving rrule/ and rrule/parse instead of an opaque third-party
// expansion library.
package icalrecur

import (
	"time"

	"github.com/pnreddysvu/google-rfc-2445/rrule"
)

// RecurrenceInfo carries the recurrence-related properties pulled off
// a single iCalendar component.
type RecurrenceInfo struct {
	RRULE        string            // raw RRULE value, without the "RRULE:" prefix
	EXRULE       string            // raw EXRULE value, without the "EXRULE:" prefix
	RDATE        []rrule.DateValue // additional recurrence dates
	EXDATE       []rrule.DateValue // excluded occurrence dates
	RecurrenceID *rrule.DateValue  // for exception instances: which occurrence this overrides
}

// Occurrence is a single expanded instance of a recurring component.
type Occurrence struct {
	Start       rrule.DateValue
	End         rrule.DateValue
	IsException bool
}

// ExpansionOptions bounds how far Expand is willing to go.
type ExpansionOptions struct {
	MaxOccurrences int           // <= 0 falls back to DefaultExpansionOptions.MaxOccurrences
	MaxTimeSpan    time.Duration // 0 = unlimited, measured from the range start
}

// DefaultExpansionOptions is a conservative default for bounding an
// unbounded expansion.
var DefaultExpansionOptions = ExpansionOptions{
	MaxOccurrences: 1000,
	MaxTimeSpan:    365 * 24 * time.Hour * 2,
}
