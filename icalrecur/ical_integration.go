package icalrecur

import (
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"github.com/pnreddysvu/google-rfc-2445/rrule"
	"github.com/pnreddysvu/google-rfc-2445/rrule/parse"
)

// ExtractRecurrenceInfo pulls RRULE/EXRULE/RDATE/EXDATE/RECURRENCE-ID
// off an iCalendar component, producing rrule.DateValue instead of
// time.Time so the result feeds directly into
// parse.CreateIteratorFromParts.
func ExtractRecurrenceInfo(comp *ical.Component) RecurrenceInfo {
	var info RecurrenceInfo

	if p := comp.Props.Get(ical.PropRecurrenceRule); p != nil && p.Value != "" {
		info.RRULE = p.Value
	}
	if p := comp.Props.Get("EXRULE"); p != nil && p.Value != "" {
		info.EXRULE = p.Value
	}
	if p := comp.Props.Get(ical.PropRecurrenceDates); p != nil && p.Value != "" {
		info.RDATE = parseDateValueList(p.Value, p.Params)
	}
	if p := comp.Props.Get(ical.PropExceptionDates); p != nil && p.Value != "" {
		info.EXDATE = parseDateValueList(p.Value, p.Params)
	}
	if p := comp.Props.Get("RECURRENCE-ID"); p != nil && p.Value != "" {
		if d, err := parseDateValueToken(p.Value, p.Params); err == nil {
			info.RecurrenceID = &d
		}
	}

	return info
}

// ExtractBasicTimeInfo extracts DTSTART/DTEND (or DURATION, or DUE for
// VTODO) from a component, reporting whether it carries a meaningful
// start at all. All-day (DATE-valued) DTSTART/DTEND default to a
// one-day span when no explicit end is given.
func ExtractBasicTimeInfo(comp *ical.Component) (start, end time.Time, ok bool) {
	// Props.DateTime reports a missing property as a zero time with a
	// nil error, so absence is detected with IsZero.
	dtstart, err := comp.Props.DateTime(ical.PropDateTimeStart, nil)
	if err != nil || dtstart.IsZero() {
		if comp.Name == ical.CompToDo {
			if due, err := comp.Props.DateTime(ical.PropDue, nil); err == nil && !due.IsZero() {
				return due, due, true
			}
		}
		return time.Time{}, time.Time{}, false
	}
	start = dtstart
	ok = true

	if dtend, err := comp.Props.DateTime(ical.PropDateTimeEnd, nil); err == nil && !dtend.IsZero() {
		end = dtend
		sy, sm, sd := start.Date()
		ey, em, ed := end.Date()
		if isAllDay(start) && sy == ey && sm == em && sd == ed {
			end = start.AddDate(0, 0, 1)
		}
	} else if durProp := comp.Props.Get(ical.PropDuration); durProp != nil {
		if d, err := durProp.Duration(); err == nil {
			end = start.Add(d)
		} else {
			end = start
		}
	} else if isAllDay(start) {
		end = start.AddDate(0, 0, 1)
	} else {
		end = start
	}

	if comp.Name == ical.CompToDo {
		if due, err := comp.Props.DateTime(ical.PropDue, nil); err == nil && due.After(end) {
			end = due
		}
	}
	return start, end, ok
}

func isAllDay(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0
}

func isDateOnlyParam(params map[string][]string) bool {
	v, ok := params["VALUE"]
	return ok && len(v) > 0 && strings.EqualFold(v[0], "DATE")
}

func parseDateValueToken(value string, params map[string][]string) (rrule.DateValue, error) {
	tok := strings.TrimSpace(value)
	if isDateOnlyParam(params) && !strings.Contains(tok, "T") {
		tok = strings.ToUpper(tok)
	}
	return parse.ParseDateToken(tok)
}

func parseDateValueList(value string, params map[string][]string) []rrule.DateValue {
	var out []rrule.DateValue
	for _, tok := range strings.Split(value, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		d, err := parseDateValueToken(tok, params)
		if err != nil {
			continue
		}
		out = append(out, d)
	}
	return out
}
