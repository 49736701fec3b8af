package parse

import (
	"strconv"
	"strings"

	"github.com/pnreddysvu/google-rfc-2445/rrule"
)

// ParseDateToken parses one RFC 5545 DATE ("20260115") or DATE-TIME
// ("20260115T090000" or "20260115T090000Z") token. A trailing 'Z' is
// accepted and dropped; this parser treats all wall-clock tokens as
// already being in the rule's own time zone, leaving UTC conversion
// to a separate iterator step.
func ParseDateToken(tok string) (rrule.DateValue, error) {
	tok = strings.TrimSpace(tok)
	tok = strings.TrimSuffix(tok, "Z")

	datePart := tok
	timePart := ""
	if i := strings.IndexByte(tok, 'T'); i >= 0 {
		datePart = tok[:i]
		timePart = tok[i+1:]
	}
	if len(datePart) != 8 {
		return rrule.DateValue{}, ruleParseError("invalid date token", tok)
	}
	year, err1 := strconv.Atoi(datePart[0:4])
	month, err2 := strconv.Atoi(datePart[4:6])
	day, err3 := strconv.Atoi(datePart[6:8])
	if err1 != nil || err2 != nil || err3 != nil {
		return rrule.DateValue{}, ruleParseError("invalid date token", tok)
	}

	if timePart == "" {
		return rrule.NewDate(year, month, day), nil
	}
	if len(timePart) != 6 {
		return rrule.DateValue{}, ruleParseError("invalid time token", tok)
	}
	hour, err4 := strconv.Atoi(timePart[0:2])
	minute, err5 := strconv.Atoi(timePart[2:4])
	second, err6 := strconv.Atoi(timePart[4:6])
	if err4 != nil || err5 != nil || err6 != nil {
		return rrule.DateValue{}, ruleParseError("invalid time token", tok)
	}
	return rrule.NewDateTime(year, month, day, hour, minute, second), nil
}

// ParseDateList parses an RDATE/EXDATE value: a comma-separated list
// of date or date-time tokens.
func ParseDateList(value string) ([]rrule.DateValue, error) {
	var out []rrule.DateValue
	for _, tok := range strings.Split(value, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		d, err := ParseDateToken(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
