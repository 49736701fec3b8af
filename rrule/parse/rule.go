package parse

import (
	"strconv"
	"strings"

	"github.com/pnreddysvu/google-rfc-2445/rrule"
	"github.com/samber/mo"
)

func splitParams(value string) map[string][]string {
	out := make(map[string][]string)
	for _, part := range strings.Split(value, ";") {
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.ToUpper(strings.TrimSpace(kv[0]))
		var vals []string
		for _, v := range strings.Split(kv[1], ",") {
			v = strings.TrimSpace(v)
			if v != "" {
				vals = append(vals, v)
			}
		}
		out[key] = vals
	}
	return out
}

func parseIntList(vals []string) ([]int, error) {
	if len(vals) == 0 {
		return nil, nil
	}
	out := make([]int, 0, len(vals))
	for _, v := range vals {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

var weekdayNames = map[string]rrule.Weekday{
	"MO": rrule.MO, "TU": rrule.TU, "WE": rrule.WE, "TH": rrule.TH,
	"FR": rrule.FR, "SA": rrule.SA, "SU": rrule.SU,
}

func parseWeekdayNum(v string) (rrule.WeekdayNum, error) {
	if len(v) < 2 {
		return rrule.WeekdayNum{}, ruleParseError("invalid BYDAY entry", v)
	}
	code := v[len(v)-2:]
	day, ok := weekdayNames[strings.ToUpper(code)]
	if !ok {
		return rrule.WeekdayNum{}, ruleParseError("invalid BYDAY weekday", v)
	}
	ordinal := 0
	if rest := v[:len(v)-2]; rest != "" {
		n, err := strconv.Atoi(rest)
		if err != nil {
			return rrule.WeekdayNum{}, ruleParseError("invalid BYDAY ordinal", v)
		}
		ordinal = n
	}
	return rrule.WeekdayNum{Ordinal: ordinal, Day: day}, nil
}

func parseByDayList(vals []string) ([]rrule.WeekdayNum, error) {
	if len(vals) == 0 {
		return nil, nil
	}
	out := make([]rrule.WeekdayNum, 0, len(vals))
	for _, v := range vals {
		wn, err := parseWeekdayNum(v)
		if err != nil {
			return nil, err
		}
		out = append(out, wn)
	}
	return out, nil
}

var freqNames = map[string]rrule.Frequency{
	"YEARLY":  rrule.YEARLY,
	"MONTHLY": rrule.MONTHLY,
	"WEEKLY":  rrule.WEEKLY,
	"DAILY":   rrule.DAILY,
}

// ParseRule parses an RRULE/EXRULE value (the text following the
// colon, e.g. "FREQ=WEEKLY;INTERVAL=2;BYDAY=MO,WE") into a rrule.Rule.
func ParseRule(value string) (rrule.Rule, error) {
	params := splitParams(value)

	freqVals, ok := params["FREQ"]
	if !ok || len(freqVals) != 1 {
		return rrule.Rule{}, ruleParseError("missing FREQ", value)
	}
	freq, ok := freqNames[strings.ToUpper(freqVals[0])]
	if !ok {
		return rrule.Rule{}, &rrule.Error{Type: rrule.ErrRule, Message: "unknown FREQ", Line: freqVals[0]}
	}

	r := rrule.Rule{Freq: freq, Interval: 1}

	if v, ok := params["INTERVAL"]; ok && len(v) == 1 {
		n, err := strconv.Atoi(v[0])
		if err != nil {
			return rrule.Rule{}, ruleParseError("invalid INTERVAL", v[0])
		}
		r.Interval = n
	}

	if v, ok := params["WKST"]; ok && len(v) == 1 {
		wd, ok := weekdayNames[strings.ToUpper(v[0])]
		if !ok {
			return rrule.Rule{}, ruleParseError("invalid WKST", v[0])
		}
		r.WkSt = wd
	}

	if v, ok := params["COUNT"]; ok && len(v) == 1 {
		n, err := strconv.Atoi(v[0])
		if err != nil {
			return rrule.Rule{}, ruleParseError("invalid COUNT", v[0])
		}
		r.Count = n
	}

	if v, ok := params["UNTIL"]; ok && len(v) == 1 {
		until, err := ParseDateToken(v[0])
		if err != nil {
			return rrule.Rule{}, err
		}
		r.Until = mo.Some(until)
	}

	var err error
	if r.ByDay, err = parseByDayList(params["BYDAY"]); err != nil {
		return rrule.Rule{}, err
	}
	if r.ByMonth, err = parseIntList(params["BYMONTH"]); err != nil {
		return rrule.Rule{}, ruleParseError("invalid BYMONTH", value)
	}
	if r.ByMonthDay, err = parseIntList(params["BYMONTHDAY"]); err != nil {
		return rrule.Rule{}, ruleParseError("invalid BYMONTHDAY", value)
	}
	if r.ByWeekNo, err = parseIntList(params["BYWEEKNO"]); err != nil {
		return rrule.Rule{}, ruleParseError("invalid BYWEEKNO", value)
	}
	if r.ByYearDay, err = parseIntList(params["BYYEARDAY"]); err != nil {
		return rrule.Rule{}, ruleParseError("invalid BYYEARDAY", value)
	}
	if r.BySetPos, err = parseIntList(params["BYSETPOS"]); err != nil {
		return rrule.Rule{}, ruleParseError("invalid BYSETPOS", value)
	}
	if r.ByHour, err = parseIntList(params["BYHOUR"]); err != nil {
		return rrule.Rule{}, ruleParseError("invalid BYHOUR", value)
	}
	if r.ByMinute, err = parseIntList(params["BYMINUTE"]); err != nil {
		return rrule.Rule{}, ruleParseError("invalid BYMINUTE", value)
	}
	if r.BySecond, err = parseIntList(params["BYSECOND"]); err != nil {
		return rrule.Rule{}, ruleParseError("invalid BYSECOND", value)
	}

	if err := r.Validate(); err != nil {
		return rrule.Rule{}, err
	}
	return r, nil
}
