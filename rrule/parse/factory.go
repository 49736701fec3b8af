package parse

import (
	"log/slog"
	"time"

	"github.com/pnreddysvu/google-rfc-2445/rrule"
	"github.com/samber/mo"
)

type lineKind int

const (
	kindRRule lineKind = iota
	kindExRule
	kindRDate
	kindExDate
)

type parsedLine struct {
	kind  lineKind
	rule  rrule.Rule
	dates []rrule.DateValue
}

// parseLine resolves one folded content line to a mo.Result, carrying
// either a successfully parsed RRULE/EXRULE/RDATE/EXDATE or the error
// that would abort construction in strict mode.
func parseLine(line string) mo.Result[parsedLine] {
	prefix, value, ok := splitContentLine(line)
	if !ok {
		return mo.Err[parsedLine](rrule.NewParseError(line, "content line missing ':'"))
	}
	switch prefix {
	case "RRULE":
		r, err := ParseRule(value)
		if err != nil {
			return mo.Err[parsedLine](err)
		}
		return mo.Ok(parsedLine{kind: kindRRule, rule: r})
	case "EXRULE":
		r, err := ParseRule(value)
		if err != nil {
			return mo.Err[parsedLine](err)
		}
		return mo.Ok(parsedLine{kind: kindExRule, rule: r})
	case "RDATE":
		dates, err := ParseDateList(value)
		if err != nil {
			return mo.Err[parsedLine](err)
		}
		return mo.Ok(parsedLine{kind: kindRDate, dates: dates})
	case "EXDATE":
		dates, err := ParseDateList(value)
		if err != nil {
			return mo.Err[parsedLine](err)
		}
		return mo.Ok(parsedLine{kind: kindExDate, dates: dates})
	default:
		return mo.Err[parsedLine](rrule.NewParseError(line, "unrecognized content line"))
	}
}

// CreateIteratorFromParts builds the same compound iterator as
// CreateIterator, but from already-separated RRULE/EXRULE value
// strings and structured RDATE/EXDATE date lists — the shape a
// caller that already parsed an iCalendar component (rather than a
// raw RDATA text block) naturally has on hand.
func CreateIteratorFromParts(ruleText, exruleText string, rdate, exdate []rrule.DateValue, dtStart rrule.DateValue, loc *time.Location, strict bool, logger *slog.Logger) (rrule.RecurrenceIterator, error) {
	if logger == nil {
		logger = slog.Default()
	}

	included := []rrule.RecurrenceIterator{rrule.NewDateListIterator([]rrule.DateValue{dtStart})}
	var excluded []rrule.RecurrenceIterator

	if ruleText != "" {
		r, err := ParseRule(ruleText)
		if err != nil {
			if strict {
				return nil, err
			}
			logger.Warn("dropping invalid RRULE", slog.String("value", ruleText), slog.Any("error", err))
		} else if it, err := rrule.NewRuleIterator(r, dtStart, loc, logger); err != nil {
			if strict {
				return nil, err
			}
			logger.Warn("dropping invalid RRULE", slog.String("value", ruleText), slog.Any("error", err))
		} else {
			included = append(included, it)
		}
	}

	if exruleText != "" {
		r, err := ParseRule(exruleText)
		if err != nil {
			if strict {
				return nil, err
			}
			logger.Warn("dropping invalid EXRULE", slog.String("value", exruleText), slog.Any("error", err))
		} else if it, err := rrule.NewRuleIterator(r, dtStart, loc, logger); err != nil {
			if strict {
				return nil, err
			}
			logger.Warn("dropping invalid EXRULE", slog.String("value", exruleText), slog.Any("error", err))
		} else {
			excluded = append(excluded, it)
		}
	}

	if len(rdate) > 0 {
		included = append(included, rrule.NewDateListIterator(rdate))
	}
	if len(exdate) > 0 {
		excluded = append(excluded, rrule.NewDateListIterator(exdate))
	}

	return rrule.NewCompoundIterator(included, excluded), nil
}

// CreateIterator is this package's top-level factory surface: it
// parses an RDATA text block against dtStart and assembles the
// compound iterator that
// unions RRULE/RDATE occurrences (dtStart always included as the
// first emission) and subtracts EXRULE/EXDATE occurrences. loc is the
// time zone RRULE wall-clock arithmetic runs in. In strict mode the
// first malformed or invalid line aborts construction; in lenient
// mode it's logged and dropped.
func CreateIterator(rdata string, dtStart rrule.DateValue, loc *time.Location, strict bool, logger *slog.Logger) (rrule.RecurrenceIterator, error) {
	if logger == nil {
		logger = slog.Default()
	}

	included := []rrule.RecurrenceIterator{rrule.NewDateListIterator([]rrule.DateValue{dtStart})}
	var excluded []rrule.RecurrenceIterator
	var rdateValues, exdateValues []rrule.DateValue

	for _, line := range foldLines(rdata) {
		parsed, err := parseLine(line).Get()
		if err != nil {
			if strict {
				return nil, err
			}
			logger.Warn("dropping malformed content line", slog.String("line", line), slog.Any("error", err))
			continue
		}

		switch parsed.kind {
		case kindRRule, kindExRule:
			it, err := rrule.NewRuleIterator(parsed.rule, dtStart, loc, logger)
			if err != nil {
				if strict {
					return nil, err
				}
				logger.Warn("dropping invalid rule", slog.String("line", line), slog.Any("error", err))
				continue
			}
			if parsed.kind == kindRRule {
				included = append(included, it)
			} else {
				excluded = append(excluded, it)
			}
		case kindRDate:
			rdateValues = append(rdateValues, parsed.dates...)
		case kindExDate:
			exdateValues = append(exdateValues, parsed.dates...)
		}
	}

	if len(rdateValues) > 0 {
		included = append(included, rrule.NewDateListIterator(rdateValues))
	}
	if len(exdateValues) > 0 {
		excluded = append(excluded, rrule.NewDateListIterator(exdateValues))
	}

	return rrule.NewCompoundIterator(included, excluded), nil
}
