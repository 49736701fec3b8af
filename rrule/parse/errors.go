package parse

import "github.com/pnreddysvu/google-rfc-2445/rrule"

func ruleParseError(message, line string) *rrule.Error {
	return rrule.NewParseError(line, message)
}
