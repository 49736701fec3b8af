package parse

import "strings"

// foldLines splits raw content on CRLF/LF and joins continuation
// lines: a line break followed by a space or tab folds into the
// previous line with that leading whitespace character dropped, per
// RFC 5545 §3.1.
func foldLines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	rawLines := strings.Split(raw, "\n")

	var out []string
	for _, line := range rawLines {
		if len(out) > 0 && len(line) > 0 && (line[0] == ' ' || line[0] == '\t') {
			out[len(out)-1] += line[1:]
			continue
		}
		out = append(out, line)
	}

	var trimmed []string
	for _, line := range out {
		if strings.TrimSpace(line) == "" {
			continue
		}
		trimmed = append(trimmed, line)
	}
	return trimmed
}

// splitContentLine splits a folded content line into its prefix (the
// part before the first ':' or ';') and value. Params between a ';'
// prefix and the final ':' are dropped — this parser only cares about
// RRULE/EXRULE/RDATE/EXDATE values, not their own VALUE=/TZID= params,
// beyond what ParseDateToken infers from the token shape itself.
func splitContentLine(line string) (prefix, value string, ok bool) {
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return "", "", false
	}
	head := line[:colon]
	value = line[colon+1:]
	if semi := strings.IndexByte(head, ';'); semi >= 0 {
		head = head[:semi]
	}
	return strings.ToUpper(strings.TrimSpace(head)), value, true
}
