package parse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFoldLines_JoinsContinuations(t *testing.T) {
	raw := "RRULE:FREQ=DAILY;\r\n COUNT=5\nEXDATE:19970904\n"
	got := foldLines(raw)
	require.Equal(t, []string{"RRULE:FREQ=DAILY;COUNT=5", "EXDATE:19970904"}, got)
}

func TestFoldLines_DropsBlankLines(t *testing.T) {
	raw := "RRULE:FREQ=DAILY\n\n\nEXDATE:19970904\n"
	got := foldLines(raw)
	require.Equal(t, []string{"RRULE:FREQ=DAILY", "EXDATE:19970904"}, got)
}

func TestSplitContentLine(t *testing.T) {
	prefix, value, ok := splitContentLine("RRULE:FREQ=DAILY;COUNT=5")
	require.True(t, ok)
	require.Equal(t, "RRULE", prefix)
	require.Equal(t, "FREQ=DAILY;COUNT=5", value)
}

func TestSplitContentLine_DropsParams(t *testing.T) {
	prefix, value, ok := splitContentLine("RDATE;VALUE=DATE:19970904,19970911")
	require.True(t, ok)
	require.Equal(t, "RDATE", prefix)
	require.Equal(t, "19970904,19970911", value)
}

func TestSplitContentLine_NoColonFails(t *testing.T) {
	_, _, ok := splitContentLine("FREQ=DAILY")
	require.False(t, ok)
}
