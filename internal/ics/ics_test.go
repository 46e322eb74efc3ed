package ics

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thinkflow/thinkflow/internal/model"
)

func TestEncodeSkipsActionsWithoutDueDate(t *testing.T) {
	payload := NewEncoder().Encode([]model.ActionItem{
		{Summary: "A", DueDate: "2025-02-20"},
		{Summary: "B"},
	})
	s := string(payload)

	assert.Equal(t, 1, strings.Count(s, "BEGIN:VEVENT"))
	assert.Contains(t, s, "SUMMARY:A")
	assert.NotContains(t, s, "SUMMARY:B")
	assert.Contains(t, s, "DTSTART:20250220T090000")
	assert.Contains(t, s, "DTEND:20250220T100000")
}

func TestEncodeEmptyWhenNothingQualifies(t *testing.T) {
	enc := NewEncoder()
	assert.Empty(t, enc.Encode(nil))
	assert.Empty(t, enc.Encode([]model.ActionItem{{Summary: "A"}, {Summary: "B"}}))
	assert.Empty(t, enc.Encode([]model.ActionItem{{Summary: "A", DueDate: "someday"}}))
}

func TestEncodeCalendarEnvelope(t *testing.T) {
	payload := NewEncoder().Encode([]model.ActionItem{{Summary: "A", DueDate: "2025-02-20"}})
	s := string(payload)
	require.True(t, strings.HasPrefix(s, "BEGIN:VCALENDAR"))
	assert.Contains(t, s, "VERSION:2.0")
	assert.True(t, strings.HasSuffix(s, "END:VCALENDAR\r\n"))
}

func TestEncodeEscapesReservedChars(t *testing.T) {
	payload := NewEncoder().Encode([]model.ActionItem{
		{Summary: "call mom; then dad, maybe", DueDate: "2025-02-20"},
	})
	assert.Contains(t, string(payload), `SUMMARY:call mom\; then dad\, maybe`)
}

func TestEncodeTruncatesLongTitleOnRuneBoundary(t *testing.T) {
	// 2 bytes per rune; the 255-byte cap lands mid-rune, so a byte
	// slice would split the sequence.
	title := strings.Repeat("é", 200)
	payload := NewEncoder().Encode([]model.ActionItem{
		{Summary: title, DueDate: "2025-02-20"},
	})
	s := string(payload)
	require.True(t, utf8.ValidString(s), "payload carries invalid UTF-8")

	start := strings.Index(s, "SUMMARY:") + len("SUMMARY:")
	end := strings.Index(s[start:], "\r\n")
	require.Greater(t, end, 0)
	got := s[start : start+end]
	assert.LessOrEqual(t, len(got), 255)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("é", 127), got)
}

func TestEncodeUniqueUIDs(t *testing.T) {
	payload := NewEncoder().Encode([]model.ActionItem{
		{Summary: "A", DueDate: "2025-02-20"},
		{Summary: "B", DueDate: "2025-02-21"},
	})
	lines := strings.Split(string(payload), "\r\n")
	var uids []string
	for _, l := range lines {
		if strings.HasPrefix(l, "UID:") {
			uids = append(uids, l)
		}
	}
	require.Len(t, uids, 2)
	assert.NotEqual(t, uids[0], uids[1])
}

func TestEventCount(t *testing.T) {
	actions := []model.ActionItem{
		{Summary: "A", DueDate: "2025-02-20"},
		{Summary: "B"},
		{Summary: "C", DueDate: "not a date"},
	}
	assert.Equal(t, 1, EventCount(actions))
	assert.Equal(t, 0, EventCount(nil))
}
