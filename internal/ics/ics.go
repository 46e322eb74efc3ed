// Package ics serializes an action list into an iCalendar payload.
// Only actions with a normalizable YYYY-MM-DD due date are exported;
// each becomes a fixed 09:00-10:00 event on that day.
package ics

import (
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"

	"github.com/thinkflow/thinkflow/internal/model"
)

const (
	dateLayout  = "2006-01-02"
	stampLayout = "20060102T150405"
	maxTitleLen = 255
)

// Encoder writes calendar payloads. The entropy source feeds event UIDs.
type Encoder struct {
	entropy *rand.Rand
	now     func() time.Time
}

// NewEncoder creates an Encoder.
func NewEncoder() *Encoder {
	return &Encoder{
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
	}
}

// Encode renders the qualifying actions as an RFC 5545 calendar.
// Returns an empty payload when no action has a valid due date.
func (e *Encoder) Encode(actions []model.ActionItem) []byte {
	var events []string
	stamp := e.now().UTC().Format(stampLayout) + "Z"

	for _, a := range actions {
		due, err := time.ParseInLocation(dateLayout, a.DueDate, time.Local)
		if err != nil {
			continue
		}
		begin := time.Date(due.Year(), due.Month(), due.Day(), 9, 0, 0, 0, time.Local)
		end := begin.Add(time.Hour)

		title := a.Summary
		if title == "" {
			title = model.UntitledAction
		}
		title = truncate(title, maxTitleLen)

		uid := ulid.MustNew(ulid.Timestamp(e.now()), e.entropy).String()
		events = append(events, strings.Join([]string{
			"BEGIN:VEVENT",
			"UID:" + uid + "@thinkflow",
			"DTSTAMP:" + stamp,
			"DTSTART:" + begin.Format(stampLayout),
			"DTEND:" + end.Format(stampLayout),
			"SUMMARY:" + escapeText(title),
			"END:VEVENT",
		}, "\r\n"))
	}

	if len(events) == 0 {
		return []byte{}
	}

	cal := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//thinkflow//action plan//EN",
		strings.Join(events, "\r\n"),
		"END:VCALENDAR",
	}, "\r\n") + "\r\n"
	return []byte(cal)
}

// truncate cuts s to at most max bytes on a rune boundary, so a
// multi-byte character is never split mid-sequence.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// escapeText escapes the characters RFC 5545 reserves in TEXT values.
func escapeText(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\n", `\n`,
		"\r", "",
	)
	return r.Replace(s)
}

// EventCount reports how many actions would be exported, for callers
// that warn before writing an empty file.
func EventCount(actions []model.ActionItem) int {
	n := 0
	for _, a := range actions {
		if _, err := time.Parse(dateLayout, a.DueDate); err == nil {
			n++
		}
	}
	return n
}
