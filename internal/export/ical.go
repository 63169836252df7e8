// Package export renders a finalized itinerary as an iCalendar stream, a
// plain-text summary, or a printable PDF.
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"TRAVELPLANNER_BACK-END/internal/models"
)

const icalTimeLayout = "20060102T150405"

// ICal renders one VEVENT per activity, day by day from the trip start date.
// Times are floating local times, matching the itinerary's HH:MM activity
// slots.
func ICal(it *models.Itinerary, destination string, startDate time.Time) ([]byte, error) {
	var buf bytes.Buffer
	writeLine(&buf, "BEGIN:VCALENDAR")
	writeLine(&buf, fmt.Sprintf("PRODID:-//Travel Planner//%s//EN", destination))
	writeLine(&buf, "VERSION:2.0")

	current := startDate
	for day := 1; day <= len(it.DailyItinerary); day++ {
		activities, ok := it.DailyItinerary[models.DayLabel(day)]
		if !ok {
			return nil, fmt.Errorf("daily itinerary missing %q", models.DayLabel(day))
		}
		for _, act := range activities {
			start, err := combine(current, act.StartTime)
			if err != nil {
				return nil, fmt.Errorf("%s %q: %w", models.DayLabel(day), act.Name, err)
			}
			end, err := combine(current, act.EndTime)
			if err != nil {
				return nil, fmt.Errorf("%s %q: %w", models.DayLabel(day), act.Name, err)
			}

			location := act.Location
			if location == "" {
				location = destination
			}

			writeLine(&buf, "BEGIN:VEVENT")
			writeLine(&buf, "UID:"+uuid.New().String())
			writeLine(&buf, "DTSTAMP:"+time.Now().UTC().Format(icalTimeLayout)+"Z")
			writeLine(&buf, "DTSTART:"+start.Format(icalTimeLayout))
			writeLine(&buf, "DTEND:"+end.Format(icalTimeLayout))
			writeLine(&buf, "SUMMARY:"+escapeText(act.Name))
			writeLine(&buf, "DESCRIPTION:"+escapeText(act.Description))
			writeLine(&buf, "LOCATION:"+escapeText(location))
			writeLine(&buf, "END:VEVENT")
		}
		current = current.AddDate(0, 0, 1)
	}

	writeLine(&buf, "END:VCALENDAR")
	return buf.Bytes(), nil
}

// combine attaches an HH:MM clock time to a calendar date
func combine(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", clock, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

// writeLine emits one content line with CRLF per RFC 5545
func writeLine(buf *bytes.Buffer, line string) {
	buf.WriteString(line)
	buf.WriteString("\r\n")
}

// escapeText escapes commas, semicolons, backslashes and newlines in text
// property values
func escapeText(s string) string {
	r := strings.NewReplacer("\\", "\\\\", ";", "\\;", ",", "\\,", "\n", "\\n")
	return r.Replace(s)
}
