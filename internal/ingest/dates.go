package ingest

import (
	"fmt"
	"strings"
	"time"
)

// Day-first layouts: regional spreadsheets write 15/03/2024 for March 15th.
var dueDateLayouts = []string{
	"02/01/2006",
	"02/01/06",
	"02-01-2006",
	"02.01.2006",
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// ParseDueDate parses an expiry date string with day-first semantics and
// returns it normalized to midnight UTC. Callers skip the row on error.
func ParseDueDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty due date")
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable due date %q", s)
}
