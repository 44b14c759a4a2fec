package handlers

import (
	"time"

	"github.com/Lis-Kacper/BeautySaloon/internal/config"
	"github.com/Lis-Kacper/BeautySaloon/internal/timezone"
)

// One salon, one timezone. Date-only params parse in the salon
// location; full timestamps keep their offset when they carry one and
// are anchored to the salon location when they do not. Everything is
// normalized to the salon location before slot math.

func salonLocation(cfg *config.Config) *time.Location {
	return timezone.Location(cfg.Timezone)
}

func parseDate(cfg *config.Config, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		salonLocation(cfg),
	)
}

func parseTimestamp(cfg *config.Config, s string) (time.Time, error) {
	loc := salonLocation(cfg)

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}

	// Offset-less ISO timestamps ("2025-03-10T09:00:00") are read as
	// salon wall-clock time.
	return time.ParseInLocation("2006-01-02T15:04:05", s, loc)
}
