package timezone

import "time"

const DefaultTimezone = "Europe/Warsaw"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// NowIn is the current wall-clock time in the salon's zone.
func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
