package appointment

import "time"

type TimeSlot struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// Window is the daily span during which bookings may be made, expressed
// as "15:04" wall-clock strings plus the slot length.
type Window struct {
	Open  string
	Close string
	Slot  time.Duration
}

// Bounds anchors the window to a concrete day, in that day's location.
func (w Window) Bounds(day time.Time) (time.Time, time.Time) {
	loc := day.Location()

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			day.Year(), day.Month(), day.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	return parseHM(w.Open), parseHM(w.Close)
}
