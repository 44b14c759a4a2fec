package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lis-Kacper/BeautySaloon/internal/models"
)

func testWindow() Window {
	return Window{Open: "09:00", Close: "17:00", Slot: 30 * time.Minute}
}

func day(t *testing.T) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)
	return time.Date(2025, 3, 10, 0, 0, 0, 0, loc)
}

func at(d time.Time, hour, min int) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, d.Location())
}

func TestFreeSlots_EmptyDayReturnsFullWindow(t *testing.T) {
	d := day(t)

	slots := FreeSlots(d, testWindow(), nil)

	require.Len(t, slots, 16)
	assert.Equal(t, at(d, 9, 0), slots[0].StartTime)
	assert.Equal(t, at(d, 9, 30), slots[0].EndTime)
	assert.Equal(t, at(d, 16, 30), slots[15].StartTime)
	assert.Equal(t, at(d, 17, 0), slots[15].EndTime)

	for i, s := range slots {
		assert.Equal(t, 30*time.Minute, s.EndTime.Sub(s.StartTime), "slot %d", i)
		if i > 0 {
			assert.True(t, s.StartTime.After(slots[i-1].StartTime), "slots must be chronological")
		}
	}
}

func TestFreeSlots_BookedSlotIsExcluded(t *testing.T) {
	d := day(t)

	existing := []models.Appointment{
		{StartTime: at(d, 9, 0), EndTime: at(d, 9, 30)},
	}

	slots := FreeSlots(d, testWindow(), existing)

	require.Len(t, slots, 15)
	// 09:00-09:30 is gone, the back-to-back 09:30-10:00 slot stays.
	assert.Equal(t, at(d, 9, 30), slots[0].StartTime)
	assert.Equal(t, at(d, 10, 0), slots[0].EndTime)
}

func TestFreeSlots_AppointmentSpanningTwoSlots(t *testing.T) {
	d := day(t)

	// 10:15-10:45 straddles the 10:00 and 10:30 slots.
	existing := []models.Appointment{
		{StartTime: at(d, 10, 15), EndTime: at(d, 10, 45)},
	}

	slots := FreeSlots(d, testWindow(), existing)

	require.Len(t, slots, 14)
	for _, s := range slots {
		assert.NotEqual(t, at(d, 10, 0), s.StartTime)
		assert.NotEqual(t, at(d, 10, 30), s.StartTime)
	}
}

func TestFreeSlots_FullyBookedDayReturnsEmpty(t *testing.T) {
	d := day(t)

	var existing []models.Appointment
	for cur := at(d, 9, 0); cur.Before(at(d, 17, 0)); cur = cur.Add(30 * time.Minute) {
		existing = append(existing, models.Appointment{
			StartTime: cur,
			EndTime:   cur.Add(30 * time.Minute),
		})
	}

	slots := FreeSlots(d, testWindow(), existing)
	assert.Empty(t, slots)
}

func TestFreeSlots_WindowIsConfigurable(t *testing.T) {
	d := day(t)

	slots := FreeSlots(d, Window{Open: "11:00", Close: "13:00", Slot: 30 * time.Minute}, nil)

	require.Len(t, slots, 4)
	assert.Equal(t, at(d, 11, 0), slots[0].StartTime)
	assert.Equal(t, at(d, 13, 0), slots[3].EndTime)
}
