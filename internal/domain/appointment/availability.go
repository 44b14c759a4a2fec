package appointment

import (
	"time"

	"github.com/Lis-Kacper/BeautySaloon/internal/models"
)

// FreeSlots walks the business window of the given day in fixed steps
// and returns, in chronological order, every slot no existing
// appointment intersects. A fully booked day yields an empty slice, not
// an error.
func FreeSlots(day time.Time, window Window, existing []models.Appointment) []TimeSlot {
	dayStart, dayEnd := window.Bounds(day)

	slots := make([]TimeSlot, 0, int(dayEnd.Sub(dayStart)/window.Slot))

	for cur := dayStart; !cur.Add(window.Slot).After(dayEnd); cur = cur.Add(window.Slot) {
		slotStart := cur
		slotEnd := cur.Add(window.Slot)

		if !HasConflict(slotStart, slotEnd, existing) {
			slots = append(slots, TimeSlot{
				StartTime: slotStart,
				EndTime:   slotEnd,
			})
		}
	}

	return slots
}
