package appointment

import (
	"time"

	"github.com/Lis-Kacper/BeautySaloon/internal/models"
)

// Overlaps reports whether the half-open intervals [a0,a1) and [b0,b1)
// intersect. Touching endpoints do not overlap, so back-to-back
// appointments are allowed.
func Overlaps(a0, a1, b0, b1 time.Time) bool {
	return a0.Before(b1) && b0.Before(a1)
}

// HasConflict reports whether [start,end) intersects any existing
// appointment. Point-in-time check against the rows the caller loaded;
// the storage layer stays authoritative under concurrency.
func HasConflict(start, end time.Time, existing []models.Appointment) bool {
	return HasConflictExcluding(start, end, existing, 0)
}

// HasConflictExcluding is HasConflict with one appointment ignored,
// used when re-timing an existing row so it does not conflict with
// itself.
func HasConflictExcluding(start, end time.Time, existing []models.Appointment, excludeID uint) bool {
	for _, ap := range existing {
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}
		if Overlaps(start, end, ap.StartTime, ap.EndTime) {
			return true
		}
	}
	return false
}
