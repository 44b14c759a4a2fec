package appointment

import (
	"context"
	"time"

	domain "github.com/Lis-Kacper/BeautySaloon/internal/domain/appointment"
)

type GetAvailability struct {
	repo   domain.Repository
	window domain.Window
}

func NewGetAvailability(repo domain.Repository, window domain.Window) *GetAvailability {
	return &GetAvailability{repo: repo, window: window}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	day time.Time,
) ([]domain.TimeSlot, error) {

	dayStart, dayEnd := uc.window.Bounds(day)

	existing, err := uc.repo.ListAppointmentsForRange(
		ctx,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	return domain.FreeSlots(day, uc.window, existing), nil
}
