package appointment

import (
	"context"
	"time"

	domain "github.com/Lis-Kacper/BeautySaloon/internal/domain/appointment"
	"github.com/Lis-Kacper/BeautySaloon/internal/httperr"
	"github.com/Lis-Kacper/BeautySaloon/internal/models"
	"github.com/Lis-Kacper/BeautySaloon/internal/notifier"
	"github.com/Lis-Kacper/BeautySaloon/internal/slotlock"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Name    string
	Email   string
	Phone   string
	Service string

	StartTime time.Time
	EndTime   time.Time
}

// Notifier receives the confirmation event after a successful booking.
type Notifier interface {
	Dispatch(ev notifier.Event)
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	notifier Notifier
	locker   slotlock.Locker
}

func NewCreateAppointment(
	repo domain.Repository,
	n Notifier,
	locker slotlock.Locker,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		notifier: n,
		locker:   locker,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if in.Name == "" || in.Email == "" || in.Phone == "" || in.Service == "" ||
		in.StartTime.IsZero() || in.EndTime.IsZero() {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	if !domain.IsValidService(domain.Service(in.Service)) {
		return nil, httperr.ErrBusiness("invalid_service")
	}

	if !in.EndTime.After(in.StartTime) {
		return nil, httperr.ErrBusiness("invalid_time_range")
	}

	// Advisory per-slot lock; the repository transaction plus the
	// exclusion constraint decide for real.
	release, ok := uc.locker.Acquire(ctx, in.StartTime)
	if !ok {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}
	defer release()

	ap := &models.Appointment{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Service:   in.Service,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	}

	if err := uc.repo.CreateIfFree(ctx, ap); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notifier.Event{
		To:          ap.Email,
		Appointment: *ap,
	})

	return ap, nil
}
