package appointment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/Lis-Kacper/BeautySaloon/internal/domain/appointment"
	"github.com/Lis-Kacper/BeautySaloon/internal/httperr"
	"github.com/Lis-Kacper/BeautySaloon/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// UpdateAppointmentInput carries a partial edit: nil fields keep the
// stored value.
type UpdateAppointmentInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Service *string

	StartTime *time.Time
	EndTime   *time.Time
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo domain.Repository
}

func NewUpdateAppointment(repo domain.Repository) *UpdateAppointment {
	return &UpdateAppointment{repo: repo}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	if in.Name != nil {
		ap.Name = *in.Name
	}
	if in.Email != nil {
		ap.Email = *in.Email
	}
	if in.Phone != nil {
		ap.Phone = *in.Phone
	}
	if in.Service != nil {
		if !domain.IsValidService(domain.Service(*in.Service)) {
			return nil, httperr.ErrBusiness("invalid_service")
		}
		ap.Service = *in.Service
	}
	if in.StartTime != nil {
		ap.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		ap.EndTime = *in.EndTime
	}

	if !ap.EndTime.After(ap.StartTime) {
		return nil, httperr.ErrBusiness("invalid_time_range")
	}

	// Re-timing an appointment is re-validated against every other row,
	// with this row excluded so it cannot conflict with itself.
	if err := uc.repo.SaveIfFree(ctx, ap); err != nil {
		return nil, err
	}

	return ap, nil
}
