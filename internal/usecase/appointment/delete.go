package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/Lis-Kacper/BeautySaloon/internal/domain/appointment"
	"github.com/Lis-Kacper/BeautySaloon/internal/httperr"
)

type DeleteAppointment struct {
	repo domain.Repository
}

func NewDeleteAppointment(repo domain.Repository) *DeleteAppointment {
	return &DeleteAppointment{repo: repo}
}

// Execute removes the appointment permanently. Deletion is the only
// cancellation mechanism, there is no status column.
func (uc *DeleteAppointment) Execute(ctx context.Context, id uint) error {
	if err := uc.repo.DeleteAppointment(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("appointment_not_found")
		}
		return err
	}
	return nil
}
