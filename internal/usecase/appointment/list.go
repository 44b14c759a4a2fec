package appointment

import (
	"context"

	domain "github.com/Lis-Kacper/BeautySaloon/internal/domain/appointment"
	"github.com/Lis-Kacper/BeautySaloon/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute returns every appointment sorted by start time ascending.
func (uc *ListAppointments) Execute(
	ctx context.Context,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointments(ctx)
}
