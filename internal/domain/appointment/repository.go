package appointment

import (
	"context"
	"time"

	"github.com/Lis-Kacper/BeautySaloon/internal/models"
)

type Repository interface {
	// -------- Appointment (create / conflict) --------
	CreateIfFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (admin) --------
	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	SaveIfFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Availability --------
	ListAppointmentsForRange(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Admin login --------
	GetAdminByUsername(
		ctx context.Context,
		username string,
	) (*models.Admin, error)
}
