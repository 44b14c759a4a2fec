package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/Lis-Kacper/BeautySaloon/internal/domain/appointment"
	"github.com/Lis-Kacper/BeautySaloon/internal/httperr"
	"github.com/Lis-Kacper/BeautySaloon/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateIfFree checks for overlapping rows and inserts in a single
// transaction, locking the overlapping candidates. The exclusion
// constraint on the table backs this up across connections; either path
// surfaces as slot_unavailable.
func (r *AppointmentGormRepository) CreateIfFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"start_time < ? AND end_time > ?",
				ap.EndTime,
				ap.StartTime,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_unavailable")
		}

		return tx.Create(ap).Error
	})

	if err != nil && httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness("slot_unavailable")
	}

	return err
}

// --------------------------------------------------
// Appointment (admin)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

// SaveIfFree persists an edited appointment, re-checking overlaps
// against every other row inside the same transaction.
func (r *AppointmentGormRepository) SaveIfFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"id <> ? AND start_time < ? AND end_time > ?",
				ap.ID,
				ap.EndTime,
				ap.StartTime,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_unavailable")
		}

		return tx.Save(ap).Error
	})

	if err != nil && httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness("slot_unavailable")
	}

	return err
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForRange(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"start_time < ? AND end_time > ?",
			end, start,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Admin login
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAdminByUsername(
	ctx context.Context,
	username string,
) (*models.Admin, error) {

	var admin models.Admin
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&admin).Error; err != nil {
		return nil, err
	}

	return &admin, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
