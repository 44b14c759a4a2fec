package appointment

import (
	"context"
	"time"

	domain "github.com/Lis-Kacper/BeautySaloon/internal/domain/appointment"
	"github.com/Lis-Kacper/BeautySaloon/internal/models"
	"github.com/Lis-Kacper/BeautySaloon/internal/notifier"
)

type fakeRepo struct {
	createIfFreeFn func(ctx context.Context, ap *models.Appointment) error
	listFn         func(ctx context.Context) ([]models.Appointment, error)
	getFn          func(ctx context.Context, id uint) (*models.Appointment, error)
	saveIfFreeFn   func(ctx context.Context, ap *models.Appointment) error
	deleteFn       func(ctx context.Context, id uint) error
	listRangeFn    func(ctx context.Context, start, end time.Time) ([]models.Appointment, error)
	getAdminFn     func(ctx context.Context, username string) (*models.Admin, error)
}

func (f *fakeRepo) CreateIfFree(ctx context.Context, ap *models.Appointment) error {
	if f.createIfFreeFn == nil {
		panic("CreateIfFree not configured")
	}
	return f.createIfFreeFn(ctx, ap)
}

func (f *fakeRepo) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	if f.listFn == nil {
		panic("ListAppointments not configured")
	}
	return f.listFn(ctx)
}

func (f *fakeRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	if f.getFn == nil {
		panic("GetAppointment not configured")
	}
	return f.getFn(ctx, id)
}

func (f *fakeRepo) SaveIfFree(ctx context.Context, ap *models.Appointment) error {
	if f.saveIfFreeFn == nil {
		panic("SaveIfFree not configured")
	}
	return f.saveIfFreeFn(ctx, ap)
}

func (f *fakeRepo) DeleteAppointment(ctx context.Context, id uint) error {
	if f.deleteFn == nil {
		panic("DeleteAppointment not configured")
	}
	return f.deleteFn(ctx, id)
}

func (f *fakeRepo) ListAppointmentsForRange(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	if f.listRangeFn == nil {
		panic("ListAppointmentsForRange not configured")
	}
	return f.listRangeFn(ctx, start, end)
}

func (f *fakeRepo) GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	if f.getAdminFn == nil {
		panic("GetAdminByUsername not configured")
	}
	return f.getAdminFn(ctx, username)
}

var _ domain.Repository = (*fakeRepo)(nil)

type fakeNotifier struct {
	events []notifier.Event
}

func (f *fakeNotifier) Dispatch(ev notifier.Event) {
	f.events = append(f.events, ev)
}
