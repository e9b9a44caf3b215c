package appointment

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/NovaBeautyTech/salon-manager/internal/domain/appointment"
	"github.com/NovaBeautyTech/salon-manager/internal/httperr"
	"github.com/NovaBeautyTech/salon-manager/internal/infra/cache"
	"github.com/NovaBeautyTech/salon-manager/internal/models"
)

// fakeRepo is an in-memory stand-in for the gorm repository. The
// conflict check mirrors the SQL one: blocking appointments of the same
// staff member whose interval intersects the candidate's.
type fakeRepo struct {
	salon    *models.Salon
	service  *models.Service
	staff    *models.StaffMember
	client   *models.Client
	schedule map[int]*models.WorkSchedule

	appointments []*models.Appointment
	nextID       uint

	updatedClients []*models.Client
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		salon:   &models.Salon{ID: 1, Timezone: "Europe/Kyiv"},
		service: &models.Service{ID: 3, SalonID: 1, Name: "Manicure", DurationMin: 60, Price: 500, Active: true},
		staff:   &models.StaffMember{ID: 2, SalonID: 1, FirstName: "Olena", Active: true},
		client:  &models.Client{ID: 4, SalonID: 1, FirstName: "Iryna", Phone: "+380501234567"},
		schedule: map[int]*models.WorkSchedule{
			1: {StaffID: 2, Weekday: 1, Active: true, StartTime: "09:00", EndTime: "18:00"},
		},
		nextID: 100,
	}
}

func (f *fakeRepo) GetSalonByID(_ context.Context, id uint) (*models.Salon, error) {
	if f.salon == nil || f.salon.ID != id {
		return nil, httperr.ErrBusiness("salon_not_found")
	}
	return f.salon, nil
}

func (f *fakeRepo) GetService(_ context.Context, salonID, serviceID uint) (*models.Service, error) {
	if f.service == nil || f.service.ID != serviceID || f.service.SalonID != salonID {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return f.service, nil
}

func (f *fakeRepo) GetStaffMember(_ context.Context, salonID, staffID uint) (*models.StaffMember, error) {
	if f.staff == nil || f.staff.ID != staffID || f.staff.SalonID != salonID {
		return nil, httperr.ErrBusiness("staff_not_found")
	}
	return f.staff, nil
}

func (f *fakeRepo) GetClient(_ context.Context, salonID, clientID uint) (*models.Client, error) {
	if f.client == nil || f.client.ID != clientID || f.client.SalonID != salonID {
		return nil, httperr.ErrBusiness("client_not_found")
	}
	return f.client, nil
}

func (f *fakeRepo) UpdateClient(_ context.Context, client *models.Client) error {
	f.updatedClients = append(f.updatedClients, client)
	return nil
}

func (f *fakeRepo) GetWorkSchedule(_ context.Context, staffID uint, weekday int) (*models.WorkSchedule, error) {
	ws, ok := f.schedule[weekday]
	if !ok || ws.StaffID != staffID {
		return nil, nil
	}
	return ws, nil
}

func (f *fakeRepo) CreateAppointmentIfFree(_ context.Context, ap *models.Appointment) error {
	for _, existing := range f.appointments {
		if existing.StaffID != ap.StaffID {
			continue
		}
		if !domain.Blocking(domain.Status(existing.Status)) {
			continue
		}
		if domain.Overlaps(ap.StartTime, ap.EndTime, existing.StartTime, existing.EndTime) {
			return httperr.ErrBusinessMeta(httperr.CodeSlotConflict, map[string]any{
				"appointment_id": existing.ID,
			})
		}
	}

	ap.ID = f.nextID
	f.nextID++
	f.appointments = append(f.appointments, ap)
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, salonID, appointmentID uint) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.ID == appointmentID && ap.SalonID == salonID {
			return ap, nil
		}
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, _ *models.Appointment) error {
	return nil
}

func (f *fakeRepo) ListAppointmentsForDay(_ context.Context, staffID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.StaffID != staffID || !domain.Blocking(domain.Status(ap.Status)) {
			continue
		}
		if !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(_ context.Context, salonID, staffID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.SalonID != salonID {
			continue
		}
		if staffID != 0 && ap.StaffID != staffID {
			continue
		}
		if domain.Overlaps(ap.StartTime, ap.EndTime, start, end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

func newProposeBooking(repo domain.Repository) *ProposeBooking {
	return NewProposeBooking(repo, cache.NewAvailabilityCache(nil), nil)
}

// 2024-03-11 is a Monday, matching the fake's schedule row.
func bookingInput() ProposeBookingInput {
	return ProposeBookingInput{
		SalonID:   1,
		StaffID:   2,
		ServiceID: 3,
		ClientID:  4,
		Date:      "2024-03-11",
		Time:      "10:00",
	}
}

func TestProposeBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a scheduled appointment", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newProposeBooking(repo)

		ap, err := uc.Execute(ctx, bookingInput())
		require.NoError(t, err)

		assert.Equal(t, string(domain.StatusScheduled), ap.Status)
		assert.Equal(t, uint(2), ap.StaffID)
		assert.Equal(t, 500.0, ap.Price)
		assert.Equal(t, 500.0, ap.FinalPrice)
		assert.Equal(t, models.PaymentPending, ap.PaymentStatus)
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", ap.Reference.String())

		assert.Equal(t, 10, ap.StartTime.Hour())
		assert.Equal(t, 11, ap.EndTime.Hour())
		assert.Equal(t, "Europe/Kyiv", ap.StartTime.Location().String())
	})

	t.Run("conflicting slot is rejected with the blocking id", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newProposeBooking(repo)

		first, err := uc.Execute(ctx, bookingInput())
		require.NoError(t, err)

		in := bookingInput()
		in.Time = "10:30"
		_, err = uc.Execute(ctx, in)
		require.Error(t, err)

		assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotConflict))
		meta := httperr.BusinessMeta(err)
		require.NotNil(t, meta)
		assert.Equal(t, first.ID, meta["appointment_id"])
	})

	t.Run("back to back bookings both pass", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newProposeBooking(repo)

		_, err := uc.Execute(ctx, bookingInput())
		require.NoError(t, err)

		in := bookingInput()
		in.Time = "11:00"
		_, err = uc.Execute(ctx, in)
		require.NoError(t, err)
	})

	t.Run("cancelled appointment frees the slot", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newProposeBooking(repo)

		first, err := uc.Execute(ctx, bookingInput())
		require.NoError(t, err)
		first.Status = string(domain.StatusCancelled)

		_, err = uc.Execute(ctx, bookingInput())
		require.NoError(t, err)
	})

	t.Run("booking past closing fails out_of_hours", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newProposeBooking(repo)

		in := bookingInput()
		in.Time = "17:30" // 60min service, closing at 18:00
		_, err := uc.Execute(ctx, in)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeOutOfHours))
	})

	t.Run("last slot of the day passes", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newProposeBooking(repo)

		in := bookingInput()
		in.Time = "17:00"
		_, err := uc.Execute(ctx, in)
		require.NoError(t, err)
	})

	t.Run("day without a schedule row fails out_of_hours", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newProposeBooking(repo)

		in := bookingInput()
		in.Date = "2024-03-12" // Tuesday, no row
		_, err := uc.Execute(ctx, in)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeOutOfHours))
	})

	t.Run("inactive service is rejected", func(t *testing.T) {
		repo := newFakeRepo()
		repo.service.Active = false
		uc := newProposeBooking(repo)

		_, err := uc.Execute(ctx, bookingInput())
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "service_inactive"))
	})

	t.Run("inactive staff member is rejected", func(t *testing.T) {
		repo := newFakeRepo()
		repo.staff.Active = false
		uc := newProposeBooking(repo)

		_, err := uc.Execute(ctx, bookingInput())
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "staff_inactive"))
	})

	t.Run("garbage date is invalid_request", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newProposeBooking(repo)

		in := bookingInput()
		in.Date = "11-03-2024"
		_, err := uc.Execute(ctx, in)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRequest))
	})
}
