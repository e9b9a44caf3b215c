package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/NovaBeautyTech/salon-manager/internal/domain/appointment"
	remdomain "github.com/NovaBeautyTech/salon-manager/internal/domain/reminder"
	"github.com/NovaBeautyTech/salon-manager/internal/httperr"
	"github.com/NovaBeautyTech/salon-manager/internal/infra/cache"
	"github.com/NovaBeautyTech/salon-manager/internal/models"
	ucreminder "github.com/NovaBeautyTech/salon-manager/internal/usecase/reminder"
)

// fakeReminderRepo backs the reminder lifecycle during status tests.
type fakeReminderRepo struct {
	reminders []*models.RepeatVisitReminder
	nextID    uint
}

func newFakeReminderRepo() *fakeReminderRepo {
	return &fakeReminderRepo{nextID: 500}
}

func (f *fakeReminderRepo) GetReminder(_ context.Context, salonID, reminderID uint) (*models.RepeatVisitReminder, error) {
	for _, r := range f.reminders {
		if r.ID == reminderID && r.SalonID == salonID {
			return r, nil
		}
	}
	return nil, httperr.ErrBusiness("reminder_not_found")
}

func (f *fakeReminderRepo) FindActiveReminder(_ context.Context, salonID, clientID, serviceID uint) (*models.RepeatVisitReminder, error) {
	for _, r := range f.reminders {
		if r.SalonID == salonID && r.ClientID == clientID && r.ServiceID == serviceID &&
			!remdomain.IsTerminal(remdomain.Status(r.Status)) {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReminderRepo) FindByFollowUpAppointment(_ context.Context, salonID, appointmentID uint) (*models.RepeatVisitReminder, error) {
	for _, r := range f.reminders {
		if r.SalonID == salonID && r.FollowUpAppointmentID != nil && *r.FollowUpAppointmentID == appointmentID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReminderRepo) CreateReminder(_ context.Context, r *models.RepeatVisitReminder) error {
	r.ID = f.nextID
	f.nextID++
	f.reminders = append(f.reminders, r)
	return nil
}

func (f *fakeReminderRepo) UpdateReminder(_ context.Context, _ *models.RepeatVisitReminder) error {
	return nil
}

func (f *fakeReminderRepo) ListReminders(_ context.Context, salonID uint) ([]models.RepeatVisitReminder, error) {
	var out []models.RepeatVisitReminder
	for _, r := range f.reminders {
		if r.SalonID == salonID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReminderRepo) ListDuePending(_ context.Context, salonID uint, cutoff time.Time) ([]models.RepeatVisitReminder, error) {
	var out []models.RepeatVisitReminder
	for _, r := range f.reminders {
		if r.SalonID == salonID && r.Status == string(remdomain.StatusPending) &&
			!r.RecommendedDate.After(cutoff) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReminderRepo) ListSalons(_ context.Context) ([]models.Salon, error) {
	return nil, nil
}

func (f *fakeReminderRepo) GetAppointment(_ context.Context, _, _ uint) (*models.Appointment, error) {
	return nil, httperr.ErrBusiness("appointment_not_found")
}

var _ remdomain.Repository = (*fakeReminderRepo)(nil)

func (f *fakeReminderRepo) active(clientID, serviceID uint) []*models.RepeatVisitReminder {
	var out []*models.RepeatVisitReminder
	for _, r := range f.reminders {
		if r.ClientID == clientID && r.ServiceID == serviceID &&
			!remdomain.IsTerminal(remdomain.Status(r.Status)) {
			out = append(out, r)
		}
	}
	return out
}

func newTransitionStatus(repo *fakeRepo, remRepo *fakeReminderRepo) *TransitionStatus {
	return NewTransitionStatus(
		repo,
		ucreminder.NewLifecycle(remRepo),
		cache.NewAvailabilityCache(nil),
		nil,
	)
}

func seedAppointment(repo *fakeRepo, status string) *models.Appointment {
	ap := &models.Appointment{
		SalonID:    1,
		ClientID:   repo.client.ID,
		StaffID:    repo.staff.ID,
		ServiceID:  repo.service.ID,
		StartTime:  time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 3, 11, 11, 0, 0, 0, time.UTC),
		Status:     status,
		Price:      500,
		FinalPrice: 500,
	}
	ap.ID = repo.nextID
	repo.nextID++
	repo.appointments = append(repo.appointments, ap)
	return ap
}

func TestTransitionStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("scheduled confirms", func(t *testing.T) {
		repo := newFakeRepo()
		ap := seedAppointment(repo, string(domain.StatusScheduled))
		uc := newTransitionStatus(repo, newFakeReminderRepo())

		got, err := uc.Execute(ctx, 1, ap.ID, "confirmed")
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusConfirmed), got.Status)
	})

	t.Run("unknown status is invalid_request", func(t *testing.T) {
		repo := newFakeRepo()
		ap := seedAppointment(repo, string(domain.StatusScheduled))
		uc := newTransitionStatus(repo, newFakeReminderRepo())

		_, err := uc.Execute(ctx, 1, ap.ID, "archived")
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRequest))
	})

	t.Run("terminal appointment rejects any transition", func(t *testing.T) {
		repo := newFakeRepo()
		ap := seedAppointment(repo, string(domain.StatusCancelled))
		uc := newTransitionStatus(repo, newFakeReminderRepo())

		_, err := uc.Execute(ctx, 1, ap.ID, "confirmed")
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
	})

	t.Run("completion updates client stats", func(t *testing.T) {
		repo := newFakeRepo()
		ap := seedAppointment(repo, string(domain.StatusInProgress))
		uc := newTransitionStatus(repo, newFakeReminderRepo())

		_, err := uc.Execute(ctx, 1, ap.ID, "completed")
		require.NoError(t, err)

		assert.Equal(t, 1, repo.client.TotalVisits)
		assert.Equal(t, 500.0, repo.client.TotalSpent)
		require.NotNil(t, repo.client.LastVisitDate)
		require.Len(t, repo.updatedClients, 1)
	})

	t.Run("completion opens a reminder when the service repeats", func(t *testing.T) {
		repo := newFakeRepo()
		repo.service.RepeatIntervalDays = 21
		ap := seedAppointment(repo, string(domain.StatusInProgress))
		remRepo := newFakeReminderRepo()
		uc := newTransitionStatus(repo, remRepo)

		_, err := uc.Execute(ctx, 1, ap.ID, "completed")
		require.NoError(t, err)

		require.Len(t, remRepo.reminders, 1)
		rem := remRepo.reminders[0]
		assert.Equal(t, string(remdomain.StatusPending), rem.Status)
		assert.Equal(t, ap.ID, rem.LastAppointmentID)
		assert.Equal(t, rem.LastVisitDate.AddDate(0, 0, 21), rem.RecommendedDate)
	})

	t.Run("no reminder without a repeat interval", func(t *testing.T) {
		repo := newFakeRepo()
		repo.service.RepeatIntervalDays = 0
		ap := seedAppointment(repo, string(domain.StatusInProgress))
		remRepo := newFakeReminderRepo()
		uc := newTransitionStatus(repo, remRepo)

		_, err := uc.Execute(ctx, 1, ap.ID, "completed")
		require.NoError(t, err)
		assert.Empty(t, remRepo.reminders)
	})

	t.Run("new reminder supersedes the previous active one", func(t *testing.T) {
		repo := newFakeRepo()
		repo.service.RepeatIntervalDays = 30
		remRepo := newFakeReminderRepo()
		uc := newTransitionStatus(repo, remRepo)

		first := seedAppointment(repo, string(domain.StatusInProgress))
		_, err := uc.Execute(ctx, 1, first.ID, "completed")
		require.NoError(t, err)

		second := seedAppointment(repo, string(domain.StatusInProgress))
		_, err = uc.Execute(ctx, 1, second.ID, "completed")
		require.NoError(t, err)

		require.Len(t, remRepo.reminders, 2)
		assert.Equal(t, string(remdomain.StatusCancelled), remRepo.reminders[0].Status)
		assert.Equal(t, string(remdomain.StatusPending), remRepo.reminders[1].Status)
		assert.Len(t, remRepo.active(repo.client.ID, repo.service.ID), 1)
	})

	t.Run("completing a follow-up closes its reminder", func(t *testing.T) {
		repo := newFakeRepo()
		remRepo := newFakeReminderRepo()
		uc := newTransitionStatus(repo, remRepo)

		ap := seedAppointment(repo, string(domain.StatusInProgress))
		linked := &models.RepeatVisitReminder{
			SalonID:               1,
			ClientID:              repo.client.ID,
			ServiceID:             repo.service.ID,
			Status:                string(remdomain.StatusScheduled),
			FollowUpAppointmentID: &ap.ID,
		}
		require.NoError(t, remRepo.CreateReminder(ctx, linked))

		_, err := uc.Execute(ctx, 1, ap.ID, "completed")
		require.NoError(t, err)

		assert.Equal(t, string(remdomain.StatusCompleted), linked.Status)
		assert.NotNil(t, linked.CompletedAt)
	})
}
