package reminder

import (
	"context"
	"time"

	domain "github.com/NovaBeautyTech/salon-manager/internal/domain/reminder"
	"github.com/NovaBeautyTech/salon-manager/internal/models"
	"github.com/NovaBeautyTech/salon-manager/internal/timezone"
)

// ======================================================
// LIFECYCLE: hooks driven by the scheduling engine
// ======================================================

// Lifecycle reacts to appointment completions: it opens a new reminder for
// services with a repeat interval and closes the reminder that the
// completed appointment was booked against.
type Lifecycle struct {
	repo domain.Repository
}

func NewLifecycle(repo domain.Repository) *Lifecycle {
	return &Lifecycle{repo: repo}
}

// CreateFromAppointment opens a pending reminder for a completed
// appointment. Returns nil without error when the service has no repeat
// interval configured. Any previous active reminder for the same
// (client, service) pair is superseded first, keeping the
// one-active-reminder invariant.
func (l *Lifecycle) CreateFromAppointment(
	ctx context.Context,
	ap *models.Appointment,
	service *models.Service,
	loc *time.Location,
) (*models.RepeatVisitReminder, error) {

	if service.RepeatIntervalDays <= 0 {
		return nil, nil
	}

	now := time.Now().In(loc)

	existing, err := l.repo.FindActiveReminder(
		ctx,
		ap.SalonID,
		ap.ClientID,
		ap.ServiceID,
	)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := domain.Cancel(existing, now); err != nil {
			return nil, err
		}
		if err := l.repo.UpdateReminder(ctx, existing); err != nil {
			return nil, err
		}
	}

	lastVisit := timezone.StartOfDay(ap.StartTime.In(loc))

	rem := &models.RepeatVisitReminder{
		SalonID:           ap.SalonID,
		ClientID:          ap.ClientID,
		ServiceID:         ap.ServiceID,
		StaffID:           ap.StaffID,
		LastAppointmentID: ap.ID,
		LastVisitDate:     lastVisit,
		RecommendedDate:   domain.RecommendedDate(lastVisit, service.RepeatIntervalDays),
		Status:            string(domain.InitialStatus()),
	}

	if err := l.repo.CreateReminder(ctx, rem); err != nil {
		return nil, err
	}

	return rem, nil
}

// CompleteForAppointment closes the reminder whose follow-up booking just
// completed. No-op when the appointment was not booked from a reminder.
func (l *Lifecycle) CompleteForAppointment(
	ctx context.Context,
	salonID uint,
	appointmentID uint,
	now time.Time,
) error {

	rem, err := l.repo.FindByFollowUpAppointment(ctx, salonID, appointmentID)
	if err != nil {
		return err
	}
	if rem == nil {
		return nil
	}

	if err := domain.Complete(rem, now); err != nil {
		return err
	}

	return l.repo.UpdateReminder(ctx, rem)
}
