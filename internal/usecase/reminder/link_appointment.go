package reminder

import (
	"context"

	"github.com/NovaBeautyTech/salon-manager/internal/audit"
	domain "github.com/NovaBeautyTech/salon-manager/internal/domain/reminder"
	"github.com/NovaBeautyTech/salon-manager/internal/models"
)

type LinkAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewLinkAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *LinkAppointment {
	return &LinkAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute resolves a reminder by attaching the follow-up booking to it.
// The reminder moves to its own "scheduled" status, which is unrelated
// to the appointment's status lifecycle.
func (uc *LinkAppointment) Execute(
	ctx context.Context,
	salonID uint,
	reminderID uint,
	appointmentID uint,
) (*models.RepeatVisitReminder, error) {

	rem, err := uc.repo.GetReminder(ctx, salonID, reminderID)
	if err != nil {
		return nil, err
	}

	// the follow-up must reference a real booking in the same salon
	ap, err := uc.repo.GetAppointment(ctx, salonID, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.LinkAppointment(rem, ap.ID); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReminder(ctx, rem); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		Action:   "reminder_linked",
		Entity:   "repeat_visit_reminder",
		EntityID: &rem.ID,
		Metadata: map[string]any{"appointment_id": ap.ID},
	})

	return rem, nil
}
