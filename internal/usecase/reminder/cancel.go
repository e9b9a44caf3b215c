package reminder

import (
	"context"

	"github.com/NovaBeautyTech/salon-manager/internal/audit"
	domain "github.com/NovaBeautyTech/salon-manager/internal/domain/reminder"
	"github.com/NovaBeautyTech/salon-manager/internal/models"
	"github.com/NovaBeautyTech/salon-manager/internal/timezone"
)

type CancelReminder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelReminder(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelReminder {
	return &CancelReminder{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelReminder) Execute(
	ctx context.Context,
	salonID uint,
	reminderID uint,
) (*models.RepeatVisitReminder, error) {

	rem, err := uc.repo.GetReminder(ctx, salonID, reminderID)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(rem, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReminder(ctx, rem); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		Action:   "reminder_cancelled",
		Entity:   "repeat_visit_reminder",
		EntityID: &rem.ID,
	})

	return rem, nil
}
