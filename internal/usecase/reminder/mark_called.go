package reminder

import (
	"context"

	"github.com/NovaBeautyTech/salon-manager/internal/audit"
	domain "github.com/NovaBeautyTech/salon-manager/internal/domain/reminder"
	"github.com/NovaBeautyTech/salon-manager/internal/models"
	"github.com/NovaBeautyTech/salon-manager/internal/timezone"
)

type MarkCalled struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMarkCalled(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *MarkCalled {
	return &MarkCalled{
		repo:  repo,
		audit: audit,
	}
}

func (uc *MarkCalled) Execute(
	ctx context.Context,
	salonID uint,
	reminderID uint,
) (*models.RepeatVisitReminder, error) {

	rem, err := uc.repo.GetReminder(ctx, salonID, reminderID)
	if err != nil {
		return nil, err
	}

	if err := domain.MarkCalled(rem, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReminder(ctx, rem); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		Action:   "reminder_called",
		Entity:   "repeat_visit_reminder",
		EntityID: &rem.ID,
	})

	return rem, nil
}
