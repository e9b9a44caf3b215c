package reminder

import (
	"context"
	"fmt"

	"github.com/NovaBeautyTech/salon-manager/internal/audit"
	domain "github.com/NovaBeautyTech/salon-manager/internal/domain/reminder"
	"github.com/NovaBeautyTech/salon-manager/internal/models"
	"github.com/NovaBeautyTech/salon-manager/internal/sms"
	"github.com/NovaBeautyTech/salon-manager/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

type MarkSmsSent struct {
	repo    domain.Repository
	gateway sms.Gateway
	audit   *audit.Dispatcher
}

func NewMarkSmsSent(
	repo domain.Repository,
	gateway sms.Gateway,
	audit *audit.Dispatcher,
) *MarkSmsSent {
	return &MarkSmsSent{
		repo:    repo,
		gateway: gateway,
		audit:   audit,
	}
}

// Execute dispatches the reminder SMS and records it. The status only
// advances when the gateway accepted the message; a failed dispatch
// leaves the reminder pending.
func (uc *MarkSmsSent) Execute(
	ctx context.Context,
	salonID uint,
	reminderID uint,
) (*models.RepeatVisitReminder, error) {

	rem, err := uc.repo.GetReminder(ctx, salonID, reminderID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanMarkSmsSent(domain.Status(rem.Status)); err != nil {
		return nil, err
	}

	body := reminderMessage(rem)
	if _, err := uc.gateway.Send(rem.Client.Phone, body); err != nil {
		return nil, err
	}

	now := timezone.Now()
	if err := domain.MarkSmsSent(rem, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReminder(ctx, rem); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		Action:   "reminder_sms_sent",
		Entity:   "repeat_visit_reminder",
		EntityID: &rem.ID,
	})

	return rem, nil
}

func reminderMessage(rem *models.RepeatVisitReminder) string {
	return fmt.Sprintf(
		"%s, it has been a while since your last %s. We would love to see you again around %s!",
		rem.Client.FirstName,
		rem.Service.Name,
		rem.RecommendedDate.Format("02.01.2006"),
	)
}
