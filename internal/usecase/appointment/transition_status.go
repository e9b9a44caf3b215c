package appointment

import (
	"context"
	"time"

	"github.com/NovaBeautyTech/salon-manager/internal/audit"
	domain "github.com/NovaBeautyTech/salon-manager/internal/domain/appointment"
	"github.com/NovaBeautyTech/salon-manager/internal/httperr"
	"github.com/NovaBeautyTech/salon-manager/internal/infra/cache"
	"github.com/NovaBeautyTech/salon-manager/internal/timezone"
	ucreminder "github.com/NovaBeautyTech/salon-manager/internal/usecase/reminder"
	"github.com/NovaBeautyTech/salon-manager/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type TransitionStatus struct {
	repo      domain.Repository
	reminders *ucreminder.Lifecycle
	cache     *cache.AvailabilityCache
	audit     *audit.Dispatcher
}

func NewTransitionStatus(
	repo domain.Repository,
	reminders *ucreminder.Lifecycle,
	cache *cache.AvailabilityCache,
	audit *audit.Dispatcher,
) *TransitionStatus {
	return &TransitionStatus{
		repo:      repo,
		reminders: reminders,
		cache:     cache,
		audit:     audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *TransitionStatus) Execute(
	ctx context.Context,
	salonID uint,
	appointmentID uint,
	newStatus string,
) (*models.Appointment, error) {

	to := domain.Status(newStatus)
	if !domain.IsValid(to) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}
	loc := timezone.Location(salon.Timezone)

	ap, err := uc.repo.GetAppointment(ctx, salonID, appointmentID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(salon.Timezone)
	if err := domain.Transition(ap, to, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// cancelled and no-show free the slot again
	if !domain.Blocking(to) {
		uc.cache.InvalidateDay(
			ctx,
			ap.StaffID,
			ap.StartTime.In(loc).Format("2006-01-02"),
		)
	}

	if to == domain.StatusCompleted {
		if err := uc.onCompleted(ctx, ap, loc); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		StaffID:  &ap.StaffID,
		Action:   "appointment_" + newStatus,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// onCompleted rolls the visit into the client's stats, closes the reminder
// this booking resolved, and opens the next one when the service has a
// repeat interval.
func (uc *TransitionStatus) onCompleted(
	ctx context.Context,
	ap *models.Appointment,
	loc *time.Location,
) error {

	client, err := uc.repo.GetClient(ctx, ap.SalonID, ap.ClientID)
	if err != nil {
		return err
	}

	visited := ap.StartTime.In(loc)
	client.TotalVisits++
	client.TotalSpent += ap.FinalPrice
	client.LastVisitDate = &visited

	if err := uc.repo.UpdateClient(ctx, client); err != nil {
		return err
	}

	now := time.Now().In(loc)
	if err := uc.reminders.CompleteForAppointment(ctx, ap.SalonID, ap.ID, now); err != nil {
		return err
	}

	service, err := uc.repo.GetService(ctx, ap.SalonID, ap.ServiceID)
	if err != nil {
		return err
	}

	_, err = uc.reminders.CreateFromAppointment(ctx, ap, service, loc)
	return err
}
