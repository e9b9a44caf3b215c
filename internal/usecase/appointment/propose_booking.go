package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/NovaBeautyTech/salon-manager/internal/audit"
	domain "github.com/NovaBeautyTech/salon-manager/internal/domain/appointment"
	"github.com/NovaBeautyTech/salon-manager/internal/httperr"
	"github.com/NovaBeautyTech/salon-manager/internal/infra/cache"
	"github.com/NovaBeautyTech/salon-manager/internal/models"
	"github.com/NovaBeautyTech/salon-manager/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type ProposeBookingInput struct {
	SalonID   uint
	StaffID   uint
	ServiceID uint
	ClientID  uint

	Date string // "2006-01-02"
	Time string // "15:04"

	Notes       string
	ClientNotes string
}

// ======================================================
// USE CASE
// ======================================================

type ProposeBooking struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
	audit *audit.Dispatcher
}

func NewProposeBooking(
	repo domain.Repository,
	cache *cache.AvailabilityCache,
	audit *audit.Dispatcher,
) *ProposeBooking {
	return &ProposeBooking{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ProposeBooking) Execute(
	ctx context.Context,
	in ProposeBookingInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Salon and its timezone
	// --------------------------------------------------
	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(salon.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}

	// --------------------------------------------------
	// Service: duration and price
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !service.Active {
		return nil, httperr.ErrBusiness("service_inactive")
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// --------------------------------------------------
	// Staff member and their working hours
	// --------------------------------------------------
	staff, err := uc.repo.GetStaffMember(ctx, in.SalonID, in.StaffID)
	if err != nil {
		return nil, err
	}
	if !staff.Active {
		return nil, httperr.ErrBusiness("staff_inactive")
	}

	ws, err := uc.repo.GetWorkSchedule(ctx, staff.ID, int(start.Weekday()))
	if err != nil {
		return nil, err
	}
	if !domain.IsWithinWorkSchedule(ws, start, end) {
		return nil, httperr.ErrBusiness(httperr.CodeOutOfHours)
	}

	// --------------------------------------------------
	// Client
	// --------------------------------------------------
	client, err := uc.repo.GetClient(ctx, in.SalonID, in.ClientID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Conflict check + insert, serialized per staff member
	// --------------------------------------------------
	ap := &models.Appointment{
		SalonID:       in.SalonID,
		Reference:     uuid.New(),
		ClientID:      client.ID,
		StaffID:       staff.ID,
		ServiceID:     service.ID,
		StartTime:     start,
		EndTime:       end,
		Status:        string(domain.InitialStatus()),
		Price:         service.Price,
		Discount:      0,
		FinalPrice:    service.Price,
		PaymentStatus: models.PaymentPending,
		Notes:         in.Notes,
		ClientNotes:   in.ClientNotes,
	}

	if err := uc.repo.CreateAppointmentIfFree(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, staff.ID, in.Date)

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		StaffID:  &staff.ID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
