package appointment

import (
	"context"
	"time"

	domain "github.com/NovaBeautyTech/salon-manager/internal/domain/appointment"
	"github.com/NovaBeautyTech/salon-manager/internal/infra/cache"
)

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
}

func NewGetAvailability(
	repo domain.Repository,
	cache *cache.AvailabilityCache,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		cache: cache,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	dateKey := in.Date.Format("2006-01-02")

	if slots, ok := uc.cache.Get(ctx, in.StaffID, in.ServiceID, dateKey); ok {
		return slots, nil
	}

	service, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	ws, err := uc.repo.GetWorkSchedule(ctx, in.StaffID, int(in.Date.Weekday()))
	if err != nil {
		return nil, err
	}
	if ws == nil || !ws.Active {
		return []domain.TimeSlot{}, nil
	}

	dayStart := domain.ParseDayTime(ws.StartTime, in.Date)
	dayEnd := domain.ParseDayTime(ws.EndTime, in.Date)

	hasBreak := ws.BreakStart != "" && ws.BreakEnd != ""
	var breakStart, breakEnd time.Time
	if hasBreak {
		breakStart = domain.ParseDayTime(ws.BreakStart, in.Date)
		breakEnd = domain.ParseDayTime(ws.BreakEnd, in.Date)
	}

	appointments, err := uc.repo.ListAppointmentsForDay(
		ctx,
		in.StaffID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	slotDuration := time.Duration(service.DurationMin) * time.Minute
	slots := []domain.TimeSlot{}

	apIdx := 0

	for cur := dayStart; !cur.Add(slotDuration).After(dayEnd); cur = cur.Add(slotDuration) {

		slotStart := cur
		slotEnd := cur.Add(slotDuration)

		if hasBreak && domain.Overlaps(slotStart, slotEnd, breakStart, breakEnd) {
			continue
		}

		// skip appointments that already ended before this slot
		for apIdx < len(appointments) && !appointments[apIdx].EndTime.After(slotStart) {
			apIdx++
		}

		conflict := false
		if apIdx < len(appointments) {
			ap := appointments[apIdx]
			if domain.Overlaps(slotStart, slotEnd, ap.StartTime, ap.EndTime) {
				conflict = true
			}
		}

		if !conflict {
			slots = append(slots, domain.TimeSlot{
				Start: slotStart.Format("15:04"),
				End:   slotEnd.Format("15:04"),
			})
		}
	}

	uc.cache.Set(ctx, in.StaffID, in.ServiceID, dateKey, slots)

	return slots, nil
}
