package appointment

import (
	"context"
	"time"

	domain "github.com/NovaBeautyTech/salon-manager/internal/domain/appointment"
	"github.com/NovaBeautyTech/salon-manager/internal/dto"
	"github.com/NovaBeautyTech/salon-manager/internal/models"
	"github.com/NovaBeautyTech/salon-manager/internal/timezone"
)

type ListByDate struct {
	repo domain.Repository
}

func NewListByDate(repo domain.Repository) *ListByDate {
	return &ListByDate{repo: repo}
}

// Execute feeds the weekly calendar grid: one day of appointments, all
// staff members unless staffID narrows it down.
func (uc *ListByDate) Execute(
	ctx context.Context,
	salonID uint,
	staffID uint,
	date time.Time,
) ([]dto.CalendarAppointmentDTO, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(salon.Timezone)

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		loc,
	)
	end := start.Add(24 * time.Hour)

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		salonID,
		staffID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	return toCalendarDTOs(appointments), nil
}

func toCalendarDTOs(appointments []models.Appointment) []dto.CalendarAppointmentDTO {
	out := make([]dto.CalendarAppointmentDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.CalendarAppointmentDTO{
			ID:            ap.ID,
			Reference:     ap.Reference,
			StartTime:     ap.StartTime,
			EndTime:       ap.EndTime,
			Status:        ap.Status,
			ClientName:    ap.Client.FullName(),
			StaffID:       ap.StaffID,
			StaffName:     ap.Staff.FullName(),
			StaffColor:    ap.Staff.Color,
			ServiceName:   ap.Service.Name,
			FinalPrice:    ap.FinalPrice,
			PaymentStatus: ap.PaymentStatus,
		})
	}
	return out
}
