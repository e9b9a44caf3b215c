package appointment

import (
	"context"
	"time"

	"github.com/NovaBeautyTech/salon-manager/internal/models"
)

type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	// -------- Catalog --------
	GetService(
		ctx context.Context,
		salonID uint,
		serviceID uint,
	) (*models.Service, error)

	GetStaffMember(
		ctx context.Context,
		salonID uint,
		staffID uint,
	) (*models.StaffMember, error)

	GetClient(
		ctx context.Context,
		salonID uint,
		clientID uint,
	) (*models.Client, error)

	UpdateClient(
		ctx context.Context,
		client *models.Client,
	) error

	// -------- Working hours --------
	GetWorkSchedule(
		ctx context.Context,
		staffID uint,
		weekday int,
	) (*models.WorkSchedule, error)

	// -------- Appointment (create / conflict) --------
	// CreateAppointmentIfFree runs the conflict check and the insert in one
	// transaction, serialized per staff member, so two concurrent bookings
	// cannot both pass the check. A collision fails with slot_conflict
	// carrying the blocking appointment id.
	CreateAppointmentIfFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		salonID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Calendar reads --------
	ListAppointmentsForDay(
		ctx context.Context,
		staffID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		salonID uint,
		staffID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
