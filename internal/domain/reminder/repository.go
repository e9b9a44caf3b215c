package reminder

import (
	"context"
	"time"

	"github.com/NovaBeautyTech/salon-manager/internal/models"
)

type Repository interface {
	GetReminder(
		ctx context.Context,
		salonID uint,
		reminderID uint,
	) (*models.RepeatVisitReminder, error)

	// FindActiveReminder returns the one non-terminal reminder for a
	// (client, service) pair, or nil when none exists.
	FindActiveReminder(
		ctx context.Context,
		salonID uint,
		clientID uint,
		serviceID uint,
	) (*models.RepeatVisitReminder, error)

	FindByFollowUpAppointment(
		ctx context.Context,
		salonID uint,
		appointmentID uint,
	) (*models.RepeatVisitReminder, error)

	CreateReminder(
		ctx context.Context,
		r *models.RepeatVisitReminder,
	) error

	UpdateReminder(
		ctx context.Context,
		r *models.RepeatVisitReminder,
	) error

	// ListReminders returns the salon's reminders with client, service and
	// staff preloaded, most urgent first.
	ListReminders(
		ctx context.Context,
		salonID uint,
	) ([]models.RepeatVisitReminder, error)

	// ListDuePending feeds the daily sweep: pending reminders whose
	// recommended date is on or before the cutoff.
	ListDuePending(
		ctx context.Context,
		salonID uint,
		cutoff time.Time,
	) ([]models.RepeatVisitReminder, error)

	ListSalons(
		ctx context.Context,
	) ([]models.Salon, error)

	GetAppointment(
		ctx context.Context,
		salonID uint,
		appointmentID uint,
	) (*models.Appointment, error)
}
