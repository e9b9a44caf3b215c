package reminder

import (
	"time"

	"github.com/NovaBeautyTech/salon-manager/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func MarkSmsSent(r *models.RepeatVisitReminder, now time.Time) error {
	if err := CanMarkSmsSent(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(StatusSmsSent)
	r.SmsSentAt = &now
	return nil
}

func MarkCalled(r *models.RepeatVisitReminder, now time.Time) error {
	if err := CanMarkCalled(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(StatusCalled)
	r.CalledAt = &now
	return nil
}

func LinkAppointment(r *models.RepeatVisitReminder, appointmentID uint) error {
	if err := CanLinkAppointment(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(StatusScheduled)
	r.FollowUpAppointmentID = &appointmentID
	return nil
}

func Complete(r *models.RepeatVisitReminder, now time.Time) error {
	if err := CanComplete(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(StatusCompleted)
	r.CompletedAt = &now
	return nil
}

func Cancel(r *models.RepeatVisitReminder, now time.Time) error {
	if err := CanCancel(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(StatusCancelled)
	r.CancelledAt = &now
	return nil
}

// RecommendedDate derives the follow-up due date from the last visit.
// lastVisit is truncated to its date before adding the interval.
func RecommendedDate(lastVisit time.Time, intervalDays int) time.Time {
	return startOfDay(lastVisit).AddDate(0, 0, intervalDays)
}
