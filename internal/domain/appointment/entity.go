package appointment

import (
	"time"

	"github.com/NovaBeautyTech/salon-manager/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition advances an appointment to a new status, stamping the
// matching timestamp. Validation is centralized in CanTransition.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)

	switch to {
	case StatusCancelled, StatusNoShow:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}

	return nil
}

// Overlaps reports whether two half-open [start, end) intervals intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// Blocking reports whether an appointment in this status still occupies
// its slot. Cancelled and no-show appointments free the slot.
func Blocking(s Status) bool {
	return s != StatusCancelled && s != StatusNoShow
}
