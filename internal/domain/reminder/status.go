package reminder

import "github.com/NovaBeautyTech/salon-manager/internal/httperr"

// ===============================
// Reminder Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusSmsSent   Status = "sms_sent"
	StatusCalled    Status = "called"
	StatusScheduled Status = "scheduled" // a follow-up visit was booked
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ===============================
// Validations
// ===============================

// CanMarkSmsSent: only a fresh reminder may record an SMS dispatch.
func CanMarkSmsSent(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanMarkCalled: a call may follow the SMS or replace it.
func CanMarkCalled(current Status) error {
	if current != StatusPending && current != StatusSmsSent {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanLinkAppointment: any live reminder may be resolved by booking
// a follow-up visit.
func CanLinkAppointment(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanComplete: completion requires a booked follow-up; there is no
// pending -> completed shortcut.
func CanComplete(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func CanCancel(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
