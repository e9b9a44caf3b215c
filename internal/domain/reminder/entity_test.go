package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NovaBeautyTech/salon-manager/internal/httperr"
	"github.com/NovaBeautyTech/salon-manager/internal/models"
)

func pendingReminder() *models.RepeatVisitReminder {
	return &models.RepeatVisitReminder{Status: string(StatusPending)}
}

func TestMarkSmsSent(t *testing.T) {
	now := time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC)

	t.Run("pending advances", func(t *testing.T) {
		rem := pendingReminder()

		require.NoError(t, MarkSmsSent(rem, now))
		assert.Equal(t, string(StatusSmsSent), rem.Status)
		require.NotNil(t, rem.SmsSentAt)
		assert.Equal(t, now, *rem.SmsSentAt)
	})

	t.Run("second sms is rejected", func(t *testing.T) {
		rem := pendingReminder()
		require.NoError(t, MarkSmsSent(rem, now))

		err := MarkSmsSent(rem, now)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
	})

	t.Run("sms after a call is rejected", func(t *testing.T) {
		rem := pendingReminder()
		require.NoError(t, MarkCalled(rem, now))

		err := MarkSmsSent(rem, now)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
	})
}

func TestMarkCalled(t *testing.T) {
	now := time.Date(2024, 3, 13, 11, 0, 0, 0, time.UTC)

	t.Run("call straight from pending", func(t *testing.T) {
		rem := pendingReminder()

		require.NoError(t, MarkCalled(rem, now))
		assert.Equal(t, string(StatusCalled), rem.Status)
		require.NotNil(t, rem.CalledAt)
	})

	t.Run("call after sms", func(t *testing.T) {
		rem := pendingReminder()
		require.NoError(t, MarkSmsSent(rem, now))

		require.NoError(t, MarkCalled(rem, now))
		assert.Equal(t, string(StatusCalled), rem.Status)
		assert.NotNil(t, rem.SmsSentAt)
		assert.NotNil(t, rem.CalledAt)
	})

	t.Run("call on a scheduled reminder is rejected", func(t *testing.T) {
		rem := pendingReminder()
		require.NoError(t, LinkAppointment(rem, 42))

		err := MarkCalled(rem, now)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
	})
}

func TestLinkAppointment(t *testing.T) {
	t.Run("links from any live status", func(t *testing.T) {
		for _, from := range []Status{StatusPending, StatusSmsSent, StatusCalled} {
			rem := &models.RepeatVisitReminder{Status: string(from)}

			require.NoError(t, LinkAppointment(rem, 7))
			assert.Equal(t, string(StatusScheduled), rem.Status)
			require.NotNil(t, rem.FollowUpAppointmentID)
			assert.Equal(t, uint(7), *rem.FollowUpAppointmentID)
		}
	})

	t.Run("terminal reminders cannot be linked", func(t *testing.T) {
		for _, from := range []Status{StatusCompleted, StatusCancelled} {
			rem := &models.RepeatVisitReminder{Status: string(from)}

			err := LinkAppointment(rem, 7)
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
		}
	})
}

func TestComplete(t *testing.T) {
	now := time.Date(2024, 3, 20, 15, 0, 0, 0, time.UTC)

	t.Run("only scheduled completes", func(t *testing.T) {
		rem := pendingReminder()
		require.NoError(t, LinkAppointment(rem, 7))

		require.NoError(t, Complete(rem, now))
		assert.Equal(t, string(StatusCompleted), rem.Status)
		require.NotNil(t, rem.CompletedAt)
	})

	t.Run("no pending to completed shortcut", func(t *testing.T) {
		rem := pendingReminder()

		err := Complete(rem, now)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
		assert.Equal(t, string(StatusPending), rem.Status)
	})
}

func TestCancel(t *testing.T) {
	now := time.Date(2024, 3, 20, 15, 0, 0, 0, time.UTC)

	t.Run("live reminders cancel", func(t *testing.T) {
		for _, from := range []Status{StatusPending, StatusSmsSent, StatusCalled, StatusScheduled} {
			rem := &models.RepeatVisitReminder{Status: string(from)}

			require.NoError(t, Cancel(rem, now))
			assert.Equal(t, string(StatusCancelled), rem.Status)
			require.NotNil(t, rem.CancelledAt)
		}
	})

	t.Run("completed stays completed", func(t *testing.T) {
		rem := &models.RepeatVisitReminder{Status: string(StatusCompleted)}

		err := Cancel(rem, now)
		require.Error(t, err)
		assert.Equal(t, string(StatusCompleted), rem.Status)
	})
}
