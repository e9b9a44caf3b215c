package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	domain "github.com/NovaBeautyTech/salon-manager/internal/domain/reminder"
	"github.com/NovaBeautyTech/salon-manager/internal/httperr"
	"github.com/NovaBeautyTech/salon-manager/internal/models"
	"github.com/NovaBeautyTech/salon-manager/internal/timezone"
	ucreminder "github.com/NovaBeautyTech/salon-manager/internal/usecase/reminder"
)

// A salon is swept when its local clock reaches this hour.
const sendHour = 9

// ReminderSweep auto-sends repeat-visit SMS for salons that opted in.
// Reminders whose recommended date has arrived go through the same
// MarkSmsSent path as a manual send, so the status rules hold either way.
type ReminderSweep struct {
	repo    domain.Repository
	markSms *ucreminder.MarkSmsSent

	now func() time.Time
}

func NewReminderSweep(
	repo domain.Repository,
	markSms *ucreminder.MarkSmsSent,
) *ReminderSweep {
	return &ReminderSweep{
		repo:    repo,
		markSms: markSms,
		now:     time.Now,
	}
}

// Start checks every hour which salons just reached 09:00 local time and
// sweeps those, so salons in different timezones each get their morning
// send. Returns the running scheduler so the caller can stop it on
// shutdown.
func (s *ReminderSweep) Start() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("0 * * * *", s.tick); err != nil {
		log.WithError(err).Error("reminder sweep: scheduling failed")
		return c
	}

	c.Start()
	log.Info("reminder sweep scheduled")
	return c
}

func (s *ReminderSweep) tick() {
	s.sweep(func(salon *models.Salon) bool {
		return s.now().In(timezone.Location(salon.Timezone)).Hour() == sendHour
	})
}

// Run sweeps every opted-in salon immediately, regardless of local time.
func (s *ReminderSweep) Run() {
	s.sweep(func(*models.Salon) bool { return true })
}

func (s *ReminderSweep) sweep(dueNow func(*models.Salon) bool) {
	ctx := context.Background()

	salons, err := s.repo.ListSalons(ctx)
	if err != nil {
		log.WithError(err).Error("reminder sweep: listing salons failed")
		return
	}

	for i := range salons {
		salon := &salons[i]

		if !salon.SmsAutoSend || !dueNow(salon) {
			continue
		}

		today := timezone.StartOfDay(s.now().In(timezone.Location(salon.Timezone)))

		due, err := s.repo.ListDuePending(ctx, salon.ID, today)
		if err != nil {
			log.WithError(err).WithField("salon_id", salon.ID).
				Error("reminder sweep: listing due reminders failed")
			continue
		}

		sent := 0
		for _, rem := range due {
			if _, err := s.markSms.Execute(ctx, salon.ID, rem.ID); err != nil {
				// a reminder touched by staff since the query is fine to skip
				if httperr.IsBusiness(err, httperr.CodeInvalidState) {
					continue
				}
				log.WithError(err).WithField("reminder_id", rem.ID).
					Warn("reminder sweep: sms dispatch failed")
				continue
			}
			sent++
		}

		if len(due) > 0 {
			log.WithFields(log.Fields{
				"salon_id": salon.ID,
				"due":      len(due),
				"sent":     sent,
			}).Info("reminder sweep completed")
		}
	}
}
