package reminder

import (
	"context"
	"time"

	domain "github.com/NovaBeautyTech/salon-manager/internal/domain/reminder"
	"github.com/NovaBeautyTech/salon-manager/internal/dto"
)

type ListQueue struct {
	repo domain.Repository
}

func NewListQueue(repo domain.Repository) *ListQueue {
	return &ListQueue{repo: repo}
}

// Execute projects the salon's reminders into the work queue: each row
// carries its priority class computed against "today", plus per-class
// counts for the queue tabs. Nothing here is persisted.
func (uc *ListQueue) Execute(
	ctx context.Context,
	salonID uint,
	today time.Time,
) (*dto.ReminderQueueDTO, error) {

	rems, err := uc.repo.ListReminders(ctx, salonID)
	if err != nil {
		return nil, err
	}

	out := &dto.ReminderQueueDTO{
		Items:  make([]dto.ReminderQueueItemDTO, 0, len(rems)),
		Counts: map[string]int{},
	}

	for _, rem := range rems {
		if domain.IsTerminal(domain.Status(rem.Status)) {
			continue
		}

		class := domain.Classify(
			rem.RecommendedDate,
			domain.Status(rem.Status),
			today,
		)

		out.Items = append(out.Items, dto.ReminderQueueItemDTO{
			ID:              rem.ID,
			ClientID:        rem.ClientID,
			ClientName:      rem.Client.FullName(),
			ClientPhone:     rem.Client.Phone,
			LoyaltyTier:     rem.Client.LoyaltyTier,
			ServiceID:       rem.ServiceID,
			ServiceName:     rem.Service.Name,
			StaffName:       rem.Staff.FullName(),
			LastVisitDate:   rem.LastVisitDate,
			RecommendedDate: rem.RecommendedDate,
			Status:          rem.Status,
			Class:           string(class),
			SmsSentAt:       rem.SmsSentAt,
			CalledAt:        rem.CalledAt,
		})

		out.Counts[string(class)]++
	}

	return out, nil
}
