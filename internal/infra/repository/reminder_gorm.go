package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/NovaBeautyTech/salon-manager/internal/domain/reminder"
	"github.com/NovaBeautyTech/salon-manager/internal/httperr"
	"github.com/NovaBeautyTech/salon-manager/internal/models"
)

type ReminderGormRepository struct {
	db *gorm.DB
}

func NewReminderGormRepository(db *gorm.DB) *ReminderGormRepository {
	return &ReminderGormRepository{db: db}
}

func (r *ReminderGormRepository) GetReminder(
	ctx context.Context,
	salonID uint,
	reminderID uint,
) (*models.RepeatVisitReminder, error) {

	var rem models.RepeatVisitReminder
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where("id = ? AND salon_id = ?", reminderID, salonID).
		First(&rem).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("reminder_not_found")
		}
		return nil, err
	}

	return &rem, nil
}

func (r *ReminderGormRepository) FindActiveReminder(
	ctx context.Context,
	salonID uint,
	clientID uint,
	serviceID uint,
) (*models.RepeatVisitReminder, error) {

	var rem models.RepeatVisitReminder
	err := r.db.WithContext(ctx).
		Where(
			"salon_id = ? AND client_id = ? AND service_id = ? AND status NOT IN ('completed', 'cancelled')",
			salonID, clientID, serviceID,
		).
		First(&rem).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &rem, nil
}

func (r *ReminderGormRepository) FindByFollowUpAppointment(
	ctx context.Context,
	salonID uint,
	appointmentID uint,
) (*models.RepeatVisitReminder, error) {

	var rem models.RepeatVisitReminder
	err := r.db.WithContext(ctx).
		Where(
			"salon_id = ? AND follow_up_appointment_id = ? AND status = 'scheduled'",
			salonID, appointmentID,
		).
		First(&rem).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &rem, nil
}

func (r *ReminderGormRepository) CreateReminder(
	ctx context.Context,
	rem *models.RepeatVisitReminder,
) error {
	return r.db.WithContext(ctx).Create(rem).Error
}

func (r *ReminderGormRepository) UpdateReminder(
	ctx context.Context,
	rem *models.RepeatVisitReminder,
) error {
	return r.db.WithContext(ctx).Save(rem).Error
}

func (r *ReminderGormRepository) ListReminders(
	ctx context.Context,
	salonID uint,
) ([]models.RepeatVisitReminder, error) {

	var rems []models.RepeatVisitReminder
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Preload("Staff").
		Where("salon_id = ?", salonID).
		Order("recommended_date ASC").
		Find(&rems).Error; err != nil {
		return nil, err
	}

	return rems, nil
}

func (r *ReminderGormRepository) ListDuePending(
	ctx context.Context,
	salonID uint,
	cutoff time.Time,
) ([]models.RepeatVisitReminder, error) {

	var rems []models.RepeatVisitReminder
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where(
			"salon_id = ? AND status = 'pending' AND recommended_date <= ?",
			salonID, cutoff,
		).
		Order("recommended_date ASC").
		Find(&rems).Error; err != nil {
		return nil, err
	}

	return rems, nil
}

func (r *ReminderGormRepository) ListSalons(
	ctx context.Context,
) ([]models.Salon, error) {

	var salons []models.Salon
	if err := r.db.WithContext(ctx).Find(&salons).Error; err != nil {
		return nil, err
	}
	return salons, nil
}

func (r *ReminderGormRepository) GetAppointment(
	ctx context.Context,
	salonID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", appointmentID, salonID).
		First(&ap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	return &ap, nil
}

// Compile-time check
var _ domain.Repository = (*ReminderGormRepository)(nil)
