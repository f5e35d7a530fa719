package repository

import (
	"fmt"
	"studyspace_backend/internal/model"
	"studyspace_backend/internal/util"

	"gorm.io/gorm"
)

type ReminderRepository struct {
	DB *gorm.DB
}

func NewReminderRepository(db *gorm.DB) *ReminderRepository {
	return &ReminderRepository{DB: db}
}

func (r *ReminderRepository) Append(userID, reminderTime, message string) error {
	record := model.Reminder{
		UserID:       userID,
		ReminderTime: reminderTime,
		Message:      message,
	}
	if err := r.DB.Create(&record).Error; err != nil {
		return fmt.Errorf("%w: %v", util.ErrStorageUnavailable, err)
	}
	return nil
}

func (r *ReminderRepository) List(userID string) ([]model.Reminder, error) {
	var reminders []model.Reminder
	err := r.DB.Where("user_id = ?", userID).Order("id ASC").Find(&reminders).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrStorageUnavailable, err)
	}
	return reminders, nil
}
