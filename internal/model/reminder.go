package model

import "time"

// Reminder 学习提醒，只存储时间与消息，不负责触达
// swagger:model Reminder
type Reminder struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       string    `gorm:"index;size:128;not null" json:"userId"`
	ReminderTime string    `gorm:"size:5;not null" json:"reminderTime"` // 24小时制 HH:MM
	Message      string    `gorm:"type:text" json:"message"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (Reminder) TableName() string {
	return "reminders"
}
