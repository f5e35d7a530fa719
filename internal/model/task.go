package model

import "time"

type TaskStatus string

const (
	TaskPending TaskStatus = "Pending"
	TaskDone    TaskStatus = "Done"
)

// StudyTask 用户的待办任务，只追加；允许完全相同的任务重复存在
// swagger:model StudyTask
type StudyTask struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string     `gorm:"index;size:128;not null" json:"userId"`
	Task      string     `gorm:"type:text;not null" json:"task"`
	Status    TaskStatus `gorm:"size:16;default:'Pending'" json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (StudyTask) TableName() string {
	return "tasks"
}
