package service

import (
	"regexp"

	"studyspace_backend/internal/model"
	"studyspace_backend/internal/repository"
	"studyspace_backend/internal/util"
)

// 24小时制 HH:MM，小时 00-23，分钟 00-59
var reminderTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ReminderService 处理学习提醒的业务逻辑。
// 只负责存储时间与消息，不做任何触达；相同提醒可重复添加。
type ReminderService struct {
	Store repository.ReminderStore
}

func NewReminderService(store repository.ReminderStore) *ReminderService {
	return &ReminderService{Store: store}
}

// Add 追加一条提醒；时间格式不合法返回 ErrInvalidTime，消息允许为空
func (s *ReminderService) Add(userID, reminderTime, message string) error {
	if !reminderTimePattern.MatchString(reminderTime) {
		return util.ErrInvalidTime
	}
	return s.Store.Append(userID, reminderTime, message)
}

// List 按插入顺序返回该用户的全部提醒，不排序
func (s *ReminderService) List(userID string) ([]model.Reminder, error) {
	return s.Store.List(userID)
}
